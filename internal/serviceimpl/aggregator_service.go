package serviceimpl

import (
	"fmt"

	"github.com/FieldPulse/go-incentives/models"
	"github.com/FieldPulse/go-incentives/request"
	"github.com/FieldPulse/go-incentives/response"
	"github.com/FieldPulse/go-incentives/rules"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type aggregatorService struct {
	DB *gorm.DB
}

func NewAggregatorService(db *gorm.DB) *aggregatorService {
	return &aggregatorService{DB: db}
}

// GetCampaignStats joins the payout ledger onto campaigns and rolls up
// recipients and points per campaign.
func (s *aggregatorService) GetCampaignStats(req request.GetCampaignsRequest) ([]response.CampaignStats, int64, error) {
	var result []response.CampaignStats
	var totalCount int64

	query := s.DB.Table("incentive_campaigns").
		Select(`
			incentive_campaigns.id AS id,
			incentive_campaigns.project AS project,
			incentive_campaigns.reference_id AS reference_id,
			incentive_campaigns.name AS name,
			incentive_campaigns.status AS status,
			incentive_campaigns.current_cycle AS current_cycle,
			COUNT(DISTINCT pr.member_reference_id) AS recipient_count,
			COALESCE(CAST(SUM(pr.points) AS TEXT), '0') AS total_points,
			incentive_campaigns.created_at AS created_at,
			incentive_campaigns.updated_at AS updated_at
		`).
		Joins(`
			LEFT JOIN incentive_payout_records pr ON pr.campaign_id = incentive_campaigns.id AND pr.project = incentive_campaigns.project
		`).
		Where("incentive_campaigns.deleted_at IS NULL")

	query = request.ApplyGetCampaignsRequest(req, query)

	query = query.Group(`
		incentive_campaigns.id, incentive_campaigns.project, incentive_campaigns.reference_id,
		incentive_campaigns.name, incentive_campaigns.status, incentive_campaigns.current_cycle,
		incentive_campaigns.created_at, incentive_campaigns.updated_at
	`)

	countQuery := s.DB.Table("(?) AS subquery", query).Select("COUNT(*)")
	if err := countQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count campaign stats: %w", err)
	}

	query = request.ApplyPaginationConditions(query, req.PaginationConditions)

	rows, err := query.Rows()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch campaign stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stats response.CampaignStats
		var totalPointsStr string

		if err := rows.Scan(
			&stats.ID, &stats.Project, &stats.ReferenceID, &stats.Name, &stats.Status,
			&stats.CurrentCycle, &stats.RecipientCount, &totalPointsStr,
			&stats.CreatedAt, &stats.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan campaign stats: %w", err)
		}

		points, err := decimal.NewFromString(totalPointsStr)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid points total %q: %w", totalPointsStr, err)
		}
		stats.TotalPoints = points
		stats.TotalCash = points.Div(decimal.NewFromInt(rules.PointsPerDollar))

		result = append(result, stats)
	}
	return result, totalCount, rows.Err()
}

// GetCycleStats rolls the ledger up per cycle for one campaign.
func (s *aggregatorService) GetCycleStats(project string, campaignID uint) ([]response.CycleStats, error) {
	rows, err := s.DB.Model(&models.PayoutRecord{}).
		Select(`
			cycle,
			COUNT(DISTINCT member_reference_id) AS recipient_count,
			COALESCE(CAST(SUM(points) AS TEXT), '0') AS total_points
		`).
		Where("project = ? AND campaign_id = ?", project, campaignID).
		Group("cycle").
		Order("cycle ASC").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cycle stats: %w", err)
	}
	defer rows.Close()

	var result []response.CycleStats
	for rows.Next() {
		var stats response.CycleStats
		var totalPointsStr string
		if err := rows.Scan(&stats.Cycle, &stats.RecipientCount, &totalPointsStr); err != nil {
			return nil, fmt.Errorf("failed to scan cycle stats: %w", err)
		}
		points, err := decimal.NewFromString(totalPointsStr)
		if err != nil {
			return nil, fmt.Errorf("invalid points total %q: %w", totalPointsStr, err)
		}
		stats.TotalPoints = points
		stats.TotalCash = points.Div(decimal.NewFromInt(rules.PointsPerDollar))
		result = append(result, stats)
	}
	return result, rows.Err()
}
