package request

import (
	"time"

	"github.com/FieldPulse/go-incentives/rules"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RecordMetricRequest struct {
	CampaignReferenceID string          `json:"campaignReferenceId" binding:"required"`
	MemberReferenceID   string          `json:"memberReferenceId" binding:"required"`
	Metric              rules.Metric    `json:"metric"`
	Score               decimal.Decimal `json:"score"`
	RecordedAt          *time.Time      `json:"recordedAt"`
}

type GetMetricsRequest struct {
	Projects             []string             `form:"projects"`
	CampaignIDs          []uint               `form:"campaignIds"`
	MemberReferenceIDs   []string             `form:"memberReferenceIds"`
	Metric               *rules.Metric        `form:"metric"`
	Cycle                *int                 `form:"cycle"`
	PaginationConditions PaginationConditions `form:"paginationConditions"`
}

func ApplyGetMetricsRequest(req GetMetricsRequest, query *gorm.DB) *gorm.DB {
	if len(req.Projects) > 0 {
		query = query.Where("incentive_metric_entries.project IN (?)", req.Projects)
	}
	if len(req.CampaignIDs) > 0 {
		query = query.Where("incentive_metric_entries.campaign_id IN (?)", req.CampaignIDs)
	}
	if len(req.MemberReferenceIDs) > 0 {
		query = query.Where("incentive_metric_entries.member_reference_id IN (?)", req.MemberReferenceIDs)
	}
	if req.Metric != nil {
		query = query.Where("incentive_metric_entries.metric = ?", *req.Metric)
	}
	if req.Cycle != nil {
		query = query.Where("incentive_metric_entries.cycle = ?", *req.Cycle)
	}
	return query
}
