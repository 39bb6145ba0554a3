package serviceimpl

import (
	"fmt"

	"github.com/FieldPulse/go-incentives/models"
	"github.com/FieldPulse/go-incentives/request"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type payoutService struct {
	DB *gorm.DB
}

func NewPayoutService(db *gorm.DB) *payoutService {
	return &payoutService{DB: db}
}

func (s *payoutService) GetPayouts(req request.GetPayoutsRequest) ([]models.PayoutRecord, int64, error) {
	var payouts []models.PayoutRecord
	var count int64

	query := s.DB.Model(&models.PayoutRecord{})
	query = request.ApplyGetPayoutsRequest(req, query)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payouts: %w", err)
	}

	query = request.ApplyPaginationConditions(query, req.PaginationConditions)

	if err := query.Preload("Member").Find(&payouts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch payouts: %w", err)
	}
	return payouts, count, nil
}

func (s *payoutService) GetTotalPayouts(req request.GetPayoutsRequest) (decimal.Decimal, error) {
	var total decimal.Decimal

	query := s.DB.Model(&models.PayoutRecord{}).Select("COALESCE(SUM(points), 0)")
	query = request.ApplyGetPayoutsRequest(req, query)

	if err := query.Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payouts: %w", err)
	}
	return total, nil
}

func (s *payoutService) GetRecipientCount(req request.GetPayoutsRequest) (int64, error) {
	var count int64

	query := s.DB.Model(&models.PayoutRecord{}).Select("COUNT(DISTINCT member_reference_id)")
	query = request.ApplyGetPayoutsRequest(req, query)

	if err := query.Scan(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count recipients: %w", err)
	}
	return count, nil
}
