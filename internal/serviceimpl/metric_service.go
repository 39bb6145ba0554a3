package serviceimpl

import (
	"fmt"
	"time"

	"github.com/FieldPulse/go-incentives/models"
	"github.com/FieldPulse/go-incentives/request"
	"gorm.io/gorm"
)

type metricService struct {
	DB *gorm.DB
}

func NewMetricService(db *gorm.DB) *metricService {
	return &metricService{DB: db}
}

// RecordMetric appends a performance sample to the campaign's in-progress
// cycle. The sample's metric defaults to the campaign's evaluation metric
// and must match it when given.
func (s *metricService) RecordMetric(project string, req request.RecordMetricRequest) (*models.MetricEntry, error) {
	var campaign models.Campaign
	if err := s.DB.Where("project = ? AND reference_id = ?", project, req.CampaignReferenceID).
		First(&campaign).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch campaign %s: %w", req.CampaignReferenceID, err)
	}

	metric := req.Metric
	if metric == "" {
		metric = campaign.Metric
	}
	if metric != campaign.Metric {
		return nil, fmt.Errorf("metric %s does not match campaign metric %s", metric, campaign.Metric)
	}

	recordedAt := time.Now()
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	entry := &models.MetricEntry{
		Project:           project,
		CampaignID:        campaign.ID,
		MemberReferenceID: req.MemberReferenceID,
		Metric:            metric,
		Cycle:             campaign.CurrentCycle + 1,
		Score:             req.Score,
		RecordedAt:        recordedAt,
	}

	if err := s.DB.Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to record metric: %w", err)
	}
	return entry, nil
}

func (s *metricService) GetMetrics(req request.GetMetricsRequest) ([]models.MetricEntry, int64, error) {
	var entries []models.MetricEntry
	var count int64

	query := s.DB.Model(&models.MetricEntry{})
	query = request.ApplyGetMetricsRequest(req, query)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count metric entries: %w", err)
	}

	query = request.ApplyPaginationConditions(query, req.PaginationConditions)

	if err := query.Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch metric entries: %w", err)
	}
	return entries, count, nil
}
