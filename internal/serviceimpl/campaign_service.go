package serviceimpl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/FieldPulse/go-incentives/models"
	"github.com/FieldPulse/go-incentives/request"
	"github.com/FieldPulse/go-incentives/rules"
	"github.com/FieldPulse/go-incentives/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type campaignService struct {
	DB *gorm.DB
}

func NewCampaignService(db *gorm.DB) *campaignService {
	return &campaignService{DB: db}
}

// CreateCampaign validates the submitted wizard form across all five steps
// and persists a new pending campaign.
func (s *campaignService) CreateCampaign(project string, req request.CreateCampaignRequest) (*models.Campaign, error) {
	cfg, err := req.Config()
	if err != nil {
		return nil, err
	}

	if errs := rules.ValidateAll(cfg); !errs.OK() {
		return nil, validationError(errs)
	}

	finalized := rules.FinalizeCampaign(cfg, nil, utils.NewReference())

	campaign := &models.Campaign{
		Project:     project,
		ReferenceID: finalized.ID,
	}
	campaign.ApplyRules(finalized)

	if err := s.DB.Create(campaign).Error; err != nil {
		zap.L().Error("failed to create campaign", zap.String("project", project), zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

func (s *campaignService) GetCampaigns(req request.GetCampaignsRequest) ([]models.Campaign, int64, error) {
	var campaigns []models.Campaign
	var count int64

	query := s.DB.Model(&models.Campaign{})
	query = request.ApplyGetCampaignsRequest(req, query)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	query = request.ApplyPaginationConditions(query, req.PaginationConditions)

	if err := query.Find(&campaigns).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch campaigns: %w", err)
	}
	return campaigns, count, nil
}

func (s *campaignService) GetTotalCampaigns(req request.GetCampaignsRequest) (int64, error) {
	var count int64
	query := s.DB.Model(&models.Campaign{})
	query = request.ApplyGetCampaignsRequest(req, query)
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count campaigns: %w", err)
	}
	return count, nil
}

// UpdateCampaign merges a wizard edit into an existing campaign. While the
// campaign is active, touching a locked field is rejected outright, the
// duration may only grow and participants may only be added; the merge
// itself preserves identity, status, totals and the cycle counter.
func (s *campaignService) UpdateCampaign(project string, id uint, req request.UpdateCampaignRequest) (*models.Campaign, error) {
	campaign, err := s.fetch(project, id)
	if err != nil {
		return nil, err
	}

	rc, err := campaign.Rules()
	if err != nil {
		return nil, err
	}

	for _, field := range req.TouchedLockableFields() {
		if rules.IsFieldLocked(field, rc) {
			return nil, fmt.Errorf("field %s is locked while campaign %s is active", field, campaign.ReferenceID)
		}
	}
	if rc.IsActive() && req.Duration != nil && *req.Duration < rc.Config.Duration {
		return nil, fmt.Errorf("duration of active campaign %s can only be extended", campaign.ReferenceID)
	}

	form, err := req.Apply(rules.FormFromCampaign(rc))
	if err != nil {
		return nil, err
	}
	if errs := rules.ValidateAll(form); !errs.OK() {
		return nil, validationError(errs)
	}

	merged := rules.FinalizeCampaign(form, &rc, "")
	campaign.ApplyRules(merged)

	if err := s.DB.Save(campaign).Error; err != nil {
		zap.L().Error("failed to update campaign", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

// TerminateCampaign applies whichever terminal action the campaign's
// current status selects.
func (s *campaignService) TerminateCampaign(project string, id uint) (*models.Campaign, rules.TerminationAction, error) {
	campaign, err := s.fetch(project, id)
	if err != nil {
		return nil, "", err
	}
	rc, err := campaign.Rules()
	if err != nil {
		return nil, "", err
	}

	action := rules.ClassifyTermination(rc)
	switch action {
	case rules.ActionCancel:
		campaign, err = s.CancelCampaign(project, id)
	default:
		campaign, err = s.ArchiveCampaign(project, id)
	}
	return campaign, action, err
}

func (s *campaignService) CancelCampaign(project string, id uint) (*models.Campaign, error) {
	return s.transition(project, id, rules.Cancel)
}

func (s *campaignService) ArchiveCampaign(project string, id uint) (*models.Campaign, error) {
	return s.transition(project, id, rules.Archive)
}

func (s *campaignService) transition(project string, id uint, apply func(rules.Campaign) (rules.Campaign, error)) (*models.Campaign, error) {
	campaign, err := s.fetch(project, id)
	if err != nil {
		return nil, err
	}

	rc, err := campaign.Rules()
	if err != nil {
		return nil, err
	}

	next, err := apply(rc)
	if err != nil {
		return nil, err
	}

	campaign.ApplyRules(next)
	if err := s.DB.Save(campaign).Error; err != nil {
		return nil, fmt.Errorf("failed to persist campaign transition: %w", err)
	}
	return campaign, nil
}

// EstimateCampaignSpend resolves the campaign's current audience against
// the team directory and projects the cost of one cycle.
func (s *campaignService) EstimateCampaignSpend(project string, id uint) (*rules.SpendEstimate, error) {
	campaign, err := s.fetch(project, id)
	if err != nil {
		return nil, err
	}

	rc, err := campaign.Rules()
	if err != nil {
		return nil, err
	}

	audience := rules.UniqueAudience(rc.Config.Participants, &gormDirectory{DB: s.DB, Project: project})
	estimate := rules.EstimateSpend(rc.Config, len(audience))
	return &estimate, nil
}

func (s *campaignService) fetch(project string, id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := s.DB.Where("project = ? AND id = ?", project, id).First(&campaign).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch campaign %d: %w", id, err)
	}
	return &campaign, nil
}

func validationError(errs rules.FieldErrors) error {
	fields := make([]string, 0, len(errs))
	for field, bad := range errs {
		if bad {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)
	return fmt.Errorf("campaign form is invalid: %s", strings.Join(fields, ", "))
}
