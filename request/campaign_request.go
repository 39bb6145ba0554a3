package request

import (
	"time"

	"github.com/FieldPulse/go-incentives/rules"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateCampaignRequest carries one completed wizard form. StartDate is a
// civil "2006-01-02" date string.
type CreateCampaignRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	Kind        rules.CampaignKind `json:"kind"`

	StartDate            string           `json:"startDate" binding:"required"`
	Recurrence           rules.Recurrence `json:"recurrence"`
	Duration             int              `json:"duration" binding:"required"`
	CustomRecurrenceDays *int             `json:"customRecurrenceDays"`

	Participants []string `json:"participants"`
	BranchFilter *string  `json:"branchFilter"`

	Metric         rules.Metric        `json:"metric"`
	QualifierType  rules.QualifierType `json:"qualifierType"`
	QualifierValue *int                `json:"qualifierValue"`

	RewardType       rules.RewardType       `json:"rewardType"`
	RewardAmount     *decimal.Decimal       `json:"rewardAmount"`
	TieredRewards    []decimal.Decimal      `json:"tieredRewards"`
	TieBreakerRule   rules.TieBreakerRule   `json:"tieBreakerRule"`
	TieBreakerPayout rules.TieBreakerPayout `json:"tieBreakerPayout"`
	PayoutMethod     rules.PayoutMethod     `json:"payoutMethod"`
}

// Config converts the request into the engine's form value. Unset enums
// fall back to their defaults so wizard validation sees a complete form.
func (r CreateCampaignRequest) Config() (rules.CampaignConfig, error) {
	var start rules.Date
	if r.StartDate != "" {
		parsed, err := rules.ParseDate(r.StartDate)
		if err != nil {
			return rules.CampaignConfig{}, err
		}
		start = parsed
	}

	cfg := rules.CampaignConfig{
		Name:          r.Name,
		Description:   r.Description,
		Kind:          r.Kind,
		StartDate:     start,
		Recurrence:    r.Recurrence,
		Duration:      r.Duration,
		Participants:  append([]string(nil), r.Participants...),
		Metric:        r.Metric,
		QualifierType: r.QualifierType,
		RewardType:    r.RewardType,
		TieredRewards: append([]decimal.Decimal(nil), r.TieredRewards...),
	}
	if r.CustomRecurrenceDays != nil {
		cfg.CustomRecurrenceDays = *r.CustomRecurrenceDays
	}
	if r.BranchFilter != nil {
		cfg.BranchFilter = *r.BranchFilter
	}
	if r.QualifierValue != nil {
		cfg.QualifierValue = *r.QualifierValue
	}
	if r.RewardAmount != nil {
		cfg.RewardAmount = *r.RewardAmount
	}

	if cfg.Kind == "" {
		cfg.Kind = rules.KindAutomated
	}
	if cfg.Recurrence == "" {
		cfg.Recurrence = rules.RecurrenceNone
	}
	if cfg.Metric == "" {
		cfg.Metric = rules.MetricProScore
	}
	if cfg.QualifierType == "" {
		cfg.QualifierType = rules.QualifierEveryone
	}
	if cfg.RewardType == "" {
		cfg.RewardType = rules.RewardPoints
	}
	cfg.TieBreakerRule = r.TieBreakerRule
	if cfg.TieBreakerRule == "" {
		cfg.TieBreakerRule = rules.TieBreakStandard
	}
	cfg.TieBreakerPay = r.TieBreakerPayout
	if cfg.TieBreakerPay == "" {
		cfg.TieBreakerPay = rules.PayoutFull
	}
	cfg.PayoutMethod = r.PayoutMethod
	if cfg.PayoutMethod == "" {
		cfg.PayoutMethod = rules.PayoutAutomatic
	}
	return cfg, nil
}

// UpdateCampaignRequest edits a campaign through the wizard. Nil fields are
// left unchanged; non-nil fields that are locked for an active campaign are
// rejected by the service.
type UpdateCampaignRequest struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Kind        *rules.CampaignKind `json:"kind"`

	StartDate            *string           `json:"startDate"`
	Recurrence           *rules.Recurrence `json:"recurrence"`
	Duration             *int              `json:"duration"`
	CustomRecurrenceDays *int              `json:"customRecurrenceDays"`

	Participants []string `json:"participants"`
	BranchFilter *string  `json:"branchFilter"`

	Metric         *rules.Metric        `json:"metric"`
	QualifierType  *rules.QualifierType `json:"qualifierType"`
	QualifierValue *int                 `json:"qualifierValue"`

	RewardType       *rules.RewardType       `json:"rewardType"`
	RewardAmount     *decimal.Decimal        `json:"rewardAmount"`
	TieredRewards    []decimal.Decimal       `json:"tieredRewards"`
	TieBreakerRule   *rules.TieBreakerRule   `json:"tieBreakerRule"`
	TieBreakerPayout *rules.TieBreakerPayout `json:"tieBreakerPayout"`
	PayoutMethod     *rules.PayoutMethod     `json:"payoutMethod"`
}

// TouchedLockableFields lists the lockable wizard field names this request
// tries to change.
func (r UpdateCampaignRequest) TouchedLockableFields() []string {
	var touched []string
	if r.StartDate != nil {
		touched = append(touched, "startDate")
	}
	if r.Recurrence != nil {
		touched = append(touched, "recurrence")
	}
	if r.CustomRecurrenceDays != nil {
		touched = append(touched, "customRecurrenceDays")
	}
	if r.Metric != nil {
		touched = append(touched, "metric")
	}
	if r.QualifierType != nil {
		touched = append(touched, "qualifierType")
	}
	if r.QualifierValue != nil {
		touched = append(touched, "qualifierValue")
	}
	if r.RewardType != nil {
		touched = append(touched, "rewardType")
	}
	if r.RewardAmount != nil {
		touched = append(touched, "rewardAmount")
	}
	if r.TieredRewards != nil {
		touched = append(touched, "tieredRewards")
	}
	if r.TieBreakerRule != nil {
		touched = append(touched, "tieBreakerRule")
	}
	if r.TieBreakerPayout != nil {
		touched = append(touched, "tieBreakerPayout")
	}
	if r.PayoutMethod != nil {
		touched = append(touched, "payoutMethod")
	}
	return touched
}

// Apply overlays the non-nil request fields onto a wizard form.
func (r UpdateCampaignRequest) Apply(cfg rules.CampaignConfig) (rules.CampaignConfig, error) {
	if r.Name != nil {
		cfg.Name = *r.Name
	}
	if r.Description != nil {
		cfg.Description = *r.Description
	}
	if r.Kind != nil {
		cfg.Kind = *r.Kind
	}
	if r.StartDate != nil {
		start, err := rules.ParseDate(*r.StartDate)
		if err != nil {
			return cfg, err
		}
		cfg.StartDate = start
	}
	if r.Recurrence != nil {
		cfg.Recurrence = *r.Recurrence
	}
	if r.Duration != nil {
		cfg.Duration = *r.Duration
	}
	if r.CustomRecurrenceDays != nil {
		cfg.CustomRecurrenceDays = *r.CustomRecurrenceDays
	}
	if r.Participants != nil {
		cfg.Participants = append([]string(nil), r.Participants...)
	}
	if r.BranchFilter != nil {
		cfg.BranchFilter = *r.BranchFilter
	}
	if r.Metric != nil {
		cfg.Metric = *r.Metric
	}
	if r.QualifierType != nil {
		cfg.QualifierType = *r.QualifierType
	}
	if r.QualifierValue != nil {
		cfg.QualifierValue = *r.QualifierValue
	}
	if r.RewardType != nil {
		cfg.RewardType = *r.RewardType
	}
	if r.RewardAmount != nil {
		cfg.RewardAmount = *r.RewardAmount
	}
	if r.TieredRewards != nil {
		cfg.TieredRewards = append([]decimal.Decimal(nil), r.TieredRewards...)
	}
	if r.TieBreakerRule != nil {
		cfg.TieBreakerRule = *r.TieBreakerRule
	}
	if r.TieBreakerPayout != nil {
		cfg.TieBreakerPay = *r.TieBreakerPayout
	}
	if r.PayoutMethod != nil {
		cfg.PayoutMethod = *r.PayoutMethod
	}
	return cfg, nil
}

type GetCampaignsRequest struct {
	Projects             []string              `form:"projects"`
	IDs                  []uint                `form:"ids"`
	ReferenceIDs         []string              `form:"referenceIds"`
	Name                 *string               `form:"name"`
	Statuses             []rules.CampaignStatus `form:"statuses"`
	IsArchived           *bool                 `form:"isArchived"`
	Metric               *rules.Metric         `form:"metric"`
	QualifierType        *rules.QualifierType  `form:"qualifierType"`
	StartDateMin         *time.Time            `form:"startDateMin"`
	StartDateMax         *time.Time            `form:"startDateMax"`
	PaginationConditions PaginationConditions  `form:"paginationConditions"`
}

func ApplyGetCampaignsRequest(req GetCampaignsRequest, query *gorm.DB) *gorm.DB {
	if len(req.Projects) > 0 {
		query = query.Where("incentive_campaigns.project IN (?)", req.Projects)
	}
	if len(req.IDs) > 0 {
		query = query.Where("incentive_campaigns.id IN (?)", req.IDs)
	}
	if len(req.ReferenceIDs) > 0 {
		query = query.Where("incentive_campaigns.reference_id IN (?)", req.ReferenceIDs)
	}
	if req.Name != nil {
		query = query.Where("incentive_campaigns.name LIKE ?", "%"+*req.Name+"%")
	}
	if len(req.Statuses) > 0 {
		query = query.Where("incentive_campaigns.status IN (?)", req.Statuses)
	}
	if req.IsArchived != nil {
		query = query.Where("incentive_campaigns.is_archived = ?", *req.IsArchived)
	}
	if req.Metric != nil {
		query = query.Where("incentive_campaigns.metric = ?", *req.Metric)
	}
	if req.QualifierType != nil {
		query = query.Where("incentive_campaigns.qualifier_type = ?", *req.QualifierType)
	}
	if req.StartDateMin != nil {
		query = query.Where("incentive_campaigns.start_date >= ?", req.StartDateMin.Format("2006-01-02"))
	}
	if req.StartDateMax != nil {
		query = query.Where("incentive_campaigns.start_date <= ?", req.StartDateMax.Format("2006-01-02"))
	}
	return query
}
