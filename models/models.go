package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/FieldPulse/go-incentives/rules"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"index" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// StringList stores a string slice as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// DecimalList stores ordered decimal amounts as a JSON text column. Used
// for the per-rank tier schedule (index 0 pays rank 1).
type DecimalList []decimal.Decimal

func (l DecimalList) Value() (driver.Value, error) {
	if l == nil {
		l = DecimalList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *DecimalList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value, dest interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}

// Campaign is one incentive program. Schedule dates are civil dates stored
// as "2006-01-02" strings so no time zone can shift them.
type Campaign struct {
	BaseModel
	Project     string `gorm:"size:100;not null;uniqueIndex:idx_incentive_campaigns_project_ref" json:"project"`
	ReferenceID string `gorm:"size:100;not null;uniqueIndex:idx_incentive_campaigns_project_ref" json:"referenceId"`
	Name        string `gorm:"size:255;not null;index" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	Kind       rules.CampaignKind   `gorm:"size:50;not null;default:'automated'" json:"kind"`
	Status     rules.CampaignStatus `gorm:"size:50;not null;default:'pending';index" json:"status"`
	IsArchived bool                 `gorm:"default:false;index" json:"isArchived"`

	StartDate            string           `gorm:"size:10;not null;index" json:"startDate"`
	Recurrence           rules.Recurrence `gorm:"size:50;not null;default:'none'" json:"recurrence"`
	Duration             int              `gorm:"not null;default:1" json:"duration"`
	CustomRecurrenceDays int              `gorm:"default:0" json:"customRecurrenceDays"`
	CurrentCycle         int              `gorm:"not null;default:0" json:"currentCycle"`

	Participants StringList `gorm:"type:text" json:"participants"`
	BranchFilter *string    `gorm:"size:100;index" json:"branchFilter"`

	Metric         rules.Metric        `gorm:"size:50;not null;index" json:"metric"`
	QualifierType  rules.QualifierType `gorm:"size:50;not null" json:"qualifierType"`
	QualifierValue int                 `gorm:"default:0" json:"qualifierValue"`

	RewardType       rules.RewardType       `gorm:"size:50;not null;default:'points'" json:"rewardType"`
	RewardAmount     decimal.Decimal        `gorm:"type:decimal(38,18)" json:"rewardAmount"`
	TieredRewards    DecimalList            `gorm:"type:text" json:"tieredRewards"`
	TieBreakerRule   rules.TieBreakerRule   `gorm:"size:50;not null;default:'standard'" json:"tieBreakerRule"`
	TieBreakerPayout rules.TieBreakerPayout `gorm:"size:50;not null;default:'full'" json:"tieBreakerPayout"`
	PayoutMethod     rules.PayoutMethod     `gorm:"size:50;not null;default:'automatic'" json:"payoutMethod"`

	TotalPayouts    decimal.Decimal `gorm:"type:decimal(38,18);default:0" json:"totalPayouts"`
	TotalRecipients int64           `gorm:"default:0" json:"totalRecipients"`
}

func (Campaign) TableName() string {
	return "incentive_campaigns"
}

// Rules converts the row into the engine's campaign value.
func (c *Campaign) Rules() (rules.Campaign, error) {
	start, err := rules.ParseDate(c.StartDate)
	if err != nil {
		return rules.Campaign{}, fmt.Errorf("campaign %s: %w", c.ReferenceID, err)
	}
	branch := ""
	if c.BranchFilter != nil {
		branch = *c.BranchFilter
	}
	return rules.Campaign{
		ID:              c.ReferenceID,
		Status:          c.Status,
		IsArchived:      c.IsArchived,
		CurrentCycle:    c.CurrentCycle,
		TotalPayouts:    c.TotalPayouts,
		TotalRecipients: c.TotalRecipients,
		Config: rules.CampaignConfig{
			Name:                 c.Name,
			Description:          c.Description,
			Kind:                 c.Kind,
			StartDate:            start,
			Recurrence:           c.Recurrence,
			Duration:             c.Duration,
			CustomRecurrenceDays: c.CustomRecurrenceDays,
			Participants:         append([]string(nil), c.Participants...),
			BranchFilter:         branch,
			Metric:               c.Metric,
			QualifierType:        c.QualifierType,
			QualifierValue:       c.QualifierValue,
			RewardType:           c.RewardType,
			RewardAmount:         c.RewardAmount,
			TieredRewards:        append([]decimal.Decimal(nil), c.TieredRewards...),
			TieBreakerRule:       c.TieBreakerRule,
			TieBreakerPay:        c.TieBreakerPayout,
			PayoutMethod:         c.PayoutMethod,
		},
	}, nil
}

// ApplyRules writes the engine value back onto the row. Identity columns
// (ID, Project, ReferenceID) are left alone.
func (c *Campaign) ApplyRules(rc rules.Campaign) {
	cfg := rc.Config
	c.Name = cfg.Name
	c.Description = cfg.Description
	c.Kind = cfg.Kind
	c.Status = rc.Status
	c.IsArchived = rc.IsArchived
	c.StartDate = cfg.StartDate.ISO()
	c.Recurrence = cfg.Recurrence
	c.Duration = cfg.Duration
	c.CustomRecurrenceDays = cfg.CustomRecurrenceDays
	c.CurrentCycle = rc.CurrentCycle
	c.Participants = StringList(append([]string(nil), cfg.Participants...))
	if cfg.BranchFilter != "" {
		branch := cfg.BranchFilter
		c.BranchFilter = &branch
	} else {
		c.BranchFilter = nil
	}
	c.Metric = cfg.Metric
	c.QualifierType = cfg.QualifierType
	c.QualifierValue = cfg.QualifierValue
	c.RewardType = cfg.RewardType
	c.RewardAmount = cfg.RewardAmount
	c.TieredRewards = DecimalList(append([]decimal.Decimal(nil), cfg.TieredRewards...))
	c.TieBreakerRule = cfg.TieBreakerRule
	c.TieBreakerPayout = cfg.TieBreakerPay
	c.PayoutMethod = cfg.PayoutMethod
	c.TotalPayouts = rc.TotalPayouts
	c.TotalRecipients = rc.TotalRecipients
}

// Member is a platform user eligible to participate in campaigns.
type Member struct {
	BaseModel
	Project     string  `gorm:"size:100;not null;uniqueIndex:idx_incentive_members_project_ref" json:"project"`
	ReferenceID string  `gorm:"size:100;not null;uniqueIndex:idx_incentive_members_project_ref" json:"referenceId"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Email       *string `gorm:"size:100" json:"email"`
	Role        string  `gorm:"size:100;not null;index" json:"role"`
	Branch      *string `gorm:"size:100;index" json:"branch"`
	Status      string  `gorm:"size:50;default:'active';index" json:"status"`

	Teams []Team `gorm:"many2many:incentive_team_members;joinForeignKey:MemberID;joinReferences:TeamID" json:"teams"`
}

func (Member) TableName() string {
	return "incentive_members"
}

// Team is a named participant group. The tag is what campaign participant
// lists reference.
type Team struct {
	BaseModel
	Project string `gorm:"size:100;not null;uniqueIndex:idx_incentive_teams_project_tag" json:"project"`
	Tag     string `gorm:"size:100;not null;uniqueIndex:idx_incentive_teams_project_tag" json:"tag"`
	Name    string `gorm:"size:255;not null" json:"name"`

	Members []Member `gorm:"many2many:incentive_team_members;joinForeignKey:TeamID;joinReferences:MemberID" json:"members"`
}

func (Team) TableName() string {
	return "incentive_teams"
}

type TeamMember struct {
	Project  string `gorm:"size:100;not null;index" json:"project"`
	TeamID   uint   `gorm:"not null;uniqueIndex:idx_incentive_team_member" json:"teamId"`
	MemberID uint   `gorm:"not null;uniqueIndex:idx_incentive_team_member" json:"memberId"`
	Team     Team   `gorm:"foreignKey:TeamID;references:ID" json:"team"`
	Member   Member `gorm:"foreignKey:MemberID;references:ID" json:"member"`
}

func (TeamMember) TableName() string {
	return "incentive_team_members"
}

// MetricEntry is one performance sample for a member within a campaign
// cycle. The worker ranks these at cycle completion.
type MetricEntry struct {
	BaseModel
	Project           string          `gorm:"size:100;not null;index" json:"project"`
	CampaignID        uint            `gorm:"not null;index" json:"campaignId"`
	MemberReferenceID string          `gorm:"size:100;not null;index" json:"memberReferenceId"`
	Metric            rules.Metric    `gorm:"size:50;not null;index" json:"metric"`
	Cycle             int             `gorm:"not null;index" json:"cycle"`
	Score             decimal.Decimal `gorm:"type:decimal(38,18);not null" json:"score"`
	RecordedAt        time.Time       `gorm:"not null;index" json:"recordedAt"`

	Campaign *Campaign `gorm:"foreignKey:CampaignID;references:ID" json:"campaign,omitempty"`
}

func (MetricEntry) TableName() string {
	return "incentive_metric_entries"
}

// Payout record statuses.
const (
	PayoutStatusSent    = "sent"
	PayoutStatusPending = "pending"
	PayoutStatusFailed  = "failed"
)

// PayoutRecord is an append-only ledger line written by payout execution.
type PayoutRecord struct {
	BaseModel
	Project           string          `gorm:"size:100;not null;index" json:"project"`
	Reference         string          `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	CampaignID        uint            `gorm:"not null;index" json:"campaignId"`
	MemberID          uint            `gorm:"not null;index" json:"memberId"`
	MemberReferenceID string          `gorm:"size:100;not null;index" json:"memberReferenceId"`
	Cycle             int             `gorm:"not null;index" json:"cycle"`
	Rank              *int            `gorm:"" json:"rank"`
	Points            decimal.Decimal `gorm:"type:decimal(38,18);not null" json:"points"`
	CashAmount        decimal.Decimal `gorm:"type:decimal(38,18);not null" json:"cashAmount"`
	Status            string          `gorm:"size:50;default:'pending';not null;index" json:"status"`
	FailureReason     *string         `gorm:"type:text" json:"failureReason"`

	Campaign *Campaign `gorm:"foreignKey:CampaignID;references:ID" json:"campaign,omitempty"`
	Member   *Member   `gorm:"foreignKey:MemberID;references:ID" json:"member,omitempty"`
}

func (PayoutRecord) TableName() string {
	return "incentive_payout_records"
}
