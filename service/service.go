package service

import (
	"time"

	"github.com/FieldPulse/go-incentives/models"
	"github.com/FieldPulse/go-incentives/request"
	"github.com/FieldPulse/go-incentives/response"
	"github.com/FieldPulse/go-incentives/rules"
	"github.com/shopspring/decimal"
)

// CampaignService handles operations related to campaigns
type CampaignService interface {
	CreateCampaign(project string, req request.CreateCampaignRequest) (*models.Campaign, error)
	GetCampaigns(req request.GetCampaignsRequest) ([]models.Campaign, int64, error)
	GetTotalCampaigns(req request.GetCampaignsRequest) (int64, error)
	UpdateCampaign(project string, id uint, req request.UpdateCampaignRequest) (*models.Campaign, error)
	// TerminateCampaign applies the action the campaign's status selects:
	// cancel while pending or running, archive otherwise.
	TerminateCampaign(project string, id uint) (*models.Campaign, rules.TerminationAction, error)
	CancelCampaign(project string, id uint) (*models.Campaign, error)
	ArchiveCampaign(project string, id uint) (*models.Campaign, error)
	EstimateCampaignSpend(project string, id uint) (*rules.SpendEstimate, error)
}

// MemberService handles the platform users eligible for campaigns
type MemberService interface {
	CreateMember(project string, req request.CreateMemberRequest) (*models.Member, error)
	GetMembers(req request.GetMembersRequest) ([]models.Member, int64, error)
	GetTotalMembers(req request.GetMembersRequest) (int64, error)
	UpdateMember(project, referenceID string, req request.UpdateMemberRequest) (*models.Member, error)
	UpdateMemberStatus(project, referenceID string, newStatus string) (*models.Member, error)
}

// TeamService manages participant groups and exposes the group directory
// the audience resolver expands tags against.
type TeamService interface {
	CreateTeam(project string, req request.CreateTeamRequest) (*models.Team, error)
	GetTeams(req request.GetTeamsRequest) ([]models.Team, int64, error)
	AssignMember(project, teamTag, memberReferenceID string) error
	RemoveMember(project, teamTag, memberReferenceID string) error
	Directory(project string) rules.GroupDirectory
}

type MetricService interface {
	RecordMetric(project string, req request.RecordMetricRequest) (*models.MetricEntry, error)
	GetMetrics(req request.GetMetricsRequest) ([]models.MetricEntry, int64, error)
}

type PayoutService interface {
	GetPayouts(req request.GetPayoutsRequest) ([]models.PayoutRecord, int64, error)
	GetTotalPayouts(req request.GetPayoutsRequest) (decimal.Decimal, error)
	GetRecipientCount(req request.GetPayoutsRequest) (int64, error)
}

type AggregatorService interface {
	GetCampaignStats(req request.GetCampaignsRequest) ([]response.CampaignStats, int64, error)
	GetCycleStats(project string, campaignID uint) ([]response.CycleStats, error)
}

// Worker drives campaign lifecycle progression: starting pending campaigns
// and settling completed cycles into payout records.
type Worker interface {
	ProcessDueCampaigns(now time.Time) error
}
