package go_incentives

import (
	db2 "github.com/FieldPulse/go-incentives/internal/db"
	"github.com/FieldPulse/go-incentives/internal/serviceimpl"
	"github.com/FieldPulse/go-incentives/service"
	"gorm.io/gorm"
)

// IncentiveService is the embeddable facade over every incentive-campaign
// concern: campaign CRUD and lifecycle, audience membership, metric
// ingestion, the payout ledger and the cycle-settlement worker. Role-based
// scope resolution lives in the pure access package and needs no database.
type IncentiveService struct {
	Campaigns  service.CampaignService
	Members    service.MemberService
	Teams      service.TeamService
	Metrics    service.MetricService
	Payouts    service.PayoutService
	Aggregator service.AggregatorService
	Worker     service.Worker
}

func NewIncentiveService(db *gorm.DB) *IncentiveService {
	db2.Migrate(db)
	return &IncentiveService{
		Campaigns:  serviceimpl.NewCampaignService(db),
		Members:    serviceimpl.NewMemberService(db),
		Teams:      serviceimpl.NewTeamService(db),
		Metrics:    serviceimpl.NewMetricService(db),
		Payouts:    serviceimpl.NewPayoutService(db),
		Aggregator: serviceimpl.NewAggregatorService(db),
		Worker:     serviceimpl.NewWorkerService(db),
	}
}
