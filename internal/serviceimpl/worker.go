package serviceimpl

import (
	"fmt"
	"sort"
	"time"

	"github.com/FieldPulse/go-incentives/models"
	"github.com/FieldPulse/go-incentives/rules"
	"github.com/FieldPulse/go-incentives/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type worker struct {
	DB *gorm.DB
}

func NewWorkerService(db *gorm.DB) *worker {
	return &worker{DB: db}
}

// ProcessDueCampaigns advances every pending or running campaign whose
// schedule has caught up with the given time: pending campaigns start once
// their start date arrives, and each elapsed cycle of a running campaign is
// settled into payout ledger lines. Cancelled and archived campaigns never
// progress. Failures are logged per campaign and do not stop the sweep.
func (w *worker) ProcessDueCampaigns(now time.Time) error {
	today := rules.DateOf(now)

	var due []models.Campaign
	if err := w.DB.
		Where("status IN (?)", []rules.CampaignStatus{rules.StatusPending, rules.StatusRunning}).
		Where("is_archived = ?", false).
		Find(&due).Error; err != nil {
		return fmt.Errorf("failed to fetch due campaigns: %w", err)
	}

	for i := range due {
		campaign := &due[i]
		err := w.DB.Transaction(func(tx *gorm.DB) error {
			return w.processCampaign(tx, today, campaign)
		})
		if err != nil {
			zap.L().Error("failed to process campaign",
				zap.String("project", campaign.Project),
				zap.String("campaign", campaign.ReferenceID),
				zap.Error(err))
		}
	}
	return nil
}

func (w *worker) processCampaign(tx *gorm.DB, today rules.Date, campaign *models.Campaign) error {
	rc, err := campaign.Rules()
	if err != nil {
		return err
	}

	if rc.Status == rules.StatusPending && !today.Before(rc.Config.StartDate) {
		rc.Status = rules.StatusRunning
	}
	if rc.Status != rules.StatusRunning {
		return nil
	}

	cfg := rc.Config
	for rc.Status == rules.StatusRunning {
		cycle := rc.CurrentCycle + 1
		cycleEnd := rules.CampaignEndDate(cfg.StartDate, cycle, cfg.Recurrence, cfg.CustomRecurrenceDays)
		if today.Before(cycleEnd) {
			break
		}

		if err := w.settleCycle(tx, campaign, &rc, cycle); err != nil {
			return err
		}

		rc.CurrentCycle = cycle
		if cfg.Recurrence == rules.RecurrenceNone || rc.CurrentCycle >= cfg.Duration {
			rc.Status = rules.StatusCompleted
		}
	}

	campaign.ApplyRules(rc)
	return tx.Save(campaign).Error
}

// settleCycle determines the cycle's winners from recorded metric scores
// and writes one ledger line per recipient. Automatic campaigns mark lines
// sent; manual campaigns leave them pending for an operator.
func (w *worker) settleCycle(tx *gorm.DB, campaign *models.Campaign, rc *rules.Campaign, cycle int) error {
	cfg := rc.Config

	audience := rules.UniqueAudience(cfg.Participants, &gormDirectory{DB: tx, Project: campaign.Project})
	if len(audience) == 0 {
		return nil
	}

	scores, err := cycleScores(tx, campaign, cycle, audience)
	if err != nil {
		return err
	}

	winners, err := pickWinners(cfg, audience, scores)
	if err != nil {
		return err
	}

	members, err := membersByReference(tx, campaign.Project, audience)
	if err != nil {
		return err
	}

	status := models.PayoutStatusPending
	if cfg.PayoutMethod == rules.PayoutAutomatic {
		status = models.PayoutStatusSent
	}

	var paidTotal decimal.Decimal
	var recipients int64
	for _, win := range winners {
		if !win.Amount.IsPositive() {
			continue
		}
		member, ok := members[win.MemberReferenceID]
		if !ok {
			zap.L().Warn("skipping payout for unknown member",
				zap.String("project", campaign.Project),
				zap.String("member", win.MemberReferenceID))
			continue
		}

		record := &models.PayoutRecord{
			Project:           campaign.Project,
			Reference:         utils.NewReference(),
			CampaignID:        campaign.ID,
			MemberID:          member.ID,
			MemberReferenceID: win.MemberReferenceID,
			Cycle:             cycle,
			Rank:              win.Rank,
			Points:            win.Amount,
			CashAmount:        win.Amount.Div(decimal.NewFromInt(rules.PointsPerDollar)),
			Status:            status,
		}
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create payout record: %w", err)
		}

		paidTotal = paidTotal.Add(win.Amount)
		recipients++
	}

	rc.TotalPayouts = rc.TotalPayouts.Add(paidTotal)
	rc.TotalRecipients += recipients
	return nil
}

type cycleWinner struct {
	MemberReferenceID string
	Rank              *int
	Amount            decimal.Decimal
}

// pickWinners applies the campaign's qualifier to the cycle scores.
// Everyone and threshold pay the single-tier amount; top-N ranks the
// audience and pays per tier with the campaign's tie-break rules.
func pickWinners(cfg rules.CampaignConfig, audience []string, scores map[string]decimal.Decimal) ([]cycleWinner, error) {
	switch cfg.QualifierType {
	case rules.QualifierEveryone:
		winners := make([]cycleWinner, 0, len(audience))
		for _, ref := range audience {
			winners = append(winners, cycleWinner{MemberReferenceID: ref, Amount: cfg.RewardAmount})
		}
		return winners, nil

	case rules.QualifierThreshold:
		bar := decimal.NewFromInt(int64(cfg.QualifierValue))
		var winners []cycleWinner
		for _, ref := range audience {
			if scores[ref].GreaterThanOrEqual(bar) {
				winners = append(winners, cycleWinner{MemberReferenceID: ref, Amount: cfg.RewardAmount})
			}
		}
		return winners, nil

	case rules.QualifierTopN:
		ordered := append([]string(nil), audience...)
		sort.SliceStable(ordered, func(i, j int) bool {
			si, sj := scores[ordered[i]], scores[ordered[j]]
			if !si.Equal(sj) {
				return si.GreaterThan(sj)
			}
			return ordered[i] < ordered[j]
		})

		scoreList := make([]decimal.Decimal, len(ordered))
		for i, ref := range ordered {
			scoreList[i] = scores[ref]
		}
		ranks := rules.AssignRanks(scoreList, cfg.TieBreakerRule)
		amounts := rules.RankPayouts(ranks, cfg.TieredRewards, cfg.TieBreakerPay)

		var winners []cycleWinner
		for i, ref := range ordered {
			if ranks[i] > cfg.QualifierValue {
				continue
			}
			rank := ranks[i]
			winners = append(winners, cycleWinner{
				MemberReferenceID: ref,
				Rank:              &rank,
				Amount:            amounts[i],
			})
		}
		return winners, nil

	default:
		return nil, fmt.Errorf("campaign has unknown qualifier type %q", cfg.QualifierType)
	}
}

// cycleScores sums the cycle's metric entries per audience member. Members
// with no samples score zero.
func cycleScores(tx *gorm.DB, campaign *models.Campaign, cycle int, audience []string) (map[string]decimal.Decimal, error) {
	var entries []models.MetricEntry
	if err := tx.
		Where("project = ? AND campaign_id = ? AND cycle = ?", campaign.Project, campaign.ID, cycle).
		Where("member_reference_id IN (?)", audience).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cycle scores: %w", err)
	}

	scores := make(map[string]decimal.Decimal, len(audience))
	for _, entry := range entries {
		scores[entry.MemberReferenceID] = scores[entry.MemberReferenceID].Add(entry.Score)
	}
	return scores, nil
}

func membersByReference(tx *gorm.DB, project string, refs []string) (map[string]models.Member, error) {
	var members []models.Member
	if err := tx.Where("project = ? AND reference_id IN (?)", project, refs).
		Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch audience members: %w", err)
	}

	byRef := make(map[string]models.Member, len(members))
	for _, m := range members {
		byRef[m.ReferenceID] = m
	}
	return byRef, nil
}
