package request

import "gorm.io/gorm"

type GetPayoutsRequest struct {
	Projects             []string             `form:"projects"`
	CampaignIDs          []uint               `form:"campaignIds"`
	MemberIDs            []uint               `form:"memberIds"`
	MemberReferenceIDs   []string             `form:"memberReferenceIds"`
	Cycle                *int                 `form:"cycle"`
	Status               *string              `form:"status"`
	PaginationConditions PaginationConditions `form:"paginationConditions"`
}

func ApplyGetPayoutsRequest(req GetPayoutsRequest, query *gorm.DB) *gorm.DB {
	if len(req.Projects) > 0 {
		query = query.Where("incentive_payout_records.project IN (?)", req.Projects)
	}
	if len(req.CampaignIDs) > 0 {
		query = query.Where("incentive_payout_records.campaign_id IN (?)", req.CampaignIDs)
	}
	if len(req.MemberIDs) > 0 {
		query = query.Where("incentive_payout_records.member_id IN (?)", req.MemberIDs)
	}
	if len(req.MemberReferenceIDs) > 0 {
		query = query.Where("incentive_payout_records.member_reference_id IN (?)", req.MemberReferenceIDs)
	}
	if req.Cycle != nil {
		query = query.Where("incentive_payout_records.cycle = ?", *req.Cycle)
	}
	if req.Status != nil {
		query = query.Where("incentive_payout_records.status = ?", *req.Status)
	}
	return query
}
