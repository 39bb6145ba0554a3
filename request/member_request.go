package request

import "gorm.io/gorm"

type CreateMemberRequest struct {
	ReferenceID string   `json:"referenceId" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Email       *string  `json:"email"`
	Role        string   `json:"role" binding:"required"`
	Branch      *string  `json:"branch"`
	TeamTags    []string `json:"teamTags"`
}

type UpdateMemberRequest struct {
	Name     *string  `json:"name"`
	Email    *string  `json:"email"`
	Role     *string  `json:"role"`
	Branch   *string  `json:"branch"`
	TeamTags []string `json:"teamTags"`
}

type GetMembersRequest struct {
	Projects             []string             `form:"projects"`
	IDs                  []uint               `form:"ids"`
	ReferenceIDs         []string             `form:"referenceIds"`
	Name                 *string              `form:"name"`
	Role                 *string              `form:"role"`
	Branch               *string              `form:"branch"`
	Status               *string              `form:"status"`
	TeamTag              *string              `form:"teamTag"`
	PaginationConditions PaginationConditions `form:"paginationConditions"`
}

func ApplyGetMembersRequest(req GetMembersRequest, query *gorm.DB) *gorm.DB {
	if len(req.Projects) > 0 {
		query = query.Where("incentive_members.project IN (?)", req.Projects)
	}
	if len(req.IDs) > 0 {
		query = query.Where("incentive_members.id IN (?)", req.IDs)
	}
	if len(req.ReferenceIDs) > 0 {
		query = query.Where("incentive_members.reference_id IN (?)", req.ReferenceIDs)
	}
	if req.Name != nil {
		query = query.Where("incentive_members.name LIKE ?", "%"+*req.Name+"%")
	}
	if req.Role != nil {
		query = query.Where("incentive_members.role = ?", *req.Role)
	}
	if req.Branch != nil {
		query = query.Where("incentive_members.branch = ?", *req.Branch)
	}
	if req.Status != nil {
		query = query.Where("incentive_members.status = ?", *req.Status)
	}
	if req.TeamTag != nil {
		query = query.
			Joins("JOIN incentive_team_members tm ON tm.member_id = incentive_members.id").
			Joins("JOIN incentive_teams t ON t.id = tm.team_id").
			Where("t.tag = ?", *req.TeamTag)
	}
	return query
}
