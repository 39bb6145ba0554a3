package request

import "gorm.io/gorm"

type CreateTeamRequest struct {
	Tag              string   `json:"tag" binding:"required"`
	Name             string   `json:"name" binding:"required"`
	MemberReferences []string `json:"memberReferences"`
}

type GetTeamsRequest struct {
	Projects             []string             `form:"projects"`
	Tags                 []string             `form:"tags"`
	Name                 *string              `form:"name"`
	PaginationConditions PaginationConditions `form:"paginationConditions"`
}

func ApplyGetTeamsRequest(req GetTeamsRequest, query *gorm.DB) *gorm.DB {
	if len(req.Projects) > 0 {
		query = query.Where("incentive_teams.project IN (?)", req.Projects)
	}
	if len(req.Tags) > 0 {
		query = query.Where("incentive_teams.tag IN (?)", req.Tags)
	}
	if req.Name != nil {
		query = query.Where("incentive_teams.name LIKE ?", "%"+*req.Name+"%")
	}
	return query
}
