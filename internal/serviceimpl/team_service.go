package serviceimpl

import (
	"fmt"

	"github.com/FieldPulse/go-incentives/models"
	"github.com/FieldPulse/go-incentives/request"
	"github.com/FieldPulse/go-incentives/rules"
	"gorm.io/gorm"
)

type teamService struct {
	DB *gorm.DB
}

func NewTeamService(db *gorm.DB) *teamService {
	return &teamService{DB: db}
}

func (s *teamService) CreateTeam(project string, req request.CreateTeamRequest) (*models.Team, error) {
	team := &models.Team{
		Project: project,
		Tag:     req.Tag,
		Name:    req.Name,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		for _, ref := range req.MemberReferences {
			var member models.Member
			if err := tx.Where("project = ? AND reference_id = ?", project, ref).First(&member).Error; err != nil {
				return fmt.Errorf("unknown member %q: %w", ref, err)
			}
			assignment := &models.TeamMember{
				Project:  project,
				TeamID:   team.ID,
				MemberID: member.ID,
			}
			if err := tx.Create(assignment).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Members").First(team, team.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to preload team data: %w", err)
	}
	return team, nil
}

func (s *teamService) GetTeams(req request.GetTeamsRequest) ([]models.Team, int64, error) {
	var teams []models.Team
	var count int64

	query := s.DB.Model(&models.Team{})
	query = request.ApplyGetTeamsRequest(req, query)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count teams: %w", err)
	}

	query = request.ApplyPaginationConditions(query, req.PaginationConditions)

	if err := query.Preload("Members").Find(&teams).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch teams: %w", err)
	}
	return teams, count, nil
}

func (s *teamService) AssignMember(project, teamTag, memberReferenceID string) error {
	team, member, err := s.resolve(project, teamTag, memberReferenceID)
	if err != nil {
		return err
	}

	assignment := &models.TeamMember{
		Project:  project,
		TeamID:   team.ID,
		MemberID: member.ID,
	}
	return s.DB.Create(assignment).Error
}

func (s *teamService) RemoveMember(project, teamTag, memberReferenceID string) error {
	team, member, err := s.resolve(project, teamTag, memberReferenceID)
	if err != nil {
		return err
	}

	return s.DB.Where("project = ? AND team_id = ? AND member_id = ?", project, team.ID, member.ID).
		Delete(&models.TeamMember{}).Error
}

func (s *teamService) resolve(project, teamTag, memberReferenceID string) (*models.Team, *models.Member, error) {
	var team models.Team
	if err := s.DB.Where("project = ? AND tag = ?", project, teamTag).First(&team).Error; err != nil {
		return nil, nil, fmt.Errorf("unknown team tag %q: %w", teamTag, err)
	}
	var member models.Member
	if err := s.DB.Where("project = ? AND reference_id = ?", project, memberReferenceID).First(&member).Error; err != nil {
		return nil, nil, fmt.Errorf("unknown member %q: %w", memberReferenceID, err)
	}
	return &team, &member, nil
}

// Directory returns the group directory the audience resolver expands
// campaign participant tags against.
func (s *teamService) Directory(project string) rules.GroupDirectory {
	return &gormDirectory{DB: s.DB, Project: project}
}

// gormDirectory expands team tags into member reference IDs straight from
// the database.
type gormDirectory struct {
	DB      *gorm.DB
	Project string
}

func (d *gormDirectory) Expand(tag string) ([]string, bool) {
	var team models.Team
	if err := d.DB.Preload("Members").
		Where("project = ? AND tag = ?", d.Project, tag).
		First(&team).Error; err != nil {
		return nil, false
	}

	refs := make([]string, 0, len(team.Members))
	for _, m := range team.Members {
		refs = append(refs, m.ReferenceID)
	}
	return refs, true
}
