package serviceimpl

import (
	"fmt"
	"net/mail"

	"github.com/FieldPulse/go-incentives/models"
	"github.com/FieldPulse/go-incentives/request"
	"gorm.io/gorm"
)

type memberService struct {
	DB *gorm.DB
}

func NewMemberService(db *gorm.DB) *memberService {
	return &memberService{DB: db}
}

func (s *memberService) CreateMember(project string, req request.CreateMemberRequest) (*models.Member, error) {
	if req.Email != nil {
		if *req.Email == "" {
			return nil, fmt.Errorf("email cannot be empty")
		}
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			return nil, fmt.Errorf("invalid email format: %w", err)
		}
	}

	member := &models.Member{
		Project:     project,
		ReferenceID: req.ReferenceID,
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		Branch:      req.Branch,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		return assignTeams(tx, project, member.ID, req.TeamTags)
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Teams").First(member, member.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to preload member data: %w", err)
	}
	return member, nil
}

func (s *memberService) GetMembers(req request.GetMembersRequest) ([]models.Member, int64, error) {
	var members []models.Member
	var count int64

	query := s.DB.Model(&models.Member{})
	query = request.ApplyGetMembersRequest(req, query)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	query = request.ApplyPaginationConditions(query, req.PaginationConditions)

	if err := query.Preload("Teams").Find(&members).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch members: %w", err)
	}
	return members, count, nil
}

func (s *memberService) GetTotalMembers(req request.GetMembersRequest) (int64, error) {
	var count int64
	query := s.DB.Model(&models.Member{})
	query = request.ApplyGetMembersRequest(req, query)
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return count, nil
}

func (s *memberService) UpdateMember(project, referenceID string, req request.UpdateMemberRequest) (*models.Member, error) {
	var member models.Member
	if err := s.DB.Where("project = ? AND reference_id = ?", project, referenceID).First(&member).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch member %s: %w", referenceID, err)
	}

	if req.Email != nil {
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			return nil, fmt.Errorf("invalid email format: %w", err)
		}
		member.Email = req.Email
	}
	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Branch != nil {
		member.Branch = req.Branch
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&member).Error; err != nil {
			return err
		}
		if req.TeamTags == nil {
			return nil
		}
		// Replace team assignments with the submitted set.
		if err := tx.Where("project = ? AND member_id = ?", project, member.ID).
			Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		return assignTeams(tx, project, member.ID, req.TeamTags)
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Teams").First(&member, member.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to preload member data: %w", err)
	}
	return &member, nil
}

func (s *memberService) UpdateMemberStatus(project, referenceID string, newStatus string) (*models.Member, error) {
	if newStatus != "active" && newStatus != "inactive" {
		return nil, fmt.Errorf("invalid member status: %s", newStatus)
	}

	var member models.Member
	if err := s.DB.Where("project = ? AND reference_id = ?", project, referenceID).First(&member).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch member %s: %w", referenceID, err)
	}

	member.Status = newStatus
	if err := s.DB.Save(&member).Error; err != nil {
		return nil, fmt.Errorf("failed to update member status: %w", err)
	}
	return &member, nil
}

func assignTeams(tx *gorm.DB, project string, memberID uint, tags []string) error {
	for _, tag := range tags {
		var team models.Team
		if err := tx.Where("project = ? AND tag = ?", project, tag).First(&team).Error; err != nil {
			return fmt.Errorf("unknown team tag %q: %w", tag, err)
		}
		assignment := &models.TeamMember{
			Project:  project,
			TeamID:   team.ID,
			MemberID: memberID,
		}
		if err := tx.Create(assignment).Error; err != nil {
			return err
		}
	}
	return nil
}
