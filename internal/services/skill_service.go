package services

import (
	"context"

	"skillswap/internal/models/db_models"
	"skillswap/internal/models/request_models"
	"skillswap/internal/models/response_models"
	"skillswap/internal/repositories"
	"skillswap/pkg/utils"
)

const (
	addSkillFailed    = "Failed to add skill"
	removeSkillFailed = "Failed to remove skill"
)

type SkillServiceInterface interface {
	AddOffered(ctx context.Context, userID string, request request_models.CreateSkillRequest) (*response_models.SkillResponse, error)
	AddWanted(ctx context.Context, userID string, request request_models.CreateWantedSkillRequest) (*response_models.WantedSkillResponse, error)
	RemoveOffered(ctx context.Context, userID, skillID string) error
	RemoveWanted(ctx context.Context, userID, skillID string) error
}

type SkillService struct {
	userRepo  repositories.UserRepository
	skillRepo repositories.SkillRepository
	presenter *response_models.Presenter
}

func NewSkillService(userRepo repositories.UserRepository, skillRepo repositories.SkillRepository, presenter *response_models.Presenter) SkillServiceInterface {
	return &SkillService{userRepo: userRepo, skillRepo: skillRepo, presenter: presenter}
}

func (s *SkillService) AddOffered(ctx context.Context, userID string, request request_models.CreateSkillRequest) (*response_models.SkillResponse, error) {
	owner, err := loadUser(ctx, s.userRepo, userID, addSkillFailed)
	if err != nil {
		return nil, err
	}

	description := request.Description
	skill := &db_models.Skill{
		UserID:      owner.ID,
		Name:        request.Name,
		Description: &description,
		Category:    request.Category,
		Level:       request.Level,
	}
	if err := s.skillRepo.CreateOffered(ctx, skill); err != nil {
		return nil, utils.Internal(addSkillFailed, err)
	}

	resp := s.presenter.Skill(skill)
	return &resp, nil
}

func (s *SkillService) AddWanted(ctx context.Context, userID string, request request_models.CreateWantedSkillRequest) (*response_models.WantedSkillResponse, error) {
	owner, err := loadUser(ctx, s.userRepo, userID, addSkillFailed)
	if err != nil {
		return nil, err
	}

	description := request.Description
	skill := &db_models.SkillWanted{
		UserID:      owner.ID,
		Name:        request.Name,
		Description: &description,
		Category:    request.Category,
		LevelNeeded: request.LevelNeeded,
	}
	if err := s.skillRepo.CreateWanted(ctx, skill); err != nil {
		return nil, utils.Internal(addSkillFailed, err)
	}

	resp := s.presenter.WantedSkill(skill)
	return &resp, nil
}

func (s *SkillService) RemoveOffered(ctx context.Context, userID, skillID string) error {
	return s.remove(ctx, userID, skillID, s.skillRepo.DeleteOfferedOwned)
}

func (s *SkillService) RemoveWanted(ctx context.Context, userID, skillID string) error {
	return s.remove(ctx, userID, skillID, s.skillRepo.DeleteWantedOwned)
}

// remove answers ErrSkillNotFound both for missing skills and for skills
// owned by someone else.
func (s *SkillService) remove(ctx context.Context, userID, skillID string, del func(context.Context, string, uint) (bool, error)) error {
	owner, err := loadUser(ctx, s.userRepo, userID, removeSkillFailed)
	if err != nil {
		return err
	}
	deleted, err := del(ctx, skillID, owner.ID)
	if err != nil {
		return utils.Internal(removeSkillFailed, err)
	}
	if !deleted {
		return utils.ErrSkillNotFound
	}
	return nil
}
