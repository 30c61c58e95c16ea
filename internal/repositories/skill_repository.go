package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"skillswap/internal/models/db_models"
)

type SkillRepository interface {
	CreateOffered(ctx context.Context, skill *db_models.Skill) error
	CreateWanted(ctx context.Context, skill *db_models.SkillWanted) error
	// DeleteOfferedOwned deletes the skill only when ownerID owns it and
	// reports whether a row was removed.
	DeleteOfferedOwned(ctx context.Context, skillUUID string, ownerID uint) (bool, error)
	DeleteWantedOwned(ctx context.Context, skillUUID string, ownerID uint) (bool, error)
}

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (s *skillRepository) CreateOffered(ctx context.Context, skill *db_models.Skill) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(skill).Error
	})
}

func (s *skillRepository) CreateWanted(ctx context.Context, skill *db_models.SkillWanted) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(skill).Error
	})
}

func deleteOwned[T any](ctx context.Context, db *gorm.DB, skillUUID string, ownerID uint) (bool, error) {
	found := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row T
		err := tx.Where("uuid = ? AND user_id = ?", skillUUID, ownerID).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return tx.Delete(&row).Error
	})
	return found, err
}

func (s *skillRepository) DeleteOfferedOwned(ctx context.Context, skillUUID string, ownerID uint) (bool, error) {
	return deleteOwned[db_models.Skill](ctx, s.db, skillUUID, ownerID)
}

func (s *skillRepository) DeleteWantedOwned(ctx context.Context, skillUUID string, ownerID uint) (bool, error) {
	return deleteOwned[db_models.SkillWanted](ctx, s.db, skillUUID, ownerID)
}
