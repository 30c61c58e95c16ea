package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skillswap/internal/models/db_models"
)

type UserRepository interface {
	Create(ctx context.Context, user *db_models.User) error
	FindByUUID(ctx context.Context, uuid string) (*db_models.User, error)
	FindByUUIDWithSkills(ctx context.Context, uuid string) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	ListPublic(ctx context.Context) ([]db_models.User, error)
	ListAll(ctx context.Context) ([]db_models.User, error)
	SearchPublicBySkill(ctx context.Context, skill string) ([]db_models.User, error)
	UpdateFields(ctx context.Context, user *db_models.User, fields map[string]interface{}) error
	Delete(ctx context.Context, user *db_models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func withSkills(db *gorm.DB) *gorm.DB {
	return db.
		Preload("SkillsOffered", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("SkillsWanted", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
}

func (r *userRepository) Create(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(user).Error
	})
}

func (r *userRepository) first(ctx context.Context, scope func(*gorm.DB) *gorm.DB, query string, args ...interface{}) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).Scopes(scope).Where(query, args...).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func noScope(db *gorm.DB) *gorm.DB { return db }

func (r *userRepository) FindByUUID(ctx context.Context, uuid string) (*db_models.User, error) {
	return r.first(ctx, noScope, "uuid = ?", uuid)
}

func (r *userRepository) FindByUUIDWithSkills(ctx context.Context, uuid string) (*db_models.User, error) {
	return r.first(ctx, withSkills, "uuid = ?", uuid)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return r.first(ctx, noScope, "email = ?", email)
}

func (r *userRepository) ListPublic(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	err := r.db.WithContext(ctx).
		Scopes(withSkills).
		Where("is_public = ?", true).
		Order("id").
		Find(&users).Error
	return users, err
}

func (r *userRepository) ListAll(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	err := r.db.WithContext(ctx).Scopes(withSkills).Order("id").Find(&users).Error
	return users, err
}

// SearchPublicBySkill matches public users whose offered or wanted skill name
// contains skill, ignoring case. Each user appears once.
func (r *userRepository) SearchPublicBySkill(ctx context.Context, skill string) ([]db_models.User, error) {
	pattern := "%" + strings.ToLower(skill) + "%"

	offered := r.db.Model(&db_models.Skill{}).Select("user_id").Where("LOWER(name) LIKE ?", pattern)
	wanted := r.db.Model(&db_models.SkillWanted{}).Select("user_id").Where("LOWER(name) LIKE ?", pattern)

	var users []db_models.User
	err := r.db.WithContext(ctx).
		Scopes(withSkills).
		Where("is_public = ?", true).
		Where(r.db.Where("id IN (?)", offered).Or("id IN (?)", wanted)).
		Order("id").
		Find(&users).Error
	return users, err
}

func (r *userRepository) UpdateFields(ctx context.Context, user *db_models.User, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(user).Omit(clause.Associations).Updates(fields).Error
	})
}

// Delete removes the user together with their offered skills, wanted skills,
// sent swap requests and the feedback attached to those requests. Requests
// the user received and feedback tied to other requests are left in place.
func (r *userRepository) Delete(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&db_models.Skill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&db_models.SkillWanted{}).Error; err != nil {
			return err
		}
		sent := tx.Model(&db_models.SwapRequest{}).Select("id").Where("sender_id = ?", user.ID)
		if err := tx.Where("swap_request_id IN (?)", sent).Delete(&db_models.Feedback{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_id = ?", user.ID).Delete(&db_models.SwapRequest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.User{}, user.ID).Error
	})
}
