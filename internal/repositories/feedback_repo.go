package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skillswap/internal/models/db_models"
)

type FeedbackRepositoryInterface interface {
	CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error
	ListForRecipient(ctx context.Context, userID uint) ([]db_models.Feedback, error)
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(feedback).Error
	})
}

func (r *FeedbackRepository) ListForRecipient(ctx context.Context, userID uint) ([]db_models.Feedback, error) {
	var feedbacks []db_models.Feedback
	err := r.db.WithContext(ctx).
		Preload("FromUser").
		Preload("ToUser").
		Preload("SwapRequest").
		Where("to_user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}
