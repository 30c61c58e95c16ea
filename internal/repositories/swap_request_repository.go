package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skillswap/internal/models/db_models"
)

type SwapRequestRepository interface {
	Create(ctx context.Context, req *db_models.SwapRequest) error
	FindByUUID(ctx context.Context, uuid string) (*db_models.SwapRequest, error)
	// FindForParticipant returns the request only when userID is its sender
	// or receiver.
	FindForParticipant(ctx context.Context, uuid string, userID uint) (*db_models.SwapRequest, error)
	ListSent(ctx context.Context, userID uint) ([]db_models.SwapRequest, error)
	ListReceived(ctx context.Context, userID uint) ([]db_models.SwapRequest, error)
	UpdateStatus(ctx context.Context, req *db_models.SwapRequest, status string) error
	Delete(ctx context.Context, req *db_models.SwapRequest) error
}

type swapRequestRepository struct {
	db *gorm.DB
}

func NewSwapRequestRepository(db *gorm.DB) SwapRequestRepository {
	return &swapRequestRepository{db: db}
}

func withParties(db *gorm.DB) *gorm.DB {
	return db.Preload("Sender").Preload("Receiver")
}

func (r *swapRequestRepository) Create(ctx context.Context, req *db_models.SwapRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(req).Error
	})
}

func (r *swapRequestRepository) first(ctx context.Context, query *gorm.DB) (*db_models.SwapRequest, error) {
	var req db_models.SwapRequest
	err := query.WithContext(ctx).Scopes(withParties).First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *swapRequestRepository) FindByUUID(ctx context.Context, uuid string) (*db_models.SwapRequest, error) {
	return r.first(ctx, r.db.Where("uuid = ?", uuid))
}

func (r *swapRequestRepository) FindForParticipant(ctx context.Context, uuid string, userID uint) (*db_models.SwapRequest, error) {
	return r.first(ctx, r.db.
		Where("uuid = ?", uuid).
		Where(r.db.Where("sender_id = ?", userID).Or("receiver_id = ?", userID)))
}

func (r *swapRequestRepository) list(ctx context.Context, column string, userID uint) ([]db_models.SwapRequest, error) {
	var reqs []db_models.SwapRequest
	err := r.db.WithContext(ctx).
		Scopes(withParties).
		Where(column+" = ?", userID).
		Order("id").
		Find(&reqs).Error
	return reqs, err
}

func (r *swapRequestRepository) ListSent(ctx context.Context, userID uint) ([]db_models.SwapRequest, error) {
	return r.list(ctx, "sender_id", userID)
}

func (r *swapRequestRepository) ListReceived(ctx context.Context, userID uint) ([]db_models.SwapRequest, error) {
	return r.list(ctx, "receiver_id", userID)
}

func (r *swapRequestRepository) UpdateStatus(ctx context.Context, req *db_models.SwapRequest, status string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(req).Omit(clause.Associations).Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
	})
}

// Delete removes the request and any feedback left on it.
func (r *swapRequestRepository) Delete(ctx context.Context, req *db_models.SwapRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("swap_request_id = ?", req.ID).Delete(&db_models.Feedback{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.SwapRequest{}, req.ID).Error
	})
}
