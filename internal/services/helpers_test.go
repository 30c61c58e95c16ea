package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"skillswap/internal/infra"
	"skillswap/internal/models/request_models"
	"skillswap/internal/models/response_models"
	"skillswap/internal/repositories"
	"skillswap/pkg/cache"
	"skillswap/pkg/storage"
	"skillswap/pkg/utils"
)

type testEnv struct {
	db        *gorm.DB
	cache     *cache.Memory
	tokens    *utils.TokenIssuer
	presenter *response_models.Presenter
	userRepo  repositories.UserRepository
	accounts  AccountServiceInterface
	users     UserServiceInterface
	skills    SkillServiceInterface
	swaps     SwapServiceInterface
	feedback  FeedbackServiceInterface
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := infra.OpenDatabase(infra.DatabaseConfig{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestPresenter(photos storage.PhotoStore) *response_models.Presenter {
	return response_models.NewPresenter(func(name string) string {
		return storage.PhotoURL(photos, name)
	}, time.UTC)
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	photos, err := storage.NewLocal(t.TempDir(), "/static/uploads/profile_photos")
	require.NoError(t, err)
	presenter := newTestPresenter(photos)

	userRepo := repositories.NewUserRepository(db)
	swapRepo := repositories.NewSwapRequestRepository(db)
	store := cache.NewMemory()
	tokens := utils.NewTokenIssuer("test-secret", 6*time.Hour)
	log := zap.NewNop()

	return &testEnv{
		db:        db,
		cache:     store,
		tokens:    tokens,
		presenter: presenter,
		userRepo:  userRepo,
		accounts:  NewAccountService(userRepo, photos, tokens, presenter, log),
		users:     NewUserService(userRepo, store, time.Minute, presenter, log),
		skills:    NewSkillService(userRepo, repositories.NewSkillRepository(db), presenter),
		swaps:     NewSwapService(userRepo, swapRepo, presenter),
		feedback:  NewFeedbackService(userRepo, swapRepo, repositories.NewFeedbackRepository(db), presenter),
	}
}

func (e *testEnv) register(t *testing.T, name, email string) *response_models.AuthResponse {
	t.Helper()
	resp, err := e.accounts.Register(context.Background(), request_models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err, "register %s", email)
	return resp
}
