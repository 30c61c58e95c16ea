package repositories

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"skillswap/internal/infra"
	"skillswap/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.OpenDatabase(infra.DatabaseConfig{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := infra.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func strPtr(s string) *string { return &s }

func mustCreateUser(t *testing.T, repo UserRepository, name, email string, public bool) *db_models.User {
	t.Helper()
	u := &db_models.User{
		Name:           name,
		Email:          email,
		PasswordHashed: "hash",
		IsPublic:       public,
		Role:           db_models.RoleUser,
		Status:         db_models.StatusVerified,
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}
