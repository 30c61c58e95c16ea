package services

import (
	"context"

	"skillswap/internal/models/db_models"
	"skillswap/internal/repositories"
	"skillswap/pkg/utils"
)

// loadUser resolves a public id to a user. A missing user is ErrUserNotFound;
// a failed lookup is reported as failure.
func loadUser(ctx context.Context, repo repositories.UserRepository, userID, failure string) (*db_models.User, error) {
	user, err := repo.FindByUUID(ctx, userID)
	if err != nil {
		return nil, utils.Internal(failure, err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}
