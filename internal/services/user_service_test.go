package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"skillswap/internal/models/db_models"
	"skillswap/internal/models/request_models"
	"skillswap/internal/repositories"
	"skillswap/pkg/utils"
)

// slowUserRepo runs during after the public list has been read, standing in
// for a request that lands while the list is in flight.
type slowUserRepo struct {
	repositories.UserRepository
	during func()
}

func (r *slowUserRepo) ListPublic(ctx context.Context) ([]db_models.User, error) {
	users, err := r.UserRepository.ListPublic(ctx)
	if r.during != nil {
		r.during()
	}
	return users, err
}

func TestListPublicIsCachedUntilVisibilityChanges(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ann := env.register(t, "Ann", "ann@x.com")

	first, err := env.users.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	_, ok, _ := env.cache.Get(ctx, PublicUsersCacheKey)
	require.True(t, ok, "expected the list to be cached")

	// A registration does not evict, so the cached list is served.
	env.register(t, "Bob", "bob@x.com")
	stale, err := env.users.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, stale, 1)

	toggled, err := env.users.TogglePublic(ctx, ann.User.ID)
	require.NoError(t, err)
	require.False(t, toggled.IsPublic)

	afterHide, err := env.users.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, afterHide, 1)
	require.Equal(t, "bob@x.com", afterHide[0].Email)

	toggled, err = env.users.TogglePublic(ctx, ann.User.ID)
	require.NoError(t, err)
	require.True(t, toggled.IsPublic, "second toggle should restore visibility")

	afterShow, err := env.users.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, afterShow, 2)
}

func TestListPublicSkipsWriteBackAfterConcurrentEviction(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ann := env.register(t, "Ann", "ann@x.com")

	repo := &slowUserRepo{UserRepository: env.userRepo}
	users := NewUserService(repo, env.cache, time.Minute, env.presenter, zap.NewNop())
	repo.during = func() {
		_, err := users.TogglePublic(ctx, ann.User.ID)
		require.NoError(t, err)
	}

	list, err := users.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1, "the in-flight read still answers with what it loaded")

	_, ok, _ := env.cache.Get(ctx, PublicUsersCacheKey)
	require.False(t, ok, "a list read before the toggle must not be cached after it")

	repo.during = nil
	fresh, err := users.ListPublic(ctx)
	require.NoError(t, err)
	require.Empty(t, fresh)
	_, ok, _ = env.cache.Get(ctx, PublicUsersCacheKey)
	require.True(t, ok, "reads after the eviction are cached again")
}

func TestUpdateAvailabilityEvictsCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ann := env.register(t, "Ann", "ann@x.com")

	_, err := env.users.ListPublic(ctx)
	require.NoError(t, err)

	slots := []db_models.AvailabilitySlot{{Day: "Monday", StartTime: "09:00", EndTime: "17:00"}}
	resp, err := env.users.UpdateAvailability(ctx, ann.User.ID, slots)
	require.NoError(t, err)
	require.Len(t, resp.Availability, 1)

	_, ok, _ := env.cache.Get(ctx, PublicUsersCacheKey)
	require.False(t, ok, "expected cache eviction")

	list, err := env.users.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, list[0].Availability, 1)
	require.Equal(t, "09:00", list[0].Availability[0].StartTime)
}

func TestValidateAvailability(t *testing.T) {
	cases := []struct {
		name  string
		slots []db_models.AvailabilitySlot
		ok    bool
	}{
		{"empty", nil, true},
		{"valid", []db_models.AvailabilitySlot{{Day: "Friday", StartTime: "00:00", EndTime: "23:59"}}, true},
		{"missing day", []db_models.AvailabilitySlot{{StartTime: "09:00", EndTime: "10:00"}}, false},
		{"bad hour", []db_models.AvailabilitySlot{{Day: "Monday", StartTime: "24:00", EndTime: "10:00"}}, false},
		{"no padding", []db_models.AvailabilitySlot{{Day: "Monday", StartTime: "9:00", EndTime: "10:00"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAvailability(tc.slots)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, utils.ErrValidation)
		})
	}
}

func TestSearch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ann := env.register(t, "Ann", "ann@x.com")

	_, err := env.skills.AddOffered(ctx, ann.User.ID, request_models.CreateSkillRequest{Name: "Guitar", Description: "Acoustic"})
	require.NoError(t, err)

	empty, err := env.users.Search(ctx, "  ")
	require.NoError(t, err)
	require.NotNil(t, empty, "empty query should give an empty list, not nil")
	require.Empty(t, empty)

	found, err := env.users.Search(ctx, "GUIT")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, ann.User.ID, found[0].ID)
}

func TestUpdateProfileAppliesOnlyGivenFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ann := env.register(t, "Ann", "ann@x.com")

	empty := ""
	city := "Pune"
	resp, err := env.users.UpdateProfile(ctx, ann.User.ID, request_models.UpdateProfileRequest{
		Name:     &empty,
		Location: &city,
	})
	require.NoError(t, err)
	require.Equal(t, "Ann", resp.Name, "empty name must be ignored")
	require.NotNil(t, resp.Location)
	require.Equal(t, "Pune", *resp.Location)

	got, err := env.users.Get(ctx, ann.User.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Location)
	require.Equal(t, "Pune", *got.Location)
}

func TestAdminSetStatusAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ann := env.register(t, "Ann", "ann@x.com")

	updated, err := env.users.SetStatus(ctx, ann.User.ID, db_models.StatusBlocked)
	require.NoError(t, err)
	require.Equal(t, db_models.StatusBlocked, updated.Status)

	_, err = env.users.SetStatus(ctx, ann.User.ID, "gone")
	require.ErrorIs(t, err, utils.ErrValidation)

	all, err := env.users.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, db_models.RoleUser, all[0].Role)

	require.NoError(t, env.users.Delete(ctx, ann.User.ID))
	_, err = env.users.Get(ctx, ann.User.ID)
	require.ErrorIs(t, err, utils.ErrUserNotFound)
	require.ErrorIs(t, env.users.Delete(ctx, ann.User.ID), utils.ErrUserNotFound, "second delete")
}
