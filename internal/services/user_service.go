package services

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"skillswap/internal/models/db_models"
	"skillswap/internal/models/request_models"
	"skillswap/internal/models/response_models"
	"skillswap/internal/repositories"
	"skillswap/pkg/cache"
	"skillswap/pkg/utils"
)

// PublicUsersCacheKey names the single cached entry holding the public
// users list.
const PublicUsersCacheKey = "public_users_list"

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type UserServiceInterface interface {
	ListPublic(ctx context.Context) ([]response_models.UserResponse, error)
	Get(ctx context.Context, userID string) (*response_models.UserResponse, error)
	Search(ctx context.Context, skill string) ([]response_models.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*response_models.UserResponse, error)
	UpdateAvailability(ctx context.Context, userID string, slots []db_models.AvailabilitySlot) (*response_models.UserResponse, error)
	TogglePublic(ctx context.Context, userID string) (*response_models.UserResponse, error)

	ListAll(ctx context.Context) ([]response_models.AdminUserResponse, error)
	SetStatus(ctx context.Context, userID, status string) (*response_models.AdminUserResponse, error)
	Delete(ctx context.Context, userID string) error
}

type UserService struct {
	userRepo  repositories.UserRepository
	cache     cache.Store
	ttl       time.Duration
	presenter *response_models.Presenter
	log       *zap.Logger

	// evictions counts public-list evictions. A list read before an
	// eviction is not written back after it.
	mu        sync.Mutex
	evictions uint64
}

func NewUserService(
	userRepo repositories.UserRepository,
	store cache.Store,
	ttl time.Duration,
	presenter *response_models.Presenter,
	log *zap.Logger,
) UserServiceInterface {
	return &UserService{
		userRepo:  userRepo,
		cache:     store,
		ttl:       ttl,
		presenter: presenter,
		log:       log,
	}
}

func (s *UserService) ListPublic(ctx context.Context) ([]response_models.UserResponse, error) {
	if cached, ok := s.cachedPublicUsers(ctx); ok {
		return cached, nil
	}

	s.mu.Lock()
	seen := s.evictions
	s.mu.Unlock()

	users, err := s.userRepo.ListPublic(ctx)
	if err != nil {
		return nil, utils.Internal("Failed to load users", err)
	}
	resp := s.presenter.Users(users)
	s.storePublicUsers(ctx, resp, seen)
	return resp, nil
}

// storePublicUsers writes the list back unless an eviction happened since it
// was read. Evictions from other processes sharing a redis cache are not
// seen here; their staleness is bounded by the TTL.
func (s *UserService) storePublicUsers(ctx context.Context, resp []response_models.UserResponse, seen uint64) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.evictions != seen {
		return
	}
	if err := s.cache.Set(ctx, PublicUsersCacheKey, raw, s.ttl); err != nil {
		s.log.Warn("cache write failed", zap.String("key", PublicUsersCacheKey), zap.Error(err))
	}
}

// cachedPublicUsers treats any cache failure as a miss.
func (s *UserService) cachedPublicUsers(ctx context.Context) ([]response_models.UserResponse, bool) {
	raw, ok, err := s.cache.Get(ctx, PublicUsersCacheKey)
	if err != nil {
		s.log.Warn("cache read failed", zap.String("key", PublicUsersCacheKey), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var users []response_models.UserResponse
	if err := json.Unmarshal(raw, &users); err != nil {
		s.log.Warn("discarding unreadable cache entry", zap.String("key", PublicUsersCacheKey), zap.Error(err))
		return nil, false
	}
	return users, true
}

func (s *UserService) evictPublicUsers(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictions++
	if err := s.cache.Delete(ctx, PublicUsersCacheKey); err != nil {
		s.log.Warn("cache eviction failed", zap.String("key", PublicUsersCacheKey), zap.Error(err))
	}
}

func (s *UserService) Get(ctx context.Context, userID string) (*response_models.UserResponse, error) {
	user, err := s.userRepo.FindByUUIDWithSkills(ctx, userID)
	if err != nil {
		return nil, utils.Internal("Failed to load user", err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	resp := s.presenter.User(user)
	return &resp, nil
}

func (s *UserService) Search(ctx context.Context, skill string) ([]response_models.UserResponse, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return []response_models.UserResponse{}, nil
	}
	users, err := s.userRepo.SearchPublicBySkill(ctx, skill)
	if err != nil {
		return nil, utils.Internal("Search failed", err)
	}
	return s.presenter.Users(users), nil
}

func (s *UserService) loadWithSkills(ctx context.Context, userID, failure string) (*db_models.User, error) {
	user, err := s.userRepo.FindByUUIDWithSkills(ctx, userID)
	if err != nil {
		return nil, utils.Internal(failure, err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*response_models.UserResponse, error) {
	const failure = "Profile update failed"

	user, err := s.loadWithSkills(ctx, userID, failure)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if request.Name != nil && *request.Name != "" {
		fields["name"] = *request.Name
		user.Name = *request.Name
	}
	if request.Location != nil && *request.Location != "" {
		fields["location"] = *request.Location
		user.Location = request.Location
	}
	if request.ProfilePhoto != nil && *request.ProfilePhoto != "" {
		fields["profile_photo"] = *request.ProfilePhoto
		user.ProfilePhoto = request.ProfilePhoto
	}
	if request.IsPublic != nil {
		fields["is_public"] = *request.IsPublic
		user.IsPublic = *request.IsPublic
	}

	if err := s.userRepo.UpdateFields(ctx, user, fields); err != nil {
		return nil, utils.Internal(failure, err)
	}
	if request.IsPublic != nil {
		s.evictPublicUsers(ctx)
	}

	resp := s.presenter.User(user)
	return &resp, nil
}

// ValidateAvailability checks that every slot names a day and uses HH:MM times.
func ValidateAvailability(slots []db_models.AvailabilitySlot) error {
	for _, slot := range slots {
		if strings.TrimSpace(slot.Day) == "" {
			return utils.Validation("Availability day is required")
		}
		if !clockPattern.MatchString(slot.StartTime) || !clockPattern.MatchString(slot.EndTime) {
			return utils.Validation("Availability times must use HH:MM")
		}
	}
	return nil
}

func (s *UserService) UpdateAvailability(ctx context.Context, userID string, slots []db_models.AvailabilitySlot) (*response_models.UserResponse, error) {
	const failure = "Failed to update availability"

	if err := ValidateAvailability(slots); err != nil {
		return nil, err
	}
	user, err := s.loadWithSkills(ctx, userID, failure)
	if err != nil {
		return nil, err
	}

	if slots == nil {
		slots = []db_models.AvailabilitySlot{}
	}
	availability := datatypes.NewJSONType(slots)
	if err := s.userRepo.UpdateFields(ctx, user, map[string]interface{}{"availability": availability}); err != nil {
		return nil, utils.Internal(failure, err)
	}
	user.Availability = availability
	s.evictPublicUsers(ctx)

	resp := s.presenter.User(user)
	return &resp, nil
}

func (s *UserService) TogglePublic(ctx context.Context, userID string) (*response_models.UserResponse, error) {
	const failure = "Failed to toggle public profile"

	user, err := s.loadWithSkills(ctx, userID, failure)
	if err != nil {
		return nil, err
	}

	next := !user.IsPublic
	if err := s.userRepo.UpdateFields(ctx, user, map[string]interface{}{"is_public": next}); err != nil {
		return nil, utils.Internal(failure, err)
	}
	user.IsPublic = next
	s.evictPublicUsers(ctx)

	resp := s.presenter.User(user)
	return &resp, nil
}

func (s *UserService) ListAll(ctx context.Context) ([]response_models.AdminUserResponse, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.Internal("Failed to load users", err)
	}
	return s.presenter.AdminUsers(users), nil
}

func (s *UserService) SetStatus(ctx context.Context, userID, status string) (*response_models.AdminUserResponse, error) {
	const failure = "Failed to update user status"

	switch status {
	case db_models.StatusPending, db_models.StatusVerified, db_models.StatusBlocked:
	default:
		return nil, utils.Validation("Invalid status")
	}

	user, err := s.loadWithSkills(ctx, userID, failure)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateFields(ctx, user, map[string]interface{}{"status": status}); err != nil {
		return nil, utils.Internal(failure, err)
	}
	user.Status = status

	resp := s.presenter.AdminUsers([]db_models.User{*user})[0]
	return &resp, nil
}

func (s *UserService) Delete(ctx context.Context, userID string) error {
	const failure = "Failed to delete user"

	user, err := loadUser(ctx, s.userRepo, userID, failure)
	if err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, user); err != nil {
		return utils.Internal(failure, err)
	}
	s.evictPublicUsers(ctx)
	return nil
}
