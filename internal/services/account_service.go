package services

import (
	"context"
	"errors"
	"mime/multipart"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"skillswap/internal/models/db_models"
	"skillswap/internal/models/request_models"
	"skillswap/internal/models/response_models"
	"skillswap/internal/repositories"
	"skillswap/pkg/storage"
	"skillswap/pkg/utils"
)

const registrationFailed = "Registration failed. Please try again."

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	Me(ctx context.Context, userID string) (*response_models.UserResponse, error)
}

type AccountService struct {
	userRepo  repositories.UserRepository
	photos    storage.PhotoStore
	tokens    *utils.TokenIssuer
	presenter *response_models.Presenter
	log       *zap.Logger
}

func NewAccountService(
	userRepo repositories.UserRepository,
	photos storage.PhotoStore,
	tokens *utils.TokenIssuer,
	presenter *response_models.Presenter,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		userRepo:  userRepo,
		photos:    photos,
		tokens:    tokens,
		presenter: presenter,
		log:       log,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.Internal(registrationFailed, err)
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	photoName, err := a.savePhoto(ctx, request.ProfilePhoto)
	if err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		a.discardPhoto(photoName)
		return nil, utils.Internal(registrationFailed, err)
	}

	isPublic := true
	if request.IsPublic != nil {
		isPublic = *request.IsPublic
	}

	user := &db_models.User{
		Name:           request.Name,
		Email:          request.Email,
		PasswordHashed: hashed,
		Location:       request.Location,
		IsPublic:       isPublic,
		Role:           db_models.RoleUser,
		Status:         db_models.StatusVerified,
	}
	if photoName != "" {
		user.ProfilePhoto = &photoName
	}

	if err := a.userRepo.Create(ctx, user); err != nil {
		a.discardPhoto(photoName)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.Internal(registrationFailed, err)
	}

	return a.authenticated(user, registrationFailed)
}

// savePhoto validates and stores an optional upload and returns the stored
// name, or "" when nothing was uploaded.
func (a *AccountService) savePhoto(ctx context.Context, header *multipart.FileHeader) (string, error) {
	if header == nil || header.Filename == "" {
		return "", nil
	}
	if err := storage.ValidatePhoto(header.Filename, header.Size); err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", utils.Internal(registrationFailed, err)
	}
	defer file.Close()

	name := storage.NewPhotoName(header.Filename)
	if err := a.photos.Save(ctx, name, file, header.Size, storage.ContentType(name)); err != nil {
		return "", utils.Internal(registrationFailed, err)
	}
	return name, nil
}

// discardPhoto removes a photo saved for a registration that did not go
// through. Failures are only logged.
func (a *AccountService) discardPhoto(name string) {
	if name == "" {
		return
	}
	if err := a.photos.Delete(context.Background(), name); err != nil {
		a.log.Warn("failed to remove orphaned profile photo", zap.String("photo", name), zap.Error(err))
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.Internal("Login failed", err)
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHashed, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	switch user.Status {
	case db_models.StatusBlocked:
		return nil, utils.ErrAccountBlocked
	case db_models.StatusPending:
		return nil, utils.ErrAccountPending
	}

	full, err := a.userRepo.FindByUUIDWithSkills(ctx, user.UUID)
	if err != nil || full == nil {
		return nil, utils.Internal("Login failed", err)
	}
	return a.authenticated(full, "Login failed")
}

func (a *AccountService) authenticated(user *db_models.User, failure string) (*response_models.AuthResponse, error) {
	role := user.Role
	if role == "" {
		role = db_models.RoleUser
	}
	token, err := a.tokens.CreateToken(utils.TokenSubject{
		UserID: user.UUID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   role,
	})
	if err != nil {
		return nil, utils.Internal(failure, err)
	}
	return &response_models.AuthResponse{User: a.presenter.User(user), Token: token}, nil
}

func (a *AccountService) Me(ctx context.Context, userID string) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindByUUIDWithSkills(ctx, userID)
	if err != nil {
		return nil, utils.Internal("Failed to load user", err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	resp := a.presenter.User(user)
	return &resp, nil
}
