package services

import (
	"context"

	"gorm.io/datatypes"

	"skillswap/internal/models/db_models"
	"skillswap/internal/models/request_models"
	"skillswap/internal/models/response_models"
	"skillswap/internal/repositories"
	"skillswap/pkg/utils"
)

type SwapServiceInterface interface {
	List(ctx context.Context, userID string) (*response_models.SwapRequestsResponse, error)
	Create(ctx context.Context, userID string, request request_models.CreateSwapRequest) (*response_models.SwapRequestResponse, error)
	UpdateStatus(ctx context.Context, userID, requestID, status string) (*response_models.SwapRequestResponse, error)
	Delete(ctx context.Context, userID, requestID string) error
}

type SwapService struct {
	userRepo  repositories.UserRepository
	swapRepo  repositories.SwapRequestRepository
	presenter *response_models.Presenter
}

func NewSwapService(userRepo repositories.UserRepository, swapRepo repositories.SwapRequestRepository, presenter *response_models.Presenter) SwapServiceInterface {
	return &SwapService{userRepo: userRepo, swapRepo: swapRepo, presenter: presenter}
}

func (s *SwapService) List(ctx context.Context, userID string) (*response_models.SwapRequestsResponse, error) {
	const failure = "Failed to load swap requests"

	user, err := loadUser(ctx, s.userRepo, userID, failure)
	if err != nil {
		return nil, err
	}
	sent, err := s.swapRepo.ListSent(ctx, user.ID)
	if err != nil {
		return nil, utils.Internal(failure, err)
	}
	received, err := s.swapRepo.ListReceived(ctx, user.ID)
	if err != nil {
		return nil, utils.Internal(failure, err)
	}
	return &response_models.SwapRequestsResponse{
		Sent:     s.presenter.SwapRequests(sent),
		Received: s.presenter.SwapRequests(received),
	}, nil
}

// Create does not require sender and receiver to differ.
func (s *SwapService) Create(ctx context.Context, userID string, request request_models.CreateSwapRequest) (*response_models.SwapRequestResponse, error) {
	const failure = "Failed to create swap request"

	sender, err := loadUser(ctx, s.userRepo, userID, failure)
	if err != nil {
		return nil, err
	}
	receiver, err := s.userRepo.FindByUUID(ctx, request.ReceiverID)
	if err != nil {
		return nil, utils.Internal(failure, err)
	}
	if receiver == nil {
		return nil, utils.ErrReceiverNotFound
	}

	swap := &db_models.SwapRequest{
		SenderID:        sender.ID,
		ReceiverID:      receiver.ID,
		SkillOffered:    datatypes.NewJSONType(request.SkillOffered.Snapshot()),
		SkillRequested:  datatypes.NewJSONType(request.SkillRequested.Snapshot()),
		Status:          db_models.SwapPending,
		ProposedDate:    request.ProposedDate,
		MeetingLocation: request.MeetingLocation,
		Notes:           request.Notes,
	}
	if err := s.swapRepo.Create(ctx, swap); err != nil {
		return nil, utils.Internal(failure, err)
	}
	swap.Sender = *sender
	swap.Receiver = *receiver

	resp := s.presenter.SwapRequest(swap)
	return &resp, nil
}

func (s *SwapService) participantRequest(ctx context.Context, userID, requestID, failure string) (*db_models.SwapRequest, error) {
	user, err := loadUser(ctx, s.userRepo, userID, failure)
	if err != nil {
		return nil, err
	}
	swap, err := s.swapRepo.FindForParticipant(ctx, requestID, user.ID)
	if err != nil {
		return nil, utils.Internal(failure, err)
	}
	if swap == nil {
		return nil, utils.ErrSwapRequestNotFound
	}
	return swap, nil
}

func (s *SwapService) UpdateStatus(ctx context.Context, userID, requestID, status string) (*response_models.SwapRequestResponse, error) {
	const failure = "Failed to update swap request"

	switch status {
	case db_models.SwapPending, db_models.SwapAccepted, db_models.SwapRejected, db_models.SwapCompleted:
	default:
		return nil, utils.Validation("Invalid status")
	}

	swap, err := s.participantRequest(ctx, userID, requestID, failure)
	if err != nil {
		return nil, err
	}
	if err := s.swapRepo.UpdateStatus(ctx, swap, status); err != nil {
		return nil, utils.Internal(failure, err)
	}

	updated, err := s.swapRepo.FindByUUID(ctx, requestID)
	if err != nil || updated == nil {
		return nil, utils.Internal(failure, err)
	}
	resp := s.presenter.SwapRequest(updated)
	return &resp, nil
}

func (s *SwapService) Delete(ctx context.Context, userID, requestID string) error {
	const failure = "Failed to delete swap request"

	swap, err := s.participantRequest(ctx, userID, requestID, failure)
	if err != nil {
		return err
	}
	if err := s.swapRepo.Delete(ctx, swap); err != nil {
		return utils.Internal(failure, err)
	}
	return nil
}
