package services

import (
	"context"

	"skillswap/internal/models/db_models"
	"skillswap/internal/models/request_models"
	"skillswap/internal/models/response_models"
	"skillswap/internal/repositories"
	"skillswap/pkg/utils"
)

type FeedbackServiceInterface interface {
	AddFeedback(ctx context.Context, userID string, request request_models.CreateFeedbackRequest) (*response_models.FeedbackResponse, error)
	ListForUser(ctx context.Context, userID string) ([]response_models.FeedbackResponse, error)
}

type FeedbackService struct {
	userRepo     repositories.UserRepository
	swapRepo     repositories.SwapRequestRepository
	feedbackRepo repositories.FeedbackRepositoryInterface
	presenter    *response_models.Presenter
}

func NewFeedbackService(
	userRepo repositories.UserRepository,
	swapRepo repositories.SwapRequestRepository,
	feedbackRepo repositories.FeedbackRepositoryInterface,
	presenter *response_models.Presenter,
) FeedbackServiceInterface {
	return &FeedbackService{
		userRepo:     userRepo,
		swapRepo:     swapRepo,
		feedbackRepo: feedbackRepo,
		presenter:    presenter,
	}
}

func isParticipant(swap *db_models.SwapRequest, userID uint) bool {
	return swap.SenderID == userID || swap.ReceiverID == userID
}

func (s *FeedbackService) AddFeedback(ctx context.Context, userID string, request request_models.CreateFeedbackRequest) (*response_models.FeedbackResponse, error) {
	const failure = "Failed to add feedback"

	if request.Rating < 1 || request.Rating > 5 {
		return nil, utils.Validation("Rating must be between 1 and 5")
	}

	author, err := loadUser(ctx, s.userRepo, userID, failure)
	if err != nil {
		return nil, err
	}
	swap, err := s.swapRepo.FindByUUID(ctx, request.SwapRequestID)
	if err != nil {
		return nil, utils.Internal(failure, err)
	}
	recipient, err := s.userRepo.FindByUUID(ctx, request.ToUserID)
	if err != nil {
		return nil, utils.Internal(failure, err)
	}
	if swap == nil || recipient == nil {
		return nil, utils.ErrFeedbackTargetGone
	}
	if !isParticipant(swap, author.ID) {
		return nil, utils.ErrNotSwapParticipant
	}
	if !isParticipant(swap, recipient.ID) {
		return nil, utils.ErrRecipientNotInSwap
	}

	feedback := &db_models.Feedback{
		SwapRequestID: swap.ID,
		FromUserID:    author.ID,
		ToUserID:      recipient.ID,
		Rating:        request.Rating,
		Comment:       request.Comment,
	}
	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, utils.Internal(failure, err)
	}
	feedback.SwapRequest = *swap
	feedback.FromUser = *author
	feedback.ToUser = *recipient

	resp := s.presenter.Feedback(feedback)
	return &resp, nil
}

func (s *FeedbackService) ListForUser(ctx context.Context, userID string) ([]response_models.FeedbackResponse, error) {
	const failure = "Failed to load feedback"

	user, err := loadUser(ctx, s.userRepo, userID, failure)
	if err != nil {
		return nil, err
	}
	feedbacks, err := s.feedbackRepo.ListForRecipient(ctx, user.ID)
	if err != nil {
		return nil, utils.Internal(failure, err)
	}

	out := make([]response_models.FeedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		out = append(out, s.presenter.Feedback(&feedbacks[i]))
	}
	return out, nil
}
