package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"skillswap/internal/models/request_models"
	"skillswap/pkg/utils"
)

func TestAddFeedbackRules(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ann := env.register(t, "Ann", "ann@x.com")
	bob := env.register(t, "Bob", "bob@x.com")
	eve := env.register(t, "Eve", "eve@x.com")

	swap, err := env.swaps.Create(ctx, bob.User.ID, newSwap(ann.User.ID))
	require.NoError(t, err)

	cases := []struct {
		name   string
		author string
		req    request_models.CreateFeedbackRequest
		want   error
	}{
		{"unknown swap", ann.User.ID, request_models.CreateFeedbackRequest{SwapRequestID: "nope", ToUserID: bob.User.ID, Rating: 5}, utils.ErrFeedbackTargetGone},
		{"unknown recipient", ann.User.ID, request_models.CreateFeedbackRequest{SwapRequestID: swap.ID, ToUserID: "nope", Rating: 5}, utils.ErrFeedbackTargetGone},
		{"outsider author", eve.User.ID, request_models.CreateFeedbackRequest{SwapRequestID: swap.ID, ToUserID: bob.User.ID, Rating: 5}, utils.ErrNotSwapParticipant},
		{"outsider recipient", ann.User.ID, request_models.CreateFeedbackRequest{SwapRequestID: swap.ID, ToUserID: eve.User.ID, Rating: 5}, utils.ErrRecipientNotInSwap},
		{"rating out of range", ann.User.ID, request_models.CreateFeedbackRequest{SwapRequestID: swap.ID, ToUserID: bob.User.ID, Rating: 6}, utils.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.feedback.AddFeedback(ctx, tc.author, tc.req)
			require.ErrorIs(t, err, tc.want)
		})
	}

	comment := "Great lesson"
	fb, err := env.feedback.AddFeedback(ctx, ann.User.ID, request_models.CreateFeedbackRequest{
		SwapRequestID: swap.ID, ToUserID: bob.User.ID, Rating: 5, Comment: &comment,
	})
	require.NoError(t, err)
	require.Equal(t, ann.User.ID, fb.FromUserID)
	require.Equal(t, bob.User.ID, fb.ToUserID)
	require.Equal(t, swap.ID, fb.SwapRequestID)

	list, err := env.feedback.ListForUser(ctx, bob.User.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 5, list[0].Rating)
	require.Equal(t, "Ann", list[0].FromUser.Name)

	_, err = env.feedback.ListForUser(ctx, "nope")
	require.ErrorIs(t, err, utils.ErrUserNotFound)
}
