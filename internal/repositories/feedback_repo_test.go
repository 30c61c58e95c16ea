package repositories

import (
	"context"
	"testing"

	"skillswap/internal/models/db_models"
)

func TestListFeedbackForRecipient(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	swaps := NewSwapRequestRepository(db)
	repo := NewFeedbackRepository(db)
	ctx := context.Background()

	a := mustCreateUser(t, users, "A", "a@x.com", true)
	b := mustCreateUser(t, users, "B", "b@x.com", true)
	req := &db_models.SwapRequest{SenderID: b.ID, ReceiverID: a.ID, Status: db_models.SwapCompleted}
	_ = swaps.Create(ctx, req)

	if err := repo.CreateFeedback(ctx, &db_models.Feedback{
		SwapRequestID: req.ID, FromUserID: a.ID, ToUserID: b.ID, Rating: 5, Comment: strPtr("great"),
	}); err != nil {
		t.Fatalf("CreateFeedback: %v", err)
	}

	list, err := repo.ListForRecipient(ctx, b.ID)
	if err != nil {
		t.Fatalf("ListForRecipient: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 feedback, got %d", len(list))
	}
	fb := list[0]
	if fb.Rating != 5 || fb.FromUser.UUID != a.UUID || fb.SwapRequest.UUID != req.UUID {
		t.Fatalf("unexpected feedback %+v", fb)
	}

	if mine, _ := repo.ListForRecipient(ctx, a.ID); len(mine) != 0 {
		t.Fatal("author should not see their own feedback as received")
	}
}

func TestFeedbackRatingCheck(t *testing.T) {
	db := newTestDB(t)
	repo := NewFeedbackRepository(db)

	err := repo.CreateFeedback(context.Background(), &db_models.Feedback{SwapRequestID: 1, FromUserID: 1, ToUserID: 2, Rating: 9})
	if err == nil {
		t.Fatal("expected check constraint to reject rating 9")
	}
}
