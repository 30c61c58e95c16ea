package repositories

import (
	"context"
	"testing"
	"time"

	"gorm.io/datatypes"

	"skillswap/internal/models/db_models"
)

func TestSwapRequestLifecycle(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	swaps := NewSwapRequestRepository(db)
	feedback := NewFeedbackRepository(db)
	ctx := context.Background()

	a := mustCreateUser(t, users, "A", "a@x.com", true)
	b := mustCreateUser(t, users, "B", "b@x.com", true)
	outsider := mustCreateUser(t, users, "C", "c@x.com", true)

	req := &db_models.SwapRequest{
		SenderID:       b.ID,
		ReceiverID:     a.ID,
		SkillOffered:   datatypes.NewJSONType(db_models.SkillSnapshot{Name: "Piano"}),
		SkillRequested: datatypes.NewJSONType(db_models.SkillSnapshot{Name: "Guitar"}),
		Status:         db_models.SwapPending,
	}
	if err := swaps.Create(ctx, req); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := swaps.FindByUUID(ctx, req.UUID)
	if err != nil || got == nil {
		t.Fatalf("FindByUUID = %v, %v", got, err)
	}
	if got.Sender.UUID != b.UUID || got.Receiver.UUID != a.UUID {
		t.Fatal("expected sender and receiver to be loaded")
	}
	if got.SkillRequested.Data().Name != "Guitar" {
		t.Fatalf("snapshot not stored: %+v", got.SkillRequested.Data())
	}

	if r, _ := swaps.FindForParticipant(ctx, req.UUID, outsider.ID); r != nil {
		t.Fatal("outsider must not see the request")
	}
	if r, _ := swaps.FindForParticipant(ctx, req.UUID, a.ID); r == nil {
		t.Fatal("receiver must see the request")
	}

	sent, _ := swaps.ListSent(ctx, b.ID)
	received, _ := swaps.ListReceived(ctx, a.ID)
	if len(sent) != 1 || len(received) != 1 {
		t.Fatalf("sent=%d received=%d", len(sent), len(received))
	}
	if none, _ := swaps.ListSent(ctx, a.ID); len(none) != 0 {
		t.Fatal("receiver has no sent requests")
	}

	before := got.UpdatedAt
	time.Sleep(10 * time.Millisecond)
	if err := swaps.UpdateStatus(ctx, got, db_models.SwapAccepted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	updated, _ := swaps.FindByUUID(ctx, req.UUID)
	if updated.Status != db_models.SwapAccepted {
		t.Fatalf("status = %s", updated.Status)
	}
	if !updated.UpdatedAt.After(before) {
		t.Fatal("expected updated timestamp to move forward")
	}

	_ = feedback.CreateFeedback(ctx, &db_models.Feedback{SwapRequestID: req.ID, FromUserID: a.ID, ToUserID: b.ID, Rating: 5})
	if err := swaps.Delete(ctx, updated); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if r, _ := swaps.FindByUUID(ctx, req.UUID); r != nil {
		t.Fatal("request still present")
	}
	if list, _ := feedback.ListForRecipient(ctx, b.ID); len(list) != 0 {
		t.Fatal("feedback on a deleted request should be removed")
	}
}
