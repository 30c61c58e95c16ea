package response_models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"skillswap/internal/models/db_models"
)

func testPresenter() *Presenter {
	return NewPresenter(func(name string) string {
		if name == "" {
			return "/static/images/default_avatar.png"
		}
		return "/static/uploads/profile_photos/" + name
	}, time.FixedZone("IST", 5*3600+30*60))
}

func TestUserDefaultsAndCamelCase(t *testing.T) {
	u := &db_models.User{
		BaseModel: db_models.BaseModel{ID: 7, UUID: "u-1"},
		Name:      "Ann",
		Email:     "ann@x.com",
		IsPublic:  true,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	resp := testPresenter().User(u)
	if resp.ProfilePhoto != "/static/images/default_avatar.png" {
		t.Fatalf("profilePhoto = %q", resp.ProfilePhoto)
	}
	if resp.Availability == nil || resp.SkillsOffered == nil || resp.SkillsWanted == nil {
		t.Fatal("lists must render as [] not null")
	}
	if resp.CreatedAt == nil || *resp.CreatedAt != "2024-01-02T08:34:05+05:30" {
		t.Fatalf("createdAt = %v", resp.CreatedAt)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	for _, key := range []string{`"isPublic":true`, `"skillsOffered":[]`, `"availability":[]`, `"id":"u-1"`} {
		if !strings.Contains(body, key) {
			t.Errorf("expected %s in %s", key, body)
		}
	}
	if strings.Contains(body, `"ID":7`) || strings.Contains(body, "password") {
		t.Errorf("internal fields leaked: %s", body)
	}
}

func TestSwapRequestUsesPublicIDs(t *testing.T) {
	photo := "a.png"
	r := &db_models.SwapRequest{
		BaseModel: db_models.BaseModel{ID: 3, UUID: "s-1"},
		SenderID:  1,
		Sender:    db_models.User{BaseModel: db_models.BaseModel{ID: 1, UUID: "u-a"}, Name: "A", ProfilePhoto: &photo},
		Receiver:  db_models.User{BaseModel: db_models.BaseModel{ID: 2, UUID: "u-b"}, Name: "B"},
		Status:    db_models.SwapPending,
	}

	resp := testPresenter().SwapRequest(r)
	if resp.SenderID != "u-a" || resp.ReceiverID != "u-b" {
		t.Fatalf("unexpected ids %q %q", resp.SenderID, resp.ReceiverID)
	}
	if resp.Sender.ProfilePhoto != "/static/uploads/profile_photos/a.png" {
		t.Fatalf("sender photo = %q", resp.Sender.ProfilePhoto)
	}
	if resp.ProposedDate != nil {
		t.Fatal("proposedDate should be null when unset")
	}
}
