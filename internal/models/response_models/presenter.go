package response_models

import (
	"time"

	"skillswap/internal/models/db_models"
	"skillswap/pkg/utils"
)

// Presenter turns stored rows into client-facing responses. It resolves photo
// references to URLs and renders timestamps in the display timezone.
type Presenter struct {
	photoURL func(name string) string
	loc      *time.Location
}

func NewPresenter(photoURL func(name string) string, loc *time.Location) *Presenter {
	if loc == nil {
		loc = time.UTC
	}
	return &Presenter{photoURL: photoURL, loc: loc}
}

func (p *Presenter) photo(ref *string) string {
	if ref == nil {
		return p.photoURL("")
	}
	return p.photoURL(*ref)
}

func (p *Presenter) User(u *db_models.User) UserResponse {
	availability := u.Availability.Data()
	if availability == nil {
		availability = []db_models.AvailabilitySlot{}
	}

	offered := make([]SkillResponse, 0, len(u.SkillsOffered))
	for i := range u.SkillsOffered {
		offered = append(offered, p.Skill(&u.SkillsOffered[i]))
	}
	wanted := make([]WantedSkillResponse, 0, len(u.SkillsWanted))
	for i := range u.SkillsWanted {
		wanted = append(wanted, p.WantedSkill(&u.SkillsWanted[i]))
	}

	return UserResponse{
		ID:            u.UUID,
		Name:          u.Name,
		Email:         u.Email,
		Location:      u.Location,
		ProfilePhoto:  p.photo(u.ProfilePhoto),
		IsPublic:      u.IsPublic,
		Availability:  availability,
		SkillsOffered: offered,
		SkillsWanted:  wanted,
		CreatedAt:     utils.FormatISO(u.CreatedAt, p.loc),
	}
}

func (p *Presenter) Users(users []db_models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, p.User(&users[i]))
	}
	return out
}

func (p *Presenter) AdminUsers(users []db_models.User) []AdminUserResponse {
	out := make([]AdminUserResponse, 0, len(users))
	for i := range users {
		out = append(out, AdminUserResponse{
			UserResponse: p.User(&users[i]),
			Role:         users[i].Role,
			Status:       users[i].Status,
		})
	}
	return out
}

func (p *Presenter) Summary(u *db_models.User) UserSummary {
	return UserSummary{ID: u.UUID, Name: u.Name, ProfilePhoto: p.photo(u.ProfilePhoto)}
}

func (p *Presenter) Skill(s *db_models.Skill) SkillResponse {
	return SkillResponse{
		ID:          s.UUID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Level:       s.Level,
	}
}

func (p *Presenter) WantedSkill(s *db_models.SkillWanted) WantedSkillResponse {
	return WantedSkillResponse{
		ID:          s.UUID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		LevelNeeded: s.LevelNeeded,
	}
}

// SwapRequest expects Sender and Receiver to be loaded.
func (p *Presenter) SwapRequest(r *db_models.SwapRequest) SwapRequestResponse {
	return SwapRequestResponse{
		ID:              r.UUID,
		SenderID:        r.Sender.UUID,
		ReceiverID:      r.Receiver.UUID,
		Sender:          p.Summary(&r.Sender),
		Receiver:        p.Summary(&r.Receiver),
		SkillOffered:    r.SkillOffered.Data(),
		SkillRequested:  r.SkillRequested.Data(),
		Status:          r.Status,
		ProposedDate:    utils.FormatISOPtr(r.ProposedDate, p.loc),
		MeetingLocation: r.MeetingLocation,
		Notes:           r.Notes,
		CreatedAt:       utils.FormatISO(r.CreatedAt, p.loc),
		UpdatedAt:       utils.FormatISO(r.UpdatedAt, p.loc),
	}
}

func (p *Presenter) SwapRequests(reqs []db_models.SwapRequest) []SwapRequestResponse {
	out := make([]SwapRequestResponse, 0, len(reqs))
	for i := range reqs {
		out = append(out, p.SwapRequest(&reqs[i]))
	}
	return out
}

// Feedback expects SwapRequest, FromUser and ToUser to be loaded.
func (p *Presenter) Feedback(f *db_models.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:            f.UUID,
		SwapRequestID: f.SwapRequest.UUID,
		FromUserID:    f.FromUser.UUID,
		ToUserID:      f.ToUser.UUID,
		FromUser:      p.Summary(&f.FromUser),
		Rating:        f.Rating,
		Comment:       f.Comment,
		CreatedAt:     utils.FormatISO(f.CreatedAt, p.loc),
	}
}
