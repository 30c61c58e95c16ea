package response_models

import "skillswap/internal/models/db_models"

type SwapRequestResponse struct {
	ID              string                  `json:"id"`
	SenderID        string                  `json:"senderId"`
	ReceiverID      string                  `json:"receiverId"`
	Sender          UserSummary             `json:"sender"`
	Receiver        UserSummary             `json:"receiver"`
	SkillOffered    db_models.SkillSnapshot `json:"skillOffered"`
	SkillRequested  db_models.SkillSnapshot `json:"skillRequested"`
	Status          string                  `json:"status"`
	ProposedDate    *string                 `json:"proposedDate"`
	MeetingLocation *string                 `json:"meetingLocation"`
	Notes           *string                 `json:"notes"`
	CreatedAt       *string                 `json:"createdAt"`
	UpdatedAt       *string                 `json:"updatedAt"`
}

type SwapRequestsResponse struct {
	Sent     []SwapRequestResponse `json:"sent"`
	Received []SwapRequestResponse `json:"received"`
}

type FeedbackResponse struct {
	ID            string      `json:"id"`
	SwapRequestID string      `json:"swapRequestId"`
	FromUserID    string      `json:"fromUserId"`
	ToUserID      string      `json:"toUserId"`
	FromUser      UserSummary `json:"fromUser"`
	Rating        int         `json:"rating"`
	Comment       *string     `json:"comment"`
	CreatedAt     *string     `json:"createdAt"`
}
