package request_models

import (
	"time"

	"skillswap/internal/models/db_models"
)

// SkillSnapshotRequest is the skill data copied onto a swap request.
type SkillSnapshotRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Level       string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced expert"`
	LevelNeeded string `json:"levelNeeded" binding:"omitempty,oneof=beginner intermediate advanced expert"`
}

func (s SkillSnapshotRequest) Snapshot() db_models.SkillSnapshot {
	return db_models.SkillSnapshot{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Level:       s.Level,
		LevelNeeded: s.LevelNeeded,
	}
}

type CreateSwapRequest struct {
	ReceiverID      string                `json:"receiverId" binding:"required"`
	SkillOffered    *SkillSnapshotRequest `json:"skillOffered" binding:"required"`
	SkillRequested  *SkillSnapshotRequest `json:"skillRequested" binding:"required"`
	ProposedDate    *time.Time            `json:"proposedDate"`
	MeetingLocation *string               `json:"meetingLocation" binding:"omitempty,max=200"`
	Notes           *string               `json:"notes"`
}

type UpdateSwapStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending accepted rejected completed"`
}
