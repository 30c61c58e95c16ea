package db_models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	SwapPending   = "pending"
	SwapAccepted  = "accepted"
	SwapRejected  = "rejected"
	SwapCompleted = "completed"
)

// SkillSnapshot is a point-in-time copy of skill data attached to a swap
// request. It is not linked to the live skill rows.
type SkillSnapshot struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Level       string `json:"level,omitempty"`
	LevelNeeded string `json:"levelNeeded,omitempty"`
}

type SwapRequest struct {
	BaseModel
	SenderID        uint `gorm:"not null;index"`
	ReceiverID      uint `gorm:"not null;index"`
	SkillOffered    datatypes.JSONType[SkillSnapshot] `gorm:"not null"`
	SkillRequested  datatypes.JSONType[SkillSnapshot] `gorm:"not null"`
	Status          string                            `gorm:"size:10;not null;default:pending"`
	ProposedDate    *time.Time
	MeetingLocation *string   `gorm:"size:200"`
	Notes           *string   `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`

	Sender   User `gorm:"foreignKey:SenderID"`
	Receiver User `gorm:"foreignKey:ReceiverID"`
}

func (SwapRequest) TableName() string { return "swap_requests" }
