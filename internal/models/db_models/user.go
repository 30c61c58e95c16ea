package db_models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusBlocked  = "blocked"
)

type AvailabilitySlot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type User struct {
	BaseModel
	Name           string  `gorm:"size:100;not null"`
	Email          string  `gorm:"size:120;uniqueIndex;not null"`
	PasswordHashed string  `gorm:"size:256;not null"`
	Location       *string `gorm:"size:200"`
	ProfilePhoto   *string `gorm:"size:255"`
	IsPublic       bool    `gorm:"not null"`
	Availability   datatypes.JSONType[[]AvailabilitySlot]
	Role           string    `gorm:"size:10;not null;default:user"`
	Status         string    `gorm:"size:10;not null;default:verified"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`

	SkillsOffered []Skill       `gorm:"foreignKey:UserID"`
	SkillsWanted  []SkillWanted `gorm:"foreignKey:UserID"`
}

func (User) TableName() string { return "users" }
