package response_models

import "skillswap/internal/models/db_models"

type UserResponse struct {
	ID            string                       `json:"id"`
	Name          string                       `json:"name"`
	Email         string                       `json:"email"`
	Location      *string                      `json:"location"`
	ProfilePhoto  string                       `json:"profilePhoto"`
	IsPublic      bool                         `json:"isPublic"`
	Availability  []db_models.AvailabilitySlot `json:"availability"`
	SkillsOffered []SkillResponse              `json:"skillsOffered"`
	SkillsWanted  []WantedSkillResponse        `json:"skillsWanted"`
	CreatedAt     *string                      `json:"createdAt"`
}

// AdminUserResponse adds the fields only administrators see.
type AdminUserResponse struct {
	UserResponse
	Role   string `json:"role"`
	Status string `json:"status"`
}

// UserSummary is the short form of a user embedded in swap requests and
// feedback.
type UserSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProfilePhoto string `json:"profilePhoto"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type SkillResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Level       *string `json:"level"`
}

type WantedSkillResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	LevelNeeded *string `json:"levelNeeded"`
}
