package request_models

import "skillswap/internal/models/db_models"

// UpdateProfileRequest applies only the fields that are present and non-empty.
type UpdateProfileRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	Location     *string `json:"location" binding:"omitempty,max=200"`
	ProfilePhoto *string `json:"profilePhoto" binding:"omitempty,max=255"`
	IsPublic     *bool   `json:"isPublic"`
}

type AvailabilitySlotRequest struct {
	Day       string `json:"day" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type UpdateAvailabilityRequest struct {
	Availability []AvailabilitySlotRequest `json:"availability" binding:"required,dive"`
}

func (r UpdateAvailabilityRequest) Slots() []db_models.AvailabilitySlot {
	slots := make([]db_models.AvailabilitySlot, 0, len(r.Availability))
	for _, s := range r.Availability {
		slots = append(slots, db_models.AvailabilitySlot{Day: s.Day, StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return slots
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending verified blocked"`
}
