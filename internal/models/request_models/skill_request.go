package request_models

type CreateSkillRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"required"`
	Category    *string `json:"category" binding:"omitempty,max=50"`
	Level       *string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced expert"`
}

type CreateWantedSkillRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"required"`
	Category    *string `json:"category" binding:"omitempty,max=50"`
	LevelNeeded *string `json:"levelNeeded" binding:"omitempty,oneof=beginner intermediate advanced expert"`
}
