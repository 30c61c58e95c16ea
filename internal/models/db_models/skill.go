package db_models

import "time"

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

type Skill struct {
	BaseModel
	UserID      uint      `gorm:"not null;index"`
	Name        string    `gorm:"size:100;not null"`
	Description *string   `gorm:"type:text"`
	Category    *string   `gorm:"size:50"`
	Level       *string   `gorm:"size:20"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Skill) TableName() string { return "skills" }

type SkillWanted struct {
	BaseModel
	UserID      uint      `gorm:"not null;index"`
	Name        string    `gorm:"size:100;not null"`
	Description *string   `gorm:"type:text"`
	Category    *string   `gorm:"size:50"`
	LevelNeeded *string   `gorm:"size:20"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (SkillWanted) TableName() string { return "skills_wanted" }
