package db_models

import "time"

type Feedback struct {
	BaseModel
	SwapRequestID uint      `gorm:"not null;index"`
	FromUserID    uint      `gorm:"not null;index"`
	ToUserID      uint      `gorm:"not null;index"`
	Rating        int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment       *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`

	SwapRequest SwapRequest `gorm:"foreignKey:SwapRequestID"`
	FromUser    User        `gorm:"foreignKey:FromUserID"`
	ToUser      User        `gorm:"foreignKey:ToUserID"`
}

func (Feedback) TableName() string { return "feedbacks" }

// All lists every model owned by the schema, in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Skill{},
		&SkillWanted{},
		&SwapRequest{},
		&Feedback{},
	}
}
