package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel pairs the internal sequential key with the public id clients see.
// UUID is written on create only, so later saves can never change it.
type BaseModel struct {
	ID   uint   `gorm:"primaryKey"`
	UUID string `gorm:"<-:create;type:varchar(36);uniqueIndex;not null"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.UUID == "" {
		b.UUID = uuid.NewString()
	}
	return nil
}
