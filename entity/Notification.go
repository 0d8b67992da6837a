package entity

import (
	"gorm.io/gorm"
)

// Notification = write-once; แก้ได้เฉพาะ read flag
type Notification struct {
	gorm.Model
	UserID uint    `gorm:"not null;index" json:"userId"`
	User   Profile `gorm:"foreignKey:UserID" json:"-"`

	Title   string `gorm:"not null" json:"title"`
	Message string `json:"message"`
	Read    bool   `gorm:"not null;default:false" json:"read"`
}
