package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatMessage struct {
	gorm.Model
	UserID uint    `gorm:"not null;index" json:"userId"`
	User   Profile `gorm:"foreignKey:UserID" json:"-"`

	Body   string                      `json:"body"`
	Images datatypes.JSONSlice[string] `json:"images"`

	// emoji -> set ของ user id ที่กด
	Reactions ReactionMap `gorm:"type:json" json:"reactions"`
}
