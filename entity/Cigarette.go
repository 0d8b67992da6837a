package entity

import (
	"gorm.io/gorm"
)

type Cigarette struct {
	gorm.Model
	SpotID uint `gorm:"not null" json:"spotId"`
	Spot   Spot `json:"-"`

	Name     string `gorm:"not null" json:"name"`
	ImageURL string `json:"imageUrl"`

	CreatedBy uint    `json:"createdBy"`
	Creator   Profile `gorm:"foreignKey:CreatedBy" json:"-"`

	Price *int64 `json:"price,omitempty"`
}
