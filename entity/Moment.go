package entity

import (
	"gorm.io/gorm"
)

// Moment = รูปความทรงจำของ spot
type Moment struct {
	gorm.Model
	SpotID uint `gorm:"not null;index" json:"spotId"`
	Spot   Spot `json:"-"`

	ImageURL string `gorm:"not null" json:"imageUrl"`
	Caption  string `json:"caption"`

	CreatedBy uint    `json:"createdBy"`
	Creator   Profile `gorm:"foreignKey:CreatedBy" json:"-"`
}
