package entity

import (
	"gorm.io/gorm"
)

// Drink = เครื่องดื่มที่ user เสนอสำหรับ spot (โหวตได้)
type Drink struct {
	gorm.Model
	SpotID uint `gorm:"not null" json:"spotId"`
	Spot   Spot `json:"-"`

	Name     string `gorm:"not null" json:"name"`
	ImageURL string `json:"imageUrl"`

	CreatedBy uint    `json:"createdBy"`
	Creator   Profile `gorm:"foreignKey:CreatedBy" json:"-"`

	// admin ตั้งราคาทีหลังได้
	Price *int64 `json:"price,omitempty"`

	Votes   int       `gorm:"not null;default:0" json:"votes"`
	VotedBy UserIDSet `gorm:"type:json" json:"votedBy"`
}
