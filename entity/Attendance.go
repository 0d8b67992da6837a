package entity

import (
	"gorm.io/gorm"
)

type Attendance struct {
	gorm.Model
	SpotID uint `gorm:"uniqueIndex:uniq_attendance_spot_user;not null" json:"spotId"`
	Spot   Spot `json:"-"`

	UserID uint    `gorm:"uniqueIndex:uniq_attendance_spot_user;not null" json:"userId"`
	User   Profile `gorm:"foreignKey:UserID" json:"-"`

	Attended bool `gorm:"not null;default:false" json:"attended"`
}
