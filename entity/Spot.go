package entity

import (
	"time"

	"gorm.io/gorm"
)

type Spot struct {
	gorm.Model
	Date        time.Time `json:"date"`
	Timing      string    `json:"timing"`
	Budget      int64     `json:"budget"` // ต่อคน
	Location    string    `json:"location"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Description string    `json:"description"`
	Feedback    string    `json:"feedback"`

	CreatedBy uint    `json:"createdBy"`
	Creator   Profile `gorm:"foreignKey:CreatedBy" json:"-"`

	// preload แค่ตอน detail
	Invitations []Invitation         `gorm:"foreignKey:SpotID" json:"-"`
	Payments    []Payment            `gorm:"foreignKey:SpotID" json:"-"`
	Attendances []Attendance         `gorm:"foreignKey:SpotID" json:"-"`
	Selections  []UserDrinkSelection `gorm:"foreignKey:SpotID" json:"-"`
	Drinks      []Drink              `gorm:"foreignKey:SpotID" json:"-"`
	Foods       []Food               `gorm:"foreignKey:SpotID" json:"-"`
	Cigarettes  []Cigarette          `gorm:"foreignKey:SpotID" json:"-"`
	Moments     []Moment             `gorm:"foreignKey:SpotID" json:"-"`
}
