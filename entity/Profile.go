package entity

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"
)

type Profile struct {
	gorm.Model
	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"` // ปลอดภัย
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	AvatarURL   string `json:"avatarUrl"`
	Role        string `gorm:"not null;default:user" json:"role"`

	// derived: เพิ่มโดย attendance เท่านั้น ห้าม set ตรง ๆ
	MissionCount int `gorm:"not null;default:0" json:"missionCount"`

	// Relations — preload เฉพาะตอนจำเป็น
	SpotsCreated  []Spot               `gorm:"foreignKey:CreatedBy" json:"-"`
	Invitations   []Invitation         `gorm:"foreignKey:UserID" json:"-"`
	Payments      []Payment            `gorm:"foreignKey:UserID" json:"-"`
	Attendances   []Attendance         `gorm:"foreignKey:UserID" json:"-"`
	Selections    []UserDrinkSelection `gorm:"foreignKey:UserID" json:"-"`
	Notifications []Notification       `gorm:"foreignKey:UserID" json:"-"`
}
