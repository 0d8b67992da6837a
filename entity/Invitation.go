package entity

import (
	"gorm.io/gorm"
)

const (
	InvitationPending   = "pending"
	InvitationConfirmed = "confirmed"
	InvitationDeclined  = "declined"
)

// Invitation = RSVP ของ user ต่อ spot (หนึ่งแถวต่อคู่ spot+user)
type Invitation struct {
	gorm.Model
	SpotID uint `gorm:"uniqueIndex:uniq_invitation_spot_user;not null" json:"spotId"`
	Spot   Spot `json:"-"`

	UserID uint    `gorm:"uniqueIndex:uniq_invitation_spot_user;not null" json:"userId"`
	User   Profile `gorm:"foreignKey:UserID" json:"-"`

	Status string `gorm:"not null;default:pending" json:"status"`
}

func ValidInvitationStatus(s string) bool {
	return s == InvitationPending || s == InvitationConfirmed || s == InvitationDeclined
}
