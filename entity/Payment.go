package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentPaid    = "paid"
	PaymentNotPaid = "not_paid"
)

type Payment struct {
	gorm.Model
	SpotID uint `gorm:"uniqueIndex:uniq_payment_spot_user;not null" json:"spotId"`
	Spot   Spot `json:"-"`

	UserID uint    `gorm:"uniqueIndex:uniq_payment_spot_user;not null" json:"userId"`
	User   Profile `gorm:"foreignKey:UserID" json:"-"`

	Status string     `gorm:"not null;default:not_paid" json:"status"`
	PaidAt *time.Time `json:"paidAt,omitempty"`

	// derived: SUM(total_price) ของ selections ของคู่ (spot,user) นี้
	DrinkTotalAmount int64 `gorm:"not null;default:0" json:"drinkTotalAmount"`
}

func ValidPaymentStatus(s string) bool {
	return s == PaymentPaid || s == PaymentNotPaid
}
