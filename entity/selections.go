package entity

import (
	"gorm.io/gorm"
)

// UserDrinkSelection = หนึ่ง line ในออเดอร์เครื่องดื่มของ user ต่อ spot
// unique triple (spot,user,brand); qty <= 0 → ลบแถว ไม่เก็บแถวศูนย์
type UserDrinkSelection struct {
	gorm.Model
	SpotID uint `gorm:"uniqueIndex:uniq_selection_spot_user_brand;not null" json:"spotId"`
	Spot   Spot `json:"-"`

	UserID uint    `gorm:"uniqueIndex:uniq_selection_spot_user_brand;not null" json:"userId"`
	User   Profile `gorm:"foreignKey:UserID" json:"-"`

	DrinkBrandID uint       `gorm:"uniqueIndex:uniq_selection_spot_user_brand;not null" json:"drinkBrandId"`
	DrinkBrand   DrinkBrand `json:"drinkBrand"`

	Quantity   int   `gorm:"not null" json:"quantity"`
	UnitPrice  int64 `gorm:"not null" json:"unitPrice"`  // snapshot ราคา brand ตอนเลือก
	TotalPrice int64 `gorm:"not null" json:"totalPrice"` // = Quantity * UnitPrice เสมอ
}
