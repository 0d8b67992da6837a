package entity

import (
	"gorm.io/gorm"
)

const (
	BrandCategoryBeer    = "beer"
	BrandCategoryWhiskey = "whiskey"
	BrandCategoryVodka   = "vodka"
	BrandCategorySoft    = "soft"
	BrandCategoryOther   = "other"
)

// DrinkBrand = แคตตาล็อกกลาง (แยกจาก Drink ที่ user เสนอเอง)
type DrinkBrand struct {
	gorm.Model
	Name      string `gorm:"uniqueIndex;not null" json:"name"`
	Category  string `gorm:"not null;default:other" json:"category"`
	BasePrice int64  `gorm:"not null;default:0" json:"basePrice"`
	Available bool   `gorm:"not null;default:true" json:"available"`
}

func ValidBrandCategory(s string) bool {
	switch s {
	case BrandCategoryBeer, BrandCategoryWhiskey, BrandCategoryVodka, BrandCategorySoft, BrandCategoryOther:
		return true
	}
	return false
}
