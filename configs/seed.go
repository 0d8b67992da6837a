package configs

import (
	"log"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Profile{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("ℹ️ admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Profile{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Email:    email,
		Password: string(hash),
		FullName: "Admin",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// Seed แคตตาล็อกเครื่องดื่มเริ่มต้น
func SeedDrinkBrands() error {
	db := DB()

	brands := []entity.DrinkBrand{
		{Name: "Kingfisher", Category: entity.BrandCategoryBeer, BasePrice: 180, Available: true},
		{Name: "Tuborg", Category: entity.BrandCategoryBeer, BasePrice: 150, Available: true},
		{Name: "Budweiser", Category: entity.BrandCategoryBeer, BasePrice: 200, Available: true},
		{Name: "Blenders Pride", Category: entity.BrandCategoryWhiskey, BasePrice: 900, Available: true},
		{Name: "Royal Stag", Category: entity.BrandCategoryWhiskey, BasePrice: 700, Available: true},
		{Name: "Magic Moments", Category: entity.BrandCategoryVodka, BasePrice: 650, Available: true},
		{Name: "Coca Cola", Category: entity.BrandCategorySoft, BasePrice: 40, Available: true},
		{Name: "Sprite", Category: entity.BrandCategorySoft, BasePrice: 40, Available: true},
		{Name: "Soda", Category: entity.BrandCategorySoft, BasePrice: 20, Available: true},
	}
	for _, b := range brands {
		if err := db.FirstOrCreate(&entity.DrinkBrand{}, entity.DrinkBrand{Name: b.Name}).Error; err != nil {
			return err
		}
		// อัปเดตราคา/หมวดตาม seed ล่าสุดเฉพาะแถวที่เพิ่งสร้าง (ไม่ทับของ admin)
		db.Model(&entity.DrinkBrand{}).
			Where("name = ? AND base_price = 0", b.Name).
			Updates(map[string]any{"category": b.Category, "base_price": b.BasePrice, "available": b.Available})
	}

	log.Println("✅ Drink brand catalog seeded")
	return nil
}
