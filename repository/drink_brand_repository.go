package repository

import (
	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"gorm.io/gorm"
)

type DrinkBrandRepository struct{ DB *gorm.DB }

func NewDrinkBrandRepository(db *gorm.DB) *DrinkBrandRepository {
	return &DrinkBrandRepository{DB: db}
}

// category ว่าง = ทุกหมวด; คืนเฉพาะที่ available
func (r *DrinkBrandRepository) List(category string) ([]entity.DrinkBrand, error) {
	q := r.DB.Where("available = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var brands []entity.DrinkBrand
	err := q.Order("name asc").Find(&brands).Error
	if err := degradeSchemaMissing(err, "drink_brands"); err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *DrinkBrandRepository) GetByID(id uint) (*entity.DrinkBrand, error) {
	var b entity.DrinkBrand
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *DrinkBrandRepository) Create(b *entity.DrinkBrand) error {
	return r.DB.Create(b).Error
}

func (r *DrinkBrandRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.DrinkBrand{}).Where("id = ?", id).Updates(updates).Error
}
