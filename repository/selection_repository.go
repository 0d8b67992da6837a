package repository

import (
	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SelectionRepository struct{ DB *gorm.DB }

func NewSelectionRepository(db *gorm.DB) *SelectionRepository {
	return &SelectionRepository{DB: db}
}

func (r *SelectionRepository) ListBySpotUser(spotID, userID uint) ([]entity.UserDrinkSelection, error) {
	var lines []entity.UserDrinkSelection
	err := r.DB.Where("spot_id = ? AND user_id = ?", spotID, userID).
		Preload("DrinkBrand").
		Order("id asc").
		Find(&lines).Error
	if err := degradeSchemaMissing(err, "user_drink_selections"); err != nil {
		return nil, err
	}
	return lines, nil
}

// มุมมอง admin: ทุก line ของ spot พร้อม profile เจ้าของ
func (r *SelectionRepository) ListBySpot(spotID uint) ([]entity.UserDrinkSelection, error) {
	var lines []entity.UserDrinkSelection
	err := r.DB.Where("spot_id = ?", spotID).
		Preload("DrinkBrand").
		Preload("User").
		Order("user_id asc, id asc").
		Find(&lines).Error
	if err := degradeSchemaMissing(err, "user_drink_selections"); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *SelectionRepository) Exists(spotID, userID, brandID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.UserDrinkSelection{}).
		Where("spot_id = ? AND user_id = ? AND drink_brand_id = ?", spotID, userID, brandID).
		Count(&count).Error
	return count > 0, err
}

func (r *SelectionRepository) GetByID(id uint) (*entity.UserDrinkSelection, error) {
	var line entity.UserDrinkSelection
	if err := r.DB.First(&line, id).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// upsert บน (spot_id,user_id,drink_brand_id) - conflict key ของ cart line
// caller รับผิดชอบ qty > 0; qty <= 0 ต้อง dispatch เป็น delete ก่อนมาถึงตรงนี้
func (r *SelectionRepository) Upsert(tx *gorm.DB, line *entity.UserDrinkSelection) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "spot_id"}, {Name: "user_id"}, {Name: "drink_brand_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "unit_price", "total_price", "updated_at"}),
	}).Create(line).Error
}

// qty ใหม่ + total คิดจาก unit_price เดิมของ line ในคำสั่งเดียว
func (r *SelectionRepository) UpdateQuantity(tx *gorm.DB, id uint, qty int) error {
	return tx.Model(&entity.UserDrinkSelection{}).Where("id = ?", id).
		Updates(map[string]any{
			"quantity":    qty,
			"total_price": gorm.Expr("unit_price * ?", qty),
		}).Error
}

// hard delete เพื่อคืน unique triple ให้เลือก brand เดิมใหม่ได้
func (r *SelectionRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Unscoped().Delete(&entity.UserDrinkSelection{}, id).Error
}
