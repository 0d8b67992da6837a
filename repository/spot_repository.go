package repository

import (
	"errors"
	"time"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"gorm.io/gorm"
)

type SpotRepository struct{ DB *gorm.DB }

func NewSpotRepository(db *gorm.DB) *SpotRepository { return &SpotRepository{DB: db} }

// spot ล่าสุดที่ยังไม่ผ่าน (ไม่มี = ไม่ error, คืน nil)
func (r *SpotRepository) GetUpcoming(now time.Time) (*entity.Spot, error) {
	var s entity.Spot
	err := r.DB.Where("date >= ?", now).Order("date asc").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err := degradeSchemaMissing(err, "spots"); err != nil {
		return nil, err
	}
	if s.ID == 0 {
		return nil, nil
	}
	return &s, nil
}

func (r *SpotRepository) ListPast(now time.Time) ([]entity.Spot, error) {
	var spots []entity.Spot
	err := r.DB.Where("date < ?", now).Order("date desc").Find(&spots).Error
	if err := degradeSchemaMissing(err, "spots"); err != nil {
		return nil, err
	}
	return spots, nil
}

func (r *SpotRepository) GetByID(id uint) (*entity.Spot, error) {
	var s entity.Spot
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SpotRepository) Create(tx *gorm.DB, s *entity.Spot) error {
	return tx.Create(s).Error
}

func (r *SpotRepository) Update(tx *gorm.DB, id uint, updates map[string]any) error {
	return tx.Model(&entity.Spot{}).Where("id = ?", id).Updates(updates).Error
}

// ลบ spot พร้อมลูกทั้งหมด (hard delete เพื่อคืน unique key (spot,user))
func (r *SpotRepository) DeleteCascade(tx *gorm.DB, id uint) error {
	for _, m := range []any{
		&entity.Invitation{}, &entity.Payment{}, &entity.Attendance{},
		&entity.UserDrinkSelection{}, &entity.Drink{}, &entity.Food{},
		&entity.Cigarette{}, &entity.Moment{},
	} {
		if err := tx.Unscoped().Where("spot_id = ?", id).Delete(m).Error; err != nil {
			return err
		}
	}
	return tx.Unscoped().Delete(&entity.Spot{}, id).Error
}
