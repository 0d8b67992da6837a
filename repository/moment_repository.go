package repository

import (
	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"gorm.io/gorm"
)

type MomentRepository struct{ DB *gorm.DB }

func NewMomentRepository(db *gorm.DB) *MomentRepository { return &MomentRepository{DB: db} }

func (r *MomentRepository) ListBySpot(spotID uint) ([]entity.Moment, error) {
	var ms []entity.Moment
	err := r.DB.Where("spot_id = ?", spotID).Order("id desc").Find(&ms).Error
	if err := degradeSchemaMissing(err, "moments"); err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *MomentRepository) GetByID(id uint) (*entity.Moment, error) {
	var m entity.Moment
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MomentRepository) Create(m *entity.Moment) error {
	return r.DB.Create(m).Error
}

func (r *MomentRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Moment{}, id).Error
}
