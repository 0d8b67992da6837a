package repository

import (
	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"gorm.io/gorm"
)

type ProfileRepository struct{ DB *gorm.DB }

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindByID(id uint) (*entity.Profile, error) {
	var p entity.Profile
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) FindByEmail(email string) (*entity.Profile, error) {
	var p entity.Profile
	if err := r.DB.Where("email = ?", email).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Profile{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *ProfileRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Profile{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

func (r *ProfileRepository) Create(p *entity.Profile) error {
	return r.DB.Create(p).Error
}

func (r *ProfileRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Profile{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ProfileRepository) List() ([]entity.Profile, error) {
	var profiles []entity.Profile
	err := r.DB.Order("id asc").Find(&profiles).Error
	if err := degradeSchemaMissing(err, "profiles"); err != nil {
		return nil, err
	}
	return profiles, nil
}

// id ทุกคน ใช้ตอน fan-out invitation
func (r *ProfileRepository) ListIDs() ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.Profile{}).Order("id asc").Pluck("id", &ids).Error
	return ids, err
}

// mission_count ขยับผ่านตรงนี้ที่เดียว (derived, ห้าม set ตรง ๆ)
func (r *ProfileRepository) IncrementMissionCount(tx *gorm.DB, userID uint) error {
	return tx.Model(&entity.Profile{}).Where("id = ?", userID).
		Update("mission_count", gorm.Expr("mission_count + 1")).Error
}
