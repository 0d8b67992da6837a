package repository

import (
	"errors"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository struct{ DB *gorm.DB }

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

// ยังไม่เคยบันทึก = สถานะ unrecorded → คืน nil ไม่ใช่ error
func (r *AttendanceRepository) GetBySpotUser(spotID, userID uint) (*entity.Attendance, error) {
	var a entity.Attendance
	err := r.DB.Where("spot_id = ? AND user_id = ?", spotID, userID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttendanceRepository) ListBySpot(spotID uint) ([]entity.Attendance, error) {
	var rows []entity.Attendance
	err := r.DB.Where("spot_id = ?", spotID).Preload("User").Find(&rows).Error
	if err := degradeSchemaMissing(err, "attendances"); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AttendanceRepository) Upsert(tx *gorm.DB, a *entity.Attendance) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "spot_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"attended", "updated_at"}),
	}).Create(a).Error
}
