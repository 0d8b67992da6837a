package repository

import (
	"errors"
	"time"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) ListBySpot(spotID uint) ([]entity.Payment, error) {
	var pays []entity.Payment
	err := r.DB.Where("spot_id = ?", spotID).
		Preload("User").
		Order("id asc").
		Find(&pays).Error
	if err := degradeSchemaMissing(err, "payments"); err != nil {
		return nil, err
	}
	return pays, nil
}

func (r *PaymentRepository) GetByID(id uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ไม่มีแถว = ยังไม่ bootstrap → คืน nil ไม่ใช่ error
func (r *PaymentRepository) GetBySpotUser(spotID, userID uint) (*entity.Payment, error) {
	var p entity.Payment
	err := r.DB.Where("spot_id = ? AND user_id = ?", spotID, userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// upsert บน (spot_id,user_id)
func (r *PaymentRepository) Upsert(tx *gorm.DB, p *entity.Payment) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "spot_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(p).Error
}

// bootstrap not_paid ถ้ายังไม่มีแถว; มีแล้วไม่แตะ (กัน confirm ซ้ำ)
func (r *PaymentRepository) EnsureExists(tx *gorm.DB, spotID, userID uint) error {
	p := entity.Payment{SpotID: spotID, UserID: userID, Status: entity.PaymentNotPaid}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "spot_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&p).Error
}

// อัปเดตสถานะ (+ optional PaidAt)
func (r *PaymentRepository) UpdateStatus(tx *gorm.DB, id uint, status string, paidAt *time.Time) error {
	updates := map[string]any{"status": status, "paid_at": paidAt}
	return tx.Model(&entity.Payment{}).Where("id = ?", id).Updates(updates).Error
}

// เขียนยอดรวมเครื่องดื่มที่คำนวณใหม่ลงแถว payment ของคู่ (spot,user)
// ยังไม่มีแถว payment → ไม่ทำอะไร (ยอดจะถูกเขียนตอน bootstrap ครั้งถัดไป)
func (r *PaymentRepository) SetDrinkTotal(tx *gorm.DB, spotID, userID uint, total int64) error {
	return tx.Model(&entity.Payment{}).
		Where("spot_id = ? AND user_id = ?", spotID, userID).
		Update("drink_total_amount", total).Error
}
