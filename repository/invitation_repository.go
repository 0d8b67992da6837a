package repository

import (
	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvitationRepository struct{ DB *gorm.DB }

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{DB: db}
}

func (r *InvitationRepository) ListBySpot(spotID uint) ([]entity.Invitation, error) {
	var invs []entity.Invitation
	err := r.DB.Where("spot_id = ?", spotID).
		Preload("User").
		Order("id asc").
		Find(&invs).Error
	if err := degradeSchemaMissing(err, "invitations"); err != nil {
		return nil, err
	}
	return invs, nil
}

func (r *InvitationRepository) GetByID(id uint) (*entity.Invitation, error) {
	var inv entity.Invitation
	if err := r.DB.First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// upsert บน (spot_id,user_id) - เรียกซ้ำด้วยค่าเดิมได้ผลแถวเดิมเสมอ
func (r *InvitationRepository) Upsert(tx *gorm.DB, inv *entity.Invitation) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "spot_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(inv).Error
}

func (r *InvitationRepository) UpdateStatus(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&entity.Invitation{}).Where("id = ?", id).Update("status", status).Error
}

// fan-out ตอนสร้าง spot: pending ทุกคน ยกเว้น creator = confirmed
func (r *InvitationRepository) CreateBatch(tx *gorm.DB, invs []entity.Invitation) error {
	if len(invs) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "spot_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&invs).Error
}
