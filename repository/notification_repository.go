package repository

import (
	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"gorm.io/gorm"
)

type NotificationRepository struct{ DB *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) CreateBatch(tx *gorm.DB, ns []entity.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	return tx.Create(&ns).Error
}

func (r *NotificationRepository) ListByUser(userID uint) ([]entity.Notification, error) {
	var ns []entity.Notification
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&ns).Error
	if err := degradeSchemaMissing(err, "notifications"); err != nil {
		return nil, err
	}
	return ns, nil
}

// write-once: แก้ได้เฉพาะ read flag และเฉพาะของตัวเอง
func (r *NotificationRepository) MarkRead(id, userID uint) (int64, error) {
	res := r.DB.Model(&entity.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	return res.RowsAffected, res.Error
}
