package services

import (
	"errors"
	"time"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
	"gorm.io/gorm"
)

type PaymentService struct {
	DB      *gorm.DB
	PayRepo *repository.PaymentRepository
	Events  EventPublisher
}

func NewPaymentService(db *gorm.DB, payRepo *repository.PaymentRepository, events EventPublisher) *PaymentService {
	return &PaymentService{DB: db, PayRepo: payRepo, Events: orNop(events)}
}

func (s *PaymentService) ListBySpot(spotID uint) ([]entity.Payment, error) {
	return s.PayRepo.ListBySpot(spotID)
}

func (s *PaymentService) Upsert(spotID, userID uint, status string) (*entity.Payment, error) {
	if !entity.ValidPaymentStatus(status) {
		return nil, errors.New("invalid payment status")
	}

	p := &entity.Payment{SpotID: spotID, UserID: userID, Status: status}
	if status == entity.PaymentPaid {
		now := time.Now()
		p.PaidAt = &now
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.PayRepo.Upsert(tx, p)
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish("payments", EventUpdate, spotID, p)
	return p, nil
}

// สถานะจ่ายเงินแก้ได้เฉพาะ admin (บังคับที่ route) อิสระจากสถานะ invitation
func (s *PaymentService) UpdateStatus(id uint, status string) (*entity.Payment, error) {
	if !entity.ValidPaymentStatus(status) {
		return nil, errors.New("invalid payment status")
	}

	p, err := s.PayRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	var paidAt *time.Time
	if status == entity.PaymentPaid {
		now := time.Now()
		paidAt = &now
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.PayRepo.UpdateStatus(tx, id, status, paidAt)
	})
	if err != nil {
		return nil, err
	}
	p.Status = status
	p.PaidAt = paidAt

	s.Events.Publish("payments", EventUpdate, p.SpotID, p)
	return p, nil
}

func (s *PaymentService) MarkPaid(id uint) (*entity.Payment, error) {
	return s.UpdateStatus(id, entity.PaymentPaid)
}

func (s *PaymentService) MarkUnpaid(id uint) (*entity.Payment, error) {
	return s.UpdateStatus(id, entity.PaymentNotPaid)
}
