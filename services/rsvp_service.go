package services

import (
	"errors"
	"log"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
	"gorm.io/gorm"
)

// RSVPService ดูแล invitation ต่อคู่ (spot,user) + bootstrap payment ตอน confirm
type RSVPService struct {
	DB      *gorm.DB
	InvRepo *repository.InvitationRepository
	PayRepo *repository.PaymentRepository
	SelRepo *repository.SelectionRepository
	Events  EventPublisher
}

func NewRSVPService(
	db *gorm.DB,
	invRepo *repository.InvitationRepository,
	payRepo *repository.PaymentRepository,
	selRepo *repository.SelectionRepository,
	events EventPublisher,
) *RSVPService {
	return &RSVPService{DB: db, InvRepo: invRepo, PayRepo: payRepo, SelRepo: selRepo, Events: orNop(events)}
}

func (s *RSVPService) ListBySpot(spotID uint) ([]entity.Invitation, error) {
	return s.InvRepo.ListBySpot(spotID)
}

// Upsert RSVP ของ user - เรียกซ้ำสถานะเดิมได้แถวเดิม ไม่มีแถวซ้ำ
func (s *RSVPService) Upsert(spotID, userID uint, status string) (*entity.Invitation, error) {
	if !entity.ValidInvitationStatus(status) {
		return nil, errors.New("invalid invitation status")
	}

	inv := &entity.Invitation{SpotID: spotID, UserID: userID, Status: status}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.InvRepo.Upsert(tx, inv)
	})
	if err != nil {
		return nil, err
	}

	// confirm แล้วค่อย bootstrap payment - best-effort, ห้าม fail RSVP
	if status == entity.InvitationConfirmed {
		s.ensurePayment(spotID, userID)
	}

	s.Events.Publish("invitations", EventUpdate, spotID, inv)
	return inv, nil
}

func (s *RSVPService) UpdateStatus(id uint, status string) (*entity.Invitation, error) {
	if !entity.ValidInvitationStatus(status) {
		return nil, errors.New("invalid invitation status")
	}

	inv, err := s.InvRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.InvRepo.UpdateStatus(tx, id, status)
	})
	if err != nil {
		return nil, err
	}
	inv.Status = status

	if status == entity.InvitationConfirmed {
		s.ensurePayment(inv.SpotID, inv.UserID)
	}

	s.Events.Publish("invitations", EventUpdate, inv.SpotID, inv)
	return inv, nil
}

// สร้าง payment not_paid ถ้ายังไม่มี (upsert do-nothing กัน confirm ซ้ำ)
// แล้ว sync drink total เผื่อ user เลือกเครื่องดื่มไว้ก่อน confirm
// ล้มเหลว = log แล้วไปต่อ RSVP สำเร็จไปแล้ว retry ได้ที่ confirm ครั้งหน้า
func (s *RSVPService) ensurePayment(spotID, userID uint) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.PayRepo.EnsureExists(tx, spotID, userID)
	})
	if err != nil {
		log.Printf("payment bootstrap failed (spot=%d user=%d): %v", spotID, userID, err)
		return
	}

	lines, err := s.SelRepo.ListBySpotUser(spotID, userID)
	if err == nil {
		if err := s.PayRepo.SetDrinkTotal(s.DB, spotID, userID, RecomputeDrinkTotal(lines)); err != nil {
			log.Printf("drink total sync failed (spot=%d user=%d): %v", spotID, userID, err)
		}
	}

	if p, err := s.PayRepo.GetBySpotUser(spotID, userID); err == nil && p != nil {
		s.Events.Publish("payments", EventUpdate, spotID, p)
	}
}
