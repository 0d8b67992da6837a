package services

import (
	"errors"
	"log"
	"time"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
	"gorm.io/gorm"
)

type SpotService struct {
	DB          *gorm.DB
	SpotRepo    *repository.SpotRepository
	InvRepo     *repository.InvitationRepository
	PayRepo     *repository.PaymentRepository
	ProfileRepo *repository.ProfileRepository
	NotifRepo   *repository.NotificationRepository
	Events      EventPublisher
}

func NewSpotService(
	db *gorm.DB,
	spotRepo *repository.SpotRepository,
	invRepo *repository.InvitationRepository,
	payRepo *repository.PaymentRepository,
	profileRepo *repository.ProfileRepository,
	notifRepo *repository.NotificationRepository,
	events EventPublisher,
) *SpotService {
	return &SpotService{
		DB: db, SpotRepo: spotRepo, InvRepo: invRepo, PayRepo: payRepo,
		ProfileRepo: profileRepo, NotifRepo: notifRepo, Events: orNop(events),
	}
}

type CreateSpotIn struct {
	Date        time.Time `json:"date" binding:"required"`
	Timing      string    `json:"timing"`
	Budget      int64     `json:"budget" binding:"min=0"`
	Location    string    `json:"location" binding:"required"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Description string    `json:"description"`
}

// ไม่มี spot ข้างหน้า = (nil, nil) ให้ FE แสดงหน้าว่างได้
func (s *SpotService) Upcoming() (*entity.Spot, error) {
	return s.SpotRepo.GetUpcoming(time.Now())
}

func (s *SpotService) Past() ([]entity.Spot, error) {
	return s.SpotRepo.ListPast(time.Now())
}

func (s *SpotService) Get(id uint) (*entity.Spot, error) {
	return s.SpotRepo.GetByID(id)
}

// สร้าง spot (admin เท่านั้น บังคับที่ route):
// fan-out invitation pending ให้ทุก profile, ของ creator เป็น confirmed ทันที
func (s *SpotService) Create(creatorID uint, in *CreateSpotIn) (*entity.Spot, error) {
	spot := &entity.Spot{
		Date:        in.Date,
		Timing:      in.Timing,
		Budget:      in.Budget,
		Location:    in.Location,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Description: in.Description,
		CreatedBy:   creatorID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.SpotRepo.Create(tx, spot); err != nil {
			return err
		}

		ids, err := s.ProfileRepo.ListIDs()
		if err != nil {
			return err
		}
		invs := make([]entity.Invitation, 0, len(ids))
		for _, id := range ids {
			status := entity.InvitationPending
			if id == creatorID {
				// creator ยืนยันตัวเองตั้งแต่สร้าง ข้าม pending
				status = entity.InvitationConfirmed
			}
			invs = append(invs, entity.Invitation{SpotID: spot.ID, UserID: id, Status: status})
		}
		return s.InvRepo.CreateBatch(tx, invs)
	})
	if err != nil {
		return nil, err
	}

	// invitation ของ creator เป็น confirmed → bootstrap payment best-effort
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.PayRepo.EnsureExists(tx, spot.ID, creatorID)
	}); err != nil {
		log.Printf("creator payment bootstrap failed (spot=%d): %v", spot.ID, err)
	}

	s.notifyAll(spot)
	s.Events.Publish("spots", EventInsert, spot.ID, spot)
	return spot, nil
}

func (s *SpotService) Update(id uint, updates map[string]any) (*entity.Spot, error) {
	if len(updates) == 0 {
		return nil, errors.New("nothing to update")
	}
	allowed := map[string]bool{
		"date": true, "timing": true, "budget": true, "location": true,
		"latitude": true, "longitude": true, "description": true, "feedback": true,
	}
	for k := range updates {
		if !allowed[k] {
			return nil, errors.New("field not updatable: " + k)
		}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.SpotRepo.Update(tx, id, updates)
	})
	if err != nil {
		return nil, err
	}

	spot, err := s.SpotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.Events.Publish("spots", EventUpdate, spot.ID, spot)
	return spot, nil
}

// ลบ spot แล้ว cascade ลูกทั้งหมด (invitations/payments/attendance/selections/...)
func (s *SpotService) Delete(id uint) error {
	spot, err := s.SpotRepo.GetByID(id)
	if err != nil {
		return err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.SpotRepo.DeleteCascade(tx, id)
	})
	if err != nil {
		return err
	}
	s.Events.Publish("spots", EventDelete, id, spot)
	return nil
}

// แจ้งทุกคนว่ามี spot ใหม่ - best-effort
func (s *SpotService) notifyAll(spot *entity.Spot) {
	ids, err := s.ProfileRepo.ListIDs()
	if err != nil {
		log.Printf("spot notification fanout failed: %v", err)
		return
	}
	ns := make([]entity.Notification, 0, len(ids))
	for _, id := range ids {
		ns = append(ns, entity.Notification{
			UserID:  id,
			Title:   "New spot planned",
			Message: spot.Location + ", " + spot.Date.Format("2 Jan 2006"),
		})
	}
	if err := s.NotifRepo.CreateBatch(s.DB, ns); err != nil {
		log.Printf("spot notification fanout failed: %v", err)
	}
}
