package services

import (
	"errors"
	"time"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
	"gorm.io/gorm"
)

type AttendanceService struct {
	DB          *gorm.DB
	AttRepo     *repository.AttendanceRepository
	ProfileRepo *repository.ProfileRepository
	SpotRepo    *repository.SpotRepository
	Events      EventPublisher
}

func NewAttendanceService(
	db *gorm.DB,
	attRepo *repository.AttendanceRepository,
	profileRepo *repository.ProfileRepository,
	spotRepo *repository.SpotRepository,
	events EventPublisher,
) *AttendanceService {
	return &AttendanceService{DB: db, AttRepo: attRepo, ProfileRepo: profileRepo, SpotRepo: spotRepo, Events: orNop(events)}
}

// ไม่มีแถว = unrecorded (nil, nil) - ไม่ใช่ error
func (s *AttendanceService) Get(spotID, userID uint) (*entity.Attendance, error) {
	return s.AttRepo.GetBySpotUser(spotID, userID)
}

func (s *AttendanceService) ListBySpot(spotID uint) ([]entity.Attendance, error) {
	return s.AttRepo.ListBySpot(spotID)
}

// Upsert attendance ของ (spot,user)
// guard: mission_count +1 เฉพาะตอนข้ามเข้า true ครั้งแรก (old != true && new == true)
// เขียน true ซ้ำห้ามนับซ้ำ - guard กับ upsert อยู่ใน transaction เดียวกัน
func (s *AttendanceService) Upsert(spotID, userID uint, attended bool) (*entity.Attendance, error) {
	spot, err := s.SpotRepo.GetByID(spotID)
	if err != nil {
		return nil, err
	}
	// บันทึกได้หลังวันนัดเท่านั้น
	if spot.Date.After(time.Now()) {
		return nil, errors.New("spot has not happened yet")
	}

	a := &entity.Attendance{SpotID: spotID, UserID: userID, Attended: attended}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		prev, err := s.AttRepo.GetBySpotUser(spotID, userID)
		if err != nil {
			return err
		}

		if err := s.AttRepo.Upsert(tx, a); err != nil {
			return err
		}

		firstTrue := attended && (prev == nil || !prev.Attended)
		if firstTrue {
			if err := s.ProfileRepo.IncrementMissionCount(tx, userID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish("attendances", EventUpdate, spotID, a)
	return a, nil
}
