package services

import (
	"errors"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
)

type MomentService struct {
	Repo   *repository.MomentRepository
	Events EventPublisher
}

func NewMomentService(repo *repository.MomentRepository, events EventPublisher) *MomentService {
	return &MomentService{Repo: repo, Events: orNop(events)}
}

func (s *MomentService) ListBySpot(spotID uint) ([]entity.Moment, error) {
	return s.Repo.ListBySpot(spotID)
}

func (s *MomentService) Create(userID, spotID uint, imageURL, caption string) (*entity.Moment, error) {
	if imageURL == "" {
		return nil, errors.New("imageUrl is required")
	}
	m := &entity.Moment{SpotID: spotID, ImageURL: imageURL, Caption: caption, CreatedBy: userID}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	s.Events.Publish("moments", EventInsert, spotID, m)
	return m, nil
}

func (s *MomentService) Delete(id, userID uint, isAdmin bool) error {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if m.CreatedBy != userID && !isAdmin {
		return errors.New("forbidden")
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Events.Publish("moments", EventDelete, m.SpotID, m)
	return nil
}
