package services

import (
	"errors"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
)

type NotificationService struct {
	Repo   *repository.NotificationRepository
	Events EventPublisher
}

func NewNotificationService(repo *repository.NotificationRepository, events EventPublisher) *NotificationService {
	return &NotificationService{Repo: repo, Events: orNop(events)}
}

func (s *NotificationService) Notify(userID uint, title, message string) (*entity.Notification, error) {
	n := &entity.Notification{UserID: userID, Title: title, Message: message}
	if err := s.Repo.Create(n); err != nil {
		return nil, err
	}
	s.Events.Publish("notifications", EventInsert, 0, n)
	return n, nil
}

func (s *NotificationService) ListForUser(userID uint) ([]entity.Notification, error) {
	return s.Repo.ListByUser(userID)
}

// mark read ได้เฉพาะของตัวเอง
func (s *NotificationService) MarkRead(id, userID uint) error {
	affected, err := s.Repo.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("notification not found")
	}
	return nil
}
