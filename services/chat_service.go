package services

import (
	"errors"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
	"gorm.io/datatypes"
)

type ChatService struct {
	Repo   *repository.ChatRepository
	Events EventPublisher
}

func NewChatService(repo *repository.ChatRepository, events EventPublisher) *ChatService {
	return &ChatService{Repo: repo, Events: orNop(events)}
}

func (s *ChatService) Messages(limit int) ([]entity.ChatMessage, error) {
	return s.Repo.ListMessages(limit)
}

// ส่งข้อความ: text หรือรูป อย่างน้อยหนึ่งอย่าง
func (s *ChatService) Send(userID uint, body string, images []string) (*entity.ChatMessage, error) {
	if body == "" && len(images) == 0 {
		return nil, errors.New("message is empty")
	}

	msg := &entity.ChatMessage{
		UserID:    userID,
		Body:      body,
		Images:    datatypes.NewJSONSlice(images),
		Reactions: entity.ReactionMap{},
	}
	if err := s.Repo.CreateMessage(msg); err != nil {
		return nil, err
	}

	s.Events.Publish("chat_messages", EventInsert, 0, msg)
	return msg, nil
}

// กด/ยกเลิก reaction - set operation เดียว ไม่มี array splicing
func (s *ChatService) ToggleReaction(messageID, userID uint, symbol string) (*entity.ChatMessage, error) {
	if symbol == "" {
		return nil, errors.New("symbol is required")
	}

	msg, err := s.Repo.GetMessage(messageID)
	if err != nil {
		return nil, err
	}

	msg.Reactions = msg.Reactions.Toggle(symbol, userID)
	if err := s.Repo.SaveReactions(msg); err != nil {
		return nil, err
	}

	s.Events.Publish("chat_messages", EventUpdate, 0, msg)
	return msg, nil
}
