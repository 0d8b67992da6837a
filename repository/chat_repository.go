package repository

import (
	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"gorm.io/gorm"
)

type ChatRepository struct{ DB *gorm.DB }

func NewChatRepository(db *gorm.DB) *ChatRepository { return &ChatRepository{DB: db} }

func (r *ChatRepository) ListMessages(limit int) ([]entity.ChatMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var msgs []entity.ChatMessage
	err := r.DB.Order("id desc").Limit(limit).Find(&msgs).Error
	if err := degradeSchemaMissing(err, "chat_messages"); err != nil {
		return nil, err
	}
	// คืนเรียงเก่า → ใหม่ ให้ FE append ได้เลย
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func (r *ChatRepository) GetMessage(id uint) (*entity.ChatMessage, error) {
	var m entity.ChatMessage
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ChatRepository) CreateMessage(m *entity.ChatMessage) error {
	return r.DB.Create(m).Error
}

// เขียน reactions กลับทั้งก้อน (read-modify-write, last writer wins)
func (r *ChatRepository) SaveReactions(m *entity.ChatMessage) error {
	return r.DB.Model(&entity.ChatMessage{}).Where("id = ?", m.ID).
		Update("reactions", m.Reactions).Error
}
