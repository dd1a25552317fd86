package services

import (
	"chat_messages_go_backend/internal/models"

	"gorm.io/gorm"
)

// ChatStoreDB defines the data access operations for chats and messages.
type ChatStoreDB interface {
	CreateChat(title string) (*models.Chat, error)
	GetChatByID(chatID uint) (*models.Chat, error)
	CreateMessage(chatID uint, text string) (*models.Message, error)
	GetRecentMessagesByChatID(chatID uint, limit int) ([]models.Message, error)
	DeleteChatByID(chatID uint) error
}

// DefaultChatStore implements ChatStoreDB on top of gorm.
type DefaultChatStore struct {
	db *gorm.DB
}

// NewChatStoreDB creates a new DefaultChatStore.
func NewChatStoreDB(db *gorm.DB) ChatStoreDB {
	return &DefaultChatStore{db: db}
}

// CreateChat persists a new chat. The title must already be trimmed and
// validated by the caller; the store assigns id and created_at.
func (s *DefaultChatStore) CreateChat(title string) (*models.Chat, error) {
	chat := &models.Chat{Title: title}
	if err := s.db.Create(chat).Error; err != nil {
		return nil, err
	}
	return chat, nil
}

// GetChatByID retrieves a chat by its id. Returns gorm.ErrRecordNotFound
// when no such chat exists.
func (s *DefaultChatStore) GetChatByID(chatID uint) (*models.Chat, error) {
	var chat models.Chat
	if err := s.db.First(&chat, chatID).Error; err != nil {
		return nil, err
	}
	return &chat, nil
}

// CreateMessage persists a new message in an existing chat. Chat existence
// is checked by the caller; if the chat vanished in between, the foreign
// key constraint rejects the insert and the error propagates.
func (s *DefaultChatStore) CreateMessage(chatID uint, text string) (*models.Message, error) {
	message := &models.Message{
		ChatID: chatID,
		Text:   text,
	}
	if err := s.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// GetRecentMessagesByChatID retrieves up to limit of the chat's most recent
// messages, newest first. Callers reverse the slice when they need ascending
// order; fetching DESC with a limit keeps the query on the chat_id index
// instead of scanning the full history.
func (s *DefaultChatStore) GetRecentMessagesByChatID(chatID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	result := s.db.Where("chat_id = ?", chatID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}
	return messages, nil
}

// DeleteChatByID deletes a chat and all its messages in one transaction.
// Returns gorm.ErrRecordNotFound when the chat does not exist.
func (s *DefaultChatStore) DeleteChatByID(chatID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var chat models.Chat
		if err := tx.First(&chat, chatID).Error; err != nil {
			return err
		}
		if err := tx.Where("chat_id = ?", chatID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&chat).Error
	})
}
