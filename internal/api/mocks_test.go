package api_test

import (
	"chat_messages_go_backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockChatStoreDB struct {
	mock.Mock
}

func (m *MockChatStoreDB) CreateChat(title string) (*models.Chat, error) {
	args := m.Called(title)
	if chat := args.Get(0); chat != nil {
		return chat.(*models.Chat), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChatStoreDB) GetChatByID(chatID uint) (*models.Chat, error) {
	args := m.Called(chatID)
	if chat := args.Get(0); chat != nil {
		return chat.(*models.Chat), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChatStoreDB) CreateMessage(chatID uint, text string) (*models.Message, error) {
	args := m.Called(chatID, text)
	if message := args.Get(0); message != nil {
		return message.(*models.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChatStoreDB) GetRecentMessagesByChatID(chatID uint, limit int) ([]models.Message, error) {
	args := m.Called(chatID, limit)
	if messages := args.Get(0); messages != nil {
		return messages.([]models.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChatStoreDB) DeleteChatByID(chatID uint) error {
	args := m.Called(chatID)
	return args.Error(0)
}
