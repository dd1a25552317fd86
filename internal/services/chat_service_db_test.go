package services_test

import (
	"testing"

	"chat_messages_go_backend/internal/database"
	"chat_messages_go_backend/internal/models"
	"chat_messages_go_backend/internal/services"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) (services.ChatStoreDB, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	return services.NewChatStoreDB(db), db
}

func TestCreateChat(t *testing.T) {
	store, _ := newTestStore(t)

	chat, err := store.CreateChat("Test Chat")
	require.NoError(t, err)

	assert.NotZero(t, chat.ID)
	assert.Equal(t, "Test Chat", chat.Title)
	assert.False(t, chat.CreatedAt.IsZero())
}

func TestGetChatByID(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.CreateChat("Roundtrip")
	require.NoError(t, err)

	found, err := store.GetChatByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Roundtrip", found.Title)
}

func TestGetChatByIDNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.GetChatByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateMessage(t *testing.T) {
	store, _ := newTestStore(t)

	chat, err := store.CreateChat("With Messages")
	require.NoError(t, err)

	message, err := store.CreateMessage(chat.ID, "Hello World!")
	require.NoError(t, err)

	assert.NotZero(t, message.ID)
	assert.Equal(t, chat.ID, message.ChatID)
	assert.Equal(t, "Hello World!", message.Text)
	assert.False(t, message.CreatedAt.IsZero())
}

func TestGetRecentMessagesByChatID(t *testing.T) {
	store, _ := newTestStore(t)

	chat, err := store.CreateChat("Ordering")
	require.NoError(t, err)

	texts := []string{"first", "second", "third", "fourth", "fifth"}
	for _, text := range texts {
		_, err := store.CreateMessage(chat.ID, text)
		require.NoError(t, err)
	}

	t.Run("limit below count returns newest first", func(t *testing.T) {
		messages, err := store.GetRecentMessagesByChatID(chat.ID, 3)
		require.NoError(t, err)
		require.Len(t, messages, 3)
		assert.Equal(t, "fifth", messages[0].Text)
		assert.Equal(t, "fourth", messages[1].Text)
		assert.Equal(t, "third", messages[2].Text)
	})

	t.Run("limit above count returns everything", func(t *testing.T) {
		messages, err := store.GetRecentMessagesByChatID(chat.ID, 100)
		require.NoError(t, err)
		require.Len(t, messages, 5)
		assert.Equal(t, "fifth", messages[0].Text)
		assert.Equal(t, "first", messages[4].Text)
	})

	t.Run("only the requested chat's messages", func(t *testing.T) {
		other, err := store.CreateChat("Other")
		require.NoError(t, err)
		_, err = store.CreateMessage(other.ID, "elsewhere")
		require.NoError(t, err)

		messages, err := store.GetRecentMessagesByChatID(other.ID, 10)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "elsewhere", messages[0].Text)
	})
}

func TestDeleteChatByID(t *testing.T) {
	store, db := newTestStore(t)

	chat, err := store.CreateChat("Doomed")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := store.CreateMessage(chat.ID, "to be removed")
		require.NoError(t, err)
	}

	survivor, err := store.CreateChat("Survivor")
	require.NoError(t, err)
	_, err = store.CreateMessage(survivor.ID, "still here")
	require.NoError(t, err)

	require.NoError(t, store.DeleteChatByID(chat.ID))

	_, err = store.GetChatByID(chat.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// No orphaned message rows remain.
	var orphans int64
	require.NoError(t, db.Model(&models.Message{}).Where("chat_id = ?", chat.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	// The other chat is untouched.
	messages, err := store.GetRecentMessagesByChatID(survivor.ID, 10)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestDeleteChatByIDNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.DeleteChatByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
