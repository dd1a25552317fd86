package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	apperrors "chat_messages_go_backend/internal/errors"
	"chat_messages_go_backend/internal/models"
	"chat_messages_go_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	maxTitleLength = 200
	maxTextLength  = 5000

	defaultMessageLimit = 20
	maxMessageLimit     = 100
)

type createChatRequest struct {
	Title string `json:"title"`
}

type createMessageRequest struct {
	Text string `json:"text"`
}

// chatWithMessages is the Get Chat response shape. The messages slice is
// always present, even when empty.
type chatWithMessages struct {
	models.Chat
	Messages []models.Message `json:"messages"`
}

func createChatHandler(chatStore services.ChatStoreDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.HandleError(c, apperrors.NewValidationError("Invalid request body"))
			return
		}

		title := strings.TrimSpace(req.Title)
		if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
			apperrors.HandleError(c, apperrors.NewValidationError("Title must be between 1 and 200 characters"))
			return
		}

		chat, err := chatStore.CreateChat(title)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewInternalError(err))
			return
		}

		c.JSON(http.StatusOK, chat)
	}
}

func createMessageHandler(chatStore services.ChatStoreDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		chatID, err := parseChatID(c)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		// Chat existence is checked before the body is validated, so a
		// missing chat is reported as 404 regardless of text validity.
		if _, err := chatStore.GetChatByID(chatID); err != nil {
			apperrors.HandleError(c, mapChatLookupError(err))
			return
		}

		var req createMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.HandleError(c, apperrors.NewValidationError("Invalid request body"))
			return
		}

		text := strings.TrimSpace(req.Text)
		if text == "" || utf8.RuneCountInString(text) > maxTextLength {
			apperrors.HandleError(c, apperrors.NewValidationError("Text must be between 1 and 5000 characters"))
			return
		}

		message, err := chatStore.CreateMessage(chatID, text)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewInternalError(err))
			return
		}

		c.JSON(http.StatusOK, message)
	}
}

func getChatHandler(chatStore services.ChatStoreDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		chatID, err := parseChatID(c)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		limit, err := parseMessageLimit(c)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		chat, err := chatStore.GetChatByID(chatID)
		if err != nil {
			apperrors.HandleError(c, mapChatLookupError(err))
			return
		}

		messages, err := chatStore.GetRecentMessagesByChatID(chatID, limit)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewInternalError(err))
			return
		}

		// The store returns newest first; reverse for ascending order.
		for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
			messages[i], messages[j] = messages[j], messages[i]
		}
		if messages == nil {
			messages = []models.Message{}
		}

		c.JSON(http.StatusOK, chatWithMessages{
			Chat:     *chat,
			Messages: messages,
		})
	}
}

func deleteChatHandler(chatStore services.ChatStoreDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		chatID, err := parseChatID(c)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		if err := chatStore.DeleteChatByID(chatID); err != nil {
			apperrors.HandleError(c, mapChatLookupError(err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success"})
	}
}

func parseChatID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("chat_id"), 10, 32)
	if err != nil {
		return 0, apperrors.NewValidationError("Invalid chat ID")
	}
	return uint(id), nil
}

func parseMessageLimit(c *gin.Context) (int, error) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultMessageLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > maxMessageLimit {
		return 0, apperrors.NewValidationError("Limit must be between 1 and 100")
	}
	return limit, nil
}

func mapChatLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFoundError("Chat not found")
	}
	return apperrors.NewInternalError(err)
}
