package api

import (
	"net/http"

	"chat_messages_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the chat endpoints on the given engine.
func SetupRoutes(r *gin.Engine, chatStore services.ChatStoreDB) {
	r.GET("/health", healthHandler)

	r.POST("/chats/", createChatHandler(chatStore))
	r.POST("/chats/:chat_id/messages/", createMessageHandler(chatStore))
	r.GET("/chats/:chat_id", getChatHandler(chatStore))
	r.DELETE("/chats/:chat_id", deleteChatHandler(chatStore))
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
