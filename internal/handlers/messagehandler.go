package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmatch-app/rmatch-backend/internal/auth"
	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/search"
	"github.com/rmatch-app/rmatch-backend/internal/services"
)

type MessageHandler struct {
	MessageService *services.MessageService
}

func NewMessageHandler(messages *services.MessageService) *MessageHandler {
	return &MessageHandler{MessageService: messages}
}

// Send is POST /message/send
func (h *MessageHandler) Send(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dtos.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	msg, err := h.MessageService.Send(c.Request.Context(), session, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// Conversation is GET /message/conversation/:userId
func (h *MessageHandler) Conversation(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	otherUserID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}

	var q dtos.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	page, pageSize, err := search.ParsePage(q)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	messages, total, err := h.MessageService.Conversation(c.Request.Context(), session, otherUserID, page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"messages":      messages,
		"messagesCount": total,
	})
}
