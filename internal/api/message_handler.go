package api

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageHandler serves the coach's conversations with athletes.
type MessageHandler struct {
	messageService service.MessageService
	logger         *zap.Logger
}

func NewMessageHandler(messageService service.MessageService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{messageService: messageService, logger: logger}
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// ConversationResponse is a full thread.
type ConversationResponse struct {
	ID              string           `json:"id"`
	AthleteID       string           `json:"athleteId"`
	AthleteName     string           `json:"athleteName"`
	AthleteInitials string           `json:"athleteInitials"`
	Messages        []domain.Message `json:"messages"`
}

func MapConversationToResponse(c *domain.Conversation) ConversationResponse {
	messages := c.Messages
	if messages == nil {
		messages = []domain.Message{}
	}
	return ConversationResponse{
		ID:              c.ID,
		AthleteID:       c.AthleteID,
		AthleteName:     c.AthleteName,
		AthleteInitials: c.AthleteInitials,
		Messages:        messages,
	}
}

// ListConversations godoc
// @Summary List conversations, most recent first
// @Description Search matches the athlete's name. The unread total covers every conversation.
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive text in the athlete's name"
// @Success 200 {object} service.Inbox
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /coach/messages [get]
func (h *MessageHandler) ListConversations(c *gin.Context) {
	reader, err := getUserFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}
	box, err := h.messageService.ListConversations(c.Request.Context(), reader, c.Query("search"))
	if err != nil {
		h.logger.Error("Listing conversations failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve conversations.")
		return
	}
	c.JSON(http.StatusOK, box)
}

// GetConversation godoc
// @Summary Open a conversation
// @Description Returns every message and marks the athlete's messages as read.
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param conversationId path string true "Conversation ID"
// @Success 200 {object} ConversationResponse
// @Failure 404 {object} gin.H "Conversation not found"
// @Router /coach/messages/{conversationId} [get]
func (h *MessageHandler) GetConversation(c *gin.Context) {
	reader, err := getUserFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}
	conversationID := c.Param("conversationId")
	conversation, err := h.messageService.OpenConversation(c.Request.Context(), reader, conversationID)
	if err != nil {
		if errors.Is(err, service.ErrConversationNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			h.logger.Error("Opening conversation failed", zap.String("conversationId", conversationID), zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve conversation.")
		}
		return
	}
	c.JSON(http.StatusOK, MapConversationToResponse(conversation))
}

// SendMessage godoc
// @Summary Send a message in a conversation
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conversationId path string true "Conversation ID"
// @Param message body SendMessageRequest true "Message"
// @Success 201 {object} domain.Message
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Conversation not found"
// @Router /coach/messages/{conversationId} [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	author, err := getUserFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	conversationID := c.Param("conversationId")
	message, err := h.messageService.SendMessage(c.Request.Context(), author, conversationID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrConversationNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			h.logger.Error("Sending message failed", zap.String("conversationId", conversationID), zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, "Failed to send message.")
		}
		return
	}
	c.JSON(http.StatusCreated, message)
}
