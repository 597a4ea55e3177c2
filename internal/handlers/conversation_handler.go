package handlers

import (
	"net/http"
	"time"

	"github.com/aeiluminate/backend/internal/models"
	"github.com/aeiluminate/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ConversationHandler handles HTTP requests for private messaging
type ConversationHandler struct {
	conversationRepository repositories.ConversationRepository
	userRepository         repositories.UserRepository
}

// NewConversationHandler creates a new ConversationHandler
func NewConversationHandler(convRepo repositories.ConversationRepository, userRepo repositories.UserRepository) *ConversationHandler {
	return &ConversationHandler{
		conversationRepository: convRepo,
		userRepository:         userRepo,
	}
}

// RegisterConversationRoutes registers messaging routes
func (h *ConversationHandler) RegisterConversationRoutes(g *echo.Group) {
	g.GET("/conversation/list", h.ListConversations)
	g.GET("/conversation/messages", h.GetMessages)
	g.POST("/conversation/message", h.SendMessage)
}

// ListConversations returns every conversation the caller is part of,
// most recent first
func (h *ConversationHandler) ListConversations(c echo.Context) error {
	claims := currentUser(c)

	conversations, err := h.conversationRepository.ListUserConversations(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch conversations")
	}
	return c.JSON(http.StatusOK, echo.Map{"conversations": conversations})
}

// GetMessages returns the message history between the caller and the user
// named in receiverId. An empty history is not an error, a conversation
// only exists once the first message is sent.
func (h *ConversationHandler) GetMessages(c echo.Context) error {
	claims := currentUser(c)

	receiverID := c.QueryParam("receiverId")
	if receiverID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "receiverId is required")
	}

	conversation, err := h.conversationRepository.FindConversationBetween(claims.UserID, receiverID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusOK, echo.Map{"messages": []models.MessageDetail{}})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch conversation")
	}

	messages, err := h.conversationRepository.ListMessages(conversation.ConversationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch messages")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"conversationID": conversation.ConversationID,
		"messages":       messages,
	})
}

// SendMessage sends a private message, creating the conversation if this
// is the first message between the two users
func (h *ConversationHandler) SendMessage(c echo.Context) error {
	claims := currentUser(c)

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.ReceiverID == claims.UserID {
		return echo.NewHTTPError(http.StatusBadRequest, "You cannot message yourself")
	}

	if _, err := h.userRepository.GetUserByID(req.ReceiverID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Receiver not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch receiver")
	}

	conversation, err := h.conversationRepository.FindConversationBetween(claims.UserID, req.ReceiverID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch conversation")
		}
		conversation = &models.Conversation{
			ConversationID: uuid.NewString(),
			MemberOne:      claims.UserID,
			MemberTwo:      req.ReceiverID,
			CreatedAt:      time.Now(),
		}
		if err := h.conversationRepository.CreateConversation(conversation); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create conversation")
		}
	}

	message := &models.Message{
		MessageID:      uuid.NewString(),
		ConversationID: conversation.ConversationID,
		SenderID:       claims.UserID,
		ReceiverID:     req.ReceiverID,
		Content:        req.Content,
		CreatedAt:      time.Now(),
	}
	if err := h.conversationRepository.CreateMessage(message); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send message")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":        "Message sent",
		"conversationID": conversation.ConversationID,
		"messageID":      message.MessageID,
	})
}
