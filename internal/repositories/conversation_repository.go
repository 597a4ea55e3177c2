package repositories

import (
	"github.com/aeiluminate/backend/internal/models"
	"gorm.io/gorm"
)

// ConversationRepository defines the interface for private-message data
// operations
type ConversationRepository interface {
	FindConversationBetween(userA, userB string) (*models.Conversation, error)
	CreateConversation(conversation *models.Conversation) error
	CreateMessage(message *models.Message) error
	ListMessages(conversationID string) ([]models.MessageDetail, error)
	ListUserConversations(userID string) ([]models.ConversationDetail, error)
}

// PostgresConversationRepository implements ConversationRepository for
// PostgreSQL
type PostgresConversationRepository struct {
	db *gorm.DB
}

// NewPostgresConversationRepository creates a new PostgresConversationRepository
func NewPostgresConversationRepository(db *gorm.DB) *PostgresConversationRepository {
	return &PostgresConversationRepository{db: db}
}

// FindConversationBetween finds the conversation linking two users in either
// member order
func (r *PostgresConversationRepository) FindConversationBetween(userA, userB string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.Where("(member_one = ? AND member_two = ?) OR (member_one = ? AND member_two = ?)",
		userA, userB, userB, userA).
		First(&conversation).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// CreateConversation creates a new conversation
func (r *PostgresConversationRepository) CreateConversation(conversation *models.Conversation) error {
	return r.db.Create(conversation).Error
}

// CreateMessage appends a message to a conversation
func (r *PostgresConversationRepository) CreateMessage(message *models.Message) error {
	return r.db.Create(message).Error
}

// ListMessages returns a conversation's messages in send order, joined with
// both parties' public fields
func (r *PostgresConversationRepository) ListMessages(conversationID string) ([]models.MessageDetail, error) {
	var messages []models.MessageDetail
	err := r.db.Table("messages").
		Select(`messages.message_id AS message_id,
			messages.sender_id AS sender_id,
			messages.receiver_id AS receiver_id,
			messages.content AS content,
			messages.created_at AS message_timestamp,
			sender.first_name AS sender_first_name,
			sender.last_name AS sender_last_name,
			sender.username AS sender_username,
			sender.profile_picture AS sender_profile_picture,
			receiver.first_name AS receiver_first_name,
			receiver.last_name AS receiver_last_name,
			receiver.username AS receiver_username,
			receiver.profile_picture AS receiver_profile_picture`).
		Joins("LEFT JOIN users sender ON messages.sender_id = sender.user_id").
		Joins("LEFT JOIN users receiver ON messages.receiver_id = receiver.user_id").
		Where("messages.conversation_id = ?", conversationID).
		Order("messages.created_at ASC").
		Scan(&messages).Error
	return messages, err
}

// ListUserConversations returns every conversation a user belongs to, newest
// first, joined with both members' public fields
func (r *PostgresConversationRepository) ListUserConversations(userID string) ([]models.ConversationDetail, error) {
	var conversations []models.ConversationDetail
	err := r.db.Table("conversations").
		Select(`conversations.conversation_id AS conversation_id,
			member_one.user_id AS member_one_id,
			member_one.first_name AS member_one_first_name,
			member_one.last_name AS member_one_last_name,
			member_one.username AS member_one_username,
			member_one.profile_picture AS member_one_profile_picture,
			member_two.user_id AS member_two_id,
			member_two.first_name AS member_two_first_name,
			member_two.last_name AS member_two_last_name,
			member_two.username AS member_two_username,
			member_two.profile_picture AS member_two_profile_picture,
			conversations.created_at AS conversation_created_at`).
		Joins("LEFT JOIN users member_one ON conversations.member_one = member_one.user_id").
		Joins("LEFT JOIN users member_two ON conversations.member_two = member_two.user_id").
		Where("conversations.member_one = ? OR conversations.member_two = ?", userID, userID).
		Order("conversations.created_at DESC").
		Scan(&conversations).Error
	return conversations, err
}
