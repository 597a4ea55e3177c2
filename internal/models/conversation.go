package models

import "time"

// Conversation links two users exchanging private messages
type Conversation struct {
	ConversationID string    `json:"conversationID" gorm:"primaryKey;size:36"`
	MemberOne      string    `json:"memberOne" gorm:"size:36;index"`
	MemberTwo      string    `json:"memberTwo" gorm:"size:36;index"`
	CreatedAt      time.Time `json:"conversationCreatedAt"`
}

// Message is a single private message inside a conversation
type Message struct {
	MessageID      string    `json:"messageID" gorm:"primaryKey;size:36"`
	ConversationID string    `json:"conversationID" gorm:"size:36;index"`
	SenderID       string    `json:"senderID" gorm:"size:36;index"`
	ReceiverID     string    `json:"receiverID" gorm:"size:36;index"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"messageTimestamp" gorm:"index"`
}

// SendMessageRequest defines the request body for sending a private message
type SendMessageRequest struct {
	ReceiverID     string `json:"receiverId" validate:"required"`
	ConversationID string `json:"conversationID"`
	Content        string `json:"content" validate:"required,min=1,max=2000"`
}

// MessageDetail is a message joined with both members' public fields
type MessageDetail struct {
	MessageID              string    `json:"messageID"`
	SenderID               string    `json:"senderID"`
	ReceiverID             string    `json:"receiverID"`
	Content                string    `json:"content"`
	MessageTimestamp       time.Time `json:"messageTimestamp"`
	SenderFirstName        string    `json:"senderFirstName"`
	SenderLastName         string    `json:"senderLastName"`
	SenderUsername         string    `json:"senderUsername"`
	SenderProfilePicture   string    `json:"senderProfilePicture"`
	ReceiverFirstName      string    `json:"receiverFirstName"`
	ReceiverLastName       string    `json:"receiverLastName"`
	ReceiverUsername       string    `json:"receiverUsername"`
	ReceiverProfilePicture string    `json:"receiverProfilePicture"`
}

// ConversationDetail is a conversation joined with both members' public fields
type ConversationDetail struct {
	ConversationID          string    `json:"conversationID"`
	MemberOneID             string    `json:"memberOneID"`
	MemberOneFirstName      string    `json:"memberOneFirstName"`
	MemberOneLastName       string    `json:"memberOneLastName"`
	MemberOneUsername       string    `json:"memberOneUsername"`
	MemberOneProfilePicture string    `json:"memberOneProfilePicture"`
	MemberTwoID             string    `json:"memberTwoID"`
	MemberTwoFirstName      string    `json:"memberTwoFirstName"`
	MemberTwoLastName       string    `json:"memberTwoLastName"`
	MemberTwoUsername       string    `json:"memberTwoUsername"`
	MemberTwoProfilePicture string    `json:"memberTwoProfilePicture"`
	ConversationCreatedAt   time.Time `json:"conversationCreatedAt"`
}
