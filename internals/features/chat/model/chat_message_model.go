package model

import (
	"time"
)

// Message type values.
const (
	TypeText  = "text"
	TypeImage = "image"
)

// Server-side message status. "sending" is a client-only optimistic state
// and never reaches this table.
const (
	StatusSent      = "sent"
	StatusDelivered = "delivered"
	StatusRead      = "read"
)

type ChatMessageModel struct {
	ChatMessageID          string `gorm:"column:chat_message_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"chat_message_id"`
	ChatMessageSenderID    string `gorm:"column:chat_message_sender_id;type:uuid;not null;index" json:"chat_message_sender_id"`
	ChatMessageRecipientID string `gorm:"column:chat_message_recipient_id;type:uuid;not null;index" json:"chat_message_recipient_id"`

	ChatMessageBody     string  `gorm:"column:chat_message_body;type:text;not null" json:"chat_message_body"`
	ChatMessageType     string  `gorm:"column:chat_message_type;type:varchar(10);not null;default:'text'" json:"chat_message_type"`
	ChatMessageImageURL *string `gorm:"column:chat_message_image_url;type:text" json:"chat_message_image_url,omitempty"`

	ChatMessageStatus string `gorm:"column:chat_message_status;type:varchar(12);not null;default:'sent'" json:"chat_message_status"`

	ChatMessageCreatedAt time.Time `gorm:"column:chat_message_created_at;autoCreateTime;index" json:"chat_message_created_at"`
}

func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
