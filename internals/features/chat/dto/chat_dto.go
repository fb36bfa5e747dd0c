package dto

import (
	"time"

	"tamilmandram_backend/internals/features/chat/model"
	"tamilmandram_backend/internals/features/chat/service"
)

// ====================
// Request DTO
// ====================

type SendMessageRequest struct {
	Message     string `json:"message" validate:"required_without=ImageURL,max=4000"`
	MessageType string `json:"message_type" validate:"required,oneof=text image"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// SyncRequest carries the client's optimistic entries for reconciliation
// against server history.
type SyncRequest struct {
	Pending []service.Entry `json:"pending" validate:"dive"`
}

// ====================
// Response DTO
// ====================

type ChatMessageDTO struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Message   string    `json:"message"`
	Type      string    `json:"message_type"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Status    string    `json:"status"`
	Mine      bool      `json:"mine"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminIdentityDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ====================
// Converters
// ====================

func ToChatMessageDTO(m model.ChatMessageModel, viewerID, adminID string) ChatMessageDTO {
	return ChatMessageDTO{
		ID:        m.ChatMessageID,
		SenderID:  m.ChatMessageSenderID,
		Message:   m.ChatMessageBody,
		Type:      m.ChatMessageType,
		ImageURL:  m.ChatMessageImageURL,
		Status:    m.ChatMessageStatus,
		Mine:      service.IsMine(m.ChatMessageSenderID, viewerID, adminID),
		CreatedAt: m.ChatMessageCreatedAt,
	}
}

func ToChatMessageDTOs(ms []model.ChatMessageModel, viewerID, adminID string) []ChatMessageDTO {
	out := make([]ChatMessageDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToChatMessageDTO(m, viewerID, adminID))
	}
	return out
}

// ToEntry maps a persisted row onto the reconciliation shape.
func ToEntry(m model.ChatMessageModel) service.Entry {
	return service.Entry{
		ID:        m.ChatMessageID,
		SenderID:  m.ChatMessageSenderID,
		Body:      m.ChatMessageBody,
		Type:      m.ChatMessageType,
		Status:    m.ChatMessageStatus,
		SentAt:    m.ChatMessageCreatedAt,
		Confirmed: true,
	}
}
