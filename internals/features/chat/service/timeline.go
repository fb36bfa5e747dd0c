package service

import (
	"sort"
	"time"

	"tamilmandram_backend/internals/features/chat/model"
)

// Entry is one chat message detached from persistence, used for timeline
// reconciliation between server history and a client's optimistic copies.
type Entry struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	SentAt    time.Time `json:"sent_at"`
	Confirmed bool      `json:"confirmed"`
}

// MergeTimeline reconciles server-confirmed history with optimistic client
// entries. The union is keyed by id; when both sides carry an id, the
// confirmed copy wins. Entries without a confirmed counterpart survive as
// pending. The result is strictly timestamp ascending, id as the tie-break
// so the order is stable.
func MergeTimeline(confirmed, optimistic []Entry) []Entry {
	seen := make(map[string]struct{}, len(confirmed))
	out := make([]Entry, 0, len(confirmed)+len(optimistic))

	for _, e := range confirmed {
		e.Confirmed = true
		out = append(out, e)
		if e.ID != "" {
			seen[e.ID] = struct{}{}
		}
	}
	for _, e := range optimistic {
		if e.ID != "" {
			if _, dup := seen[e.ID]; dup {
				continue
			}
		}
		e.Confirmed = false
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SentAt.Equal(out[j].SentAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].SentAt.Before(out[j].SentAt)
	})
	return out
}

// Chronological reverses a newest-first page in place so callers get
// timestamp-ascending output. History queries paginate from the recent end
// (ORDER BY created DESC LIMIT n) and flip the window back here.
func Chronological(messages []model.ChatMessageModel) []model.ChatMessageModel {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages
}

// DeliveredCondition is the filter progressing one direction of a
// conversation from sent to delivered. Scoping by sender keeps an admin
// opening one conversation from acknowledging every member's messages.
func DeliveredCondition(senderID, recipientID string) (string, []any) {
	return "chat_message_sender_id = ? AND chat_message_recipient_id = ? AND chat_message_status = ?",
		[]any{senderID, recipientID, model.StatusSent}
}

// IsMine classifies a message for a given viewer. The admin identity wins
// ties: a message sent under the admin id is never "mine" for a member,
// even if the ids collide.
func IsMine(senderID, viewerID, adminID string) bool {
	return senderID == viewerID && senderID != adminID
}
