package service

import (
	"testing"
	"time"

	"tamilmandram_backend/internals/features/chat/model"
)

func entry(id, sender string, at time.Time, confirmed bool) Entry {
	return Entry{ID: id, SenderID: sender, Body: "b-" + id, Type: "text", SentAt: at, Confirmed: confirmed}
}

func TestMergeConfirmedWinsOverOptimistic(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	confirmed := []Entry{
		{ID: "m1", SenderID: "u1", Body: "server copy", Status: "delivered", SentAt: base},
	}
	optimistic := []Entry{
		{ID: "m1", SenderID: "u1", Body: "local copy", Status: "sending", SentAt: base.Add(time.Second)},
	}

	got := MergeTimeline(confirmed, optimistic)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry after dedup, got %d", len(got))
	}
	if got[0].Body != "server copy" || !got[0].Confirmed {
		t.Fatalf("confirmed copy should win: %+v", got[0])
	}
}

func TestMergeKeepsPendingWithoutCounterpart(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	confirmed := []Entry{
		entry("m1", "u1", base, true),
		entry("m3", "admin", base.Add(2*time.Minute), true),
	}
	optimistic := []Entry{
		entry("m2", "u1", base.Add(time.Minute), false),
	}

	got := MergeTimeline(confirmed, optimistic)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, want := range []string{"m1", "m2", "m3"} {
		if got[i].ID != want {
			t.Fatalf("position %d: want %s, got %s", i, want, got[i].ID)
		}
	}
	if got[1].Confirmed {
		t.Fatal("pending entry must stay unconfirmed")
	}
}

func TestMergeOrdersByTimestampAscending(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	confirmed := []Entry{
		entry("m2", "admin", base.Add(time.Hour), true),
		entry("m1", "u1", base, true),
	}
	got := MergeTimeline(confirmed, nil)
	if got[0].ID != "m1" || got[1].ID != "m2" {
		t.Fatalf("expected timestamp-ascending order, got %s, %s", got[0].ID, got[1].ID)
	}
}

func TestMergeTiesBreakByID(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	got := MergeTimeline([]Entry{entry("b", "u1", at, true), entry("a", "u1", at, true)}, nil)
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("equal timestamps should order by id, got %s, %s", got[0].ID, got[1].ID)
	}
}

func TestChronologicalKeepsNewestWindow(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	history := make([]model.ChatMessageModel, 0, 60)
	for i := 0; i < 60; i++ {
		history = append(history, model.ChatMessageModel{
			ChatMessageID:        "m" + string(rune('A'+i/26)) + string(rune('a'+i%26)),
			ChatMessageCreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	// Newest-first page of 50, the way the history query returns it.
	page := make([]model.ChatMessageModel, 0, 50)
	for i := 59; i >= 10; i-- {
		page = append(page, history[i])
	}

	got := Chronological(page)
	if len(got) != 50 {
		t.Fatalf("expected 50 messages, got %d", len(got))
	}
	if got[len(got)-1].ChatMessageID != history[59].ChatMessageID {
		t.Fatalf("latest message must survive the window, got %s at the end", got[len(got)-1].ChatMessageID)
	}
	if got[0].ChatMessageID != history[10].ChatMessageID {
		t.Fatalf("window should drop the oldest messages, got %s first", got[0].ChatMessageID)
	}
	for i := 1; i < len(got); i++ {
		if got[i].ChatMessageCreatedAt.Before(got[i-1].ChatMessageCreatedAt) {
			t.Fatalf("history must be timestamp ascending, position %d is not", i)
		}
	}
}

func TestIsMine(t *testing.T) {
	cases := []struct {
		name     string
		sender   string
		viewer   string
		admin    string
		expected bool
	}{
		{"own message", "u1", "u1", "a1", true},
		{"peer message", "a1", "u1", "a1", false},
		{"other member", "u2", "u1", "a1", false},
		{"admin id wins collision", "a1", "a1", "a1", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsMine(tc.sender, tc.viewer, tc.admin); got != tc.expected {
				t.Fatalf("IsMine(%s, %s, %s) = %v, want %v", tc.sender, tc.viewer, tc.admin, got, tc.expected)
			}
		})
	}
}

func TestDeliveredConditionScopesBySender(t *testing.T) {
	cond, args := DeliveredCondition("admin-1", "member-1")

	if cond != "chat_message_sender_id = ? AND chat_message_recipient_id = ? AND chat_message_status = ?" {
		t.Fatalf("unexpected condition: %s", cond)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	if args[0] != "admin-1" || args[1] != "member-1" || args[2] != model.StatusSent {
		t.Fatalf("unexpected args: %v", args)
	}
}
