package chat

import (
	"testing"

	"github.com/mmynk/pointwallet/internal/models"
)

func TestIsUnread(t *testing.T) {
	const (
		t1 int64 = 1_700_000_000_000
		t2       = t1 + 1000
		t3       = t2 + 1000
	)

	tests := []struct {
		name     string
		chat     models.Chat
		expected bool
	}{
		{
			name:     "no messages yet",
			chat:     models.Chat{ReadStatus: map[string]int64{}},
			expected: false,
		},
		{
			name:     "no messages and never read",
			chat:     models.Chat{LastSenderID: "other"},
			expected: false,
		},
		{
			name:     "I sent the last message",
			chat:     models.Chat{LastMessageAt: t2, LastSenderID: "me", ReadStatus: map[string]int64{"me": t1}},
			expected: false,
		},
		{
			name:     "never read",
			chat:     models.Chat{LastMessageAt: t2, LastSenderID: "other", ReadStatus: map[string]int64{"other": t2}},
			expected: true,
		},
		{
			name:     "never read with nil receipts",
			chat:     models.Chat{LastMessageAt: t2, LastSenderID: "other"},
			expected: true,
		},
		{
			name:     "equal timestamps count as read",
			chat:     models.Chat{LastMessageAt: t2, LastSenderID: "other", ReadStatus: map[string]int64{"me": t2}},
			expected: false,
		},
		{
			name:     "newer message after read",
			chat:     models.Chat{LastMessageAt: t3, LastSenderID: "other", ReadStatus: map[string]int64{"me": t1}},
			expected: true,
		},
		{
			name:     "read after the last message",
			chat:     models.Chat{LastMessageAt: t2, LastSenderID: "other", ReadStatus: map[string]int64{"me": t3}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUnread(&tt.chat, "me"); got != tt.expected {
				t.Errorf("IsUnread() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
