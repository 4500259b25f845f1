package chat

import "github.com/mmynk/pointwallet/internal/models"

// IsUnread reports whether userID has not yet seen the latest message of c.
// A chat without messages is never unread and neither is one whose last
// message userID sent. A member who never opened the chat has it unread;
// otherwise the last message must be strictly newer than the read receipt.
func IsUnread(c *models.Chat, userID string) bool {
	if c.LastMessageAt == 0 {
		return false
	}
	if c.LastSenderID == userID {
		return false
	}
	readAt, ok := c.ReadStatus[userID]
	if !ok {
		return true
	}
	return c.LastMessageAt > readAt
}
