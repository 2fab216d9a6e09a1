package chatRepo

import "turfhub/models"

// ChatRepository defines persistence for group chat messages.
type ChatRepository interface {
	Insert(message *models.ChatMessage) error
	// History returns up to limit messages for a group, oldest first.
	History(groupID string, limit int) ([]models.ChatMessage, error)
}
