package chat

import (
	chatRepo "turfhub/database/repository/chat"
	gameRepo "turfhub/database/repository/game"
	"turfhub/models"
)

// ChatService persists group chat messages and serves history. Delivery to
// live sockets is the Hub's job; this layer owns identity and storage.
type ChatService interface {
	// SaveMessage assigns the message its server-side ID and timestamp and
	// persists it. Only members of the game behind the group may post.
	SaveMessage(groupID, senderID, text string) (*models.ChatMessage, error)
	History(groupID string, limit int) ([]models.ChatMessage, error)
	// CanAccessGroup reports whether the user is on the roster of the game
	// that owns the group.
	CanAccessGroup(groupID, userID string) (bool, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Repo     chatRepo.ChatRepository
	GameRepo gameRepo.GameRepository
}
