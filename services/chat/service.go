package chat

import (
	"fmt"
	"strings"
	"time"

	"turfhub/models"

	"github.com/google/uuid"
)

const defaultHistoryLimit = 50

func (s *DefaultChatService) SaveMessage(groupID, senderID, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("message text is empty")
	}

	ok, err := s.CanAccessGroup(groupID, senderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("you are not part of this group")
	}

	msg := &models.ChatMessage{
		ID:        uuid.New().String(),
		GroupID:   groupID,
		SenderID:  senderID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Insert(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *DefaultChatService) History(groupID string, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultHistoryLimit
	}
	return s.Repo.History(groupID, limit)
}

func (s *DefaultChatService) CanAccessGroup(groupID, userID string) (bool, error) {
	// Chat groups share their ID with the game that owns them.
	game, err := s.GameRepo.GetByID(groupID)
	if err != nil {
		return false, err
	}
	if game == nil {
		return false, fmt.Errorf("group not found")
	}
	for _, id := range game.PlayerIDs {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}
