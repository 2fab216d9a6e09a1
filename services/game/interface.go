package game

import (
	"sync"

	gameRepo "turfhub/database/repository/game"
	turfRepo "turfhub/database/repository/turf"
	"turfhub/models"
)

// GameService manages hosted group games: hosting, joining up to the player
// cap, leaving, and browsing. Each game doubles as a chat group keyed by the
// game ID.
type GameService interface {
	HostGame(hostID string, input models.GameInput) (*models.Game, error)
	// JoinGame adds the user to the roster; the game flips to full when the
	// cap is reached. Joining a full or cancelled game fails.
	JoinGame(userID, gameID string) (*models.Game, error)
	// LeaveGame removes the user; a full game reopens. The host leaving
	// cancels the game.
	LeaveGame(userID, gameID string) (*models.Game, error)
	GetGame(gameID string) (*models.Game, error)
	ListGames(params models.ListParams, turfID string) (*models.Page[models.Game], error)
}

// DefaultGameService is the production implementation.
type DefaultGameService struct {
	Repo     gameRepo.GameRepository
	TurfRepo turfRepo.TurfRepository

	gameLocks sync.Map
}

// lockGame serializes roster changes for one game.
func (s *DefaultGameService) lockGame(gameID string) *sync.Mutex {
	mu, _ := s.gameLocks.LoadOrStore(gameID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
