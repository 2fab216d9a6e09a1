package game

import (
	"fmt"
	"time"

	"turfhub/models"

	"github.com/google/uuid"
)

func (s *DefaultGameService) HostGame(hostID string, input models.GameInput) (*models.Game, error) {
	turf, err := s.TurfRepo.GetByID(input.TurfID)
	if err != nil {
		return nil, err
	}
	if turf == nil {
		return nil, fmt.Errorf("turf not found")
	}
	if turf.Status != models.TurfStatusApproved {
		return nil, fmt.Errorf("games can only be hosted on approved turfs")
	}

	start, err := models.MinutesOfDay(input.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := models.MinutesOfDay(input.EndTime)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, fmt.Errorf("end time must be after start time")
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", input.Date)
	}

	g := &models.Game{
		ID:         uuid.New().String(),
		TurfID:     input.TurfID,
		HostID:     hostID,
		Sport:      input.Sport,
		Date:       input.Date,
		Start:      start,
		End:        end,
		MaxPlayers: input.MaxPlayers,
		PlayerIDs:  []string{hostID},
		Status:     models.GameStatusOpen,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *DefaultGameService) JoinGame(userID, gameID string) (*models.Game, error) {
	mu := s.lockGame(gameID)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.Repo.GetByID(gameID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("game not found")
	}
	if g.Status == models.GameStatusCancelled {
		return nil, fmt.Errorf("this game was cancelled")
	}
	if g.Status == models.GameStatusFull {
		return nil, fmt.Errorf("this game is already full")
	}
	for _, id := range g.PlayerIDs {
		if id == userID {
			return nil, fmt.Errorf("you already joined this game")
		}
	}

	g.PlayerIDs = append(g.PlayerIDs, userID)
	if len(g.PlayerIDs) >= g.MaxPlayers {
		g.Status = models.GameStatusFull
	}
	if err := s.Repo.Update(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *DefaultGameService) LeaveGame(userID, gameID string) (*models.Game, error) {
	mu := s.lockGame(gameID)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.Repo.GetByID(gameID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("game not found")
	}

	idx := -1
	for i, id := range g.PlayerIDs {
		if id == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("you are not part of this game")
	}

	if userID == g.HostID {
		g.Status = models.GameStatusCancelled
	} else {
		g.PlayerIDs = append(g.PlayerIDs[:idx], g.PlayerIDs[idx+1:]...)
		if g.Status == models.GameStatusFull {
			g.Status = models.GameStatusOpen
		}
	}
	if err := s.Repo.Update(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *DefaultGameService) GetGame(gameID string) (*models.Game, error) {
	g, err := s.Repo.GetByID(gameID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("game not found")
	}
	return g, nil
}

func (s *DefaultGameService) ListGames(params models.ListParams, turfID string) (*models.Page[models.Game], error) {
	return s.Repo.List(params, turfID)
}
