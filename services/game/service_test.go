package game

import (
	"testing"

	"turfhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGameRepo struct{ mock.Mock }

func (m *mockGameRepo) Create(g *models.Game) error { return m.Called(g).Error(0) }
func (m *mockGameRepo) GetByID(id string) (*models.Game, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Game), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGameRepo) Update(g *models.Game) error { return m.Called(g).Error(0) }
func (m *mockGameRepo) List(params models.ListParams, turfID string) (*models.Page[models.Game], error) {
	args := m.Called(params, turfID)
	if v := args.Get(0); v != nil {
		return v.(*models.Page[models.Game]), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockTurfRepo struct{ mock.Mock }

func (m *mockTurfRepo) Create(t *models.Turf) error { return m.Called(t).Error(0) }
func (m *mockTurfRepo) GetByID(id string) (*models.Turf, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Turf), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockTurfRepo) Update(t *models.Turf) error { return m.Called(t).Error(0) }
func (m *mockTurfRepo) Delete(id string) error      { return m.Called(id).Error(0) }
func (m *mockTurfRepo) SetStatus(id, status, reason string) error {
	return m.Called(id, status, reason).Error(0)
}
func (m *mockTurfRepo) List(params models.ListParams, ownerID string) (*models.Page[models.Turf], error) {
	args := m.Called(params, ownerID)
	if v := args.Get(0); v != nil {
		return v.(*models.Page[models.Turf]), args.Error(1)
	}
	return nil, args.Error(1)
}

func openGame(players ...string) *models.Game {
	return &models.Game{
		ID:         "game-1",
		TurfID:     "turf-1",
		HostID:     "host-1",
		Sport:      "football",
		Date:       "2026-09-12",
		Start:      540,
		End:        600,
		MaxPlayers: 4,
		PlayerIDs:  players,
		Status:     models.GameStatusOpen,
	}
}

func TestHostGameCreatesWithHostOnRoster(t *testing.T) {
	repo := new(mockGameRepo)
	turfs := new(mockTurfRepo)
	svc := &DefaultGameService{Repo: repo, TurfRepo: turfs}

	turfs.On("GetByID", "turf-1").Return(&models.Turf{
		ID: "turf-1", Status: models.TurfStatusApproved,
	}, nil)
	repo.On("Create", mock.AnythingOfType("*models.Game")).Return(nil)

	g, err := svc.HostGame("host-1", models.GameInput{
		TurfID:     "turf-1",
		Sport:      "football",
		Date:       "2026-09-12",
		StartTime:  "09:00",
		EndTime:    "10:00",
		MaxPlayers: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"host-1"}, g.PlayerIDs)
	assert.Equal(t, models.GameStatusOpen, g.Status)
	assert.Equal(t, 540, g.Start)
	assert.Equal(t, 600, g.End)
}

func TestHostGameRejectsReversedTimes(t *testing.T) {
	repo := new(mockGameRepo)
	turfs := new(mockTurfRepo)
	svc := &DefaultGameService{Repo: repo, TurfRepo: turfs}

	turfs.On("GetByID", "turf-1").Return(&models.Turf{
		ID: "turf-1", Status: models.TurfStatusApproved,
	}, nil)

	_, err := svc.HostGame("host-1", models.GameInput{
		TurfID:     "turf-1",
		Sport:      "football",
		Date:       "2026-09-12",
		StartTime:  "10:00",
		EndTime:    "09:00",
		MaxPlayers: 4,
	})
	require.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestJoinGameFlipsToFullAtCap(t *testing.T) {
	repo := new(mockGameRepo)
	svc := &DefaultGameService{Repo: repo}

	g := openGame("host-1", "p2", "p3")
	repo.On("GetByID", "game-1").Return(g, nil)
	repo.On("Update", mock.AnythingOfType("*models.Game")).Return(nil)

	joined, err := svc.JoinGame("p4", "game-1")
	require.NoError(t, err)
	assert.Len(t, joined.PlayerIDs, 4)
	assert.Equal(t, models.GameStatusFull, joined.Status)
}

func TestJoinGameRejectsFullGame(t *testing.T) {
	repo := new(mockGameRepo)
	svc := &DefaultGameService{Repo: repo}

	g := openGame("host-1", "p2", "p3", "p4")
	g.Status = models.GameStatusFull
	repo.On("GetByID", "game-1").Return(g, nil)

	_, err := svc.JoinGame("p5", "game-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "full")
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestJoinGameRejectsDoubleJoin(t *testing.T) {
	repo := new(mockGameRepo)
	svc := &DefaultGameService{Repo: repo}

	repo.On("GetByID", "game-1").Return(openGame("host-1", "p2"), nil)

	_, err := svc.JoinGame("p2", "game-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already joined")
}

func TestLeaveGameReopensFullGame(t *testing.T) {
	repo := new(mockGameRepo)
	svc := &DefaultGameService{Repo: repo}

	g := openGame("host-1", "p2", "p3", "p4")
	g.Status = models.GameStatusFull
	repo.On("GetByID", "game-1").Return(g, nil)
	repo.On("Update", mock.AnythingOfType("*models.Game")).Return(nil)

	left, err := svc.LeaveGame("p4", "game-1")
	require.NoError(t, err)
	assert.Len(t, left.PlayerIDs, 3)
	assert.Equal(t, models.GameStatusOpen, left.Status)
}

func TestLeaveGameByHostCancels(t *testing.T) {
	repo := new(mockGameRepo)
	svc := &DefaultGameService{Repo: repo}

	repo.On("GetByID", "game-1").Return(openGame("host-1", "p2"), nil)
	repo.On("Update", mock.AnythingOfType("*models.Game")).Return(nil)

	left, err := svc.LeaveGame("host-1", "game-1")
	require.NoError(t, err)
	assert.Equal(t, models.GameStatusCancelled, left.Status)
}

func TestLeaveGameRejectsNonMember(t *testing.T) {
	repo := new(mockGameRepo)
	svc := &DefaultGameService{Repo: repo}

	repo.On("GetByID", "game-1").Return(openGame("host-1", "p2"), nil)

	_, err := svc.LeaveGame("stranger", "game-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not part of this game")
}
