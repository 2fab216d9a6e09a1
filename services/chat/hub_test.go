package chat

import (
	"fmt"
	"testing"
	"time"

	"turfhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChatRepo struct{ mock.Mock }

func (m *mockChatRepo) Insert(msg *models.ChatMessage) error { return m.Called(msg).Error(0) }
func (m *mockChatRepo) History(groupID string, limit int) ([]models.ChatMessage, error) {
	args := m.Called(groupID, limit)
	if v := args.Get(0); v != nil {
		return v.([]models.ChatMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

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

func groupGame(players ...string) *models.Game {
	return &models.Game{ID: "game-1", HostID: players[0], PlayerIDs: players, Status: models.GameStatusOpen}
}

func TestSaveMessageAssignsIDAndPersists(t *testing.T) {
	repo := new(mockChatRepo)
	games := new(mockGameRepo)
	svc := &DefaultChatService{Repo: repo, GameRepo: games}

	games.On("GetByID", "game-1").Return(groupGame("u1", "u2"), nil)
	repo.On("Insert", mock.AnythingOfType("*models.ChatMessage")).Return(nil)

	msg, err := svc.SaveMessage("game-1", "u2", "  see you at nine  ")
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "game-1", msg.GroupID)
	assert.Equal(t, "u2", msg.SenderID)
	assert.Equal(t, "see you at nine", msg.Text)
	assert.WithinDuration(t, time.Now(), msg.CreatedAt, time.Second)
}

func TestSaveMessageRejectsNonMember(t *testing.T) {
	repo := new(mockChatRepo)
	games := new(mockGameRepo)
	svc := &DefaultChatService{Repo: repo, GameRepo: games}

	games.On("GetByID", "game-1").Return(groupGame("u1", "u2"), nil)

	_, err := svc.SaveMessage("game-1", "stranger", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not part of this group")
	repo.AssertNotCalled(t, "Insert", mock.Anything)
}

func TestSaveMessageRejectsEmptyText(t *testing.T) {
	svc := &DefaultChatService{}
	_, err := svc.SaveMessage("game-1", "u1", "   ")
	require.Error(t, err)
}

func TestHistoryClampsLimit(t *testing.T) {
	repo := new(mockChatRepo)
	svc := &DefaultChatService{Repo: repo}

	repo.On("History", "game-1", defaultHistoryLimit).Return([]models.ChatMessage{}, nil)

	_, err := svc.History("game-1", -3)
	require.NoError(t, err)
	repo.AssertCalled(t, "History", "game-1", defaultHistoryLimit)
}

func drainSend(c *Client) []models.ChatEvent {
	var out []models.ChatEvent
	for {
		select {
		case ev := <-c.send:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func hubClient(h *Hub, userID string) *Client {
	return &Client{
		hub:    h,
		userID: userID,
		send:   make(chan models.ChatEvent, 32),
		groups: make(map[string]bool),
	}
}

func TestBroadcastReachesGroupMembersOnly(t *testing.T) {
	hub := NewHub(&DefaultChatService{})
	inGroup := hubClient(hub, "u1")
	outside := hubClient(hub, "u9")
	hub.join("game-1", inGroup)
	hub.join("game-2", outside)

	msg := &models.ChatMessage{ID: "m1", GroupID: "game-1", SenderID: "u2", Text: "hi"}
	hub.Broadcast(msg)

	got := drainSend(inGroup)
	require.Len(t, got, 1)
	assert.Equal(t, "newMessage", got[0].Event)
	assert.Equal(t, "m1", got[0].Message.ID)
	assert.Empty(t, drainSend(outside))
}

func TestBroadcastDropsDuplicateIDs(t *testing.T) {
	hub := NewHub(&DefaultChatService{})
	c := hubClient(hub, "u1")
	hub.join("game-1", c)

	msg := &models.ChatMessage{ID: "m1", GroupID: "game-1", Text: "hi"}
	hub.Broadcast(msg)
	hub.Broadcast(msg)
	hub.Broadcast(&models.ChatMessage{ID: "m2", GroupID: "game-1", Text: "again"})

	got := drainSend(c)
	require.Len(t, got, 2)
	assert.Equal(t, "m1", got[0].Message.ID)
	assert.Equal(t, "m2", got[1].Message.ID)
}

func TestSeenWindowIsBounded(t *testing.T) {
	hub := NewHub(&DefaultChatService{})
	for i := 0; i < seenWindow+10; i++ {
		hub.markSeen(string(rune('a'+i%26)) + "-" + time.Now().String() + string(rune(i)))
	}
	assert.LessOrEqual(t, len(hub.seen), seenWindow)
	assert.LessOrEqual(t, len(hub.seenLog), seenWindow)
}

func TestDetachClosesSendChannelAndLeavesGroups(t *testing.T) {
	hub := NewHub(&DefaultChatService{})
	c := hubClient(hub, "u1")
	c.groups["game-1"] = true
	hub.join("game-1", c)

	hub.detach(c)

	_, open := <-c.send
	assert.False(t, open)
	hub.Broadcast(&models.ChatMessage{ID: "m1", GroupID: "game-1", Text: "hi"})
}

func TestBroadcastDuringDisconnectDoesNotPanic(t *testing.T) {
	hub := NewHub(&DefaultChatService{})
	steady := hubClient(hub, "u1")
	hub.join("game-1", steady)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			hub.Broadcast(&models.ChatMessage{ID: fmt.Sprintf("m-%d", i), GroupID: "game-1", Text: "hi"})
		}
	}()

	for i := 0; i < 500; i++ {
		churn := hubClient(hub, "u2")
		churn.groups["game-1"] = true
		hub.join("game-1", churn)
		hub.detach(churn)
	}
	<-done

	assert.NotEmpty(t, drainSend(steady))
}

func TestLeaveRemovesClientFromGroup(t *testing.T) {
	hub := NewHub(&DefaultChatService{})
	c := hubClient(hub, "u1")
	hub.join("game-1", c)
	hub.leave("game-1", c)

	hub.Broadcast(&models.ChatMessage{ID: "m1", GroupID: "game-1", Text: "hi"})
	assert.Empty(t, drainSend(c))
}
