package models

import "time"

// Game statuses.
const (
	GameStatusOpen      = "open"
	GameStatusFull      = "full"
	GameStatusCancelled = "cancelled"
)

// Game is a hosted group game other players can join. Every game owns a chat
// group with the same ID.
type Game struct {
	ID         string    `bson:"id" json:"id"`
	TurfID     string    `bson:"turf_id" json:"turfId"`
	HostID     string    `bson:"host_id" json:"hostId"`
	Sport      string    `bson:"sport" json:"sport"`
	Date       string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start      int       `bson:"start" json:"start"`
	End        int       `bson:"end" json:"end"`
	MaxPlayers int       `bson:"max_players" json:"maxPlayers"`
	PlayerIDs  []string  `bson:"player_ids" json:"playerIds"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// GameInput is the host-a-game payload.
type GameInput struct {
	TurfID     string `json:"turfId" binding:"required"`
	Sport      string `json:"sport" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"startTime" binding:"required"`
	EndTime    string `json:"endTime" binding:"required"`
	MaxPlayers int    `json:"maxPlayers" binding:"required,gt=1"`
}
