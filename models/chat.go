package models

import "time"

// ChatMessage is a group chat message. The ID is server-assigned; receivers
// use it to drop duplicate deliveries.
type ChatMessage struct {
	ID        string    `bson:"id" json:"id"`
	GroupID   string    `bson:"group_id" json:"groupId"`
	SenderID  string    `bson:"sender_id" json:"senderId"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// ChatEvent is the wire frame exchanged over the socket. Client-to-server
// events are "joinGroup", "leaveGroup" and "sendMessage"; the server emits
// "newMessage" with the Message field populated.
type ChatEvent struct {
	Event    string       `json:"event"`
	GroupID  string       `json:"groupId,omitempty"`
	SenderID string       `json:"senderId,omitempty"`
	Text     string       `json:"text,omitempty"`
	Message  *ChatMessage `json:"message,omitempty"`
}
