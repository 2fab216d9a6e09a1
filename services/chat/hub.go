package chat

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"turfhub/models"
	"turfhub/utils"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	// seenWindow bounds the duplicate-suppression set per hub.
	seenWindow = 1024
)

// Hub fans chat events out to the live sockets of each group. Messages carry
// a server-assigned ID; the hub drops any message whose ID it already
// delivered, so retried sends never reach receivers twice.
type Hub struct {
	Service ChatService

	mu      sync.RWMutex
	groups  map[string]map[*Client]bool
	seen    map[string]bool
	seenLog []string
}

// NewHub creates a hub backed by the given chat service.
func NewHub(service ChatService) *Hub {
	return &Hub{
		Service: service,
		groups:  make(map[string]map[*Client]bool),
		seen:    make(map[string]bool),
	}
}

// Client is one connected socket, bound to an authenticated user.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID string
	send   chan models.ChatEvent

	mu     sync.Mutex
	groups map[string]bool
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers hit this from the app origin; CORS already gates the HTTP
	// surface, so the upgrade accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the request and runs the client's pumps. userID must come
// from the auth middleware, not from the socket.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		hub:    h,
		conn:   conn,
		userID: userID,
		send:   make(chan models.ChatEvent, 32),
		groups: make(map[string]bool),
	}
	go client.writePump()
	go client.readPump()
	return nil
}

func (h *Hub) join(groupID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.groups[groupID] == nil {
		h.groups[groupID] = make(map[*Client]bool)
	}
	h.groups[groupID][c] = true
}

func (h *Hub) leave(groupID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if members := h.groups[groupID]; members != nil {
		delete(members, c)
		if len(members) == 0 {
			delete(h.groups, groupID)
		}
	}
}

// markSeen records a message ID and reports whether it was new. The set is
// bounded; the oldest entries fall out first.
func (h *Hub) markSeen(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.seen[id] {
		return false
	}
	h.seen[id] = true
	h.seenLog = append(h.seenLog, id)
	if len(h.seenLog) > seenWindow {
		delete(h.seen, h.seenLog[0])
		h.seenLog = h.seenLog[1:]
	}
	return true
}

// Broadcast delivers a stored message to every live member of its group.
// Duplicate IDs are dropped. The hub lock stays held across the sends; a
// client's send channel is only closed under the write lock (detach), so a
// broadcast can never race a teardown onto a closed channel. Sends are
// non-blocking, so holding the lock here never stalls on a slow socket.
func (h *Hub) Broadcast(msg *models.ChatMessage) {
	if !h.markSeen(msg.ID) {
		return
	}

	event := models.ChatEvent{Event: "newMessage", GroupID: msg.GroupID, Message: msg}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.groups[msg.GroupID] {
		select {
		case c.send <- event:
		default:
			// Slow consumer; drop the frame rather than stall the group.
			utils.GetLogger().Warn("chat: dropping frame for slow client",
				zap.String("userID", c.userID), zap.String("groupID", msg.GroupID))
		}
	}
}

// detach removes the client from every group and closes its send channel.
// The close happens inside the write-lock critical section, after which no
// broadcaster can reach the channel.
func (h *Hub) detach(c *Client) {
	c.mu.Lock()
	groups := make([]string, 0, len(c.groups))
	for id := range c.groups {
		groups = append(groups, id)
	}
	c.groups = make(map[string]bool)
	c.mu.Unlock()

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, id := range groups {
		if members := h.groups[id]; members != nil {
			delete(members, c)
			if len(members) == 0 {
				delete(h.groups, id)
			}
		}
	}
	close(c.send)
}

func (c *Client) readPump() {
	defer func() {
		c.hub.detach(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.GetLogger().Warn("chat: socket closed unexpectedly", zap.Error(err))
			}
			return
		}

		var event models.ChatEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			c.sendError("malformed event")
			continue
		}
		c.handleEvent(event)
	}
}

func (c *Client) handleEvent(event models.ChatEvent) {
	switch event.Event {
	case "joinGroup":
		ok, err := c.hub.Service.CanAccessGroup(event.GroupID, c.userID)
		if err != nil || !ok {
			c.sendError("cannot join this group")
			return
		}
		c.mu.Lock()
		c.groups[event.GroupID] = true
		c.mu.Unlock()
		c.hub.join(event.GroupID, c)

	case "leaveGroup":
		c.mu.Lock()
		delete(c.groups, event.GroupID)
		c.mu.Unlock()
		c.hub.leave(event.GroupID, c)

	case "sendMessage":
		msg, err := c.hub.Service.SaveMessage(event.GroupID, c.userID, event.Text)
		if err != nil {
			c.sendError(err.Error())
			return
		}
		c.hub.Broadcast(msg)

	default:
		c.sendError("unknown event " + event.Event)
	}
}

func (c *Client) sendError(text string) {
	select {
	case c.send <- models.ChatEvent{Event: "error", Text: text}:
	default:
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
