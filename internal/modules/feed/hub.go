package feed

import (
	"encoding/json"
	"sync"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/dates"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

const (
	EventReservationCreated   = "reservation_created"
	EventReservationCancelled = "reservation_cancelled"
)

// Event is one real-time entry on the admin activity feed.
type Event struct {
	Type    string      `json:"type"`
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload,omitempty"`
}

type reservationPayload struct {
	ReservationID int64   `json:"reservation_id"`
	Code          string  `json:"code"`
	HotelID       int64   `json:"hotel_id"`
	RoomID        int64   `json:"room_id"`
	UserID        int64   `json:"user_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status"`
}

type connection struct {
	userID int64
	conn   *websocket.Conn
	send   chan []byte
}

// Hub fans reservation lifecycle events out to every connected admin.
// Writes never block the booking flow: a slow client just misses events.
type Hub struct {
	mu          sync.RWMutex
	connections map[int64]*connection
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*connection),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.connections[c.userID]; ok {
		close(old.send)
		_ = old.conn.Close()
	}
	h.connections[c.userID] = c
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.connections[c.userID]; ok && existing == c {
		delete(h.connections, c.userID)
		close(c.send)
	}
}

func (h *Hub) ConnectedCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Broadcast sends the event to every connected admin.
func (h *Hub) Broadcast(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.connections {
		select {
		case c.send <- data:
		default:
			// Client too slow — skip
		}
	}
}

func (h *Hub) ReservationCreated(res *domain.Reservation) {
	h.Broadcast(&Event{
		Type:    EventReservationCreated,
		At:      time.Now().UTC(),
		Payload: toPayload(res),
	})
}

func (h *Hub) ReservationCancelled(res *domain.Reservation) {
	h.Broadcast(&Event{
		Type:    EventReservationCancelled,
		At:      time.Now().UTC(),
		Payload: toPayload(res),
	})
}

func toPayload(res *domain.Reservation) reservationPayload {
	return reservationPayload{
		ReservationID: res.ID,
		Code:          res.Code,
		HotelID:       res.HotelID,
		RoomID:        res.RoomID,
		UserID:        res.UserID,
		CheckIn:       dates.Key(res.CheckIn),
		CheckOut:      dates.Key(res.CheckOut),
		TotalPrice:    res.TotalPrice,
		Status:        string(res.Status),
	}
}

// ServeWS registers the connection and starts the pumps; it blocks until the
// client disconnects.
func (h *Hub) ServeWS(conn *websocket.Conn, userID int64) {
	c := &connection{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 256),
	}

	h.register(c)

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// The feed is one-directional; inbound frames only keep the connection
	// alive.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
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

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, c := range h.connections {
		close(c.send)
		_ = c.conn.Close()
		delete(h.connections, userID)
	}
}
