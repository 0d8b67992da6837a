package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Event = change notification หนึ่งครั้งของตารางหนึ่ง
type Event struct {
	Table  string `json:"table"`
	Event  string `json:"event"` // insert | update | delete
	SpotID uint   `json:"spotId,omitempty"`
	Row    any    `json:"row"`
}

// Subscription = 1 connection ต่อ 1 ตัวกรอง (table + optional spot)
type Subscription struct {
	ID     string
	Conn   *websocket.Conn
	Table  string // "" = ทุกตาราง
	SpotID uint   // 0 = ทุก spot
	UserID uint
}

// Hub คือศูนย์กลาง realtime change feed:
// ทุก mutation ที่ commit แล้ว service จะ Publish เข้ามา
// แล้ว hub กระจายให้ client ที่ subscribe ตาราง/สปอตนั้นอยู่
type Hub struct {
	clients    map[string]Subscription
	broadcast  chan Event
	register   chan Subscription
	unregister chan string
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]Subscription),
		broadcast:  make(chan Event, 256),
		register:   make(chan Subscription),
		unregister: make(chan string),
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			h.clients[sub.ID] = sub
			h.mu.Unlock()

		case id := <-h.unregister:
			h.mu.Lock()
			if sub, ok := h.clients[id]; ok {
				delete(h.clients, id)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for id, sub := range h.clients {
				if sub.Table != "" && sub.Table != ev.Table {
					continue
				}
				if sub.SpotID != 0 && ev.SpotID != 0 && sub.SpotID != ev.SpotID {
					continue
				}
				if err := sub.Conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					sub.Conn.Close()
					delete(h.clients, id)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish implements services.EventPublisher
// ห้าม block write หลัก: buffer เต็มก็ drop event (client refetch เองอยู่แล้ว)
func (h *Hub) Publish(table, event string, spotID uint, row any) {
	select {
	case h.broadcast <- Event{Table: table, Event: event, SpotID: spotID, Row: row}:
	default:
		log.Printf("ws broadcast buffer full, dropping %s/%s", table, event)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/feed?table=payments&spotId=3
func (h *Hub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	table := c.Query("table")
	var spotID uint
	if v := c.Query("spotId"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid spotId"})
			return
		}
		spotID = uint(n)
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{
		ID:     uuid.NewString(),
		Conn:   conn,
		Table:  table,
		SpotID: spotID,
		UserID: userID,
	}
	h.register <- sub

	go h.keepAlive(sub)
}

// อ่านทิ้งเพื่อ detect การปิด connection แล้วถอน subscription
func (h *Hub) keepAlive(sub Subscription) {
	defer func() { h.unregister <- sub.ID }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
