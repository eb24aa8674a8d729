package ws

import (
	"context"
	"net/http"
	"time"

	"littlelemon/events"
	"littlelemon/logger"
	"littlelemon/roles"
	"littlelemon/services"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// OrderHub กระจาย order event ให้ client ที่มีสิทธิ์เห็น order นั้น (กติกาเดียวกับ GET /orders)
type OrderHub struct {
	clients    map[*client]struct{}
	broadcast  chan events.Event
	register   chan *client
	unregister chan *client
	done       chan struct{}
	log        *logger.Logger
}

type client struct {
	conn  *websocket.Conn
	actor *roles.Actor
	send  chan events.Event
}

func NewOrderHub(log *logger.Logger) *OrderHub {
	return &OrderHub{
		clients:    make(map[*client]struct{}),
		broadcast:  make(chan events.Event, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run คอยฟัง register/unregister/broadcast จนกว่า ctx จะถูกยกเลิก
func (h *OrderHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}

		case e := <-h.broadcast:
			for c := range h.clients {
				if !services.CanView(c.actor, e.UserID, e.DeliveryCrewID) {
					continue
				}
				select {
				case c.send <- e:
				default:
					// client ช้าเกินไป ตัดทิ้ง
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Publish ทำให้ hub เป็น events.Publisher
func (h *OrderHub) Publish(ctx context.Context, e events.Event) error {
	select {
	case h.broadcast <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
		return nil
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	actor := utils.CurrentActor(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": gin.H{"code": "UNAUTHENTICATED", "message": "authentication required"}})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error("ws_upgrade", utils.RequestID(c), "websocket upgrade failed", err)
		return
	}

	cl := &client{conn: conn, actor: actor, send: make(chan events.Event, sendBuffer)}
	select {
	case h.register <- cl:
	case <-h.done:
		conn.Close()
		return
	}

	go h.writePump(cl)
	go h.readPump(cl)
}

// readPump อ่านทิ้ง (client ไม่ต้องส่งอะไร) แค่รอ pong / close
func (h *OrderHub) readPump(cl *client) {
	defer func() {
		select {
		case h.unregister <- cl:
		case <-h.done:
		}
		cl.conn.Close()
	}()
	cl.conn.SetReadLimit(512)
	cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *OrderHub) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()
	for {
		select {
		case e, ok := <-cl.send:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteJSON(e); err != nil {
				h.log.Warn("ws_write", "", "websocket write failed: "+err.Error())
				return
			}
		case <-ticker.C:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
