package api

import (
	"errors"
	"net/http"
	"time"

	"scoutquest/internal/events"
	"scoutquest/internal/middleware"
	"scoutquest/internal/service"
	"scoutquest/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	readLimit  = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type eventRoutes struct {
	hub    *events.Hub
	scouts middleware.ScoutGetter
}

// NewEventRoutes streams application events over a websocket. Browsers cannot
// set headers on the handshake, so the session token may also be passed as
// the access_token query parameter. The admin scope of a stream comes from the
// stored scout, not the session.
func NewEventRoutes(handler *gin.RouterGroup, hub *events.Hub, scouts middleware.ScoutGetter, sessionMW gin.HandlerFunc) {
	r := &eventRoutes{hub: hub, scouts: scouts}
	handler.GET("/ws", sessionMW, r.handleWebSocket)
}

func (r *eventRoutes) handleWebSocket(c *gin.Context) {
	log := logger.Logger()

	session, ok := currentSession(c)
	if !ok {
		return
	}

	scout, err := r.scouts.GetScout(c.Request.Context(), session.ScoutID)
	if err != nil {
		if errors.Is(err, service.ErrScoutNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "scout not found"})
			return
		}
		respondError(c, err, "failed to load scout")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	sub := r.hub.Subscribe(scout.ID, scout.IsAdmin)

	go r.readLoop(conn, sub)
	go r.writeLoop(conn, sub)
}

// readLoop only watches for the client going away.
func (r *eventRoutes) readLoop(conn *websocket.Conn, sub *events.Subscriber) {
	log := logger.Logger()
	defer r.hub.Unsubscribe(sub)

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Info("websocket unexpected close", zap.Error(err))
			}
			return
		}
	}
}

func (r *eventRoutes) writeLoop(conn *websocket.Conn, sub *events.Subscriber) {
	log := logger.Logger()
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case event, ok := <-sub.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			out, err := json.Marshal(event)
			if err != nil {
				log.Error("failed to marshal event", zap.Error(err))
				continue
			}

			if err = conn.WriteMessage(websocket.TextMessage, out); err != nil {
				log.Info("failed to write event", zap.Error(err))
				r.hub.Unsubscribe(sub)
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				r.hub.Unsubscribe(sub)
				return
			}
		}
	}
}
