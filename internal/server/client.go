package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"zonecraft/internal/engine"
	"zonecraft/pkg/api"
	"zonecraft/pkg/logger"
	"zonecraft/pkg/utils"
)

// WebSocket settings
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client sits between a websocket connection and the ZoneService.
type Client struct {
	Zones     *engine.ZoneService
	Conn      *websocket.Conn
	Send      chan api.ServerResponse
	SessionID string
}

func NewClient(zones *engine.ZoneService, conn *websocket.Conn) *Client {
	return &Client{
		Zones:     zones,
		Conn:      conn,
		Send:      make(chan api.ServerResponse, 16),
		SessionID: utils.GenerateID(),
	}
}

// readPump subscribes the viewer, sends the current zone and forwards
// commands to the zone service.
func (c *Client) readPump() {
	log := logger.Log.WithField("session", c.SessionID)

	updates := c.Zones.Hub.Register(c.SessionID)
	defer func() {
		c.Zones.Hub.Unregister(c.SessionID)
		if err := c.Conn.Close(); err != nil {
			log.WithError(err).Debug("failed to close websocket connection")
		}
		log.Info("Viewer disconnected")
	}()

	// Hub -> writePump. Ends when the hub closes the channel.
	go func() {
		for msg := range updates {
			c.Send <- msg
		}
		close(c.Send)
	}()

	if snap := c.Zones.Snapshot(); snap != nil {
		c.Zones.Hub.SendTo(c.SessionID, api.ServerResponse{Type: api.TypeZone, Zone: snap})
	}
	log.Info("Viewer connected")

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.WithError(err).Error("WS error")
			}
			return
		}
		if err := c.Zones.ProcessCommand(cmd); err != nil {
			log.WithError(err).WithField("action", cmd.Action).Debug("Command rejected")
			c.Zones.Hub.SendTo(c.SessionID, api.ServerResponse{Type: api.TypeError, Error: err.Error()})
		}
	}
}

// writePump sends queued messages and pings to the client.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
