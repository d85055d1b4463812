package websocket

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait = 10 * time.Second

	// A client that stays silent longer than this, pongs included, is dropped
	pongWait = 60 * time.Second

	// Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// The feed only flows to the browser; inbound frames are control frames
	maxInboundSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  512,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one browser tab subscribed to a topic of the feed.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	// Encoded messages waiting to be written, one frame each
	send chan []byte

	userID    string
	sessionID string
	topic     string

	logger zerolog.Logger
}

func (c *Client) log() zerolog.Logger {
	return c.logger.With().Str("userID", c.userID).Str("sessionID", c.sessionID).Str("topic", c.topic).Logger()
}

// readPump keeps the read deadline alive on pongs and unregisters the
// client when the browser goes away. Data frames are discarded.
func (c *Client) readPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxInboundSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			lg := c.log()
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				lg.Warn().Err(err).Msg("Feed connection closed unexpectedly")
			} else {
				lg.Debug().Msg("Feed connection closed")
			}
			return
		}
	}
}

// writePump writes each queued message as its own text frame so every
// frame is a complete JSON document, and pings on pingPeriod.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub dropped the client
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "feed closed"))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				lg := c.log()
				lg.Debug().Err(err).Msg("Feed write failed")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
