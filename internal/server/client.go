package server

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// client pumps commands from one websocket into the Server and replies back.
// done is closed when writePump exits; nothing drains send after that.
type client struct {
	srv  *Server
	conn *websocket.Conn
	send chan ServerResponse
	done chan struct{}
}

func newClient(srv *Server, conn *websocket.Conn) *client {
	return &client{
		srv:  srv,
		conn: conn,
		send: make(chan ServerResponse, 64),
		done: make(chan struct{}),
	}
}

// deliver queues resp for writePump. It reports false once writePump is gone.
func (c *client) deliver(resp ServerResponse) bool {
	select {
	case c.send <- resp:
		return true
	case <-c.done:
		return false
	}
}

// readPump reads commands until the peer goes away, then closes send.
func (c *client) readPump() {
	defer close(c.send)

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.srv.log.WithError(err).Warn("set read deadline")
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd ClientCommand
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.srv.log.WithError(err).Warn("websocket read")
			}
			return
		}
		c.srv.log.WithField("action", cmd.Action).Debugf("pointer at %d,%d", cmd.X, cmd.Y)
		if !c.deliver(c.srv.Handle(cmd)) {
			return
		}
	}
}

// writePump forwards replies and keeps the connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		if err := c.conn.Close(); err != nil {
			c.srv.log.WithError(err).Debug("close websocket")
		}
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.srv.log.WithError(err).Warn("websocket write")
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
