package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/zopdev/chartdoc/internal/viewer"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveConn serializes writes to one websocket connection. Messages come
// from the read loop and from navigator timers.
type liveConn struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

func (c *liveConn) send(msg viewer.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}

func (c *liveConn) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.conn.Close()
}

func (c *liveConn) sendError(text string) {
	c.send(viewer.Message{Type: viewer.MsgError, Text: text})
}

// handleLive runs a viewer session for the README named by the id query
// parameter. The README is loaded as soon as the connection opens; after
// that every client event is applied to the session.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	lc := &liveConn{conn: conn}
	s.track(lc)
	defer func() {
		s.untrack(lc)
		lc.close()
	}()

	sess := s.factory.NewSession(lc.send)
	sess.Load(r.Context(), r.URL.Query().Get("id"))

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var ev viewer.Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			lc.sendError("invalid message format")
			continue
		}
		if err := sess.Dispatch(ev); err != nil {
			lc.sendError(err.Error())
		}
	}
}
