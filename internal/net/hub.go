package net

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"PolyBoard/internal/exchange"
	"PolyBoard/internal/state"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 16
)

// Snapshot is the message a host broadcasts after every geometry change.
type Snapshot struct {
	Type     string          `json:"type"`
	Session  string          `json:"session"`
	Revision uint64          `json:"revision"`
	Points   json.RawMessage `json:"points"`
}

const snapshotType = "snapshot"

// NewSnapshot encodes vs in the exchange format.
func NewSnapshot(session string, rev uint64, vs []state.Vertex) (Snapshot, error) {
	pts, err := exchange.Export(vs)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Type: snapshotType, Session: session, Revision: rev, Points: pts}, nil
}

// Peer is one connected viewer.
type Peer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub is used by the HOST to fan snapshots out to every viewer. Broadcast
// never blocks; a viewer that cannot keep up is dropped.
type Hub struct {
	upgrader websocket.Upgrader
	peers    map[*Peer]bool
	last     []byte
	mu       sync.RWMutex
	logger   *log.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		peers:  make(map[*Peer]bool),
		logger: logger,
	}
}

// Count returns the number of connected viewers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Publish broadcasts a snapshot of vs.
func (h *Hub) Publish(session string, rev uint64, vs []state.Vertex) error {
	snap, err := NewSnapshot(session, rev, vs)
	if err != nil {
		return err
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	h.Broadcast(data)
	return nil
}

// Broadcast queues data for every viewer and remembers it for late joiners.
func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = data
	for p := range h.peers {
		select {
		case p.send <- data:
		default:
			h.logger.Printf("[SHARE] Dropping slow viewer %s", p.conn.RemoteAddr())
			h.removeLocked(p)
		}
	}
}

// ServeHTTP upgrades a viewer connection and streams snapshots to it.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("[SHARE] Upgrade failed: %v", err)
		return
	}
	p := &Peer{conn: conn, send: make(chan []byte, sendBuffer)}
	h.add(p)
	go h.writePump(p)
	h.readPump(p)
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for p := range h.peers {
		h.removeLocked(p)
	}
}

func (h *Hub) add(p *Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.peers[p] = true
	if h.last != nil {
		p.send <- h.last
	}
	h.logger.Printf("[SHARE] Viewer connected from %s", p.conn.RemoteAddr())
}

func (h *Hub) remove(p *Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(p)
}

func (h *Hub) removeLocked(p *Peer) {
	if !h.peers[p] {
		return
	}
	delete(h.peers, p)
	close(p.send)
	h.logger.Printf("[SHARE] Viewer %s removed", p.conn.RemoteAddr())
}

// readPump only watches for the viewer going away; viewers never edit.
func (h *Hub) readPump(p *Peer) {
	defer func() {
		h.remove(p)
		p.conn.Close()
	}()
	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(p *Peer) {
	defer p.conn.Close()
	for data := range p.send {
		p.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Printf("[SHARE] Error sending to %s: %v", p.conn.RemoteAddr(), err)
			return
		}
	}
	p.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
}
