// Package inspect streams the grid layout and per-frame transforms to
// websocket clients for debugging.
package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"cubegrid/core"
)

const (
	writeTimeout = 2 * time.Second
	queueSize    = 64
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local debugging tool
	},
}

// Hub fans frame snapshots out to connected websocket clients. ObserveFrame
// is called from the render loop and never blocks it.
type Hub struct {
	logger *slog.Logger
	grid   GridData

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*sync.Mutex

	frames  chan FrameData
	dropped uint64
}

func NewHub(grid *core.Grid, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger:  logger,
		grid:    createGridData(grid),
		clients: make(map[*websocket.Conn]*sync.Mutex),
		frames:  make(chan FrameData, queueSize),
	}
}

// ObserveFrame queues a frame for broadcast, dropping it when the queue is
// full.
func (h *Hub) ObserveFrame(frame uint64, ft core.FrameTransforms, next core.TransformState) {
	select {
	case h.frames <- createFrameData(frame, ft, next):
	default:
		h.dropped++
		if h.dropped%1000 == 1 {
			h.logger.Debug("inspector queue full, dropping frames", "dropped", h.dropped)
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// Run broadcasts queued frames until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case frame := <-h.frames:
			h.broadcast(frame)
		}
	}
}

// Handler serves /grid and /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/grid", h.serveGrid)
	mux.HandleFunc("/ws", h.handleWebSocket)
	return mux
}

func (h *Hub) serveGrid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.grid); err != nil {
		h.logger.Warn("grid encode failed", "error", err)
	}
}

func (h *Hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	connMutex := &sync.Mutex{}
	h.clientsMu.Lock()
	h.clients[conn] = connMutex
	h.clientsMu.Unlock()
	defer h.remove(conn)

	// Send the grid layout first
	connMutex.Lock()
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	err = conn.WriteJSON(h.grid)
	connMutex.Unlock()
	if err != nil {
		h.logger.Debug("websocket write failed", "error", err)
		return
	}
	h.logger.Info("inspector client connected", "remote", r.RemoteAddr)

	// Clients send nothing; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.logger.Info("inspector client disconnected", "remote", r.RemoteAddr)
			return
		}
	}
}

func (h *Hub) broadcast(frame FrameData) {
	h.clientsMu.RLock()
	var failed []*websocket.Conn
	for client, mutex := range h.clients {
		mutex.Lock()
		client.SetWriteDeadline(time.Now().Add(writeTimeout))
		err := client.WriteJSON(frame)
		mutex.Unlock()
		if err != nil {
			h.logger.Debug("websocket write failed", "error", err)
			failed = append(failed, client)
		}
	}
	h.clientsMu.RUnlock()

	for _, client := range failed {
		client.Close()
		h.remove(client)
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.clientsMu.Lock()
	delete(h.clients, conn)
	h.clientsMu.Unlock()
}

func (h *Hub) closeAll() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for client, mutex := range h.clients {
		mutex.Lock()
		client.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeTimeout))
		mutex.Unlock()
		client.Close()
		delete(h.clients, client)
	}
}

// ListenAndServe runs the hub and its HTTP server until ctx is done.
func ListenAndServe(ctx context.Context, addr string, h *Hub) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go h.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	h.logger.Info("inspector listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
