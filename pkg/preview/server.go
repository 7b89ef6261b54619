// Package preview serves the generated document to a browser through a
// loopback HTTP server. The document is rendered inside a sandboxed frame and
// a websocket tells open pages when to reload it.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/gencomp/gencomp-cli/internal/logging"
	"github.com/gencomp/gencomp-cli/pkg/export"
	"github.com/gencomp/gencomp-cli/pkg/models"
)

const (
	pingInterval  = 30 * time.Second
	readDeadline  = 60 * time.Second
	writeDeadline = 10 * time.Second
	sendBuffer    = 16
)

// EpochMessage is pushed to every connected page when the document changes
type EpochMessage struct {
	Epoch uint64 `json:"epoch"`
}

// Server hosts one document under a random token
type Server struct {
	token    string
	filename string
	log      *zap.Logger

	mu    sync.RWMutex
	doc   string
	epoch uint64

	clients   map[*client]bool
	clientsMu sync.RWMutex

	upgrader websocket.Upgrader
	httpSrv  *http.Server
	listener net.Listener
	baseURL  string
}

type client struct {
	conn   *websocket.Conn
	send   chan []byte
	server *Server
}

// Option configures a Server
type Option func(*Server)

// WithFilename sets the name offered by the download route
func WithFilename(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.filename = export.NormalizeFilename(name)
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.log = l }
}

// New creates a server. Call Start to listen or use Handler directly.
func New(opts ...Option) *Server {
	s := &Server{
		token:    uuid.NewString(),
		filename: models.DefaultFilename,
		log:      logging.Named("preview"),
		clients:  make(map[*client]bool),
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: sameOrigin}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// sameOrigin accepts requests without an Origin header and those from the
// server's own host
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

// Token returns the route prefix
func (s *Server) Token() string {
	return s.token
}

// Handler returns the routes, all scoped to the token
func (s *Server) Handler() http.Handler {
	prefix := "/" + s.token
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+prefix+"/{$}", s.handlePage(false))
	mux.HandleFunc("GET "+prefix+"/fullscreen", s.handlePage(true))
	mux.HandleFunc("GET "+prefix+"/doc", s.handleDoc)
	mux.HandleFunc("GET "+prefix+"/download", s.handleDownload)
	mux.HandleFunc("GET "+prefix+"/ws", s.handleWebSocket)
	return mux
}

// Start listens on addr (for example 127.0.0.1:0) and serves in the background
func (s *Server) Start(addr string) error {
	if addr == "" {
		addr = "127.0.0.1:0"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to start preview server: %w", err)
	}

	s.listener = ln
	s.baseURL = "http://" + ln.Addr().String()
	s.httpSrv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("preview server stopped", zap.Error(err))
		}
	}()

	s.log.Info("preview server listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// URL is the address of the host page; empty until Start succeeds
func (s *Server) URL() string {
	if s.baseURL == "" {
		return ""
	}
	return s.baseURL + "/" + s.token + "/"
}

// FullscreenURL is the address of the chrome-less host page
func (s *Server) FullscreenURL() string {
	if s.baseURL == "" {
		return ""
	}
	return s.baseURL + "/" + s.token + "/fullscreen"
}

// Publish replaces the served document and tells every open page to reload
// when the epoch moved or the document changed
func (s *Server) Publish(doc string, epoch uint64) {
	s.mu.Lock()
	changed := doc != s.doc || epoch != s.epoch
	s.doc = doc
	s.epoch = epoch
	s.mu.Unlock()

	if !changed {
		return
	}
	s.broadcast(EpochMessage{Epoch: epoch})
}

// Current returns the served document and epoch
func (s *Server) Current() (string, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc, s.epoch
}

// Clients returns the number of connected pages
func (s *Server) Clients() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// Close disconnects all pages and stops the listener
func (s *Server) Close() error {
	s.clientsMu.Lock()
	for c := range s.clients {
		close(c.send)
		delete(s.clients, c)
	}
	s.clientsMu.Unlock()

	if s.httpSrv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handlePage(fullscreen bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, epoch := s.Current()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := renderPage(w, pageData{Epoch: epoch, Fullscreen: fullscreen, Filename: s.filename}); err != nil {
			s.log.Warn("failed to render host page", zap.Error(err))
		}
	}
}

func (s *Server) handleDoc(w http.ResponseWriter, r *http.Request) {
	doc, _ := s.Current()
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Security-Policy", "sandbox allow-scripts")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = w.Write([]byte(doc))
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	doc, _ := s.Current()
	if doc == "" {
		http.Error(w, "No code to download", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.filename))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(doc))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		server: s,
	}

	// bring a late page up to date
	_, epoch := s.Current()
	if data, err := json.Marshal(EpochMessage{Epoch: epoch}); err == nil {
		c.send <- data
	}

	s.clientsMu.Lock()
	s.clients[c] = true
	s.clientsMu.Unlock()

	go c.writePump()
	go c.readPump()
}

func (s *Server) broadcast(msg EpochMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			// slow page, it will catch up on the next push
		}
	}
}

func (s *Server) removeClient(c *client) {
	s.clientsMu.Lock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
	s.clientsMu.Unlock()
}

// readPump only drains control frames; pages never send data
func (c *client) readPump() {
	defer func() {
		c.server.removeClient(c)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(readDeadline))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.server.log.Debug("websocket read error", zap.Error(err))
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
