// Package server streams hover labels for a loaded board over websockets.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dicemap/board"
	"github.com/katalvlaran/dicemap/decay"
	"github.com/katalvlaran/dicemap/internal/logger"
	"github.com/katalvlaran/dicemap/viewport"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server owns a read-only board and answers pointer events against it.
type Server struct {
	board   *board.Board
	engine  *decay.Engine
	vp      viewport.Viewport
	onClick func(board.Coord)
	log     logrus.FieldLogger
}

// Option configures a Server.
type Option func(*Server)

// WithOnClick registers the callback run when a cell is clicked.
func WithOnClick(fn func(board.Coord)) Option {
	return func(s *Server) { s.onClick = fn }
}

// WithLogger replaces the global logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Server for b.
func New(b *board.Board, eng *decay.Engine, vp viewport.Viewport, opts ...Option) *Server {
	s := &Server{
		board:   b,
		engine:  eng,
		vp:      vp,
		onClick: func(board.Coord) {},
		log:     logger.Log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP routes: /health, /board and /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/board", enableCORS(s.handleBoard))
	return mux
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.WithField("addr", addr).Info("hover service listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next(w, r)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	c := newClient(s, conn)
	go c.writePump()
	go c.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleBoard(w http.ResponseWriter, _ *http.Request) {
	view := BoardView{Height: s.board.Height(), Width: s.board.Width(), Canvas: s.vp}
	for _, c := range s.board.Coords() {
		cell, _ := s.board.Cell(c)
		mode := cell.Mode()
		view.Cells = append(view.Cells, CellView{
			Coord:   c,
			Dice:    cell.Dice(),
			Owner:   cell.Owner(),
			Mode:    mode.String(),
			Outline: viewport.Outline(mode),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		s.log.WithError(err).Warn("encode board")
	}
}

// Handle answers one command. Every hover computes a fresh label map.
func (s *Server) Handle(cmd ClientCommand) ServerResponse {
	c := s.vp.PixelToCoord(cmd.X, cmd.Y)
	onBoard := s.vp.Contains(cmd.X, cmd.Y) && s.board.Has(c)

	switch cmd.Action {
	case ActionHover:
		if !onBoard {
			return ServerResponse{Type: TypeLabels, Fallback: s.engine.Options().Fallback(nil)}
		}
		labels, err := s.engine.Propagate(s.board, c)
		if err != nil {
			return ServerResponse{Type: TypeError, Error: err.Error()}
		}
		return ServerResponse{
			Type:     TypeLabels,
			Source:   &c,
			Fallback: s.engine.Options().Fallback(labels),
			Labels:   labels.Entries(),
		}
	case ActionClick:
		if !onBoard {
			return ServerResponse{Type: TypeError, Error: "no cell under pointer"}
		}
		s.onClick(c)
		return ServerResponse{Type: TypeSelected, Source: &c}
	default:
		return ServerResponse{Type: TypeError, Error: "unknown action " + cmd.Action}
	}
}
