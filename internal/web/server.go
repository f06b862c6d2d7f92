// Package web serves a development preview around the engine: JSON and SVG
// scenes over REST plus a websocket stream that plays the track back at its
// native frame rate. The server holds the track read-only; every frame is
// composed on demand through the pure engine.
package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/melodyclass/scenesynth/internal/analysis"
	"github.com/melodyclass/scenesynth/internal/color"
	"github.com/melodyclass/scenesynth/internal/engine"
	"github.com/melodyclass/scenesynth/internal/scene"
	"github.com/melodyclass/scenesynth/internal/styles"
)

type Server struct {
	track    *analysis.Track
	engine   *engine.Engine
	defaults engine.Params
	log      *log.Logger
	upgrader websocket.Upgrader
}

// NewServer wires a preview server around track. defaults seed the style,
// scheme, and canvas size for requests that do not override them.
func NewServer(track *analysis.Track, eng *engine.Engine, defaults engine.Params, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(log.Writer(), "[web] ", log.LstdFlags)
	}
	return &Server{
		track:    track,
		engine:   eng,
		defaults: defaults,
		log:      logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the route table; exposed for tests and for embedding in a
// larger mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/metadata", s.handleMetadata)
	mux.HandleFunc("/api/styles", s.handleStyles)
	mux.HandleFunc("/api/schemes", s.handleSchemes)
	mux.HandleFunc("/api/scene", s.handleScene)
	mux.HandleFunc("/api/scene.svg", s.handleSceneSVG)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Start blocks serving on addr.
func (s *Server) Start(addr string) error {
	s.log.Printf("preview server on http://%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

type metadataResponse struct {
	TotalFrames int     `json:"totalFrames"`
	FPS         int     `json:"fps"`
	Duration    float64 `json:"duration"`
}

func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, metadataResponse{
		TotalFrames: s.track.TotalFrames,
		FPS:         s.track.FPS,
		Duration:    s.track.Duration,
	})
}

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"styles": styles.Names(), "default": styles.DefaultStyle})
}

func (s *Server) handleSchemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"schemes": color.SchemeNames(), "default": color.DefaultSchemeName})
}

// params reads per-request overrides on top of the server defaults.
func (s *Server) params(r *http.Request) engine.Params {
	p := s.defaults
	q := r.URL.Query()
	if v := q.Get("style"); v != "" {
		p.Style = v
	}
	if v := q.Get("scheme"); v != "" {
		p.ColorScheme = v
	}
	if v, err := strconv.Atoi(q.Get("frame")); err == nil {
		p.FrameIndex = v
	}
	if v, err := strconv.Atoi(q.Get("width")); err == nil && v > 0 {
		p.Width = v
	}
	if v, err := strconv.Atoi(q.Get("height")); err == nil && v > 0 {
		p.Height = v
	}
	if v := q.Get("resolution"); v != "" {
		p.Width, p.Height = engine.Resolution(v)
	}
	return p
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.engine.Compose(s.track, s.params(r)))
}

func (s *Server) handleSceneSVG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := scene.WriteSVG(w, s.engine.Compose(s.track, s.params(r))); err != nil {
		s.log.Printf("svg write: %v", err)
	}
}

type wsFrame struct {
	Frame int         `json:"frame"`
	Scene scene.Scene `json:"scene"`
}

// handleWebSocket streams composed scenes at the track's frame rate,
// looping until the client goes away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Printf("ws upgrade: %v", err)
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	p := s.params(r)
	s.log.Printf("ws session %s: style=%s scheme=%s", session, p.Style, p.ColorScheme)

	// Drain reads so close frames are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	fps := s.track.FPS
	if fps <= 0 {
		fps = analysis.DefaultFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	total := s.track.TotalFrames
	if total <= 0 {
		total = 1
	}
	for frame := 0; ; frame = (frame + 1) % total {
		select {
		case <-done:
			s.log.Printf("ws session %s closed", session)
			return
		case <-ticker.C:
		}
		p.FrameIndex = frame
		payload, err := json.Marshal(wsFrame{Frame: frame, Scene: s.engine.Compose(s.track, p)})
		if err != nil {
			s.log.Printf("ws session %s encode: %v", session, err)
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			s.log.Printf("ws session %s write: %v", session, err)
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("encode: %v", err), http.StatusInternalServerError)
	}
}
