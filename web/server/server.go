package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
	"github.com/df07/go-pinhole-raytracer/pkg/scene"
)

// DefaultTileSize is the tile size used for streamed renders
const DefaultTileSize = 32

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene name (e.g., "default")
	Width   int    `json:"width"`   // Image width
	Height  int    `json:"height"`  // Image height
	Workers int    `json:"workers"` // Number of workers (0 = auto-detect)
}

// Stats represents render statistics
type Stats struct {
	TotalPixels     int     `json:"totalPixels"`
	TotalTiles      int     `json:"totalTiles"`
	Workers         int     `json:"workers"`
	PixelsPerSecond float64 `json:"pixelsPerSecond"`
}

// Handler returns the HTTP handler with all routes registered
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/inspect", s.handleInspect)

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the available scenes with their default image sizes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	type sceneInfo struct {
		Name    string `json:"name"`
		Objects int    `json:"objects"`
		Width   int    `json:"width"`
		Height  int    `json:"height"`
	}

	scenes := make([]sceneInfo, 0)
	for _, name := range scene.Names() {
		setup, err := scene.Create(name)
		if err != nil {
			continue
		}
		scenes = append(scenes, sceneInfo{
			Name:    name,
			Objects: setup.Scene.Len(),
			Width:   setup.CameraConfig.Width,
			Height:  setup.CameraConfig.Height,
		})
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"scenes": scenes})
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if sceneName := r.URL.Query().Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "default"
	}

	// Zero width/height keep the scene's own size
	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 0, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 0, 16, 2000); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(r.URL.Query(), "workers", 0, 1, 256); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createSetup creates the requested scene with the request's size overrides
func (s *Server) createSetup(req *RenderRequest) (*scene.Setup, error) {
	setup, err := scene.Create(req.Scene, renderer.CameraConfig{
		Width:  req.Width,
		Height: req.Height,
	})
	if err != nil {
		return nil, err
	}
	if err := setup.Validate(); err != nil {
		return nil, err
	}
	return setup, nil
}
