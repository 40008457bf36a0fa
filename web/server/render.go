package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
)

// TileUpdate represents a single tile update sent via SSE
type TileUpdate struct {
	TileX      int    `json:"tileX"`
	TileY      int    `json:"tileY"`
	X          int    `json:"x"` // Pixel position of the tile's top-left corner
	Y          int    `json:"y"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // Completed tiles so far (1-based)
	TotalTiles int    `json:"totalTiles"` // Total number of tiles in the image
}

// CompleteUpdate is sent once the whole image is rendered
type CompleteUpdate struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ImageData string `json:"imageData"` // Base64 encoded PNG of the full image
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "tile", "complete", "error"
	Data string `json:"data"` // JSON-encoded data
}

// handleRender renders a scene and streams finished tiles via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Single writer goroutine owns the response
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(w, ctx, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	setup, err := s.createSetup(req)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", err.Error())
		return
	}

	webLogger := NewWebLogger(fmt.Sprintf("render-%d", time.Now().UnixNano()), consoleForwarder(ctx, sseEventChan))

	camera := setup.Camera()
	pr := renderer.NewParallelRaytracer(setup.Scene, camera, renderer.ParallelConfig{
		TileSize:   DefaultTileSize,
		NumWorkers: req.Workers,
	}, webLogger)

	startTime := time.Now()
	img, stats, err := pr.Render(ctx, func(tile renderer.TileCompletionResult) {
		imageData, err := imageToBase64PNG(tile.TileImage)
		if err != nil {
			log.Printf("Error encoding tile: %v", err)
			return
		}
		s.sendJSON(ctx, sseEventChan, "tile", TileUpdate{
			TileX:      tile.TileX,
			TileY:      tile.TileY,
			X:          tile.Bounds.Min.X,
			Y:          tile.Bounds.Min.Y,
			ImageData:  imageData,
			TileNumber: tile.TileNumber,
			TotalTiles: tile.TotalTiles,
		})
	})
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Render error: %v", err))
		return
	}

	imageData, err := imageToBase64PNG(img)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	s.sendJSON(ctx, sseEventChan, "complete", CompleteUpdate{
		Width:     camera.Width(),
		Height:    camera.Height(),
		ImageData: imageData,
		Stats: Stats{
			TotalPixels:     stats.TotalPixels,
			TotalTiles:      stats.TotalTiles,
			Workers:         stats.Workers,
			PixelsPerSecond: stats.PixelsPerSecond(),
		},
		ElapsedMs: time.Since(startTime).Milliseconds(),
	})
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents handles writing all SSE events in a single goroutine
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan <-chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}

			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// sendEvent queues an event unless the client has gone away
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan<- SSEEvent, eventType, data string) {
	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: data}:
	case <-ctx.Done():
	}
}

// sendJSON queues an event with a JSON-encoded payload
func (s *Server) sendJSON(ctx context.Context, sseEventChan chan<- SSEEvent, eventType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshaling %s event: %v", eventType, err)
		return
	}
	s.sendEvent(ctx, sseEventChan, eventType, string(data))
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
