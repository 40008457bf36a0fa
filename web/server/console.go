package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by handing messages to a console sink
type WebLogger struct {
	renderID string
	sink     func(ConsoleMessage)
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, sink func(ConsoleMessage)) core.Logger {
	return &WebLogger{
		renderID: renderID,
		sink:     sink,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Print(message)

	if wl.sink != nil {
		wl.sink(ConsoleMessage{
			RenderID:  wl.renderID,
			Message:   message,
			Timestamp: time.Now(),
			Level:     "info",
		})
	}
}

// consoleForwarder returns a sink that turns console messages into SSE
// events. Messages are dropped rather than blocking when the queue is full.
func consoleForwarder(ctx context.Context, sseEventChan chan<- SSEEvent) func(ConsoleMessage) {
	return func(msg ConsoleMessage) {
		data, err := json.Marshal(msg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			return
		}

		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		default:
			// Channel full, skip message to avoid blocking
		}
	}
}
