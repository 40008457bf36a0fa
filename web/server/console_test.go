package server

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestWebLogger_BasicLogging(t *testing.T) {
	var received []ConsoleMessage
	logger := NewWebLogger("test-render-123", func(msg ConsoleMessage) {
		received = append(received, msg)
	})

	testMessage := "Test log message"
	logger.Printf("%s\n", testMessage)

	if len(received) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(received))
	}
	msg := received[0]
	expectedMessage := testMessage + "\n"
	if msg.Message != expectedMessage {
		t.Errorf("Expected message '%s', got '%s'", expectedMessage, msg.Message)
	}
	if msg.Level != "info" {
		t.Errorf("Expected level 'info', got '%s'", msg.Level)
	}
	if msg.RenderID != "test-render-123" {
		t.Errorf("Expected render ID 'test-render-123', got '%s'", msg.RenderID)
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
	}
}

func TestWebLogger_NilSink(t *testing.T) {
	logger := NewWebLogger("test-render-nil", nil)
	logger.Printf("no sink %d\n", 1) // must not panic
}

func TestConsoleForwarder_MultipleMessages(t *testing.T) {
	eventChan := make(chan SSEEvent, 10)
	logger := NewWebLogger("test-render-456", consoleForwarder(context.Background(), eventChan))

	messages := []string{"Message 1", "Message 2", "Message 3"}
	for _, msg := range messages {
		logger.Printf("%s\n", msg)
	}

	for i, expected := range messages {
		select {
		case event := <-eventChan:
			if event.Type != "console" {
				t.Errorf("Event %d: expected type 'console', got '%s'", i, event.Type)
			}
			var msg ConsoleMessage
			if err := json.Unmarshal([]byte(event.Data), &msg); err != nil {
				t.Fatalf("Event %d: invalid JSON: %v", i, err)
			}
			if msg.Message != expected+"\n" {
				t.Errorf("Event %d: expected '%s', got '%s'", i, expected+"\n", msg.Message)
			}
		default:
			t.Fatalf("Expected %d events, got %d", len(messages), i)
		}
	}
}

func TestConsoleForwarder_DropsWhenFull(t *testing.T) {
	eventChan := make(chan SSEEvent, 1)
	logger := NewWebLogger("test-render-full", consoleForwarder(context.Background(), eventChan))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 5; i++ {
			logger.Printf("message %d\n", i)
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Logger blocked on a full channel")
	}
	if len(eventChan) != 1 {
		t.Errorf("Expected 1 queued event, got %d", len(eventChan))
	}
}
