package server

import (
	"encoding/json"
	"testing"
	"time"
)

func TestWebLogger_BasicLogging(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-123", messageChan)

	logger.Printf("Pass %d: %d samples\n", 2, 3)

	select {
	case msg := <-messageChan:
		if msg.Message != "Pass 2: 3 samples\n" {
			t.Errorf("Unexpected message %q", msg.Message)
		}
		if msg.RenderID != "test-render-123" {
			t.Errorf("Expected render ID, got %q", msg.RenderID)
		}
		if msg.Level != "info" {
			t.Errorf("Expected level 'info', got '%s'", msg.Level)
		}
		if time.Since(msg.Timestamp) > time.Second {
			t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for console message")
	}
}

func TestWebLogger_ChannelFull(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("test-render-789", messageChan)

	// Only the first message fits; the rest must not block
	logger.Printf("Message 1\n")
	logger.Printf("Message 2\n")
	logger.Printf("Message 3\n")

	if msg := <-messageChan; msg.Message != "Message 1\n" {
		t.Errorf("Expected first message to be kept, got %q", msg.Message)
	}
	select {
	case msg := <-messageChan:
		t.Errorf("Expected dropped messages, got %q", msg.Message)
	default:
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	logger := NewWebLogger("test-render-nil", nil)
	logger.Printf("Test message with nil channel\n")
}

func TestMessageLevel(t *testing.T) {
	testCases := []struct {
		message  string
		expected string
	}{
		{"Rendering pass 1\n", "info"},
		{"Warning: large image\n", "warning"},
		{"Error: upload failed\n", "error"},
		{"  failed to encode\n", "error"},
		{"", "info"},
	}

	for _, tc := range testCases {
		t.Run(tc.message, func(t *testing.T) {
			if got := messageLevel(tc.message); got != tc.expected {
				t.Errorf("messageLevel(%q) = %q, want %q", tc.message, got, tc.expected)
			}
		})
	}
}

func TestConsoleMessage_JSON(t *testing.T) {
	msg := ConsoleMessage{RenderID: "r1", Message: "hello", Timestamp: time.Unix(0, 0).UTC(), Level: "info"}
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for _, key := range []string{"renderId", "message", "timestamp", "level"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("Missing JSON field %q", key)
		}
	}
}
