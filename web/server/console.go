package server

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/df07/go-preview-raytracer/pkg/core"
)

// consoleLimit is the number of messages kept for /api/console
const consoleLimit = 200

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// Console keeps the most recent log messages in memory
type Console struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	limit    int
}

// NewConsole creates a console that keeps up to limit messages
func NewConsole(limit int) *Console {
	return &Console{limit: max(limit, 1)}
}

// Add appends a message, dropping the oldest when full
func (c *Console) Add(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, msg)
	if over := len(c.messages) - c.limit; over > 0 {
		c.messages = append(c.messages[:0], c.messages[over:]...)
	}
}

// Messages returns a copy of the kept messages, oldest first
func (c *Console) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]ConsoleMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// WebLogger implements core.Logger by recording messages in a console
type WebLogger struct {
	console *Console
	quiet   bool
}

// NewWebLogger creates a logger that records to console and echoes to stdout unless quiet
func NewWebLogger(console *Console, quiet bool) core.Logger {
	return &WebLogger{console: console, quiet: quiet}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	if !wl.quiet {
		fmt.Print(message)
	}

	if wl.console != nil {
		wl.console.Add(ConsoleMessage{
			Message:   strings.TrimRight(message, "\n"),
			Timestamp: time.Now(),
			Level:     "info",
		})
	}
}
