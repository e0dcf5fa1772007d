package logging

import (
	"fmt"
	"sync"
)

// MockLogger records log calls for inspection in tests.
type MockLogger struct {
	mu      sync.Mutex
	level   LogLevel
	entries []string
}

// NewMockLogger creates a MockLogger that records every call at or above
// the given level.
func NewMockLogger(level LogLevel) *MockLogger {
	return &MockLogger{level: level}
}

func (m *MockLogger) Debug(msg string, args ...any) { m.record(LogLevelDebug, msg, args...) }
func (m *MockLogger) Info(msg string, args ...any)  { m.record(LogLevelInfo, msg, args...) }
func (m *MockLogger) Warn(msg string, args ...any)  { m.record(LogLevelWarn, msg, args...) }
func (m *MockLogger) Error(msg string, args ...any) { m.record(LogLevelError, msg, args...) }

func (m *MockLogger) SetLevel(level LogLevel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.level = level
}

// Entries returns a copy of the recorded log lines.
func (m *MockLogger) Entries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *MockLogger) record(level LogLevel, msg string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if level < m.level {
		return
	}
	entry := fmt.Sprintf("%s: %s", level, msg)
	for i := 0; i+1 < len(args); i += 2 {
		entry += fmt.Sprintf(" %v=%v", args[i], args[i+1])
	}
	m.entries = append(m.entries, entry)
}
