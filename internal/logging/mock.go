package logging

import (
	"fmt"
	"sync"
)

// MockLogger records log entries for assertions in tests. Loggers derived with
// WithField/WithFields/WithError share the same entry sink as their parent.
type MockLogger struct {
	sink    *entrySink
	fields  []Field
	pending error
}

// LogEntry is a single captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

type entrySink struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewMockLogger returns an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{sink: &entrySink{}}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	if m.sink == nil {
		m.sink = &entrySink{}
	}
	all := make([]Field, 0, len(m.fields)+len(fields))
	all = append(all, m.fields...)
	all = append(all, fields...)

	m.sink.mu.Lock()
	defer m.sink.mu.Unlock()
	m.sink.entries = append(m.sink.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  all,
		Error:   m.pending,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// Fatal records the entry; the mock never exits.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("FATAL", msg, fields) }

func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	m.record("FATAL", fmt.Sprintf(msg, args...), nil)
}

func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{sink: m.ensureSink(), fields: m.fields, pending: err}
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

func (m *MockLogger) WithFields(fields ...Field) Logger {
	all := make([]Field, 0, len(m.fields)+len(fields))
	all = append(all, m.fields...)
	all = append(all, fields...)
	return &MockLogger{sink: m.ensureSink(), fields: all, pending: m.pending}
}

func (m *MockLogger) ensureSink() *entrySink {
	if m.sink == nil {
		m.sink = &entrySink{}
	}
	return m.sink
}

// GetEntries returns a copy of every captured entry.
func (m *MockLogger) GetEntries() []LogEntry {
	sink := m.ensureSink()
	sink.mu.Lock()
	defer sink.mu.Unlock()
	out := make([]LogEntry, len(sink.entries))
	copy(out, sink.entries)
	return out
}

// GetEntriesByLevel returns the captured entries with the given level.
func (m *MockLogger) GetEntriesByLevel(level string) []LogEntry {
	var entries []LogEntry
	for _, entry := range m.GetEntries() {
		if entry.Level == level {
			entries = append(entries, entry)
		}
	}
	return entries
}

// HasEntry reports whether an entry with this level and message was logged.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range m.GetEntries() {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}

// Clear drops all captured entries.
func (m *MockLogger) Clear() {
	sink := m.ensureSink()
	sink.mu.Lock()
	sink.entries = nil
	sink.mu.Unlock()
}
