package logger

import (
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

// RingEntry is one captured log line.
type RingEntry struct {
	Id        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Module    string    `json:"module,omitempty"`
	Message   string    `json:"message"`
}

// Ring is a bounded, concurrency-safe buffer of the most recent log lines.
// Ids are monotonically increasing, so clients can poll with the last id
// they have seen and receive only newer entries.
type Ring struct {
	mu       sync.Mutex
	entries  []RingEntry
	capacity int
	nextId   int64
}

func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 100
	}
	return &Ring{
		entries:  make([]RingEntry, 0, capacity),
		capacity: capacity,
		nextId:   1,
	}
}

func (r *Ring) Append(level, module, message string) RingEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := RingEntry{
		Id:        r.nextId,
		Timestamp: time.Now(),
		Level:     level,
		Module:    module,
		Message:   message,
	}
	r.nextId++

	r.entries = append(r.entries, entry)
	if len(r.entries) > r.capacity {
		r.entries = r.entries[len(r.entries)-r.capacity:]
	}
	return entry
}

// Since returns all buffered entries with an id greater than lastId,
// oldest first.
func (r *Ring) Since(lastId int64) []RingEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]RingEntry, 0)
	for _, e := range r.entries {
		if e.Id > lastId {
			result = append(result, e)
		}
	}
	return result
}

func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// ringCore feeds the ring from zap as a tee'd core, so the buffer stays in
// sync with whatever the file and console cores see.
type ringCore struct {
	ring   *Ring
	level  zapcore.Level
	module string
}

func newRingCore(ring *Ring, level zapcore.Level) zapcore.Core {
	return &ringCore{ring: ring, level: level}
}

func (c *ringCore) Enabled(level zapcore.Level) bool {
	return level >= c.level
}

func (c *ringCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	for _, f := range fields {
		if f.Key == "module" && f.Type == zapcore.StringType {
			clone.module = f.String
		}
	}
	return &clone
}

func (c *ringCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *ringCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	module := c.module
	for _, f := range fields {
		if f.Key == "module" && f.Type == zapcore.StringType {
			module = f.String
		}
	}
	c.ring.Append(entry.Level.CapitalString(), module, entry.Message)
	return nil
}

func (c *ringCore) Sync() error {
	return nil
}
