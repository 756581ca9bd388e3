// Package filewatcher recursively watches an asset root for external
// file changes and feeds them to internal/asset's hot-reload path
// (§4.7: "blocks on OS directory-change notifications").
package filewatcher

import (
	"errors"
	"sync/atomic"
	"time"
)

// ErrWatcherClosed is returned by Watch/Close calls made after Close.
var ErrWatcherClosed = errors.New("filewatcher: watcher is closed")

// Op is a bitmask of file system operations, mirroring fsnotify's own.
type Op uint32

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

func (op Op) String() string {
	switch {
	case op&OpCreate != 0:
		return "CREATE"
	case op&OpWrite != 0:
		return "WRITE"
	case op&OpRemove != 0:
		return "REMOVE"
	case op&OpRename != 0:
		return "RENAME"
	case op&OpChmod != 0:
		return "CHMOD"
	default:
		return "UNKNOWN"
	}
}

// Event is one file system change notification.
type Event struct {
	Path      string
	Op        Op
	Timestamp time.Time
}

// Stats reports watcher status for diagnostics/logging.
type Stats struct {
	WatchedDirs   int
	PendingEvents int
	TotalEvents   int64
	Overflows     int64
	StartTime     time.Time
}

// Config controls a Watcher's behavior.
type Config struct {
	// BufferSize is the event channel's capacity. When it fills, the
	// watcher sets the unknown-changes flag instead of blocking or
	// dropping silently (§4.7: overflow is reported, never fatal).
	BufferSize int

	// IgnorePatterns are glob patterns (see IgnorePatterns) excluding
	// paths from both watching and event delivery.
	IgnorePatterns []string
}

// DefaultConfig returns sensible defaults: a 256-event buffer and the
// package's default ignore set.
func DefaultConfig() Config {
	return Config{
		BufferSize:     256,
		IgnorePatterns: DefaultIgnorePatterns,
	}
}

// unknownChangesFlag is a tiny atomic latch: Set marks it, TakeAndClear
// reads and resets it in one step. Used for the "unknown files changed"
// overflow signal, which callers are expected to treat as "rescan
// everything" rather than trust the dropped event.
type unknownChangesFlag struct {
	set atomic.Bool
}

func (f *unknownChangesFlag) Set()        { f.set.Store(true) }
func (f *unknownChangesFlag) TakeAndClear() bool { return f.set.Swap(false) }
