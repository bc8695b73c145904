package pathwalk

import (
	"fmt"
	"strings"

	"github.com/Garsondee/Grid-Game/internal/hexgrid"
)

// Event kinds recorded in a Log.
const (
	EventAccept         = "accept"
	EventRejectReversal = "reject_reversal"
	EventRejectClaimed  = "reject_claimed"
	EventRejectBounds   = "reject_bounds"
	EventFallback       = "fallback" // retry cap hit; picked among eligible neighbours
	EventStuck          = "stuck"
	EventDone           = "done"
)

// LogEntry is one recorded walker event.
type LogEntry struct {
	Path  int // index of the path within its pass
	Step  int // accepted steps so far
	Kind  string
	From  hexgrid.Coord
	To    hexgrid.Coord
	Value string // human-readable detail
}

// String formats the entry as a fixed-width log line.
//
//	[P=02 S=017] reject_claimed   (3,-1) → (4,-2)  E
func (e LogEntry) String() string {
	return fmt.Sprintf("[P=%02d S=%03d] %-16s %v → %v  %s",
		e.Path, e.Step, e.Kind, e.From, e.To, e.Value)
}

// Log collects walker events. Rejections are only kept in verbose mode, since
// a crowded board produces many of them.
type Log struct {
	entries []LogEntry
	verbose bool
}

// NewLog creates a Log. If verbose is true, rejected samples are recorded as
// well as accepted steps and terminations.
func NewLog(verbose bool) *Log {
	return &Log{verbose: verbose}
}

// Add records a new entry.
func (l *Log) Add(e LogEntry) {
	if l == nil {
		return
	}
	l.entries = append(l.entries, e)
}

// AddVerbose records an entry only when verbose mode is on.
func (l *Log) AddVerbose(e LogEntry) {
	if l == nil || !l.verbose {
		return
	}
	l.Add(e)
}

// Entries returns all recorded entries.
func (l *Log) Entries() []LogEntry {
	return l.entries
}

// Filter returns entries for the given path and kind. A negative path or an
// empty kind matches anything.
func (l *Log) Filter(path int, kind string) []LogEntry {
	var out []LogEntry
	for _, e := range l.entries {
		if path >= 0 && e.Path != path {
			continue
		}
		if kind != "" && e.Kind != kind {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries of the given kind were recorded across all
// paths.
func (l *Log) Count(kind string) int {
	return len(l.Filter(-1, kind))
}

// LastOf returns the most recent entry of the given kind, or false if none.
func (l *Log) LastOf(kind string) (LogEntry, bool) {
	entries := l.Filter(-1, kind)
	if len(entries) == 0 {
		return LogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// Format returns the full log as a single string for t.Log output.
func (l *Log) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Reset drops every entry.
func (l *Log) Reset() {
	l.entries = l.entries[:0]
}
