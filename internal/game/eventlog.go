package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	eventPanelWidth = 340
	eventMaxEntries = 60
	eventLineHeight = 16
)

// EventKind tags a line in the event panel.
type EventKind uint8

const (
	EventInfo EventKind = iota
	EventPass
	EventStuck
	EventError
)

var eventColors = [...]color.RGBA{
	EventInfo:  {R: 150, G: 150, B: 150, A: 255},
	EventPass:  {R: 90, G: 170, B: 240, A: 255},
	EventStuck: {R: 255, G: 200, B: 0, A: 255},
	EventError: {R: 230, G: 70, B: 70, A: 255},
}

// Event is a single line in the event panel.
type Event struct {
	Turn    int
	Kind    EventKind
	Message string
}

func (e Event) String() string {
	return fmt.Sprintf("%3d %s", e.Turn, e.Message)
}

// EventLog is a ring buffer of viewer notices: new passes, stuck paths,
// clipboard copies.
type EventLog struct {
	entries []Event
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{entries: make([]Event, eventMaxEntries)}
}

// Add appends an entry, evicting the oldest when full.
func (el *EventLog) Add(turn int, kind EventKind, format string, args ...any) {
	el.entries[el.head] = Event{Turn: turn, Kind: kind, Message: fmt.Sprintf(format, args...)}
	el.head = (el.head + 1) % eventMaxEntries
	if el.count < eventMaxEntries {
		el.count++
	}
}

// Len is the number of entries held.
func (el *EventLog) Len() int { return el.count }

// Recent returns entries oldest first.
func (el *EventLog) Recent() []Event {
	result := make([]Event, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + eventMaxEntries) % eventMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Draw renders the panel against the right edge of the screen, below top.
func (el *EventLog) Draw(screen *ebiten.Image, face text.Face, top int) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	panelX := float32(w - eventPanelWidth)
	vector.FillRect(screen, panelX, float32(top), eventPanelWidth, float32(h-top), color.RGBA{R: 14, G: 14, B: 14, A: 235}, false)
	vector.StrokeLine(screen, panelX, float32(top), panelX, float32(h), 1, color.RGBA{R: 60, G: 60, B: 60, A: 255}, false)
	drawText(screen, face, "EVENTS", float64(panelX)+8, float64(top)+4, color.RGBA{R: 200, G: 200, B: 200, A: 255})

	entries := el.Recent()
	entries = entries[len(entries)-visibleCount(len(entries), h, top):]
	y := float64(top) + 26
	for _, e := range entries {
		vector.FillRect(screen, panelX+6, float32(y)+5, 3, 6, eventColors[e.Kind], false)
		drawText(screen, face, e.String(), float64(panelX)+14, y, color.RGBA{R: 210, G: 210, B: 210, A: 255})
		y += eventLineHeight
	}
}

// visibleCount is how many of the n newest entries fit in a panel from top to
// h. A panel too short for one line shows none.
func visibleCount(n, h, top int) int {
	fit := (h - top - 28) / eventLineHeight
	return max(min(n, fit), 0)
}
