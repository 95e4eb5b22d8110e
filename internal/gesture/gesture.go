// Package gesture turns raw pointer/touch event messages into the two
// interaction state machines: drag-to-emit and pinch-to-tune. Events are
// explicit per-tick messages so both machines are deterministic under test
// without a real input source.
package gesture

import "github.com/25Neil25/pulsegrid/internal/geom"

// EventKind tags an input message from the host layer.
type EventKind int

const (
	Down EventKind = iota // a contact appeared
	Move                  // contact position(s) changed
	Up                    // all contacts lifted
)

// Event carries the full set of current contact positions. Up events carry
// none. A contact count outside what the machines expect produces no state
// change for that event.
type Event struct {
	Kind     EventKind
	Contacts []geom.Point
}

func DownAt(pts ...geom.Point) Event { return Event{Kind: Down, Contacts: pts} }
func MoveTo(pts ...geom.Point) Event { return Event{Kind: Move, Contacts: pts} }
func Lift() Event                    { return Event{Kind: Up} }
