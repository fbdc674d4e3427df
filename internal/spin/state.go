package spin

import "time"

// State is the lifecycle phase of the wheel.
type State int

const (
	Idle State = iota
	Spinning
	Stopping
	// Settled is transient: a tick that settles the wheel reports the result
	// and leaves the controller Idle again before returning.
	Settled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	case Stopping:
		return "stopping"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// Status tells the caller whether a request changed anything.
type Status int

const (
	Ignored Status = iota
	Accepted
)

func (s Status) String() string {
	if s == Accepted {
		return "accepted"
	}
	return "ignored"
}

// EventKind identifies a state-transition notification.
type EventKind int

const (
	EventSpinStarted EventKind = iota
	EventStopRequested
	EventSettled
)

func (k EventKind) String() string {
	switch k {
	case EventSpinStarted:
		return "spin_started"
	case EventStopRequested:
		return "stop_requested"
	case EventSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers on every transition.
//
// Label and Index are set only for EventSettled. Auto is set on
// EventStopRequested when the stop came from the time bound rather than a
// caller.
type Event struct {
	Kind     EventKind
	At       time.Time
	Label    string
	Index    int
	Options  int
	Velocity float64
	Auto     bool
}

// Result is the outcome of one spin.
type Result struct {
	Label string
	Index int
	At    time.Time
	Angle float64
}
