package scheduler

import "fmt"

// Kind classifies a scheduler log event.
type Kind int

const (
	KindCreate Kind = iota
	KindEnqueue
	KindReject
	KindSkip
	KindRun
	KindWork
	KindFinish
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindEnqueue:
		return "enqueue"
	case KindReject:
		return "reject"
	case KindSkip:
		return "skip"
	case KindRun:
		return "run"
	case KindWork:
		return "work"
	case KindFinish:
		return "finish"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Reason qualifies reject and error events.
type Reason string

const (
	ReasonUnknownItem  Reason = "unknown_item"
	ReasonFull         Reason = "full"
	ReasonInvalidSteps Reason = "invalid_steps"
)

// Event is one entry in the scheduler's log stream. Time is the logical
// scheduler time at which the event was recorded.
type Event struct {
	Time      int    `json:"time"`
	Kind      Kind   `json:"kind"`
	Queue     string `json:"queue,omitempty"`
	Task      string `json:"task,omitempty"`
	Remaining int    `json:"remaining,omitempty"`
	Reason    Reason `json:"reason,omitempty"`
}

// LogLine renders the event in the stable space-separated key=value grammar.
func (e Event) LogLine() string {
	switch e.Kind {
	case KindEnqueue:
		return fmt.Sprintf("time=%d event=enqueue queue=%s task=%s remaining=%d", e.Time, e.Queue, e.Task, e.Remaining)
	case KindReject:
		return fmt.Sprintf("time=%d event=reject queue=%s task=%s reason=%s", e.Time, e.Queue, e.Task, e.Reason)
	case KindWork:
		return fmt.Sprintf("time=%d event=work queue=%s task=%s remaining=%d", e.Time, e.Queue, e.Task, e.Remaining)
	case KindFinish:
		return fmt.Sprintf("time=%d event=finish queue=%s task=%s", e.Time, e.Queue, e.Task)
	case KindError:
		return fmt.Sprintf("time=%d event=error reason=%s", e.Time, e.Reason)
	default:
		return fmt.Sprintf("time=%d event=%s queue=%s", e.Time, e.Kind, e.Queue)
	}
}
