// Package event fans typed notifications out to host observers. The facade
// publishes one notification per log line the scheduler core emits; hosts
// subscribe with SetListenerOf without touching core state.
package event

import (
	"time"

	"github.com/cafeq/cafeq/internal/clock"
)

// Context identifies the operation that produced an event.
type Context struct {
	RunID     string `json:"runID"`
	Op        string `json:"op"`
	EventType string `json:"eventType"`
}

type Event[T any] struct {
	Context   *Context               `json:"context"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata"`
	Data      T                      `json:"data"`
}

func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: clock.Now(),
		Metadata:  make(map[string]interface{}),
		Data:      data,
	}
}
