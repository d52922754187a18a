// Package notify delivers advisory user-facing messages that accompany
// admission rejections. Advisories travel out-of-band from the log stream:
// the log records the reject event, the notifier tells the user why.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/cafeq/cafeq/internal/clock"
	"github.com/cafeq/cafeq/internal/idgen"
	"github.com/cafeq/cafeq/service/messaging"
)

// Notifier receives advisory messages raised during admission.
type Notifier interface {
	Notify(message string)
}

// Advisory is the payload published by Bus notifiers.
type Advisory struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stdout prints each advisory to standard output, matching the behaviour of
// an attended service counter.
type Stdout struct{}

func (Stdout) Notify(message string) {
	fmt.Println(message)
}

// Silent discards advisories.
type Silent struct{}

func (Silent) Notify(string) {}

// Bus publishes advisories onto a messaging queue so hosts can consume them
// programmatically.
type Bus struct {
	queue messaging.Queue[Advisory]
}

// NewBus creates a Bus notifier backed by the supplied queue.
func NewBus(queue messaging.Queue[Advisory]) *Bus {
	return &Bus{queue: queue}
}

func (b *Bus) Notify(message string) {
	advisory := &Advisory{
		ID:        idgen.New(),
		Message:   message,
		CreatedAt: clock.Now(),
	}
	_ = b.queue.Publish(context.Background(), advisory)
}

// Func adapts a plain function to the Notifier interface.
type Func func(message string)

func (f Func) Notify(message string) { f(message) }
