// Package scheduler implements the multi-queue round-robin dispatch engine.
//
// A scheduler owns a menu, an ordered registry of bounded FIFO queues,
// per-queue admission counters and one-shot skip flags, a logical clock and
// the round-robin cursor. Every public operation runs to completion against
// scheduler state and returns the ordered log lines it produced; nothing the
// engine raises is fatal. The engine is single-threaded by contract – hosts
// that drive one scheduler from several goroutines serialise access
// externally.
package scheduler

import (
	"github.com/cafeq/cafeq/model/menu"
	"github.com/cafeq/cafeq/model/task"
	"github.com/cafeq/cafeq/queue"
	"github.com/cafeq/cafeq/service/notify"
)

// Advisory texts surfaced to users alongside reject events. They travel
// out-of-band from the log stream.
const (
	advisoryUnknownItem = "Sorry, we don't serve that."
	advisoryAtCapacity  = "Sorry, we're at capacity."
)

// DefaultDrainCeiling caps a Drain call at queues × DefaultDrainCeiling
// turns. The bound exists only as a safety net; drain normally stops as soon
// as every queue is empty and no skip flag is pending.
const DefaultDrainCeiling = 100

// Scheduler advances simulated time by cyclically granting each queue a
// bounded time slice to progress its head task.
type Scheduler struct {
	menu         *menu.Menu
	now          int
	queues       map[string]*queue.Queue
	order        []string
	counters     map[string]int
	skip         map[string]bool
	cursor       int
	drainCeiling int
	notifier     notify.Notifier
	observer     func(Event)
}

type Option func(*Scheduler)

// WithMenu overrides the compiled-in menu.
func WithMenu(m *menu.Menu) Option {
	return func(s *Scheduler) {
		s.menu = m
	}
}

// WithNotifier sets the advisory message sink.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Scheduler) {
		s.notifier = n
	}
}

// WithObserver registers a callback invoked once per emitted event, in
// emission order. The observer must not re-enter the scheduler.
func WithObserver(fn func(Event)) Option {
	return func(s *Scheduler) {
		s.observer = fn
	}
}

// WithDrainCeiling overrides the per-queue turn multiplier bounding Drain.
func WithDrainCeiling(ceiling int) Option {
	return func(s *Scheduler) {
		if ceiling > 0 {
			s.drainCeiling = ceiling
		}
	}
}

// New creates an empty scheduler at logical time zero.
func New(options ...Option) *Scheduler {
	ret := &Scheduler{
		queues:       make(map[string]*queue.Queue),
		counters:     make(map[string]int),
		skip:         make(map[string]bool),
		drainCeiling: DefaultDrainCeiling,
	}
	for _, option := range options {
		option(ret)
	}
	if ret.menu == nil {
		ret.menu = menu.Default()
	}
	if ret.notifier == nil {
		ret.notifier = notify.Stdout{}
	}
	return ret
}

// Time returns the current logical time.
func (s *Scheduler) Time() int {
	return s.now
}

// Menu returns the scheduler's menu.
func (s *Scheduler) Menu() *menu.Menu {
	return s.menu
}

// NextQueue returns the id of the queue the cursor points to; ok is false
// when no queues are registered.
func (s *Scheduler) NextQueue() (string, bool) {
	if len(s.order) == 0 {
		return "", false
	}
	return s.order[s.cursor], true
}

func (s *Scheduler) emit(ev Event) string {
	if s.observer != nil {
		s.observer(ev)
	}
	return ev.LogLine()
}

// CreateQueue registers an empty queue with the given capacity. The call is
// idempotent: a queue id is created at most once and repeat calls have no
// effect and produce no log.
func (s *Scheduler) CreateQueue(id string, capacity int) []string {
	if _, ok := s.queues[id]; ok {
		return nil
	}
	s.queues[id] = queue.New(id, capacity)
	s.order = append(s.order, id)
	s.counters[id] = 0
	s.skip[id] = false
	return []string{s.emit(Event{Time: s.now, Kind: KindCreate, Queue: id})}
}

// Enqueue admits an order for the named item into the queue. An unregistered
// queue id is ignored outright: no log, no counter change, no advisory. For a
// registered queue the admission counter is consumed before validation, so
// rejected requests still burn a task id slot.
func (s *Scheduler) Enqueue(queueID, itemName string) []string {
	q, ok := s.queues[queueID]
	if !ok {
		return nil
	}

	s.counters[queueID]++
	taskID := task.ID(queueID, s.counters[queueID])

	burst, ok := s.menu.Lookup(itemName)
	if !ok {
		s.notifier.Notify(advisoryUnknownItem)
		return []string{s.emit(Event{Time: s.now, Kind: KindReject, Queue: queueID, Task: taskID, Reason: ReasonUnknownItem})}
	}

	t := task.New(taskID, burst)
	if !q.Enqueue(t) {
		s.notifier.Notify(advisoryAtCapacity)
		return []string{s.emit(Event{Time: s.now, Kind: KindReject, Queue: queueID, Task: taskID, Reason: ReasonFull})}
	}

	return []string{s.emit(Event{Time: s.now, Kind: KindEnqueue, Queue: queueID, Task: taskID, Remaining: burst})}
}

// MarkSkip flags the queue to forfeit its next dispatch turn. Repeat calls
// are idempotent; an unregistered id is ignored without a log.
func (s *Scheduler) MarkSkip(queueID string) []string {
	if _, ok := s.skip[queueID]; !ok {
		return nil
	}
	s.skip[queueID] = true
	return []string{s.emit(Event{Time: s.now, Kind: KindSkip, Queue: queueID})}
}
