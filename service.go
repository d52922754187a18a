package cafeq

import (
	"context"

	"github.com/cafeq/cafeq/internal/clock"
	"github.com/cafeq/cafeq/internal/idgen"
	"github.com/cafeq/cafeq/model/menu"
	"github.com/cafeq/cafeq/model/transcript"
	"github.com/cafeq/cafeq/scheduler"
	"github.com/cafeq/cafeq/service/dao"
	tmemory "github.com/cafeq/cafeq/service/dao/transcript/memory"
	"github.com/cafeq/cafeq/service/event"
	"github.com/cafeq/cafeq/service/notify"
	"github.com/cafeq/cafeq/tracing"
)

// Service is the high-level façade over one scheduler. It owns the ambient
// services – event fan-out, advisory notifier, transcript archive – and
// forwards every operation to the engine, returning the engine's log lines
// untouched.
//
// The façade inherits the engine's threading contract: operations are not
// safe for concurrent use and hosts serialise access externally.
type Service struct {
	config           *Config
	menu             *menu.Menu
	notifier         notify.Notifier
	eventService     *event.Service
	publisher        *event.Publisher[scheduler.Event]
	transcripts      dao.Service[string, transcript.Transcript]
	scheduler        *scheduler.Scheduler
	schedulerOptions []scheduler.Option

	// identity of the operation in flight, attached to published events
	currentOp  string
	currentRun string
}

// New creates a Service with the supplied options.
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}

// NewFromConfig validates config and creates a Service from it.
func NewFromConfig(config *Config, options ...Option) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return New(append([]Option{WithConfig(config)}, options...)...), nil
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()

	opts := append([]scheduler.Option{
		scheduler.WithMenu(s.menu),
		scheduler.WithNotifier(s.notifier),
		scheduler.WithObserver(s.publishEvent),
		scheduler.WithDrainCeiling(s.config.Scheduler.DrainCeiling),
	}, s.schedulerOptions...)
	s.scheduler = scheduler.New(opts...)
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.menu == nil {
		if len(s.config.Menu) > 0 {
			s.menu = menu.New(s.config.Menu)
		} else {
			s.menu = menu.Default()
		}
	}
	if s.notifier == nil {
		if s.config.Notifier.Silent {
			s.notifier = notify.Silent{}
		} else {
			s.notifier = notify.Stdout{}
		}
	}
	if s.eventService == nil {
		s.eventService = event.New()
	}
	s.publisher = event.PublisherOf[scheduler.Event](s.eventService)
	// Default sinks keep the event streams drained so unobserved runs never
	// stall on a full transport buffer; hosts replace them via
	// event.SetListenerOf and Service.SetListener.
	event.SetListenerOf[scheduler.Event](s.eventService, func(*event.Event[scheduler.Event]) {})
	s.eventService.SetListener(func(*event.Event[any]) {})
	if s.transcripts == nil {
		s.transcripts = tmemory.New()
	}
}

func (s *Service) publishEvent(ev scheduler.Event) {
	_ = s.publisher.Publish(context.Background(), event.NewEvent(&event.Context{
		RunID:     s.currentRun,
		Op:        s.currentOp,
		EventType: ev.Kind.String(),
	}, ev))
}

// CreateQueue registers a service counter with the given capacity.
func (s *Service) CreateQueue(ctx context.Context, id string, capacity int) []string {
	return s.record(ctx, "create_queue", func() []string {
		return s.scheduler.CreateQueue(id, capacity)
	})
}

// Enqueue admits an order for itemName into the named queue.
func (s *Service) Enqueue(ctx context.Context, queueID, itemName string) []string {
	return s.record(ctx, "enqueue", func() []string {
		return s.scheduler.Enqueue(queueID, itemName)
	})
}

// MarkSkip flags the queue to forfeit its next dispatch turn.
func (s *Service) MarkSkip(ctx context.Context, queueID string) []string {
	return s.record(ctx, "mark_skip", func() []string {
		return s.scheduler.MarkSkip(queueID)
	})
}

// Run executes exactly steps dispatch turns.
func (s *Service) Run(ctx context.Context, quantum, steps int) []string {
	return s.record(ctx, "run", func() []string {
		return s.scheduler.Run(quantum, steps)
	})
}

// Drain runs until all queues are empty and no skip flag is pending.
func (s *Service) Drain(ctx context.Context, quantum int) []string {
	return s.record(ctx, "drain", func() []string {
		return s.scheduler.Drain(quantum)
	})
}

// Display renders a snapshot of the current state. Snapshots are pure and
// therefore not archived.
func (s *Service) Display() []string {
	return s.scheduler.Display()
}

// record wraps an engine operation in a span and archives its transcript.
func (s *Service) record(ctx context.Context, op string, fn func() []string) []string {
	runID := idgen.New()
	s.currentOp, s.currentRun = op, runID
	ctx, span := tracing.StartSpan(ctx, "cafeq."+op, "INTERNAL")
	span.WithAttributes(map[string]string{"runID": runID})

	lines := fn()

	tracing.EndSpan(span, nil)
	s.currentOp, s.currentRun = "", ""

	if len(lines) > 0 {
		_ = s.transcripts.Save(ctx, &transcript.Transcript{
			ID:        runID,
			Op:        op,
			CreatedAt: clock.Now(),
			Lines:     append([]string(nil), lines...),
		})
	}
	return lines
}

// Scheduler exposes the underlying engine.
func (s *Service) Scheduler() *scheduler.Scheduler {
	return s.scheduler
}

// Events exposes the event service for listener registration.
func (s *Service) Events() *event.Service {
	return s.eventService
}

// Transcripts lists archived operation transcripts in recording order.
func (s *Service) Transcripts(ctx context.Context, parameters ...*dao.Parameter) ([]*transcript.Transcript, error) {
	return s.transcripts.List(ctx, parameters...)
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}
