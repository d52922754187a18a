package cafeq

import (
	"github.com/cafeq/cafeq/model/menu"
	"github.com/cafeq/cafeq/model/transcript"
	"github.com/cafeq/cafeq/scheduler"
	"github.com/cafeq/cafeq/service/dao"
	"github.com/cafeq/cafeq/service/event"
	"github.com/cafeq/cafeq/service/notify"
	"github.com/cafeq/cafeq/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises a Service.
type Option func(s *Service)

// WithConfig sets the configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithMenu overrides the menu, taking precedence over Config.Menu.
func WithMenu(m *menu.Menu) Option {
	return func(s *Service) {
		s.menu = m
	}
}

// WithNotifier sets the advisory message sink.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

// WithEventService sets the event service.
func WithEventService(service *event.Service) Option {
	return func(s *Service) {
		s.eventService = service
	}
}

// WithTranscriptDAO sets the transcript archive.
func WithTranscriptDAO(d dao.Service[string, transcript.Transcript]) Option {
	return func(s *Service) {
		s.transcripts = d
	}
}

// WithSchedulerOptions appends options passed through to scheduler.New.
func WithSchedulerOptions(opts ...scheduler.Option) Option {
	return func(s *Service) {
		s.schedulerOptions = append(s.schedulerOptions, opts...)
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile
// is empty the stdout exporter is used; otherwise traces are written to the
// supplied file path. Safe to call multiple times – the first successful
// initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom
// SpanExporter, enabling integrations beyond the built-in stdout exporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
