package event

import (
	"github.com/cafeq/cafeq/service/messaging/memory"
)

type Option func(s *Service)

// WithQueueConfig sets the per-stream memory queue configuration factory.
func WithQueueConfig(newConfig func(name string) memory.Config) Option {
	return func(s *Service) {
		s.newQueueConfig = newConfig
	}
}
