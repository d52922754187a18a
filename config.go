package cafeq

import (
	"fmt"

	"github.com/cafeq/cafeq/scheduler"
)

// Config is a serialisable representation of the simulator configuration. It
// can be populated from JSON or YAML; the zero-value of every nested field
// inherits its package default.
type Config struct {
	// Menu overrides the compiled-in item table when non-empty.
	Menu      map[string]int  `json:"menu,omitempty" yaml:"menu,omitempty"`
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`
	Notifier  NotifierConfig  `json:"notifier" yaml:"notifier"`
}

type SchedulerConfig struct {
	// DrainCeiling bounds an unbounded run at queues × DrainCeiling turns.
	DrainCeiling int `json:"drainCeiling" yaml:"drainCeiling"`
}

type NotifierConfig struct {
	// Silent discards advisory messages instead of printing them.
	Silent bool `json:"silent" yaml:"silent"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		Scheduler: SchedulerConfig{
			DrainCeiling: scheduler.DefaultDrainCeiling,
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Scheduler.DrainCeiling <= 0 {
		return fmt.Errorf("scheduler.drainCeiling must be > 0")
	}
	for name, burst := range c.Menu {
		if burst <= 0 {
			return fmt.Errorf("menu.%v burst must be > 0", name)
		}
	}
	return nil
}
