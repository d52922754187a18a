package cafeq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnvExpr(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		input    string
		expected string
	}{
		{
			name:     "no expressions",
			input:    "drainCeiling: 100",
			expected: "drainCeiling: 100",
		},
		{
			name:     "single expression",
			env:      map[string]string{"CEILING": "50"},
			input:    "drainCeiling: ${env.CEILING}",
			expected: "drainCeiling: 50",
		},
		{
			name:     "unset variable expands to empty",
			input:    "value: ${env.CAFEQ_UNSET_VARIABLE}!",
			expected: "value: !",
		},
		{
			name:     "multiple expressions",
			env:      map[string]string{"A": "1", "B": "2"},
			input:    "${env.A}-${env.B}",
			expected: "1-2",
		},
		{
			name:     "missing closing brace is literal",
			input:    "value: ${env.KEY",
			expected: "value: ${env.KEY",
		},
		{
			name:     "invalid key is literal",
			input:    "value: ${env.K EY}",
			expected: "value: ${env.K EY}",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tc.expected, expandEnvExpr(tc.input))
		})
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	var nilConfig *Config
	assert.NoError(t, nilConfig.Validate())

	invalid := DefaultConfig()
	invalid.Scheduler.DrainCeiling = 0
	assert.Error(t, invalid.Validate())

	badMenu := DefaultConfig()
	badMenu.Menu = map[string]int{"tea": 0}
	assert.Error(t, badMenu.Validate())
}
