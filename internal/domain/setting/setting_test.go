package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailNotificationsEnabled(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		found   bool
		enabled bool
	}{
		{"absent defaults to enabled", "", false, true},
		{"one is truthy", "1", true, true},
		{"true is truthy", "true", true, true},
		{"zero disables", "0", true, false},
		{"false disables", "false", true, false},
		{"garbage disables", "yes", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.enabled, EmailNotificationsEnabled(tt.value, tt.found))
		})
	}
}
