package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	base := Config{ServerEndpointAddr: "http://default:1", RequestTimeout: 1500 * time.Millisecond}

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "both flags", args: []string{"cmd", "-a", "http://127.0.0.1:9090", "-t", "20"},
			expected: &Config{ServerEndpointAddr: "http://127.0.0.1:9090", RequestTimeout: 20 * time.Second}},
		{name: "no flags keeps values", args: []string{"cmd"},
			expected: &Config{ServerEndpointAddr: "http://default:1", RequestTimeout: 1500 * time.Millisecond}},
		{name: "unknown flags ignored", args: []string{"cmd", "-x", "1", "-a", "http://h:2"},
			expected: &Config{ServerEndpointAddr: "http://h:2", RequestTimeout: 1500 * time.Millisecond}},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := base

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(&cfg) })
				return
			}

			require.NotPanics(t, func() { parseFlags(&cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, &cfg))
		})
	}
}
