package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fr4nk3nst1ner/jobboard/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LoggingConfig
	}{
		{"console", config.LoggingConfig{Level: "debug", Output: []string{"console"}}},
		{"file", config.LoggingConfig{Level: "warn", Output: []string{"file"}, File: filepath.Join(t.TempDir(), "logs", "jobboard.log")}},
		{"none", config.LoggingConfig{Level: "info"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.cfg)
			assert.NotNil(t, logger)
			logger.Info().Str("case", tt.name).Msg("logger ready")
		})
	}
}
