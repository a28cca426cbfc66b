package cfg

import (
	"io"
	"testing"

	"github.com/DRSN-tech/cosmetic-product/pkg/e"
	"github.com/DRSN-tech/cosmetic-product/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() logger.Logger {
	return logger.New(io.Discard, "error", "text")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CURRENT_DATE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load(discardLogger())
	require.NoError(t, err)

	assert.Equal(t, "2025-04-06", cfg.App.CurrentDate)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CURRENT_DATE", "2026-10-16")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load(discardLogger())
	require.NoError(t, err)

	assert.Equal(t, "2026-10-16", cfg.App.CurrentDate)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{"bad date", map[string]string{"CURRENT_DATE": "06.04.2025"}, e.ErrInvalidDate},
		{"impossible date", map[string]string{"CURRENT_DATE": "2025-13-01"}, e.ErrInvalidDate},
		{"bad level", map[string]string{"LOG_LEVEL": "trace"}, e.ErrIncorrectEnvVariable},
		{"bad format", map[string]string{"LOG_FORMAT": "xml"}, e.ErrIncorrectEnvVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CURRENT_DATE", "")
			t.Setenv("LOG_LEVEL", "")
			t.Setenv("LOG_FORMAT", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(discardLogger())
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
