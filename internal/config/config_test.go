package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)

	cfg, err := Load()
	req.NoError(err)

	req.Equal(1280, cfg.Window.Width)
	req.Equal(820, cfg.Window.Height)
	req.Equal(200, cfg.Search.MaxResults)
	req.Equal(14, cfg.History.RecentLimit)
	req.Equal("info", cfg.Log.Level)
	req.NotEmpty(cfg.Storage.DataDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	req := require.New(t)

	t.Setenv("CHARBOARD_LOG_LEVEL", "debug")
	t.Setenv("CHARBOARD_WINDOW_WIDTH", "1600")

	cfg, err := Load()
	req.NoError(err)
	req.Equal("debug", cfg.Log.Level)
	req.Equal(1600, cfg.Window.Width)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"log level out of set", "CHARBOARD_LOG_LEVEL", "loud"},
		{"window too small", "CHARBOARD_WINDOW_WIDTH", "10"},
		{"zero search results", "CHARBOARD_SEARCH_MAX_RESULTS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
