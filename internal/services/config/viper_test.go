package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestViperConfigService_Load(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		expectErr bool
		check     func(t *testing.T, path string)
	}{
		{
			name: "Values from file",
			body: "frameInterval: 8ms\nstartPosition: 25\nlabel: SIDE B\nflash:\n  duration: 200ms\n  debounce: true\n",
			check: func(t *testing.T, path string) {
				cfg, err := NewViperConfigService(path, nil).Load()
				require.NoError(t, err)
				assert.Equal(t, 8*time.Millisecond, cfg.FrameInterval)
				assert.Equal(t, 25.0, cfg.StartPosition)
				assert.Equal(t, "SIDE B", cfg.Label)
				assert.Equal(t, 200*time.Millisecond, cfg.Flash.Duration)
				assert.True(t, cfg.Flash.Debounce)
				assert.Equal(t, "info", cfg.LogLevel)
			},
		},
		{
			name:      "Non positive frame interval",
			body:      "frameInterval: 0s\n",
			expectErr: true,
		},
		{
			name:      "Start position out of range",
			body:      "startPosition: 120\n",
			expectErr: true,
		},
		{
			name:      "Malformed yaml",
			body:      "frameInterval: [\n",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.body)
			if tc.check != nil {
				tc.check(t, path)
				return
			}
			_, err := NewViperConfigService(path, nil).Load()
			if tc.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestViperConfigService_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := NewViperConfigService(path, nil).Load()
	require.NoError(t, err)

	require.FileExists(t, path)
	assert.Equal(t, 16*time.Millisecond, cfg.FrameInterval)
	assert.Equal(t, 150*time.Millisecond, cfg.Flash.Duration)
	assert.False(t, cfg.Flash.Debounce)
	assert.Equal(t, "MIXTAPE VOL. 1", cfg.Label)
	assert.Zero(t, cfg.StartPosition)

	again, err := NewViperConfigService(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperConfigService_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "logLevel: warn\nstartPosition: 10\n")

	flags := pflag.NewFlagSet("tapedeck", pflag.ContinueOnError)
	flags.String(FlagLogLevel, "info", "")
	flags.Float64(FlagStartPosition, 0, "")
	require.NoError(t, flags.Parse([]string{"--start", "75"}))

	cfg, err := NewViperConfigService(path, flags).Load()
	require.NoError(t, err)
	assert.Equal(t, 75.0, cfg.StartPosition, "changed flag wins")
	assert.Equal(t, "warn", cfg.LogLevel, "unchanged flag leaves the file value")
}

func TestViperConfigService_Env(t *testing.T) {
	path := writeConfig(t, "label: FROM FILE\n")
	t.Setenv("TAPEDECK_LABEL", "FROM ENV")
	t.Setenv("TAPEDECK_FLASH_DEBOUNCE", "true")

	cfg, err := NewViperConfigService(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "FROM ENV", cfg.Label)
	assert.True(t, cfg.Flash.Debounce)
}
