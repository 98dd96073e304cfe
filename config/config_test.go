package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/aether-stage/particle"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	sc := cfg.StageConfig()
	assert.Equal(t, 5*time.Second, sc.BootDuration)
	assert.Equal(t, 50*time.Millisecond, sc.ProgressInterval)
	assert.Equal(t, 100*time.Millisecond, sc.MaxDelta)
	assert.Equal(t, 5, sc.PanelCount)
	assert.Equal(t, particle.JitterUniform, sc.Jitter)
	assert.Equal(t, time.Second/30, cfg.FrameInterval())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
stage:
  boot_duration: 3s
  seed: 99
  jitter: simplex
render:
  fps: 60
logging:
  level: debug
  development: true
`))
	require.NoError(t, err)

	sc := cfg.StageConfig()
	assert.Equal(t, 3*time.Second, sc.BootDuration)
	assert.Equal(t, int64(99), sc.Seed)
	assert.Equal(t, particle.JitterSimplex, sc.Jitter)
	assert.Equal(t, 60, sc.FPS)
	assert.Equal(t, 50*time.Millisecond, sc.ProgressInterval, "unset keys keep defaults")

	zc := cfg.ZapConfig()
	assert.True(t, zc.Development)
	assert.Equal(t, zapcore.DebugLevel, zc.Level.Level())
}

func TestValidateJoinsAllErrors(t *testing.T) {
	_, err := Parse([]byte(`
stage:
  boot_duration: soon
  panel_count: 9
  jitter: perlin
render:
  fps: 0
  color: cga
logging:
  level: loud
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	msg := err.Error()
	for _, key := range []string{
		"stage.boot_duration",
		"stage.panel_count",
		"stage.jitter",
		"render.fps",
		"render.color",
		"logging.level",
	} {
		assert.True(t, strings.Contains(msg, key), "missing %s in %q", key, msg)
	}
}

func TestValidateRejectsZeroDurations(t *testing.T) {
	for _, key := range []string{"boot_duration", "progress_interval", "max_delta"} {
		t.Run(key, func(t *testing.T) {
			_, err := Parse([]byte("stage:\n  " + key + ": 0s\n"))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), "stage."+key)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("stage: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "nested", "stage.yaml")
	cfg.Stage.Seed = 1234
	cfg.Audio.Enabled = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	require.NoError(t, os.WriteFile(path, []byte("render:\n  fps: -1\n"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
