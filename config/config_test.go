package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motifscan/motifscan/config"
)

func TestLoadFromReaderAppliesDefaultsWhenFieldsAbsent(t *testing.T) {
	cfg, err := config.LoadFromReader("yaml", []byte("log:\n  level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Enumerate.MotifSize)
	assert.Equal(t, 100, cfg.Enrich.RandomGraphs)
}

func TestLoadFromReaderOverridesDefaults(t *testing.T) {
	yaml := "enumerate:\n  motif_size: 4\n  undirected: true\nswitch:\n  q: 25\n  seed: 7\n"
	cfg, err := config.LoadFromReader("yaml", []byte(yaml))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Enumerate.MotifSize)
	assert.True(t, cfg.Enumerate.Undirected)
	assert.Equal(t, 25, cfg.Switch.Q)
	assert.Equal(t, int64(7), cfg.Switch.Seed)
}

func TestLoadWithEmptyPathFallsBackToDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Switch.Q)
}
