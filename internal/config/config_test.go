// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "optimabiz", cfg.Database.Database)
	assert.Equal(t, 3*time.Second, cfg.Engine.GenerateDelay)
	assert.Equal(t, 20*time.Millisecond, cfg.Engine.TypeInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Engine.RevealPause)
	assert.Equal(t, 800*time.Millisecond, cfg.Engine.SectionInterval)
	assert.Equal(t, "id", cfg.I18n.DefaultLocale)
}

func TestLoadReadsEnginePacingFromEnv(t *testing.T) {
	t.Setenv("ENGINE_GENERATE_DELAY_MS", "50")
	t.Setenv("ENGINE_TYPE_INTERVAL_MS", "1")
	t.Setenv("ENGINE_REVEAL_PAUSE_MS", "5")
	t.Setenv("ENGINE_SECTION_INTERVAL_MS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50*time.Millisecond, cfg.Engine.GenerateDelay)
	assert.Equal(t, 1*time.Millisecond, cfg.Engine.TypeInterval)
	assert.Equal(t, 5*time.Millisecond, cfg.Engine.RevealPause)
	assert.Equal(t, 5*time.Millisecond, cfg.Engine.SectionInterval)
}

func TestValidateRejectsNonPositiveIntervals(t *testing.T) {
	t.Setenv("ENGINE_TYPE_INTERVAL_MS", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_PASSWORD", "something")

	_, err := Load()
	assert.Error(t, err)
}
