// -- internal/config/config_test.go --
package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "info", cfg.Logger().Level)
	assert.Equal(t, "console", cfg.Logger().Format)
	assert.Equal(t, "formpilot", cfg.Logger().ServiceName)

	assert.True(t, cfg.Browser().Headless)
	assert.False(t, cfg.Browser().KeepOpen)

	assert.Equal(t, 60*time.Second, cfg.Network().NavigationTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.Network().PostLoadWait)

	assert.Equal(t, "random", cfg.Filler().Mode)
	assert.False(t, cfg.Filler().DryRun)
	assert.Equal(t, 8.0, cfg.Filler().WritesPerSecond)
	assert.Equal(t, 150, cfg.Filler().AriaSettleMs)

	assert.Equal(t, "~/.formpilot/profiles.db", cfg.Profiles().Path)

	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config { return NewDefaultConfig() }

	t.Run("accepts both filler modes", func(t *testing.T) {
		for _, mode := range []string{"random", "profile"} {
			cfg := valid()
			cfg.FillerCfg.Mode = mode
			assert.NoError(t, cfg.Validate())
		}
	})

	t.Run("rejects unknown filler mode", func(t *testing.T) {
		cfg := valid()
		cfg.FillerCfg.Mode = "chaotic"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "filler.mode")
	})

	t.Run("rejects negative max fields", func(t *testing.T) {
		cfg := valid()
		cfg.FillerCfg.MaxFields = -1
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "filler.max_fields")
	})

	t.Run("rejects negative write rate", func(t *testing.T) {
		cfg := valid()
		cfg.FillerCfg.WritesPerSecond = -0.5
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "filler.writes_per_second")
	})

	t.Run("rejects non-positive navigation timeout", func(t *testing.T) {
		cfg := valid()
		cfg.NetworkCfg.NavigationTimeout = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "network.navigation_timeout")
	})

	t.Run("rejects negative post load wait", func(t *testing.T) {
		cfg := valid()
		cfg.NetworkCfg.PostLoadWait = -time.Second
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "network.post_load_wait")
	})

	t.Run("rejects empty profiles path", func(t *testing.T) {
		cfg := valid()
		cfg.ProfilesCfg.Path = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "profiles.path")
	})
}

func TestSetDefaults_OverridesApply(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("filler.mode", "profile")
	v.Set("browser.headless", false)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "profile", cfg.Filler().Mode)
	assert.False(t, cfg.Browser().Headless)
	assert.Equal(t, "~/.formpilot/profiles.db", cfg.Profiles().Path)
}

func TestConfig_Setters(t *testing.T) {
	cfg := NewDefaultConfig()

	cfg.SetBrowserHeadless(false)
	cfg.SetBrowserKeepOpen(true)
	cfg.SetFillerMode("profile")
	cfg.SetFillerDryRun(true)

	assert.False(t, cfg.Browser().Headless)
	assert.True(t, cfg.Browser().KeepOpen)
	assert.Equal(t, "profile", cfg.Filler().Mode)
	assert.True(t, cfg.Filler().DryRun)
}
