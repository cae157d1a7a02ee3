// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Browser() BrowserConfig
	Network() NetworkConfig
	Filler() FillerConfig
	Profiles() ProfilesConfig

	// Browser Setters (driven by CLI flags)
	SetBrowserHeadless(bool)
	SetBrowserKeepOpen(bool)

	// Filler Setters
	SetFillerMode(string)
	SetFillerDryRun(bool)
}

// Ensure Config satisfies the access contract.
var _ Interface = (*Config)(nil)

// Config holds the entire application configuration. Fields are exported so
// viper can unmarshal them; consumers go through the Interface getters.
type Config struct {
	LoggerCfg   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	BrowserCfg  BrowserConfig  `mapstructure:"browser" yaml:"browser"`
	NetworkCfg  NetworkConfig  `mapstructure:"network" yaml:"network"`
	FillerCfg   FillerConfig   `mapstructure:"filler" yaml:"filler"`
	ProfilesCfg ProfilesConfig `mapstructure:"profiles" yaml:"profiles"`
}

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig     { return c.LoggerCfg }
func (c *Config) Browser() BrowserConfig   { return c.BrowserCfg }
func (c *Config) Network() NetworkConfig   { return c.NetworkCfg }
func (c *Config) Filler() FillerConfig     { return c.FillerCfg }
func (c *Config) Profiles() ProfilesConfig { return c.ProfilesCfg }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetBrowserHeadless(b bool) { c.BrowserCfg.Headless = b }
func (c *Config) SetBrowserKeepOpen(b bool) { c.BrowserCfg.KeepOpen = b }
func (c *Config) SetFillerMode(m string)    { c.FillerCfg.Mode = m }
func (c *Config) SetFillerDryRun(b bool)    { c.FillerCfg.DryRun = b }

// LoggerConfig controls the global zap logger setup.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// BrowserConfig holds settings for the headless browser instance.
type BrowserConfig struct {
	Headless        bool     `mapstructure:"headless" yaml:"headless"`
	DisableCache    bool     `mapstructure:"disable_cache" yaml:"disable_cache"`
	IgnoreTLSErrors bool     `mapstructure:"ignore_tls_errors" yaml:"ignore_tls_errors"`
	UserDataDir     string   `mapstructure:"user_data_dir" yaml:"user_data_dir"`
	Args            []string `mapstructure:"args" yaml:"args"`
	// KeepOpen leaves the browser window up after a fill pass so the result
	// can be inspected. Only meaningful with headless disabled.
	KeepOpen bool `mapstructure:"keep_open" yaml:"keep_open"`
}

// NetworkConfig tunes navigation and settling behavior.
type NetworkConfig struct {
	NavigationTimeout time.Duration `mapstructure:"navigation_timeout" yaml:"navigation_timeout"`
	PostLoadWait      time.Duration `mapstructure:"post_load_wait" yaml:"post_load_wait"`
}

// FillerConfig tunes the fill pipeline.
type FillerConfig struct {
	// Mode selects the value source: "random" or "profile".
	Mode string `mapstructure:"mode" yaml:"mode"`
	// DryRun stops the pass after planning; nothing is written to the page.
	DryRun bool `mapstructure:"dry_run" yaml:"dry_run"`
	// MaxFields caps how many fields one pass will attempt. 0 means no cap.
	MaxFields int `mapstructure:"max_fields" yaml:"max_fields"`
	// WritesPerSecond paces injection so reactive frameworks settle between
	// synthetic events. 0 disables pacing.
	WritesPerSecond float64 `mapstructure:"writes_per_second" yaml:"writes_per_second"`
	// AriaSettleMs is the fire-and-forget delay before re-reading
	// aria-checked after a simulated click, for diagnostics only.
	AriaSettleMs int `mapstructure:"aria_settle_ms" yaml:"aria_settle_ms"`
}

// ProfilesConfig locates the profile store.
type ProfilesConfig struct {
	// Path to the SQLite database file. Supports ~ expansion.
	Path string `mapstructure:"path" yaml:"path"`
}

// Validate checks the configuration for values that would make a run
// impossible or meaningless.
func (c *Config) Validate() error {
	switch c.FillerCfg.Mode {
	case "", "random", "profile":
	default:
		return fmt.Errorf("filler.mode must be \"random\" or \"profile\", got %q", c.FillerCfg.Mode)
	}
	if c.FillerCfg.MaxFields < 0 {
		return fmt.Errorf("filler.max_fields must not be negative")
	}
	if c.FillerCfg.WritesPerSecond < 0 {
		return fmt.Errorf("filler.writes_per_second must not be negative")
	}
	if c.NetworkCfg.NavigationTimeout <= 0 {
		return fmt.Errorf("network.navigation_timeout must be a positive duration")
	}
	if c.NetworkCfg.PostLoadWait < 0 {
		return fmt.Errorf("network.post_load_wait must not be negative")
	}
	if c.ProfilesCfg.Path == "" {
		return fmt.Errorf("profiles.path must not be empty")
	}
	return nil
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "formpilot")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 50)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 14)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "red")

	// -- Browser --
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.disable_cache", true)
	v.SetDefault("browser.ignore_tls_errors", false)
	v.SetDefault("browser.keep_open", false)

	// -- Network --
	v.SetDefault("network.navigation_timeout", "60s")
	v.SetDefault("network.post_load_wait", "1500ms")

	// -- Filler --
	v.SetDefault("filler.mode", "random")
	v.SetDefault("filler.dry_run", false)
	v.SetDefault("filler.max_fields", 0)
	v.SetDefault("filler.writes_per_second", 8.0)
	v.SetDefault("filler.aria_settle_ms", 150)

	// -- Profiles --
	v.SetDefault("profiles.path", "~/.formpilot/profiles.db")
}
