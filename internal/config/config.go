package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Lifecycle LifecycleConfig `mapstructure:"lifecycle"`
	Refresh   RefreshConfig   `mapstructure:"refresh"`
	Cron      CronConfig      `mapstructure:"cron"`
	Stream    StreamConfig    `mapstructure:"stream"`
	PaaS      PaaSConfig      `mapstructure:"paas"`
}

type AppConfig struct {
	Env         string `mapstructure:"env"`
	BackendName string `mapstructure:"backend_name"`
	Version     string `mapstructure:"version"`
}

type ServerConfig struct {
	HTTPAddr        string        `mapstructure:"http_addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type AnalysisConfig struct {
	// Strategy is "random" or "deterministic".
	Strategy string `mapstructure:"strategy"`
	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64 `mapstructure:"seed"`
}

type LifecycleConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	LiveTimeout time.Duration `mapstructure:"live_timeout"`
	Cooldown    time.Duration `mapstructure:"cooldown"`
}

type RefreshConfig struct {
	Count       int      `mapstructure:"count"`
	Tournaments []string `mapstructure:"tournaments"`
}

type CronConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Lifecycle   string `mapstructure:"lifecycle"`
	AutoRefresh string `mapstructure:"auto_refresh"`
}

type StreamConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Buffer       int           `mapstructure:"buffer"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type PaaSConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Agent   string        `mapstructure:"agent"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CS2")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.backend_name", "Go/Gin")
	v.SetDefault("app.version", "2.0.0")
	v.SetDefault("server.http_addr", ":5002")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)

	v.SetDefault("analysis.strategy", "random")
	v.SetDefault("analysis.seed", 0)

	v.SetDefault("lifecycle.enabled", true)
	v.SetDefault("lifecycle.live_timeout", "3h")
	v.SetDefault("lifecycle.cooldown", "30m")

	v.SetDefault("refresh.count", 3)

	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.lifecycle", "@every 1m")
	// Empty keeps auto refresh off; refresh stays an explicit POST.
	v.SetDefault("cron.auto_refresh", "")

	v.SetDefault("stream.enabled", true)
	v.SetDefault("stream.buffer", 16)
	v.SetDefault("stream.write_timeout", "5s")

	v.SetDefault("paas.base_url", "")
	v.SetDefault("paas.api_key", "")
	v.SetDefault("paas.agent", "cs2-analytics")
	v.SetDefault("paas.timeout", "10s")

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
