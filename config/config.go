// Package config loads the process-wide logging configuration with viper.
//
// A configuration file is optional; every key can also be set through a
// MIRRORLOG_ environment variable (file.path becomes MIRRORLOG_FILE_PATH).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the process-wide logging configuration.
type Config struct {
	ProcessTag  string            `mapstructure:"processTag"`
	Platform    string            `mapstructure:"platform"` // auto, logcat, stderr, syslog, zap, none
	Clock       string            `mapstructure:"clock"`    // system, coarse
	File        FileConfig        `mapstructure:"file"`
	Diagnostics DiagnosticsConfig `mapstructure:"diagnostics"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

// FileConfig describes the optional mirrored file. At most one of Path and
// FD may be set; FD < 0 means none.
type FileConfig struct {
	Path    string `mapstructure:"path"`
	FD      int    `mapstructure:"fd"`
	Durable bool   `mapstructure:"durable"`
}

// Enabled reports whether a mirrored file is configured.
func (f FileConfig) Enabled() bool {
	return f.Path != "" || f.FD >= 0
}

// DiagnosticsConfig configures the zap logger that reports problems of the
// logging subsystem itself.
type DiagnosticsConfig struct {
	Level       string `mapstructure:"level"` // debug, info, warn, error, off
	Development bool   `mapstructure:"development"`
}

// MetricsConfig configures Prometheus exposure.
type MetricsConfig struct {
	Addr      string `mapstructure:"addr"`
	Namespace string `mapstructure:"namespace"`
}

var (
	validPlatforms = []string{"auto", "logcat", "stderr", "syslog", "zap", "none"}
	validClocks    = []string{"system", "coarse"}
)

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Platform: "auto",
		Clock:    "system",
		File:     FileConfig{FD: -1},
		Diagnostics: DiagnosticsConfig{
			Level: "warn",
		},
		Metrics: MetricsConfig{
			Namespace: "mirrorlog",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("processTag", d.ProcessTag)
	v.SetDefault("platform", d.Platform)
	v.SetDefault("clock", d.Clock)
	v.SetDefault("file.path", d.File.Path)
	v.SetDefault("file.fd", d.File.FD)
	v.SetDefault("file.durable", d.File.Durable)
	v.SetDefault("diagnostics.level", d.Diagnostics.Level)
	v.SetDefault("diagnostics.development", d.Diagnostics.Development)
	v.SetDefault("metrics.addr", d.Metrics.Addr)
	v.SetDefault("metrics.namespace", d.Metrics.Namespace)
}

// Load reads configFile (if not empty), applies MIRRORLOG_* environment
// overrides and validates the result.
func Load(configFile string) (*Config, error) {
	return LoadWith(configFile, nil)
}

// LoadWith is like Load but applies overrides last, keyed like the file
// ("file.path"). Command-line flags use it.
func LoadWith(configFile string, overrides map[string]interface{}) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("MIRRORLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for k, val := range overrides {
		v.Set(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.ProcessTag == "" {
		return fmt.Errorf("%w: processTag is required", ErrInvalid)
	}
	if !oneOf(c.Platform, validPlatforms) {
		return fmt.Errorf("%w: unknown platform %q", ErrInvalid, c.Platform)
	}
	if !oneOf(c.Clock, validClocks) {
		return fmt.Errorf("%w: unknown clock %q", ErrInvalid, c.Clock)
	}
	if c.File.Path != "" && c.File.FD >= 0 {
		return fmt.Errorf("%w: file.path and file.fd are mutually exclusive", ErrInvalid)
	}
	if _, err := parseDiagnosticsLevel(c.Diagnostics.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func oneOf(s string, allowed []string) bool {
	s = strings.ToLower(s)
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// BuildDiagnostics builds the zap logger for subsystem diagnostics. Level
// "off" yields a no-op logger.
func (d DiagnosticsConfig) BuildDiagnostics() (*zap.Logger, error) {
	level, err := parseDiagnosticsLevel(d.Level)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return zap.NewNop(), nil
	}

	var zc zap.Config
	if d.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(*level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func parseDiagnosticsLevel(s string) (*zapcore.Level, error) {
	if strings.EqualFold(s, "off") {
		return nil, nil
	}
	if s == "" {
		l := zapcore.WarnLevel
		return &l, nil
	}
	l, err := zapcore.ParseLevel(s)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
