// Package config loads BookMesh runtime configuration from the environment.
// All settings have working defaults so a bare `bookmesh serve` starts a
// local server on the original port.
package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	// DefaultEnvPrefix is the prefix for all environment variables,
	// e.g. BOOKMESH_HTTP_ADDR.
	DefaultEnvPrefix = "BOOKMESH"

	// DefaultHTTPAddr matches the original server's port.
	DefaultHTTPAddr = ":5000"

	// DefaultCORSOrigin allows any origin, as the original middleware did.
	DefaultCORSOrigin = "*"
)

// DefaultConfig is the configuration used when no environment overrides are set.
var DefaultConfig = Config{
	HTTPAddr:           DefaultHTTPAddr,
	CORSAllowedOrigins: []string{DefaultCORSOrigin},
	LogLevel:           "info",
	LogFormat:          "json",
	MCPEnabled:         true,
}

// Config holds the process configuration for the server binary.
type Config struct {
	HTTPAddr           string   `json:"http_addr,omitempty"            mapstructure:"http_addr"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins,omitempty" mapstructure:"cors_allowed_origins"`
	LogLevel           string   `json:"log_level,omitempty"            mapstructure:"log_level"`
	LogFormat          string   `json:"log_format,omitempty"           mapstructure:"log_format"`
	MCPEnabled         bool     `json:"mcp_enabled,omitempty"          mapstructure:"mcp_enabled"`
}

// LoadConfig reads configuration from BOOKMESH_* environment variables,
// falling back to defaults for anything unset.
func LoadConfig() (*Config, error) {
	v := viper.NewWithOptions(
		viper.KeyDelimiter("."),
		viper.EnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_")),
	)

	v.SetEnvPrefix(DefaultEnvPrefix)
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	_ = v.BindEnv("http_addr")
	v.SetDefault("http_addr", DefaultHTTPAddr)

	_ = v.BindEnv("cors_allowed_origins")
	v.SetDefault("cors_allowed_origins", DefaultCORSOrigin)

	_ = v.BindEnv("log_level")
	v.SetDefault("log_level", DefaultConfig.LogLevel)

	_ = v.BindEnv("log_format")
	v.SetDefault("log_format", DefaultConfig.LogFormat)

	_ = v.BindEnv("mcp_enabled")
	v.SetDefault("mcp_enabled", DefaultConfig.MCPEnabled)

	// Load configuration into struct
	decodeHooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)

	config := &Config{}
	if err := v.Unmarshal(config, viper.DecodeHook(decodeHooks)); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return config, nil
}
