package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Authentication modes for the OCI SDK configuration provider
const (
	AuthResourcePrincipal = "resource_principal"
	AuthInstancePrincipal = "instance_principal"
	AuthConfigFile        = "config_file"
)

// StaticConfig represents the static configuration for the OCI Data Science MCP Server
type StaticConfig struct {
	// Server configuration
	Port int    `mapstructure:"port" yaml:"port"`
	Host string `mapstructure:"host" yaml:"host"`

	// Logging configuration
	LogLevel int `mapstructure:"log_level" yaml:"log_level"`

	// SSE configuration
	SSEBaseURL string `mapstructure:"sse_base_url" yaml:"sse_base_url"`

	// OCI configuration
	AuthMode      string `mapstructure:"auth_mode" yaml:"auth_mode"`
	Profile       string `mapstructure:"profile" yaml:"profile"`
	Region        string `mapstructure:"region" yaml:"region"`
	CompartmentID string `mapstructure:"compartment_id" yaml:"compartment_id"`

	// Security configuration
	ReadOnly bool `mapstructure:"read_only" yaml:"read_only"`

	// Output configuration
	ListOutput string `mapstructure:"list_output" yaml:"list_output"`

	// Toolset configuration
	Toolsets      []string `mapstructure:"toolsets" yaml:"toolsets"`
	EnabledTools  []string `mapstructure:"enabled_tools" yaml:"enabled_tools"`
	DisabledTools []string `mapstructure:"disabled_tools" yaml:"disabled_tools"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *StaticConfig {
	return &StaticConfig{
		Port:       6060, // 0 means stdio mode
		Host:       "0.0.0.0",
		LogLevel:   0,
		AuthMode:   AuthResourcePrincipal,
		ListOutput: "json",
		Toolsets:   []string{"identity", "datascience"},
		ReadOnly:   false,
	}
}

// Load builds the effective configuration. Precedence from highest to
// lowest: explicitly set flags, OCI_DS_MCP_* environment variables, the
// optional YAML config file, defaults.
func Load(configPath string, flags *pflag.FlagSet) (*StaticConfig, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetDefault("port", defaults.Port)
	v.SetDefault("host", defaults.Host)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("sse_base_url", defaults.SSEBaseURL)
	v.SetDefault("auth_mode", defaults.AuthMode)
	v.SetDefault("profile", defaults.Profile)
	v.SetDefault("region", defaults.Region)
	v.SetDefault("compartment_id", defaults.CompartmentID)
	v.SetDefault("read_only", defaults.ReadOnly)
	v.SetDefault("list_output", defaults.ListOutput)
	v.SetDefault("toolsets", defaults.Toolsets)
	v.SetDefault("enabled_tools", defaults.EnabledTools)
	v.SetDefault("disabled_tools", defaults.DisabledTools)

	v.SetEnvPrefix("OCI_DS_MCP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindings := map[string]string{
			"port":           "port",
			"host":           "host",
			"log_level":      "log-level",
			"sse_base_url":   "sse-base-url",
			"auth_mode":      "auth-mode",
			"profile":        "profile",
			"region":         "region",
			"compartment_id": "compartment-id",
			"read_only":      "read-only",
			"list_output":    "list-output",
			"toolsets":       "toolsets",
			"enabled_tools":  "enabled-tools",
			"disabled_tools": "disabled-tools",
		}
		for key, flagName := range bindings {
			if flag := flags.Lookup(flagName); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", flagName, err)
				}
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	config := &StaticConfig{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *StaticConfig) Validate() error {
	// Validate port
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", c.Port)
	}

	// Validate log level
	if c.LogLevel < 0 || c.LogLevel > 9 {
		return fmt.Errorf("log_level must be between 0 and 9, got %d", c.LogLevel)
	}

	// Validate list output
	validOutputs := map[string]bool{
		"table": true,
		"yaml":  true,
		"json":  true,
	}
	if !validOutputs[strings.ToLower(c.ListOutput)] {
		return fmt.Errorf("list_output must be one of: table, yaml, json, got %s", c.ListOutput)
	}

	// Validate auth mode
	switch c.AuthMode {
	case AuthResourcePrincipal, AuthInstancePrincipal, AuthConfigFile:
	default:
		return fmt.Errorf("auth_mode must be one of: %s, %s, %s, got %s",
			AuthResourcePrincipal, AuthInstancePrincipal, AuthConfigFile, c.AuthMode)
	}

	// A profile only makes sense when reading an OCI config file
	if c.Profile != "" && c.AuthMode != AuthConfigFile {
		return fmt.Errorf("profile requires auth_mode %s, got %s", AuthConfigFile, c.AuthMode)
	}

	return nil
}

// GetListenAddress returns the host:port the HTTP server should bind
func (c *StaticConfig) GetListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
