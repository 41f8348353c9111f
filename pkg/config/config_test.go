package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Port != 6060 {
		t.Errorf("Expected Port to be 6060, got %d", config.Port)
	}

	if config.Host != "0.0.0.0" {
		t.Errorf("Expected Host to be '0.0.0.0', got '%s'", config.Host)
	}

	if config.LogLevel != 0 {
		t.Errorf("Expected LogLevel to be 0, got %d", config.LogLevel)
	}

	if config.AuthMode != AuthResourcePrincipal {
		t.Errorf("Expected AuthMode to be '%s', got '%s'", AuthResourcePrincipal, config.AuthMode)
	}

	if config.ListOutput != "json" {
		t.Errorf("Expected ListOutput to be 'json', got '%s'", config.ListOutput)
	}

	expectedToolsets := []string{"identity", "datascience"}
	if len(config.Toolsets) != len(expectedToolsets) {
		t.Fatalf("Expected %d default toolsets, got %d", len(expectedToolsets), len(config.Toolsets))
	}
	for i, toolset := range expectedToolsets {
		if config.Toolsets[i] != toolset {
			t.Errorf("Expected toolsets[%d] to be '%s', got '%s'", i, toolset, config.Toolsets[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *StaticConfig
		wantErr bool
	}{
		{
			name:    "valid default config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "valid stdio port",
			config: &StaticConfig{
				Port:       0,
				AuthMode:   AuthResourcePrincipal,
				ListOutput: "json",
			},
			wantErr: false,
		},
		{
			name: "invalid port negative",
			config: &StaticConfig{
				Port:       -1,
				AuthMode:   AuthResourcePrincipal,
				ListOutput: "json",
			},
			wantErr: true,
		},
		{
			name: "invalid port too high",
			config: &StaticConfig{
				Port:       65536,
				AuthMode:   AuthResourcePrincipal,
				ListOutput: "json",
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: &StaticConfig{
				Port:       6060,
				LogLevel:   10,
				AuthMode:   AuthResourcePrincipal,
				ListOutput: "json",
			},
			wantErr: true,
		},
		{
			name: "invalid list output",
			config: &StaticConfig{
				Port:       6060,
				AuthMode:   AuthResourcePrincipal,
				ListOutput: "xml",
			},
			wantErr: true,
		},
		{
			name: "invalid auth mode",
			config: &StaticConfig{
				Port:       6060,
				AuthMode:   "api_key",
				ListOutput: "json",
			},
			wantErr: true,
		},
		{
			name: "config file auth with profile",
			config: &StaticConfig{
				Port:       6060,
				AuthMode:   AuthConfigFile,
				Profile:    "DEFAULT",
				ListOutput: "json",
			},
			wantErr: false,
		},
		{
			name: "profile without config file auth",
			config: &StaticConfig{
				Port:       6060,
				AuthMode:   AuthInstancePrincipal,
				Profile:    "DEFAULT",
				ListOutput: "json",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	config, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Port != 6060 {
		t.Errorf("Expected default port 6060, got %d", config.Port)
	}

	if config.AuthMode != AuthResourcePrincipal {
		t.Errorf("Expected default auth mode '%s', got '%s'", AuthResourcePrincipal, config.AuthMode)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte("port: 9090\nauth_mode: config_file\nprofile: DATASCIENCE\nlist_output: yaml\n")
	if err := os.WriteFile(configPath, content, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	config, err := Load(configPath, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Port != 9090 {
		t.Errorf("Expected port 9090 from file, got %d", config.Port)
	}

	if config.AuthMode != AuthConfigFile {
		t.Errorf("Expected auth mode '%s' from file, got '%s'", AuthConfigFile, config.AuthMode)
	}

	if config.Profile != "DATASCIENCE" {
		t.Errorf("Expected profile 'DATASCIENCE' from file, got '%s'", config.Profile)
	}

	if config.ListOutput != "yaml" {
		t.Errorf("Expected list output 'yaml' from file, got '%s'", config.ListOutput)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("OCI_DS_MCP_COMPARTMENT_ID", "ocid1.compartment.oc1..aaaa")
	t.Setenv("OCI_DS_MCP_PORT", "7070")

	config, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.CompartmentID != "ocid1.compartment.oc1..aaaa" {
		t.Errorf("Expected compartment ID from env, got '%s'", config.CompartmentID)
	}

	if config.Port != 7070 {
		t.Errorf("Expected port 7070 from env, got %d", config.Port)
	}
}

func TestLoadFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("port: 9090\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 6060, "")
	if err := flags.Set("port", "8080"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}

	config, err := Load(configPath, flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Port != 8080 {
		t.Errorf("Expected explicit flag to win over config file, got %d", config.Port)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml", nil); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestGetListenAddress(t *testing.T) {
	config := &StaticConfig{Host: "127.0.0.1", Port: 6060}
	if addr := config.GetListenAddress(); addr != "127.0.0.1:6060" {
		t.Errorf("Expected '127.0.0.1:6060', got '%s'", addr)
	}
}
