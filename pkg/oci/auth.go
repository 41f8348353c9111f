package oci

import (
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/common/auth"

	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/config"
)

// newConfigurationProvider builds the immutable credential provider for the
// configured auth mode. It is resolved once at startup and shared by every
// service client.
func newConfigurationProvider(cfg *config.StaticConfig) (common.ConfigurationProvider, error) {
	switch cfg.AuthMode {
	case config.AuthResourcePrincipal:
		provider, err := auth.ResourcePrincipalConfigurationProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to create resource principal provider: %w", err)
		}
		return provider, nil
	case config.AuthInstancePrincipal:
		provider, err := auth.InstancePrincipalConfigurationProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to create instance principal provider: %w", err)
		}
		return provider, nil
	case config.AuthConfigFile:
		if cfg.Profile != "" {
			return common.CustomProfileConfigProvider("", cfg.Profile), nil
		}
		return common.DefaultConfigProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported auth mode: %s", cfg.AuthMode)
	}
}
