package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/config"
	serverhttp "github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/http"
	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/logging"
	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/mcp"
	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/version"
)

// IOStreams represents standard input, output, and error streams
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// NewMCPServer creates a new cobra command for the OCI Data Science MCP Server
func NewMCPServer(streams IOStreams) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "oci-datascience-mcp-server",
		Short: "OCI Data Science MCP Server - Model Context Protocol server for OCI Data Science",
		Long: `OCI Data Science MCP Server is a Model Context Protocol (MCP) server that lets
AI agents manage OCI Data Science projects, models, and notebook sessions
through tool calls.

This server can run in stdio mode for integration with MCP clients or serve
SSE and streamable HTTP transports for network access. Authentication is
delegated to the execution environment (resource principal by default).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			return runServer(cfg, streams)
		},
	}

	// Set output streams for the command
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	// Add flags; defaults live in config.DefaultConfig, viper merges the rest
	defaults := config.DefaultConfig()
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	cmd.Flags().Int("port", defaults.Port, "Port to listen on for HTTP mode (0 for stdio mode)")
	cmd.Flags().String("host", defaults.Host, "Network interface to bind in HTTP mode")
	cmd.Flags().Int("log-level", defaults.LogLevel, "Log level (0-9)")
	cmd.Flags().String("sse-base-url", defaults.SSEBaseURL, "Externally reachable base URL for the SSE transport")
	cmd.Flags().String("auth-mode", defaults.AuthMode, "OCI auth mode (resource_principal, instance_principal, config_file)")
	cmd.Flags().String("profile", defaults.Profile, "OCI config file profile (config_file auth mode only)")
	cmd.Flags().String("region", defaults.Region, "OCI region override")
	cmd.Flags().String("compartment-id", defaults.CompartmentID, "Default compartment OCID for tool calls that omit one")
	cmd.Flags().Bool("read-only", defaults.ReadOnly, "Refuse tools that create resources")
	cmd.Flags().String("list-output", defaults.ListOutput, "Default output format for tools (json, yaml, table)")
	cmd.Flags().StringSlice("toolsets", defaults.Toolsets, "Comma-separated list of toolsets to enable")
	cmd.Flags().StringSlice("enabled-tools", nil, "Comma-separated list of tools to enable")
	cmd.Flags().StringSlice("disabled-tools", nil, "Comma-separated list of tools to disable")

	// Add version command
	cmd.AddCommand(newVersionCommand(streams))

	return cmd
}

// runServer runs the MCP server with the given configuration
func runServer(cfg *config.StaticConfig, streams IOStreams) error {
	logging.Initialize(cfg.LogLevel)

	server, err := mcp.NewServer(mcp.Configuration{StaticConfig: cfg})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer server.Close()

	if cfg.Port == 0 {
		// Stdio mode
		fmt.Fprintf(streams.ErrOut, "Starting OCI Data Science MCP Server in stdio mode\n")
		fmt.Fprintf(streams.ErrOut, "Enabled tools: %v\n", server.GetEnabledTools())
		return server.ServeStdio()
	}

	// HTTP mode (SSE + streamable HTTP)
	fmt.Fprintf(streams.ErrOut, "Starting OCI Data Science MCP Server on %s\n", cfg.GetListenAddress())
	fmt.Fprintf(streams.ErrOut, "Enabled tools: %v\n", server.GetEnabledTools())
	return serverhttp.Serve(context.Background(), server, cfg)
}

// newVersionCommand creates the version command
func newVersionCommand(streams IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(streams.Out, "%s\n", version.GetVersionInfo())
		},
	}

	// Set output streams for the command
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	return cmd
}
