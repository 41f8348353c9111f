package identity

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/api"
	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/toolsets/common"
)

// Toolset implements the identity toolset
type Toolset struct{}

var _ api.Toolset = (*Toolset)(nil)

// GetName returns the name of the toolset
func (t *Toolset) GetName() string {
	return "identity"
}

// GetDescription returns the description of the toolset
func (t *Toolset) GetDescription() string {
	return "Compartment discovery for the current execution identity"
}

// GetTools returns the tools provided by this toolset
func (t *Toolset) GetTools(client interface{}) []api.ServerTool {
	return []api.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "get_compartment_id",
				Description: "Get the compartment OCID for use with other tools. Important - use this tool to initialise the compartment_id variable",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			Annotations: api.ToolAnnotations{
				ReadOnlyHint: common.BoolPtr(true),
				RequiresOCI:  common.BoolPtr(true),
			},
			Handler: getCompartmentIDHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "compartment_list",
				Description: "List child compartments of a compartment",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"compartment_id": map[string]any{
							"type":        "string",
							"description": "Parent compartment OCID (defaults to the compartment of the execution identity)",
							"default":     "",
						},
						"format": map[string]any{
							"type":        "string",
							"description": "Output format: json, yaml, or table",
							"enum":        []string{"json", "yaml", "table"},
							"default":     "json",
						},
					},
				},
			},
			Annotations: api.ToolAnnotations{
				ReadOnlyHint: common.BoolPtr(true),
				RequiresOCI:  common.BoolPtr(true),
			},
			Handler: compartmentListHandler,
		},
	}
}
