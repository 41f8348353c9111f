package datascience

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/api"
	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/toolsets/common"
)

// Toolset implements the OCI Data Science toolset
type Toolset struct{}

var _ api.Toolset = (*Toolset)(nil)

// GetName returns the name of the toolset
func (t *Toolset) GetName() string {
	return "datascience"
}

// GetDescription returns the description of the toolset
func (t *Toolset) GetDescription() string {
	return "OCI Data Science operations for managing projects, models, and notebook sessions"
}

// GetTools returns the tools provided by this toolset
func (t *Toolset) GetTools(client interface{}) []api.ServerTool {
	return []api.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "project_count",
				Description: "Get the number of OCI Data Science projects in a compartment",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"compartment_id": map[string]any{
							"type":        "string",
							"description": "OCI compartment OCID (use get_compartment_id to initialise it)",
						},
					},
					Required: []string{"compartment_id"},
				},
			},
			Annotations: api.ToolAnnotations{
				ReadOnlyHint: common.BoolPtr(true),
				RequiresOCI:  common.BoolPtr(true),
			},
			Handler: projectCountHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "list_projects",
				Description: "List OCI Data Science projects in a compartment by project name, ID, and description",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"compartment_id": map[string]any{
							"type":        "string",
							"description": "OCI compartment OCID",
						},
						"format": map[string]any{
							"type":        "string",
							"description": "Output format: json, yaml, or table",
							"enum":        []string{"json", "yaml", "table"},
							"default":     "json",
						},
					},
					Required: []string{"compartment_id"},
				},
			},
			Annotations: api.ToolAnnotations{
				ReadOnlyHint: common.BoolPtr(true),
				RequiresOCI:  common.BoolPtr(true),
			},
			Handler: listProjectsHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "create_project",
				Description: "Create a new OCI Data Science project with a name and description",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"project_name": map[string]any{
							"type":        "string",
							"description": "A name for the new project, for example 'Customer Churn Project'",
						},
						"project_description": map[string]any{
							"type":        "string",
							"description": "A description of the new project, for example 'Customer churn modelling using binary classification'",
						},
						"compartment_id": map[string]any{
							"type":        "string",
							"description": "OCI compartment OCID",
						},
						"format": map[string]any{
							"type":        "string",
							"description": "Output format: json or yaml",
							"enum":        []string{"json", "yaml"},
							"default":     "json",
						},
					},
					Required: []string{"project_name", "project_description", "compartment_id"},
				},
			},
			Annotations: api.ToolAnnotations{
				ReadOnlyHint:    common.BoolPtr(false),
				DestructiveHint: common.BoolPtr(false),
				RequiresOCI:     common.BoolPtr(true),
			},
			Handler: createProjectHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "model_count",
				Description: "Get the number of models saved to the OCI Data Science model catalog in a compartment",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"compartment_id": map[string]any{
							"type":        "string",
							"description": "OCI compartment OCID",
						},
					},
					Required: []string{"compartment_id"},
				},
			},
			Annotations: api.ToolAnnotations{
				ReadOnlyHint: common.BoolPtr(true),
				RequiresOCI:  common.BoolPtr(true),
			},
			Handler: modelCountHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "create_notebook_session",
				Description: "Create a managed notebook session in an OCI Data Science project. Share the returned notebook URL with the user, it is needed to access the session",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"project_id": map[string]any{
							"type":        "string",
							"description": "OCI Data Science project OCID",
						},
						"compartment_id": map[string]any{
							"type":        "string",
							"description": "OCI compartment OCID",
						},
						"display_name": map[string]any{
							"type":        "string",
							"description": "A meaningful name for the notebook session",
						},
						"format": map[string]any{
							"type":        "string",
							"description": "Output format: json or yaml",
							"enum":        []string{"json", "yaml"},
							"default":     "json",
						},
					},
					Required: []string{"project_id", "compartment_id", "display_name"},
				},
			},
			Annotations: api.ToolAnnotations{
				ReadOnlyHint:    common.BoolPtr(false),
				DestructiveHint: common.BoolPtr(false),
				RequiresOCI:     common.BoolPtr(true),
			},
			Handler: createNotebookSessionHandler,
		},
	}
}
