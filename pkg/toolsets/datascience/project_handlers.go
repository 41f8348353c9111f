package datascience

import (
	"context"
	"fmt"
	"strconv"

	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/logging"
	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/oci"
	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/toolsets/common"
)

// projectToMap converts a project listing entry to the original tool's
// result keys
func projectToMap(p oci.ProjectSummary) map[string]string {
	return map[string]string{
		"project_id":          common.StringValue(p.Id),
		"project_name":        common.StringValue(p.DisplayName),
		"project_description": common.StringValue(p.Description),
	}
}

// projectCountHandler handles the project_count tool
func projectCountHandler(client interface{}, params map[string]interface{}) (string, error) {
	ociClient, err := common.ValidateOCIClient(client)
	if err != nil {
		return "", err
	}

	compartmentID, err := common.ExtractRequiredString(params, common.ParamCompartmentID)
	if err != nil {
		return "", err
	}

	projects, err := ociClient.ListProjects(context.Background(), compartmentID)
	if err != nil {
		logging.Error("Error getting project count: %v", err)
		return "", err
	}

	return strconv.Itoa(len(projects)), nil
}

// listProjectsHandler handles the list_projects tool. Projects are returned
// in the order the service lists them.
func listProjectsHandler(client interface{}, params map[string]interface{}) (string, error) {
	ociClient, err := common.ValidateOCIClient(client)
	if err != nil {
		return "", err
	}

	compartmentID, err := common.ExtractRequiredString(params, common.ParamCompartmentID)
	if err != nil {
		return "", err
	}

	format := common.ExtractFormat(params)
	if err := common.ValidateFormat(format); err != nil {
		return "", err
	}

	projects, err := ociClient.ListProjects(context.Background(), compartmentID)
	if err != nil {
		logging.Error("Error getting project list: %v", err)
		return "", err
	}

	projectMaps := make([]map[string]string, len(projects))
	for i, p := range projects {
		projectMaps[i] = projectToMap(p)
	}

	switch format {
	case common.FormatYAML:
		return common.FormatAsYAML(projectMaps)
	case common.FormatTable:
		return common.FormatAsTable(projectMaps, []string{"project_id", "project_name", "project_description"}), nil
	default:
		return common.FormatAsJSON(projectMaps)
	}
}

// createProjectHandler handles the create_project tool
func createProjectHandler(client interface{}, params map[string]interface{}) (string, error) {
	if err := common.CheckWritable(params); err != nil {
		return "", err
	}

	ociClient, err := common.ValidateOCIClient(client)
	if err != nil {
		return "", err
	}

	name, err := common.ExtractRequiredString(params, common.ParamProjectName)
	if err != nil {
		return "", err
	}

	description, err := common.ExtractRequiredString(params, common.ParamProjectDescription)
	if err != nil {
		return "", err
	}

	compartmentID, err := common.ExtractRequiredString(params, common.ParamCompartmentID)
	if err != nil {
		return "", err
	}

	format := common.ExtractFormat(params)
	if err := common.ValidateFormat(format); err != nil {
		return "", err
	}

	project, err := ociClient.CreateProject(context.Background(), name, description, compartmentID)
	if err != nil {
		logging.Error("Error creating project: %v", err)
		return "", err
	}

	result := map[string]interface{}{
		"project_id":          common.StringValue(project.Id),
		"project_name":        common.StringValue(project.DisplayName),
		"project_description": common.StringValue(project.Description),
		"compartment_id":      common.StringValue(project.CompartmentId),
		"time_created":        common.FormatTime(project.TimeCreated),
		"lifecycle_state":     fmt.Sprintf("%v", project.LifecycleState),
	}

	if format == common.FormatYAML {
		return common.FormatAsYAML(result)
	}
	return common.FormatAsJSON(result)
}
