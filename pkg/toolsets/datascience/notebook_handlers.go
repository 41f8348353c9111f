package datascience

import (
	"context"

	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/logging"
	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/toolsets/common"
)

// createNotebookSessionHandler handles the create_notebook_session tool.
// The compute shape and sizing are fixed server-side; callers only pick the
// project, compartment, and display name.
func createNotebookSessionHandler(client interface{}, params map[string]interface{}) (string, error) {
	if err := common.CheckWritable(params); err != nil {
		return "", err
	}

	ociClient, err := common.ValidateOCIClient(client)
	if err != nil {
		return "", err
	}

	projectID, err := common.ExtractRequiredString(params, common.ParamProjectID)
	if err != nil {
		return "", err
	}

	compartmentID, err := common.ExtractRequiredString(params, common.ParamCompartmentID)
	if err != nil {
		return "", err
	}

	displayName, err := common.ExtractRequiredString(params, common.ParamDisplayName)
	if err != nil {
		return "", err
	}

	format := common.ExtractFormat(params)
	if err := common.ValidateFormat(format); err != nil {
		return "", err
	}

	session, err := ociClient.CreateNotebookSession(context.Background(), projectID, compartmentID, displayName)
	if err != nil {
		logging.Error("Error creating notebook session: %v", err)
		return "", err
	}

	result := map[string]interface{}{
		"notebook_session_url": common.StringValue(session.NotebookSessionUrl),
		"display_name":         common.StringValue(session.DisplayName),
		"time_created":         common.FormatTime(session.TimeCreated),
		"session_details":      session.NotebookSessionConfigDetails,
	}

	if format == common.FormatYAML {
		return common.FormatAsYAML(result)
	}
	return common.FormatAsJSON(result)
}
