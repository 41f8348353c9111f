package identity

import (
	"context"
	"fmt"

	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/logging"
	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/oci"
	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/toolsets/common"
)

// getCompartmentIDHandler handles the get_compartment_id tool
func getCompartmentIDHandler(client interface{}, params map[string]interface{}) (string, error) {
	ociClient, err := common.ValidateOCIClient(client)
	if err != nil {
		return "", err
	}

	compartmentID, err := ociClient.CompartmentID()
	if err != nil {
		logging.Error("Error getting compartment ID: %v", err)
		return "", err
	}

	return compartmentID, nil
}

// compartmentToMap converts a compartment to a string map for output formatting
func compartmentToMap(c oci.Compartment) map[string]string {
	return map[string]string{
		"id":          common.StringValue(c.Id),
		"name":        common.StringValue(c.Name),
		"description": common.StringValue(c.Description),
		"state":       fmt.Sprintf("%v", c.LifecycleState),
		"created":     common.FormatTime(c.TimeCreated),
	}
}

// compartmentListHandler handles the compartment_list tool. Without an
// explicit parent it lists under the execution identity's compartment.
func compartmentListHandler(client interface{}, params map[string]interface{}) (string, error) {
	ociClient, err := common.ValidateOCIClient(client)
	if err != nil {
		return "", err
	}

	format := common.ExtractFormat(params)
	if err := common.ValidateFormat(format); err != nil {
		return "", err
	}

	compartmentID := common.ExtractOptionalString(params, common.ParamCompartmentID, "")
	if compartmentID == "" {
		compartmentID, err = ociClient.CompartmentID()
		if err != nil {
			logging.Error("Error getting compartment ID: %v", err)
			return "", err
		}
	}

	compartments, err := ociClient.ListCompartments(context.Background(), compartmentID)
	if err != nil {
		logging.Error("Error getting compartment list: %v", err)
		return "", err
	}

	compartmentMaps := make([]map[string]string, len(compartments))
	for i, c := range compartments {
		compartmentMaps[i] = compartmentToMap(c)
	}

	switch format {
	case common.FormatYAML:
		return common.FormatAsYAML(compartmentMaps)
	case common.FormatTable:
		return common.FormatAsTable(compartmentMaps, []string{"id", "name", "description", "state", "created"}), nil
	default:
		return common.FormatAsJSON(compartmentMaps)
	}
}
