package datascience

import (
	"context"
	"strconv"

	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/logging"
	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/toolsets/common"
)

// modelCountHandler handles the model_count tool
func modelCountHandler(client interface{}, params map[string]interface{}) (string, error) {
	ociClient, err := common.ValidateOCIClient(client)
	if err != nil {
		return "", err
	}

	compartmentID, err := common.ExtractRequiredString(params, common.ParamCompartmentID)
	if err != nil {
		return "", err
	}

	models, err := ociClient.ListModels(context.Background(), compartmentID)
	if err != nil {
		logging.Error("Error getting model count: %v", err)
		return "", err
	}

	return strconv.Itoa(len(models)), nil
}
