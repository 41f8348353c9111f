package common

import (
	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/oci"
)

// ValidateOCIClient validates and returns a configured OCI client
func ValidateOCIClient(client interface{}) (*oci.Client, error) {
	ociClient, ok := client.(*oci.Client)
	if !ok || ociClient == nil || !ociClient.IsConfigured() {
		return nil, ErrOCINotConfigured
	}
	return ociClient, nil
}
