package common

import "errors"

// Format constants
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Parameter name constants
const (
	ParamCompartmentID      = "compartment_id"
	ParamProjectID          = "project_id"
	ParamProjectName        = "project_name"
	ParamProjectDescription = "project_description"
	ParamDisplayName        = "display_name"
	ParamFormat             = "format"
	ParamReadOnly           = "readOnly"
)

// Error definitions
var (
	ErrOCINotConfigured = errors.New("OCI client not configured, check the server auth_mode and credentials")
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrMissingParameter = errors.New("missing required parameter")
	ErrReadOnlyMode     = errors.New("server is running in read-only mode")
)
