package common

import (
	"time"

	sdkcommon "github.com/oracle/oci-go-sdk/v65/common"

	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/output"
)

// FormatAsTable formats data as a table with headers
func FormatAsTable(data []map[string]string, headers []string) string {
	formatter := output.NewFormatter()
	return formatter.FormatTableWithHeaders(data, headers)
}

// FormatAsYAML formats data as YAML
func FormatAsYAML(data interface{}) (string, error) {
	formatter := output.NewFormatter()
	return formatter.FormatYAML(data)
}

// FormatAsJSON formats data as JSON
func FormatAsJSON(data interface{}) (string, error) {
	formatter := output.NewFormatter()
	return formatter.FormatJSON(data)
}

// BoolPtr returns a pointer to a boolean value
func BoolPtr(b bool) *bool {
	return &b
}

// StringValue dereferences an SDK string pointer, returning "" for nil
func StringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// FormatTime renders an SDK timestamp as RFC 3339, or "-" when unset
func FormatTime(t *sdkcommon.SDKTime) string {
	if t == nil {
		return "-"
	}
	return t.Time.Format(time.RFC3339)
}
