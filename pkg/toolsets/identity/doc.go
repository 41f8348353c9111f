// Package identity provides compartment discovery tools.
// It implements MCP tools for:
//   - Resolving the compartment OCID of the current execution identity
//   - Listing child compartments
//
// Agents are expected to call get_compartment_id first and feed the result
// into the data science tools.
package identity
