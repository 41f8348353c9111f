// Package datascience provides the OCI Data Science toolset.
// It implements MCP tools for:
//   - Projects (count, list, create)
//   - Models (count)
//   - Notebook sessions (create, with a fixed compute shape)
//
// This toolset enables AI agents to manage data science resources in an
// OCI compartment through natural-language-triggered tool calls.
package datascience
