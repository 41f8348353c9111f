package oci

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/common/auth"
	"github.com/oracle/oci-go-sdk/v65/datascience"
	"github.com/oracle/oci-go-sdk/v65/identity"

	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/config"
)

// Fixed notebook session sizing. Intentionally not caller-configurable.
const (
	NotebookShape                 = "VM.Standard.E4.Flex"
	NotebookBlockStorageSizeInGBs = 50
	NotebookOcpus                 = float32(4)
	NotebookMemoryInGBs           = float32(16)
)

// Type aliases for compatibility with handler code
type (
	Project         = datascience.Project
	ProjectSummary  = datascience.ProjectSummary
	ModelSummary    = datascience.ModelSummary
	NotebookSession = datascience.NotebookSession
	Compartment     = identity.Compartment
)

// DataScienceAPI is the subset of the OCI Data Science service client used by this server
type DataScienceAPI interface {
	ListProjects(ctx context.Context, request datascience.ListProjectsRequest) (datascience.ListProjectsResponse, error)
	CreateProject(ctx context.Context, request datascience.CreateProjectRequest) (datascience.CreateProjectResponse, error)
	ListModels(ctx context.Context, request datascience.ListModelsRequest) (datascience.ListModelsResponse, error)
	CreateNotebookSession(ctx context.Context, request datascience.CreateNotebookSessionRequest) (datascience.CreateNotebookSessionResponse, error)
}

// IdentityAPI is the subset of the OCI Identity service client used by this server
type IdentityAPI interface {
	ListCompartments(ctx context.Context, request identity.ListCompartmentsRequest) (identity.ListCompartmentsResponse, error)
}

// ClaimAccess exposes the identity claims carried by a principal token
type ClaimAccess interface {
	GetClaim(key string) (interface{}, error)
}

// Client wraps the OCI service clients behind a single handle
type Client struct {
	ds         DataScienceAPI
	id         IdentityAPI
	provider   common.ConfigurationProvider
	claims     ClaimAccess
	configured bool
}

// NewClient creates a new OCI client from the static configuration.
// The configuration provider is resolved once here and reused for every call.
func NewClient(cfg *config.StaticConfig) (*Client, error) {
	provider, err := newConfigurationProvider(cfg)
	if err != nil {
		return &Client{}, err
	}

	dsClient, err := datascience.NewDataScienceClientWithConfigurationProvider(provider)
	if err != nil {
		return &Client{}, fmt.Errorf("failed to create data science client: %w", err)
	}

	idClient, err := identity.NewIdentityClientWithConfigurationProvider(provider)
	if err != nil {
		return &Client{}, fmt.Errorf("failed to create identity client: %w", err)
	}

	if cfg.Region != "" {
		dsClient.SetRegion(cfg.Region)
		idClient.SetRegion(cfg.Region)
	}

	c := &Client{
		ds:         dsClient,
		id:         idClient,
		provider:   provider,
		configured: true,
	}

	// Resource and instance principal providers carry token claims
	if claims, ok := provider.(ClaimAccess); ok {
		c.claims = claims
	}

	return c, nil
}

// NewClientWithAPIs creates a client backed by the given API implementations.
// Tests use this to substitute a simulated backend.
func NewClientWithAPIs(ds DataScienceAPI, id IdentityAPI, claims ClaimAccess) *Client {
	return &Client{
		ds:         ds,
		id:         id,
		claims:     claims,
		configured: true,
	}
}

// IsConfigured returns whether the client is properly configured
func (c *Client) IsConfigured() bool {
	return c.configured
}

// CompartmentID returns the compartment OCID bound to the execution identity.
// Principal tokens carry it as a claim; config file setups fall back to the
// tenancy OCID.
func (c *Client) CompartmentID() (string, error) {
	if !c.configured {
		return "", fmt.Errorf("OCI client not configured")
	}

	if c.claims != nil {
		value, err := c.claims.GetClaim(auth.CompartmentOCIDClaimKey)
		if err != nil {
			return "", fmt.Errorf("failed to read compartment claim: %w", err)
		}
		if id, ok := value.(string); ok && id != "" {
			return id, nil
		}
		return "", fmt.Errorf("principal token carries no %s claim", auth.CompartmentOCIDClaimKey)
	}

	if c.provider != nil {
		return c.provider.TenancyOCID()
	}

	return "", fmt.Errorf("no compartment source available")
}

// ListProjects returns all projects in a compartment, walking every result page
func (c *Client) ListProjects(ctx context.Context, compartmentID string) ([]ProjectSummary, error) {
	if !c.configured {
		return nil, fmt.Errorf("OCI client not configured")
	}

	var projects []ProjectSummary
	var page *string
	for {
		resp, err := c.ds.ListProjects(ctx, datascience.ListProjectsRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}
		projects = append(projects, resp.Items...)
		if resp.OpcNextPage == nil {
			break
		}
		page = resp.OpcNextPage
	}

	return projects, nil
}

// CreateProject creates a new data science project
func (c *Client) CreateProject(ctx context.Context, name, description, compartmentID string) (Project, error) {
	if !c.configured {
		return Project{}, fmt.Errorf("OCI client not configured")
	}

	resp, err := c.ds.CreateProject(ctx, datascience.CreateProjectRequest{
		CreateProjectDetails: datascience.CreateProjectDetails{
			DisplayName:   common.String(name),
			Description:   common.String(description),
			CompartmentId: common.String(compartmentID),
		},
	})
	if err != nil {
		return Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return resp.Project, nil
}

// ListModels returns all models in a compartment, walking every result page
func (c *Client) ListModels(ctx context.Context, compartmentID string) ([]ModelSummary, error) {
	if !c.configured {
		return nil, fmt.Errorf("OCI client not configured")
	}

	var models []ModelSummary
	var page *string
	for {
		resp, err := c.ds.ListModels(ctx, datascience.ListModelsRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		models = append(models, resp.Items...)
		if resp.OpcNextPage == nil {
			break
		}
		page = resp.OpcNextPage
	}

	return models, nil
}

// CreateNotebookSession provisions a managed notebook session with the fixed
// shape and sizing above
func (c *Client) CreateNotebookSession(ctx context.Context, projectID, compartmentID, displayName string) (NotebookSession, error) {
	if !c.configured {
		return NotebookSession{}, fmt.Errorf("OCI client not configured")
	}

	resp, err := c.ds.CreateNotebookSession(ctx, datascience.CreateNotebookSessionRequest{
		CreateNotebookSessionDetails: datascience.CreateNotebookSessionDetails{
			ProjectId:     common.String(projectID),
			CompartmentId: common.String(compartmentID),
			DisplayName:   common.String(displayName),
			NotebookSessionConfigDetails: &datascience.NotebookSessionConfigDetails{
				Shape:                 common.String(NotebookShape),
				BlockStorageSizeInGBs: common.Int(NotebookBlockStorageSizeInGBs),
				NotebookSessionShapeConfigDetails: &datascience.NotebookSessionShapeConfigDetails{
					Ocpus:       common.Float32(NotebookOcpus),
					MemoryInGBs: common.Float32(NotebookMemoryInGBs),
				},
			},
		},
	})
	if err != nil {
		return NotebookSession{}, fmt.Errorf("failed to create notebook session: %w", err)
	}

	return resp.NotebookSession, nil
}

// ListCompartments returns the child compartments of a compartment, walking
// every result page
func (c *Client) ListCompartments(ctx context.Context, compartmentID string) ([]Compartment, error) {
	if !c.configured {
		return nil, fmt.Errorf("OCI client not configured")
	}

	var compartments []Compartment
	var page *string
	for {
		resp, err := c.id.ListCompartments(ctx, identity.ListCompartmentsRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list compartments: %w", err)
		}
		compartments = append(compartments, resp.Items...)
		if resp.OpcNextPage == nil {
			break
		}
		page = resp.OpcNextPage
	}

	return compartments, nil
}
