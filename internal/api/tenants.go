package api

import (
	"context"

	"github.com/openconsole/openconsole/internal/transport"
)

// CreateTenantInput creates a tenant.
type CreateTenantInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// UpdateTenantInput updates a tenant. Nil fields are left unchanged.
type UpdateTenantInput struct {
	Name     *string `json:"name,omitempty"`
	Slug     *string `json:"slug,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// TenantRepository wraps the /tenants endpoints. Only a super admin can
// reach them; the server rejects everyone else.
type TenantRepository struct {
	client *transport.Client
}

// NewTenantRepository creates the tenant repository
func NewTenantRepository(client *transport.Client) *TenantRepository {
	return &TenantRepository{client: client}
}

// List retrieves tenants.
func (r *TenantRepository) List(ctx context.Context, params *ListParams) ([]Tenant, error) {
	path := "/tenants"
	if q := params.encode(); q != "" {
		path += "?" + q
	}
	env, err := r.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return listResults[Tenant](env)
}

// Get retrieves one tenant by ID.
func (r *TenantRepository) Get(ctx context.Context, id string) (*Tenant, error) {
	env, err := r.client.Get(ctx, "/tenants/"+id)
	if err != nil {
		return nil, err
	}
	tenant, err := results[Tenant](env)
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Create creates a tenant.
func (r *TenantRepository) Create(ctx context.Context, input CreateTenantInput) (*Tenant, error) {
	env, err := r.client.Post(ctx, "/tenants", input)
	if err != nil {
		return nil, err
	}
	tenant, err := results[Tenant](env)
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Update updates a tenant.
func (r *TenantRepository) Update(ctx context.Context, id string, input UpdateTenantInput) (*Tenant, error) {
	env, err := r.client.Put(ctx, "/tenants/"+id, input)
	if err != nil {
		return nil, err
	}
	tenant, err := results[Tenant](env)
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Delete deletes a tenant.
func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	env, err := r.client.Delete(ctx, "/tenants/"+id)
	if err != nil {
		return err
	}
	return confirm(env)
}
