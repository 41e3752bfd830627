package api

import (
	"context"

	"github.com/openconsole/openconsole/internal/transport"
)

// CreateRoleInput creates a role with permission assignments.
type CreateRoleInput struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	PermissionIDs []string `json:"permissionIds"`
}

// UpdateRoleInput updates a role. Nil fields are left unchanged.
type UpdateRoleInput struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	PermissionIDs []string `json:"permissionIds,omitempty"`
}

// RoleRepository wraps the /roles endpoints.
type RoleRepository struct {
	client *transport.Client
}

// NewRoleRepository creates the role repository
func NewRoleRepository(client *transport.Client) *RoleRepository {
	return &RoleRepository{client: client}
}

// List retrieves roles.
func (r *RoleRepository) List(ctx context.Context, params *ListParams) ([]Role, error) {
	path := "/roles"
	if q := params.encode(); q != "" {
		path += "?" + q
	}
	env, err := r.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return listResults[Role](env)
}

// Get retrieves one role by ID.
func (r *RoleRepository) Get(ctx context.Context, id string) (*Role, error) {
	env, err := r.client.Get(ctx, "/roles/"+id)
	if err != nil {
		return nil, err
	}
	role, err := results[Role](env)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// Create creates a role.
func (r *RoleRepository) Create(ctx context.Context, input CreateRoleInput) (*Role, error) {
	env, err := r.client.Post(ctx, "/roles", input)
	if err != nil {
		return nil, err
	}
	role, err := results[Role](env)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// Update updates a role.
func (r *RoleRepository) Update(ctx context.Context, id string, input UpdateRoleInput) (*Role, error) {
	env, err := r.client.Put(ctx, "/roles/"+id, input)
	if err != nil {
		return nil, err
	}
	role, err := results[Role](env)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// Delete deletes a role.
func (r *RoleRepository) Delete(ctx context.Context, id string) error {
	env, err := r.client.Delete(ctx, "/roles/"+id)
	if err != nil {
		return err
	}
	return confirm(env)
}
