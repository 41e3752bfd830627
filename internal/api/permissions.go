package api

import (
	"context"

	"github.com/openconsole/openconsole/internal/transport"
)

// CreatePermissionInput creates a permission definition.
type CreatePermissionInput struct {
	Name        string `json:"name"`
	Resource    string `json:"resource"`
	Action      string `json:"action"`
	Description string `json:"description,omitempty"`
}

// PermissionRepository wraps the /permissions endpoints.
type PermissionRepository struct {
	client *transport.Client
}

// NewPermissionRepository creates the permission repository
func NewPermissionRepository(client *transport.Client) *PermissionRepository {
	return &PermissionRepository{client: client}
}

// List retrieves all permission definitions.
func (r *PermissionRepository) List(ctx context.Context) ([]Permission, error) {
	env, err := r.client.Get(ctx, "/permissions")
	if err != nil {
		return nil, err
	}
	return listResults[Permission](env)
}

// Create creates a permission definition.
func (r *PermissionRepository) Create(ctx context.Context, input CreatePermissionInput) (*Permission, error) {
	env, err := r.client.Post(ctx, "/permissions", input)
	if err != nil {
		return nil, err
	}
	permission, err := results[Permission](env)
	if err != nil {
		return nil, err
	}
	return &permission, nil
}
