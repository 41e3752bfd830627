package api

import (
	"context"

	"github.com/openconsole/openconsole/internal/transport"
)

// CreateUserInput creates a user account with role assignments.
type CreateUserInput struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	RoleIDs   []string `json:"roleIds"`
}

// UpdateUserInput updates a user account. Nil fields are left unchanged.
type UpdateUserInput struct {
	Email     *string  `json:"email,omitempty"`
	FirstName *string  `json:"firstName,omitempty"`
	LastName  *string  `json:"lastName,omitempty"`
	Password  *string  `json:"password,omitempty"`
	RoleIDs   []string `json:"roleIds,omitempty"`
}

// UserRepository wraps the /users endpoints.
type UserRepository struct {
	client *transport.Client
}

// NewUserRepository creates the user repository
func NewUserRepository(client *transport.Client) *UserRepository {
	return &UserRepository{client: client}
}

// List retrieves users, optionally paginated and sorted.
func (r *UserRepository) List(ctx context.Context, params *ListParams) ([]User, error) {
	path := "/users"
	if q := params.encode(); q != "" {
		path += "?" + q
	}
	env, err := r.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return listResults[User](env)
}

// Get retrieves one user by ID.
func (r *UserRepository) Get(ctx context.Context, id string) (*User, error) {
	env, err := r.client.Get(ctx, "/users/"+id)
	if err != nil {
		return nil, err
	}
	user, err := results[User](env)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a user.
func (r *UserRepository) Create(ctx context.Context, input CreateUserInput) (*User, error) {
	env, err := r.client.Post(ctx, "/users", input)
	if err != nil {
		return nil, err
	}
	user, err := results[User](env)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user.
func (r *UserRepository) Update(ctx context.Context, id string, input UpdateUserInput) (*User, error) {
	env, err := r.client.Put(ctx, "/users/"+id, input)
	if err != nil {
		return nil, err
	}
	user, err := results[User](env)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete deletes a user.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	env, err := r.client.Delete(ctx, "/users/"+id)
	if err != nil {
		return err
	}
	return confirm(env)
}
