package api

import (
	"context"

	"github.com/openconsole/openconsole/internal/transport"
)

// UserProfileInput creates or updates the profile attached to a user.
type UserProfileInput struct {
	CompanyName *string `json:"companyName,omitempty"`
	Age         *int    `json:"age,omitempty"`
	MobileNo    *string `json:"mobileNo,omitempty"`
	PhoneNo     *string `json:"phoneNo,omitempty"`
	City        *string `json:"city,omitempty"`
	Address     *string `json:"address,omitempty"`
	WhatsappNo  *string `json:"whatsappNo,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Website     *string `json:"website,omitempty"`
}

// UserProfileRepository wraps the /user-profiles endpoints.
type UserProfileRepository struct {
	client *transport.Client
}

// NewUserProfileRepository creates the user-profile repository
func NewUserProfileRepository(client *transport.Client) *UserProfileRepository {
	return &UserProfileRepository{client: client}
}

// Get retrieves the profile for a user. A user without a profile yields
// nil rather than an error; the profile view offers creation instead.
func (r *UserProfileRepository) Get(ctx context.Context, userID string) (*UserProfile, error) {
	env, err := r.client.Get(ctx, "/user-profiles/"+userID)
	if err != nil {
		return nil, err
	}
	if !env.Success || !env.HasResults() {
		return nil, nil
	}
	profile, err := results[UserProfile](env)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Create creates the profile for a user.
func (r *UserProfileRepository) Create(ctx context.Context, userID string, input UserProfileInput) (*UserProfile, error) {
	env, err := r.client.Post(ctx, "/user-profiles/"+userID, input)
	if err != nil {
		return nil, err
	}
	profile, err := results[UserProfile](env)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update updates the profile for a user.
func (r *UserProfileRepository) Update(ctx context.Context, userID string, input UserProfileInput) (*UserProfile, error) {
	env, err := r.client.Put(ctx, "/user-profiles/"+userID, input)
	if err != nil {
		return nil, err
	}
	profile, err := results[UserProfile](env)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
