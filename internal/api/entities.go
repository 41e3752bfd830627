// Copyright 2026 The OpenConsole Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import "time"

// Server-owned domain entities. The client never caches these beyond the
// lifetime of a view; every screen re-fetches on entry.

// Permission is a named capability over a resource/action pair.
type Permission struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Resource    string  `json:"resource"`
	Action      string  `json:"action"`
	Description *string `json:"description"`
}

// Role is a named permission set scoped to a tenant.
type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	TenantID    string       `json:"tenantId"`
	Permissions []Permission `json:"permissions"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// UserRole is the role shape embedded in a user record.
type UserRole struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// User is a managed user account.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	TenantID  *string    `json:"tenantId"`
	Roles     []UserRole `json:"roles"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Tenant is an isolated customer organization.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"isActive,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserProfile is the self-service profile attached to a user.
type UserProfile struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	CompanyName *string   `json:"companyName,omitempty"`
	Age         *int      `json:"age,omitempty"`
	MobileNo    *string   `json:"mobileNo,omitempty"`
	PhoneNo     *string   `json:"phoneNo,omitempty"`
	City        *string   `json:"city,omitempty"`
	Address     *string   `json:"address,omitempty"`
	WhatsappNo  *string   `json:"whatsappNo,omitempty"`
	DateOfBirth *string   `json:"dateOfBirth,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	Website     *string   `json:"website,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
