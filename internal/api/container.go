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

import (
	"fmt"

	"github.com/openconsole/openconsole/internal/authz"
	"github.com/openconsole/openconsole/internal/config"
	"github.com/openconsole/openconsole/internal/nav"
	"github.com/openconsole/openconsole/internal/observability/metrics"
	"github.com/openconsole/openconsole/internal/session"
	"github.com/openconsole/openconsole/internal/store/jsonfile"
	"github.com/openconsole/openconsole/internal/tenantctx"
	"github.com/openconsole/openconsole/internal/transport"
)

// Container is the single composition point: stores, pipeline, evaluator,
// guards, and every repository, built exactly once. Tests substitute
// pieces by building their own container from fresh stores.
type Container struct {
	Session *session.Store
	Tenants *tenantctx.Store
	Client  *transport.Client
	Eval    *authz.Evaluator
	Guards  *nav.Guards

	Auth        *AuthRepository
	Users       *UserRepository
	Roles       *RoleRepository
	Permissions *PermissionRepository
	TenantAPI   *TenantRepository
	Profiles    *UserProfileRepository
}

// NewContainer wires the full client from configuration. The session and
// tenant snapshots hydrate before anything else runs.
func NewContainer(cfg *config.Config, navigator transport.Navigator, rec *metrics.Recorder) (*Container, error) {
	sess := session.NewStore(jsonfile.New(cfg.Storage.StateDir, "session"))
	tenants := tenantctx.NewStore(jsonfile.New(cfg.Storage.StateDir, "tenant"))

	client, err := transport.NewClient(transport.Options{
		BaseURL:           cfg.API.BaseURL(),
		Session:           sess,
		Tenants:           tenants,
		Navigator:         navigator,
		Metrics:           rec,
		Timeout:           cfg.API.Timeout,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build request pipeline: %w", err)
	}

	eval := authz.NewEvaluator(sess)

	return &Container{
		Session:     sess,
		Tenants:     tenants,
		Client:      client,
		Eval:        eval,
		Guards:      nav.NewGuards(sess, tenants, eval),
		Auth:        NewAuthRepository(client, sess),
		Users:       NewUserRepository(client),
		Roles:       NewRoleRepository(client),
		Permissions: NewPermissionRepository(client),
		TenantAPI:   NewTenantRepository(client),
		Profiles:    NewUserProfileRepository(client),
	}, nil
}
