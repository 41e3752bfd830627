package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconsole/openconsole/internal/transport"
)

func TestUserRepository_ListBareArray(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/users", func(w http.ResponseWriter, req *http.Request) {
		writeEnvelope(w, http.StatusOK, transport.Envelope{
			Success: true,
			Results: json.RawMessage(`[{"id":"u1","email":"a@b.c"},{"id":"u2","email":"d@e.f"}]`),
		})
	})

	client, _ := newTestPipeline(t, r)
	repo := NewUserRepository(client)

	users, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@b.c", users[0].Email)
}

func TestUserRepository_ListPaginated(t *testing.T) {
	var gotQuery string
	r := chi.NewRouter()
	r.Get("/users", func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.RawQuery
		writeEnvelope(w, http.StatusOK, transport.Envelope{
			Success: true,
			Results: json.RawMessage(`{"data":[{"id":"u3"}],"total":21,"page":2,"limit":10,"totalPages":3}`),
		})
	})

	client, _ := newTestPipeline(t, r)
	repo := NewUserRepository(client)

	users, err := repo.List(context.Background(), &ListParams{Page: 2, Limit: 10, SortBy: "email", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u3", users[0].ID)
	assert.Equal(t, "limit=10&page=2&sortBy=email&sortOrder=asc", gotQuery)
}

func TestUserRepository_GetNotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		writeEnvelope(w, http.StatusNotFound, transport.Envelope{
			Success:    false,
			Message:    "User not found",
			StatusCode: http.StatusNotFound,
		})
	})

	client, _ := newTestPipeline(t, r)
	repo := NewUserRepository(client)

	_, err := repo.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "User not found", transport.ErrorMessage(err))
	assert.Equal(t, http.StatusNotFound, transport.ErrorStatusCode(err))
}

func TestUserRepository_CreateAndDelete(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/users", func(w http.ResponseWriter, req *http.Request) {
		var input CreateUserInput
		require.NoError(t, json.NewDecoder(req.Body).Decode(&input))
		assert.Equal(t, []string{"role-1"}, input.RoleIDs)
		writeEnvelope(w, http.StatusOK, transport.Envelope{
			Success: true,
			Results: json.RawMessage(`{"id":"u9","email":"` + input.Email + `"}`),
		})
	})
	r.Delete("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		writeEnvelope(w, http.StatusOK, transport.Envelope{Success: true, Message: "User deleted"})
	})

	client, _ := newTestPipeline(t, r)
	repo := NewUserRepository(client)

	user, err := repo.Create(context.Background(), CreateUserInput{
		Email:    "new@example.com",
		Password: "secret",
		RoleIDs:  []string{"role-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "u9", user.ID)

	assert.NoError(t, repo.Delete(context.Background(), "u9"))
}

func TestUserRepository_UpdateSendsOnlyChangedFields(t *testing.T) {
	var got map[string]any
	r := chi.NewRouter()
	r.Put("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		writeEnvelope(w, http.StatusOK, transport.Envelope{
			Success: true,
			Results: json.RawMessage(`{"id":"u1"}`),
		})
	})

	client, _ := newTestPipeline(t, r)
	repo := NewUserRepository(client)

	first := "Ada"
	_, err := repo.Update(context.Background(), "u1", UpdateUserInput{FirstName: &first})
	require.NoError(t, err)

	assert.Equal(t, "Ada", got["firstName"])
	assert.NotContains(t, got, "email")
	assert.NotContains(t, got, "password")
}

func TestUserProfileRepository_GetMissingProfile(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/user-profiles/{id}", func(w http.ResponseWriter, req *http.Request) {
		// The server reports "no profile yet" as a successful call with no
		// payload.
		writeEnvelope(w, http.StatusOK, transport.Envelope{Success: false, Message: "Profile not found", StatusCode: http.StatusOK})
	})

	client, _ := newTestPipeline(t, r)
	repo := NewUserProfileRepository(client)

	profile, err := repo.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestUserProfileRepository_Get(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/user-profiles/{id}", func(w http.ResponseWriter, req *http.Request) {
		writeEnvelope(w, http.StatusOK, transport.Envelope{
			Success: true,
			Results: json.RawMessage(`{"id":"p1","userId":"u1","city":"Lisbon"}`),
		})
	})

	client, _ := newTestPipeline(t, r)
	repo := NewUserProfileRepository(client)

	profile, err := repo.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "u1", profile.UserID)
}
