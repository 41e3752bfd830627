package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconsole/openconsole/internal/transport"
)

func TestExtractList_BareArray(t *testing.T) {
	items := extractList[User](json.RawMessage(`[{"id":"u1","email":"a@b.c"},{"id":"u2","email":"d@e.f"}]`))
	require.Len(t, items, 2)
	assert.Equal(t, "u1", items[0].ID)
	assert.Equal(t, "u2", items[1].ID)
}

func TestExtractList_PaginatedObject(t *testing.T) {
	raw := json.RawMessage(`{"data":[{"id":"u1"}],"total":41,"page":2,"limit":20,"totalPages":3}`)
	items := extractList[User](raw)
	require.Len(t, items, 1)
	assert.Equal(t, "u1", items[0].ID)
}

func TestExtractList_UnknownShapeIsEmpty(t *testing.T) {
	assert.Empty(t, extractList[User](json.RawMessage(`{"unexpected":true}`)))
	assert.Empty(t, extractList[User](json.RawMessage(`"just a string"`)))
	assert.Empty(t, extractList[User](nil))
}

func TestResults_FailedEnvelope(t *testing.T) {
	env := &transport.Envelope{
		Success:    false,
		Message:    "User not found",
		StatusCode: http.StatusNotFound,
	}

	_, err := results[User](env)
	require.Error(t, err)
	assert.Equal(t, "User not found", transport.ErrorMessage(err))
	assert.Equal(t, http.StatusNotFound, transport.ErrorStatusCode(err))
}

func TestResults_SuccessWithoutPayload(t *testing.T) {
	env := &transport.Envelope{Success: true, StatusCode: http.StatusOK}
	_, err := results[User](env)
	assert.Error(t, err)
}

func TestConfirm(t *testing.T) {
	assert.NoError(t, confirm(&transport.Envelope{Success: true}))
	assert.Error(t, confirm(&transport.Envelope{Success: false, Message: "nope"}))
}

func TestListParams_Encode(t *testing.T) {
	var nilParams *ListParams
	assert.Empty(t, nilParams.encode())
	assert.Empty(t, (&ListParams{}).encode())

	full := &ListParams{Page: 2, Limit: 50, SortBy: "email", SortOrder: "desc"}
	assert.Equal(t, "limit=50&page=2&sortBy=email&sortOrder=desc", full.encode())
}
