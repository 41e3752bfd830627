package transport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_WithBodyFlattensToObject(t *testing.T) {
	type input struct {
		Email string `json:"email"`
		Count int    `json:"count"`
	}

	req, err := NewRequest(http.MethodPost, "/users").WithBody(input{Email: "a@b.c", Count: 2})
	require.NoError(t, err)

	assert.True(t, req.HasBody())
	assert.Equal(t, "a@b.c", req.BodyField("email"))

	req.SetBodyField("tenantId", "t1")
	data, err := req.encodeBody()
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.c","count":2,"tenantId":"t1"}`, string(data))
}

func TestRequest_WithBodyRejectsNonObject(t *testing.T) {
	_, err := NewRequest(http.MethodPost, "/users").WithBody([]string{"not", "an", "object"})
	assert.Error(t, err)
}

func TestRequest_SetBodyFieldWithoutBody(t *testing.T) {
	req := NewRequest(http.MethodDelete, "/users/u1")
	req.SetBodyField("tenantId", "t1")

	assert.False(t, req.HasBody())
	data, err := req.encodeBody()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestEnvelope_HasResults(t *testing.T) {
	assert.False(t, (&Envelope{}).HasResults())
	assert.False(t, (&Envelope{Results: []byte("null")}).HasResults())
	assert.True(t, (&Envelope{Results: []byte(`[]`)}).HasResults())
	assert.True(t, (&Envelope{Results: []byte(`{"id":"1"}`)}).HasResults())
}

func TestAPIError_Messages(t *testing.T) {
	withErrs := &APIError{Message: "first", Errs: []string{"first", "second"}}
	assert.Equal(t, []string{"first", "second"}, withErrs.Messages())

	bare := &APIError{Message: "only"}
	assert.Equal(t, []string{"only"}, bare.Messages())
}
