package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-api/internal/domain"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err    error
		kind   string
		status int
	}{
		{fmt.Errorf("%w: pet", domain.ErrNotFound), KindNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: email", domain.ErrConflict), KindConflict, http.StatusConflict},
		{domain.ErrInvalidInput, KindInvalidInput, http.StatusBadRequest},
		{domain.ErrNotAuthorized, KindNotAuthorized, http.StatusUnauthorized},
		{domain.ErrUnauthorized, KindUnauthorized, http.StatusUnauthorized},
		{fmt.Errorf("%w: cloudinary", domain.ErrUpstream), KindUpstreamFailure, http.StatusInternalServerError},
		{errors.New("socket closed"), KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		kind, status := Classify(tt.err)
		assert.Equal(t, tt.kind, kind, tt.err.Error())
		assert.Equal(t, tt.status, status, tt.err.Error())
	}
}

func TestWriteError_Envelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/all-pets/x", nil)
	WriteError(rec, req, fmt.Errorf("%w: pet", domain.ErrNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, KindNotFound, body.Error.Kind)
	assert.Equal(t, "not found: pet", body.Error.Message)
}

func TestWriteError_HidesInternalDetail(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	WriteError(rec, req, errors.New("dial tcp 10.0.0.3:27017: connection refused"))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, KindInternal, body.Error.Kind)
	assert.Equal(t, "internal error", body.Error.Message)
}

type signup struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"a@x.com","name":"A"}`))
		var in signup
		require.NoError(t, DecodeJSON(req, &in))
		assert.Equal(t, "a@x.com", in.Email)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(""))
		var in signup
		err := DecodeJSON(req, &in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":`))
		var in signup
		assert.ErrorIs(t, DecodeJSON(req, &in), domain.ErrInvalidInput)
	})

	t.Run("validation names json field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"nope"}`))
		var in signup
		err := DecodeJSON(req, &in)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "email failed on email")
	})
}

func TestDecodeOptionalJSON(t *testing.T) {
	t.Parallel()

	t.Run("absent body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/donations/1", nil)
		var in signup
		present, err := DecodeOptionalJSON(req, &in)
		require.NoError(t, err)
		assert.False(t, present)
	})

	t.Run("whitespace only", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/donations/1", strings.NewReader("  \n"))
		var in signup
		present, err := DecodeOptionalJSON(req, &in)
		require.NoError(t, err)
		assert.False(t, present)
	})

	t.Run("present and validated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/donations/1", strings.NewReader(`{"email":"bad"}`))
		var in signup
		present, err := DecodeOptionalJSON(req, &in)
		assert.True(t, present)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("too large", func(t *testing.T) {
		big := `{"name":"` + strings.Repeat("x", maxBodyBytes) + `"}`
		req := httptest.NewRequest(http.MethodDelete, "/donations/1", strings.NewReader(big))
		var in signup
		_, err := DecodeOptionalJSON(req, &in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestDecodeJSONFields(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/adoption-requests",
		strings.NewReader(`{"email":"a@x.com","message":"I have a garden","visits":2}`))
	var in signup
	fields, err := DecodeJSONFields(req, &in)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", in.Email)
	assert.Len(t, fields, 3)
	assert.JSONEq(t, `"I have a garden"`, string(fields["message"]))

	req = httptest.NewRequest(http.MethodPost, "/adoption-requests", strings.NewReader(`[1,2]`))
	_, err = DecodeJSONFields(req, &in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
