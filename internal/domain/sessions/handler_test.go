package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-api/internal/ports/auth"
)

type stubIssuer struct {
	got auth.Identity
	err error
}

func (s *stubIssuer) Issue(_ context.Context, id auth.Identity) (auth.Token, error) {
	s.got = id
	if s.err != nil {
		return auth.Token{}, s.err
	}
	return auth.Token{Value: "signed", ID: "jti-1", ExpiresAt: time.Date(2030, 1, 1, 5, 0, 0, 0, time.UTC)}, nil
}

type stubRevoker struct {
	tokens []string
}

func (s *stubRevoker) Revoke(_ context.Context, token string) error {
	s.tokens = append(s.tokens, token)
	return nil
}

func newMux(issuer auth.TokenIssuer, revoker Revoker) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, issuer, revoker, CookieConfig{Secure: true, SameSite: http.SameSiteNoneMode})
	return r
}

func TestIssueSetsCookie(t *testing.T) {
	t.Parallel()

	issuer := &stubIssuer{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com","name":"Ann"}`))
	newMux(issuer, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, auth.Identity{Email: "a@x.com", Name: "Ann"}, issuer.got)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "token", c.Name)
	assert.Equal(t, "signed", c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
	assert.Equal(t, "/", c.Path)

	var body issueResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestIssueRejectsBadEmail(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"nope"}`))
	newMux(&stubIssuer{}, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestIssueFailureIsInternal(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	newMux(&stubIssuer{err: errors.New("sign failed")}, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogoutRevokesAndClears(t *testing.T) {
	t.Parallel()

	rev := &stubRevoker{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "signed"})
	newMux(&stubIssuer{}, rev).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"signed"}, rev.tokens)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestLogoutWithoutTokenOrRevoker(t *testing.T) {
	t.Parallel()

	rev := &stubRevoker{}
	rec := httptest.NewRecorder()
	newMux(&stubIssuer{}, rev).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rev.tokens)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "signed"})
	newMux(&stubIssuer{}, nil).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestParseSameSite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.SameSiteNoneMode, ParseSameSite("None"))
	assert.Equal(t, http.SameSiteStrictMode, ParseSameSite("strict"))
	assert.Equal(t, http.SameSiteLaxMode, ParseSameSite(""))
}
