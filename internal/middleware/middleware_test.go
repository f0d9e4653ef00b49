package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"avoska-api/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	entries map[string]string
}

func newMemStore() *memStore {
	return &memStore{entries: map[string]string{}}
}

func (s *memStore) Set(ctx context.Context, token, userID string) error {
	s.entries[token] = userID
	return nil
}

func (s *memStore) Get(ctx context.Context, token string) (string, error) {
	v, ok := s.entries[token]
	if !ok {
		return "", session.ErrNotFound
	}
	return v, nil
}

var testSecret = []byte("test-secret")

const testCookie = "session_id"

func protected(t *testing.T, store session.Store, guard func(http.Handler) http.Handler) (http.Handler, *string) {
	t.Helper()
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetSessionUser(r)
		w.WriteHeader(http.StatusOK)
	})
	chain := Session(store, testSecret, testCookie, zerolog.Nop())(guard(inner))
	return chain, &seen
}

func loginCookie(t *testing.T, store *memStore, userID string) *http.Cookie {
	t.Helper()
	token := session.NewToken()
	require.NoError(t, store.Set(context.Background(), token, userID))
	signed, err := session.SignToken(token, testSecret)
	require.NoError(t, err)
	return &http.Cookie{Name: testCookie, Value: signed}
}

func TestSessionRequiredWithoutCookie(t *testing.T) {
	store := newMemStore()
	chain, _ := protected(t, store, RequireSession)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestSessionResolvedFromCookie(t *testing.T) {
	store := newMemStore()
	chain, seen := protected(t, store, RequireSession)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(loginCookie(t, store, "7"))
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "7", *seen)
}

func TestSessionTamperedCookieRejected(t *testing.T) {
	store := newMemStore()
	chain, _ := protected(t, store, RequireSession)

	cookie := loginCookie(t, store, "7")
	cookie.Value += "tampered"

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// A signed cookie whose entry has expired out of the store is no
// session at all.
func TestSessionExpiredEntryRejected(t *testing.T) {
	store := newMemStore()
	chain, _ := protected(t, store, RequireSession)

	cookie := loginCookie(t, store, "7")
	store.entries = map[string]string{}

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireUserRejectsAdminSentinel(t *testing.T) {
	store := newMemStore()
	chain, _ := protected(t, store, RequireUser)

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.AddCookie(loginCookie(t, store, session.AdminSentinel))
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminRejectsUserSession(t *testing.T) {
	store := newMemStore()
	chain, _ := protected(t, store, RequireAdmin)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.AddCookie(loginCookie(t, store, "7"))
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminAllowsSentinel(t *testing.T) {
	store := newMemStore()
	chain, seen := protected(t, store, RequireAdmin)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.AddCookie(loginCookie(t, store, session.AdminSentinel))
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, session.AdminSentinel, *seen)
}

func TestRequireSessionAdmitsAnySession(t *testing.T) {
	store := newMemStore()
	chain, _ := protected(t, store, RequireSession)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(loginCookie(t, store, session.AdminSentinel))
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
