package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hucha-finance/hucha/internal/http/auth"
)

const secret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return raw
}

func runRequest(token string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	var (
		gotSpace uuid.UUID
		gotOK    bool
	)

	handler := auth.Middleware(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSpace, gotOK = auth.SpaceID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec, gotSpace, gotOK
}

func TestMiddleware_ValidToken(t *testing.T) {
	spaceID := uuid.New()
	token := signToken(t, jwt.MapClaims{"space_id": spaceID.String()})

	rec, gotSpace, gotOK := runRequest(token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotOK)
	assert.Equal(t, spaceID, gotSpace)
}

func TestMiddleware_MissingToken(t *testing.T) {
	rec, _, gotOK := runRequest("")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, gotOK)
}

func TestMiddleware_MissingClaim(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "someone"})

	rec, _, _ := runRequest(token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_GarbageToken(t *testing.T) {
	rec, _, _ := runRequest("not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
