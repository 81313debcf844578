package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_secret"

func signToken(t *testing.T, role string) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"id":   "ab8f54b6-d33c-4fec-9598-aaaaaaaaaaaa",
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func runGuarded(t *testing.T, authz string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	cfg := config.Config{JWTSecret: testSecret}

	h := middleware.AuthJWT(cfg)(middleware.AdminRoleGuard()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}))

	req := httptest.NewRequest(http.MethodGet, "/analytics/sales", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h(c))
	return rec
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	rec := runGuarded(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_MalformedHeader(t *testing.T) {
	rec := runGuarded(t, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_InvalidSignature(t *testing.T) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   "x",
		"role": "Admin",
		"exp":  now.Add(time.Hour).Unix(),
	})
	signed, _ := tok.SignedString([]byte("other_secret"))

	rec := runGuarded(t, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ユーザーIDはidクレームで運ぶ。subだけのトークンは通さない。
func TestAuthJWT_RequiresIDClaim(t *testing.T) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "ab8f54b6-d33c-4fec-9598-aaaaaaaaaaaa",
		"role": "Admin",
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	rec := runGuarded(t, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoleGuard_CustomerForbidden(t *testing.T) {
	rec := runGuarded(t, "Bearer "+signToken(t, "Customer"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRoleGuard_AdminAllowed(t *testing.T) {
	rec := runGuarded(t, "Bearer "+signToken(t, "Admin"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoleGuard_SuperAdminAllowed(t *testing.T) {
	rec := runGuarded(t, "Bearer "+signToken(t, "Super Admin"))
	assert.Equal(t, http.StatusOK, rec.Code)
}
