package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dinarx-gateway/internal/config"
	"dinarx-gateway/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	cfg *config.AuthConfig
	e   *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.cfg = &config.AuthConfig{
		JWTSecret:     "test-secret-key",
		TokenDuration: 24 * time.Hour,
		Issuer:        "dinarx-gateway",
	}
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) runRequest(authHeader string) (*httptest.ResponseRecorder, string) {
	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	var seenUserID string
	handler := RequireAuth(s.cfg)(func(c echo.Context) error {
		seenUserID, _ = c.Get("user_id").(string)
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	return rec, seenUserID
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	token, err := IssueToken(s.cfg, "user-1", "IND_CUST_015")
	s.NoError(err)

	rec, userID := s.runRequest("Bearer " + token)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("user-1", userID)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingHeader() {
	rec, _ := s.runRequest("")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedHeader() {
	rec, _ := s.runRequest("Token abc123")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_004", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_WrongSecret() {
	otherCfg := &config.AuthConfig{
		JWTSecret:     "a-different-secret",
		TokenDuration: time.Hour,
		Issuer:        "dinarx-gateway",
	}
	token, err := IssueToken(otherCfg, "user-1", "")
	s.NoError(err)

	rec, _ := s.runRequest("Bearer " + token)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_004", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	original := nowFunc
	nowFunc = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	token, err := IssueToken(s.cfg, "user-1", "")
	nowFunc = original
	s.NoError(err)

	rec, _ := s.runRequest("Bearer " + token)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_003", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_WrongIssuer() {
	otherCfg := &config.AuthConfig{
		JWTSecret:     s.cfg.JWTSecret,
		TokenDuration: time.Hour,
		Issuer:        "someone-else",
	}
	token, err := IssueToken(otherCfg, "user-1", "")
	s.NoError(err)

	rec, _ := s.runRequest("Bearer " + token)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingSubject() {
	claims := &GatewayClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	s.NoError(err)

	rec, _ := s.runRequest("Bearer " + token)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_004", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_CustomerIDClaimCarried() {
	token, err := IssueToken(s.cfg, "user-1", "IND_CUST_015")
	s.NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	var seenCustomerID string
	handler := RequireAuth(s.cfg)(func(c echo.Context) error {
		seenCustomerID, _ = c.Get("customer_id").(string)
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("IND_CUST_015", seenCustomerID)
}
