package middleware

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"dinarx-gateway/internal/config"
	"dinarx-gateway/internal/errors"
	"dinarx-gateway/internal/handlers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var nowFunc = time.Now

// GatewayClaims are the JWT claims issued for gateway API callers. The
// subject is the gateway user ID that consents and payments are mirrored
// under; it is never sent to the partner.
type GatewayClaims struct {
	CustomerID string `json:"customer_id,omitempty"`
	jwt.RegisteredClaims
}

// RequireAuth creates a middleware that requires a valid bearer token signed
// with the gateway's HS256 secret.
func RequireAuth(cfg *config.AuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			tokenString, err := extractBearerToken(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims := &GatewayClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(cfg.JWTSecret), nil
			}, jwt.WithIssuer(cfg.Issuer), jwt.WithExpirationRequired())
			if err != nil {
				if stderrors.Is(err, jwt.ErrTokenExpired) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			if !token.Valid || claims.Subject == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", claims.Subject)
			c.Set("customer_id", claims.CustomerID)

			return next(c)
		}
	}
}

// IssueToken signs a token for the given gateway user. Used by tests and by
// operational tooling; the gateway itself has no user registration flow.
func IssueToken(cfg *config.AuthConfig, userID, customerID string) (string, error) {
	now := jwt.NewNumericDate(nowFunc())
	claims := &GatewayClaims{
		CustomerID: customerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    cfg.Issuer,
			IssuedAt:  now,
			ExpiresAt: jwt.NewNumericDate(nowFunc().Add(cfg.TokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func extractBearerToken(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fmt.Errorf("malformed authorization header")
	}
	return parts[1], nil
}
