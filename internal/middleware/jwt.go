package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"threadmart/internal/common"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NewKeyfunc picks the verification key source for provider-issued tokens.
// With a JWKS URL the provider's published signing keys are fetched and
// refreshed in the background; otherwise the shared HS256 secret is used.
func NewKeyfunc(jwksURL, secret string) (jwt.Keyfunc, error) {
	if jwksURL != "" {
		jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
			RefreshInterval:  time.Hour,
			RefreshRateLimit: time.Minute,
		})
		if err != nil {
			return nil, err
		}
		return jwks.Keyfunc, nil
	}

	secretBytes := []byte(secret)
	return func(token *jwt.Token) (interface{}, error) {
		return secretBytes, nil
	}, nil
}

// JWTMiddleware validates bearer tokens and stores the authenticated user
// ID and email in the request context.
func JWTMiddleware(keyFn jwt.Keyfunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing token")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format")
			}

			token, err := jwt.Parse(tokenString, keyFn)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}
			if !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token not valid")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid claims")
			}

			sub, ok := claims["sub"].(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing user_id in token")
			}

			userID, err := uuid.Parse(sub)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user_id format")
			}

			ctx := context.WithValue(c.Request().Context(), common.UserIDKey, userID)
			if email, ok := claims["email"].(string); ok {
				ctx = context.WithValue(ctx, common.UserEmailKey, email)
			}
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
