package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"NutriScan_Backend/internal/utility"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const accessTokenCookie = "access-token"

var errMissingToken = errors.New("missing access token")

// JwtCustomClaims are the claims carried by access tokens. UserID is the
// external identity (Firebase UID) of the caller; tokens that only set the
// registered subject are accepted too.
type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// subject returns the caller identity of the token.
func (c *JwtCustomClaims) subject() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}

// JwtAuthMiddleware authenticates the request with a bearer token (mobile) or
// the access-token cookie (web) and stores the caller identity under
// utility.UserIDKey. Failures are answered with 401 JSON.
func JwtAuthMiddleware(secret string) echo.MiddlewareFunc {
	key := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger := utility.GetLogger(c)

			tokenString, err := extractToken(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]any{"success": false, "error": "Unauthorized"})
			}

			token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
				// Verify signing method
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return key, nil
			})
			if err != nil || !token.Valid {
				logger.Warn().Err(err).Msg("Token validation error")
				return c.JSON(http.StatusUnauthorized, map[string]any{"success": false, "error": "Invalid or expired token"})
			}

			claims, ok := token.Claims.(*JwtCustomClaims)
			if !ok || claims.subject() == "" {
				logger.Warn().Msg("Token carries no user ID")
				return c.JSON(http.StatusUnauthorized, map[string]any{"success": false, "error": "Invalid user ID"})
			}

			c.Set(utility.UserIDKey, claims.subject())
			return next(c)
		}
	}
}

func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		if t := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")); t != "" {
			return t, nil
		}
		return "", errMissingToken
	}

	cookie, err := c.Cookie(accessTokenCookie)
	if err != nil || cookie.Value == "" {
		return "", errMissingToken
	}
	return cookie.Value, nil
}
