package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/haircut-scheduler/internal/config"
	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/httperr"
)

const ContextRequester = "requester"

// AuthMiddleware verifies the bearer token issued by the auth service and
// stores the caller as a domain.Requester.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	secret := []byte(cfg.Auth.JWTSecret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authentication required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Authentication required.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(
			strings.TrimSpace(parts[1]),
			func(token *jwt.Token) (interface{}, error) {
				return secret, nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Invalid or expired token.")
			c.Abort()
			return
		}

		userID, ok1 := claims["sub"].(float64)
		role, ok2 := claims["role"].(string)
		if !ok1 || !ok2 || userID <= 0 || !domain.Role(role).Valid() {
			httperr.Unauthorized(c, "invalid_token_payload", "Invalid or expired token.")
			c.Abort()
			return
		}

		c.Set(ContextRequester, domain.Requester{
			UserID: uint(userID),
			Role:   domain.Role(role),
		})

		c.Next()
	}
}

// RequesterFrom returns the caller stored by AuthMiddleware.
func RequesterFrom(c *gin.Context) (domain.Requester, bool) {
	v, ok := c.Get(ContextRequester)
	if !ok {
		return domain.Requester{}, false
	}
	r, ok := v.(domain.Requester)
	return r, ok
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := RequesterFrom(c)
		if !ok {
			httperr.Unauthorized(c, "unauthorized", "Authentication required.")
			c.Abort()
			return
		}

		for _, role := range roles {
			if r.Role == role {
				c.Next()
				return
			}
		}

		httperr.ForbiddenResponse(c, "forbidden", "Not authorized.")
		c.Abort()
	}
}
