package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/radityabs/rutevis/internal/pkg/jwt"
	"github.com/radityabs/rutevis/internal/pkg/models"
	"github.com/radityabs/rutevis/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := parts[1]

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			sub, ok := (*claims)["sub"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing sub claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			c.Set("user_email", fmt.Sprintf("%v", sub))
			c.Set("user_role", fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}
