package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/auth"
	"github.com/gymflow/gymflow/internal/types"
)

// AuthMiddleware requires a valid staff session token and binds the user
// identity to the request context.
func AuthMiddleware(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifyBearer(c, authService)
		if !ok {
			return
		}
		if claims.Kind != auth.TokenKindUser {
			abortUnauthorized(c, "A staff session token is required")
			return
		}

		ctx := context.WithValue(c.Request.Context(), types.CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, types.CtxUserRole, string(claims.Role))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// PortalAuthMiddleware requires a valid member portal token and binds the
// member identity to the request context.
func PortalAuthMiddleware(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifyBearer(c, authService)
		if !ok {
			return
		}
		if claims.Kind != auth.TokenKindPortal || claims.MemberID == "" {
			abortUnauthorized(c, "A portal session token is required")
			return
		}

		ctx := context.WithValue(c.Request.Context(), types.CtxMemberID, claims.MemberID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles limits a route group to the listed roles. It must run after
// AuthMiddleware.
func RequireRoles(roles ...types.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := types.GetUserRole(c.Request.Context())
		if !lo.Contains(roles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"message": "insufficient permissions",
					"hint":    "Your role does not allow this operation",
				},
			})
			return
		}
		c.Next()
	}
}

func verifyBearer(c *gin.Context, authService *auth.Service) (*auth.Claims, bool) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		abortUnauthorized(c, "Provide a Bearer token in the Authorization header")
		return nil, false
	}

	claims, err := authService.VerifyToken(token)
	if err != nil {
		abortUnauthorized(c, "Session token is invalid or expired")
		return nil, false
	}
	return claims, true
}

func abortUnauthorized(c *gin.Context, hint string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"message": "unauthorized",
			"hint":    hint,
		},
	})
}
