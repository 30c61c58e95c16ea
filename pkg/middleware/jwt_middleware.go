package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skillswap/pkg/utils"
)

// Context keys set by JWTAuthMiddleware.
const (
	UserIDKey = "user_id"
	RoleKey   = "Role"
	ClaimsKey = "claims"
)

func JWTAuthMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := issuer.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// CurrentClaims returns the claim set JWTAuthMiddleware stored on the context.
func CurrentClaims(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok && claims != nil
}

// RoleMiddleware must run after JWTAuthMiddleware. The caller's actual role
// is echoed back on mismatch.
func RoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(RoleKey)

		if role != requiredRole {
			utils.RespondErrorData(c, http.StatusForbidden,
				"You are not supposed to be there "+role,
				gin.H{"role": role})
			c.Abort()
			return
		}

		c.Next()
	}
}
