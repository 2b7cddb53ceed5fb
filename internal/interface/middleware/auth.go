package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/flogin/flogin-api/pkg/helpers"
	"github.com/flogin/flogin-api/pkg/response"
)

// CtxUsernameKey is the Gin context key holding the authenticated
// principal's username for the remainder of the request.
const CtxUsernameKey = "username"

const bearerPrefix = "Bearer "

// Authenticate is the per-request security filter. It runs once before
// dispatch and does no store I/O: token verification is a pure signature
// check against the server secret.
//
// A missing Authorization header or a non-Bearer scheme passes the request
// through unauthenticated; route groups that need an identity reject it
// later via RequireAuth. A present-but-invalid token short-circuits with a
// 401 whose body never says whether the signature or the expiry failed.
// The listed skip paths (login, register) bypass the filter entirely.
func Authenticate(jwt *helpers.JWTManager, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}
	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}
		token := strings.TrimPrefix(header, bearerPrefix)

		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.AbortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(CtxUsernameKey, claims.Username())
		c.Next()
	}
}

// RequireAuth is the route-level authorization gate: any request reaching it
// without a principal established by Authenticate is rejected.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUsernameKey) == "" {
			response.AbortUnauthorized(c, "unauthorized")
			return
		}
		c.Next()
	}
}
