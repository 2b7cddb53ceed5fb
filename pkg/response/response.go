package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response bodies mirror the public API contract: successes carry their DTO
// directly, failures carry {"message": ...} and validation failures carry
// every field violation at once under {"messages": {...}}.

// Message writes a {"message": ...} body with the given status.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// ValidationFailed writes the aggregated field violations as a single
// 400 response.
func ValidationFailed(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"messages": details})
}

// AbortUnauthorized ends the request from middleware with a 401 and a
// user-safe message. Used by the authentication entry point, so the body
// never says which token check failed.
func AbortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
}

// Internal writes a generic 500 without leaking the underlying error.
func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}
