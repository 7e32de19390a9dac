package middleware

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"fuelstation/internal/handler/httperr"
)

const userIDKey = "user_id"

var (
	errMissingUserID = errors.New("missing X-User-ID header")
	errInvalidUserID = errors.New("invalid X-User-ID header")
)

// IdentityMiddleware resolves the caller from the X-User-ID header set by
// the gateway in front of this service. Requests without a parseable ID
// are rejected before they reach a handler.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "X-User-ID header required", nil)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			httperr.AbortWithError(c, http.StatusUnauthorized, errInvalidUserID, "Invalid X-User-ID header", nil)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(int64)
	return userID, ok
}
