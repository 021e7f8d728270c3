// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the static API-key gate protecting the /api group.
// The credential travels in the X-API-Key request header and is compared
// against the single configured secret. There are no users, scopes, or
// token lifetimes: possession of the shared key grants access to every
// protected route.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-inventory-backend/internal/apperr"
)

// HeaderAPIKey is the request header carrying the client credential.
const HeaderAPIKey = "X-API-Key"

// APIKeyAuth returns a Gin middleware that rejects requests whose X-API-Key
// header does not exactly match secret (case-sensitive). A missing or
// mismatched credential aborts the request with a 401 UnauthorizedError
// envelope; a match passes control on with no side effects.
//
// The comparison is constant-time so response timing does not leak how much
// of a guessed key was correct.
func APIKeyAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAPIKey)
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			err := apperr.Unauthorized("invalid or missing credential")
			LoggerFrom(c).Warn().
				Str("path", c.Request.URL.Path).
				Msg("rejected request: invalid or missing API key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperr.Wire(err))
			return
		}
		c.Next()
	}
}
