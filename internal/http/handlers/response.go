// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the terminal response stages shared by all endpoints.
// Success paths write their bodies directly via ok()/noContent(); every
// failure funnels through respondErr(), the single point of error emission,
// which classifies the failure, logs it, and writes the uniform envelope:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "error": {
//	    "message": "Product not found.",
//	    "type": "NotFoundError"
//	  }
//	}
//
// Unclassified failures surface as a generic 500 while the full detail is
// logged with request context for operator diagnosis.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-inventory-backend/internal/apperr"
	"github.com/tbourn/go-inventory-backend/internal/http/middleware"
)

// respondErr aborts the request with the envelope for err's failure kind.
// Every failure is logged before the response is written: client-caused
// kinds (4xx) at warn, unclassified failures at error with the underlying
// cause attached.
func respondErr(c *gin.Context, err error) {
	ae := apperr.Classify(err)
	lg := middleware.LoggerFrom(c)

	if ae.Kind == apperr.KindInternal {
		lg.Error().
			Err(err).
			Str("type", string(ae.Kind)).
			Msg("request failed")
	} else {
		lg.Warn().
			Str("type", string(ae.Kind)).
			Str("message", ae.Message).
			Msg("request failed")
	}

	c.AbortWithStatusJSON(ae.Status(), apperr.Wire(ae))
}

// RespondErr is the exported variant of respondErr for use outside the
// package (e.g. the router's NoRoute/NoMethod fallbacks).
func RespondErr(c *gin.Context, err error) { respondErr(c, err) }

// ok writes a success JSON response with the given status code.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
