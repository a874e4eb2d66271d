package apperr

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Respond aborts the request with the JSON body for err. Causes of internal
// errors are only exposed while gin runs in debug mode.
func Respond(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = Internal(err)
	}

	body := gin.H{"message": e.Message}
	if len(e.Fields) > 0 {
		body["errors"] = e.Fields
	}

	if e.Kind == KindInternal {
		zerolog.Ctx(c.Request.Context()).Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Msg("request failed")
		if gin.IsDebugging() && e.Err != nil {
			body["error"] = e.Err.Error()
		}
	}

	c.AbortWithStatusJSON(e.Kind.Status(), body)
}
