package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/apperr"
)

const bodyField = "body"

// Body validates a JSON object body against rules before the handler runs.
// The body is restored afterwards so handlers can bind it normally.
func Body(rules ...Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := readBody(c)
		if !ok {
			return
		}

		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
			apperr.Respond(c, apperr.Validation([]apperr.FieldError{
				{Field: bodyField, Message: "Request body must be a JSON object"},
			}))
			return
		}

		if errs := Validate(doc, rules); len(errs) > 0 {
			apperr.Respond(c, apperr.Validation(errs))
			return
		}
		c.Next()
	}
}

// EachBody validates a JSON array body, applying rules to every element. The
// whole array is checked so the response lists every violation in the batch.
func EachBody(rules ...Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := readBody(c)
		if !ok {
			return
		}

		var items []any
		if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
			apperr.Respond(c, apperr.Validation([]apperr.FieldError{
				{Field: bodyField, Message: "Request body must be a non-empty JSON array"},
			}))
			return
		}

		var errs []apperr.FieldError
		for i, it := range items {
			doc, isObj := it.(map[string]any)
			if !isObj {
				errs = append(errs, apperr.FieldError{
					Field:   fmt.Sprintf("[%d]", i),
					Message: "each element must be a JSON object",
				})
				continue
			}
			for _, fe := range Validate(doc, rules) {
				fe.Field = fmt.Sprintf("[%d].%s", i, fe.Field)
				errs = append(errs, fe)
			}
		}

		if len(errs) > 0 {
			apperr.Respond(c, apperr.Validation(errs))
			return
		}
		c.Next()
	}
}

// Query validates query parameters. Values are seen as strings; repeated
// parameters use their first value.
func Query(rules ...Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := make(map[string]any)
		for k, vs := range c.Request.URL.Query() {
			if len(vs) > 0 {
				doc[k] = vs[0]
			}
		}
		if errs := Validate(doc, rules); len(errs) > 0 {
			apperr.Respond(c, apperr.Validation(errs))
			return
		}
		c.Next()
	}
}

func readBody(c *gin.Context) ([]byte, bool) {
	if c.Request.Body == nil {
		return nil, true
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		apperr.Respond(c, apperr.Validation([]apperr.FieldError{
			{Field: bodyField, Message: "Request body could not be read"},
		}))
		return nil, false
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	return raw, true
}
