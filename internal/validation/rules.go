package validation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/apperr"
)

var std = validator.New()

// Rule is a predicate bound to a field together with the message reported when
// the predicate fails. Rules other than Required pass when the field is absent
// or null.
type Rule struct {
	Field    string
	required bool
	check    func(v any) bool
	message  string
}

// WithMessage replaces the default message.
func (r Rule) WithMessage(msg string) Rule {
	r.message = msg
	return r
}

// Evaluate checks the rule against a decoded document and returns the
// violation, if any.
func (r Rule) Evaluate(doc map[string]any) *apperr.FieldError {
	v, ok := doc[r.Field]
	if r.required {
		if !ok || isEmpty(v) {
			return &apperr.FieldError{Field: r.Field, Message: r.message}
		}
		return nil
	}
	if !ok || v == nil {
		return nil
	}
	if !r.check(v) {
		return &apperr.FieldError{Field: r.Field, Message: r.message}
	}
	return nil
}

// Validate evaluates every rule and returns all violations in rule order.
func Validate(doc map[string]any, rules []Rule) []apperr.FieldError {
	var errs []apperr.FieldError
	for _, r := range rules {
		if fe := r.Evaluate(doc); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

func Required(field string) Rule {
	return Rule{Field: field, required: true, message: fmt.Sprintf("%s is required", field)}
}

// NonEmpty passes when the field is absent or null and fails when it is present
// as a blank string. Updates use it in place of Required.
func NonEmpty(field string) Rule {
	return Rule{
		Field: field,
		check: func(v any) bool {
			s, ok := v.(string)
			return !ok || strings.TrimSpace(s) != ""
		},
		message: fmt.Sprintf("%s cannot be empty", field),
	}
}

func String(field string) Rule {
	return Rule{
		Field:   field,
		check:   func(v any) bool { _, ok := v.(string); return ok },
		message: fmt.Sprintf("%s must be a string", field),
	}
}

func MaxLen(field string, n int) Rule {
	return Rule{
		Field: field,
		check: func(v any) bool {
			s, ok := v.(string)
			return ok && len([]rune(strings.TrimSpace(s))) <= n
		},
		message: fmt.Sprintf("%s cannot exceed %d characters", field, n),
	}
}

func Bool(field string) Rule {
	return Rule{
		Field:   field,
		check:   func(v any) bool { _, ok := v.(bool); return ok },
		message: fmt.Sprintf("%s must be a boolean", field),
	}
}

func Int(field string) Rule {
	return Rule{
		Field:   field,
		check:   func(v any) bool { _, ok := asInt(v); return ok },
		message: fmt.Sprintf("%s must be an integer", field),
	}
}

func IntRange(field string, min, max int) Rule {
	return Rule{
		Field: field,
		check: func(v any) bool {
			n, ok := asInt(v)
			return ok && n >= min && n <= max
		},
		message: fmt.Sprintf("%s must be an integer between %d and %d", field, min, max),
	}
}

func Min(field string, min int) Rule {
	return Rule{
		Field: field,
		check: func(v any) bool {
			n, ok := asInt(v)
			return ok && n >= min
		},
		message: fmt.Sprintf("%s must be an integer of at least %d", field, min),
	}
}

func OneOf(field string, allowed ...string) Rule {
	return Rule{
		Field: field,
		check: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			for _, a := range allowed {
				if s == a {
					return true
				}
			}
			return false
		},
		message: fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")),
	}
}

func Email(field string) Rule {
	return Rule{
		Field: field,
		check: func(v any) bool {
			s, ok := v.(string)
			return ok && std.Var(strings.TrimSpace(s), "required,email") == nil
		},
		message: "Please provide a valid email",
	}
}

// URL accepts an empty string so optional links can be cleared.
func URL(field string) Rule {
	return Rule{
		Field: field,
		check: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			return s == "" || std.Var(s, "url") == nil
		},
		message: fmt.Sprintf("%s must be a valid URL", field),
	}
}

func StringSlice(field string) Rule {
	return Rule{
		Field: field,
		check: func(v any) bool {
			items, ok := v.([]any)
			if !ok {
				return false
			}
			for _, it := range items {
				if _, ok := it.(string); !ok {
					return false
				}
			}
			return true
		},
		message: fmt.Sprintf("%s must be an array of strings", field),
	}
}

func Date(field string) Rule {
	return Rule{
		Field: field,
		check: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			_, err := time.Parse(time.RFC3339, s)
			return err == nil
		},
		message: fmt.Sprintf("%s must be an RFC3339 date", field),
	}
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	}
	return false
}

func asInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || math.Trunc(f) != f || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
