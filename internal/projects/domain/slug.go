package domain

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Slugify lower-cases s and joins its ASCII alphanumeric runs with dashes.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// SlugFor derives the slug of a project, falling back to the id when the title
// has no usable characters.
func SlugFor(title string, id primitive.ObjectID) string {
	if s := Slugify(title); s != "" {
		return s
	}
	return id.Hex()
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
