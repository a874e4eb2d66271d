package storage

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ObjectID parses a 24-character hex id. Any other shape is rejected so it
// can be reported as a missing record rather than a server error.
func ObjectID(s string) (primitive.ObjectID, bool) {
	if !objectIDPattern.MatchString(s) {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(s)
	return id, err == nil
}
