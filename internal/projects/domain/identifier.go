package domain

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
)

type IdentifierKind int

const (
	KindObjectID IdentifierKind = iota + 1
	KindSlug
)

// Identifier is either an object id or a slug, decided by shape alone.
type Identifier struct {
	Kind IdentifierKind
	ID   primitive.ObjectID
	Slug string
}

// ParseIdentifier classifies s: 24 hex characters is an id, anything else a slug.
func ParseIdentifier(s string) Identifier {
	s = strings.TrimSpace(s)
	if id, ok := storage.ObjectID(s); ok {
		return Identifier{Kind: KindObjectID, ID: id}
	}
	return Identifier{Kind: KindSlug, Slug: strings.ToLower(s)}
}

// ParseObjectID accepts only the id shape.
func ParseObjectID(s string) (primitive.ObjectID, bool) {
	id := ParseIdentifier(s)
	return id.ID, id.Kind == KindObjectID
}
