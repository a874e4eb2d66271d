package storage

import "errors"

// Sentinel errors shared by every store backend. Services translate them into
// API errors; anything else coming out of a repository is an internal failure.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)
