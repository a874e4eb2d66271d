package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
)

// Translate maps driver errors onto the storage sentinels.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return storage.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", storage.ErrDuplicateKey, err)
	}
	return err
}

// BulkFailures returns per-index insert failures from an unordered InsertMany.
// ok is false when err is not a bulk write error, meaning the whole call failed.
func BulkFailures(err error) (failed map[int]error, ok bool) {
	var bwe mongo.BulkWriteException
	if !errors.As(err, &bwe) {
		return nil, false
	}
	failed = make(map[int]error, len(bwe.WriteErrors))
	for _, we := range bwe.WriteErrors {
		if we.Code == 11000 || we.Code == 11001 || we.Code == 12582 {
			failed[we.Index] = fmt.Errorf("%w: %s", storage.ErrDuplicateKey, we.Message)
			continue
		}
		failed[we.Index] = errors.New(we.Message)
	}
	if bwe.WriteConcernError != nil && len(failed) == 0 {
		return nil, false
	}
	return failed, true
}
