package storage

import (
	"context"

	"github.com/iudanet/userstorage/internal/record"
)

//go:generate moq -out recordstorage_mock.go . RecordStorage

// RecordStorage defines read access to the generic record store
type RecordStorage interface {
	// Read retrieves one record of recordType by id
	// Returns ErrRecordNotFound if record doesn't exist
	Read(ctx context.Context, recordType, id string) (*record.Group, error)

	// ReadList retrieves the records of recordType matching filter.
	// ReadResult.TotalMatches counts every match, independent of paging.
	ReadList(ctx context.Context, recordType string, filter Filter) (*ReadResult, error)
}

// RecordWriter defines write access used to seed the store
type RecordWriter interface {
	// Save creates or replaces the record identified by its type and id
	Save(ctx context.Context, g *record.Group) error
}

// ReadResult is the outcome of a filtered list read
type ReadResult struct {
	Records      []*record.Group
	TotalMatches int64
}
