package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/userstorage/internal/record"
	"github.com/iudanet/userstorage/internal/storage"
)

var errStorageClosed = errors.New("storage is closed")

// Save creates or replaces a record in the bucket of its type
func (s *Storage) Save(ctx context.Context, g *record.Group) error {
	if s.db == nil {
		return errStorageClosed
	}

	id, err := g.RecordID()
	if err != nil {
		return err
	}
	if _, err := g.RecordType(); err != nil {
		return err
	}

	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(g.Type))
		if err != nil {
			return fmt.Errorf("failed to create %s bucket: %w", g.Type, err)
		}

		if err := bucket.Put([]byte(id), data); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		return nil
	})
}

// Read retrieves a record by type and id
func (s *Storage) Read(ctx context.Context, recordType, id string) (*record.Group, error) {
	if s.db == nil {
		return nil, errStorageClosed
	}

	var g *record.Group

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(recordType))
		if bucket == nil {
			return storage.ErrRecordNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		// Данные валидны только внутри транзакции, Unmarshal их копирует
		var err error
		g, err = decodeRecord(data)
		return err
	})

	if err != nil {
		return nil, err
	}

	return g, nil
}

// ReadList retrieves the records of recordType matching filter, ordered by id
func (s *Storage) ReadList(ctx context.Context, recordType string, filter storage.Filter) (*storage.ReadResult, error) {
	if s.db == nil {
		return nil, errStorageClosed
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	matches := []*record.Group{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(recordType))
		if bucket == nil {
			return nil
		}

		// ForEach идет по ключам в порядке байтов, то есть по id
		return bucket.ForEach(func(k, v []byte) error {
			g, err := decodeRecord(v)
			if err != nil {
				return err
			}

			if filter.Matches(g) {
				matches = append(matches, g)
			}
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return &storage.ReadResult{
		Records:      filter.Page(matches),
		TotalMatches: int64(len(matches)),
	}, nil
}

func decodeRecord(data []byte) (*record.Group, error) {
	g := &record.Group{}
	if err := json.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return g, nil
}
