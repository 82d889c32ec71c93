// Package importer loads JSON record files into a writable record store.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/iudanet/userstorage/internal/crypto"
	"github.com/iudanet/userstorage/internal/record"
	"github.com/iudanet/userstorage/internal/storage"
	"github.com/iudanet/userstorage/internal/validation"
)

// Importer writes records decoded from JSON into a RecordWriter
type Importer struct {
	writer      storage.RecordWriter
	logger      *slog.Logger
	newID       func() string
	hashCost    int
	hashSecrets bool
}

// Option configures an Importer
type Option func(*Importer)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(i *Importer) {
		i.logger = logger
	}
}

// WithSecretHashing enables bcrypt hashing of plaintext systemSecret values
func WithSecretHashing(cost int) Option {
	return func(i *Importer) {
		i.hashSecrets = true
		i.hashCost = cost
	}
}

// WithIDGenerator overrides the generator used for records without id
func WithIDGenerator(newID func() string) Option {
	return func(i *Importer) {
		i.newID = newID
	}
}

// Result summarizes an import
type Result struct {
	Imported      int
	GeneratedIDs  int
	HashedSecrets int
}

// New creates an Importer writing to writer
func New(writer storage.RecordWriter, opts ...Option) *Importer {
	i := &Importer{
		writer:   writer,
		logger:   slog.Default(),
		newID:    uuid.NewString,
		hashCost: crypto.DefaultCost,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// ImportFile imports the JSON record array stored at path
func (i *Importer) ImportFile(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return i.Import(ctx, f)
}

// Import decodes a JSON array of records from r and saves them in order.
// Every record is checked, and secrets are hashed, before the first write,
// so an invalid file leaves the store untouched.
func (i *Importer) Import(ctx context.Context, r io.Reader) (Result, error) {
	var records []*record.Group
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return Result{}, fmt.Errorf("failed to decode records: %w", err)
	}

	var result Result
	for n, g := range records {
		if g == nil {
			return Result{}, fmt.Errorf("record %d: null record", n)
		}
		if g.ID == "" {
			g.ID = i.newID()
			result.GeneratedIDs++
		}
		if err := checkRecord(g); err != nil {
			return Result{}, fmt.Errorf("record %d (%s/%s): %w", n, g.Type, g.ID, err)
		}

		if i.hashSecrets && g.Type == record.TypeSystemSecret {
			hashed, err := i.hashSecret(g)
			if err != nil {
				return Result{}, fmt.Errorf("record %d (systemSecret/%s): %w", n, g.ID, err)
			}
			if hashed {
				result.HashedSecrets++
			}
		}
	}

	for _, g := range records {
		if err := i.writer.Save(ctx, g); err != nil {
			return result, fmt.Errorf("failed to save %s/%s: %w", g.Type, g.ID, err)
		}
		result.Imported++
		i.logger.DebugContext(ctx, "record imported", "type", g.Type, "id", g.ID)
	}

	i.logger.InfoContext(ctx, "import finished",
		"imported", result.Imported,
		"generated_ids", result.GeneratedIDs,
		"hashed_secrets", result.HashedSecrets,
	)
	return result, nil
}

func checkRecord(g *record.Group) error {
	if err := validation.ValidateRecordType(g.Type); err != nil {
		return err
	}
	if err := validation.ValidateRecordID(g.ID); err != nil {
		return err
	}
	return record.CheckRecord(g)
}

// hashSecret replaces plaintext secret atomics with their bcrypt hash.
// Values that already are bcrypt hashes are kept.
func (i *Importer) hashSecret(g *record.Group) (bool, error) {
	hashed := false
	for _, child := range g.Children {
		atomic, ok := child.(*record.Atomic)
		if !ok || atomic.Name != record.SystemSecretSecret || crypto.IsHashed(atomic.Value) {
			continue
		}

		value, err := crypto.HashSecret([]byte(atomic.Value), i.hashCost)
		if err != nil {
			return false, err
		}
		atomic.Value = value
		hashed = true
	}
	return hashed, nil
}
