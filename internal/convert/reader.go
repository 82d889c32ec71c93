package convert

import (
	"context"
	"fmt"

	"github.com/iudanet/userstorage/internal/models"
	"github.com/iudanet/userstorage/internal/record"
	"github.com/iudanet/userstorage/internal/storage"
)

// UserReader reads a user and resolves its password link to the secret value.
// Costs one extra storage read per user with a password link.
type UserReader struct {
	storage   storage.RecordStorage
	converter Converter
}

// NewUserReader creates a UserReader
func NewUserReader(s storage.RecordStorage, converter Converter) *UserReader {
	return &UserReader{
		storage:   s,
		converter: converter,
	}
}

// ReadUser reads the user record by id, converts it and resolves the password
func (r *UserReader) ReadUser(ctx context.Context, userID string) (*models.User, error) {
	g, err := r.storage.Read(ctx, record.TypeUser, userID)
	if err != nil {
		return nil, err
	}
	return r.ToUser(ctx, g)
}

// ToUser converts an already read user record and resolves the password
func (r *UserReader) ToUser(ctx context.Context, g *record.Group) (*models.User, error) {
	user, err := r.converter.GroupToUser(g)
	if err != nil {
		return nil, err
	}

	if err := ResolvePassword(ctx, r.storage, g, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResolvePassword follows the passwordLink of g and sets user.Password to the
// secret of the linked record. A user without a password link is left untouched.
func ResolvePassword(ctx context.Context, s storage.RecordStorage, g *record.Group, user *models.User) error {
	if !g.ContainsLink(record.UserPasswordLink) {
		return nil
	}

	link, err := g.FirstLink(record.UserPasswordLink)
	if err != nil {
		return err
	}

	linkedType := link.LinkedType
	if linkedType == "" {
		linkedType = record.TypeSystemSecret
	}

	secretGroup, err := s.Read(ctx, linkedType, link.LinkedID)
	if err != nil {
		return fmt.Errorf("failed to read password %s/%s: %w", linkedType, link.LinkedID, err)
	}

	secret, err := secretGroup.FirstAtomicValue(record.SystemSecretSecret)
	if err != nil {
		return err
	}

	user.Password = models.Some(secret)
	return nil
}
