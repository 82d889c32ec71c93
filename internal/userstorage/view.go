// Package userstorage provides a read-only view of users, app tokens and
// system secrets kept in a generic record storage.
package userstorage

import (
	"context"
	"log/slog"

	"github.com/iudanet/userstorage/internal/convert"
	"github.com/iudanet/userstorage/internal/models"
	"github.com/iudanet/userstorage/internal/record"
	"github.com/iudanet/userstorage/internal/storage"
)

// View reads authentication entities from record storage.
// It holds no mutable state and is safe for concurrent use when the storage is.
type View struct {
	storage   storage.RecordStorage
	converter convert.Converter
	logger    *slog.Logger
	policy    PasswordPolicy
}

// Option configures a View
type Option func(*View)

// WithLogger sets the logger used for read diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(v *View) {
		v.logger = logger
	}
}

// WithPasswordPolicy sets how password links are exposed
func WithPasswordPolicy(policy PasswordPolicy) Option {
	return func(v *View) {
		v.policy = policy
	}
}

// New creates a View over s using converter for user records.
// Defaults: PasswordLinkOnly policy, slog.Default() logger.
func New(s storage.RecordStorage, converter convert.Converter, opts ...Option) *View {
	v := &View{
		storage:   s,
		converter: converter,
		logger:    slog.Default(),
		policy:    PasswordLinkOnly,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Policy returns the configured password policy
func (v *View) Policy() PasswordPolicy {
	return v.policy
}

// GetUserByID reads the user record with the given id
func (v *View) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := v.getUserByID(ctx, userID)
	if err != nil {
		return nil, v.fail(ctx, "GetUserByID", userID, readByIDMessage(record.TypeUser, userID), err)
	}

	v.logger.DebugContext(ctx, "user read", "user_id", user.ID)
	return user, nil
}

func (v *View) getUserByID(ctx context.Context, userID string) (*models.User, error) {
	g, err := v.storage.Read(ctx, record.TypeUser, userID)
	if err != nil {
		return nil, err
	}
	return v.toUser(ctx, g)
}

// GetUserByLoginID reads the single user whose loginId equals loginID.
// Zero or several matches yield a StorageViewError without cause.
func (v *View) GetUserByLoginID(ctx context.Context, loginID string) (*models.User, error) {
	user, err := v.getUserByLoginID(ctx, loginID)
	if err != nil {
		// ошибки view из поиска по логину отдаются как есть
		if viewErr, ok := err.(*StorageViewError); ok {
			v.logFailure(ctx, "GetUserByLoginID", loginID, viewErr)
			return nil, viewErr
		}
		return nil, v.fail(ctx, "GetUserByLoginID", loginID, readByLoginIDMessage(loginID), err)
	}

	v.logger.DebugContext(ctx, "user read by login id", "user_id", user.ID)
	return user, nil
}

func (v *View) getUserByLoginID(ctx context.Context, loginID string) (*models.User, error) {
	result, err := v.storage.ReadList(ctx, record.TypeUser, storage.NewEqualityFilter(record.UserLoginID, loginID))
	if err != nil {
		return nil, err
	}

	if result.TotalMatches != 1 {
		return nil, &StorageViewError{Message: readByLoginIDMessage(loginID)}
	}
	if len(result.Records) == 0 {
		// storage reported a match but returned no record
		return nil, storage.ErrRecordNotFound
	}

	return v.toUser(ctx, result.Records[0])
}

func (v *View) toUser(ctx context.Context, g *record.Group) (*models.User, error) {
	user, err := v.converter.GroupToUser(g)
	if err != nil {
		return nil, err
	}

	if v.policy == PasswordResolved {
		if err := convert.ResolvePassword(ctx, v.storage, g, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// GetAppTokenByID reads the appToken record with the given id
func (v *View) GetAppTokenByID(ctx context.Context, appTokenID string) (*models.AppToken, error) {
	token, err := v.readAtomic(ctx, record.TypeAppToken, appTokenID, record.AppTokenToken)
	if err != nil {
		return nil, v.fail(ctx, "GetAppTokenByID", appTokenID, readByIDMessage(record.TypeAppToken, appTokenID), err)
	}

	return &models.AppToken{ID: appTokenID, TokenString: token}, nil
}

// GetSystemSecretByID reads the secret value of the systemSecret record with the given id
func (v *View) GetSystemSecretByID(ctx context.Context, systemSecretID string) (string, error) {
	secret, err := v.readAtomic(ctx, record.TypeSystemSecret, systemSecretID, record.SystemSecretSecret)
	if err != nil {
		return "", v.fail(ctx, "GetSystemSecretByID", systemSecretID, readByIDMessage(record.TypeSystemSecret, systemSecretID), err)
	}

	return secret, nil
}

func (v *View) readAtomic(ctx context.Context, recordType, id, field string) (string, error) {
	g, err := v.storage.Read(ctx, recordType, id)
	if err != nil {
		return "", err
	}
	return g.FirstAtomicValue(field)
}

// fail logs a failed read and wraps err
func (v *View) fail(ctx context.Context, operation, id, message string, err error) error {
	v.logFailure(ctx, operation, id, err)
	return wrapError(message, err)
}

func (v *View) logFailure(ctx context.Context, operation, id string, err error) {
	v.logger.WarnContext(ctx, "storage view read failed",
		"operation", operation,
		"id", id,
		"error", err,
	)
}
