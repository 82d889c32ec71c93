package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/userstorage/internal/record"
	"github.com/iudanet/userstorage/internal/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func createTestUser(id, loginID, status string) *record.Group {
	return record.NewRecord(record.TypeUser, id,
		record.NewAtomic(record.UserLoginID, loginID),
		record.NewAtomic(record.UserActiveStatus, status),
		record.NewGroup(record.UserAppTokens,
			record.NewGroup(record.UserAppToken,
				record.NewLink(record.UserAppTokenLink, record.TypeAppToken, "token-"+id)),
		),
		record.NewLink(record.UserPasswordLink, record.TypeSystemSecret, "secret-"+id),
	)
}

func seedUsers(t *testing.T, s *Storage, n int) {
	ctx := context.Background()
	for i := 1; i <= n; i++ {
		status := "active"
		if i%2 == 0 {
			status = "inactive"
		}
		u := createTestUser(fmt.Sprintf("user-%02d", i), fmt.Sprintf("login-%02d", i), status)
		require.NoError(t, s.Save(ctx, u))
	}
}

func TestStorage_SaveAndRead(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser("user-1", "alice", "active")
	require.NoError(t, s.Save(ctx, user))

	got, err := s.Read(ctx, record.TypeUser, "user-1")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	// same id, other type
	_, err = s.Read(ctx, record.TypeAppToken, "user-1")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	_, err = s.Read(ctx, record.TypeUser, "missing")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestStorage_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.Save(ctx, createTestUser("user-1", "alice", "active")))
	require.NoError(t, s.Save(ctx, createTestUser("user-1", "alice2", "inactive")))

	got, err := s.Read(ctx, record.TypeUser, "user-1")
	require.NoError(t, err)
	loginID, err := got.FirstAtomicValue(record.UserLoginID)
	require.NoError(t, err)
	assert.Equal(t, "alice2", loginID)

	// старое значение индекса удалено
	result, err := s.ReadList(ctx, record.TypeUser, storage.NewEqualityFilter(record.UserLoginID, "alice"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.TotalMatches)
}

func TestStorage_SaveWithoutID(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.Save(context.Background(), record.NewRecord(record.TypeUser, ""))
	assert.ErrorIs(t, err, record.ErrMissingID)
}

func TestStorage_SaveInvalidRecord(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.Save(ctx, &record.Group{Name: "noType", ID: "id-1"})
	assert.ErrorIs(t, err, record.ErrMissingType)

	_, err = s.Read(ctx, "", "id-1")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	err = s.Save(ctx, record.NewRecord(record.TypeUser, "user-1",
		record.NewLink(record.UserPasswordLink, record.TypeSystemSecret, "")))
	assert.ErrorIs(t, err, record.ErrEmptyLink)

	_, err = s.Read(ctx, record.TypeUser, "user-1")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestStorage_ReadList(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	seedUsers(t, s, 5)
	require.NoError(t, s.Save(ctx, record.NewRecord(record.TypeAppToken, "token-1",
		record.NewAtomic(record.AppTokenToken, "abc"),
		record.NewAtomic(record.UserLoginID, "login-01"),
	)))

	activeClause := storage.Clause{Conditions: []storage.Condition{
		{Key: record.UserActiveStatus, Operator: storage.EqualTo, Value: "active"},
	}}

	tests := []struct {
		name      string
		filter    storage.Filter
		wantIDs   []string
		wantTotal int64
	}{
		{
			name:      "equality on login id",
			filter:    storage.NewEqualityFilter(record.UserLoginID, "login-03"),
			wantIDs:   []string{"user-03"},
			wantTotal: 1,
		},
		{
			name:      "no match",
			filter:    storage.NewEqualityFilter(record.UserLoginID, "nobody"),
			wantIDs:   []string{},
			wantTotal: 0,
		},
		{
			name:      "empty filter returns all of type",
			filter:    storage.Filter{},
			wantIDs:   []string{"user-01", "user-02", "user-03", "user-04", "user-05"},
			wantTotal: 5,
		},
		{
			name:      "exclude",
			filter:    storage.Filter{Exclude: []storage.Clause{activeClause}},
			wantIDs:   []string{"user-02", "user-04"},
			wantTotal: 2,
		},
		{
			name:      "paging keeps total",
			filter:    storage.Filter{Include: []storage.Clause{activeClause}, FromNo: 2, ToNo: 2},
			wantIDs:   []string{"user-03"},
			wantTotal: 3,
		},
		{
			name: "or across clauses",
			filter: storage.Filter{Include: []storage.Clause{
				{Conditions: []storage.Condition{{Key: record.UserLoginID, Operator: storage.EqualTo, Value: "login-02"}}},
				{Conditions: []storage.Condition{{Key: record.UserLoginID, Operator: storage.EqualTo, Value: "login-04"}}},
			}},
			wantIDs:   []string{"user-02", "user-04"},
			wantTotal: 2,
		},
		{
			name: "range",
			filter: storage.Filter{Include: []storage.Clause{{Conditions: []storage.Condition{
				{Key: record.UserLoginID, Operator: storage.GreaterThanOrEqualTo, Value: "login-04"},
			}}}},
			wantIDs:   []string{"user-04", "user-05"},
			wantTotal: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.ReadList(ctx, record.TypeUser, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.TotalMatches)

			ids := make([]string, 0, len(result.Records))
			for _, g := range result.Records {
				ids = append(ids, g.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestStorage_ReadList_DuplicateLogin(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.Save(ctx, createTestUser("user-1", "same", "active")))
	require.NoError(t, s.Save(ctx, createTestUser("user-2", "same", "active")))

	result, err := s.ReadList(ctx, record.TypeUser, storage.NewEqualityFilter(record.UserLoginID, "same"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.TotalMatches)
	assert.Len(t, result.Records, 2)
}

func TestStorage_ReadList_InvalidFilter(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	filter := storage.Filter{Include: []storage.Clause{{Conditions: []storage.Condition{
		{Key: record.UserLoginID, Operator: "LIKE", Value: "a%"},
	}}}}
	_, err := s.ReadList(context.Background(), record.TypeUser, filter)
	assert.ErrorIs(t, err, storage.ErrUnsupportedOperator)
}

func TestStorage_ReadAfterClose(t *testing.T) {
	s, _ := setupTestStorage(t)
	require.NoError(t, s.Close())

	_, err := s.Read(context.Background(), record.TypeUser, "user-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrRecordNotFound)
}
