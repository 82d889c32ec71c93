package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/userstorage/internal/record"
	"github.com/iudanet/userstorage/internal/storage"
)

var sqlOperators = map[storage.RelationalOperator]string{
	storage.EqualTo:              "=",
	storage.NotEqualTo:           "<>",
	storage.LessThan:             "<",
	storage.LessThanOrEqualTo:    "<=",
	storage.GreaterThan:          ">",
	storage.GreaterThanOrEqualTo: ">=",
}

// Save creates or replaces a record and its atomic index
func (s *Storage) Save(ctx context.Context, g *record.Group) error {
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

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO records (type, id, data)
		VALUES (?, ?, ?)
		ON CONFLICT (type, id) DO UPDATE SET data = excluded.data
	`
	if _, err := tx.ExecContext(ctx, query, g.Type, id, string(data)); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM record_atomics WHERE type = ? AND id = ?`, g.Type, id); err != nil {
		return fmt.Errorf("failed to clear record index: %w", err)
	}

	// Индексируем только первый atomic каждого имени, как и AtomicValue
	seen := make(map[string]bool)
	for _, child := range g.Children {
		atomic, ok := child.(*record.Atomic)
		if !ok || seen[atomic.Name] {
			continue
		}
		seen[atomic.Name] = true

		_, err := tx.ExecContext(ctx,
			`INSERT INTO record_atomics (type, id, name, value) VALUES (?, ?, ?, ?)`,
			g.Type, id, atomic.Name, atomic.Value,
		)
		if err != nil {
			return fmt.Errorf("failed to index record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit record: %w", err)
	}
	return nil
}

// Read retrieves a record by type and id
func (s *Storage) Read(ctx context.Context, recordType, id string) (*record.Group, error) {
	query := `SELECT data FROM records WHERE type = ? AND id = ?`

	var data string
	err := s.db.QueryRowContext(ctx, query, recordType, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	return decodeRecord(data)
}

// ReadList retrieves the records of recordType matching filter, ordered by id
func (s *Storage) ReadList(ctx context.Context, recordType string, filter storage.Filter) (*storage.ReadResult, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	where, args := buildWhere(recordType, filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM records r WHERE ` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	listQuery := `SELECT r.data FROM records r WHERE ` + where + ` ORDER BY r.id LIMIT ? OFFSET ?`
	rows, err := s.db.QueryContext(ctx, listQuery, append(args, filter.Limit(), filter.Offset())...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := []*record.Group{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		g, err := decodeRecord(data)
		if err != nil {
			return nil, err
		}
		records = append(records, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return &storage.ReadResult{Records: records, TotalMatches: total}, nil
}

// buildWhere translates a filter into a WHERE expression over records r
func buildWhere(recordType string, filter storage.Filter) (string, []any) {
	parts := []string{"r.type = ?"}
	args := []any{recordType}

	if len(filter.Include) > 0 {
		clauses := make([]string, 0, len(filter.Include))
		for _, clause := range filter.Include {
			expr, clauseArgs := buildClause(clause)
			clauses = append(clauses, expr)
			args = append(args, clauseArgs...)
		}
		parts = append(parts, "("+strings.Join(clauses, " OR ")+")")
	}

	for _, clause := range filter.Exclude {
		expr, clauseArgs := buildClause(clause)
		parts = append(parts, "NOT "+expr)
		args = append(args, clauseArgs...)
	}

	return strings.Join(parts, " AND "), args
}

func buildClause(clause storage.Clause) (string, []any) {
	if len(clause.Conditions) == 0 {
		return "(1 = 1)", nil
	}

	conditions := make([]string, 0, len(clause.Conditions))
	args := make([]any, 0, 2*len(clause.Conditions))
	for _, c := range clause.Conditions {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM record_atomics a WHERE a.type = r.type AND a.id = r.id AND a.name = ? AND a.value %s ?)",
			sqlOperators[c.Operator],
		))
		args = append(args, c.Key, c.Value)
	}
	return "(" + strings.Join(conditions, " AND ") + ")", args
}

func decodeRecord(data string) (*record.Group, error) {
	g := &record.Group{}
	if err := json.Unmarshal([]byte(data), g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return g, nil
}
