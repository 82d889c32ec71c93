package storage

import (
	"fmt"

	"github.com/iudanet/userstorage/internal/record"
)

// RelationalOperator compares a record field with a condition value
type RelationalOperator string

const (
	EqualTo              RelationalOperator = "EQUAL_TO"
	NotEqualTo           RelationalOperator = "NOT_EQUAL_TO"
	LessThan             RelationalOperator = "LESS_THAN"
	LessThanOrEqualTo    RelationalOperator = "LESS_THAN_OR_EQUAL_TO"
	GreaterThan          RelationalOperator = "GREATER_THAN"
	GreaterThanOrEqualTo RelationalOperator = "GREATER_THAN_OR_EQUAL_TO"
)

// Valid reports whether the operator is known
func (o RelationalOperator) Valid() bool {
	switch o {
	case EqualTo, NotEqualTo, LessThan, LessThanOrEqualTo, GreaterThan, GreaterThanOrEqualTo:
		return true
	}
	return false
}

// Compare applies the operator to a field value and a condition value.
// Values are compared as strings.
func (o RelationalOperator) Compare(field, value string) bool {
	switch o {
	case EqualTo:
		return field == value
	case NotEqualTo:
		return field != value
	case LessThan:
		return field < value
	case LessThanOrEqualTo:
		return field <= value
	case GreaterThan:
		return field > value
	case GreaterThanOrEqualTo:
		return field >= value
	}
	return false
}

// Condition compares the top level atomic Key of a record with Value
type Condition struct {
	Key      string
	Operator RelationalOperator
	Value    string
}

// Matches reports whether g satisfies the condition.
// A record without the Key atomic never matches.
func (c Condition) Matches(g *record.Group) bool {
	field, ok := g.AtomicValue(c.Key)
	if !ok {
		return false
	}
	return c.Operator.Compare(field, c.Value)
}

// Clause is a conjunction of conditions
type Clause struct {
	Conditions []Condition
}

// Matches reports whether g satisfies every condition of the clause
func (c Clause) Matches(g *record.Group) bool {
	for _, condition := range c.Conditions {
		if !condition.Matches(g) {
			return false
		}
	}
	return true
}

// Filter selects records for ReadList.
// A record matches when it satisfies at least one Include clause (or Include is
// empty) and no Exclude clause. FromNo and ToNo are 1-based inclusive positions
// in the ordered match list; zero means default (first and last match).
type Filter struct {
	Include []Clause
	Exclude []Clause
	FromNo  int64
	ToNo    int64
}

// FromNoIsDefault reports whether the lower paging bound is unset
func (f Filter) FromNoIsDefault() bool {
	return f.FromNo == 0
}

// ToNoIsDefault reports whether the upper paging bound is unset
func (f Filter) ToNoIsDefault() bool {
	return f.ToNo == 0
}

// Validate checks operators and paging bounds
func (f Filter) Validate() error {
	for _, clauses := range [][]Clause{f.Include, f.Exclude} {
		for _, clause := range clauses {
			for _, condition := range clause.Conditions {
				if !condition.Operator.Valid() {
					return fmt.Errorf("%w: %q", ErrUnsupportedOperator, condition.Operator)
				}
			}
		}
	}

	if f.FromNo < 0 || f.ToNo < 0 {
		return fmt.Errorf("%w: negative paging bound", ErrInvalidFilter)
	}
	if !f.FromNoIsDefault() && !f.ToNoIsDefault() && f.FromNo > f.ToNo {
		return fmt.Errorf("%w: fromNo %d is after toNo %d", ErrInvalidFilter, f.FromNo, f.ToNo)
	}
	return nil
}

// Matches reports whether g is selected by the filter
func (f Filter) Matches(g *record.Group) bool {
	for _, clause := range f.Exclude {
		if clause.Matches(g) {
			return false
		}
	}

	if len(f.Include) == 0 {
		return true
	}
	for _, clause := range f.Include {
		if clause.Matches(g) {
			return true
		}
	}
	return false
}

// Offset returns the zero based index of the first record to return
func (f Filter) Offset() int64 {
	if f.FromNoIsDefault() {
		return 0
	}
	return f.FromNo - 1
}

// Limit returns the maximum number of records to return, -1 for no limit
func (f Filter) Limit() int64 {
	if f.ToNoIsDefault() {
		return -1
	}
	return f.ToNo - f.Offset()
}

// Page applies the paging bounds to an ordered match list
func (f Filter) Page(records []*record.Group) []*record.Group {
	offset := f.Offset()
	if offset >= int64(len(records)) {
		return []*record.Group{}
	}

	end := int64(len(records))
	if limit := f.Limit(); limit >= 0 && offset+limit < end {
		end = offset + limit
	}
	return records[offset:end]
}

// NewEqualityFilter builds a filter with one include clause holding a single
// EqualTo condition on key
func NewEqualityFilter(key, value string) Filter {
	return Filter{
		Include: []Clause{{
			Conditions: []Condition{{Key: key, Operator: EqualTo, Value: value}},
		}},
	}
}
