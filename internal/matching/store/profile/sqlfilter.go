package profile

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lib/pq"

	"matchmaker/internal/matching/filter"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/sentinel"
)

// whereClause translates a compiled filter into a SQL predicate over the
// profiles table. Placeholders start after the args already in use.
//
// Columns are taken from the fixed attribute list, never from the clause, so
// a malformed filter cannot inject SQL. Each clause spells out its null
// policy instead of relying on SQL three-valued logic.
func whereClause(f filter.Filter, args []any) (string, []any, error) {
	b := sqlBuilder{args: args}
	var parts []string
	for _, c := range f.Active() {
		part, err := b.clause(c)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return "TRUE", b.args, nil
	}
	return strings.Join(parts, " AND "), b.args, nil
}

type sqlBuilder struct {
	args []any
}

func (b *sqlBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *sqlBuilder) clause(c filter.Clause) (string, error) {
	col, err := column(c.Attribute)
	if err != nil {
		return "", fmt.Errorf("clause %s: %w", c.Kind, err)
	}

	var pred string
	switch c.Op {
	case filter.OpIn:
		pred = fmt.Sprintf("%s = ANY(%s)", col, b.arg(pq.Array(c.Values)))
	case filter.OpNotIn:
		pred = fmt.Sprintf("NOT (%s = ANY(%s))", col, b.arg(pq.Array(c.Values)))
	case filter.OpRange:
		var bounds []string
		if c.Min != nil {
			bounds = append(bounds, fmt.Sprintf("%s >= %s", col, b.arg(*c.Min)))
		}
		if c.Max != nil {
			bounds = append(bounds, fmt.Sprintf("%s <= %s", col, b.arg(*c.Max)))
		}
		if len(bounds) == 0 {
			pred = "TRUE"
		} else {
			pred = strings.Join(bounds, " AND ")
		}
	case filter.OpEq:
		if c.Equals == nil {
			return "", fmt.Errorf("clause %s: eq without a value: %w", c.Kind, sentinel.ErrInvalidInput)
		}
		pred = fmt.Sprintf("%s = %s", col, b.arg(*c.Equals))
	default:
		return "", fmt.Errorf("clause %s: unsupported op %q: %w", c.Kind, c.Op, sentinel.ErrInvalidInput)
	}

	if c.NullsMatch {
		return fmt.Sprintf("(%s IS NULL OR (%s))", col, pred), nil
	}
	return fmt.Sprintf("(%s IS NOT NULL AND (%s))", col, pred), nil
}

func column(a models.Attribute) (string, error) {
	if !slices.Contains(models.AllAttributes, a) {
		return "", fmt.Errorf("unknown attribute %q: %w", a, sentinel.ErrInvalidInput)
	}
	return string(a), nil
}
