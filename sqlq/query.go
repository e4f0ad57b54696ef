package sqlq

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/emanuelbalogun/LightBnB/scope"
)

// ScanFunc scans a single row into T.
// Implementations look columns up by name so that wider selects
// (joins, aggregates, SELECT *) scan into the same type.
type ScanFunc[T any] func(rows *sql.Rows) (T, error)

// ColumnValueFunc extracts column names and their values from a *T.
// When includesPK is false the primary key column is excluded (for INSERT
// with auto-increment).
type ColumnValueFunc[T any] func(t *T, includesPK bool) (columns []string, values []any)

// JoinConfig holds the metadata needed to build a JOIN clause at runtime.
type JoinConfig struct {
	TargetTable  string
	TargetColumn string
	SourceTable  string
	SourceColumn string
}

// Query represents a pending query against a single table.
// All builder methods return a new Query; the receiver is never modified.
type Query[T any] struct {
	db          Querier
	table       string
	columns     []string
	pk          string
	scan        ScanFunc[T]
	colValPairs ColumnValueFunc[T]

	wheres   []clause
	havings  []clause
	groupBys []string
	orderBys []string
	joins    []string
	selects  *string
	limit    *int

	joinDefs map[string]JoinConfig
}

type clause struct {
	text string
	args []any
}

// NewQuery is called by table factory functions.
func NewQuery[T any](
	db Querier,
	table string,
	columns []string,
	pk string,
	scan ScanFunc[T],
	colValPairs ColumnValueFunc[T],
) *Query[T] {
	return &Query[T]{
		db:          db,
		table:       table,
		columns:     columns,
		pk:          pk,
		scan:        scan,
		colValPairs: colValPairs,
	}
}

// RegisterJoin registers a named join definition for use with Join/LeftJoin.
func (q *Query[T]) RegisterJoin(name string, cfg JoinConfig) {
	if q.joinDefs == nil {
		q.joinDefs = make(map[string]JoinConfig)
	}
	q.joinDefs[name] = cfg
}

// clone returns a shallow copy with slices copied to avoid aliasing.
func (q *Query[T]) clone() *Query[T] {
	q2 := *q
	q2.wheres = append([]clause(nil), q.wheres...)
	q2.havings = append([]clause(nil), q.havings...)
	q2.groupBys = append([]string(nil), q.groupBys...)
	q2.orderBys = append([]string(nil), q.orderBys...)
	q2.joins = append([]string(nil), q.joins...)
	return &q2
}

// bare returns a query on the same table with no conditions.
func (q *Query[T]) bare() *Query[T] {
	return NewQuery[T](q.db, q.table, q.columns, q.pk, q.scan, q.colValPairs)
}

// --- Builder methods ---

// Where adds a predicate. Predicates are joined with AND.
func (q *Query[T]) Where(text string, args ...any) *Query[T] {
	q2 := q.clone()
	q2.wheres = append(q2.wheres, clause{text, args})
	return q2
}

// Having adds a predicate on grouped rows. Predicates are joined with AND.
func (q *Query[T]) Having(text string, args ...any) *Query[T] {
	q2 := q.clone()
	q2.havings = append(q2.havings, clause{text, args})
	return q2
}

func (q *Query[T]) GroupBy(expr string) *Query[T] {
	q2 := q.clone()
	q2.groupBys = append(q2.groupBys, expr)
	return q2
}

func (q *Query[T]) OrderBy(expr string) *Query[T] {
	q2 := q.clone()
	q2.orderBys = append(q2.orderBys, expr)
	return q2
}

func (q *Query[T]) Limit(n int) *Query[T] {
	q2 := q.clone()
	q2.limit = &n
	return q2
}

func (q *Query[T]) Select(columns string) *Query[T] {
	q2 := q.clone()
	q2.selects = &columns
	return q2
}

// Join adds an INNER JOIN for the named relation.
func (q *Query[T]) Join(name string) *Query[T] {
	return q.addJoin("INNER JOIN", name)
}

// LeftJoin adds a LEFT JOIN for the named relation.
func (q *Query[T]) LeftJoin(name string) *Query[T] {
	return q.addJoin("LEFT JOIN", name)
}

func (q *Query[T]) addJoin(joinType, name string) *Query[T] {
	cfg, ok := q.joinDefs[name]
	if !ok {
		return q
	}
	text := fmt.Sprintf(
		"%s %s ON %s.%s = %s.%s",
		joinType,
		q.qi(cfg.TargetTable),
		q.qi(cfg.TargetTable), q.qi(cfg.TargetColumn),
		q.qi(cfg.SourceTable), q.qi(cfg.SourceColumn),
	)
	q2 := q.clone()
	q2.joins = append(q2.joins, text)
	return q2
}

// Scopes applies the given scope.Scope values to the query.
func (q *Query[T]) Scopes(scopes ...scope.Scope) *Query[T] {
	q2 := q.clone()
	for _, s := range scopes {
		s.Apply(q2)
	}
	return q2
}

// --- scope.Applier implementation ---

func (q *Query[T]) ApplyWhere(text string, args []any) {
	q.wheres = append(q.wheres, clause{text, args})
}

func (q *Query[T]) ApplyHaving(text string, args []any) {
	q.havings = append(q.havings, clause{text, args})
}

func (q *Query[T]) ApplyGroupBy(expr string) { q.groupBys = append(q.groupBys, expr) }
func (q *Query[T]) ApplyOrderBy(expr string) { q.orderBys = append(q.orderBys, expr) }
func (q *Query[T]) ApplyLimit(n int)         { q.limit = &n }

var _ scope.Applier = (*Query[any])(nil)

// --- Terminal methods ---

// All executes a SELECT and returns all matching rows.
// The result is never nil when err is nil.
func (q *Query[T]) All(ctx context.Context) ([]T, error) {
	query, args := q.buildSelect()
	query = q.rewrite(query)

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err //nolint:wrapcheck // pass through
	}
	defer func() { _ = rows.Close() }()

	result := []T{}
	for rows.Next() {
		item, err := q.scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err //nolint:wrapcheck // pass through
	}
	return result, nil
}

// First executes a SELECT with LIMIT 1 and returns the first row.
// Returns ErrNotFound if no rows match.
func (q *Query[T]) First(ctx context.Context) (T, error) {
	items, err := q.Limit(1).All(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if len(items) == 0 {
		var zero T
		return zero, ErrNotFound
	}
	return items[0], nil
}

// Create inserts a new row and replaces *t with the row as stored,
// including the generated primary key and any column defaults.
func (q *Query[T]) Create(ctx context.Context, t *T) error {
	columns, values := q.colValPairs(t, false)
	query := q.buildInsert(columns)

	if q.db.dialect().ReturnsRows() {
		query = q.rewrite(query + " RETURNING *")
		rows, err := q.db.QueryContext(ctx, query, values...)
		if err != nil {
			return err //nolint:wrapcheck // pass through
		}
		defer func() { _ = rows.Close() }()
		if !rows.Next() {
			if err := rows.Err(); err != nil {
				return err //nolint:wrapcheck // pass through
			}
			return errors.New("sqlq: INSERT RETURNING returned no rows")
		}
		row, err := q.scan(rows)
		if err != nil {
			return err
		}
		*t = row
		return rows.Err() //nolint:wrapcheck // pass through
	}

	result, err := q.db.ExecContext(ctx, q.rewrite(query), values...)
	if err != nil {
		return err //nolint:wrapcheck // pass through
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err //nolint:wrapcheck // pass through
	}
	row, err := q.bare().Where(q.qi(q.pk)+" = ?", id).First(ctx)
	if err != nil {
		return err
	}
	*t = row
	return nil
}

// --- SQL building ---

// qi quotes an identifier (table/column name) using the dialect.
func (q *Query[T]) qi(name string) string {
	return q.db.dialect().QuoteIdent(name)
}

// quoteColumns joins column names with dialect-aware quoting. Columns are
// qualified with the table name once joins are present.
func (q *Query[T]) quoteColumns(cols []string) string {
	prefix := ""
	if len(q.joins) > 0 {
		prefix = q.qi(q.table) + "."
	}
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = prefix + q.qi(c)
	}
	return strings.Join(quoted, ", ")
}

func (q *Query[T]) buildSelect() (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")

	if q.selects != nil {
		b.WriteString(*q.selects)
	} else {
		b.WriteString(q.quoteColumns(q.columns))
	}

	b.WriteString(" FROM ")
	b.WriteString(q.qi(q.table))

	for _, j := range q.joins {
		b.WriteByte(' ')
		b.WriteString(j)
	}

	args := appendClauses(&b, " WHERE ", q.wheres, nil)

	if len(q.groupBys) > 0 {
		b.WriteString(" GROUP BY ")
		b.WriteString(strings.Join(q.groupBys, ", "))
	}

	args = appendClauses(&b, " HAVING ", q.havings, args)

	if len(q.orderBys) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(q.orderBys, ", "))
	}

	if q.limit != nil {
		b.WriteString(" LIMIT ?")
		args = append(args, *q.limit)
	}

	return b.String(), args
}

func (q *Query[T]) buildInsert(columns []string) string {
	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = q.qi(c)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		q.qi(q.table),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)
}

// appendClauses writes keyword followed by the clauses joined with AND.
// Nothing is written when clauses is empty.
func appendClauses(b *strings.Builder, keyword string, clauses []clause, args []any) []any {
	if len(clauses) == 0 {
		return args
	}

	b.WriteString(keyword)
	for i, c := range clauses {
		if i > 0 {
			b.WriteString(" AND ")
		}
		b.WriteString(c.text)
		args = append(args, c.args...)
	}
	return args
}

// rewrite converts ? placeholders to dialect-specific placeholders.
func (q *Query[T]) rewrite(query string) string {
	return rewritePlaceholders(q.db.dialect(), query)
}

// rewritePlaceholders numbers every ? in textual order, which is also the
// order the builder collects args in.
func rewritePlaceholders(d Dialect, query string) string {
	var b strings.Builder
	b.Grow(len(query))
	idx := 1
	for i := range len(query) {
		if query[i] == '?' {
			b.WriteString(d.Placeholder(idx))
			idx++
		} else {
			b.WriteByte(query[i])
		}
	}
	return b.String()
}
