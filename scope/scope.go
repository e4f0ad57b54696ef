// Package scope holds reusable query fragments. A Scope is applied to any
// builder implementing Applier, which lets callers assemble optional
// predicates as plain values before a query exists.
package scope

// Applier is implemented by query builders to receive scope fragments.
// This interface lives in the scope package so that sqlq can import scope
// without creating circular dependencies.
type Applier interface {
	ApplyWhere(clause string, args []any)
	ApplyHaving(clause string, args []any)
	ApplyGroupBy(expr string)
	ApplyOrderBy(expr string)
	ApplyLimit(n int)
}

type scopeKind int

const (
	kindWhere scopeKind = iota
	kindHaving
	kindGroupBy
	kindOrderBy
	kindLimit
)

// Scope represents a single query fragment.
// Scopes are immutable and safe to reuse across queries.
type Scope struct {
	kind   scopeKind
	clause string
	args   []any
	n      int
}

// Apply dispatches this Scope to the given Applier.
func (s Scope) Apply(a Applier) {
	switch s.kind {
	case kindWhere:
		a.ApplyWhere(s.clause, s.args)
	case kindHaving:
		a.ApplyHaving(s.clause, s.args)
	case kindGroupBy:
		a.ApplyGroupBy(s.clause)
	case kindOrderBy:
		a.ApplyOrderBy(s.clause)
	case kindLimit:
		a.ApplyLimit(s.n)
	}
}

// Where returns a Scope that adds a WHERE predicate. Predicates from
// several Where scopes are joined with AND.
//
//	scope.Where("owner_id = ?", 3)
//	scope.Where("cost_per_night BETWEEN ? AND ?", 5000, 20000)
func Where(clause string, args ...any) Scope {
	return Scope{kind: kindWhere, clause: clause, args: args}
}

// Having returns a Scope that adds a HAVING predicate on grouped rows.
//
//	scope.Having("avg(rating) >= ?", 4)
func Having(clause string, args ...any) Scope {
	return Scope{kind: kindHaving, clause: clause, args: args}
}

// GroupBy returns a Scope that adds a GROUP BY expression.
func GroupBy(expr string) Scope {
	return Scope{kind: kindGroupBy, clause: expr}
}

// OrderBy returns a Scope that adds an ORDER BY expression.
//
//	scope.OrderBy("start_date DESC")
func OrderBy(expr string) Scope {
	return Scope{kind: kindOrderBy, clause: expr}
}

// Limit returns a Scope that sets the LIMIT.
func Limit(n int) Scope {
	return Scope{kind: kindLimit, n: n}
}

// Scopes is an ordered list of Scope values, useful for conditionally
// building up a query.
//
//	var s scope.Scopes
//	s = s.AppendIf(city != "", scope.Where("city = ?", city))
//	s = s.Append(scope.OrderBy("cost_per_night"))
//	query.Properties(db).Scopes(s...).All(ctx)
type Scopes []Scope

// Append adds scopes and returns a new Scopes. The receiver is not modified.
func (ss Scopes) Append(scopes ...Scope) Scopes {
	return append(append(Scopes(nil), ss...), scopes...)
}

// AppendIf is Append when cond is true and a copy of the receiver otherwise.
func (ss Scopes) AppendIf(cond bool, scopes ...Scope) Scopes {
	if !cond {
		return append(Scopes(nil), ss...)
	}
	return ss.Append(scopes...)
}
