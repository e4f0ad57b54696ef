package sqlq

import "database/sql"

// NullZero returns a scanner that stores NULL as the zero value of T. Any
// other value is converted the way sql.Null[T] converts it.
func NullZero[T any](dst *T) sql.Scanner {
	return nullZero[T]{dst: dst}
}

type nullZero[T any] struct {
	dst *T
}

func (z nullZero[T]) Scan(src any) error {
	var n sql.Null[T]
	if err := n.Scan(src); err != nil {
		return err //nolint:wrapcheck // pass through
	}
	*z.dst = n.V
	return nil
}
