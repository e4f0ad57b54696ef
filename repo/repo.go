// Package repo is the data access layer of LightBnB. Each repository method
// is a single parameterized round trip through an injected sqlq.Querier.
//
// Failures are returned, never swallowed. Single-row lookups report a
// missing row as sqlq.ErrNotFound; every other failure is also logged at
// error level on the zerolog logger carried by the context.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emanuelbalogun/LightBnB/sqlq"
)

// DefaultLimit caps listings when the caller passes a limit <= 0.
const DefaultLimit = 10

// ErrNestedTransaction is returned by Store.Transaction on a store that is
// already bound to a transaction.
var ErrNestedTransaction = errors.New("repo: nested transaction")

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

func fail(ctx context.Context, op string, err error) error {
	if !errors.Is(err, sqlq.ErrNotFound) {
		zerolog.Ctx(ctx).Error().Err(err).Str("op", op).Msg("query failed")
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Store bundles the repositories over one Querier.
type Store struct {
	Users        *UserRepository
	Reservations *ReservationRepository
	Properties   *PropertyRepository

	db *sqlq.DB
}

// NewStore returns a Store whose repositories run on db.
func NewStore(db *sqlq.DB) *Store {
	s := newStore(db)
	s.db = db
	return s
}

func newStore(q sqlq.Querier) *Store {
	return &Store{
		Users:        NewUserRepository(q),
		Reservations: NewReservationRepository(q),
		Properties:   NewPropertyRepository(q),
	}
}

// Transaction runs fn with a Store bound to a new transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	if s.db == nil {
		return ErrNestedTransaction
	}
	return s.db.Transaction(ctx, func(tx *sqlq.Tx) error {
		return fn(newStore(tx))
	})
}
