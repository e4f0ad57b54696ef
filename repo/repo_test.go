package repo_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emanuelbalogun/LightBnB/model"
	"github.com/emanuelbalogun/LightBnB/repo"
	"github.com/emanuelbalogun/LightBnB/sqlq"
)

func TestTransactionCommit(t *testing.T) {
	t.Parallel()

	f := seed(t)
	ctx := t.Context()

	err := f.store.Transaction(ctx, func(tx *repo.Store) error {
		u, err := tx.Users.AddUser(ctx, model.NewUser{Name: "Dana", Email: "dana@example.com", Password: "h"})
		if err != nil {
			return err
		}
		_, err = tx.Properties.AddProperty(ctx, model.NewProperty{OwnerID: u.ID, Title: "Dana's Place", CostPerNight: 80, City: "Victoria"})
		return err
	})
	if err != nil {
		t.Fatalf("Transaction: %v", err)
	}

	u, err := f.store.Users.UserWithEmail(ctx, "dana@example.com")
	if err != nil {
		t.Fatalf("UserWithEmail after commit: %v", err)
	}
	ps, err := f.store.Properties.AllProperties(ctx, model.PropertyFilter{OwnerID: u.ID}, 0)
	if err != nil {
		t.Fatalf("AllProperties after commit: %v", err)
	}
	if len(ps) != 1 || ps[0].CostPerNight != 8000 {
		t.Errorf("properties after commit = %+v", ps)
	}
}

func TestTransactionRollback(t *testing.T) {
	t.Parallel()

	f := seed(t)
	ctx := t.Context()
	errAbort := errors.New("abort")

	err := f.store.Transaction(ctx, func(tx *repo.Store) error {
		if _, err := tx.Users.AddUser(ctx, model.NewUser{Name: "Eve", Email: "eve@example.com", Password: "h"}); err != nil {
			return err
		}
		return errAbort
	})
	if !errors.Is(err, errAbort) {
		t.Fatalf("Transaction error = %v, want %v", err, errAbort)
	}

	if _, err := f.store.Users.UserWithEmail(ctx, "eve@example.com"); !errors.Is(err, sqlq.ErrNotFound) {
		t.Errorf("UserWithEmail after rollback error = %v, want ErrNotFound", err)
	}
}

func TestTransactionNested(t *testing.T) {
	t.Parallel()

	f := seed(t)
	ctx := t.Context()

	err := f.store.Transaction(ctx, func(tx *repo.Store) error {
		return tx.Transaction(ctx, func(*repo.Store) error { return nil })
	})
	if !errors.Is(err, repo.ErrNestedTransaction) {
		t.Errorf("nested Transaction error = %v, want ErrNestedTransaction", err)
	}
}

func TestFailuresAreLoggedAndReturned(t *testing.T) {
	t.Parallel()

	db := openSQLite(t)
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(t.Context())

	_, err := repo.NewStore(db).Users.UserWithEmail(ctx, "alice@example.com")
	if err == nil {
		t.Fatal("UserWithEmail on closed DB returned nil error")
	}
	if errors.Is(err, sqlq.ErrNotFound) {
		t.Errorf("failure reported as not found: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "get user by email: ") {
		t.Errorf("error = %q, want op prefix", err)
	}
	if !strings.Contains(buf.String(), `"op":"get user by email"`) {
		t.Errorf("log = %q, want op field", buf.String())
	}
}

func TestNotFoundIsNotLogged(t *testing.T) {
	t.Parallel()

	db := openSQLite(t)
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(t.Context())

	if _, err := repo.NewStore(db).Users.UserWithEmail(ctx, "ghost@example.com"); !errors.Is(err, sqlq.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if buf.Len() != 0 {
		t.Errorf("log = %q, want empty", buf.String())
	}
}
