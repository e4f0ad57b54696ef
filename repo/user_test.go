package repo_test

import (
	"errors"
	"testing"

	"github.com/emanuelbalogun/LightBnB/model"
	"github.com/emanuelbalogun/LightBnB/sqlq"
)

func TestUserWithEmailUnknown(t *testing.T) {
	t.Parallel()

	f := seed(t)
	for _, email := range []string{"nobody@example.com", "", "ALICE@example.com"} {
		_, err := f.store.Users.UserWithEmail(t.Context(), email)
		if !errors.Is(err, sqlq.ErrNotFound) {
			t.Errorf("UserWithEmail(%q) error = %v, want ErrNotFound", email, err)
		}
	}
}

func TestAddUserThenUserWithEmail(t *testing.T) {
	t.Parallel()

	f := seed(t)
	ctx := t.Context()

	added, err := f.store.Users.AddUser(ctx, model.NewUser{Name: "Carol", Email: "carol@example.com", Password: "hash-c"})
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if added.ID == 0 {
		t.Fatal("expected ID to be set after AddUser")
	}

	got, err := f.store.Users.UserWithEmail(ctx, "carol@example.com")
	if err != nil {
		t.Fatalf("UserWithEmail: %v", err)
	}
	if got.ID != added.ID || got.Name != "Carol" || got.Email != "carol@example.com" || got.Password != "hash-c" {
		t.Errorf("UserWithEmail = %+v, want %+v", got, added)
	}
}

func TestAddUserDuplicateEmail(t *testing.T) {
	t.Parallel()

	f := seed(t)
	_, err := f.store.Users.AddUser(t.Context(), model.NewUser{Name: "Alice 2", Email: "alice@example.com", Password: "x"})
	if err == nil {
		t.Fatal("AddUser with duplicate email returned nil error")
	}
	if errors.Is(err, sqlq.ErrNotFound) {
		t.Errorf("duplicate email reported as not found: %v", err)
	}
}

func TestUsersWithID(t *testing.T) {
	t.Parallel()

	f := seed(t)
	ctx := t.Context()

	users, err := f.store.Users.UsersWithID(ctx, f.bob.ID)
	if err != nil {
		t.Fatalf("UsersWithID: %v", err)
	}
	if len(users) != 1 || users[0].Email != "bob@example.com" {
		t.Errorf("UsersWithID(%d) = %+v", f.bob.ID, users)
	}

	users, err = f.store.Users.UsersWithID(ctx, 9999)
	if err != nil {
		t.Fatalf("UsersWithID(missing): %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Errorf("UsersWithID(missing) = %#v, want empty slice", users)
	}
}
