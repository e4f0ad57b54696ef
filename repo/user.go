package repo

import (
	"context"

	"github.com/emanuelbalogun/LightBnB/model"
	"github.com/emanuelbalogun/LightBnB/query"
	"github.com/emanuelbalogun/LightBnB/sqlq"
)

// UserRepository reads and writes the users table.
type UserRepository struct {
	db sqlq.Querier
}

// NewUserRepository returns a UserRepository running on db.
func NewUserRepository(db sqlq.Querier) *UserRepository {
	return &UserRepository{db: db}
}

// UserWithEmail returns the user with exactly this email, or an error
// wrapping sqlq.ErrNotFound.
func (r *UserRepository) UserWithEmail(ctx context.Context, email string) (model.User, error) {
	u, err := query.Users(r.db).Where("email = ?", email).First(ctx)
	if err != nil {
		return model.User{}, fail(ctx, "get user by email", err)
	}
	return u, nil
}

// UsersWithID returns every user row with this id. Unlike UserWithEmail
// the result is a slice, empty when nothing matches.
func (r *UserRepository) UsersWithID(ctx context.Context, id int64) ([]model.User, error) {
	users, err := query.Users(r.db).Where("id = ?", id).All(ctx)
	if err != nil {
		return nil, fail(ctx, "get users by id", err)
	}
	return users, nil
}

// AddUser inserts the user and returns the stored row with its id.
func (r *UserRepository) AddUser(ctx context.Context, u model.NewUser) (model.User, error) {
	row := u.Row()
	if err := query.Users(r.db).Create(ctx, &row); err != nil {
		return model.User{}, fail(ctx, "add user", err)
	}
	return row, nil
}
