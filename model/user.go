package model

//go:generate go run ../cmd/sqlqgen --type User --out ../query

// User is a row of the users table. Password holds a hash produced by the
// caller; this layer stores it as given.
type User struct {
	ID       int64  `db:"id,primaryKey" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
}

// NewUser is the input to AddUser.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Row converts the input to a User without an id.
func (u NewUser) Row() User {
	return User{Name: u.Name, Email: u.Email, Password: u.Password}
}
