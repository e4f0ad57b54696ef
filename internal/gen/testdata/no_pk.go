package testdata

type NoPK struct {
	Name  string `db:"name"`
	Email string `db:"email"`
}

type TwoPK struct {
	ID    int64 `db:"id,primaryKey"`
	Other int64 `db:"other,primaryKey"`
}

type ReadOnlyPK struct {
	ID int64 `db:"id,primaryKey,readonly"`
}
