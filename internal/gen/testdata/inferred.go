package testdata

type Inferred struct {
	ID           int64  `db:",primaryKey"`
	CostPerNight int64  // no db tag: column inferred as "cost_per_night"
	PhotoURL     string // no db tag: column inferred as "photo_url"
	Secret       string `db:"-"` // explicitly skipped
}
