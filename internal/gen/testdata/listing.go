package testdata

import "time"

type Listing struct {
	ID            int64     `db:"id,primaryKey"`
	OwnerID       int64     `db:"owner_id"`
	Title         string    `db:"title"`
	Available     bool      `db:"available"`
	ListedAt      time.Time `db:"listed_at"`
	AverageRating *float64  `db:"average_rating,readonly"`
	Reviews       []Review  `db:"-"`
	internal      string    // unexported, no tag: skipped
}

type Review struct {
	ID        int64  `db:"id,primaryKey"`
	ListingID int64  `db:"listing_id"`
	Message   string `db:"message"`
}
