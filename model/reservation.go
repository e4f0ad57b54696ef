package model

//go:generate go run ../cmd/sqlqgen --type Reservation --out ../query --join property:properties.id=reservations.property_id --join reviews:property_reviews.property_id=reservations.property_id
//go:generate go run ../cmd/sqlqgen --type PropertyReview --out ../query

// Reservation is a row of the reservations table. Listing queries add the
// reserved property's title, cost and average rating.
type Reservation struct {
	ID         int64 `db:"id,primaryKey" json:"id"`
	PropertyID int64 `db:"property_id" json:"property_id"`
	GuestID    int64 `db:"guest_id" json:"guest_id"`
	StartDate  Date  `db:"start_date" json:"start_date"`
	EndDate    Date  `db:"end_date" json:"end_date"`

	Title         string   `db:"title,readonly" json:"title,omitempty"`
	CostPerNight  int64    `db:"cost_per_night,readonly" json:"cost_per_night,omitempty"`
	AverageRating *float64 `db:"average_rating,readonly" json:"average_rating,omitempty"`
}

// PropertyReview is a row of the property_reviews table.
type PropertyReview struct {
	ID            int64  `db:"id,primaryKey" json:"id"`
	GuestID       int64  `db:"guest_id" json:"guest_id"`
	PropertyID    int64  `db:"property_id" json:"property_id"`
	ReservationID int64  `db:"reservation_id" json:"reservation_id"`
	Rating        int    `db:"rating" json:"rating"`
	Message       string `db:"message" json:"message"`
}
