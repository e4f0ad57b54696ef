package repo

import (
	"context"

	"github.com/emanuelbalogun/LightBnB/model"
	"github.com/emanuelbalogun/LightBnB/query"
	"github.com/emanuelbalogun/LightBnB/sqlq"
)

const reservationListColumns = "reservations.*, properties.title, properties.cost_per_night, " +
	"avg(property_reviews.rating) AS average_rating"

// ReservationRepository reads the reservations table.
type ReservationRepository struct {
	db sqlq.Querier
}

// NewReservationRepository returns a ReservationRepository running on db.
func NewReservationRepository(db sqlq.Querier) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// AllReservations returns the guest's reservations, newest start date
// first, each with its property's title, cost and average rating. Only
// reservations of reviewed properties are listed. A limit <= 0 means
// DefaultLimit.
func (r *ReservationRepository) AllReservations(ctx context.Context, guestID int64, limit int) ([]model.Reservation, error) {
	rs, err := query.Reservations(r.db).
		Select(reservationListColumns).
		Join("property").
		Join("reviews").
		Where("reservations.guest_id = ?", guestID).
		GroupBy("properties.id").
		GroupBy("reservations.id").
		OrderBy("reservations.start_date DESC").
		Limit(limitOrDefault(limit)).
		All(ctx)
	if err != nil {
		return nil, fail(ctx, "list reservations", err)
	}
	return rs, nil
}
