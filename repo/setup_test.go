package repo_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/emanuelbalogun/LightBnB/internal/database"
	"github.com/emanuelbalogun/LightBnB/model"
	"github.com/emanuelbalogun/LightBnB/query"
	"github.com/emanuelbalogun/LightBnB/repo"
	"github.com/emanuelbalogun/LightBnB/sqlq"
)

// recorder captures every statement sent through a debug DB.
type recorder struct {
	mu      sync.Mutex
	entries []sqlq.LogEntry
}

func (r *recorder) Log(_ context.Context, e sqlq.LogEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *recorder) last(t *testing.T) sqlq.LogEntry {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		t.Fatal("no statements recorded")
	}
	return r.entries[len(r.entries)-1]
}

// openSQLite returns an empty in-memory database with the LightBnB schema.
// A single connection keeps every statement on the same in-memory database.
func openSQLite(t *testing.T) *sqlq.DB {
	t.Helper()

	raw, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = raw.Close() })

	db := sqlq.New(raw, sqlq.SQLite)
	if err := database.CreateSchema(t.Context(), db, false); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}

// fixture holds the rows created by seed.
type fixture struct {
	db    *sqlq.DB
	store *repo.Store

	alice model.User
	bob   model.User

	loft    model.Property
	cabin   model.Property
	condo   model.Property
	house   model.Property
	fillers []model.Property

	bobLoft    model.Reservation
	bobCabin   model.Reservation
	bobCondo   model.Reservation
	aliceLoft  model.Reservation
	aliceCabin model.Reservation
}

// seed loads four named properties plus eight Halifax fillers, reservations
// and reviews:
//
//	loft   alice  Vancouver        $150  ratings 5, 4  (avg 4.5)
//	cabin  bob    North Vancouver  $90   rating 3
//	condo  alice  Toronto          $200  rating 4
//	house  bob    Calgary          $50   no reviews
//	filler bob    Halifax          $300.. $307
func seed(t *testing.T) *fixture {
	t.Helper()

	ctx := t.Context()
	db := openSQLite(t)
	f := &fixture{db: db, store: repo.NewStore(db)}

	users := f.store.Users
	var err error
	if f.alice, err = users.AddUser(ctx, model.NewUser{Name: "Alice", Email: "alice@example.com", Password: "hash-a"}); err != nil {
		t.Fatalf("add alice: %v", err)
	}
	if f.bob, err = users.AddUser(ctx, model.NewUser{Name: "Bob", Email: "bob@example.com", Password: "hash-b"}); err != nil {
		t.Fatalf("add bob: %v", err)
	}

	props := f.store.Properties
	add := func(owner model.User, title, city string, cost float64) model.Property {
		p, err := props.AddProperty(ctx, model.NewProperty{
			OwnerID:      owner.ID,
			Title:        title,
			Description:  title + " description",
			CostPerNight: cost,
			City:         city,
			Country:      "Canada",
		})
		if err != nil {
			t.Fatalf("add property %s: %v", title, err)
		}
		return p
	}
	f.loft = add(f.alice, "Vancouver Loft", "Vancouver", 150)
	f.cabin = add(f.bob, "North Shore Cabin", "North Vancouver", 90)
	f.condo = add(f.alice, "Toronto Condo", "Toronto", 200)
	f.house = add(f.bob, "Calgary House", "Calgary", 50)
	for i := range 8 {
		f.fillers = append(f.fillers, add(f.bob, fmt.Sprintf("Halifax Flat %d", i), "Halifax", 300+float64(i)))
	}

	reserve := func(guest model.User, p model.Property, start model.Date) model.Reservation {
		r := model.Reservation{PropertyID: p.ID, GuestID: guest.ID, StartDate: start, EndDate: model.Date{Time: start.AddDate(0, 0, 3)}}
		if err := query.Reservations(db).Create(ctx, &r); err != nil {
			t.Fatalf("add reservation: %v", err)
		}
		return r
	}
	f.bobLoft = reserve(f.bob, f.loft, model.NewDate(2023, 1, 5))
	f.bobCabin = reserve(f.bob, f.cabin, model.NewDate(2023, 3, 1))
	f.bobCondo = reserve(f.bob, f.condo, model.NewDate(2022, 12, 1))
	f.aliceLoft = reserve(f.alice, f.loft, model.NewDate(2022, 6, 1))
	f.aliceCabin = reserve(f.alice, f.cabin, model.NewDate(2023, 2, 1))

	review := func(r model.Reservation, rating int) {
		rv := model.PropertyReview{GuestID: r.GuestID, PropertyID: r.PropertyID, ReservationID: r.ID, Rating: rating, Message: "ok"}
		if err := query.PropertyReviews(db).Create(ctx, &rv); err != nil {
			t.Fatalf("add review: %v", err)
		}
	}
	review(f.bobLoft, 5)
	review(f.aliceLoft, 4)
	review(f.aliceCabin, 3)
	review(f.bobCondo, 4)

	return f
}
