package repo_test

import (
	"testing"
)

func TestAllReservations(t *testing.T) {
	t.Parallel()

	f := seed(t)
	got, err := f.store.Reservations.AllReservations(t.Context(), f.bob.ID, 0)
	if err != nil {
		t.Fatalf("AllReservations: %v", err)
	}

	want := []struct {
		id     int64
		title  string
		cost   int64
		rating float64
	}{
		{f.bobCabin.ID, "North Shore Cabin", 9000, 3},
		{f.bobLoft.ID, "Vancouver Loft", 15000, 4.5},
		{f.bobCondo.ID, "Toronto Condo", 20000, 4},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		r := got[i]
		if r.ID != w.id || r.Title != w.title || r.CostPerNight != w.cost {
			t.Errorf("[%d] = {id %d, %q, %d}, want {id %d, %q, %d}", i, r.ID, r.Title, r.CostPerNight, w.id, w.title, w.cost)
		}
		if r.GuestID != f.bob.ID {
			t.Errorf("[%d].GuestID = %d, want %d", i, r.GuestID, f.bob.ID)
		}
		if r.AverageRating == nil || *r.AverageRating != w.rating {
			t.Errorf("[%d].AverageRating = %v, want %v", i, r.AverageRating, w.rating)
		}
	}
	if got[0].StartDate.String() != "2023-03-01" || got[0].EndDate.String() != "2023-03-04" {
		t.Errorf("dates = %s..%s, want 2023-03-01..2023-03-04", got[0].StartDate, got[0].EndDate)
	}
}

func TestAllReservationsLimit(t *testing.T) {
	t.Parallel()

	f := seed(t)
	got, err := f.store.Reservations.AllReservations(t.Context(), f.bob.ID, 2)
	if err != nil {
		t.Fatalf("AllReservations: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != f.bobCabin.ID || got[1].ID != f.bobLoft.ID {
		t.Errorf("ids = %d, %d, want %d, %d", got[0].ID, got[1].ID, f.bobCabin.ID, f.bobLoft.ID)
	}
}

func TestAllReservationsUnknownGuest(t *testing.T) {
	t.Parallel()

	f := seed(t)
	got, err := f.store.Reservations.AllReservations(t.Context(), 9999, 10)
	if err != nil {
		t.Fatalf("AllReservations: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
