package model

import (
	"fmt"
	"math"
)

// PropertyFilter is the options bag for property listings. A zero field
// means the option is absent.
type PropertyFilter struct {
	City    string `json:"city,omitempty"`
	OwnerID int64  `json:"owner_id,omitempty"`

	// The price range applies only when both bounds are set. Bounds are in
	// dollars and inclusive.
	MinimumPricePerNight float64 `json:"minimum_price_per_night,omitempty"`
	MaximumPricePerNight float64 `json:"maximum_price_per_night,omitempty"`

	MinimumRating float64 `json:"minimum_rating,omitempty"`
}

// HasPriceRange reports whether both price bounds are set. NaN and
// infinite bounds count as unset.
func (f PropertyFilter) HasPriceRange() bool {
	return isSet(f.MinimumPricePerNight) && isSet(f.MaximumPricePerNight)
}

// HasMinimumRating reports whether the rating bound is set. NaN and
// infinite bounds count as unset.
func (f PropertyFilter) HasMinimumRating() bool {
	return isSet(f.MinimumRating)
}

// Validate rejects non-finite bounds.
func (f PropertyFilter) Validate() error {
	for _, b := range []struct {
		name string
		v    float64
	}{
		{"minimum price per night", f.MinimumPricePerNight},
		{"maximum price per night", f.MaximumPricePerNight},
		{"minimum rating", f.MinimumRating},
	} {
		if math.IsNaN(b.v) || math.IsInf(b.v, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", b.name, b.v)
		}
	}
	return nil
}

func isSet(v float64) bool {
	return v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
