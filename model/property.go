package model

import "math"

//go:generate go run ../cmd/sqlqgen --type Property --out ../query --join reviews:property_reviews.property_id=properties.id

// Property is a row of the properties table. CostPerNight is stored in
// cents and returned as stored.
type Property struct {
	ID                int64  `db:"id,primaryKey" json:"id"`
	OwnerID           int64  `db:"owner_id" json:"owner_id"`
	Title             string `db:"title" json:"title"`
	Description       string `db:"description" json:"description"`
	ThumbnailPhotoURL string `db:"thumbnail_photo_url" json:"thumbnail_photo_url"`
	CoverPhotoURL     string `db:"cover_photo_url" json:"cover_photo_url"`
	CostPerNight      int64  `db:"cost_per_night" json:"cost_per_night"`
	Street            string `db:"street" json:"street"`
	City              string `db:"city" json:"city"`
	Province          string `db:"province" json:"province"`
	PostCode          string `db:"post_code" json:"post_code"`
	Country           string `db:"country" json:"country"`
	ParkingSpaces     int    `db:"parking_spaces" json:"parking_spaces"`
	NumberOfBathrooms int    `db:"number_of_bathrooms" json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `db:"number_of_bedrooms" json:"number_of_bedrooms"`

	// AverageRating is only set by listing queries; nil when the property
	// has no reviews.
	AverageRating *float64 `db:"average_rating,readonly" json:"average_rating,omitempty"`
}

// PricePerNight returns CostPerNight in dollars.
func (p Property) PricePerNight() float64 {
	return float64(p.CostPerNight) / 100
}

// NewProperty is the input to AddProperty. CostPerNight is in dollars.
type NewProperty struct {
	OwnerID           int64   `json:"owner_id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	ThumbnailPhotoURL string  `json:"thumbnail_photo_url"`
	CoverPhotoURL     string  `json:"cover_photo_url"`
	CostPerNight      float64 `json:"cost_per_night"`
	Street            string  `json:"street"`
	City              string  `json:"city"`
	Province          string  `json:"province"`
	PostCode          string  `json:"post_code"`
	Country           string  `json:"country"`
	ParkingSpaces     int     `json:"parking_spaces"`
	NumberOfBathrooms int     `json:"number_of_bathrooms"`
	NumberOfBedrooms  int     `json:"number_of_bedrooms"`
}

// Row converts the input to a Property ready for storage.
func (p NewProperty) Row() Property {
	return Property{
		OwnerID:           p.OwnerID,
		Title:             p.Title,
		Description:       p.Description,
		ThumbnailPhotoURL: p.ThumbnailPhotoURL,
		CoverPhotoURL:     p.CoverPhotoURL,
		CostPerNight:      Cents(p.CostPerNight),
		Street:            p.Street,
		City:              p.City,
		Province:          p.Province,
		PostCode:          p.PostCode,
		Country:           p.Country,
		ParkingSpaces:     p.ParkingSpaces,
		NumberOfBathrooms: p.NumberOfBathrooms,
		NumberOfBedrooms:  p.NumberOfBedrooms,
	}
}

// Cents converts a dollar amount to integer cents, rounding to the
// nearest cent.
func Cents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}
