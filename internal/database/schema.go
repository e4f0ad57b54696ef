package database

import (
	"context"
	"fmt"

	"github.com/emanuelbalogun/LightBnB/sqlq"
)

// Tables lists the LightBnB tables in creation order.
var Tables = []string{"users", "properties", "reservations", "property_reviews"}

// idColumn returns an auto-incrementing primary key column for d.
func idColumn(d sqlq.Dialect) string {
	switch d {
	case sqlq.MySQL:
		return "id BIGINT AUTO_INCREMENT PRIMARY KEY"
	case sqlq.PostgreSQL:
		return "id SERIAL PRIMARY KEY"
	default:
		return "id INTEGER PRIMARY KEY AUTOINCREMENT"
	}
}

// Schema returns the CREATE TABLE statements for d, in the order of Tables.
func Schema(d sqlq.Dialect) []string {
	id := idColumn(d)
	ref := "INTEGER"
	if d == sqlq.MySQL {
		ref = "BIGINT"
	}
	return []string{
		`CREATE TABLE users (
	` + id + `,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL
)`,
		`CREATE TABLE properties (
	` + id + `,
	owner_id ` + ref + ` NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	title VARCHAR(255) NOT NULL,
	description TEXT,
	thumbnail_photo_url VARCHAR(255),
	cover_photo_url VARCHAR(255),
	cost_per_night INTEGER NOT NULL DEFAULT 0,
	parking_spaces INTEGER NOT NULL DEFAULT 0,
	number_of_bathrooms INTEGER NOT NULL DEFAULT 0,
	number_of_bedrooms INTEGER NOT NULL DEFAULT 0,
	country VARCHAR(255),
	street VARCHAR(255),
	city VARCHAR(255),
	province VARCHAR(255),
	post_code VARCHAR(255),
	active BOOLEAN NOT NULL DEFAULT TRUE
)`,
		`CREATE TABLE reservations (
	` + id + `,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	property_id ` + ref + ` NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
	guest_id ` + ref + ` NOT NULL REFERENCES users(id) ON DELETE CASCADE
)`,
		`CREATE TABLE property_reviews (
	` + id + `,
	guest_id ` + ref + ` NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	property_id ` + ref + ` NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
	reservation_id ` + ref + ` NOT NULL REFERENCES reservations(id) ON DELETE CASCADE,
	rating SMALLINT NOT NULL DEFAULT 0,
	message TEXT
)`,
	}
}

// CreateSchema creates the LightBnB tables on db. When reset is true the
// tables are dropped first.
func CreateSchema(ctx context.Context, db *sqlq.DB, reset bool) error {
	if reset {
		for i := len(Tables) - 1; i >= 0; i-- {
			if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+Tables[i]); err != nil {
				return fmt.Errorf("drop %s: %w", Tables[i], err)
			}
		}
	}
	for i, stmt := range Schema(db.Dialect()) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create %s: %w", Tables[i], err)
		}
	}
	return nil
}
