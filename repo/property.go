package repo

import (
	"context"
	"strings"

	"github.com/emanuelbalogun/LightBnB/model"
	"github.com/emanuelbalogun/LightBnB/query"
	"github.com/emanuelbalogun/LightBnB/scope"
	"github.com/emanuelbalogun/LightBnB/sqlq"
)

const propertyListColumns = "properties.*, avg(property_reviews.rating) AS average_rating"

// likeEscaper makes % and _ in a city filter match literally. '!' is the
// escape character since MySQL also treats a backslash as one inside string
// literals.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// PropertyRepository reads and writes the properties table.
type PropertyRepository struct {
	db sqlq.Querier
}

// NewPropertyRepository returns a PropertyRepository running on db.
func NewPropertyRepository(db sqlq.Querier) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// AllProperties lists properties matching f, cheapest first, each with its
// average rating. A limit <= 0 means DefaultLimit.
func (r *PropertyRepository) AllProperties(ctx context.Context, f model.PropertyFilter, limit int) ([]model.Property, error) {
	ps, err := query.Properties(r.db).
		Select(propertyListColumns).
		LeftJoin("reviews").
		Scopes(propertyScopes(f, limit)...).
		All(ctx)
	if err != nil {
		return nil, fail(ctx, "list properties", err)
	}
	return ps, nil
}

// propertyScopes turns the options bag into predicates, in a fixed order.
// The city match folds case on both sides in SQL, so it folds exactly the
// characters the database's LOWER folds.
func propertyScopes(f model.PropertyFilter, limit int) scope.Scopes {
	var s scope.Scopes
	s = s.AppendIf(f.City != "",
		scope.Where("LOWER(properties.city) LIKE LOWER(?) ESCAPE '!'", "%"+likeEscaper.Replace(f.City)+"%"))
	s = s.AppendIf(f.OwnerID != 0,
		scope.Where("properties.owner_id = ?", f.OwnerID))
	s = s.AppendIf(f.HasPriceRange(),
		scope.Where("properties.cost_per_night BETWEEN ? AND ?",
			model.Cents(f.MinimumPricePerNight), model.Cents(f.MaximumPricePerNight)))
	s = s.AppendIf(f.HasMinimumRating(),
		scope.Having("AVG(property_reviews.rating) >= ?", f.MinimumRating))
	return s.Append(
		scope.GroupBy("properties.id"),
		scope.OrderBy("properties.cost_per_night"),
		scope.Limit(limitOrDefault(limit)),
	)
}

// AddProperty inserts the property, storing its cost in cents, and returns
// the stored row.
func (r *PropertyRepository) AddProperty(ctx context.Context, p model.NewProperty) (model.Property, error) {
	row := p.Row()
	if err := query.Properties(r.db).Create(ctx, &row); err != nil {
		return model.Property{}, fail(ctx, "add property", err)
	}
	return row, nil
}
