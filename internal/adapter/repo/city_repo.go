package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"beamband/internal/domain"
)

// CityRepositoryPG implements domain.CityRepository using PostgreSQL.
type CityRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewCityRepository creates a new city repo.
func NewCityRepository(pool *pgxpool.Pool) *CityRepositoryPG {
	return &CityRepositoryPG{pool: pool}
}

// List returns all city chapters ordered by name.
func (r *CityRepositoryPG) List(ctx context.Context) ([]domain.City, error) {
	rows, err := r.pool.Query(ctx, `
SELECT slug, name, state, description, image_url, fundraising_goal, current_amount, color, event_count, supporter_count
FROM cities
ORDER BY name;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []domain.City
	for rows.Next() {
		var city domain.City
		if err := rows.Scan(&city.Slug, &city.Name, &city.State, &city.Description, &city.ImageURL,
			&city.FundraisingGoal, &city.CurrentAmount, &city.Color, &city.EventCount, &city.SupporterCount); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cities, nil
}

// GetBySlug returns one city with its coordinator, or domain.ErrNotFound.
func (r *CityRepositoryPG) GetBySlug(ctx context.Context, slug string) (*domain.City, error) {
	var city domain.City
	err := r.pool.QueryRow(ctx, `
SELECT slug, name, state, description, image_url, fundraising_goal, current_amount, color, event_count, supporter_count
FROM cities
WHERE slug = $1;
`, slug).Scan(&city.Slug, &city.Name, &city.State, &city.Description, &city.ImageURL,
		&city.FundraisingGoal, &city.CurrentAmount, &city.Color, &city.EventCount, &city.SupporterCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var coordinator domain.Coordinator
	err = r.pool.QueryRow(ctx, `
SELECT name, email, phone, bio, image_url
FROM coordinators
WHERE city_slug = $1;
`, slug).Scan(&coordinator.Name, &coordinator.Email, &coordinator.Phone, &coordinator.Bio, &coordinator.ImageURL)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// A chapter without a coordinator is still renderable.
	case err != nil:
		return nil, err
	default:
		city.Coordinator = &coordinator
	}
	return &city, nil
}
