package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"beamband/internal/domain"
)

// MilestoneRepositoryPG implements domain.MilestoneRepository using PostgreSQL.
type MilestoneRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewMilestoneRepository creates a new milestone repo.
func NewMilestoneRepository(pool *pgxpool.Pool) *MilestoneRepositoryPG {
	return &MilestoneRepositoryPG{pool: pool}
}

// MilestonesByCity returns the city's milestones. Insertion order is kept for
// equal thresholds so the display sort stays stable.
func (r *MilestoneRepositoryPG) MilestonesByCity(ctx context.Context, citySlug string) ([]domain.Milestone, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, city_slug, amount, title, description, benefits, achieved, achieved_at
FROM milestones
WHERE city_slug = $1
ORDER BY created_at;
`, citySlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var milestones []domain.Milestone
	for rows.Next() {
		var milestone domain.Milestone
		if err := rows.Scan(&milestone.ID, &milestone.CitySlug, &milestone.Amount, &milestone.Title,
			&milestone.Description, &milestone.Benefits, &milestone.Achieved, &milestone.AchievedAt); err != nil {
			return nil, err
		}
		milestones = append(milestones, milestone)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return milestones, nil
}
