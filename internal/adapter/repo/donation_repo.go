package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"beamband/internal/domain"
)

// DonationRepositoryPG implements domain.DonationRepository using PostgreSQL.
// Donations are written by the payment pipeline, never by this service.
type DonationRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepositoryPG {
	return &DonationRepositoryPG{pool: pool}
}

// LeaderboardByCity ranks donors by total donated amount, descending. Rank is
// assigned here so it stays unique and consistent with the sort order.
func (r *DonationRepositoryPG) LeaderboardByCity(ctx context.Context, citySlug string, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx, `
SELECT donor_name, anonymous, SUM(amount) AS total, MIN(created_at) AS first_donated
FROM donations
WHERE city_slug = $1
GROUP BY donor_name, anonymous
ORDER BY total DESC, first_donated
LIMIT $2;
`, citySlug, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var entry domain.LeaderboardEntry
		var firstDonated time.Time
		if err := rows.Scan(&entry.DonorName, &entry.Anonymous, &entry.Amount, &firstDonated); err != nil {
			return nil, err
		}
		entry.Rank = len(entries) + 1
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
