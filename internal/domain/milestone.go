package domain

import "time"

// Milestone is a funding threshold that unlocks community benefits once the
// city's raised amount reaches it. The Achieved flag is persisted state from
// the data store; crossing detection on fresher totals happens at read time.
type Milestone struct {
	ID          string
	CitySlug    string
	Amount      float64
	Title       string
	Description string
	Benefits    []string
	Achieved    bool
	AchievedAt  *time.Time
}
