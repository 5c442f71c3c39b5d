package domain

// City is one chapter of the organization. Funding totals are owned by the
// hosted data store; this layer only reads snapshots of them.
type City struct {
	Slug            string
	Name            string
	State           string
	Description     string
	ImageURL        string
	FundraisingGoal float64
	CurrentAmount   float64
	Color           string
	EventCount      int
	SupporterCount  int
	Coordinator     *Coordinator
}

// Coordinator is the local contact person for a city chapter.
type Coordinator struct {
	Name     string
	Email    string
	Phone    string
	Bio      string
	ImageURL string
}
