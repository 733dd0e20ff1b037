package domain

import "time"

// Goal is a user goal, either entered manually or produced by the
// goal generator. Goals are never deleted by the pipeline; the only
// mutation after creation is toggling IsAchieved.
type Goal struct {
	ID string

	UserID string

	// Content is the goal text.
	Content string

	// IsAchieved marks a completed goal. Open goals (IsAchieved=false)
	// are fed back into generation as context.
	IsAchieved bool

	// IsAIGenerated distinguishes generated goals from manual ones.
	IsAIGenerated bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Achievement is an earned badge. Read-only from this service's
// perspective; only the data export touches it.
type Achievement struct {
	ID         string
	UserID     string
	BadgeType  string
	AchievedAt time.Time
}
