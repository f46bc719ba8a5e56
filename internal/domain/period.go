package domain

import "time"

// Voting period statuses. A period is "rotating" only for the duration of
// the rotation transaction that claims it.
const (
	PeriodActive   = "active"
	PeriodRotating = "rotating"
	PeriodArchived = "archived"
)

// PeriodLength is the fixed voting window.
const PeriodLength = 14 * 24 * time.Hour

// VotingPeriod is a fortnightly community-voting window. At most one period
// is active at any time.
type VotingPeriod struct {
	ID            int64      `db:"id"`
	PeriodNumber  int        `db:"period_number"`
	StartDate     time.Time  `db:"start_date"`
	EndDate       time.Time  `db:"end_date"`
	Status        string     `db:"status"`
	Winner1ID     *int64     `db:"winner_1_id"`
	Winner2ID     *int64     `db:"winner_2_id"`
	Winner3ID     *int64     `db:"winner_3_id"`
	TotalArticles int        `db:"total_articles"`
	TotalVotes    int        `db:"total_votes"`
	UpdatedAt     *time.Time `db:"updated_at"`
}

// PeriodClose carries the snapshot recorded when a period is archived.
type PeriodClose struct {
	Winner1ID     *int64
	Winner2ID     *int64
	Winner3ID     *int64
	TotalArticles int
	TotalVotes    int
}

// DaysRemaining reports whole days until the period ends, floored at zero.
func (p *VotingPeriod) DaysRemaining(now time.Time) int {
	remaining := p.EndDate.Sub(now)
	if remaining <= 0 {
		return 0
	}
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) != 0 {
		days++
	}
	return days
}
