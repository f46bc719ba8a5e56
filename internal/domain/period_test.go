package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type PeriodTestSuite struct {
	suite.Suite
}

func TestPeriodTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodTestSuite))
}

func (s *PeriodTestSuite) TestDaysRemaining() {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		end  time.Time
		want int
	}{
		{"partial day rounds up", now.Add(time.Hour), 1},
		{"exactly three days", now.Add(72 * time.Hour), 3},
		{"three days and change", now.Add(72*time.Hour + time.Minute), 4},
		{"past end date", now.Add(-time.Hour), 0},
		{"at end date", now, 0},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			p := VotingPeriod{EndDate: tc.end}
			s.Equal(tc.want, p.DaysRemaining(now))
		})
	}
}
