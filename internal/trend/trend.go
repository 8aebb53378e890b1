// Package trend compares a scan's score against the previous stored score.
package trend

import (
	"reputation_pulse/internal/domain"
	"reputation_pulse/internal/scoring"
)

// Build derives the trend of current relative to previous. A nil previous
// marks the first scan of a handle: direction "new" with a zero delta.
func Build(current float64, previous *float64) domain.Trend {
	if previous == nil {
		return domain.Trend{Direction: domain.TrendNew, Delta: 0.0}
	}

	delta := scoring.Round2(current - *previous)
	direction := domain.TrendStable
	switch {
	case delta > 0:
		direction = domain.TrendUp
	case delta < 0:
		direction = domain.TrendDown
	}

	return domain.Trend{
		Direction:     direction,
		Delta:         delta,
		PreviousScore: previous,
	}
}
