// Package scoring turns a collected profile into a normalized score.
package scoring

import (
	"math"

	"reputation_pulse/internal/domain"
)

// Fixed caps and weights of the scoring model.
const (
	followersCap    = 500
	followersWeight = 30

	starsCap    = 1000
	starsWeight = 40

	recentReposCap    = 3
	recentReposWeight = 30
)

// Calculate computes the deterministic weighted score for a profile. Each
// term is capped then scaled, so the result is always within [0, 100].
func Calculate(profile domain.Profile) domain.Score {
	followers := profile.Followers
	stars := profile.TotalStars
	recentRepos := len(profile.RecentRepos)

	followersPts := float64(min(followers, followersCap)) / followersCap * followersWeight
	starsPts := float64(min(stars, starsCap)) / starsCap * starsWeight
	recentPts := float64(min(recentRepos, recentReposCap)) / recentReposCap * recentReposWeight

	return domain.Score{
		Followers:   followers,
		Stars:       stars,
		RecentRepos: recentRepos,
		Normalized:  Round2(followersPts + starsPts + recentPts),
	}
}

// Round2 rounds to two decimal places, the precision used for every
// persisted and compared score value.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
