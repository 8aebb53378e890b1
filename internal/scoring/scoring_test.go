package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reputation_pulse/internal/domain"
)

func repos(n int) []domain.RepoActivity {
	out := make([]domain.RepoActivity, n)
	for i := range out {
		out[i] = domain.RepoActivity{Name: "repo"}
	}
	return out
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name    string
		profile domain.Profile
		want    float64
	}{
		{
			name:    "all caps exceeded",
			profile: domain.Profile{Followers: 2000, TotalStars: 1500, RecentRepos: repos(4)},
			want:    100.0,
		},
		{
			name:    "all caps met exactly",
			profile: domain.Profile{Followers: 500, TotalStars: 1000, RecentRepos: repos(3)},
			want:    100.0,
		},
		{
			name:    "all zero",
			profile: domain.Profile{},
			want:    0.0,
		},
		{
			name:    "half followers only",
			profile: domain.Profile{Followers: 250},
			want:    15.0,
		},
		{
			name:    "mixed partial",
			profile: domain.Profile{Followers: 100, TotalStars: 250, RecentRepos: repos(1)},
			want:    26.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Calculate(tt.profile)
			assert.InDelta(t, tt.want, score.Normalized, 0.001)
			assert.Equal(t, tt.profile.Followers, score.Followers)
			assert.Equal(t, tt.profile.TotalStars, score.Stars)
			assert.Equal(t, len(tt.profile.RecentRepos), score.RecentRepos)
		})
	}
}

func TestCalculate_RoundsToTwoDecimals(t *testing.T) {
	// 1/3 of the recent-repos weight would repeat without rounding.
	score := Calculate(domain.Profile{RecentRepos: repos(1)})
	assert.Equal(t, 10.0, score.Normalized)

	score = Calculate(domain.Profile{Followers: 1})
	assert.Equal(t, 0.06, score.Normalized)
}
