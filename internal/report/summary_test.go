package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reputation_pulse/internal/domain"
)

func TestRatingLabel(t *testing.T) {
	tests := []struct {
		normalized float64
		want       string
	}{
		{100.0, domain.RatingStrong},
		{70.0, domain.RatingStrong},
		{69.99, domain.RatingStable},
		{40.0, domain.RatingStable},
		{39.99, domain.RatingNeedsAttention},
		{0.0, domain.RatingNeedsAttention},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ratingLabel(tt.normalized), "normalized=%v", tt.normalized)
	}
}

func TestBuildSummary_NoRecommendationsForHealthyProfile(t *testing.T) {
	profile := domain.Profile{
		PublicRepos: 10,
		Followers:   120,
		RecentRepos: []domain.RepoActivity{{Name: "active"}},
	}
	score := domain.Score{Stars: 400, Normalized: 85.0}
	feed := &domain.FeedSignal{BlogURL: "https://example.com", RecentEntries30d: 2}

	summary := BuildSummary(profile, score, feed)

	assert.Equal(t, domain.RatingStrong, summary.Rating)
	assert.Equal(t, 85.0, summary.Normalized)
	assert.Empty(t, summary.Recommendations)
}

func TestBuildSummary_AllRulesFireInOrder(t *testing.T) {
	profile := domain.Profile{}
	score := domain.Score{Stars: 0, Normalized: 0.0}
	feed := &domain.FeedSignal{BlogURL: "https://example.com", RecentEntries30d: 0}

	summary := BuildSummary(profile, score, feed)

	assert.Equal(t, []string{
		"Publish at least 2-3 public projects to show momentum.",
		"Engage with communities (issues/comments) to grow followers.",
		"Push a recent change to demonstrate active work.",
		"Aim for a few high-quality repos to attract more stars.",
		"Publish a technical update on your blog or RSS to keep visibility active.",
	}, summary.Recommendations)
}

func TestBuildSummary_FeedRuleGating(t *testing.T) {
	healthy := domain.Profile{
		PublicRepos: 5,
		Followers:   100,
		RecentRepos: []domain.RepoActivity{{Name: "r"}},
	}
	score := domain.Score{Stars: 200, Normalized: 75.0}

	// Nil feed: rule skipped entirely.
	summary := BuildSummary(healthy, score, nil)
	assert.Empty(t, summary.Recommendations)

	// Feed present but no blog URL: rule skipped.
	summary = BuildSummary(healthy, score, &domain.FeedSignal{})
	assert.Empty(t, summary.Recommendations)

	// Blog exists and went quiet: rule fires.
	summary = BuildSummary(healthy, score, &domain.FeedSignal{BlogURL: "https://example.com"})
	assert.Len(t, summary.Recommendations, 1)

	// Blog active in the last 30 days: rule skipped.
	summary = BuildSummary(healthy, score, &domain.FeedSignal{BlogURL: "https://example.com", RecentEntries30d: 1})
	assert.Empty(t, summary.Recommendations)
}
