// Package report derives the human-facing rating and recommendations from a
// scan's collected data.
package report

import "reputation_pulse/internal/domain"

func ratingLabel(normalized float64) string {
	if normalized >= 70 {
		return domain.RatingStrong
	}
	if normalized >= 40 {
		return domain.RatingStable
	}
	return domain.RatingNeedsAttention
}

// BuildSummary assembles the rating label and the recommendation list. The
// rules run in a fixed order and each gates independently, so the output
// order is deterministic. feed may be nil when feed collection is disabled.
func BuildSummary(profile domain.Profile, score domain.Score, feed *domain.FeedSignal) domain.Summary {
	var recommendations []string

	if profile.PublicRepos < 3 {
		recommendations = append(recommendations,
			"Publish at least 2-3 public projects to show momentum.")
	}
	if profile.Followers < 50 {
		recommendations = append(recommendations,
			"Engage with communities (issues/comments) to grow followers.")
	}
	if len(profile.RecentRepos) == 0 {
		recommendations = append(recommendations,
			"Push a recent change to demonstrate active work.")
	}
	if score.Stars < 100 {
		recommendations = append(recommendations,
			"Aim for a few high-quality repos to attract more stars.")
	}
	if feed != nil && feed.BlogURL != "" && feed.RecentEntries30d == 0 {
		recommendations = append(recommendations,
			"Publish a technical update on your blog or RSS to keep visibility active.")
	}

	return domain.Summary{
		Rating:          ratingLabel(score.Normalized),
		Normalized:      score.Normalized,
		Recommendations: recommendations,
	}
}
