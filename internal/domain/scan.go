package domain

import "time"

// Rating labels assigned by the summary builder.
const (
	RatingStrong         = "Strong"
	RatingStable         = "Stable"
	RatingNeedsAttention = "Needs Attention"
)

// Trend directions relative to the previous stored scan.
const (
	TrendNew    = "new"
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// RepoActivity is one repository as seen during a scan. PushedAt keeps the
// upstream timestamp string untouched; it is empty when upstream sends null.
type RepoActivity struct {
	Name     string `json:"name"`
	PushedAt string `json:"pushed_at"`
	Stars    int    `json:"stars"`
}

// Profile is the collected hosting-platform snapshot for one handle.
type Profile struct {
	Handle      string         `json:"handle"`
	Followers   int            `json:"followers"`
	Following   int            `json:"following"`
	PublicRepos int            `json:"public_repos"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	BlogURL     string         `json:"blog_url"`
	TotalStars  int            `json:"total_stars"`
	RecentRepos []RepoActivity `json:"recent_repos"`
}

// FeedSignal is the best-effort blog feed enrichment. The zero value means
// no usable feed was found.
type FeedSignal struct {
	BlogURL          string     `json:"blog_url"`
	FeedURL          string     `json:"feed_url"`
	RecentEntries30d int        `json:"recent_entries_30d"`
	LastPostAt       *time.Time `json:"last_post_at"`
}

// Score is the deterministic weighted score derived from a profile.
type Score struct {
	Followers   int     `json:"followers"`
	Stars       int     `json:"stars"`
	RecentRepos int     `json:"recent_repos"`
	Normalized  float64 `json:"normalized"`
}

// Summary carries the rating label and the ordered recommendation list.
type Summary struct {
	Rating          string   `json:"rating"`
	Normalized      float64  `json:"normalized"`
	Recommendations []string `json:"recommendations"`
}

// Trend compares the current score against the previous stored scan.
// PreviousScore is nil for the first scan of a handle.
type Trend struct {
	Direction     string   `json:"direction"`
	Delta         float64  `json:"delta"`
	PreviousScore *float64 `json:"previous_score"`
}

// ScanResult is the composed output of one pipeline run. It is serialized
// whole as the persisted scan payload.
type ScanResult struct {
	Handle  string     `json:"handle"`
	Profile Profile    `json:"profile"`
	Feed    FeedSignal `json:"feed"`
	Score   Score      `json:"score"`
	Summary Summary    `json:"summary"`
	Trend   Trend      `json:"trend"`
}

// ScanSummary is the summary projection of one stored scan row.
type ScanSummary struct {
	ID              int64     `db:"id"`
	Handle          string    `db:"handle"`
	NormalizedScore float64   `db:"normalized_score"`
	Rating          string    `db:"rating"`
	ScannedAt       time.Time `db:"scanned_at"`
}

// SeriesPoint is one sample of a handle's score history.
type SeriesPoint struct {
	Score     float64   `json:"score"`
	ScannedAt time.Time `json:"scanned_at"`
}

// Insight aggregates every stored scan of one handle.
type Insight struct {
	Handle         string    `json:"handle"`
	Count          int       `json:"count"`
	Average        float64   `json:"average"`
	Min            float64   `json:"min"`
	Max            float64   `json:"max"`
	FirstScannedAt time.Time `json:"first_scanned_at"`
	LastScannedAt  time.Time `json:"last_scanned_at"`
	LatestScore    float64   `json:"latest_score"`
	LatestRating   string    `json:"latest_rating"`
}
