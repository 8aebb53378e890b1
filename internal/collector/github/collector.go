// Package github collects the hosting-platform profile and repository
// signals for a handle.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"reputation_pulse/internal/cache"
	"reputation_pulse/internal/domain"
)

// Config holds collector configuration. UserURL and ReposURL carry a
// {handle} placeholder.
type Config struct {
	UserURL        string
	ReposURL       string
	PerPage        int
	MaxPages       int
	MaxRecentRepos int
	Timeout        time.Duration
	Token          string
	CacheTTL       time.Duration
}

// Collector fetches and aggregates a profile, caching successful results.
type Collector struct {
	httpClient     *http.Client
	userURL        string
	reposURL       string
	perPage        int
	maxPages       int
	maxRecentRepos int
	token          string
	cacheTTL       time.Duration
	cache          *cache.Store
	logger         *slog.Logger
}

// New creates a collector backed by the given cache store.
func New(cfg Config, cacheStore *cache.Store, logger *slog.Logger) *Collector {
	return &Collector{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		userURL:        cfg.UserURL,
		reposURL:       cfg.ReposURL,
		perPage:        cfg.PerPage,
		maxPages:       cfg.MaxPages,
		maxRecentRepos: cfg.MaxRecentRepos,
		token:          cfg.Token,
		cacheTTL:       cfg.CacheTTL,
		cache:          cacheStore,
		logger:         logger.With("collector", "github"),
	}
}

// Collect returns the profile for handle, serving a fresh cached copy when
// one exists. Upstream failures classify as domain.ErrNotFound,
// domain.ErrRateLimited or domain.ErrCollector.
func (c *Collector) Collect(ctx context.Context, handle string) (domain.Profile, error) {
	cacheKey := "profile:" + handle
	if cached := c.fromCache(cacheKey); cached != nil {
		return *cached, nil
	}

	user, err := c.fetchUser(ctx, handle)
	if err != nil {
		return domain.Profile{}, err
	}

	repos, err := c.fetchAllRepos(ctx, handle)
	if err != nil {
		return domain.Profile{}, err
	}

	totalStars := 0
	for _, r := range repos {
		totalStars += r.StargazersCount
	}

	profile := domain.Profile{
		Handle:      handle,
		Followers:   user.Followers,
		Following:   user.Following,
		PublicRepos: user.PublicRepos,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		BlogURL:     user.Blog,
		TotalStars:  totalStars,
		RecentRepos: recentRepos(repos, c.maxRecentRepos),
	}

	c.toCache(cacheKey, profile)

	return profile, nil
}

func (c *Collector) fetchUser(ctx context.Context, handle string) (*userPayload, error) {
	resp, err := c.doRequest(ctx, c.expandURL(c.userURL, handle), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: user request failed: %w", domain.ErrCollector, err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	var user userPayload
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: user payload is invalid: %w", domain.ErrCollector, err)
	}
	return &user, nil
}

func (c *Collector) fetchAllRepos(ctx context.Context, handle string) ([]repoPayload, error) {
	var repos []repoPayload

	for page := 1; page <= c.maxPages; page++ {
		pagePayload, err := c.fetchReposPage(ctx, handle, page)
		if err != nil {
			return nil, fmt.Errorf("fetch repos page %d: %w", page, err)
		}

		repos = append(repos, pagePayload...)

		c.logger.Debug("fetched repos page",
			"handle", handle,
			"page", page,
			"repos", len(pagePayload),
			"total", len(repos),
		)

		if len(pagePayload) < c.perPage {
			break
		}
	}

	return repos, nil
}

func (c *Collector) fetchReposPage(ctx context.Context, handle string, page int) ([]repoPayload, error) {
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(c.perPage))
	params.Set("page", strconv.Itoa(page))

	resp, err := c.doRequest(ctx, c.expandURL(c.reposURL, handle), params)
	if err != nil {
		return nil, fmt.Errorf("%w: repos request failed: %w", domain.ErrCollector, err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	var payload []repoPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: repos payload is invalid: %w", domain.ErrCollector, err)
	}
	return payload, nil
}

func (c *Collector) doRequest(ctx context.Context, rawURL string, params url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "reputation-pulse/0.1.0")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.httpClient.Do(req)
}

func (c *Collector) expandURL(template, handle string) string {
	return strings.ReplaceAll(template, "{handle}", url.PathEscape(handle))
}

// classifyStatus maps an upstream status code onto the error taxonomy.
func classifyStatus(code int) error {
	switch {
	case code == http.StatusNotFound:
		return domain.ErrNotFound
	case code == http.StatusForbidden || code == http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case code >= 400:
		return fmt.Errorf("%w: unexpected status %d", domain.ErrCollector, code)
	}
	return nil
}

// recentRepos sorts by pushed_at descending and truncates. Repositories
// missing pushed_at carry the empty string and therefore sort last.
func recentRepos(repos []repoPayload, max int) []domain.RepoActivity {
	sorted := make([]repoPayload, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PushedAt > sorted[j].PushedAt
	})

	if len(sorted) > max {
		sorted = sorted[:max]
	}

	recent := make([]domain.RepoActivity, 0, len(sorted))
	for _, r := range sorted {
		recent = append(recent, domain.RepoActivity{
			Name:     r.Name,
			PushedAt: r.PushedAt,
			Stars:    r.StargazersCount,
		})
	}
	return recent
}

func (c *Collector) fromCache(key string) *domain.Profile {
	blob, err := c.cache.Get(key, c.cacheTTL)
	if err != nil {
		c.logger.Warn("cache read failed", "key", key, "error", err)
		return nil
	}
	if blob == nil {
		return nil
	}

	var profile domain.Profile
	if err := json.Unmarshal(blob, &profile); err != nil {
		c.logger.Warn("cached profile is invalid", "key", key, "error", err)
		return nil
	}
	return &profile
}

func (c *Collector) toCache(key string, profile domain.Profile) {
	blob, err := json.Marshal(profile)
	if err != nil {
		c.logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.cache.Set(key, blob); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
}
