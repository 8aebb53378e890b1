package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"reputation_pulse/internal/cache"
	"reputation_pulse/internal/domain"
)

type CollectorTestSuite struct {
	suite.Suite
	ctx    context.Context
	logger *slog.Logger
}

func (s *CollectorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestCollectorTestSuite(t *testing.T) {
	suite.Run(t, new(CollectorTestSuite))
}

func (s *CollectorTestSuite) newCollector(server *httptest.Server, perPage, maxPages int) *Collector {
	cacheStore, err := cache.New(s.T().TempDir())
	s.Require().NoError(err)

	return New(Config{
		UserURL:        server.URL + "/users/{handle}",
		ReposURL:       server.URL + "/users/{handle}/repos",
		PerPage:        perPage,
		MaxPages:       maxPages,
		MaxRecentRepos: 3,
		Timeout:        5 * time.Second,
		CacheTTL:       time.Minute,
	}, cacheStore, s.logger)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *CollectorTestSuite) TestCollect_AggregatesPages() {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeJSON(w, map[string]any{
			"followers":    42,
			"following":    7,
			"public_repos": 5,
			"created_at":   "2015-01-01T00:00:00Z",
			"updated_at":   "2025-06-01T00:00:00Z",
			"blog":         "octo.blog",
		})
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch r.URL.Query().Get("page") {
		case "1":
			writeJSON(w, []map[string]any{
				{"name": "old", "pushed_at": "2023-01-01T00:00:00Z", "stargazers_count": 10},
				{"name": "new", "pushed_at": "2025-05-01T00:00:00Z", "stargazers_count": 20},
			})
		default:
			writeJSON(w, []map[string]any{
				{"name": "mid", "pushed_at": "2024-03-01T00:00:00Z", "stargazers_count": 5},
			})
		}
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	collector := s.newCollector(server, 2, 5)

	profile, err := collector.Collect(s.ctx, "octocat")
	s.Require().NoError(err)

	s.Equal("octocat", profile.Handle)
	s.Equal(42, profile.Followers)
	s.Equal(5, profile.PublicRepos)
	s.Equal("octo.blog", profile.BlogURL)
	s.Equal(35, profile.TotalStars)

	// Page 2 was short, so pagination stopped there: 1 user + 2 repo pages.
	s.Equal(3, requests)

	s.Require().Len(profile.RecentRepos, 3)
	s.Equal("new", profile.RecentRepos[0].Name)
	s.Equal("mid", profile.RecentRepos[1].Name)
	s.Equal("old", profile.RecentRepos[2].Name)
}

func (s *CollectorTestSuite) TestCollect_TruncatesRecentRepos() {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/busy", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"followers": 1})
	})
	mux.HandleFunc("/users/busy/repos", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{
			{"name": "a", "pushed_at": "2025-01-01T00:00:00Z", "stargazers_count": 1},
			{"name": "b", "pushed_at": "2025-04-01T00:00:00Z", "stargazers_count": 1},
			{"name": "c", "pushed_at": "2025-02-01T00:00:00Z", "stargazers_count": 1},
			{"name": "d", "pushed_at": "2025-03-01T00:00:00Z", "stargazers_count": 1},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	collector := s.newCollector(server, 10, 1)

	profile, err := collector.Collect(s.ctx, "busy")
	s.Require().NoError(err)

	s.Require().Len(profile.RecentRepos, 3)
	s.Equal("b", profile.RecentRepos[0].Name)
	s.Equal("d", profile.RecentRepos[1].Name)
	s.Equal("c", profile.RecentRepos[2].Name)
}

func (s *CollectorTestSuite) TestCollect_MissingPushedAtSortsLast() {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/quiet", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{})
	})
	mux.HandleFunc("/users/quiet/repos", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{
			{"name": "dateless", "pushed_at": nil, "stargazers_count": 1},
			{"name": "dated", "pushed_at": "2020-01-01T00:00:00Z", "stargazers_count": 1},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	collector := s.newCollector(server, 10, 1)

	profile, err := collector.Collect(s.ctx, "quiet")
	s.Require().NoError(err)

	s.Require().Len(profile.RecentRepos, 2)
	s.Equal("dated", profile.RecentRepos[0].Name)
	s.Equal("dateless", profile.RecentRepos[1].Name)
	s.Empty(profile.RecentRepos[1].PushedAt)
}

func (s *CollectorTestSuite) TestCollect_NotFound() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	collector := s.newCollector(server, 2, 1)

	_, err := collector.Collect(s.ctx, "ghost")
	s.ErrorIs(err, domain.ErrNotFound)
	s.ErrorIs(err, domain.ErrCollector)
}

func (s *CollectorTestSuite) TestCollect_RateLimited() {
	for _, status := range []int{http.StatusForbidden, http.StatusTooManyRequests} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		collector := s.newCollector(server, 2, 1)

		_, err := collector.Collect(s.ctx, "limited")
		s.ErrorIs(err, domain.ErrRateLimited, "status=%d", status)

		server.Close()
	}
}

func (s *CollectorTestSuite) TestCollect_UnexpectedStatus() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	collector := s.newCollector(server, 2, 1)

	_, err := collector.Collect(s.ctx, "broken")
	s.ErrorIs(err, domain.ErrCollector)
	s.NotErrorIs(err, domain.ErrNotFound)
	s.NotErrorIs(err, domain.ErrRateLimited)
	s.Contains(err.Error(), "500")
}

func (s *CollectorTestSuite) TestCollect_ReposPageFailure() {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/flaky", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"followers": 1})
	})
	mux.HandleFunc("/users/flaky/repos", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	collector := s.newCollector(server, 2, 1)

	_, err := collector.Collect(s.ctx, "flaky")
	s.ErrorIs(err, domain.ErrCollector)
}

func (s *CollectorTestSuite) TestCollect_InvalidReposPayload() {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/odd", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"followers": 1})
	})
	mux.HandleFunc("/users/odd/repos", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"message": "not a list"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	collector := s.newCollector(server, 2, 1)

	_, err := collector.Collect(s.ctx, "odd")
	s.ErrorIs(err, domain.ErrCollector)
}

func (s *CollectorTestSuite) TestCollect_ServesCachedProfile() {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/users/cached", func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeJSON(w, map[string]any{"followers": 9})
	})
	mux.HandleFunc("/users/cached/repos", func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeJSON(w, []map[string]any{})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	collector := s.newCollector(server, 2, 1)

	first, err := collector.Collect(s.ctx, "cached")
	s.Require().NoError(err)
	after := requests

	second, err := collector.Collect(s.ctx, "cached")
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal(after, requests, "second collect must not hit the network")
}

func (s *CollectorTestSuite) TestCollect_SendsAuthHeaders() {
	var gotAuth, gotAccept string
	mux := http.NewServeMux()
	mux.HandleFunc("/users/secure", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		writeJSON(w, map[string]any{})
	})
	mux.HandleFunc("/users/secure/repos", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cacheStore, err := cache.New(s.T().TempDir())
	s.Require().NoError(err)
	collector := New(Config{
		UserURL:  server.URL + "/users/{handle}",
		ReposURL: server.URL + "/users/{handle}/repos",
		PerPage:  2, MaxPages: 1, MaxRecentRepos: 3,
		Timeout:  5 * time.Second,
		Token:    "tok123",
		CacheTTL: time.Minute,
	}, cacheStore, s.logger)

	_, err = collector.Collect(s.ctx, "secure")
	s.Require().NoError(err)

	s.Equal(fmt.Sprintf("Bearer %s", "tok123"), gotAuth)
	s.Equal("application/vnd.github+json", gotAccept)
}
