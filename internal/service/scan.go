package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"reputation_pulse/internal/domain"
	"reputation_pulse/internal/handle"
	"reputation_pulse/internal/report"
	"reputation_pulse/internal/scoring"
	"reputation_pulse/internal/trend"
)

// ScanService is the pipeline orchestrator and the only entry point
// presentation layers call: normalize, collect, score, summarize, compare
// against history, persist.
type ScanService struct {
	profiles ProfileCollector
	feeds    FeedCollector
	store    ScanStore
	logger   *slog.Logger
}

// NewScanService wires the pipeline. feeds may be nil to run without feed
// enrichment; the summary then skips its feed rule.
func NewScanService(
	profiles ProfileCollector,
	feeds FeedCollector,
	store ScanStore,
	logger *slog.Logger,
) *ScanService {
	return &ScanService{
		profiles: profiles,
		feeds:    feeds,
		store:    store,
		logger:   logger.With("service", "scan"),
	}
}

// RunAndStore runs one scan for rawHandle, appends it to the scan log and
// returns the composed result. Normalization and collector errors propagate
// unmodified. The previous-score read happens before the save; concurrent
// scans of the same handle may observe the same baseline, which is
// acceptable for an advisory trend.
func (s *ScanService) RunAndStore(ctx context.Context, rawHandle string) (domain.ScanResult, error) {
	startTime := time.Now()

	normalized, err := handle.Normalize(rawHandle)
	if err != nil {
		return domain.ScanResult{}, err
	}

	s.logger.Info("starting scan", "handle", normalized)

	profile, err := s.profiles.Collect(ctx, normalized)
	if err != nil {
		return domain.ScanResult{}, err
	}

	var feed *domain.FeedSignal
	if s.feeds != nil {
		signal := s.feeds.Collect(ctx, profile.BlogURL)
		feed = &signal
	}

	score := scoring.Calculate(profile)
	summary := report.BuildSummary(profile, score, feed)

	previous, err := s.store.LatestScanForHandle(ctx, normalized)
	if err != nil {
		return domain.ScanResult{}, fmt.Errorf("lookup previous scan: %w", err)
	}
	var previousScore *float64
	if previous != nil {
		previousScore = &previous.NormalizedScore
	}

	result := domain.ScanResult{
		Handle:  normalized,
		Profile: profile,
		Score:   score,
		Summary: summary,
		Trend:   trend.Build(score.Normalized, previousScore),
	}
	if feed != nil {
		result.Feed = *feed
	}

	id, err := s.store.Save(ctx, result)
	if err != nil {
		return domain.ScanResult{}, fmt.Errorf("save scan: %w", err)
	}

	s.logger.Info("scan completed",
		"handle", normalized,
		"scan_id", id,
		"score", score.Normalized,
		"rating", summary.Rating,
		"trend", result.Trend.Direction,
		"duration", time.Since(startTime),
	)

	return result, nil
}
