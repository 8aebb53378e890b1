package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"reputation_pulse/internal/domain"
)

// ProfileCollector fetches the hosting-platform profile for a handle.
type ProfileCollector interface {
	Collect(ctx context.Context, handle string) (domain.Profile, error)
}

// FeedCollector fetches the best-effort blog feed signal. It never fails;
// unusable feeds degrade to the zero signal.
type FeedCollector interface {
	Collect(ctx context.Context, blogURL string) domain.FeedSignal
}

// ScanStore is the slice of the scan log the pipeline needs: the
// previous-scan lookup and the append.
type ScanStore interface {
	Save(ctx context.Context, result domain.ScanResult) (int64, error)
	LatestScanForHandle(ctx context.Context, handle string) (*domain.ScanSummary, error)
}
