// Package rss discovers and parses a blog's syndication feed. Collection is
// best-effort: every network or parse failure degrades to the zero signal,
// never to an error.
package rss

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"reputation_pulse/internal/domain"
)

const dcNamespace = "http://purl.org/dc/elements/1.1/"

// Feed paths probed against the blog origin after the URL itself.
var feedPaths = []string{"/feed", "/rss", "/rss.xml", "/atom.xml"}

// rfc2822Layouts are tried before the lenient fallback parser, mirroring the
// usual RSS pubDate formats.
var rfc2822Layouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -0700",
}

// Collector probes feed candidates sequentially and extracts entry dates.
type Collector struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func New(timeout time.Duration, logger *slog.Logger) *Collector {
	return &Collector{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With("collector", "rss"),
	}
}

// Collect returns the feed signal for blogURL. A blank URL, or a URL with no
// parseable feed behind any candidate, yields a zero-entry signal.
func (c *Collector) Collect(ctx context.Context, blogURL string) domain.FeedSignal {
	normalized := normalizeURL(blogURL)
	if normalized == "" {
		return domain.FeedSignal{}
	}

	for _, candidate := range feedCandidates(normalized) {
		signal, ok := c.parseFeed(ctx, candidate)
		if !ok {
			c.logger.Debug("feed candidate failed", "url", candidate)
			continue
		}
		signal.BlogURL = normalized
		return signal
	}

	return domain.FeedSignal{BlogURL: normalized}
}

// normalizeURL trims the input and prefixes https:// when the scheme is
// missing. "www."-hosts are treated the same as any other schemeless URL.
func normalizeURL(raw string) string {
	normalized := strings.TrimSpace(raw)
	if normalized == "" {
		return ""
	}
	if strings.HasPrefix(normalized, "www.") {
		return "https://" + normalized
	}
	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		return "https://" + normalized
	}
	return normalized
}

// feedCandidates lists the normalized URL itself followed by the well-known
// feed paths resolved against its origin. Order is significant: candidates
// are probed left to right and the first parseable one wins.
func feedCandidates(normalized string) []string {
	candidates := []string{normalized}

	base, err := url.Parse(normalized)
	if err != nil {
		return candidates
	}
	for _, path := range feedPaths {
		resolved, err := base.Parse(path)
		if err != nil {
			continue
		}
		candidates = append(candidates, resolved.String())
	}
	return candidates
}

func (c *Collector) parseFeed(ctx context.Context, feedURL string) (domain.FeedSignal, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return domain.FeedSignal{}, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.FeedSignal{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.FeedSignal{}, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.FeedSignal{}, false
	}

	raw, err := extractDateValues(body)
	if err != nil {
		return domain.FeedSignal{}, false
	}

	dates := make([]time.Time, 0, len(raw))
	for _, value := range raw {
		if parsed, ok := parseDate(value); ok {
			dates = append(dates, parsed)
		}
	}

	signal := domain.FeedSignal{FeedURL: feedURL}
	threshold := time.Now().UTC().AddDate(0, 0, -30)
	for _, dt := range dates {
		if !dt.Before(threshold) {
			signal.RecentEntries30d++
		}
		if signal.LastPostAt == nil || dt.After(*signal.LastPostAt) {
			last := dt
			signal.LastPostAt = &last
		}
	}
	return signal, true
}

// extractDateValues walks the document and collects the text of every
// date-bearing node: item pubDate, item date, entry updated, entry published
// and Dublin-Core date. A malformed document returns an error so the caller
// can move on to the next candidate.
func extractDateValues(body []byte) ([]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(body))

	var (
		values       []string
		stack        []xml.Name
		text         strings.Builder
		captureDepth int
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			var parent xml.Name
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			stack = append(stack, t.Name)
			if captureDepth == 0 && isDateElement(t.Name, parent) {
				captureDepth = len(stack)
				text.Reset()
			}
		case xml.CharData:
			if captureDepth > 0 && len(stack) == captureDepth {
				text.Write(t)
			}
		case xml.EndElement:
			if captureDepth > 0 && len(stack) == captureDepth {
				if value := strings.TrimSpace(text.String()); value != "" {
					values = append(values, value)
				}
				captureDepth = 0
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) != 0 {
		return nil, errors.New("unclosed xml element")
	}
	return values, nil
}

func isDateElement(name, parent xml.Name) bool {
	if name.Space == dcNamespace && name.Local == "date" {
		return true
	}
	switch parent.Local {
	case "item":
		return name.Local == "pubDate" || (name.Local == "date" && name.Space == "")
	case "entry":
		return name.Local == "updated" || name.Local == "published"
	}
	return false
}

// parseDate tries the RFC-2822 layouts first and falls back to the lenient
// parser for ISO-8601 and friends. Every result is normalized to UTC; values
// without a zone are taken as UTC.
func parseDate(raw string) (time.Time, bool) {
	for _, layout := range rfc2822Layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC(), true
		}
	}

	parsed, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed.UTC(), true
}
