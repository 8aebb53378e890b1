// Package handle normalizes raw handle input before collection.
package handle

import (
	"strings"

	"reputation_pulse/internal/domain"
)

// Normalize trims surrounding whitespace and strips one leading "@".
// It returns domain.ErrInvalidHandle when nothing remains.
func Normalize(raw string) (string, error) {
	normalized := strings.TrimPrefix(strings.TrimSpace(raw), "@")
	if normalized == "" {
		return "", domain.ErrInvalidHandle
	}
	return normalized, nil
}
