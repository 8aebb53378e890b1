package handle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reputation_pulse/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "octocat", want: "octocat"},
		{name: "surrounding whitespace", raw: " @octocat ", want: "octocat"},
		{name: "leading at", raw: "@octocat", want: "octocat"},
		{name: "only first at stripped", raw: "@@octocat", want: "@octocat"},
		{name: "inner at kept", raw: "octo@cat", want: "octo@cat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "@", " @ "} {
		_, err := Normalize(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidHandle, "raw=%q", raw)
	}
}
