package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"TrendPulse/internal/service/ratelimit"
)

func TestAllowConsumesTokens(t *testing.T) {
	l := ratelimit.New()

	require.True(t, l.Allow("client-a", 2, 0))
	require.True(t, l.Allow("client-a", 2, 0))
	require.False(t, l.Allow("client-a", 2, 0))
}

func TestAllowIsPerKey(t *testing.T) {
	l := ratelimit.New()

	require.True(t, l.Allow("client-a", 1, 0))
	require.False(t, l.Allow("client-a", 1, 0))
	require.True(t, l.Allow("client-b", 1, 0))
}
