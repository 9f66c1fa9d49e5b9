package identifier

import (
	"context"
	"regexp"
	"testing"
	"time"

	"bizhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var numberPattern = regexp.MustCompile(`^[A-Z]{2,4}-\d{8}-\d{6}$`)

func neverTaken(context.Context, string) (bool, error) { return false, nil }

func TestCandidate_Format(t *testing.T) {
	t.Parallel()

	gen := New()
	for _, prefix := range []string{PrefixWebsiteRequest, PrefixOrder, PrefixWithdrawal, PrefixCertificate} {
		for range 50 {
			id, err := gen.Candidate(prefix)
			require.NoError(t, err)
			assert.Regexp(t, numberPattern, id)
			assert.True(t, len(id) > len(prefix) && id[:len(prefix)+1] == prefix+"-")
		}
	}
}

func TestCandidate_UsesISTDateAndPadsDigits(t *testing.T) {
	t.Parallel()

	// 2026-01-14 20:00 UTC is already the 15th in India.
	clock := func() time.Time { return time.Date(2026, 1, 14, 20, 0, 0, 0, time.UTC) }
	gen := New(WithClock(clock), WithDigits(func() (int64, error) { return 42, nil }))

	id, err := gen.Candidate(PrefixOrder)
	require.NoError(t, err)
	assert.Equal(t, "ORD-20260115-000042", id)
}

func TestUnique_RetriesOnCollision(t *testing.T) {
	t.Parallel()

	draws := []int64{1, 1, 2}
	gen := New(WithDigits(func() (int64, error) {
		n := draws[0]
		draws = draws[1:]

		return n, nil
	}))

	taken := map[string]bool{}
	first, err := gen.Unique(context.Background(), PrefixWithdrawal, func(_ context.Context, c string) (bool, error) {
		return taken[c], nil
	})
	require.NoError(t, err)
	taken[first] = true

	second, err := gen.Unique(context.Background(), PrefixWithdrawal, func(_ context.Context, c string) (bool, error) {
		return taken[c], nil
	})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Regexp(t, numberPattern, second)
}

func TestUnique_ExhaustsAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := New().Unique(context.Background(), PrefixOrder, func(context.Context, string) (bool, error) {
		calls++

		return true, nil
	})
	assert.ErrorIs(t, err, ErrExhaustedRetries)
	assert.Equal(t, MaxAttempts, calls)
}

func TestUnique_PropagatesProbeError(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	_, err := New().Unique(context.Background(), PrefixOrder, func(context.Context, string) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestNormalizeUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Sharma Sweets & Snacks", want: "sharma-sweets-snacks"},
		{in: "  --Hello__World--  ", want: "hello-world"},
		{in: "Café 24x7", want: "caf-24x7"},
		{in: "ADMIN", want: "admin-biz"},
		{in: "checkout", want: "checkout-biz"},
		{in: "!!!", want: "business"},
		{in: "", want: "business"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeUsername(tt.in))
		})
	}
}

func TestUniqueUsername_AppendsSuffix(t *testing.T) {
	t.Parallel()

	taken := map[string]bool{"sharma-sweets": true, "sharma-sweets-1": true}
	name, err := New().UniqueUsername(context.Background(), "Sharma Sweets", func(_ context.Context, c string) (bool, error) {
		return taken[c], nil
	})
	require.NoError(t, err)
	assert.Equal(t, "sharma-sweets-2", name)

	name, err = New().UniqueUsername(context.Background(), "Fresh Start", neverTaken)
	require.NoError(t, err)
	assert.Equal(t, "fresh-start", name)
}

func TestUniqueUsername_Exhausts(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := New().UniqueUsername(context.Background(), "popular", func(context.Context, string) (bool, error) {
		calls++

		return true, nil
	})
	assert.ErrorIs(t, err, ErrExhaustedRetries)
	assert.Equal(t, MaxUsernameAttempts, calls)
}
