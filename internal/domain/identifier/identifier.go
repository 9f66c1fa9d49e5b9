// Package identifier mints human readable numbers such as WR-20260115-482913
// and public usernames, retrying against a caller supplied existence probe.
package identifier

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"bizhub/internal/errors"
)

// Prefixes for generated numbers.
const (
	PrefixWebsiteRequest = "WR"
	PrefixOrder          = "ORD"
	PrefixWithdrawal     = "WD"
	PrefixCertificate    = "CERT"
)

const (
	// MaxAttempts bounds number generation.
	MaxAttempts = 30
	// MaxUsernameAttempts bounds username suffixing.
	MaxUsernameAttempts = 200

	fallbackUsername = "business"
	reservedSuffix   = "-biz"
	digitSpace       = 1_000_000
)

// ErrExhaustedRetries is returned when every candidate was already taken.
var ErrExhaustedRetries = errors.New("identifier: exhausted retries")

var reservedUsernames = map[string]struct{}{
	"admin":     {},
	"api":       {},
	"login":     {},
	"logout":    {},
	"checkout":  {},
	"dashboard": {},
	"listings":  {},
	"referral":  {},
	"support":   {},
	"www":       {},
}

// ExistsFunc reports whether candidate is already taken.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Generator mints identifiers. The zero value is not usable; use New.
type Generator struct {
	now      func() time.Time
	location *time.Location
	digits   func() (int64, error)
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithDigits overrides the random digit source.
func WithDigits(digits func() (int64, error)) Option {
	return func(g *Generator) {
		g.digits = digits
	}
}

// WithLocation sets the zone used for the date part.
func WithLocation(loc *time.Location) Option {
	return func(g *Generator) {
		g.location = loc
	}
}

// New creates a Generator stamping dates in Indian Standard Time.
func New(opts ...Option) *Generator {
	g := &Generator{
		now:      time.Now,
		location: time.FixedZone("IST", 5*60*60+30*60),
		digits:   randomDigits,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Candidate returns one PREFIX-YYYYMMDD-NNNNNN value without checking uniqueness.
func (g *Generator) Candidate(prefix string) (string, error) {
	n, err := g.digits()
	if err != nil {
		return "", errors.Wrap(err, "failed to draw random digits")
	}

	return fmt.Sprintf("%s-%s-%06d", prefix, g.now().In(g.location).Format("20060102"), n%digitSpace), nil
}

// Unique returns the first candidate that exists reports as free.
func (g *Generator) Unique(ctx context.Context, prefix string, exists ExistsFunc) (string, error) {
	for range MaxAttempts {
		candidate, err := g.Candidate(prefix)
		if err != nil {
			return "", err
		}

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", errors.Wrapf(err, "failed to check %s uniqueness", prefix)
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", errors.Wrapf(ErrExhaustedRetries, "prefix %s", prefix)
}

// UniqueUsername normalizes base and appends -1, -2, ... until exists reports
// the name as free.
func (g *Generator) UniqueUsername(ctx context.Context, base string, exists ExistsFunc) (string, error) {
	root := NormalizeUsername(base)

	candidate := root
	for attempt := range MaxUsernameAttempts {
		if attempt > 0 {
			candidate = root + "-" + strconv.Itoa(attempt)
		}

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check username uniqueness")
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", errors.Wrapf(ErrExhaustedRetries, "username %s", root)
}

// NormalizeUsername lowercases s, collapses every run of characters outside
// [a-z0-9] into a single hyphen and trims hyphens from both ends. Reserved
// names get a -biz suffix and empty results fall back to "business".
func NormalizeUsername(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)

			continue
		}
		pendingHyphen = true
	}

	name := b.String()
	if name == "" {
		name = fallbackUsername
	}
	if _, reserved := reservedUsernames[name]; reserved {
		name += reservedSuffix
	}

	return name
}

// randomDigits uses crypto/rand so numbers cannot be guessed from earlier ones.
func randomDigits() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(digitSpace))
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return n.Int64(), nil
}
