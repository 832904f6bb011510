// Package generator produces cryptographically secure random passwords from
// configurable character pools.
package generator

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"passliss/internal/model"
	"passliss/internal/strength"
)

// ErrInvalidRequest is returned when a generation request has no usable
// character class or an out-of-range length/count.
var ErrInvalidRequest = errors.New("generator: invalid request")

// MaxBatchSize bounds GenerateBatch.
const MaxBatchSize = 50

// ExplicitRequest selects character classes and a length directly.
type ExplicitRequest struct {
	Length  int
	Lower   bool
	Upper   bool
	Digits  bool
	Special bool
}

// Generate draws Length characters independently and uniformly at random from
// the union of the enabled pools. There is no per-class quota: requesting all
// four classes does not guarantee the result contains a character from each.
func Generate(req ExplicitRequest, pools Pools) (string, error) {
	if req.Length < 1 {
		return "", ErrInvalidRequest
	}
	var parts []string
	if req.Lower {
		parts = append(parts, pools.Lowercase)
	}
	if req.Upper {
		parts = append(parts, pools.Uppercase)
	}
	if req.Digits {
		parts = append(parts, pools.Digits)
	}
	if req.Special {
		parts = append(parts, pools.Special)
	}
	alphabet := union(parts...)
	if len(alphabet) == 0 {
		return "", ErrInvalidRequest
	}

	var sb strings.Builder
	sb.Grow(req.Length)
	for i := 0; i < req.Length; i++ {
		idx, err := randInt(len(alphabet))
		if err != nil {
			return "", err
		}
		sb.WriteRune(alphabet[idx])
	}
	return sb.String(), nil
}

// tierPolicy maps each strength tier to a fixed length and class set.
// Both length and class richness grow monotonically across tiers.
var tierPolicy = map[strength.Tier]ExplicitRequest{
	strength.TierVeryWeak:   {Length: 6, Lower: true},
	strength.TierWeak:       {Length: 9, Lower: true, Digits: true},
	strength.TierModerate:   {Length: 12, Lower: true, Upper: true, Digits: true},
	strength.TierStrong:     {Length: 16, Lower: true, Upper: true, Digits: true, Special: true},
	strength.TierVeryStrong: {Length: 24, Lower: true, Upper: true, Digits: true, Special: true},
}

// GenerateByTier generates a password using the fixed policy for the tier.
func GenerateByTier(tier strength.Tier, pools Pools) (string, error) {
	req, ok := tierPolicy[tier]
	if !ok {
		return "", ErrInvalidRequest
	}
	return Generate(req, pools)
}

// GenerateFromPreset delegates to Generate with the preset's stored shape.
func GenerateFromPreset(p model.PasswordPreset, pools Pools) (string, error) {
	return Generate(ExplicitRequest{
		Length:  p.Length,
		Lower:   p.IncludeLower,
		Upper:   p.IncludeUpper,
		Digits:  p.IncludeDigits,
		Special: p.IncludeSpecial,
	}, pools)
}

// GenerateBatch produces n independent passwords, 1 <= n <= MaxBatchSize.
// Draws share no state and uniqueness across the batch is not guaranteed.
func GenerateBatch(req ExplicitRequest, pools Pools, n int) ([]string, error) {
	if n < 1 || n > MaxBatchSize {
		return nil, ErrInvalidRequest
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		pw, err := Generate(req, pools)
		if err != nil {
			return nil, err
		}
		out = append(out, pw)
	}
	return out, nil
}

// randInt returns a uniform random int in [0, max) using crypto/rand.
func randInt(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
