// Package strength computes password strength reports: composition counts,
// entropy, a 0-100 score and a discrete tier.
package strength

import (
	"math"
	"unicode"
)

// Tier is a discrete password strength category.
type Tier int

const (
	TierUnknown Tier = iota
	TierVeryWeak
	TierWeak
	TierModerate
	TierStrong
	TierVeryStrong
)

// String returns the human-readable tier label.
func (t Tier) String() string {
	switch t {
	case TierVeryWeak:
		return "Very Weak"
	case TierWeak:
		return "Weak"
	case TierModerate:
		return "Moderate"
	case TierStrong:
		return "Strong"
	case TierVeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// Assumed pool sizes per character class. Entropy reflects the search space an
// attacker would assume from the password's apparent composition, not the
// distinct characters actually used.
const (
	lowerPoolSize   = 26
	upperPoolSize   = 26
	digitPoolSize   = 10
	specialPoolSize = 32
)

// Report holds the result of analyzing one password.
type Report struct {
	Length         int     `json:"length"`
	LowercaseCount int     `json:"lowercase_count"`
	UppercaseCount int     `json:"uppercase_count"`
	DigitCount     int     `json:"digit_count"`
	SpecialCount   int     `json:"special_count"`
	EntropyBits    float64 `json:"entropy_bits"`
	Score          int     `json:"score"`
	Tier           Tier    `json:"tier"`
}

// Analyze computes a fresh Report for the given password. The empty string
// yields a zero report with TierUnknown.
func Analyze(password string) Report {
	var r Report
	for _, c := range password {
		r.Length++
		switch {
		case unicode.IsLower(c):
			r.LowercaseCount++
		case unicode.IsUpper(c):
			r.UppercaseCount++
		case unicode.IsDigit(c):
			r.DigitCount++
		default:
			r.SpecialCount++
		}
	}
	if r.Length == 0 {
		r.Tier = TierUnknown
		return r
	}

	alphabet := 0
	classes := 0
	if r.LowercaseCount > 0 {
		alphabet += lowerPoolSize
		classes++
	}
	if r.UppercaseCount > 0 {
		alphabet += upperPoolSize
		classes++
	}
	if r.DigitCount > 0 {
		alphabet += digitPoolSize
		classes++
	}
	if r.SpecialCount > 0 {
		alphabet += specialPoolSize
		classes++
	}
	r.EntropyBits = float64(r.Length) * math.Log2(float64(alphabet))
	r.Score = score(r.Length, classes)
	r.Tier = classify(r.Score)
	return r
}

// score is a separate 0-100 metric for UI display: length contribution capped
// at 40, 10 points per class present, plus a multi-class bonus.
func score(length, classes int) int {
	s := length * 2
	if s > 40 {
		s = 40
	}
	s += classes * 10
	if classes > 1 {
		s += (classes - 1) * 5
	}
	if s > 100 {
		s = 100
	}
	return s
}

func classify(score int) Tier {
	switch {
	case score < 20:
		return TierVeryWeak
	case score < 40:
		return TierWeak
	case score < 60:
		return TierModerate
	case score < 80:
		return TierStrong
	default:
		return TierVeryStrong
	}
}
