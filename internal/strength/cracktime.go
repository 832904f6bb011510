package strength

import (
	"fmt"
	"math"
)

// CrackEstimate is one attack scenario with a humanized time-to-crack.
type CrackEstimate struct {
	Scenario  string `json:"scenario"`
	HumanTime string `json:"human_time"`
}

// Attack scenarios with guesses-per-second rates, ordered fastest first.
var scenarios = []struct {
	label string
	rate  float64
}{
	{"Offline attack, fast hash (10B/sec)", 1e10},
	{"Offline attack, slow hash (100k/sec)", 1e5},
	{"Online attack (100/sec)", 1e2},
	{"Online attack, throttled (1/sec)", 1},
}

// EstimateCrackTimes maps entropy bits to a humanized time-to-crack per
// scenario. Zero or negative entropy yields zero time; entropy large enough to
// overflow float64 is reported as centuries, never Inf or NaN.
func EstimateCrackTimes(entropyBits float64) []CrackEstimate {
	out := make([]CrackEstimate, 0, len(scenarios))
	for _, sc := range scenarios {
		var seconds float64
		if entropyBits > 0 {
			seconds = math.Pow(2, entropyBits) / sc.rate
		}
		out = append(out, CrackEstimate{Scenario: sc.label, HumanTime: humanTime(seconds)})
	}
	return out
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerYear   = 365.25 * secondsPerDay
)

func humanTime(seconds float64) string {
	switch {
	case math.IsInf(seconds, 0) || math.IsNaN(seconds) || seconds >= 100*secondsPerYear:
		return "centuries+"
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%.2f seconds", seconds)
	case seconds < secondsPerHour:
		return fmt.Sprintf("%.1f minutes", seconds/secondsPerMinute)
	case seconds < secondsPerDay:
		return fmt.Sprintf("%.1f hours", seconds/secondsPerHour)
	case seconds < secondsPerYear:
		return fmt.Sprintf("%.1f days", seconds/secondsPerDay)
	default:
		return fmt.Sprintf("%.1f years", seconds/secondsPerYear)
	}
}
