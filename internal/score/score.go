// Package score computes the weighted compliance score for a result set.
package score

import (
	"math"

	"github.com/wbuf81/oscar/internal/compliance"
)

// Score bands for presentation.
const (
	thresholdExcellent = 80
	thresholdGood      = 60
	thresholdFair      = 40
)

// Compute returns the 0-100 weighted score of the result set under the given
// weight configuration. Disabled categories contribute to neither side of the
// ratio; absent or malformed entries count as not found. A configuration with
// zero total enabled weight scores 0.
func Compute(results compliance.ResultSet, weights compliance.Weights) int {
	earned := 0
	total := 0

	for cat, w := range weights {
		if !w.Enabled || w.Weight <= 0 {
			continue
		}

		total += w.Weight

		if results.Found(cat) {
			earned += w.Weight
		}
	}

	if total == 0 {
		return 0
	}

	return int(math.Round(float64(earned) / float64(total) * 100))
}

// Label maps a score to its presentation band.
func Label(score int) string {
	switch {
	case score >= thresholdExcellent:
		return "Excellent"
	case score >= thresholdGood:
		return "Good"
	case score >= thresholdFair:
		return "Fair"
	default:
		return "Poor"
	}
}
