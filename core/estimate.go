package core

// Clarity scoring coefficients. These are deliberately heuristic and pinned by
// tests: more fillers and pauses always lower clarity until the floor.
const (
	clarityBase         = 90
	clarityFillerCost   = 5
	clarityPauseCost    = 7
	clarityShortPenalty = 20
	clarityShortWords   = 70
	clarityFloor        = 15
	clarityCeiling      = 98
)

// Confidence scoring coefficients: longer answers and concrete examples raise
// confidence up to the bonus ceiling; fillers lower it until the floor.
const (
	confidenceBase        = 55
	confidenceLongWords   = 140
	confidenceLongBonus   = 35
	confidenceLengthSlope = 0.6
	confidenceLengthBase  = 60
	confidenceExampleBump = 20
	confidenceFillerCost  = 3
	confidenceFloor       = 20
	confidenceCeiling     = 98
)

// EstimateClarity computes the clarity score from fluency signals.
// The result is clamped to [15, 98].
func EstimateClarity(fillerCount, pauseCount, wordCount int) int {
	penalty := fillerCount*clarityFillerCost + pauseCount*clarityPauseCost
	if wordCount < clarityShortWords {
		penalty += clarityShortPenalty
	}
	return clampInt(clarityBase-penalty, clarityFloor, clarityCeiling)
}

// EstimateConfidence computes the confidence score from length, example usage
// and filler signals. The result is truncated to an integer before clamping
// to [20, 98].
func EstimateConfidence(wordCount, fillerCount int, hasExample bool) int {
	var lengthBonus float64
	if wordCount > confidenceLongWords {
		lengthBonus = confidenceLongBonus
	} else {
		lengthBonus = max(0, float64(wordCount-confidenceLengthBase)*confidenceLengthSlope)
	}

	exampleBonus := 0.0
	if hasExample {
		exampleBonus = confidenceExampleBump
	}

	raw := confidenceBase + lengthBonus + exampleBonus - float64(fillerCount*confidenceFillerCost)
	return clampInt(int(raw), confidenceFloor, confidenceCeiling)
}

// clampInt bounds v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
