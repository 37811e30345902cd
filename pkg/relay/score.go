package relay

import (
	"math"
	"time"
)

// Constants of the desirability formula. They are deliberately not
// configurable.
const (
	// rateExponent (~sqrt 2) rewards high success rates super-linearly,
	// but less harshly than squaring would.
	rateExponent = 1.414

	// secondsPerDay sizes the age penalty: one day of staleness roughly
	// doubles the divisor.
	secondsPerDay = 86400.0
)

// Scoring is the desirability score for one candidate together with the
// factors that produced it.
type Scoring struct {
	Score       float64 `json:"score" yaml:"score"`
	AgeSeconds  int64   `json:"age_seconds" yaml:"ageSeconds"`
	Attempts    uint64  `json:"attempts" yaml:"attempts"`
	Successes   uint64  `json:"successes" yaml:"successes"`
	SuccessRate float64 `json:"success_rate" yaml:"successRate"`
}

// Score computes the desirability of an eligible candidate at the given
// time. Pure: same candidate and same now always yield the same Scoring.
//
//	score = rate^1.414 * log2(attempts)^2 / (1 + age/86400)
//
// log2 rewards sample size sub-linearly, squared for compounding credit;
// the divisor decays the score smoothly with staleness. log2(1) is 0, so
// a candidate with a single attempt scores exactly 0: one attempt
// carries no statistical confidence.
//
// A missing last_connected_at counts as unix 0, the most stale value
// possible, even though the candidate must have successes to get here.
// That is the established ranking behavior, kept as-is; review before
// changing it.
func Score(c *Candidate, now time.Time) Scoring {
	var last int64
	if c.Relay.LastConnectedAt != nil {
		last = *c.Relay.LastConnectedAt
	}
	age := now.Unix() - last

	attempts := c.Relay.SuccessCount + c.Relay.FailureCount
	successes := c.Relay.SuccessCount

	// attempts > 0 is guaranteed by the success_count predicate.
	rate := float64(successes) / float64(attempts)
	logAttempts := math.Log2(float64(attempts))
	agePenaltyDivisor := 1.0 + float64(age)/secondsPerDay

	return Scoring{
		Score:       math.Pow(rate, rateExponent) * logAttempts * logAttempts / agePenaltyDivisor,
		AgeSeconds:  age,
		Attempts:    attempts,
		Successes:   successes,
		SuccessRate: rate,
	}
}
