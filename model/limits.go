package model

import (
	"github.com/randalmurphal/throttlekit/throttle"
)

// RateLimit holds the per-minute rate limits for a model family.
type RateLimit struct {
	// TokensPerMinute is the combined input+output TPM limit.
	TokensPerMinute int

	// RequestsPerMinute is the RPM limit.
	RequestsPerMinute int
}

// RateLimits contains typical entry-tier API rate limits per model
// family (as of 2025). Higher usage tiers raise these; override with
// your account's actual limits when they differ.
var RateLimits = map[ModelName]RateLimit{
	ModelOpus:   {TokensPerMinute: 20_000, RequestsPerMinute: 50},
	ModelSonnet: {TokensPerMinute: 40_000, RequestsPerMinute: 50},
	ModelHaiku:  {TokensPerMinute: 50_000, RequestsPerMinute: 50},

	ModelGPT:     {TokensPerMinute: 30_000, RequestsPerMinute: 500},
	ModelGPTMini: {TokensPerMinute: 200_000, RequestsPerMinute: 500},
	ModelGPTPro:  {TokensPerMinute: 30_000, RequestsPerMinute: 500},
}

// DefaultRateLimit is used for models with no registered limit.
var DefaultRateLimit = RateLimit{TokensPerMinute: 30_000, RequestsPerMinute: 50}

// LimitFor returns the rate limit for a model, normalizing the name
// first, or DefaultRateLimit if the family is unknown.
func LimitFor(name string) RateLimit {
	if limit, ok := RateLimits[NormalizeModelName(name)]; ok {
		return limit
	}
	return DefaultRateLimit
}

// ThrottleFor builds a throttle sized to the model's TPM limit with
// default margins:
//
//	th := model.ThrottleFor("claude-sonnet-4-20250514") // 40K TPM
func ThrottleFor(name string) *throttle.Throttle {
	return throttle.New(LimitFor(name).TokensPerMinute)
}

// SubAgentThrottleFor builds a throttle capped to a fraction of the
// model's TPM limit, for sub-agents sharing the key with a main session.
func SubAgentThrottleFor(name string, fraction float64) *throttle.Throttle {
	return throttle.NewSubAgent(LimitFor(name).TokensPerMinute, fraction)
}
