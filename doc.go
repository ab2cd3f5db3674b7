// Package throttlekit provides client-side rate limiting for LLM API calls.
//
// throttlekit meters token consumption against a rolling one-minute window
// and splits oversized inputs into boundary-aware chunks that fit under the
// budget. Each subpackage can be used independently:
//
//   - throttle: Rolling-window token budget tracking and throttled chunk consumption
//   - tokens: Token estimation from text, files, and URLs
//   - chunk: Boundary-aware text splitting (paragraph > sentence > word)
//   - model: Per-model rate limit presets and usage tracking
//
// # Quick Start
//
// Gate API calls against a tokens-per-minute limit:
//
//	import "github.com/randalmurphal/throttlekit/throttle"
//	th := throttle.New(30_000)
//	waited, err := th.Wait(ctx, th.Estimate(prompt))
//
// Auto-chunk and throttle large content:
//
//	for c := range th.Consume(ctx, largeText) {
//	    if c.Err != nil {
//	        return c.Err
//	    }
//	    resp, _ := callYourAPI(c.Text)
//	}
//
// Cap a sub-agent to a fraction of a shared limit:
//
//	th := throttle.NewSubAgent(30_000, 0.5) // 15K TPM ceiling
//
// # Design Philosophy
//
// throttlekit follows these principles:
//
//   - Each package usable independently
//   - Stable, semver-friendly API
//   - Sensible defaults with full configurability
//   - Interfaces for extensibility, concrete types for simplicity
//   - Estimation over exact tokenization: fast, tokenizer-free heuristics
package throttlekit
