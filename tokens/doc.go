// Package tokens provides token estimation for LLM rate limiting.
//
// Token estimation is based on the rule-of-thumb that approximately 4
// characters equals 1 token for English text. This provides a fast
// estimation without requiring a model-specific tokenizer. Any non-empty
// input estimates to at least one token, so throttling can never be
// bypassed by many tiny requests rounding down to zero.
//
// # Counter
//
// The Counter interface provides token counting methods:
//
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, world!")     // ~3 tokens
//	fits := counter.FitsInLimit("text", 1000)   // true if <= 1000 tokens
//
// For one-off counting, use the convenience function:
//
//	count := tokens.EstimateTokens("Hello, world!")
//
// # Size-Based Estimation
//
// Files can be estimated from their byte length without reading contents:
//
//	count, err := tokens.EstimateFileTokens("/path/to/doc.md", 0)
//
// Remote resources can be estimated from a HEAD request's Content-Length.
// The probe is best-effort and never fails hard:
//
//	count, ok := tokens.EstimateURLTokens(ctx, "https://example.com/doc", 0)
//	if !ok {
//	    // size unavailable; fetch and estimate the body instead
//	}
//
// Pass 0 as the ratio to use the default of 4 characters per token.
package tokens
