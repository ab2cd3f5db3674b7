package tokens

import (
	"unicode/utf8"
)

// DefaultCharsPerToken is the default character-to-token ratio.
// Approximately 4 characters equals 1 token for English text.
const DefaultCharsPerToken = 4.0

// Counter estimates token counts for text.
type Counter interface {
	// Count estimates the number of tokens in the given text.
	Count(text string) int

	// FitsInLimit returns true if the text fits within the token limit.
	FitsInLimit(text string, limit int) bool
}

// EstimatingCounter uses a character-to-token ratio for estimation.
// Default ratio is ~4 chars per token (Claude's approximate tokenization).
type EstimatingCounter struct {
	// CharsPerToken is the average characters per token.
	// Default is 4, which works well for English text.
	CharsPerToken float64
}

// NewEstimatingCounter creates a token counter with default settings.
func NewEstimatingCounter() *EstimatingCounter {
	return &EstimatingCounter{
		CharsPerToken: DefaultCharsPerToken,
	}
}

// NewEstimatingCounterWithRatio creates a token counter with a custom ratio.
// If charsPerToken is <= 0, the default ratio (4.0) is used.
func NewEstimatingCounterWithRatio(charsPerToken float64) *EstimatingCounter {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &EstimatingCounter{
		CharsPerToken: charsPerToken,
	}
}

// Count estimates the number of tokens in the given text.
// This uses a simple heuristic of ~4 characters per token.
// Non-empty text always counts as at least one token, so budget accounting
// never admits content for free on rounding. Empty text counts as zero.
// Actual token counts may vary based on the specific tokenizer used.
func (c *EstimatingCounter) Count(text string) int {
	ratio := c.CharsPerToken
	if ratio <= 0 {
		ratio = DefaultCharsPerToken
	}

	// Count runes (Unicode code points) rather than bytes for better accuracy
	runeCount := utf8.RuneCountInString(text)
	if runeCount == 0 {
		return 0
	}

	tokens := int(float64(runeCount) / ratio)
	if tokens < 1 {
		return 1
	}
	return tokens
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *EstimatingCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// EstimateTokens is a convenience function using the default estimator.
func EstimateTokens(text string) int {
	return NewEstimatingCounter().Count(text)
}
