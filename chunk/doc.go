// Package chunk provides boundary-aware text splitting for LLM requests.
//
// Large inputs often need to be sent across several requests, and naive
// fixed-size cuts land mid-sentence or mid-word. Split prefers natural
// boundaries in descending order of quality:
//
//  1. Paragraph break (blank line)
//  2. Sentence end (. ! ? followed by whitespace)
//  3. Word boundary (space)
//  4. Hard cut at the character limit
//
// A boundary found in the first quarter of the window is rejected, and the
// search falls through to the next heuristic; this keeps chunks from
// collapsing to a few characters when a boundary happens to sit near the
// start. The hard cut guarantees progress, so Split always terminates.
//
// # Usage
//
//	chunks := chunk.Split(longText, 4000)
//	for _, c := range chunks {
//	    // each chunk is at most 4000 characters
//	}
//
// Splitting is eager: boundary search needs look-ahead, so the full slice
// of chunks is computed up front. For throttled, lazy consumption of
// chunks see the throttle package.
package chunk
