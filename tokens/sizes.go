package tokens

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"
)

// DefaultProbeTimeout is the default timeout for URL size probes.
const DefaultProbeTimeout = 10 * time.Second

// EstimateFileTokens estimates the token count of a file from its size
// alone, without reading its contents. If charsPerToken is <= 0, the
// default ratio (4.0) is used.
func EstimateFileTokens(path string, charsPerToken float64) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat file: %w", err)
	}
	return estimateFromBytes(info.Size(), charsPerToken), nil
}

// EstimateURLTokens estimates the token count of a remote resource from a
// HEAD request's Content-Length header. The probe is best-effort: on any
// network failure, non-success status, or missing Content-Length, it
// returns (0, false) rather than an error. If charsPerToken is <= 0, the
// default ratio (4.0) is used.
func EstimateURLTokens(ctx context.Context, url string, charsPerToken float64) (int, bool) {
	client := &http.Client{Timeout: DefaultProbeTimeout}
	return EstimateURLTokensWithClient(ctx, client, url, charsPerToken)
}

// EstimateURLTokensWithClient is like EstimateURLTokens but uses the
// provided HTTP client, allowing custom timeouts, transports, or proxies.
func EstimateURLTokensWithClient(ctx context.Context, client *http.Client, url string, charsPerToken float64) (int, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, false
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, false
	}

	// ContentLength is -1 when the server did not declare a length.
	if resp.ContentLength <= 0 {
		return 0, false
	}

	return estimateFromBytes(resp.ContentLength, charsPerToken), true
}

// estimateFromBytes converts a byte count to a token estimate with the
// same floor semantics as Counter: a non-empty size is at least one token.
func estimateFromBytes(size int64, charsPerToken float64) int {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	tokens := int(float64(size) / charsPerToken)
	if tokens < 1 {
		return 1
	}
	return tokens
}
