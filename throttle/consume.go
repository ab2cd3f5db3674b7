package throttle

import (
	"context"
	"time"

	"github.com/randalmurphal/throttlekit/chunk"
)

// Chunk is one throttled piece of input text.
type Chunk struct {
	// Text is the chunk content. Empty when Err is set.
	Text string

	// Tokens is the estimated token count charged for this chunk.
	Tokens int

	// Waited is how long admission of this chunk blocked.
	Waited time.Duration

	// Err is non-nil if admission failed; the channel is closed after an
	// error is delivered.
	Err error
}

// Consume splits text into boundary-aware chunks sized to the chunk
// limit and sends each on the returned channel once it has been admitted
// against the budget, waiting out the window between chunks as needed.
//
// The sequence is lazy and single-pass: a chunk is only charged when the
// previous one has been received, so abandoning the channel (by
// cancelling ctx) stops further admissions. The channel is closed when
// the text is exhausted, an admission fails, or ctx is cancelled. Call
// Consume again for a fresh pass.
//
//	for c := range th.Consume(ctx, text) {
//	    if c.Err != nil {
//	        return c.Err
//	    }
//	    send(c.Text)
//	}
func (t *Throttle) Consume(ctx context.Context, text string) <-chan Chunk {
	maxChars := int(float64(t.chunkSize) * t.charsPerToken)
	pieces := chunk.Split(text, maxChars)

	out := make(chan Chunk)
	go func() {
		defer close(out)

		for _, piece := range pieces {
			count := t.Estimate(piece)

			waited, err := t.Wait(ctx, count)
			if err != nil {
				select {
				case out <- Chunk{Tokens: count, Err: err}:
				case <-ctx.Done():
				}
				return
			}

			select {
			case out <- Chunk{Text: piece, Tokens: count, Waited: waited}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
