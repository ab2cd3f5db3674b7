package chunk

import (
	"strings"
	"unicode"
)

// Split divides text into chunks of at most maxChars characters, breaking
// at the most natural boundary available: a paragraph break, then a
// sentence end, then a word boundary, and as a last resort a hard cut at
// exactly maxChars. A boundary is only accepted past the quarter mark of
// the window, so an early stray newline or period cannot produce a
// near-empty chunk. Characters are counted as runes, so multi-byte
// UTF-8 text is never split mid-character.
//
// Chunks are trimmed of trailing whitespace at the split point, and the
// following chunk of leading whitespace; interior whitespace is preserved.
// Text that already fits is returned as a single chunk, unchanged.
func Split(text string, maxChars int) []string {
	if maxChars < 1 {
		maxChars = 1
	}

	runes := []rune(text)
	if len(runes) <= maxChars {
		return []string{text}
	}

	minBreak := maxChars / 4

	var chunks []string
	remaining := runes
	for len(remaining) > maxChars {
		window := remaining[:maxChars]

		pos := lastParagraphBreak(window)

		if pos < minBreak {
			if end := lastSentenceEnd(window); end > minBreak {
				pos = end
			} else {
				pos = -1
			}
		}

		if pos < minBreak {
			pos = lastSpace(window)
		}

		if pos < minBreak {
			pos = maxChars
		}

		piece := strings.TrimRightFunc(string(remaining[:pos]), unicode.IsSpace)
		if piece != "" {
			chunks = append(chunks, piece)
		}
		remaining = trimLeadingSpace(remaining[pos:])
	}

	if len(remaining) > 0 {
		chunks = append(chunks, string(remaining))
	}

	return chunks
}

// lastParagraphBreak returns the index of the last "\n\n" in the window,
// or -1 if none. The break itself is left to the remainder, where leading
// whitespace trimming removes it.
func lastParagraphBreak(window []rune) int {
	for i := len(window) - 2; i >= 0; i-- {
		if window[i] == '\n' && window[i+1] == '\n' {
			return i
		}
	}
	return -1
}

// lastSentenceEnd returns the position just past the last sentence-ending
// punctuation ('.', '!', '?') followed by whitespace, including the full
// whitespace run, or -1 if none.
func lastSentenceEnd(window []rune) int {
	end := -1
	for i := 0; i < len(window)-1; i++ {
		if !isSentencePunct(window[i]) || !unicode.IsSpace(window[i+1]) {
			continue
		}
		j := i + 1
		for j < len(window) && unicode.IsSpace(window[j]) {
			j++
		}
		end = j
		i = j - 1
	}
	return end
}

func isSentencePunct(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// lastSpace returns the index of the last plain space in the window, or -1.
func lastSpace(window []rune) int {
	for i := len(window) - 1; i >= 0; i-- {
		if window[i] == ' ' {
			return i
		}
	}
	return -1
}

func trimLeadingSpace(runes []rune) []rune {
	i := 0
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return runes[i:]
}
