// Package pretok implements the BERT pre-tokenizer: a single pass over
// input text that cleans, splits on whitespace, lowercases, and splits
// punctuation and CJK code points into their own single-rune words,
// delivering each resulting span to a visitor callback.
package pretok

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lukaschmidt/go-wordpiece/internal/unicodeclass"
)

// Span is an ephemeral view over one word's runes and its byte offsets in
// the original input. It must not be retained past the Visit call that
// receives it.
type Span struct {
	Runes []rune
	Start int // byte offset in the original input
	End   int // byte offset in the original input
}

// Visit is called once per non-empty word span, in input order. Returning
// false stops the walk immediately (used by the encoder to implement
// whole-word truncation).
type Visit func(Span) bool

// Walk cleans s (dropping control/format/surrogate/private-use/replacement
// code points), splits it on whitespace runs, optionally lowercases each
// chunk, then splits punctuation and CJK code points into singleton
// spans, delivering every resulting span to visit in order.
func Walk(s string, lowercase bool, visit Visit) {
	var chunk []rune
	chunkStart := -1
	byteOffset := 0

	flush := func(end int) bool {
		if len(chunk) == 0 {
			return true
		}
		ok := emitChunk(chunk, chunkStart, end, lowercase, visit)
		chunk = chunk[:0]
		chunkStart = -1
		return ok
	}

	for _, r := range s {
		size := utf8.RuneLen(r)
		switch {
		case unicodeclass.IsWhitespace(r):
			// checked before cleaning: tab/newline/CR are Cc but separate words
			if !flush(byteOffset) {
				return
			}
		case isCleaned(r):
			// dropped entirely, does not separate a chunk
		default:
			if chunkStart < 0 {
				chunkStart = byteOffset
			}
			chunk = append(chunk, r)
		}
		byteOffset += size
	}
	flush(byteOffset)
}

// isCleaned reports whether r belongs to one of the classes the cleaner
// drops before any splitting happens.
func isCleaned(r rune) bool {
	return unicodeclass.IsControl(r) ||
		unicodeclass.IsFormat(r) ||
		unicodeclass.IsSurrogate(r) ||
		unicodeclass.IsPrivateUse(r) ||
		unicodeclass.IsReplacement(r)
}

// emitChunk applies case folding to one whitespace-delimited chunk, then
// splits it into punctuation/CJK singletons and plain-text runs, emitting
// each as its own Span. chunkEnd is the byte offset just past the chunk in
// the original input (used to derive each sub-span's byte range).
func emitChunk(chunk []rune, chunkStart, chunkEnd int, lowercase bool, visit Visit) bool {
	// Byte offsets are derived from the original (pre-fold) runes: case
	// folding is a 1:1 rune mapping in Go, so index alignment survives
	// folding even on the rare rune whose folded form has a different
	// UTF-8 byte length (e.g. 'İ' -> 'i').
	runStart := 0
	byteOffsets := make([]int, len(chunk)+1)
	pos := chunkStart
	for i, r := range chunk {
		byteOffsets[i] = pos
		pos += utf8.RuneLen(r)
	}
	byteOffsets[len(chunk)] = chunkEnd

	if lowercase {
		chunk = foldCase(chunk)
	}

	flushRun := func(end int) bool {
		if end <= runStart {
			return true
		}
		return visit(Span{
			Runes: chunk[runStart:end],
			Start: byteOffsets[runStart],
			End:   byteOffsets[end],
		})
	}

	for i, r := range chunk {
		if unicodeclass.IsPunctuation(r) || unicodeclass.IsCJK(r) {
			if !flushRun(i) {
				return false
			}
			if !visit(Span{Runes: chunk[i : i+1], Start: byteOffsets[i], End: byteOffsets[i+1]}) {
				return false
			}
			runStart = i + 1
		}
	}
	return flushRun(len(chunk))
}

// foldCase lowercases every rune using invariant-culture case mapping. It
// always returns a fresh slice since the caller may still need the
// original chunk's byte-length-per-rune alignment, which case folding in
// Go never changes rune count for (unicode.ToLower is a 1:1 rune mapping).
func foldCase(chunk []rune) []rune {
	folded := make([]rune, len(chunk))
	for i, r := range chunk {
		folded[i] = unicode.ToLower(r)
	}
	return folded
}

// Collect runs Walk and returns all spans as a slice, for callers (tests,
// the benchmark harness) that prefer a materialized list over a
// callback. Prefer Walk directly on the hot path.
func Collect(s string, lowercase bool) []Span {
	var spans []Span
	Walk(s, lowercase, func(sp Span) bool {
		runes := make([]rune, len(sp.Runes))
		copy(runes, sp.Runes)
		spans = append(spans, Span{Runes: runes, Start: sp.Start, End: sp.End})
		return true
	})
	return spans
}

// String renders a Span's runes as a string, for diagnostics and tests.
func (s Span) String() string {
	var b strings.Builder
	b.Grow(len(s.Runes))
	for _, r := range s.Runes {
		b.WriteRune(r)
	}
	return b.String()
}
