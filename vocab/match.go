package vocab

import (
	"github.com/lukaschmidt/go-wordpiece/internal/normalize"
	"github.com/lukaschmidt/go-wordpiece/internal/unicodeclass"
)

// Match runs the greedy WordPiece longest-match algorithm on word against
// this vocabulary, writing token ids into sink (capacity C) and returning
// how many were written (0 <= k <= len(sink)).
//
// Algorithm (spec order): find the longest prefix of word in the prefix
// trie; if found, repeatedly find the longest prefix of the remainder in
// the suffix trie until the remainder is consumed or the sink is full. If
// any step fails to find a match, the whole word falls through the
// cascading unknown-handling chain: re-clean, re-normalize, strip
// diacritics, each retried once, before finally emitting a single [UNK].
func (v *Vocabulary) Match(word []rune, sink []int32) int {
	if len(word) == 0 || len(sink) == 0 {
		return 0
	}

	if n, ok := v.tryDecompose(word, sink); ok {
		return n
	}
	return v.unknownFallback(word, sink)
}

// tryDecompose attempts the prefix+suffix-loop decomposition: longest
// prefix match, then longest continuation match against the remainder
// until consumed. ok is false if the word cannot be fully decomposed (no
// match at some step), in which case no partial output is returned — the
// caller discards it and moves to unknown-handling.
func (v *Vocabulary) tryDecompose(word []rune, sink []int32) (int, bool) {
	id, length, ok := v.prefix.LongestPrefix(word)
	if !ok {
		return 0, false
	}

	sink[0] = id
	written := 1
	remaining := word[length:]

	for len(remaining) > 0 {
		if written >= len(sink) {
			break
		}
		sid, slen, sok := v.suffix.LongestPrefix(remaining)
		if !sok {
			return 0, false
		}
		sink[written] = sid
		written++
		remaining = remaining[slen:]
	}

	return written, true
}

// unknownFallback runs a three-rung cascade (re-clean, re-normalize,
// strip-diacritics), each attempted once and only if the word is still
// unresolved, before a final [UNK]. Expressed as an explicit loop over a
// fixed-size rung list rather than recursion, so the fallback depth is
// bounded at 3 by construction.
func (v *Vocabulary) unknownFallback(word []rune, sink []int32) int {
	rungs := [...]func([]rune) ([]rune, bool){
		v.recleanRung,
		v.renormalizeRung,
		v.stripDiacriticsRung,
	}

	current := word
	for _, rung := range rungs {
		candidate, changed := rung(current)
		if !changed {
			continue
		}
		if len(candidate) == 0 {
			return 0
		}
		if n, ok := v.tryDecompose(candidate, sink); ok {
			return n
		}
		current = candidate
	}

	sink[0] = v.UnkID
	return 1
}

// recleanRung strips control/format/surrogate/private-use/replacement
// runes that survived into a word span, e.g. introduced by upstream
// Unicode composition. changed is false when nothing needed removing.
func (v *Vocabulary) recleanRung(word []rune) (cleaned []rune, changed bool) {
	clean := make([]rune, 0, len(word))
	for _, r := range word {
		if unicodeclass.IsControl(r) ||
			unicodeclass.IsFormat(r) ||
			unicodeclass.IsSurrogate(r) ||
			unicodeclass.IsPrivateUse(r) ||
			unicodeclass.IsReplacement(r) {
			continue
		}
		clean = append(clean, r)
	}
	if len(clean) == len(word) {
		return nil, false
	}
	return clean, true
}

// renormalizeRung normalizes word into the vocabulary's configured form,
// if it is not already in that form.
func (v *Vocabulary) renormalizeRung(word []rune) (normalized []rune, changed bool) {
	s := string(word)
	if normalize.IsNormalized(v.Form, s) {
		return nil, false
	}
	return []rune(normalize.Normalize(v.Form, s)), true
}

// stripDiacriticsRung strips non-spacing marks and lowercases any remaining
// upper/title-case letters, recomposing into the vocabulary's form.
func (v *Vocabulary) stripDiacriticsRung(word []rune) (stripped []rune, changed bool) {
	s := string(word)
	out := normalize.StripDiacritics(s, v.Form)
	if out == s {
		return nil, false
	}
	return []rune(out), true
}
