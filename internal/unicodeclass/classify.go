// Package unicodeclass provides the rune-category predicates the
// pre-tokenizer and normalizer need: control/format/surrogate/private-use
// detection, non-spacing marks, whitespace, punctuation, and CJK ranges.
package unicodeclass

import "unicode"

// replacementChar is U+FFFD, emitted by the UTF-8 decoder for invalid
// sequences and treated as noise by the cleaner.
const replacementChar = '�'

// IsControl reports whether r is a C0/C1 control character (category Cc).
func IsControl(r rune) bool {
	return unicode.Is(unicode.Cc, r)
}

// IsFormat reports whether r is a formatting character (category Cf),
// e.g. zero-width joiner/non-joiner, soft hyphen.
func IsFormat(r rune) bool {
	return unicode.Is(unicode.Cf, r)
}

// IsSurrogate reports whether r is a UTF-16 surrogate code point
// (category Cs). Valid UTF-8 never encodes these and Go's UTF-8 decoding
// turns them into U+FFFD, so this only matches runes built directly from
// integer values.
func IsSurrogate(r rune) bool {
	return unicode.Is(unicode.Cs, r)
}

// IsPrivateUse reports whether r falls in a private-use area (category Co).
func IsPrivateUse(r rune) bool {
	return unicode.Is(unicode.Co, r)
}

// IsReplacement reports whether r is U+FFFD, the Unicode replacement
// character.
func IsReplacement(r rune) bool {
	return r == replacementChar
}

// IsNonSpacingMark reports whether r is a combining mark that occupies no
// space of its own (category Mn) — the class stripped by diacritic removal.
func IsNonSpacingMark(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// IsWhitespace reports whether r is a separator the pre-tokenizer splits
// on: ASCII tab/newline/carriage-return/space, or any Unicode space
// separator (category Zs).
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// asciiPunctuation is the ASCII punctuation set treated as its own token
// during pre-tokenization, matching the BERT reference tokenizer's set.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// IsPunctuation reports whether r is an ASCII punctuation character or
// belongs to any Unicode category beginning with P (Pc, Pd, Pe, Pf, Pi,
// Po, Ps).
func IsPunctuation(r rune) bool {
	if r < 0x80 {
		for _, p := range asciiPunctuation {
			if r == p {
				return true
			}
		}
		return false
	}
	return unicode.In(r, unicode.Pc, unicode.Pd, unicode.Pe, unicode.Pf, unicode.Pi, unicode.Po, unicode.Ps)
}

// cjkRanges enumerates the CJK ideographic blocks, each scalar of which
// the pre-tokenizer treats as its own word.
var cjkRanges = [][2]rune{
	{0x4E00, 0x9FFF},
	{0x3400, 0x4DBF},
	{0x20000, 0x2A6DF},
	{0x2A700, 0x2B73F},
	{0x2B740, 0x2B81F},
	{0x2B820, 0x2CEAF},
	{0xF900, 0xFAFF},
	{0x2F800, 0x2FA1F},
}

// IsCJK reports whether r lies in one of the CJK ideographic ranges.
func IsCJK(r rune) bool {
	for _, rng := range cjkRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}
