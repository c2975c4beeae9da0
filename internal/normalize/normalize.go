// Package normalize wraps golang.org/x/text/unicode/norm with the two
// operations the tokenizer needs: plain Unicode normalization and
// diacritic stripping combined with lowercasing of upper/title-case letters.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/lukaschmidt/go-wordpiece/internal/unicodeclass"
)

// Form identifies one of the four standard Unicode normalization forms.
type Form int

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD
)

// String implements fmt.Stringer for readable error messages and logs.
func (f Form) String() string {
	switch f {
	case NFC:
		return "NFC"
	case NFD:
		return "NFD"
	case NFKC:
		return "NFKC"
	case NFKD:
		return "NFKD"
	default:
		return "unknown"
	}
}

func (f Form) norm() norm.Form {
	switch f {
	case NFC:
		return norm.NFC
	case NFD:
		return norm.NFD
	case NFKC:
		return norm.NFKC
	case NFKD:
		return norm.NFKD
	default:
		return norm.NFC
	}
}

// Normalize applies the given Unicode normalization form to s.
func Normalize(form Form, s string) string {
	return form.norm().String(s)
}

// IsNormalized reports whether s is already in the given normalization
// form, letting callers skip a redundant pass.
func IsNormalized(form Form, s string) bool {
	return form.norm().IsNormalString(s)
}

// StripDiacritics decomposes s to NFD, drops non-spacing marks, lowercases
// any upper/title-case letter left behind (letters whose lowercase form
// differs only after decomposition, e.g. 'É' -> 'e' + combining acute ->
// 'e'), and recomposes into target. If s contains no non-spacing marks and
// no case-inducing letters, s is returned unchanged without allocating.
func StripDiacritics(s string, target Form) string {
	if !needsDiacriticStrip(s) {
		return s
	}

	decomposed := norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicodeclass.IsNonSpacingMark(r) {
			continue
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return target.norm().String(b.String())
}

// needsDiacriticStrip scans s for either a non-spacing mark (which would
// survive decomposition and need dropping) or an upper/title-case letter
// (which needs lowercasing). It walks the NFD decomposition with norm.Iter
// instead of materializing the decomposed string, so the common case (no
// marks, already-lowercase input) costs no heap allocation.
func needsDiacriticStrip(s string) bool {
	var it norm.Iter
	it.InitString(norm.NFD, s)
	for !it.Done() {
		seg := it.Next()
		for len(seg) > 0 {
			r, size := utf8.DecodeRune(seg)
			if unicodeclass.IsNonSpacingMark(r) {
				return true
			}
			if unicode.IsUpper(r) || unicode.IsTitle(r) {
				return true
			}
			seg = seg[size:]
		}
	}
	return false
}
