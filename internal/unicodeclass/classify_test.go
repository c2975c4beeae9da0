package unicodeclass

import "testing"

func TestIsControl(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"tab", '\t', true},
		{"bell", '\a', true},
		{"letter", 'a', false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsControl(tc.r); got != tc.want {
				t.Errorf("IsControl(%q) = %v, want %v", tc.r, got, tc.want)
			}
		})
	}
}

func TestIsReplacement(t *testing.T) {
	if !IsReplacement('�') {
		t.Error("expected U+FFFD to be the replacement character")
	}
	if IsReplacement('a') {
		t.Error("did not expect 'a' to be the replacement character")
	}
}

func TestIsWhitespace(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"space", ' ', true},
		{"tab", '\t', true},
		{"newline", '\n', true},
		{"cr", '\r', true},
		{"nbsp", ' ', true},
		{"letter", 'a', false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsWhitespace(tc.r); got != tc.want {
				t.Errorf("IsWhitespace(%q) = %v, want %v", tc.r, got, tc.want)
			}
		})
	}
}

func TestIsPunctuation(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"exclaim", '!', true},
		{"hash", '#', true},
		{"letter", 'a', false},
		{"digit", '5', false},
		{"em-dash", '—', true}, // Pd
		{"curly-quote", '“', true}, // Pi
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPunctuation(tc.r); got != tc.want {
				t.Errorf("IsPunctuation(%q) = %v, want %v", tc.r, got, tc.want)
			}
		})
	}
}

func TestIsCJK(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"han-common", '中', true},
		{"han-ext-a", '㐀', true},
		{"latin", 'a', false},
		{"hangul-syllable-not-cjk", '한', false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsCJK(tc.r); got != tc.want {
				t.Errorf("IsCJK(%q) = %v, want %v", tc.r, got, tc.want)
			}
		})
	}
}

func TestIsNonSpacingMark(t *testing.T) {
	// U+0301 COMBINING ACUTE ACCENT
	if !IsNonSpacingMark('́') {
		t.Error("expected combining acute accent to be a non-spacing mark")
	}
	if IsNonSpacingMark('a') {
		t.Error("did not expect 'a' to be a non-spacing mark")
	}
}
