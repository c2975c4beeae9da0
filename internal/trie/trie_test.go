package trie

import "testing"

func TestLongestPrefix(t *testing.T) {
	tr := New()
	tr.Insert("play", 10)
	tr.Insert("p", 11)
	tr.Insert("playing", 12)

	tests := []struct {
		name     string
		in       string
		wantID   int32
		wantLen  int
		wantOK   bool
	}{
		{"exact shorter wins longest available", "play", 10, 4, true},
		{"longest full match", "playing", 12, 7, true},
		{"prefix only, rest unmatched", "plays", 10, 4, true},
		{"single char fallback", "pq", 11, 1, true},
		{"no match", "xyz", 0, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, length, ok := tr.LongestPrefix([]rune(tc.in))
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if id != tc.wantID || length != tc.wantLen {
				t.Errorf("LongestPrefix(%q) = (%d, %d), want (%d, %d)", tc.in, id, length, tc.wantID, tc.wantLen)
			}
		})
	}
}

func TestLongestPrefix_Empty(t *testing.T) {
	tr := New()
	_, _, ok := tr.LongestPrefix([]rune("anything"))
	if ok {
		t.Error("expected no match on empty trie")
	}
}

func TestLookup(t *testing.T) {
	tr := New()
	tr.Insert("ing", 5)

	if id, ok := tr.Lookup("ing"); !ok || id != 5 {
		t.Errorf("Lookup(ing) = (%d, %v), want (5, true)", id, ok)
	}
	if _, ok := tr.Lookup("in"); ok {
		t.Error("did not expect partial key to match Lookup")
	}
}

func TestInsertOverwrite(t *testing.T) {
	tr := New()
	tr.Insert("a", 1)
	tr.Insert("a", 2)

	if id, ok := tr.Lookup("a"); !ok || id != 2 {
		t.Errorf("Lookup(a) = (%d, %v), want (2, true)", id, ok)
	}
}
