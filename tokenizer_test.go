package wordpiece

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestVocab(t *testing.T, lines []string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.txt")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing vocab fixture: %v", err)
	}
	return path
}

func uncasedFixtureLines() []string {
	return []string{
		"[PAD]", // 0
		"[UNK]", // 1
		"[CLS]", // 2
		"[SEP]", // 3
		"hello", // 4
		"world", // 5
		"play",  // 6
		"##ing", // 7
		"##s",   // 8
	}
}

func newTestTokenizer(t *testing.T, opts ...Option) *Tokenizer {
	t.Helper()
	path := writeTestVocab(t, uncasedFixtureLines())
	tok, err := New(path, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tok
}

func TestNew_MissingSpecialToken(t *testing.T) {
	path := writeTestVocab(t, []string{"[UNK]", "[CLS]", "[SEP]", "hello"})
	if _, err := New(path); err == nil {
		t.Fatal("expected error for vocabulary missing [PAD]")
	}
}

func TestNew_FileNotFound(t *testing.T) {
	if _, err := New("/nonexistent/vocab.txt"); err == nil {
		t.Fatal("expected error for nonexistent vocabulary file")
	}
}

func TestEncode_ClsSepFraming(t *testing.T) {
	tok := newTestTokenizer(t)

	inputIDs := make([]int32, 16)
	attentionMask := make([]int32, 16)
	tokenTypeIDs := make([]int32, 16)

	n, err := tok.Encode("hello world", inputIDs, attentionMask, tokenTypeIDs, 0)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := []int32{2, 4, 5, 3} // [CLS] hello world [SEP]
	if n != len(want) {
		t.Fatalf("length = %d, want %d", n, len(want))
	}
	for i, id := range want {
		if inputIDs[i] != id {
			t.Errorf("inputIDs[%d] = %d, want %d", i, inputIDs[i], id)
		}
	}
	for i := 0; i < n; i++ {
		if attentionMask[i] != 1 {
			t.Errorf("attentionMask[%d] = %d, want 1", i, attentionMask[i])
		}
	}
}

func TestEncode_EmptyInputProducesClsSep(t *testing.T) {
	tok := newTestTokenizer(t)

	inputIDs := make([]int32, 8)
	n, err := tok.Encode("", inputIDs, nil, nil, 0)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if n != 2 || inputIDs[0] != tok.vocab.ClsID || inputIDs[1] != tok.vocab.SepID {
		t.Errorf("Encode(\"\") = %d %v, want [CLS][SEP]", n, inputIDs[:n])
	}
}

func TestEncode_SinkTooSmall(t *testing.T) {
	tok := newTestTokenizer(t)

	_, err := tok.Encode("hello", make([]int32, 1), nil, nil, 0)
	if err == nil {
		t.Fatal("expected ErrSinkTooSmall")
	}
}

func TestEncode_PadTo(t *testing.T) {
	tok := newTestTokenizer(t)

	inputIDs := make([]int32, 10)
	attentionMask := make([]int32, 10)
	n, err := tok.Encode("hello", inputIDs, attentionMask, nil, 10)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if n != 10 {
		t.Fatalf("L = %d, want 10 (padded)", n)
	}
	for i := 3; i < 10; i++ {
		if inputIDs[i] != tok.vocab.PadID {
			t.Errorf("inputIDs[%d] = %d, want [PAD]", i, inputIDs[i])
		}
		if attentionMask[i] != 0 {
			t.Errorf("attentionMask[%d] = %d, want 0", i, attentionMask[i])
		}
	}
}

func TestEncode_TruncationDoesNotSplitWords(t *testing.T) {
	tok := newTestTokenizer(t)

	// "playing" decomposes to 2 ids (play, ##ing); a sink leaving room for
	// exactly 1 more slot before [SEP] must drop the whole word, not just
	// "##ing".
	inputIDs := make([]int32, 4) // [CLS] play ?? [SEP] has no room for ##ing
	n, err := tok.Encode("play playing", inputIDs, nil, nil, 0)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []int32{2, 6, 3} // [CLS] play [SEP] — "playing" dropped whole
	if n != len(want) {
		t.Fatalf("length = %d ids %v, want %v", n, inputIDs[:n], want)
	}
	for i, id := range want {
		if inputIDs[i] != id {
			t.Errorf("inputIDs[%d] = %d, want %d", i, inputIDs[i], id)
		}
	}
}

func TestEncode_VocabularyNotLoaded(t *testing.T) {
	var tok Tokenizer
	_, err := tok.Encode("hello", make([]int32, 4), nil, nil, 0)
	if err != ErrVocabularyNotLoaded {
		t.Errorf("err = %v, want ErrVocabularyNotLoaded", err)
	}
}

func TestEncodeNew_AllocatesAndPads(t *testing.T) {
	tok := newTestTokenizer(t)

	inputIDs, attentionMask, tokenTypeIDs, err := tok.EncodeNew("hello world", 16, 8)
	if err != nil {
		t.Fatalf("EncodeNew failed: %v", err)
	}
	if len(inputIDs) != 8 || len(attentionMask) != 8 || len(tokenTypeIDs) != 8 {
		t.Fatalf("sink lengths = %d/%d/%d, want 8 each", len(inputIDs), len(attentionMask), len(tokenTypeIDs))
	}
	want := []int32{2, 4, 5, 3}
	for i, id := range want {
		if inputIDs[i] != id {
			t.Errorf("inputIDs[%d] = %d, want %d", i, inputIDs[i], id)
		}
	}
	for i := len(want); i < 8; i++ {
		if inputIDs[i] != tok.vocab.PadID {
			t.Errorf("inputIDs[%d] = %d, want [PAD]", i, inputIDs[i])
		}
	}
}

func TestEncodeNew_UsesConfiguredMaxTokensDefault(t *testing.T) {
	tok := newTestTokenizer(t, WithMaxTokens(4))

	// "hello world hello" needs 5 ids ([CLS] hello world hello [SEP]); with
	// a configured default of 4, EncodeNew(..., 0, 0) must truncate to 4
	// without the caller passing maxTokens explicitly, dropping the third
	// "hello" whole rather than splitting it.
	inputIDs, _, _, err := tok.EncodeNew("hello world hello", 0, 0)
	if err != nil {
		t.Fatalf("EncodeNew failed: %v", err)
	}
	want := []int32{2, 4, 5, 3} // [CLS] hello world [SEP]
	if len(inputIDs) != len(want) {
		t.Fatalf("len(inputIDs) = %d ids %v, want %v (configured WithMaxTokens default)", len(inputIDs), inputIDs, want)
	}
}

func TestEncodeNew_ExplicitMaxTokensOverridesDefault(t *testing.T) {
	tok := newTestTokenizer(t, WithMaxTokens(4))

	inputIDs, _, _, err := tok.EncodeNew("hello world hello", 16, 0)
	if err != nil {
		t.Fatalf("EncodeNew failed: %v", err)
	}
	want := []int32{2, 4, 5, 4, 3} // [CLS] hello world hello [SEP]
	if len(inputIDs) != len(want) {
		t.Fatalf("len(inputIDs) = %d ids %v, want %v", len(inputIDs), inputIDs, want)
	}
}

func TestEncode_UsesConfiguredPadToDefault(t *testing.T) {
	tok := newTestTokenizer(t, WithPadTo(10))

	inputIDs := make([]int32, 10)
	n, err := tok.Encode("hello", inputIDs, nil, nil, 0)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if n != 10 {
		t.Fatalf("L = %d, want 10 (configured WithPadTo default)", n)
	}
}

func TestEncodeNew_UsesConfiguredPadToDefault(t *testing.T) {
	tok := newTestTokenizer(t, WithPadTo(8))

	inputIDs, attentionMask, _, err := tok.EncodeNew("hello", 16, 0)
	if err != nil {
		t.Fatalf("EncodeNew failed: %v", err)
	}
	if len(inputIDs) != 8 {
		t.Fatalf("len(inputIDs) = %d, want 8 (configured WithPadTo default)", len(inputIDs))
	}
	for i := 3; i < 8; i++ {
		if inputIDs[i] != tok.vocab.PadID || attentionMask[i] != 0 {
			t.Errorf("inputIDs[%d]/attentionMask[%d] = %d/%d, want [PAD]/0", i, i, inputIDs[i], attentionMask[i])
		}
	}
}

func TestTokenID(t *testing.T) {
	tok := newTestTokenizer(t)

	if id, ok := tok.TokenID("hello"); !ok || id != 4 {
		t.Errorf("TokenID(hello) = (%d, %v), want (4, true)", id, ok)
	}
	if id, ok := tok.TokenID("##ing"); !ok || id != 7 {
		t.Errorf("TokenID(##ing) = (%d, %v), want (7, true)", id, ok)
	}
	if _, ok := tok.TokenID("nonexistent"); ok {
		t.Error("expected TokenID to report false for a token not in the vocabulary")
	}

	var zero Tokenizer
	if _, ok := zero.TokenID("hello"); ok {
		t.Error("expected TokenID on a zero-value Tokenizer to report false")
	}
}

func TestEncode_UnknownHookFires(t *testing.T) {
	var seen []string
	tok := newTestTokenizer(t, WithUnknownHook(func(raw string) {
		seen = append(seen, raw)
	}))

	inputIDs := make([]int32, 8)
	if _, err := tok.Encode("zzzzqqqq", inputIDs, nil, nil, 0); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(seen) != 1 || seen[0] != "zzzzqqqq" {
		t.Errorf("unknown hook saw %v, want [zzzzqqqq]", seen)
	}
}
