package wordpiece

import (
	"errors"
	"fmt"
	"os"

	"github.com/lukaschmidt/go-wordpiece/internal/pretok"
	"github.com/lukaschmidt/go-wordpiece/vocab"
)

// Tokenizer encodes text into the `[CLS] ... [SEP]` token-id sequences a
// BERT-family model expects. It is safe for concurrent use: Encode and
// EncodeNew hold no mutable state beyond the arguments and sinks the caller
// supplies.
type Tokenizer struct {
	vocab *vocab.Vocabulary
	cfg   config
}

// New loads the vocabulary file at vocabPath and returns a ready Tokenizer.
func New(vocabPath string, opts ...Option) (*Tokenizer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	v, err := vocab.Load(vocabPath, cfg.lowercase, cfg.form)
	if err != nil {
		if errors.Is(err, vocab.ErrMalformed) {
			return nil, fmt.Errorf("%w: %w", ErrVocabularyMalformed, err)
		}
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrVocabularyMalformed, vocabPath)
		}
		return nil, err
	}

	cfg.logger.Debug("vocabulary loaded", "path", vocabPath, "lowercase", cfg.lowercase, "form", cfg.form.String())

	return &Tokenizer{vocab: v, cfg: cfg}, nil
}

// TokenID reports the exact id for a literal vocabulary entry such as
// "hello" or "##ing", bypassing pre-tokenization and WordPiece matching
// entirely. Useful for inspecting or validating a vocabulary file directly.
func (t *Tokenizer) TokenID(token string) (int32, bool) {
	if t == nil || t.vocab == nil {
		return 0, false
	}
	return t.vocab.ID(token)
}

// Encode tokenizes input into the caller-supplied sinks, framing it with
// [CLS] and [SEP] and truncating without splitting a word's WordPiece units
// across the boundary. attentionMask and tokenTypeIDs may be nil if the
// caller does not need them. padTo, if greater than the non-padded length,
// right-pads inputIDs (and the mask/type sinks, if present) with [PAD] up
// to padTo, clamped to the sink's capacity. padTo <= 0 falls back to the
// Tokenizer's configured WithPadTo default. It returns the filled length L.
func (t *Tokenizer) Encode(input string, inputIDs, attentionMask, tokenTypeIDs []int32, padTo int) (int, error) {
	if t == nil || t.vocab == nil {
		return 0, ErrVocabularyNotLoaded
	}
	if padTo <= 0 {
		padTo = t.cfg.padTo
	}
	return t.encode(input, inputIDs, attentionMask, tokenTypeIDs, padTo)
}

// encode is the unexported core shared by Encode and EncodeNew. Unlike
// Encode, it applies padTo literally and never substitutes the
// WithPadTo default — callers resolve defaults once, at their own entry
// point, before reaching this.
func (t *Tokenizer) encode(input string, inputIDs, attentionMask, tokenTypeIDs []int32, padTo int) (int, error) {
	m := len(inputIDs)
	if m < 2 {
		return 0, ErrSinkTooSmall
	}
	if padTo > m {
		padTo = m
	}

	inputIDs[0] = t.vocab.ClsID
	pos := 1

	var scratch []int32
	pretok.Walk(input, t.cfg.lowercase, func(sp pretok.Span) bool {
		need := len(sp.Runes)
		if cap(scratch) < need {
			scratch = make([]int32, need)
		}
		scratch = scratch[:need]

		n := t.vocab.Match(sp.Runes, scratch)
		if n == 0 {
			return true
		}

		// Reserve the final slot for [SEP]; never emit a word partially.
		if pos+n > m-1 {
			return false
		}

		copy(inputIDs[pos:pos+n], scratch[:n])
		if t.cfg.onUnknown != nil && n == 1 && scratch[0] == t.vocab.UnkID {
			t.cfg.onUnknown(sp.String())
		}
		pos += n
		return true
	})

	inputIDs[pos] = t.vocab.SepID
	pos++
	n := pos

	l := n
	if padTo > n {
		l = padTo
	}
	for i := n; i < l; i++ {
		inputIDs[i] = t.vocab.PadID
	}

	if attentionMask != nil {
		for i := 0; i < len(attentionMask) && i < l; i++ {
			if i < n {
				attentionMask[i] = 1
			} else {
				attentionMask[i] = 0
			}
		}
	}
	if tokenTypeIDs != nil {
		for i := 0; i < len(tokenTypeIDs) && i < l; i++ {
			tokenTypeIDs[i] = 0
		}
	}

	return l, nil
}

// EncodeNew is the allocating convenience form of Encode: it sizes its own
// sinks from maxTokens and padTo and returns them. maxTokens bounds
// truncation exactly as the sink length does for Encode; the returned
// slices are sized to max(N, padTo) where N is the non-padded length.
// maxTokens <= 0 falls back to the Tokenizer's configured WithMaxTokens
// default, and padTo <= 0 falls back to its WithPadTo default.
func (t *Tokenizer) EncodeNew(input string, maxTokens, padTo int) (inputIDs, attentionMask, tokenTypeIDs []int32, err error) {
	if t == nil || t.vocab == nil {
		return nil, nil, nil, ErrVocabularyNotLoaded
	}
	if maxTokens <= 0 {
		maxTokens = t.cfg.maxTokens
	}
	if padTo <= 0 {
		padTo = t.cfg.padTo
	}
	if maxTokens < 2 {
		return nil, nil, nil, ErrSinkTooSmall
	}

	scratch := make([]int32, maxTokens)
	n, err := t.encode(input, scratch, nil, nil, 0)
	if err != nil {
		return nil, nil, nil, err
	}

	l := n
	if padTo > l {
		l = padTo
	}

	inputIDs = make([]int32, l)
	attentionMask = make([]int32, l)
	tokenTypeIDs = make([]int32, l)

	copy(inputIDs, scratch[:n])
	for i := n; i < l; i++ {
		inputIDs[i] = t.vocab.PadID
	}
	for i := 0; i < n; i++ {
		attentionMask[i] = 1
	}

	return inputIDs, attentionMask, tokenTypeIDs, nil
}
