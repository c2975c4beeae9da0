package bench

import (
	"fmt"
	"time"

	wordpiece "github.com/lukaschmidt/go-wordpiece"
	"github.com/lukaschmidt/go-wordpiece/internal/pretok"
)

// Config holds evaluation parameters.
type Config struct {
	MaxTokens int
	PadTo     int
}

// DefaultConfig returns a reasonable default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens: 512,
		PadTo:     0,
	}
}

// Metrics holds corpus-wide tokenization statistics.
type Metrics struct {
	TotalWords      int
	TotalSubwords   int
	UnknownCount    int
	UnknownRate     float64
	TruncatedDocs   int
	TokensPerSecond float64
}

// Evaluate loads the vocabulary at vocabPath (with opts applied) and walks
// corpus once, tokenizing each document and accumulating throughput and
// coverage statistics. It appends its own WithUnknownHook to count [UNK]
// occurrences, so any WithUnknownHook passed in opts is overridden.
func Evaluate(vocabPath string, corpus []Document, cfg Config, opts ...wordpiece.Option) (Metrics, error) {
	var m Metrics

	// counting is switched off while isTruncated re-encodes a document, so
	// each [UNK] is counted once.
	counting := true
	allOpts := append(append([]wordpiece.Option{}, opts...), wordpiece.WithUnknownHook(func(string) {
		if counting {
			m.UnknownCount++
		}
	}))

	tok, err := wordpiece.New(vocabPath, allOpts...)
	if err != nil {
		return Metrics{}, fmt.Errorf("bench: loading vocabulary: %w", err)
	}

	sink := make([]int32, cfg.MaxTokens)
	mask := make([]int32, cfg.MaxTokens)

	start := time.Now()
	var totalTokens int
	for _, doc := range corpus {
		m.TotalWords += len(pretok.Collect(doc.Text, true))

		n, err := tok.Encode(doc.Text, sink, mask, nil, cfg.PadTo)
		if err != nil {
			continue
		}
		totalTokens += n

		unpadded := 0
		for _, bit := range mask[:n] {
			unpadded += int(bit)
		}
		subwords := unpadded - 2 // exclude [CLS]/[SEP]
		if subwords < 0 {
			subwords = 0
		}
		m.TotalSubwords += subwords

		counting = false
		truncated := isTruncated(tok, doc.Text, cfg)
		counting = true
		if truncated {
			m.TruncatedDocs++
		}
	}
	elapsed := time.Since(start)

	if elapsed > 0 {
		m.TokensPerSecond = float64(totalTokens) / elapsed.Seconds()
	}
	if m.TotalSubwords > 0 {
		m.UnknownRate = float64(m.UnknownCount) / float64(m.TotalSubwords)
	}

	return m, nil
}

// isTruncated reports whether encoding text with an effectively unbounded
// sink would produce more non-padded tokens than cfg.MaxTokens allows —
// i.e. whether cfg.MaxTokens actually clipped this document.
func isTruncated(tok *wordpiece.Tokenizer, text string, cfg Config) bool {
	words := pretok.Collect(text, true)
	// Every subword covers at least one rune, so the total rune count plus
	// [CLS]/[SEP] bounds the untruncated length.
	generous := 2
	for _, w := range words {
		generous += len(w.Runes)
	}
	if generous < cfg.MaxTokens {
		return false
	}

	wideSink := make([]int32, generous)
	full, err := tok.Encode(text, wideSink, nil, nil, 0)
	if err != nil {
		return false
	}
	return full > cfg.MaxTokens
}
