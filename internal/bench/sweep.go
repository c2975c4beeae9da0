package bench

import (
	"fmt"
	"sort"

	wordpiece "github.com/lukaschmidt/go-wordpiece"
)

// SweepResult holds metrics for one candidate maximum-tokens value.
type SweepResult struct {
	MaxTokens int
	Metrics   Metrics
}

// Sweep evaluates corpus once per value in maxTokensValues and returns
// results sorted ascending by truncated-document count — the candidate
// that truncates the fewest documents sorts first.
func Sweep(vocabPath string, corpus []Document, maxTokensValues []int, opts ...wordpiece.Option) ([]SweepResult, error) {
	results := make([]SweepResult, 0, len(maxTokensValues))

	for _, maxTokens := range maxTokensValues {
		cfg := Config{MaxTokens: maxTokens}
		m, err := Evaluate(vocabPath, corpus, cfg, opts...)
		if err != nil {
			return nil, fmt.Errorf("bench: sweep maxTokens=%d: %w", maxTokens, err)
		}
		results = append(results, SweepResult{MaxTokens: maxTokens, Metrics: m})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Metrics.TruncatedDocs < results[j].Metrics.TruncatedDocs
	})

	return results, nil
}
