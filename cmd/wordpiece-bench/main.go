package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lukaschmidt/go-wordpiece/internal/bench"
)

func main() {
	var (
		vocabPath = flag.String("vocab", "", "Path to vocabulary file (required)")
		corpusDir = flag.String("corpus", "testdata/corpus", "Directory containing .txt corpus files")
		maxTokens = flag.Int("max-tokens", 512, "Maximum output length, including [CLS]/[SEP]")
		padTo     = flag.Int("pad-to", 0, "Pad output to this length (0 = no padding)")
		sweep     = flag.Bool("sweep", false, "Sweep candidate max-tokens values instead of evaluating one")
		sweepSpec = flag.String("sweep-values", "32,64,128,256,512", "Comma-separated max-tokens candidates for -sweep")
	)
	flag.Parse()

	if *vocabPath == "" {
		fmt.Fprintln(os.Stderr, "error: -vocab required")
		flag.Usage()
		os.Exit(1)
	}

	corpus, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d documents from %s\n\n", len(corpus), *corpusDir)

	if *sweep {
		runSweep(*vocabPath, corpus, *sweepSpec)
		return
	}
	runSingle(*vocabPath, corpus, *maxTokens, *padTo)
}

func runSingle(vocabPath string, corpus []bench.Document, maxTokens, padTo int) {
	m, err := bench.Evaluate(vocabPath, corpus, bench.Config{MaxTokens: maxTokens, PadTo: padTo})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error evaluating: %v\n", err)
		os.Exit(1)
	}
	printMetrics(maxTokens, m)
}

func runSweep(vocabPath string, corpus []bench.Document, sweepSpec string) {
	values, err := parseIntList(sweepSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing -sweep-values: %v\n", err)
		os.Exit(1)
	}

	results, err := bench.Sweep(vocabPath, corpus, values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during sweep: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Max-Tokens Sweep Results")
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-10s %-10s %-10s %-10s\n", "MaxTok", "UnkRate", "Truncated", "Tok/sec")
	for _, r := range results {
		fmt.Printf("%-10d %-10.4f %-10d %-10.1f\n", r.MaxTokens, r.Metrics.UnknownRate, r.Metrics.TruncatedDocs, r.Metrics.TokensPerSecond)
	}

	fmt.Println(strings.Repeat("-", 60))
	if len(results) > 0 {
		best := results[0]
		fmt.Printf("Fewest truncations: max-tokens=%d (%d truncated)\n", best.MaxTokens, best.Metrics.TruncatedDocs)
	}
}

func printMetrics(maxTokens int, m bench.Metrics) {
	fmt.Printf("max-tokens: %d\n", maxTokens)
	fmt.Printf("Words: %d  Subwords: %d  Unknown: %d (%.2f%%)\n",
		m.TotalWords, m.TotalSubwords, m.UnknownCount, m.UnknownRate*100)
	fmt.Printf("Truncated documents: %d\n", m.TruncatedDocs)
	fmt.Printf("Throughput: %.1f tokens/sec\n", m.TokensPerSecond)
}

func parseIntList(spec string) ([]int, error) {
	parts := strings.Split(spec, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}
