package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	wordpiece "github.com/lukaschmidt/go-wordpiece"
)

func main() {
	var (
		vocabPath = flag.String("vocab", "", "Path to vocabulary file (required)")
		lowercase = flag.Bool("lowercase", true, "Lowercase input before matching")
		maxTokens = flag.Int("max-tokens", 512, "Maximum output length, including [CLS]/[SEP]")
		padTo     = flag.Int("pad-to", 0, "Pad output to this length (0 = no padding)")
		lookup    = flag.String("lookup", "", "Report the exact id of a literal vocabulary entry (e.g. \"##ing\") and exit, skipping encoding")
	)
	flag.Parse()

	if *vocabPath == "" {
		fmt.Fprintln(os.Stderr, "error: -vocab required")
		flag.Usage()
		os.Exit(1)
	}

	tok, err := wordpiece.New(*vocabPath, wordpiece.WithLowercase(*lowercase), wordpiece.WithMaxTokens(*maxTokens))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading vocabulary: %v\n", err)
		os.Exit(1)
	}

	if *lookup != "" {
		id, ok := tok.TokenID(*lookup)
		if !ok {
			fmt.Printf("%q: not in vocabulary\n", *lookup)
			os.Exit(1)
		}
		fmt.Printf("%q: %d\n", *lookup, id)
		return
	}

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		fmt.Fprintln(os.Stderr, "error: no text provided")
		os.Exit(1)
	}

	inputIDs, attentionMask, tokenTypeIDs, err := tok.EncodeNew(text, *maxTokens, *padTo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error encoding: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Text: %q\n", text)
	fmt.Printf("input_ids:      %v\n", inputIDs)
	fmt.Printf("attention_mask: %v\n", attentionMask)
	fmt.Printf("token_type_ids: %v\n", tokenTypeIDs)
}
