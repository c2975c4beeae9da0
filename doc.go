// Package wordpiece implements BERT-style WordPiece tokenization: Unicode
// cleaning and normalization, whitespace/punctuation/CJK pre-tokenization,
// greedy longest-prefix/longest-suffix subword matching against a loaded
// vocabulary, and [CLS]/[SEP]/[PAD] encoder framing.
//
// # Quick Start
//
//	tok, err := wordpiece.New("vocab.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	inputIDs, attentionMask, tokenTypeIDs, err := tok.EncodeNew("Hello world.", 128, 128)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(inputIDs)
//
// Callers that want to avoid per-call allocation can instead drive sinks
// directly:
//
//	inputIDs := make([]int32, 128)
//	attentionMask := make([]int32, 128)
//	n, err := tok.Encode("Hello world.", inputIDs, attentionMask, nil, 128)
//
// # Thread Safety
//
// Tokenizer is safe for concurrent use: Encode and EncodeNew read the
// loaded vocabulary and write only into the caller's own sinks, with no
// shared mutable state. wordpiece/batch builds on this to drive many
// Encode calls concurrently.
//
// # Vocabulary Files
//
// A vocabulary is a plain line-oriented UTF-8 text file, one token per
// line, where the zero-based line number is the token id — the format
// produced by HuggingFace's `vocab.txt` for BERT-family models. Lines
// prefixed with "##" are continuation (suffix) tokens; everything else is
// a whole-word (prefix) token. [CLS], [SEP], [UNK], and [PAD] must all be
// present somewhere in the file.
package wordpiece
