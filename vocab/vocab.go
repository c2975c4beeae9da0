// Package vocab loads the BERT WordPiece vocabulary file — a line-oriented
// UTF-8 text file where the zero-based line number is the token id — into
// an immutable Vocabulary value usable by any number of concurrent
// tokenize calls.
package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lukaschmidt/go-wordpiece/internal/normalize"
	"github.com/lukaschmidt/go-wordpiece/internal/trie"
)

// ErrMalformed indicates the vocabulary file is missing one of the four
// required special tokens.
var ErrMalformed = errors.New("vocab: malformed vocabulary file")

const (
	clsLiteral = "[CLS]"
	sepLiteral = "[SEP]"
	unkLiteral = "[UNK]"
	padLiteral = "[PAD]"

	continuationMarker = "##"
)

// Vocabulary is an immutable, load-once snapshot of a WordPiece vocabulary
// file: two lookup tries (whole-word/prefix and continuation/suffix) plus
// the four reserved special-token ids. Safe for unsynchronized concurrent
// reads once Load returns.
type Vocabulary struct {
	prefix *trie.Trie
	suffix *trie.Trie

	UnkID int32
	ClsID int32
	SepID int32
	PadID int32

	Lowercase bool
	Form      normalize.Form
}

// Load reads the vocabulary file at path and builds a Vocabulary. lowercase
// and form are captured verbatim as the configuration the rest of the
// pipeline (pre-tokenizer, matcher fallback chain) must honor.
func Load(path string, lowercase bool, form normalize.Form) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: open %s: %w", path, err)
	}
	defer f.Close()

	v := &Vocabulary{
		prefix:    trie.New(),
		suffix:    trie.New(),
		Lowercase: lowercase,
		Form:      form,
	}

	ids := map[string]int32{}

	scanner := bufio.NewScanner(f)
	// Vocabulary lines are individual tokens, not prose; default the
	// scanner buffer generously so a single pathological line can't abort
	// the whole load.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lineNo int32
	for scanner.Scan() {
		tok := scanner.Text()
		if tok == "" {
			lineNo++
			continue
		}

		if suffix, ok := strings.CutPrefix(tok, continuationMarker); ok {
			v.suffix.Insert(suffix, lineNo)
		} else {
			v.prefix.Insert(tok, lineNo)
		}
		ids[tok] = lineNo

		lineNo++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("vocab: scan %s: %w", path, err)
	}

	var missing []string
	for _, special := range []struct {
		literal string
		dst     *int32
	}{
		{unkLiteral, &v.UnkID},
		{clsLiteral, &v.ClsID},
		{sepLiteral, &v.SepID},
		{padLiteral, &v.PadID},
	} {
		id, ok := ids[special.literal]
		if !ok {
			missing = append(missing, special.literal)
			continue
		}
		*special.dst = id
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformed, strings.Join(missing, ", "))
	}

	return v, nil
}

// PrefixTrie returns the whole-word/prefix lookup trie.
func (v *Vocabulary) PrefixTrie() *trie.Trie { return v.prefix }

// SuffixTrie returns the continuation/suffix lookup trie (keys are
// continuation text with the "##" marker already stripped).
func (v *Vocabulary) SuffixTrie() *trie.Trie { return v.suffix }

// ID reports the exact id for a literal vocabulary entry, e.g. "hello" or
// "##ing". Unlike Match, it performs no WordPiece decomposition: token
// must already be a complete entry, not an arbitrary word to tokenize.
func (v *Vocabulary) ID(token string) (int32, bool) {
	if suffix, ok := strings.CutPrefix(token, continuationMarker); ok {
		return v.suffix.Lookup(suffix)
	}
	return v.prefix.Lookup(token)
}
