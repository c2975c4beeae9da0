package wordpiece

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrVocabularyNotLoaded indicates Encode was called on a Tokenizer
	// whose vocabulary failed to load or was never set.
	ErrVocabularyNotLoaded = errors.New("wordpiece: vocabulary not loaded")

	// ErrVocabularyMalformed indicates the vocabulary file does not exist
	// or is missing one of the four required special tokens. Load-time
	// only; the
	// Vocabulary object is never constructed when this occurs.
	ErrVocabularyMalformed = errors.New("wordpiece: vocabulary malformed")

	// ErrSinkTooSmall indicates an encode sink has fewer than 2 slots,
	// not enough to hold [CLS] and [SEP].
	ErrSinkTooSmall = errors.New("wordpiece: sink too small")
)
