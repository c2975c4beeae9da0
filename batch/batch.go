// Package batch drives many Tokenizer.Encode calls concurrently over a
// slice of inputs. Tokenization needs no per-call resource handle — unlike
// an inference session, there is nothing to pool — so concurrency is
// bounded directly with an errgroup limit rather than a channel-backed
// resource pool.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lukaschmidt/go-wordpiece"
)

// EncodeBatch encodes each of inputs into the corresponding row of
// inputIDs, attentionMask, and tokenTypeIDs, running up to GOMAXPROCS
// encodes concurrently. attentionMask and tokenTypeIDs may be nil if the
// caller does not need them. All four slice arguments (inputs and the
// three row slices, when non-nil) must have equal length.
//
// Each goroutine writes only into its own row, so no synchronization is
// needed beyond the errgroup's own completion barrier. If any row fails to
// encode, EncodeBatch returns the first error to occur (not necessarily the
// lowest-indexed one) after all in-flight encodes finish; rows whose encode
// had not yet started when that error occurred are left unwritten.
func EncodeBatch(ctx context.Context, tok *wordpiece.Tokenizer, inputs []string, inputIDs, attentionMask, tokenTypeIDs [][]int32, padTo int) error {
	if len(inputIDs) != len(inputs) {
		return fmt.Errorf("batch: inputIDs has %d rows, want %d", len(inputIDs), len(inputs))
	}
	if attentionMask != nil && len(attentionMask) != len(inputs) {
		return fmt.Errorf("batch: attentionMask has %d rows, want %d", len(attentionMask), len(inputs))
	}
	if tokenTypeIDs != nil && len(tokenTypeIDs) != len(inputs) {
		return fmt.Errorf("batch: tokenTypeIDs has %d rows, want %d", len(tokenTypeIDs), len(inputs))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var mask, types []int32
			if attentionMask != nil {
				mask = attentionMask[i]
			}
			if tokenTypeIDs != nil {
				types = tokenTypeIDs[i]
			}

			if _, err := tok.Encode(input, inputIDs[i], mask, types, padTo); err != nil {
				return fmt.Errorf("batch: row %d: %w", i, err)
			}
			return nil
		})
	}

	return g.Wait()
}
