// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bulk provides order preserving conversion of large numbers of
// dates, in parallel if requested, and streaming conversion in fixed size
// batches to bound memory usage.
package bulk

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"runtime"
	"time"

	"cloudeng.io/bsdate"
	"cloudeng.io/bsdate/smartparse"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

const (
	// ParallelThreshold is the number of elements above which a parallel
	// conversion is used when requested.
	ParallelThreshold = 500
	// DefaultBatchSize is the batch size used by BatchProcess when none
	// is specified.
	DefaultBatchSize = 1000
)

// The context is checked for cancelation every cancelCheck elements.
const cancelCheck = 256

// Map applies fn to every element of in and returns the results in the
// same order. If parallel is true and in has more than ParallelThreshold
// elements, in is split into contiguous chunks that are processed
// concurrently, one per available CPU. The first error encountered aborts
// the operation, errors from concurrent chunks are collected as
// an errors.M.
func Map[In, Out any](ctx context.Context, in []In, parallel bool, fn func(In) (Out, error)) ([]Out, error) {
	out := make([]Out, len(in))
	logger := ctxlog.Logger(ctx)
	if !parallel || len(in) <= ParallelThreshold {
		logger.Debug("bulk: sequential", "count", len(in))
		if err := mapRange(ctx, in, out, 0, len(in), fn); err != nil {
			return nil, err
		}
		return out, nil
	}
	workers := min(runtime.GOMAXPROCS(0), len(in))
	chunk := (len(in) + workers - 1) / workers
	logger.Debug("bulk: parallel", "count", len(in), "workers", workers, "chunk", chunk)
	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(in); start += chunk {
		end := min(start+chunk, len(in))
		g.Go(func() error {
			err := mapRange(gctx, in, out, start, end, fn)
			if errors.Is(err, context.Canceled) && ctx.Err() == nil {
				// Another chunk failed first.
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func mapRange[In, Out any](ctx context.Context, in []In, out []Out, start, end int, fn func(In) (Out, error)) error {
	for i := start; i < end; i++ {
		if (i-start)%cancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		r, err := fn(in[i])
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = r
	}
	return nil
}

// ToDates converts Gregorian dates to Bikram Sambat dates.
func ToDates(ctx context.Context, times []time.Time, parallel bool) ([]bsdate.Date, error) {
	return Map(ctx, times, parallel, bsdate.FromTime)
}

// ToGregorian converts Bikram Sambat dates to Gregorian dates.
func ToGregorian(ctx context.Context, dates []bsdate.Date, parallel bool) ([]time.Time, error) {
	return Map(ctx, dates, parallel, bsdate.Date.ToGregorian)
}

// ParseAll parses all of inputs using smartparse.Parse.
func ParseAll(ctx context.Context, inputs []string, parallel bool) ([]bsdate.Date, error) {
	return Map(ctx, inputs, parallel, func(s string) (bsdate.Date, error) {
		return smartparse.Parse(ctx, s)
	})
}

// BatchProcess returns an iterator that reads seq in batches of batchSize
// (DefaultBatchSize if batchSize is zero or negative) and yields the
// converted batches. Iteration stops after the first error. The
// slice yielded for each batch is newly allocated.
func BatchProcess(ctx context.Context, seq iter.Seq[time.Time], batchSize int) iter.Seq2[[]bsdate.Date, error] {
	return batches(ctx, seq, batchSize, bsdate.FromTime)
}

// BatchProcessToGregorian is like BatchProcess but converts Bikram Sambat
// dates to Gregorian dates.
func BatchProcessToGregorian(ctx context.Context, seq iter.Seq[bsdate.Date], batchSize int) iter.Seq2[[]time.Time, error] {
	return batches(ctx, seq, batchSize, bsdate.Date.ToGregorian)
}

func batches[In, Out any](ctx context.Context, seq iter.Seq[In], batchSize int, fn func(In) (Out, error)) iter.Seq2[[]Out, error] {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return func(yield func([]Out, error) bool) {
		logger := ctxlog.Logger(ctx)
		batch := make([]In, 0, batchSize)
		index := 0
		flush := func() bool {
			logger.Debug("bulk: batch", "batch", index, "size", len(batch))
			out, err := Map(ctx, batch, true, fn)
			if err != nil {
				yield(nil, fmt.Errorf("batch %d: %w", index, err))
				return false
			}
			index++
			batch = batch[:0]
			return yield(out, nil)
		}
		for v := range seq {
			batch = append(batch, v)
			if len(batch) == batchSize && !flush() {
				return
			}
		}
		if len(batch) > 0 {
			flush()
		}
	}
}
