// Package tsdataset converts a multi-series time-indexed dataset into a
// random-access collection of fixed-shape samples for supervised sequence
// learning. Each sample carries a past target chunk (X), a future target
// chunk (Y), and chunks sliced from optional known and observed covariate
// series, with a configurable gap of skipped steps between past and future.
package tsdataset

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidChunkLength = errors.New("invalid chunk length")
	ErrInvalidStride      = errors.New("invalid sampling stride")
)

// ChunkOptions configures the shape of every built sample.
//
// InChunkLen is the number of past target steps per sample (X). A zero value
// means an upstream lag transform already folded the past target into the
// observed covariates, so samples carry an empty past target chunk.
// SkipChunkLen is the number of steps between past and future target that
// are neither feature nor label. OutChunkLen is the number of future target
// steps per sample (Y). SamplingStride is the number of steps between the
// tails of consecutive samples.
type ChunkOptions struct {
	InChunkLen     int `json:"in_chunk_len"`
	SkipChunkLen   int `json:"skip_chunk_len"`
	OutChunkLen    int `json:"out_chunk_len"`
	SamplingStride int `json:"sampling_stride"`
}

func (o ChunkOptions) Validate() error {
	if o.InChunkLen < 0 {
		return fmt.Errorf("in chunk length must be non-negative, got %d, %w", o.InChunkLen, ErrInvalidChunkLength)
	}
	if o.SkipChunkLen < 0 {
		return fmt.Errorf("skip chunk length must be non-negative, got %d, %w", o.SkipChunkLen, ErrInvalidChunkLength)
	}
	if o.OutChunkLen <= 0 {
		return fmt.Errorf("out chunk length must be positive, got %d, %w", o.OutChunkLen, ErrInvalidChunkLength)
	}
	if o.SamplingStride <= 0 {
		return fmt.Errorf("sampling stride must be positive, got %d, %w", o.SamplingStride, ErrInvalidStride)
	}
	return nil
}

// knownCovChunkLen is the row count of every known covariate chunk, stitched
// from the past-aligned and future-aligned rows around the skipped segment.
func (o ChunkOptions) knownCovChunkLen() int {
	return o.InChunkLen + o.OutChunkLen
}

// observedCovChunkLen is the row count of every observed covariate chunk. In
// lag mode the observed covariates carry the lagged target, so at least one
// row is always taken.
func (o ChunkOptions) observedCovChunkLen() int {
	if o.InChunkLen == 0 {
		return 1
	}
	return o.InChunkLen
}

// minSampleLen is the minimum target length able to hold one full
// past+skip+future sample.
func (o ChunkOptions) minSampleLen() int {
	return max(1, o.InChunkLen) + o.SkipChunkLen + o.OutChunkLen
}
