package tsdataset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrInternalInvariant marks a slice or lookup failure during sample
// building. Validation proves every slice in-bounds before building starts,
// so this error is unreachable from valid inputs and indicates a defect in
// the validation logic itself.
var ErrInternalInvariant = errors.New("sample build out of bounds after validation")

// buildSamples materializes one sample per tail position stepping from the
// window lower bound to the upper bound inclusive by the sampling stride.
// Each tail position is the row index of the last future target step of
// that sample.
func buildSamples(d *Dataset, opt ChunkOptions, window TimeWindow) ([]Sample, error) {
	maxTargetIdx := d.Target.Len() - 1

	var n int
	if window.Upper >= window.Lower {
		n = (window.Upper-window.Lower)/opt.SamplingStride + 1
	}
	samples := make([]Sample, 0, n)

	for tail := window.Lower; tail <= window.Upper; tail += opt.SamplingStride {
		sample, err := buildSample(d, opt, tail, maxTargetIdx)
		if err != nil {
			return nil, fmt.Errorf("building sample with tail %d: %v, %w", tail, err, ErrInternalInvariant)
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func buildSample(d *Dataset, opt ChunkOptions, tail, maxTargetIdx int) (Sample, error) {
	target := d.Target
	sample := Sample{
		PastTarget:   &mat.Dense{},
		FutureTarget: &mat.Dense{},
		KnownCov:     &mat.Dense{},
		ObservedCov:  &mat.Dense{},
	}

	// A tail past the last target row marks an inference-only sample whose
	// future target chunk stays empty.
	if tail <= maxTargetIdx {
		futureTarget, err := target.Rows(tail-opt.OutChunkLen+1, tail+1)
		if err != nil {
			return Sample{}, fmt.Errorf("future target: %w", err)
		}
		sample.FutureTarget = futureTarget
	}

	pastTail := tail - opt.OutChunkLen - opt.SkipChunkLen
	if opt.InChunkLen > 0 {
		pastTarget, err := target.Rows(pastTail-opt.InChunkLen+1, pastTail+1)
		if err != nil {
			return Sample{}, fmt.Errorf("past target: %w", err)
		}
		sample.PastTarget = pastTarget
	}

	if d.KnownCov != nil {
		knownCov, err := buildKnownCovChunk(d, opt, tail, maxTargetIdx)
		if err != nil {
			return Sample{}, fmt.Errorf("known covariate: %w", err)
		}
		sample.KnownCov = knownCov
	}

	if d.ObservedCov != nil {
		pastTailTimestamp, err := target.TimestampAt(pastTail)
		if err != nil {
			return Sample{}, fmt.Errorf("observed covariate: %w", err)
		}
		obsTail, err := d.ObservedCov.PositionOf(pastTailTimestamp)
		if err != nil {
			return Sample{}, fmt.Errorf("observed covariate: %w", err)
		}
		observedCov, err := d.ObservedCov.Rows(obsTail-opt.observedCovChunkLen()+1, obsTail+1)
		if err != nil {
			return Sample{}, fmt.Errorf("observed covariate: %w", err)
		}
		sample.ObservedCov = observedCov
	}

	return sample, nil
}

// buildKnownCovChunk stitches the known covariate chunk from two contiguous
// slices of the covariate's own row space: the past-aligned rows before the
// skipped segment and the future-aligned rows after it. Both remain usable
// as features while the skipped rows are excluded.
func buildKnownCovChunk(d *Dataset, opt ChunkOptions, tail, maxTargetIdx int) (*mat.Dense, error) {
	known := d.KnownCov
	target := d.Target

	var rightTail int
	if tail > maxTargetIdx {
		idx, err := known.PositionOf(target.LastTimestamp())
		if err != nil {
			return nil, err
		}
		rightTail = idx + opt.SkipChunkLen + opt.OutChunkLen
	} else {
		tailTimestamp, err := target.TimestampAt(tail)
		if err != nil {
			return nil, err
		}
		rightTail, err = known.PositionOf(tailTimestamp)
		if err != nil {
			return nil, err
		}
	}

	right, err := known.Rows(rightTail-opt.OutChunkLen+1, rightTail+1)
	if err != nil {
		return nil, err
	}
	if opt.InChunkLen == 0 {
		return right, nil
	}

	leftTail := rightTail - opt.OutChunkLen - opt.SkipChunkLen
	left, err := known.Rows(leftTail-opt.InChunkLen+1, leftTail+1)
	if err != nil {
		return nil, err
	}

	var chunk mat.Dense
	chunk.Stack(left, right)
	return &chunk, nil
}
