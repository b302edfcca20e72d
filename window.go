package tsdataset

import (
	"errors"
	"fmt"
)

var (
	ErrWindowLowerBound = errors.New("time window lower bound out of range")
	ErrWindowUpperBound = errors.New("time window upper bound out of range")
	ErrTargetTooShort   = errors.New("target series too short to build a sample")
)

// TimeWindow is an inclusive pair of row indexes over the target series.
// Each bound refers to the tail row index of one sample's future target
// chunk, not its head. An upper bound past the last target row yields
// inference-only samples whose future target chunk is empty.
type TimeWindow struct {
	Lower int
	Upper int
}

// minAllowedWindow is the smallest valid window bound. Lag mode still
// consumes at least one past step, hence the max with 1.
func minAllowedWindow(opt ChunkOptions) int {
	return max(1, opt.InChunkLen) + opt.SkipChunkLen + opt.OutChunkLen - 1
}

// maxAllowedWindow is the largest valid window bound. Bounds past the last
// target row are valid up to one full skip+out horizon, covering a single
// prediction sample whose past chunk ends at the last target row.
func maxAllowedWindow(opt ChunkOptions, targetLen int) int {
	return targetLen - 1 + opt.SkipChunkLen + opt.OutChunkLen
}

// resolveWindow checks a caller-supplied window against the allowed bounds,
// or derives the default window covering every full training sample when
// none is supplied.
func resolveWindow(opt ChunkOptions, targetLen int, window *TimeWindow) (TimeWindow, error) {
	if window == nil {
		if targetLen < opt.minSampleLen() {
			return TimeWindow{}, fmt.Errorf(
				"default window needs target length of at least %d, got %d, %w",
				opt.minSampleLen(), targetLen, ErrTargetTooShort,
			)
		}
		return TimeWindow{
			Lower: minAllowedWindow(opt),
			Upper: targetLen - 1,
		}, nil
	}

	if window.Lower > window.Upper {
		return TimeWindow{}, fmt.Errorf(
			"window lower bound %d exceeds upper bound %d, %w",
			window.Lower, window.Upper, ErrWindowLowerBound,
		)
	}
	if minAllowed := minAllowedWindow(opt); window.Lower < minAllowed {
		return TimeWindow{}, fmt.Errorf(
			"window lower bound must be at least %d, got %d, %w",
			minAllowed, window.Lower, ErrWindowLowerBound,
		)
	}
	if maxAllowed := maxAllowedWindow(opt, targetLen); window.Upper > maxAllowed {
		return TimeWindow{}, fmt.Errorf(
			"window upper bound must be at most %d, got %d, %w",
			maxAllowed, window.Upper, ErrWindowUpperBound,
		)
	}
	return *window, nil
}
