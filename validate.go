package tsdataset

import (
	"errors"
	"fmt"
)

var (
	ErrKnownCovInsufficient = errors.New("known covariate series too short to build samples")
	ErrKnownCovTooEarly     = errors.New("known covariate series ends before required timestamp")
	ErrObservedCovTooEarly  = errors.New("observed covariate series ends before required timestamp")
)

// validateDataset confirms each series is long enough to build every sample
// in the resolved window. Two regimes apply: a window ending at or before
// the last target row needs full past+skip+future coverage for every
// sample, while a window extending past the last target row builds
// inference-only samples and needs only past coverage.
func validateDataset(d *Dataset, opt ChunkOptions, window TimeWindow) error {
	target := d.Target
	maxTargetIdx := target.Len() - 1
	maxTargetTimestamp := target.LastTimestamp()

	minTargetLen := opt.minSampleLen()
	if window.Upper > maxTargetIdx {
		// Inference-only samples skip the future chunk, so the target only
		// needs to hold the past chunk.
		minTargetLen = max(1, opt.InChunkLen)
	}
	if target.Len() < minTargetLen {
		return fmt.Errorf(
			"window (%d, %d) needs target length of at least %d, got %d, %w",
			window.Lower, window.Upper, minTargetLen, target.Len(), ErrTargetTooShort,
		)
	}

	if d.KnownCov != nil {
		known := d.KnownCov
		if window.Upper > maxTargetIdx {
			if known.LastTimestamp().Before(maxTargetTimestamp) {
				return fmt.Errorf(
					"known covariate last timestamp %s is before target last timestamp %s, %w",
					known.LastTimestamp(), maxTargetTimestamp, ErrKnownCovTooEarly,
				)
			}
			idx, err := known.PositionOf(maxTargetTimestamp)
			if err != nil {
				return fmt.Errorf("known covariate index: %w", err)
			}
			// The window extends exceeded steps past the end of the target,
			// so the known covariates must extend at least that far past the
			// target's last timestamp.
			exceeded := window.Upper - maxTargetIdx
			if known.Len()-idx <= exceeded {
				return fmt.Errorf(
					"known covariate needs more than %d rows past row %d, got %d, %w",
					exceeded, idx, known.Len()-idx, ErrKnownCovInsufficient,
				)
			}
		} else {
			upperTimestamp, err := target.TimestampAt(window.Upper)
			if err != nil {
				return fmt.Errorf("target index: %w", err)
			}
			if known.LastTimestamp().Before(upperTimestamp) {
				return fmt.Errorf(
					"known covariate last timestamp %s is before window upper bound timestamp %s, %w",
					known.LastTimestamp(), upperTimestamp, ErrKnownCovTooEarly,
				)
			}
		}
	}

	if d.ObservedCov != nil {
		observed := d.ObservedCov
		if window.Upper > maxTargetIdx {
			if observed.LastTimestamp().Before(maxTargetTimestamp) {
				return fmt.Errorf(
					"observed covariate last timestamp %s is before target last timestamp %s, %w",
					observed.LastTimestamp(), maxTargetTimestamp, ErrObservedCovTooEarly,
				)
			}
		} else {
			// Observed covariates never provide future features, so coverage
			// is only needed up to the last sample's past target tail.
			lastPastTail := window.Upper - opt.SkipChunkLen - opt.OutChunkLen
			lastPastTailTimestamp, err := target.TimestampAt(lastPastTail)
			if err != nil {
				return fmt.Errorf("target index: %w", err)
			}
			if observed.LastTimestamp().Before(lastPastTailTimestamp) {
				return fmt.Errorf(
					"observed covariate last timestamp %s is before last sample past tail timestamp %s, %w",
					observed.LastTimestamp(), lastPastTailTimestamp, ErrObservedCovTooEarly,
				)
			}
		}
	}

	return nil
}
