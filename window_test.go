package tsdataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedWindowBounds(t *testing.T) {
	testData := map[string]struct {
		opt       ChunkOptions
		targetLen int
		expMin    int
		expMax    int
	}{
		"docstring example": {
			opt:       ChunkOptions{InChunkLen: 4, SkipChunkLen: 3, OutChunkLen: 2, SamplingStride: 1},
			targetLen: 11,
			expMin:    8,
			expMax:    15,
		},
		"lag mode": {
			opt:       ChunkOptions{InChunkLen: 0, SkipChunkLen: 1, OutChunkLen: 2, SamplingStride: 1},
			targetLen: 8,
			expMin:    3,
			expMax:    10,
		},
		"no skip": {
			opt:       ChunkOptions{InChunkLen: 1, SkipChunkLen: 0, OutChunkLen: 1, SamplingStride: 1},
			targetLen: 5,
			expMin:    1,
			expMax:    5,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expMin, minAllowedWindow(td.opt))
			assert.Equal(t, td.expMax, maxAllowedWindow(td.opt, td.targetLen))
		})
	}
}

func TestResolveWindow(t *testing.T) {
	opt := ChunkOptions{InChunkLen: 4, SkipChunkLen: 3, OutChunkLen: 2, SamplingStride: 1}

	testData := map[string]struct {
		opt       ChunkOptions
		targetLen int
		window    *TimeWindow
		expected  TimeWindow
		err       error
	}{
		"default window": {
			opt:       opt,
			targetLen: 11,
			expected:  TimeWindow{Lower: 8, Upper: 10},
		},
		"default window target too short": {
			opt:       opt,
			targetLen: 8,
			err:       ErrTargetTooShort,
		},
		"explicit window": {
			opt:       opt,
			targetLen: 11,
			window:    &TimeWindow{Lower: 9, Upper: 15},
			expected:  TimeWindow{Lower: 9, Upper: 15},
		},
		"lower below min": {
			opt:       opt,
			targetLen: 11,
			window:    &TimeWindow{Lower: 7, Upper: 10},
			err:       ErrWindowLowerBound,
		},
		"upper above max": {
			opt:       opt,
			targetLen: 11,
			window:    &TimeWindow{Lower: 8, Upper: 16},
			err:       ErrWindowUpperBound,
		},
		"inverted window": {
			opt:       opt,
			targetLen: 11,
			window:    &TimeWindow{Lower: 10, Upper: 9},
			err:       ErrWindowLowerBound,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := resolveWindow(td.opt, td.targetLen, td.window)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, res)
		})
	}
}
