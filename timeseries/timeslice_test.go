package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartTime(t *testing.T) {
	testData := map[string]struct {
		tSlice   TimeSlice
		expected time.Time
	}{
		"nil input for start time": {
			tSlice:   nil,
			expected: time.Time{},
		},
		"valid start time": {
			tSlice:   testIndex(3),
			expected: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := td.tSlice.StartTime()
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestEndTime(t *testing.T) {
	testData := map[string]struct {
		tSlice   TimeSlice
		expected time.Time
	}{
		"nil input for end time": {
			tSlice:   nil,
			expected: time.Time{},
		},
		"valid end time": {
			tSlice:   testIndex(3),
			expected: time.Date(2023, 1, 1, 2, 0, 0, 0, time.UTC),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := td.tSlice.EndTime()
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestEstimateFreq(t *testing.T) {
	testData := map[string]struct {
		tSlice   TimeSlice
		expected time.Duration
		err      error
	}{
		"too short": {
			tSlice: testIndex(1),
			err:    ErrCannotInferFreq,
		},
		"hourly": {
			tSlice:   testIndex(5),
			expected: time.Hour,
		},
		"mostly daily with one gap": {
			tSlice: TimeSlice{
				time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
				time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC),
				time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC),
			},
			expected: 24 * time.Hour,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := td.tSlice.EstimateFreq()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestSequence(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	res := Sequence(start, 3, time.Minute)
	require.Len(t, res, 3)
	assert.Equal(t, start, res[0])
	assert.Equal(t, start.Add(2*time.Minute), res[2])
}

func TestGenerateT(t *testing.T) {
	nowFunc := func() time.Time {
		return time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	res := GenerateT(10, time.Minute, nowFunc)
	require.Len(t, res, 10)

	freq, err := res.EstimateFreq()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, freq)
}
