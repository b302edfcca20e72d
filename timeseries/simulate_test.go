package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConst(t *testing.T) {
	res := GenerateConst(4, 2.5)
	require.Len(t, res, 4)
	for _, val := range res {
		assert.Equal(t, 2.5, val)
	}
}

func TestValuesAdd(t *testing.T) {
	res := GenerateConst(3, 1.0).Add(GenerateConst(3, 2.0))
	assert.Equal(t, Values{3.0, 3.0, 3.0}, res)
}

func TestGenerateWave(t *testing.T) {
	idx := testIndex(24)
	res := GenerateWave(idx, 3.0, 86400, 1.0, 0)
	require.Len(t, res, 24)
	for _, val := range res {
		assert.LessOrEqual(t, val, 3.0)
		assert.GreaterOrEqual(t, val, -3.0)
	}
}

func TestGenerateRamp(t *testing.T) {
	idx := testIndex(4)
	res := GenerateRamp(idx, idx[2], 1.0, 0)
	assert.Equal(t, Values{0, 0, 1.0, 1.0}, res)
}

func TestValuesSetConst(t *testing.T) {
	idx := testIndex(4)
	res := GenerateConst(4, 0).SetConst(idx, 5.0, idx[1], idx[3])
	assert.Equal(t, Values{0, 5.0, 5.0, 0}, res)
}

func TestGenerateNoise(t *testing.T) {
	idx := Sequence(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 100, time.Minute)
	res := GenerateNoise(idx, 1.0, 0, 86400, 1.0, 0)
	require.Len(t, res, 100)
}
