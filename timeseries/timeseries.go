// Package timeseries provides the time-indexed series container consumed by
// the sample windowing engine. A Series pairs a strictly increasing time
// index with a row-aligned value matrix and supports timestamp to row
// position lookups so that series of independent lengths can be reconciled
// in a shared timestamp space.
package timeseries

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoData            = errors.New("no data in series")
	ErrNonMonotonic      = errors.New("time index is not monotonically increasing")
	ErrLenMismatch       = errors.New("time index has a different length than values")
	ErrColMismatch       = errors.New("rows have differing column counts")
	ErrTimestampNotFound = errors.New("timestamp not found in time index")
	ErrCannotInferFreq   = errors.New("cannot infer frequency of time index")
	ErrRowOutOfBounds    = errors.New("row is out of bounds")
)

// Series represents a time series storing a time index along with a matrix
// of observations. Row i of the matrix holds the observation recorded at the
// i-th timestamp. Columns are feature dimensions.
type Series struct {
	t    TimeSlice
	vals *mat.Dense
	pos  map[int64]int // unix nanoseconds to row position
}

// New returns a Series given a time index and one row of values per
// timestamp. The time index must be strictly increasing and every row must
// have the same number of columns.
func New(t []time.Time, rows [][]float64) (*Series, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	if len(t) != len(rows) {
		return nil, fmt.Errorf(
			"time index has length of %d, but values has a length of %d, %w",
			len(t), len(rows), ErrLenMismatch,
		)
	}

	n := len(rows[0])
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
	}

	data := make([]float64, 0, len(rows)*n)
	for _, row := range rows {
		data = append(data, row...)
	}
	return newSeries(t, mat.NewDense(len(rows), n, data))
}

// NewUnivariate returns a single-column Series given a time and value slice.
func NewUnivariate(t []time.Time, y []float64) (*Series, error) {
	if len(y) == 0 {
		return nil, ErrNoData
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf(
			"time index has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrLenMismatch,
		)
	}
	data := make([]float64, len(y))
	copy(data, y)
	return newSeries(t, mat.NewDense(len(y), 1, data))
}

func newSeries(t []time.Time, vals *mat.Dense) (*Series, error) {
	var lastT time.Time
	for i := 0; i < len(t); i++ {
		currT := t[i]
		if currT.Before(lastT) || currT.Equal(lastT) {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMonotonic)
		}
		lastT = currT
	}

	tSeries := make(TimeSlice, len(t))
	copy(tSeries, t)

	pos := make(map[int64]int, len(t))
	for i, ts := range tSeries {
		pos[ts.UnixNano()] = i
	}

	return &Series{
		t:    tSeries,
		vals: vals,
		pos:  pos,
	}, nil
}

// Len returns the number of timestamps in the series.
func (s *Series) Len() int {
	return len(s.t)
}

// NumCols returns the number of feature dimensions.
func (s *Series) NumCols() int {
	_, n := s.vals.Dims()
	return n
}

// Matrix returns the full value matrix. The returned matrix is a view and
// must not be mutated.
func (s *Series) Matrix() mat.Matrix {
	return s.vals
}

// Index returns a copy of the time index.
func (s *Series) Index() TimeSlice {
	dst := make(TimeSlice, len(s.t))
	copy(dst, s.t)
	return dst
}

// TimestampAt returns the timestamp at the given row position.
func (s *Series) TimestampAt(row int) (time.Time, error) {
	if row < 0 || row >= len(s.t) {
		return time.Time{}, fmt.Errorf("row %d with series length %d, %w", row, len(s.t), ErrRowOutOfBounds)
	}
	return s.t[row], nil
}

// PositionOf returns the row position of the given timestamp within the time
// index.
func (s *Series) PositionOf(ts time.Time) (int, error) {
	row, exists := s.pos[ts.UnixNano()]
	if !exists {
		return 0, fmt.Errorf("timestamp %s, %w", ts, ErrTimestampNotFound)
	}
	return row, nil
}

// StartTime returns the first timestamp of the series.
func (s *Series) StartTime() time.Time {
	return s.t.StartTime()
}

// LastTimestamp returns the last timestamp of the series.
func (s *Series) LastTimestamp() time.Time {
	return s.t.EndTime()
}

// EstimateFreq estimates the fixed step size of the time index.
func (s *Series) EstimateFreq() (time.Duration, error) {
	return s.t.EstimateFreq()
}

// Rows returns a newly allocated matrix holding rows [from, to) of the
// series. The copy shares no state with the series.
func (s *Series) Rows(from, to int) (*mat.Dense, error) {
	if from < 0 || to > len(s.t) || from > to {
		return nil, fmt.Errorf("rows [%d, %d) with series length %d, %w", from, to, len(s.t), ErrRowOutOfBounds)
	}
	if from == to {
		return &mat.Dense{}, nil
	}
	_, n := s.vals.Dims()
	dst := mat.NewDense(to-from, n, nil)
	dst.Copy(s.vals.Slice(from, to, 0, n))
	return dst, nil
}

// Copy returns a deep copy of the series.
func (s *Series) Copy() *Series {
	tSeries := make(TimeSlice, len(s.t))
	copy(tSeries, s.t)

	pos := make(map[int64]int, len(s.pos))
	for k, v := range s.pos {
		pos[k] = v
	}

	vals := mat.DenseCopyOf(s.vals)
	return &Series{
		t:    tSeries,
		vals: vals,
		pos:  pos,
	}
}
