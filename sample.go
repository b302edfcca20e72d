package tsdataset

import (
	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"
)

// Sample is one fixed-shape training or inference example. Each field is a
// newly allocated matrix sharing no state with the source dataset or with
// any other sample. A matrix with zero rows means the segment does not
// apply: past target in lag mode, future target for inference-only samples,
// and either covariate chunk when the dataset lacks that series.
type Sample struct {
	PastTarget   *mat.Dense
	FutureTarget *mat.Dense
	KnownCov     *mat.Dense
	ObservedCov  *mat.Dense
}

type sampleJSON struct {
	PastTarget   [][]float64 `json:"past_target"`
	FutureTarget [][]float64 `json:"future_target"`
	KnownCov     [][]float64 `json:"known_cov"`
	ObservedCov  [][]float64 `json:"observed_cov"`
}

func (s Sample) MarshalJSON() ([]byte, error) {
	return json.Marshal(sampleJSON{
		PastTarget:   matrixRows(s.PastTarget),
		FutureTarget: matrixRows(s.FutureTarget),
		KnownCov:     matrixRows(s.KnownCov),
		ObservedCov:  matrixRows(s.ObservedCov),
	})
}

func (s *Sample) UnmarshalJSON(data []byte) error {
	var sj sampleJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}
	s.PastTarget = denseFromRows(sj.PastTarget)
	s.FutureTarget = denseFromRows(sj.FutureTarget)
	s.KnownCov = denseFromRows(sj.KnownCov)
	s.ObservedCov = denseFromRows(sj.ObservedCov)
	return nil
}

func matrixRows(m *mat.Dense) [][]float64 {
	if m == nil || m.IsEmpty() {
		return [][]float64{}
	}
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		copy(rows[i], m.RawRowView(i))
	}
	return rows
}

func denseFromRows(rows [][]float64) *mat.Dense {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &mat.Dense{}
	}
	r := len(rows)
	c := len(rows[0])
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}
	return mat.NewDense(r, c, data)
}
