package tsdataset

import (
	"fmt"

	"github.com/aouyang1/go-tsdataset/timeseries"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"gonum.org/v1/gonum/mat"
)

// LineSeries generates an echart multi-line chart for a Series with one
// line per feature column. The input names must have one entry per column;
// missing entries fall back to a generated column label.
func LineSeries(title string, names []string, s *timeseries.Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	m := s.Matrix()
	rows, cols := m.Dims()

	line = line.SetXAxis(s.Index())
	for j := 0; j < cols; j++ {
		lineData := make([]opts.LineData, 0, rows)
		for i := 0; i < rows; i++ {
			lineData = append(lineData, opts.LineData{Value: m.At(i, j)})
		}
		name := fmt.Sprintf("c%d", j)
		if j < len(names) {
			name = names[j]
		}
		line = line.AddSeries(name, lineData)
	}

	return line
}

// LineSample generates an echart line chart for one sample, plotting the
// first column of the past and future target chunks against their step
// offsets so the skipped gap between the two segments is visible.
func LineSample(title string, sample Sample, opt ChunkOptions) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	span := opt.InChunkLen + opt.SkipChunkLen + opt.OutChunkLen
	offsets := make([]int, 0, span)
	for i := 0; i < span; i++ {
		offsets = append(offsets, i)
	}

	pastData := segmentLineData(sample.PastTarget, 0, span)
	futureData := segmentLineData(sample.FutureTarget, opt.InChunkLen+opt.SkipChunkLen, span)

	line = line.SetXAxis(offsets)
	line = line.AddSeries("past_target", pastData)
	line = line.AddSeries("future_target", futureData)

	return line
}

func segmentLineData(m *mat.Dense, offset, span int) []opts.LineData {
	lineData := make([]opts.LineData, 0, span)
	for i := 0; i < offset; i++ {
		lineData = append(lineData, opts.LineData{Value: "-"})
	}
	if m.IsEmpty() {
		return lineData
	}
	rows, _ := m.Dims()
	for i := 0; i < rows; i++ {
		lineData = append(lineData, opts.LineData{Value: m.At(i, 0)})
	}
	return lineData
}
