package tsdataset

import (
	"os"
	"testing"
	"time"

	"github.com/aouyang1/go-tsdataset/timeseries"
	"github.com/goccy/go-json"
	"github.com/pkg/profile"
)

func setupBenchDataset(b *testing.B) (*Dataset, ChunkOptions) {
	b.Helper()

	n := 4096
	idx := timeseries.Sequence(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), n, time.Minute)
	y := timeseries.GenerateWave(idx, 10.0, 86400, 1.0, 0).
		Add(timeseries.GenerateNoise(idx, 0.5, 0.2, 86400, 1.0, 0))
	target, err := timeseries.NewUnivariate(idx, y)
	if err != nil {
		b.Fatal(err)
	}

	known, err := CalendarCovariates(timeseries.Sequence(idx[0], n+64, time.Minute), USHolidays...)
	if err != nil {
		b.Fatal(err)
	}

	observed, err := timeseries.NewUnivariate(idx, timeseries.GenerateWave(idx, 2.0, 43200, 1.0, 0))
	if err != nil {
		b.Fatal(err)
	}

	d := &Dataset{
		Target:      target,
		KnownCov:    known,
		ObservedCov: observed,
	}
	opt := ChunkOptions{InChunkLen: 32, SkipChunkLen: 4, OutChunkLen: 16, SamplingStride: 1}
	return d, opt
}

func BenchmarkNew(b *testing.B) {
	d, opt := setupBenchDataset(b)

	var set *SampleSet
	var err error

	b.ResetTimer()
	for b.Loop() {
		set, err = New(d, opt, nil)
		if err != nil {
			panic(err)
		}
	}

	sample, err := set.At(0)
	if err != nil {
		panic(err)
	}
	bytes, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile("benchmark_sample.json", bytes, 0o644); err != nil {
		panic(err)
	}
}

func BenchmarkNewProfile(b *testing.B) {
	d, opt := setupBenchDataset(b)

	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()

	b.ResetTimer()
	for b.Loop() {
		if _, err := New(d, opt, nil); err != nil {
			panic(err)
		}
	}
}
