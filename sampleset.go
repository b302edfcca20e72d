package tsdataset

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by SampleSet.At for an invalid sample
// index.
var ErrIndexOutOfRange = errors.New("sample index out of range")

// SampleSet is the built, random-access collection of samples. All
// validation and sample materialization happens in New; afterwards the set
// is immutable and safe to share across goroutines.
type SampleSet struct {
	opt     ChunkOptions
	window  TimeWindow
	samples []Sample
}

// New validates the chunk options and dataset, resolves the time window,
// and builds every sample in the window eagerly. A nil window resolves to
// the default window covering every full training sample, spanning from the
// smallest buildable tail index to the last target row.
func New(d *Dataset, opt ChunkOptions, window *TimeWindow) (*SampleSet, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}

	resolved, err := resolveWindow(opt, d.Target.Len(), window)
	if err != nil {
		return nil, err
	}

	if err := validateDataset(d, opt, resolved); err != nil {
		return nil, err
	}

	samples, err := buildSamples(d, opt, resolved)
	if err != nil {
		return nil, err
	}

	return &SampleSet{
		opt:     opt,
		window:  resolved,
		samples: samples,
	}, nil
}

// Len returns the number of built samples.
func (s *SampleSet) Len() int {
	return len(s.samples)
}

// At returns the sample at the given position.
func (s *SampleSet) At(idx int) (Sample, error) {
	if idx < 0 || idx >= len(s.samples) {
		return Sample{}, fmt.Errorf("index %d with %d samples, %w", idx, len(s.samples), ErrIndexOutOfRange)
	}
	return s.samples[idx], nil
}

// Samples returns the built samples. The returned slice is a copy but the
// samples share their matrices with the set and must not be mutated.
func (s *SampleSet) Samples() []Sample {
	dst := make([]Sample, len(s.samples))
	copy(dst, s.samples)
	return dst
}

// Window returns the resolved time window samples were built over.
func (s *SampleSet) Window() TimeWindow {
	return s.window
}

// Options returns the chunk options the set was built with.
func (s *SampleSet) Options() ChunkOptions {
	return s.opt
}
