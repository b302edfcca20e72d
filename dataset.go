package tsdataset

import (
	"errors"

	"github.com/aouyang1/go-tsdataset/timeseries"
)

var (
	ErrNilDataset = errors.New("dataset must not be nil")
	ErrNilTarget  = errors.New("dataset target series must not be nil")
)

// Dataset aggregates the raw series that samples are sliced from.
//
// Target is required. KnownCov holds covariates whose future values are
// known ahead of time (calendar features, planned events) and may extend
// past the target's last timestamp. ObservedCov holds covariates only
// observable up to the present and need not extend past the target.
// Both covariate series must share the target's frequency. StaticCov holds
// per-series constants; it is carried through untouched and plays no part
// in windowing.
type Dataset struct {
	Target      *timeseries.Series
	KnownCov    *timeseries.Series
	ObservedCov *timeseries.Series
	StaticCov   map[string]float64
}

func (d *Dataset) validate() error {
	if d == nil {
		return ErrNilDataset
	}
	if d.Target == nil || d.Target.Len() < 1 {
		return ErrNilTarget
	}
	return nil
}
