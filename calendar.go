package tsdataset

import (
	"errors"
	"time"

	"github.com/aouyang1/go-tsdataset/timeseries"
	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

var ErrNoTimeIndex = errors.New("no time index to build calendar covariates from")

// CalendarCovariates builds a known covariate series from a time index. The
// resulting series carries an hour of day column, a day of week column, and
// one indicator column per holiday marking the observed holiday date.
// Because every column derives from the time index alone, the series can
// extend arbitrarily far past the target and serve as the known covariate
// input for inference windows.
func CalendarCovariates(t timeseries.TimeSlice, holidays ...*cal.Holiday) (*timeseries.Series, error) {
	if len(t) == 0 {
		return nil, ErrNoTimeIndex
	}

	n := len(t)
	cols := 2 + len(holidays)
	rows := make([][]float64, n)
	for i, ts := range t {
		row := make([]float64, cols)
		row[0] = float64(ts.Hour())
		row[1] = float64(ts.Weekday())
		rows[i] = row
	}
	for j, hol := range holidays {
		indicator := HolidayIndicator(t, hol)
		for i, val := range indicator {
			rows[i][2+j] = val
		}
	}
	return timeseries.New(t, rows)
}

// HolidayIndicator returns a 0/1 series marking timestamps that fall on the
// observed date of the given holiday.
func HolidayIndicator(t timeseries.TimeSlice, hol *cal.Holiday) timeseries.Values {
	indicator := timeseries.GenerateConst(len(t), 0.0)
	if len(t) == 0 {
		return indicator
	}

	loc := t[0].Location()
	for year := t[0].Year(); year <= t[len(t)-1].Year(); year++ {
		_, observed := hol.Calc(year)
		day := time.Date(observed.Year(), observed.Month(), observed.Day(), 0, 0, 0, 0, loc)
		next := day.Add(24 * time.Hour)
		indicator.SetConst(t, 1.0, day, next)
	}
	return indicator
}

// USHolidays is a convenient default holiday set for calendar covariates.
var USHolidays = []*cal.Holiday{
	us.NewYear,
	us.IndependenceDay,
	us.ThanksgivingDay,
	us.ChristmasDay,
}
