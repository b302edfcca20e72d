package timeseries

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Values is a mutable slice of observations used to compose synthetic
// series for tests and examples.
type Values []float64

func (v Values) Add(src Values) Values {
	floats.Add(v, src)
	return v
}

func (v Values) SetConst(t TimeSlice, val float64, start, end time.Time) Values {
	n := len(v)
	for i := 0; i < n; i++ {
		if (t[i].After(start) || t[i].Equal(start)) && t[i].Before(end) {
			v[i] = val
		}
	}
	return v
}

func GenerateConst(n int, val float64) Values {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Values(y)
}

func GenerateWave(t TimeSlice, amp, periodSec, order, timeOffset float64) Values {
	n := len(t)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		val := amp * math.Sin(2.0*math.Pi*order/periodSec*(float64(t[i].Unix())+timeOffset))
		y = append(y, val)
	}
	return Values(y)
}

func GenerateNoise(t TimeSlice, noiseScale, amp, periodSec, order, timeOffset float64) Values {
	n := len(t)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		scale := (noiseScale + amp*math.Sin(2.0*math.Pi*order/periodSec*(float64(t[i].Unix())+timeOffset)))
		y = append(y, rand.NormFloat64()*scale)
	}
	return Values(y)
}

func GenerateRamp(t TimeSlice, start time.Time, bias, slope float64) Values {
	n := len(t)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		if t[i].After(start) || t[i].Equal(start) {
			y[i] = bias + slope*t[i].Sub(start).Minutes()
		}
	}
	return Values(y)
}
