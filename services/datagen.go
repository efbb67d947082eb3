package services

import (
	"math/rand"
)

// DataGenService generates sensor readings as a mean-reverting random walk
// around a configured mean.
type DataGenService struct {
	mean              float64
	standardDeviation float64
	value             float64
	rnd               *rand.Rand
}

// NewDataGenService instantiates a generator with the given mean and
// standard deviation.
func NewDataGenService(mean, standardDeviation float64) *DataGenService {
	return &DataGenService{
		mean:              mean,
		standardDeviation: standardDeviation,
		value:             mean,
		rnd:               rand.New(rand.NewSource(rand.Int63())),
	}
}

// CalculateNextValue advances the walk and returns the next reading.
func (svc *DataGenService) CalculateNextValue() float64 {
	// step around the current value, pulled back toward the mean
	step := svc.rnd.NormFloat64() * svc.standardDeviation * 0.25
	svc.value += step + (svc.mean-svc.value)*0.1
	return svc.value
}
