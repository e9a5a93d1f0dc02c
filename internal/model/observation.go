package model

import "time"

// Observation is a single (price, timestamp) data point.
type Observation struct {
	Price float64
	Time  time.Time
}

// Transition annotates an observation with the weight of the step to its successor.
type Transition struct {
	From   int     // index of the owning observation
	To     int     // index of the next observation
	Weight float64 // exp(-|to.Price - from.Price|)
}
