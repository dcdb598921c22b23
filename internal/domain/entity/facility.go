package entity

import (
	"math"
	"slices"
)

// Facility represents a car wash location
type Facility struct {
	ID           string
	Name         string
	Address      string
	Latitude     float64
	Longitude    float64
	QueueCount   int
	Rating       float64
	TotalReviews int
	Reviews      []Review
	Services     []Service
}

// Review is a customer review shown on the facility detail screen
type Review struct {
	User    string
	Rating  int
	Comment string
}

// Service is a wash package offered by a facility. Duration is in minutes.
type Service struct {
	ID       string
	Name     string
	Price    float64
	Duration int
}

// Clone returns a copy that shares no slices with f
func (f Facility) Clone() Facility {
	f.Reviews = slices.Clone(f.Reviews)
	f.Services = slices.Clone(f.Services)
	return f
}

// IncrementQueue adds one vehicle to the facility queue
func (f *Facility) IncrementQueue() {
	f.QueueCount++
}

// Coordinate is a latitude/longitude pair in degrees
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// IsFinite reports whether both components are finite numbers
func (c Coordinate) IsFinite() bool {
	return isFinite(c.Latitude) && isFinite(c.Longitude)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
