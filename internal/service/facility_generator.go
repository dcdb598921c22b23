package service

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"washmap-api/config"
	"washmap-api/internal/domain/entity"
)

const (
	DefaultGeneratedCount = 7
	DefaultRadiusDeg      = 0.045
)

var generatedNames = []string{
	"Premium Wash & Shine",
	"SpeedyClean Express",
	"Eco-Friendly Auto Spa",
	"Luxury Detail Center",
	"Quick Shine Station",
	"Crystal Clear Car Wash",
	"Auto Sparkle Pro",
	"Diamond Wash Services",
	"Pristine Auto Care",
	"Elite Detail Studio",
}

var generatedServices = []entity.Service{
	{ID: "s1", Name: "Basic Exterior Wash", Price: 20, Duration: 20},
	{ID: "s2", Name: "Premium Full Service", Price: 50, Duration: 45},
	{ID: "s3", Name: "Interior Deep Clean", Price: 35, Duration: 35},
	{ID: "s4", Name: "Wax & Polish", Price: 60, Duration: 60},
}

var generatedReviews = []entity.Review{
	{User: "Customer A", Rating: 5, Comment: "Great service!"},
	{User: "Customer B", Rating: 4, Comment: "Good experience overall."},
}

// FacilityGenerator scatters synthetic facilities around a center point.
//
// By default the radial distance is drawn uniformly from [0, R), which
// clusters points toward the center rather than spreading them evenly over
// the disc. Setting UniformArea draws sqrt(u)*R instead.
//
// The random source is injected so tests can fix the output with a seed.
// A mutex guards it because *rand.Rand is not safe for concurrent use.
type FacilityGenerator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	count       int
	radius      float64
	uniformArea bool
}

// NewFacilityGenerator creates a generator. A nil rng is seeded from cfg.Seed.
func NewFacilityGenerator(cfg config.GeneratorConfig, rng *rand.Rand) *FacilityGenerator {
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}
	count := cfg.Count
	if count <= 0 {
		count = DefaultGeneratedCount
	}
	radius := cfg.RadiusDeg
	if radius <= 0 {
		radius = DefaultRadiusDeg
	}
	return &FacilityGenerator{
		rng:         rng,
		count:       count,
		radius:      radius,
		uniformArea: cfg.UniformArea,
	}
}

// NewRand returns a PCG-backed source. Seed 0 means seed from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Radius returns the scatter radius in degrees
func (g *FacilityGenerator) Radius() float64 {
	return g.radius
}

// Generate returns the configured number of facilities around center.
// Non-finite input is not rejected here; it propagates into the coordinates.
func (g *FacilityGenerator) Generate(center entity.Coordinate) []entity.Facility {
	return g.GenerateN(center, g.count)
}

// GenerateN returns count facilities around center with ids gen-1..gen-count
func (g *FacilityGenerator) GenerateN(center entity.Coordinate, count int) []entity.Facility {
	if count <= 0 {
		return []entity.Facility{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	facilities := make([]entity.Facility, 0, count)
	for i := 0; i < count; i++ {
		angle := g.rng.Float64() * 2 * math.Pi
		u := g.rng.Float64()
		if g.uniformArea {
			u = math.Sqrt(u)
		}
		distance := u * g.radius

		facilities = append(facilities, entity.Facility{
			ID:           fmt.Sprintf("gen-%d", i+1),
			Name:         generatedNames[i%len(generatedNames)],
			Latitude:     center.Latitude + distance*math.Cos(angle),
			Longitude:    center.Longitude + distance*math.Sin(angle),
			Address:      fmt.Sprintf("%d Street Name, City", g.rng.IntN(9000)+1000),
			QueueCount:   g.rng.IntN(11),
			Rating:       math.Round((g.rng.Float64()*1.5+3.5)*10) / 10,
			TotalReviews: g.rng.IntN(200) + 50,
			Reviews:      slices.Clone(generatedReviews),
			Services:     slices.Clone(generatedServices),
		})
	}

	return facilities
}
