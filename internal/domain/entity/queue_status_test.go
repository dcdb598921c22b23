package entity_test

import (
	"math"
	"testing"

	"washmap-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestClassifyQueue_Boundaries(t *testing.T) {
	tests := []struct {
		count int
		tier  entity.QueueTier
		label string
	}{
		{0, entity.QueueTierAvailable, "Available Now"},
		{1, entity.QueueTierLow, "1 in Queue"},
		{3, entity.QueueTierLow, "3 in Queue"},
		{4, entity.QueueTierMedium, "4 Waiting"},
		{6, entity.QueueTierMedium, "6 Waiting"},
		{7, entity.QueueTierHigh, "7 Waiting"},
		{42, entity.QueueTierHigh, "42 Waiting"},
	}

	for _, tt := range tests {
		status := entity.ClassifyQueue(tt.count)
		assert.Equal(t, tt.tier, status.Tier, "count %d", tt.count)
		assert.Equal(t, tt.label, status.Label, "count %d", tt.count)
	}
}

func TestClassifyQueue_ColorsAndIcons(t *testing.T) {
	assert.Equal(t, entity.QueueColorAvailable, entity.ClassifyQueue(0).Color)
	assert.Equal(t, "check-circle", entity.ClassifyQueue(0).Icon)
	assert.Equal(t, entity.QueueColorLow, entity.ClassifyQueue(2).Color)
	assert.Equal(t, entity.QueueColorMedium, entity.ClassifyQueue(5).Color)
	assert.Equal(t, entity.QueueColorHigh, entity.ClassifyQueue(9).Color)
	assert.Equal(t, "exclamation-triangle", entity.ClassifyQueue(9).Icon)
}

func TestQueueThresholds_Custom(t *testing.T) {
	th := entity.QueueThresholds{Low: 1, Medium: 2}

	assert.Equal(t, entity.QueueTierLow, th.Classify(1).Tier)
	assert.Equal(t, entity.QueueTierMedium, th.Classify(2).Tier)
	assert.Equal(t, entity.QueueTierHigh, th.Classify(3).Tier)
}

func TestCoordinate_IsFinite(t *testing.T) {
	assert.True(t, entity.Coordinate{Latitude: 37.77, Longitude: -122.41}.IsFinite())
	assert.False(t, entity.Coordinate{Latitude: math.NaN(), Longitude: 0}.IsFinite())
	assert.False(t, entity.Coordinate{Latitude: 0, Longitude: math.Inf(1)}.IsFinite())
}

func TestFacility_CloneDoesNotShareSlices(t *testing.T) {
	f := entity.Facility{
		ID:       "1",
		Services: []entity.Service{{ID: "s1", Name: "Wash", Price: 10, Duration: 10}},
		Reviews:  []entity.Review{{User: "A", Rating: 5, Comment: "ok"}},
	}

	c := f.Clone()
	c.Services[0].Price = 99
	c.Reviews[0].Comment = "changed"
	c.IncrementQueue()

	assert.Equal(t, float64(10), f.Services[0].Price)
	assert.Equal(t, "ok", f.Reviews[0].Comment)
	assert.Equal(t, 0, f.QueueCount)
	assert.Equal(t, 1, c.QueueCount)
}
