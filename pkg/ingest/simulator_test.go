package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "pkmlab.dev/sensor-monitor-service/pkg/testing"
)

func TestSimulatorValueBands(t *testing.T) {
	sim := NewSimulator(1)

	for range 100 {
		reading, err := sim.Fetch(context.Background())
		require.NoError(t, err)

		assert.GreaterOrEqual(t, *reading.Temperature, 23.0)
		assert.LessOrEqual(t, *reading.Temperature, 28.0)
		assert.GreaterOrEqual(t, *reading.Humidity, 55.0)
		assert.LessOrEqual(t, *reading.Humidity, 65.0)
		assert.GreaterOrEqual(t, *reading.SoilHumidity, 30.0)
		assert.LessOrEqual(t, *reading.SoilHumidity, 45.0)
		assert.GreaterOrEqual(t, *reading.WindSpeed, 8.0)
		assert.LessOrEqual(t, *reading.WindSpeed, 13.0)

		assert.Equal(t, "Demo Mode", reading.Location)
		assert.Equal(t, "simulated data", reading.Weather)
		assert.False(t, reading.Timestamp.IsZero())
	}
}

func TestSimulatorDeterministicSeed(t *testing.T) {
	a := NewSimulator(42)
	b := NewSimulator(42)

	for range 10 {
		ra, err := a.Fetch(context.Background())
		require.NoError(t, err)
		rb, err := b.Fetch(context.Background())
		require.NoError(t, err)

		assert.Equal(t, *ra.Temperature, *rb.Temperature)
		assert.Equal(t, *ra.Humidity, *rb.Humidity)
		assert.Equal(t, *ra.SoilHumidity, *rb.SoilHumidity)
		assert.Equal(t, *ra.WindSpeed, *rb.WindSpeed)
		assert.Equal(t, ra.RainDetection, rb.RainDetection)
	}
}
