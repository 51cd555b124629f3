package sensor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pkmlab.dev/sensor-monitor-service/pkg/models"
	_ "pkmlab.dev/sensor-monitor-service/pkg/testing"
)

func testReading(ch models.Channel, value float64) *models.Reading {
	r := &models.Reading{Timestamp: time.Now().UTC()}
	switch ch {
	case models.ChannelTemperature:
		r.Temperature = &value
	case models.ChannelHumidity:
		r.Humidity = &value
	case models.ChannelSoilHumidity:
		r.SoilHumidity = &value
	case models.ChannelWindSpeed:
		r.WindSpeed = &value
	}
	return r
}

func TestEvaluateHighTemperature(t *testing.T) {
	cfg := models.ThresholdConfig{
		models.ChannelTemperature: {Min: f64(20), Max: f64(30)},
	}

	alerts := Evaluate(testReading(models.ChannelTemperature, 32.5), cfg)

	assert.Len(t, alerts, 1)
	assert.Equal(t, models.ChannelTemperature, alerts[0].Channel)
	assert.Equal(t, models.SeverityDanger, alerts[0].Severity)
	assert.Equal(t, models.ThresholdMax, alerts[0].ThresholdType)
	assert.Equal(t, 32.5, alerts[0].Value)
	assert.Equal(t, 30.0, alerts[0].Threshold)
	assert.Equal(t, "Suhu terlalu tinggi: 32.5°C (Max: 30°C)", alerts[0].Message)
	assert.True(t, alerts[0].IsActive)
}

func TestEvaluateLowHumidity(t *testing.T) {
	cfg := models.ThresholdConfig{
		models.ChannelHumidity: {Min: f64(50), Max: f64(70)},
	}

	alerts := Evaluate(testReading(models.ChannelHumidity, 45), cfg)

	assert.Len(t, alerts, 1)
	assert.Equal(t, models.SeverityWarning, alerts[0].Severity)
	assert.Equal(t, models.ThresholdMin, alerts[0].ThresholdType)
	assert.Equal(t, "Kelembapan udara terlalu rendah: 45% (Min: 50%)", alerts[0].Message)
}

func TestEvaluateBoundaryIsNotViolation(t *testing.T) {
	cfg := models.ThresholdConfig{
		models.ChannelTemperature: {Min: f64(20), Max: f64(30)},
	}

	// comparisons are strict, sitting exactly on a bound raises nothing
	assert.Empty(t, Evaluate(testReading(models.ChannelTemperature, 20), cfg))
	assert.Empty(t, Evaluate(testReading(models.ChannelTemperature, 30), cfg))
}

func TestEvaluateAtMostOnePerPair(t *testing.T) {
	// an inverted range (never accepted by validation) is the only way a
	// reading can cross both bounds; even then each pair fires once
	cfg := models.ThresholdConfig{
		models.ChannelTemperature: {Min: f64(50), Max: f64(10)},
	}

	alerts := Evaluate(testReading(models.ChannelTemperature, 30), cfg)

	assert.Len(t, alerts, 2)
	seen := map[string]bool{}
	for _, alert := range alerts {
		key := string(alert.Channel) + "/" + string(alert.ThresholdType)
		assert.False(t, seen[key], "duplicate alert for %s", key)
		seen[key] = true
	}
}

func TestEvaluateSeverityPolicy(t *testing.T) {
	cases := []struct {
		channel  models.Channel
		value    float64
		bounds   models.ThresholdRange
		expected models.Severity
	}{
		{models.ChannelTemperature, 15, models.ThresholdRange{Min: f64(20)}, models.SeverityWarning},
		{models.ChannelTemperature, 35, models.ThresholdRange{Max: f64(30)}, models.SeverityDanger},
		{models.ChannelHumidity, 40, models.ThresholdRange{Min: f64(50)}, models.SeverityWarning},
		{models.ChannelHumidity, 80, models.ThresholdRange{Max: f64(70)}, models.SeverityWarning},
		{models.ChannelSoilHumidity, 25, models.ThresholdRange{Min: f64(40)}, models.SeverityDanger},
		{models.ChannelSoilHumidity, 75, models.ThresholdRange{Max: f64(60)}, models.SeverityWarning},
		{models.ChannelWindSpeed, 30, models.ThresholdRange{Max: f64(20)}, models.SeverityDanger},
	}

	for _, tc := range cases {
		cfg := models.ThresholdConfig{tc.channel: tc.bounds}
		alerts := Evaluate(testReading(tc.channel, tc.value), cfg)
		assert.Len(t, alerts, 1, "%s value %v", tc.channel, tc.value)
		assert.Equal(t, tc.expected, alerts[0].Severity, "%s value %v", tc.channel, tc.value)
	}
}

func TestEvaluateSkipsAbsentChannels(t *testing.T) {
	cfg := DefaultThresholds()

	// only temperature present, only temperature evaluated
	alerts := Evaluate(testReading(models.ChannelTemperature, 35), cfg)

	assert.Len(t, alerts, 1)
	assert.Equal(t, models.ChannelTemperature, alerts[0].Channel)
}

func TestEvaluateNilReading(t *testing.T) {
	assert.Empty(t, Evaluate(nil, DefaultThresholds()))
}

func TestEvaluateUniqueIDs(t *testing.T) {
	cfg := models.ThresholdConfig{
		models.ChannelTemperature: {Max: f64(30)},
	}
	reading := testReading(models.ChannelTemperature, 35)

	first := Evaluate(reading, cfg)
	second := Evaluate(reading, cfg)

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}
