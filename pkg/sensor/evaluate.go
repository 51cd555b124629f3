package sensor

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
	"pkmlab.dev/sensor-monitor-service/pkg/models"
)

// severityPolicy is the fixed channel/bound severity table. It is product
// policy, not derived logic: deviations are a product decision.
var severityPolicy = map[models.Channel]map[models.ThresholdType]models.Severity{
	models.ChannelTemperature: {
		models.ThresholdMin: models.SeverityWarning,
		models.ThresholdMax: models.SeverityDanger,
	},
	models.ChannelHumidity: {
		models.ThresholdMin: models.SeverityWarning,
		models.ThresholdMax: models.SeverityWarning,
	},
	models.ChannelSoilHumidity: {
		models.ThresholdMin: models.SeverityDanger,
		models.ThresholdMax: models.SeverityWarning,
	},
	models.ChannelWindSpeed: {
		models.ThresholdMax: models.SeverityDanger,
	},
}

func severityFor(ch models.Channel, tt models.ThresholdType) models.Severity {
	if byType, ok := severityPolicy[ch]; ok {
		if sev, ok := byType[tt]; ok {
			return sev
		}
	}
	return models.SeverityWarning
}

// formatValue renders numbers the way the dashboard frontend did: no
// trailing zeros, so 30.0 prints as "30" and 32.5 as "32.5".
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// newAlertID combines the reading timestamp with a random suffix so two
// alerts within the same millisecond cannot collide.
func newAlertID(ch models.Channel, tt models.ThresholdType, millis int64) string {
	return fmt.Sprintf("%s-%s-%d-%s", ch, tt, millis, uuid.NewString()[:8])
}

func makeAlert(ch models.Channel, tt models.ThresholdType, reading *models.Reading, value, threshold float64) models.Alert {
	unit := ch.Unit()
	var message string
	switch tt {
	case models.ThresholdMin:
		message = fmt.Sprintf("%s terlalu rendah: %s%s (Min: %s%s)",
			ch.Label(), formatValue(value), unit, formatValue(threshold), unit)
	case models.ThresholdMax:
		message = fmt.Sprintf("%s terlalu tinggi: %s%s (Max: %s%s)",
			ch.Label(), formatValue(value), unit, formatValue(threshold), unit)
	}

	return models.Alert{
		ID:            newAlertID(ch, tt, reading.Timestamp.UnixMilli()),
		Channel:       ch,
		Severity:      severityFor(ch, tt),
		ThresholdType: tt,
		Message:       message,
		Value:         value,
		Threshold:     threshold,
		Timestamp:     reading.Timestamp,
		IsActive:      true,
	}
}

// Evaluate maps one reading against the threshold configuration to alert
// candidates. Pure: no state is touched. Bound comparisons are strict, a
// value sitting exactly on a bound raises nothing, and each
// (channel, thresholdType) pair yields at most one alert per reading.
func Evaluate(reading *models.Reading, cfg models.ThresholdConfig) []models.Alert {
	if reading == nil {
		return nil
	}

	var alerts []models.Alert
	for _, ch := range models.Channels() {
		v := reading.Value(ch)
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			continue
		}

		bounds, ok := cfg[ch]
		if !ok {
			continue
		}

		if bounds.Min != nil && *v < *bounds.Min {
			alerts = append(alerts, makeAlert(ch, models.ThresholdMin, reading, *v, *bounds.Min))
		}
		if bounds.Max != nil && *v > *bounds.Max {
			alerts = append(alerts, makeAlert(ch, models.ThresholdMax, reading, *v, *bounds.Max))
		}
	}
	return alerts
}
