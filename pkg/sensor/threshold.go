package sensor

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"pkmlab.dev/sensor-monitor-service/pkg/common"
	"pkmlab.dev/sensor-monitor-service/pkg/models"
)

// ValidationError names the first channel that made a threshold update
// unacceptable. The whole update is rejected, never partially applied.
type ValidationError struct {
	Channel models.Channel
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid threshold for %s: %s", e.Channel, e.Reason)
}

func f64(v float64) *float64 {
	return &v
}

// DefaultThresholds is the hardcoded out-of-the-box configuration.
func DefaultThresholds() models.ThresholdConfig {
	return models.ThresholdConfig{
		models.ChannelTemperature:  {Min: f64(20), Max: f64(30)},
		models.ChannelHumidity:     {Min: f64(50), Max: f64(70)},
		models.ChannelSoilHumidity: {Min: f64(40), Max: f64(60)},
		models.ChannelWindSpeed:    {Max: f64(20)},
	}
}

// normalizeBound folds every "no usable value" representation into unset.
func normalizeBound(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}

func validateRange(ch models.Channel, bounds models.ThresholdRange) error {
	lo, hi := ch.DomainRange()
	for _, b := range []struct {
		name  string
		value *float64
	}{{"min", bounds.Min}, {"max", bounds.Max}} {
		if b.value == nil {
			continue
		}
		if *b.value < lo || *b.value > hi {
			return &ValidationError{
				Channel: ch,
				Reason:  fmt.Sprintf("%s %s outside admissible range [%s, %s]", b.name, formatValue(*b.value), formatValue(lo), formatValue(hi)),
			}
		}
	}

	if bounds.Min != nil && bounds.Max != nil && *bounds.Min >= *bounds.Max {
		return &ValidationError{
			Channel: ch,
			Reason:  fmt.Sprintf("min %s must be strictly below max %s", formatValue(*bounds.Min), formatValue(*bounds.Max)),
		}
	}
	return nil
}

// normalizeConfig strips unusable bound values and rejects unknown channels.
func normalizeConfig(candidate models.ThresholdConfig) (models.ThresholdConfig, error) {
	normalized := make(models.ThresholdConfig, len(candidate))
	for ch, bounds := range candidate {
		if !ch.Valid() {
			return nil, &ValidationError{Channel: ch, Reason: "unknown channel"}
		}
		normalized[ch] = models.ThresholdRange{
			Min: normalizeBound(bounds.Min),
			Max: normalizeBound(bounds.Max),
		}
	}
	return normalized, nil
}

func (m *Monitor) getThresholds() models.ThresholdConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.thresholds.Clone()
}

func (m *Monitor) updateThresholds(candidate models.ThresholdConfig) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSensorCore,
		zap.String(common.LoggerFieldSensorCategory, common.LoggerCategorySensorConfig),
	)

	normalized, err := normalizeConfig(candidate)
	if err != nil {
		logger.Warn("Rejected threshold update", zap.Error(err))
		return err
	}

	for _, ch := range models.Channels() {
		bounds, ok := normalized[ch]
		if !ok {
			continue
		}
		if err := validateRange(ch, bounds); err != nil {
			logger.Warn("Rejected threshold update", zap.Error(err))
			return err
		}
	}

	logger.Info("Received threshold configuration", zap.Reflect("thresholds", normalized))

	m.mu.Lock()
	m.thresholds = normalized
	m.saveState(common.StateKeyThresholds, normalized)
	latest := m.latest
	m.mu.Unlock()

	logger.Info("Updated threshold configuration", zap.Reflect("thresholds", normalized))

	// Re-check the last known reading so the alert list reflects the new
	// bounds without waiting for the next tick.
	if latest != nil && m.Alert != nil {
		m.Alert.Merge(Evaluate(latest, normalized))
	}
	return nil
}

func (m *Monitor) resetThresholds() {
	defaults := DefaultThresholds()

	m.mu.Lock()
	m.thresholds = defaults
	m.saveState(common.StateKeyThresholds, defaults)
	m.mu.Unlock()

	common.GetLoggerWith(
		common.LoggerNameSensorCore,
		zap.String(common.LoggerFieldSensorCategory, common.LoggerCategorySensorConfig),
	).Info("Reset threshold configuration to defaults")
}

type IThresholdImpl struct {
	monitor *Monitor
}

func (it *IThresholdImpl) Get() models.ThresholdConfig {
	return it.monitor.getThresholds()
}

func (it *IThresholdImpl) Update(candidate models.ThresholdConfig) error {
	return it.monitor.updateThresholds(candidate)
}

func (it *IThresholdImpl) ResetToDefaults() {
	it.monitor.resetThresholds()
}

func (m *Monitor) GetIThreshold() IThreshold {
	return &IThresholdImpl{monitor: m}
}
