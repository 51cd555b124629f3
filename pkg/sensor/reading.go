package sensor

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"pkmlab.dev/sensor-monitor-service/pkg/common"
	"pkmlab.dev/sensor-monitor-service/pkg/models"
)

// applyReading accepts one complete reading from an ingestion adapter:
// remember it as the last known reading, extend the rolling history, then
// evaluate it against the current thresholds and merge the result.
func (m *Monitor) applyReading(input *models.Reading) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSensorCore,
		zap.String(common.LoggerFieldSensorCategory, common.LoggerCategorySensorRead),
	)

	if input == nil {
		return fmt.Errorf("nil reading")
	}
	if input.Timestamp.IsZero() {
		input.Timestamp = time.Now().UTC()
	}

	logger.Info("Received reading", zap.Reflect("reading", input))

	m.mu.Lock()
	m.latest = input
	m.mu.Unlock()

	if m.History != nil {
		m.History.Add(input)
	}

	if m.Alert == nil {
		return fmt.Errorf("alert service not available")
	}
	if m.Threshold == nil {
		return fmt.Errorf("threshold service not available")
	}

	m.Alert.Merge(Evaluate(input, m.Threshold.Get()))
	return nil
}

func (m *Monitor) latestReading() *models.Reading {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.latest
}

type IReadingImpl struct {
	monitor *Monitor
}

func (ir *IReadingImpl) Apply(input *models.Reading) error {
	return ir.monitor.applyReading(input)
}

func (ir *IReadingImpl) Latest() *models.Reading {
	return ir.monitor.latestReading()
}

func (m *Monitor) GetIReading() IReading {
	return &IReadingImpl{monitor: m}
}
