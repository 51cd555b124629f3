package sensor

import (
	"time"

	"go.uber.org/zap"
	"pkmlab.dev/sensor-monitor-service/pkg/common"
	"pkmlab.dev/sensor-monitor-service/pkg/models"
)

func alertLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameSensorCore,
		zap.String(common.LoggerFieldSensorCategory, common.LoggerCategorySensorAlert),
	)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// mergeAlerts folds new alert candidates into the retained set:
// supersede-by-newest within the dedup window on (channel, thresholdType),
// expire anything older than the retention window, keep newest-first order,
// truncate to the cap. Called with an empty batch it only applies
// expiry/cap.
func (m *Monitor) mergeAlerts(newAlerts []models.Alert) {
	logger := alertLogger()

	for _, alert := range newAlerts {
		logger.Info("Alert raised", zap.Reflect("alert", alert))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-m.Opts.AlertRetention)

	var kept []models.Alert
	for _, old := range m.alerts {
		superseded := false
		for _, incoming := range newAlerts {
			if old.Channel == incoming.Channel &&
				old.ThresholdType == incoming.ThresholdType &&
				absDuration(incoming.Timestamp.Sub(old.Timestamp)) <= m.Opts.DedupWindow {
				superseded = true
				break
			}
		}
		if superseded {
			continue
		}
		if !old.Timestamp.After(cutoff) {
			continue
		}
		kept = append(kept, old)
	}

	merged := make([]models.Alert, 0, len(newAlerts)+len(kept))
	merged = append(merged, newAlerts...)
	merged = append(merged, kept...)
	if len(merged) > m.Opts.AlertCap {
		merged = merged[:m.Opts.AlertCap]
	}

	m.alerts = merged
	m.saveState(common.StateKeyAlerts, merged)
}

func (m *Monitor) dismissAlert(alertID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, alert := range m.alerts {
		if alert.ID == alertID {
			m.alerts = append(m.alerts[:i:i], m.alerts[i+1:]...)
			m.saveState(common.StateKeyAlerts, m.alerts)
			alertLogger().Info("Alert dismissed", zap.String("alert_id", alertID))
			return
		}
	}
	// unknown or already-expired id is a no-op, not an error
}

func (m *Monitor) clearAlerts() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.alerts = nil
	m.dropState(common.StateKeyAlerts)
	alertLogger().Info("Cleared all alerts")
}

func (m *Monitor) queryAlerts(channel models.Channel) []models.Alert {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Alert
	for _, alert := range m.alerts {
		if alert.Channel == channel && alert.IsActive {
			out = append(out, alert)
		}
	}
	return out
}

func (m *Monitor) allAlerts() []models.Alert {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Alert, len(m.alerts))
	copy(out, m.alerts)
	return out
}

type IAlertImpl struct {
	monitor *Monitor
}

func (ia *IAlertImpl) Merge(newAlerts []models.Alert) {
	ia.monitor.mergeAlerts(newAlerts)
}

func (ia *IAlertImpl) Dismiss(alertID string) {
	ia.monitor.dismissAlert(alertID)
}

func (ia *IAlertImpl) ClearAll() {
	ia.monitor.clearAlerts()
}

func (ia *IAlertImpl) Query(channel models.Channel) []models.Alert {
	return ia.monitor.queryAlerts(channel)
}

func (ia *IAlertImpl) All() []models.Alert {
	return ia.monitor.allAlerts()
}

func (m *Monitor) GetIAlert() IAlert {
	return &IAlertImpl{monitor: m}
}
