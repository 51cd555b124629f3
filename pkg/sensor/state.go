package sensor

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"pkmlab.dev/sensor-monitor-service/pkg/common"
	"pkmlab.dev/sensor-monitor-service/pkg/models"
)

func stateLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameSensorCore,
		zap.String(common.LoggerFieldSensorCategory, common.LoggerCategorySensorState),
	)
}

// saveState writes one JSON snapshot blob. A failed save is logged and
// swallowed: the in-memory state stays authoritative for the session, only
// durability across restarts is lost.
func (m *Monitor) saveState(key string, v any) {
	logger := stateLogger()

	raw, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to encode state snapshot", zap.String("key", key), zap.Error(err))
		return
	}

	blob := models.StateBlob{
		Key:       key,
		Value:     string(raw),
		UpdatedAt: time.Now(),
	}

	err = m.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&blob).Error

	if err != nil {
		logger.Error("Failed to persist state snapshot", zap.String("key", key), zap.Error(err))
	}
}

// dropState removes a persisted blob entirely, for clean-slate semantics.
func (m *Monitor) dropState(key string) {
	if err := m.Db.Conn.Delete(&models.StateBlob{}, "key = ?", key).Error; err != nil {
		stateLogger().Error("Failed to remove state snapshot", zap.String("key", key), zap.Error(err))
	}
}

// loadStateBlob reads one snapshot into out. Returns false when the key is
// absent or the stored value does not decode; either way the caller keeps
// its defaults.
func (m *Monitor) loadStateBlob(key string, out any) bool {
	var blob models.StateBlob
	if err := m.Db.Conn.First(&blob, "key = ?", key).Error; err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(blob.Value), out); err != nil {
		stateLogger().Warn("Discarding undecodable state snapshot", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (m *Monitor) loadState() {
	logger := stateLogger()

	var thresholds models.ThresholdConfig
	if m.loadStateBlob(common.StateKeyThresholds, &thresholds) {
		m.thresholds = thresholds
		logger.Info("Restored threshold configuration", zap.Reflect("thresholds", thresholds))
	}

	var alerts []models.Alert
	if m.loadStateBlob(common.StateKeyAlerts, &alerts) {
		m.alerts = alerts
		logger.Info("Restored retained alerts", zap.Int("count", len(alerts)))
	}

	var history models.History
	if m.loadStateBlob(common.StateKeyHistory, &history) {
		m.history = history
		logger.Info("Restored rolling history", zap.Int("points", len(history.Timestamps)))
	}
}
