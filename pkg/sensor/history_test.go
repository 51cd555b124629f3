package sensor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkmlab.dev/sensor-monitor-service/pkg/common"
	"pkmlab.dev/sensor-monitor-service/pkg/models"
	_ "pkmlab.dev/sensor-monitor-service/pkg/testing"
)

func historyReading(i int, ts time.Time) *models.Reading {
	temp := 20.0 + float64(i)
	hum := 50.0 + float64(i)
	return &models.Reading{
		Temperature: &temp,
		Humidity:    &hum,
		Timestamp:   ts,
	}
}

func TestAddHistoryTrimsToWindow(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitor, _, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := range 25 {
		monitor.History.Add(historyReading(i, base.Add(time.Duration(i)*time.Minute)))
	}

	history := monitor.History.Get()
	require.Len(t, history.Temperature, monitor.Opts.HistoryPoints)
	require.Len(t, history.Timestamps, monitor.Opts.HistoryPoints)

	// oldest five points rolled off, the window ends at the last reading
	assert.Equal(t, 25.0, history.Temperature[0])
	assert.Equal(t, 44.0, history.Temperature[len(history.Temperature)-1])
	assert.Equal(t, "09:05", history.Timestamps[0])
	assert.Equal(t, "09:24", history.Timestamps[len(history.Timestamps)-1])
}

func TestAddHistoryAbsentChannelRecordsZero(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitor, _, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	temp := 25.0
	monitor.History.Add(&models.Reading{Temperature: &temp, Timestamp: time.Now().UTC()})

	history := monitor.History.Get()
	assert.Equal(t, []float64{25}, history.Temperature)
	assert.Equal(t, []float64{0}, history.WindSpeed)
}

func TestGetHistoryReturnsCopy(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitor, _, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	monitor.History.Add(historyReading(0, time.Now().UTC()))

	first := monitor.History.Get()
	first.Temperature[0] = -999

	second := monitor.History.Get()
	assert.Equal(t, 20.0, second.Temperature[0])
}

func TestHistoryPersistRoundTrip(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitor, _, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := range 3 {
		monitor.History.Add(historyReading(i, base.Add(time.Duration(i)*time.Minute)))
	}
	want := monitor.History.Get()

	reloaded := New(monitor.Db, Options{})
	got := reloaded.GetIHistory().Get()

	assert.Equal(t, want, got)
}
