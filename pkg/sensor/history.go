package sensor

import (
	"pkmlab.dev/sensor-monitor-service/pkg/common"
	"pkmlab.dev/sensor-monitor-service/pkg/models"
)

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func trimTail(values []float64, max int) []float64 {
	if len(values) > max {
		return values[len(values)-max:]
	}
	return values
}

// addHistory appends one reading to the rolling chart window, trimming each
// parallel array to the configured point count.
func (m *Monitor) addHistory(reading *models.Reading) {
	if reading == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	max := m.Opts.HistoryPoints
	m.history.Temperature = trimTail(append(m.history.Temperature, valueOrZero(reading.Temperature)), max)
	m.history.Humidity = trimTail(append(m.history.Humidity, valueOrZero(reading.Humidity)), max)
	m.history.SoilHumidity = trimTail(append(m.history.SoilHumidity, valueOrZero(reading.SoilHumidity)), max)
	m.history.WindSpeed = trimTail(append(m.history.WindSpeed, valueOrZero(reading.WindSpeed)), max)

	ts := m.history.Timestamps
	ts = append(ts, reading.Timestamp.Format("15:04"))
	if len(ts) > max {
		ts = ts[len(ts)-max:]
	}
	m.history.Timestamps = ts

	m.saveState(common.StateKeyHistory, m.history)
}

func (m *Monitor) getHistory() models.History {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := models.History{
		Temperature:  make([]float64, len(m.history.Temperature)),
		Humidity:     make([]float64, len(m.history.Humidity)),
		SoilHumidity: make([]float64, len(m.history.SoilHumidity)),
		WindSpeed:    make([]float64, len(m.history.WindSpeed)),
		Timestamps:   make([]string, len(m.history.Timestamps)),
	}
	copy(out.Temperature, m.history.Temperature)
	copy(out.Humidity, m.history.Humidity)
	copy(out.SoilHumidity, m.history.SoilHumidity)
	copy(out.WindSpeed, m.history.WindSpeed)
	copy(out.Timestamps, m.history.Timestamps)
	return out
}

type IHistoryImpl struct {
	monitor *Monitor
}

func (ih *IHistoryImpl) Add(reading *models.Reading) {
	ih.monitor.addHistory(reading)
}

func (ih *IHistoryImpl) Get() models.History {
	return ih.monitor.getHistory()
}

func (m *Monitor) GetIHistory() IHistory {
	return &IHistoryImpl{monitor: m}
}
