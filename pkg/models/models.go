package models

import "time"

type Channel string

const (
	ChannelTemperature  Channel = "temperature"
	ChannelHumidity     Channel = "humidity"
	ChannelSoilHumidity Channel = "soilHumidity"
	ChannelWindSpeed    Channel = "windSpeed"
)

// Channels lists all monitored channels in a fixed order.
func Channels() []Channel {
	return []Channel{ChannelTemperature, ChannelHumidity, ChannelSoilHumidity, ChannelWindSpeed}
}

func (c Channel) Valid() bool {
	switch c {
	case ChannelTemperature, ChannelHumidity, ChannelSoilHumidity, ChannelWindSpeed:
		return true
	}
	return false
}

// Label is the display name used in alert messages, kept identical to the
// dashboard frontend copy.
func (c Channel) Label() string {
	switch c {
	case ChannelTemperature:
		return "Suhu"
	case ChannelHumidity:
		return "Kelembapan udara"
	case ChannelSoilHumidity:
		return "Kelembapan tanah"
	case ChannelWindSpeed:
		return "Kecepatan angin"
	}
	return string(c)
}

// Unit is appended directly after a formatted value, so windSpeed carries a
// leading space ("12.5 km/h" vs "12.5°C").
func (c Channel) Unit() string {
	switch c {
	case ChannelTemperature:
		return "°C"
	case ChannelHumidity, ChannelSoilHumidity:
		return "%"
	case ChannelWindSpeed:
		return " km/h"
	}
	return ""
}

// DomainRange is the admissible range for threshold values on this channel.
// Candidate bounds outside it are rejected, never clamped.
func (c Channel) DomainRange() (lo, hi float64) {
	switch c {
	case ChannelTemperature:
		return -50, 80
	case ChannelHumidity, ChannelSoilHumidity:
		return 0, 100
	case ChannelWindSpeed:
		return 0, 200
	}
	return 0, 0
}

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

type ThresholdType string

const (
	ThresholdMin ThresholdType = "min"
	ThresholdMax ThresholdType = "max"
)

// ThresholdRange holds the optional bounds for one channel. A nil field
// means the bound is unset.
type ThresholdRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

type ThresholdConfig map[Channel]ThresholdRange

// Clone returns a copy safe to hand out to callers.
func (tc ThresholdConfig) Clone() ThresholdConfig {
	out := make(ThresholdConfig, len(tc))
	for ch, r := range tc {
		out[ch] = r
	}
	return out
}

// Reading is one immutable snapshot of all sensor channels. Numeric channels
// are pointers so an adapter can omit a channel it could not produce; the
// rain flag is presentation-only and never threshold-evaluated.
type Reading struct {
	Temperature   *float64  `json:"temperature,omitempty"`
	Humidity      *float64  `json:"humidity,omitempty"`
	SoilHumidity  *float64  `json:"soilHumidity,omitempty"`
	WindSpeed     *float64  `json:"windSpeed,omitempty"`
	RainDetection bool      `json:"rainDetection"`
	Location      string    `json:"location,omitempty"`
	Weather       string    `json:"weather,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Value returns the numeric value for a channel, or nil when absent.
func (r *Reading) Value(ch Channel) *float64 {
	switch ch {
	case ChannelTemperature:
		return r.Temperature
	case ChannelHumidity:
		return r.Humidity
	case ChannelSoilHumidity:
		return r.SoilHumidity
	case ChannelWindSpeed:
		return r.WindSpeed
	}
	return nil
}

type Alert struct {
	ID            string        `json:"id"`
	Channel       Channel       `json:"channel"`
	Severity      Severity      `json:"severity"`
	ThresholdType ThresholdType `json:"thresholdType"`
	Message       string        `json:"message"`
	Value         float64       `json:"value"`
	Threshold     float64       `json:"threshold"`
	Timestamp     time.Time     `json:"timestamp"`
	IsActive      bool          `json:"isActive"`
}

// History keeps the rolling chart window: parallel arrays of recent values
// per channel plus display timestamps, newest last.
type History struct {
	Temperature  []float64 `json:"temperature"`
	Humidity     []float64 `json:"humidity"`
	SoilHumidity []float64 `json:"soilHumidity"`
	WindSpeed    []float64 `json:"windSpeed"`
	Timestamps   []string  `json:"timestamps"`
}

// StateBlob is one persisted JSON snapshot, keyed the same way the browser
// build keyed its local storage entries.
type StateBlob struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}
