package ingest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"pkmlab.dev/sensor-monitor-service/pkg/common"
	"pkmlab.dev/sensor-monitor-service/pkg/models"
)

type StreamState string

const (
	StreamDisconnected StreamState = "disconnected"
	StreamConnecting   StreamState = "connecting"
	StreamConnected    StreamState = "connected"
	StreamBackoff      StreamState = "backoff"
)

const (
	defaultMaxDialAttempts = 5
	streamReadLimit        = 1 << 16
)

// streamFrame is the wire shape of one message on the sensor feed.
type streamFrame struct {
	Temperature   float64   `json:"temperature"`
	Humidity      float64   `json:"humidity"`
	SoilMoisture  float64   `json:"soil_moisture"`
	WindSpeed     float64   `json:"wind_speed"`
	RainDetection bool      `json:"rain_detection"`
	Timestamp     time.Time `json:"timestamp"`
}

func (f *streamFrame) reading() *models.Reading {
	temp := f.Temperature
	humidity := f.Humidity
	soil := f.SoilMoisture
	wind := f.WindSpeed
	ts := f.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return &models.Reading{
		Temperature:   &temp,
		Humidity:      &humidity,
		SoilHumidity:  &soil,
		WindSpeed:     &wind,
		RainDetection: f.RainDetection,
		Timestamp:     ts,
	}
}

// StreamSource subscribes to a WebSocket sensor feed. The connection
// lifecycle is an explicit state machine
// (disconnected -> connecting -> connected -> backoff) so reconnect
// behavior is observable and testable. After MaxDialAttempts consecutive
// failed dials, Run returns a fatal connectivity error and the caller falls
// back to another source.
type StreamSource struct {
	URL             string
	Dialer          *websocket.Dialer
	MaxDialAttempts int
	InitialInterval time.Duration

	mu       sync.Mutex
	state    StreamState
	readings chan *models.Reading
}

func NewStreamSource(url string) *StreamSource {
	return &StreamSource{
		URL:             url,
		Dialer:          websocket.DefaultDialer,
		MaxDialAttempts: defaultMaxDialAttempts,
		state:           StreamDisconnected,
		readings:        make(chan *models.Reading, 16),
	}
}

func (s *StreamSource) Readings() <-chan *models.Reading {
	return s.readings
}

func (s *StreamSource) State() StreamState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *StreamSource) setState(state StreamState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Run drives the state machine until the context ends or the dial attempt
// budget is exhausted.
func (s *StreamSource) Run(ctx context.Context) error {
	logger := common.GetLoggerWith(common.LoggerNameIngest, zap.String("source", "stream"))

	bo := backoff.NewExponentialBackOff()
	if s.InitialInterval > 0 {
		bo.InitialInterval = s.InitialInterval
	}
	bo.MaxElapsedTime = 0

	attempts := 0
	var lastErr error

	for {
		if ctx.Err() != nil {
			s.setState(StreamDisconnected)
			return ctx.Err()
		}

		s.setState(StreamConnecting)
		conn, _, err := s.Dialer.DialContext(ctx, s.URL, nil)
		if err != nil {
			attempts++
			lastErr = err
			logger.Warn("Stream dial failed",
				zap.Int("attempt", attempts),
				zap.Error(err))

			if attempts >= s.MaxDialAttempts {
				s.setState(StreamDisconnected)
				return fmt.Errorf("stream: giving up after %d attempts: %w", attempts, lastErr)
			}

			s.setState(StreamBackoff)
			select {
			case <-ctx.Done():
				s.setState(StreamDisconnected)
				return ctx.Err()
			case <-time.After(bo.NextBackOff()):
			}
			continue
		}

		s.setState(StreamConnected)
		attempts = 0
		bo.Reset()
		logger.Info("Stream connected", zap.String("url", s.URL))

		err = s.readLoop(ctx, conn)
		conn.Close()
		logger.Warn("Stream disconnected", zap.Error(err))

		if ctx.Err() != nil {
			s.setState(StreamDisconnected)
			return ctx.Err()
		}

		s.setState(StreamBackoff)
		select {
		case <-ctx.Done():
			s.setState(StreamDisconnected)
			return ctx.Err()
		case <-time.After(bo.NextBackOff()):
		}
	}
}

func (s *StreamSource) readLoop(ctx context.Context, conn *websocket.Conn) error {
	conn.SetReadLimit(streamReadLimit)

	// unblock the read when the context ends
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	for {
		var frame streamFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return err
		}

		select {
		case s.readings <- frame.reading():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
