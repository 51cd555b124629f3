package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkmlab.dev/sensor-monitor-service/pkg/common"
	_ "pkmlab.dev/sensor-monitor-service/pkg/testing"
)

func wsURL(ts *httptest.Server) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func TestStreamReceivesFrames(t *testing.T) {
	common.SetTestLoggerNop()

	upgrader := websocket.Upgrader{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		_ = conn.WriteJSON(map[string]any{
			"temperature":    26.5,
			"humidity":       60,
			"soil_moisture":  42,
			"wind_speed":     9.5,
			"rain_detection": true,
		})

		// hold the connection open until the client goes away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer ts.Close()

	stream := NewStreamSource(wsURL(ts))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- stream.Run(ctx)
	}()

	select {
	case reading := <-stream.Readings():
		require.NotNil(t, reading.Temperature)
		assert.Equal(t, 26.5, *reading.Temperature)
		assert.Equal(t, 60.0, *reading.Humidity)
		assert.Equal(t, 42.0, *reading.SoilHumidity)
		assert.Equal(t, 9.5, *reading.WindSpeed)
		assert.True(t, reading.RainDetection)
		// the server sent no timestamp, the stream stamps receipt time
		assert.False(t, reading.Timestamp.IsZero())
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a stream reading")
	}

	assert.Equal(t, StreamConnected, stream.State())

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for stream shutdown")
	}
	assert.Equal(t, StreamDisconnected, stream.State())
}

func TestStreamGivesUpAfterDialBudget(t *testing.T) {
	common.SetTestLoggerNop()

	// nothing listens here
	stream := NewStreamSource("ws://127.0.0.1:1")
	stream.MaxDialAttempts = 2
	stream.InitialInterval = 10 * time.Millisecond

	err := stream.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "giving up after 2 attempts")
	assert.Equal(t, StreamDisconnected, stream.State())
}

func TestStreamRunCanceledBeforeConnect(t *testing.T) {
	common.SetTestLoggerNop()

	stream := NewStreamSource("ws://127.0.0.1:1")
	stream.MaxDialAttempts = 100
	stream.InitialInterval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := stream.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StreamDisconnected, stream.State())
}

func TestStreamFrameReading(t *testing.T) {
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	frame := streamFrame{
		Temperature:  24,
		Humidity:     58,
		SoilMoisture: 35,
		WindSpeed:    11,
		Timestamp:    ts,
	}

	reading := frame.reading()
	assert.Equal(t, 24.0, *reading.Temperature)
	assert.Equal(t, ts, reading.Timestamp)
	assert.False(t, reading.RainDetection)
}
