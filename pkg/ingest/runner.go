package ingest

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"pkmlab.dev/sensor-monitor-service/pkg/common"
	"pkmlab.dev/sensor-monitor-service/pkg/models"
)

const DefaultPollInterval = 60 * time.Second

// Applier is the sensor core's intake; satisfied by sensor.IReading.
type Applier interface {
	Apply(input *models.Reading) error
}

// Runner drives a source on a fixed interval and feeds the sensor core.
// A failed fetch never halts evaluation: the runner falls back to the
// simulator and flips the connectivity flag so the UI can show an
// offline/demo indicator.
type Runner struct {
	Source   Source
	Fallback Source
	Sink     Applier
	Interval time.Duration

	mu     sync.Mutex
	status Status
}

func NewRunner(source Source, sink Applier, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Runner{
		Source:   source,
		Fallback: NewSimulator(time.Now().UnixNano()),
		Sink:     sink,
		Interval: interval,
		status:   Status{Source: source.Name()},
	}
}

func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *Runner) setStatus(connected bool, source string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = Status{Connected: connected, Source: source}
	if err != nil {
		r.status.LastError = err.Error()
	}
}

// Tick performs one fetch-and-apply cycle.
func (r *Runner) Tick(ctx context.Context) {
	logger := common.GetLoggerWith(common.LoggerNameIngest, zap.String("source", r.Source.Name()))

	reading, err := r.Source.Fetch(ctx)
	if err != nil {
		logger.Warn("Fetch failed, falling back to simulated reading", zap.Error(err))
		r.setStatus(false, r.Source.Name(), err)

		if r.Fallback == nil {
			return
		}
		if reading, err = r.Fallback.Fetch(ctx); err != nil {
			return
		}
	} else {
		r.setStatus(true, r.Source.Name(), nil)
	}

	if err := r.Sink.Apply(reading); err != nil {
		logger.Error("Failed to apply reading", zap.Error(err))
	}
}

// Run polls until the context ends. The first tick fires immediately.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	r.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Tick(ctx)
		}
	}
}

// RunStream consumes a WebSocket feed instead of polling. When the stream
// gives up (dial attempt budget exhausted) the runner degrades to polling
// the fallback simulator so the dashboard keeps moving.
func (r *Runner) RunStream(ctx context.Context, stream *StreamSource) error {
	logger := common.GetLoggerWith(common.LoggerNameIngest, zap.String("source", "stream"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- stream.Run(ctx)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case reading := <-stream.Readings():
			r.setStatus(true, "stream", nil)
			if err := r.Sink.Apply(reading); err != nil {
				logger.Error("Failed to apply reading", zap.Error(err))
			}
		case err := <-errCh:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Error("Stream fatally disconnected, degrading to simulator", zap.Error(err))
			r.setStatus(false, "stream", err)
			if r.Fallback == nil {
				return err
			}
			r.Source = r.Fallback
			return r.Run(ctx)
		}
	}
}
