package ingest

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"pkmlab.dev/sensor-monitor-service/pkg/models"
)

// Simulator generates plausible readings for offline and demo use, in the
// same value bands the dashboard's fallback generator used.
type Simulator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSimulator(seed int64) *Simulator {
	return &Simulator{rnd: rand.New(rand.NewSource(seed))}
}

func (s *Simulator) Name() string { return "simulator" }

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func (s *Simulator) Fetch(_ context.Context) (*models.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	temp := round1(s.rnd.Float64()*5 + 23)
	humidity := round1(s.rnd.Float64()*10 + 55)
	soil := round1(s.rnd.Float64()*15 + 30)
	wind := round1(s.rnd.Float64()*5 + 8)

	return &models.Reading{
		Temperature:   &temp,
		Humidity:      &humidity,
		SoilHumidity:  &soil,
		WindSpeed:     &wind,
		RainDetection: s.rnd.Float64() > 0.8,
		Location:      "Demo Mode",
		Weather:       "simulated data",
		Timestamp:     time.Now().UTC(),
	}, nil
}
