package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"pkmlab.dev/sensor-monitor-service/pkg/common"
	"pkmlab.dev/sensor-monitor-service/pkg/db"
	sensorHttp "pkmlab.dev/sensor-monitor-service/pkg/http"
	"pkmlab.dev/sensor-monitor-service/pkg/ingest"
	"pkmlab.dev/sensor-monitor-service/pkg/sensor"
)

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s, should be an int value", key)
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s, should be a duration like 60s or 24h", key)
	}
	return v
}

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	sensorDbType := os.Getenv(common.EnvKeySensorDBType)
	switch sensorDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown SENSOR_DB_TYPE: " + sensorDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeySensorHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeySensorDefaultRate), 64); err != nil {
		log.Fatal("Invalid SENSOR_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeySensorDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid SENSOR_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	core := sensor.New(*dbInstance, sensor.Options{
		AlertCap:       envInt(common.EnvKeySensorAlertCap, 0),
		DedupWindow:    envDuration(common.EnvKeySensorDedupWindow, 0),
		AlertRetention: envDuration(common.EnvKeySensorAlertRetention, 0),
		HistoryPoints:  envInt(common.EnvKeySensorHistoryPoints, 0),
	})
	core.WithServices(sensor.ServiceOpts{
		Reading:   core.GetIReading(),
		Threshold: core.GetIThreshold(),
		Alert:     core.GetIAlert(),
		History:   core.GetIHistory(),
	})

	interval := envDuration(common.EnvKeySensorPollInterval, ingest.DefaultPollInterval)

	var runner *ingest.Runner
	var startIngest func()
	sourceKind := strings.TrimSpace(os.Getenv(common.EnvKeySensorSource))
	switch sourceKind {
	case "weather":
		city := strings.TrimSpace(os.Getenv(common.EnvKeySensorWeatherCity))
		if city == "" {
			city = "Yogyakarta,ID"
		}
		apiKey := strings.TrimSpace(os.Getenv(common.EnvKeySensorWeatherAPIKey))
		source := ingest.NewWeatherSource(city, apiKey)
		runner = ingest.NewRunner(source, core.GetIReading(), interval)
		startIngest = func() { go runner.Run(context.Background()) }

	case "stream":
		streamURL := strings.TrimSpace(os.Getenv(common.EnvKeySensorStreamURL))
		if streamURL == "" {
			log.Fatal("SENSOR_STREAM_URL must be set when SENSOR_SOURCE=stream")
		}
		stream := ingest.NewStreamSource(streamURL)
		runner = ingest.NewRunner(ingest.NewSimulator(time.Now().UnixNano()), core.GetIReading(), interval)
		startIngest = func() { go runner.RunStream(context.Background(), stream) }

	case "simulator", "":
		source := ingest.NewSimulator(time.Now().UnixNano())
		runner = ingest.NewRunner(source, core.GetIReading(), interval)
		startIngest = func() { go runner.Run(context.Background()) }

	default:
		log.Fatal("Unknown SENSOR_SOURCE: " + sourceKind)
	}

	logger.Info("Ingestion starting",
		zap.String("source", sourceKind),
		zap.Duration("interval", interval))
	startIngest()

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &sensorHttp.RestfulServer{
		Server:           gin.Default(),
		Core:             core,
		Ingest:           runner,
		RateLimiterStore: sensor.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.Float64("default_rate", defaultRate),
		zap.Int64("default_burst", defaultBurst))

	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
