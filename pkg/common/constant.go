package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeySensorDBType string = "SENSOR_DB_TYPE"
	EnvKeySensorDbPath string = "SENSOR_DB_PATH"

	EnvKeySensorHttpHostPort string = "SENSOR_HTTP_HOST_PORT"

	EnvKeySensorSource        string = "SENSOR_SOURCE"
	EnvKeySensorPollInterval  string = "SENSOR_POLL_INTERVAL"
	EnvKeySensorWeatherCity   string = "SENSOR_WEATHER_CITY"
	EnvKeySensorWeatherAPIKey string = "SENSOR_WEATHER_API_KEY"
	EnvKeySensorStreamURL     string = "SENSOR_STREAM_URL"

	EnvKeySensorDefaultRate  string = "SENSOR_DEFAULT_RATE"
	EnvKeySensorDefaultBurst string = "SENSOR_DEFAULT_BURST"

	EnvKeySensorAlertCap       string = "SENSOR_ALERT_CAP"
	EnvKeySensorDedupWindow    string = "SENSOR_DEDUP_WINDOW"
	EnvKeySensorAlertRetention string = "SENSOR_ALERT_RETENTION"
	EnvKeySensorHistoryPoints  string = "SENSOR_HISTORY_POINTS"

	LoggerNameSensorCore    string = "sensor_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameIngest        string = "ingest"

	LoggerFieldSensorCategory  string = "category"
	LoggerCategorySensorRead   string = "reading"
	LoggerCategorySensorAlert  string = "alert"
	LoggerCategorySensorConfig string = "threshold"
	LoggerCategorySensorState  string = "state"

	// Persisted snapshot keys, kept identical to the browser build's local
	// storage layout.
	StateKeyThresholds string = "sensorThresholds"
	StateKeyAlerts     string = "sensorAlerts"
	StateKeyHistory    string = "weatherHistory"
)
