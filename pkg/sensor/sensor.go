package sensor

import (
	"sync"
	"time"

	"pkmlab.dev/sensor-monitor-service/pkg/db"
	"pkmlab.dev/sensor-monitor-service/pkg/models"
)

type IReading interface {
	Apply(input *models.Reading) error
	Latest() *models.Reading
}

type IThreshold interface {
	Get() models.ThresholdConfig
	Update(candidate models.ThresholdConfig) error
	ResetToDefaults()
}

type IAlert interface {
	Merge(newAlerts []models.Alert)
	Dismiss(alertID string)
	ClearAll()
	Query(channel models.Channel) []models.Alert
	All() []models.Alert
}

type IHistory interface {
	Add(reading *models.Reading)
	Get() models.History
}

// Options carries the retention policy knobs. Zero values fall back to the
// documented defaults.
type Options struct {
	AlertCap       int           // retained alerts, oldest dropped first
	DedupWindow    time.Duration // repeated violation within it supersedes the older alert
	AlertRetention time.Duration // alerts older than this are expired on merge
	HistoryPoints  int           // rolling chart window
}

const (
	DefaultAlertCap       = 100
	DefaultDedupWindow    = 60 * time.Second
	DefaultAlertRetention = 24 * time.Hour
	DefaultHistoryPoints  = 20
)

func (o Options) withDefaults() Options {
	if o.AlertCap <= 0 {
		o.AlertCap = DefaultAlertCap
	}
	if o.DedupWindow <= 0 {
		o.DedupWindow = DefaultDedupWindow
	}
	if o.AlertRetention <= 0 {
		o.AlertRetention = DefaultAlertRetention
	}
	if o.HistoryPoints <= 0 {
		o.HistoryPoints = DefaultHistoryPoints
	}
	return o
}

// Monitor is the single owner of threshold configuration, retained alerts,
// the rolling history and the last known reading. In-memory state is
// authoritative; sqlite snapshots are write-through and best effort.
type Monitor struct {
	Db   db.DB
	Opts Options

	mu         sync.Mutex
	thresholds models.ThresholdConfig
	alerts     []models.Alert
	history    models.History
	latest     *models.Reading

	Reading   IReading
	Threshold IThreshold
	Alert     IAlert
	History   IHistory
}

type ServiceOpts struct {
	Reading   IReading
	Threshold IThreshold
	Alert     IAlert
	History   IHistory
}

func New(dbInstance db.DB, opts Options) *Monitor {
	m := &Monitor{
		Db:         dbInstance,
		Opts:       opts.withDefaults(),
		thresholds: DefaultThresholds(),
	}
	m.loadState()
	return m
}

func (m *Monitor) WithServices(opts ServiceOpts) *Monitor {
	if opts.Reading != nil {
		m.Reading = opts.Reading
	}
	if opts.Threshold != nil {
		m.Threshold = opts.Threshold
	}
	if opts.Alert != nil {
		m.Alert = opts.Alert
	}
	if opts.History != nil {
		m.History = opts.History
	}
	return m
}
