package sensor

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"pkmlab.dev/sensor-monitor-service/pkg/db"
	"pkmlab.dev/sensor-monitor-service/pkg/sensor/mocks"
)

func GetMockMonitorWithMemorySqliteDialector(t *testing.T, useMockIReading, useMockIThreshold, useMockIAlert, useMockIHistory bool) (
	*gomock.Controller,
	*Monitor,
	*mocks.MockIReading,
	*mocks.MockIThreshold,
	*mocks.MockIAlert,
	*mocks.MockIHistory,
) {
	ctrl := gomock.NewController(t)

	mockIReading := mocks.NewMockIReading(ctrl)
	mockIThreshold := mocks.NewMockIThreshold(ctrl)
	mockIAlert := mocks.NewMockIAlert(ctrl)
	mockIHistory := mocks.NewMockIHistory(ctrl)

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations

	// snapshot keys are fixed, so wipe whatever an earlier test persisted
	dbInstance.Conn.Exec("DELETE FROM state_blobs")

	monitor := New(*dbInstance, Options{})

	readingService := monitor.GetIReading()
	if useMockIReading {
		readingService = mockIReading
	}

	thresholdService := monitor.GetIThreshold()
	if useMockIThreshold {
		thresholdService = mockIThreshold
	}

	alertService := monitor.GetIAlert()
	if useMockIAlert {
		alertService = mockIAlert
	}

	historyService := monitor.GetIHistory()
	if useMockIHistory {
		historyService = mockIHistory
	}

	monitor.WithServices(ServiceOpts{
		Reading:   readingService,
		Threshold: thresholdService,
		Alert:     alertService,
		History:   historyService,
	})

	return ctrl, monitor, mockIReading, mockIThreshold, mockIAlert, mockIHistory
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
