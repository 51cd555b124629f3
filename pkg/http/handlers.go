package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"pkmlab.dev/sensor-monitor-service/pkg/common"
	"pkmlab.dev/sensor-monitor-service/pkg/ingest"
	"pkmlab.dev/sensor-monitor-service/pkg/models"
	"pkmlab.dev/sensor-monitor-service/pkg/sensor"
)

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) GetLatest(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	status := ingest.Status{}
	if rs.Ingest != nil {
		status = rs.Ingest.Status()
	}

	c.JSON(http.StatusOK, gin.H{
		"data":   rs.Core.Reading.Latest(),
		"status": status,
	})
}

func (rs *RestfulServer) GetHistory(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	c.JSON(http.StatusOK, rs.Core.History.Get())
}

func (rs *RestfulServer) GetThresholds(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	c.JSON(http.StatusOK, rs.Core.Threshold.Get())
}

// flexBound accepts the loose bound encodings the dashboard sent: a number,
// a numeric string, an empty string, or null. Anything non-numeric decodes
// to unset rather than an error.
type flexBound struct {
	value *float64
}

func (f *flexBound) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		f.value = &n
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			f.value = &n
		}
		return nil
	}
	return nil
}

type ThresholdRangeRequest struct {
	Min flexBound `json:"min"`
	Max flexBound `json:"max"`
}

func (r *ThresholdRangeRequest) bounds() models.ThresholdRange {
	return models.ThresholdRange{Min: r.Min.value, Max: r.Max.value}
}

type ThresholdsRequest struct {
	Temperature  *ThresholdRangeRequest `json:"temperature"`
	Humidity     *ThresholdRangeRequest `json:"humidity"`
	SoilHumidity *ThresholdRangeRequest `json:"soilHumidity"`
	WindSpeed    *ThresholdRangeRequest `json:"windSpeed"`
}

func (r *ThresholdsRequest) config() models.ThresholdConfig {
	candidate := models.ThresholdConfig{}
	for ch, rangeReq := range map[models.Channel]*ThresholdRangeRequest{
		models.ChannelTemperature:  r.Temperature,
		models.ChannelHumidity:     r.Humidity,
		models.ChannelSoilHumidity: r.SoilHumidity,
		models.ChannelWindSpeed:    r.WindSpeed,
	} {
		if rangeReq != nil {
			candidate[ch] = rangeReq.bounds()
		}
	}
	return candidate
}

func (rs *RestfulServer) UpdateThresholds(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ThresholdsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := rs.Core.Threshold.Update(req.config()); err != nil {
		var ve *sensor.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{"channel": ve.Channel, "reason": ve.Reason},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rs.Core.Threshold.Get())
}

func (rs *RestfulServer) ResetThresholds(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	rs.Core.Threshold.ResetToDefaults()
	c.JSON(http.StatusOK, rs.Core.Threshold.Get())
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	if raw, ok := c.GetQuery("channel"); ok {
		channel := models.Channel(raw)
		if !channel.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown channel: " + raw})
			return
		}
		c.JSON(http.StatusOK, rs.Core.Alert.Query(channel))
		return
	}

	c.JSON(http.StatusOK, rs.Core.Alert.All())
}

func (rs *RestfulServer) GetAlertSummary(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	alerts := rs.Core.Alert.All()

	bySeverity := common.Reducer(alerts,
		func(acc map[models.Severity]int, a models.Alert) map[models.Severity]int {
			acc[a.Severity]++
			return acc
		},
		map[models.Severity]int{},
	)

	byChannel := common.Mapper(models.Channels(), func(ch models.Channel) gin.H {
		return gin.H{"channel": ch, "count": len(rs.Core.Alert.Query(ch))}
	})

	c.JSON(http.StatusOK, gin.H{
		"total":    len(alerts),
		"warning":  bySeverity[models.SeverityWarning],
		"danger":   bySeverity[models.SeverityDanger],
		"channels": byChannel,
	})
}

func (rs *RestfulServer) DismissAlert(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	rs.Core.Alert.Dismiss(c.Param("alert_id"))
	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) ClearAlerts(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	rs.Core.Alert.ClearAll()
	c.Status(http.StatusNoContent)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(c.ClientIP(), req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
