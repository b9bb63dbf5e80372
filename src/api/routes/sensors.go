package routes

import (
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

const sensorsRoute = "/api/sensors"

func RegisterSensorRoutes(router *Router) {
	router.routes.GET(sensorsRoute, router.GetSensors)
}

// @Summary Get temperature sensors
// @Description Get all temperature sensors with their latest reading, when one exists.
// @Produce json
// @Success 200 {array} Sensor
// @Failure 500 {object} ErrorResponse "error message"
// @Router /api/sensors [get]
func (r *Router) GetSensors(context *gin.Context) {
	records, err := r.storage.ListSensors()
	if err != nil {
		log.WithError(err).Error("list sensors")
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch sensors"})
		return
	}

	sensors := make([]*Sensor, 0, len(records))
	for _, record := range records {
		sensor := &Sensor{
			ID:        record.ID,
			Name:      record.Name,
			Latitude:  record.Latitude,
			Longitude: record.Longitude,
		}

		latest, err := r.storage.LatestReading(context, record.ID)
		if err != nil {
			log.WithError(err).WithField("sensor", record.Name).Error("latest reading")
			context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch sensors"})
			return
		}
		if latest != nil {
			sensor.LatestTemperature = &latest.Temperature
			sensor.MeasuredAt = &latest.MeasuredAt
		}

		sensors = append(sensors, sensor)
	}

	context.JSON(http.StatusOK, sensors)
}
