package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"diving-backend/src/enrich"
	"diving-backend/src/storage"
)

const (
	fishIDParam = "id"

	fishRoute     = "/api/fish"
	fishByIDRoute = fishRoute + "/:" + fishIDParam
)

func RegisterFishRoutes(router *Router) {
	router.routes.GET(fishRoute, router.GetFishList)
	router.routes.GET(fishByIDRoute, router.GetFishByID)
}

// @Summary Get fish
// @Description Get all fish with their latest sighting and the temperature correlation for it.
// @Produce json
// @Success 200 {array} Fish
// @Failure 500 {object} ErrorResponse "error message"
// @Router /api/fish [get]
func (r *Router) GetFishList(context *gin.Context) {
	records, err := r.storage.ListFish()
	if err != nil {
		log.WithError(err).Error("list fish")
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch fish"})
		return
	}

	readings, err := r.sensorReadings(context)
	if err != nil {
		log.WithError(err).Error("list sensor readings")
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch fish"})
		return
	}

	fishList := make([]*Fish, 0, len(records))
	for _, record := range records {
		fish, err := r.buildFish(record, readings)
		if err != nil {
			log.WithError(err).WithField("fish", record.Name).Error("build fish response")
			context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch fish"})
			return
		}

		fishList = append(fishList, fish)
	}

	context.JSON(http.StatusOK, fishList)
}

// @Summary Get a single fish
// @Description Get one fish by id with its full sighting history, newest first.
// @Produce json
// @Param id path int true "Fish id"
// @Success 200 {object} FishDetail
// @Failure 400 {object} ErrorResponse "error message"
// @Failure 404 {object} ErrorResponse "error message"
// @Failure 500 {object} ErrorResponse "error message"
// @Router /api/fish/{id} [get]
func (r *Router) GetFishByID(context *gin.Context) {
	id, err := strconv.ParseUint(context.Param(fishIDParam), 10, 64)
	if err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid fish id"})
		return
	}

	record, err := r.storage.GetFish(uint(id))
	if err != nil {
		if errors.Is(err, storage.ErrFishNotFound) {
			context.JSON(http.StatusNotFound, ErrorResponse{Error: "Fish not found"})
			return
		}

		log.WithError(err).Error("get fish")
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch fish"})
		return
	}

	readings, err := r.sensorReadings(context)
	if err != nil {
		log.WithError(err).Error("list sensor readings")
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch fish"})
		return
	}

	fish, err := r.buildFish(record, readings)
	if err != nil {
		log.WithError(err).WithField("fish", record.Name).Error("build fish response")
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch fish"})
		return
	}

	history, err := r.storage.SightingHistory(record.ID)
	if err != nil {
		log.WithError(err).Error("sighting history")
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch fish"})
		return
	}

	detail := &FishDetail{
		Fish:      *fish,
		Sightings: make([]*Sighting, 0, len(history)),
	}

	preferred := enrich.PreferredRange(record.Name, record.Rarity)
	for i, sighting := range history {
		// The correlation describes current conditions, so only the
		// newest sighting carries one.
		withCorrelation := i == 0
		detail.Sightings = append(detail.Sightings, toSighting(sighting, readings, preferred, withCorrelation))
	}

	context.JSON(http.StatusOK, detail)
}

func (r *Router) buildFish(record *storage.Fish, readings []enrich.SensorReading) (*Fish, error) {
	preferred := enrich.PreferredRange(record.Name, record.Rarity)

	fish := &Fish{
		ID:       record.ID,
		Name:     record.Name,
		ImageURL: record.ImageURL,
		Rarity:   string(record.Rarity),
		LengthCm: record.LengthCm,
		WeightKg: record.WeightKg,

		PreferredTemperatureMin: preferred.Min,
		PreferredTemperatureMax: preferred.Max,
	}

	latest, err := r.storage.LatestSighting(record.ID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		fish.LatestSighting = toSighting(latest, readings, preferred, true)
	}

	return fish, nil
}

func (r *Router) sensorReadings(ctx context.Context) ([]enrich.SensorReading, error) {
	sensors, err := r.storage.ListSensors()
	if err != nil {
		return nil, err
	}

	readings := make([]enrich.SensorReading, 0, len(sensors))
	for _, sensor := range sensors {
		latest, err := r.storage.LatestReading(ctx, sensor.ID)
		if err != nil {
			return nil, err
		}

		readings = append(readings, enrich.SensorReading{
			Sensor: sensor,
			Latest: latest,
		})
	}

	return readings, nil
}

func toSighting(record *storage.FishSighting, readings []enrich.SensorReading, preferred enrich.Range, withCorrelation bool) *Sighting {
	sighting := &Sighting{
		ID:        record.ID,
		Latitude:  record.Latitude,
		Longitude: record.Longitude,
		SightedAt: record.SightedAt,
	}

	if !withCorrelation {
		return sighting
	}

	if corr := enrich.Correlate(record.Latitude, record.Longitude, readings, preferred); corr != nil {
		sighting.TemperatureCorrelation = &TemperatureCorrelation{
			SensorName:           corr.SensorName,
			Temperature:          corr.Temperature,
			MeasuredAt:           corr.MeasuredAt,
			WithinPreferredRange: corr.WithinPreferredRange,
		}
	}

	return sighting
}
