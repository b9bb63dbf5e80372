// Package enrich correlates fish sightings with nearby temperature-sensor
// readings.
package enrich

import (
	"time"

	"diving-backend/src/storage"
)

// SensorReading pairs a sensor with its latest reading. Latest is nil when
// the sensor has not reported yet.
type SensorReading struct {
	Sensor *storage.Sensor
	Latest *storage.Reading
}

// Correlation describes the conditions at the sensor nearest to a sighting.
type Correlation struct {
	SensorName           string
	Temperature          float64
	MeasuredAt           time.Time
	WithinPreferredRange bool
}

// Correlate finds the nearest sensor that actually has a reading and checks
// its latest temperature against the preferred range. Returns nil when no
// sensor has reported, so callers can pass the absence straight through to
// the API as a null field.
func Correlate(lat, lng float64, readings []SensorReading, preferred Range) *Correlation {
	sensors := make([]*storage.Sensor, 0, len(readings))
	byID := make(map[uint]*storage.Reading, len(readings))

	for _, sr := range readings {
		if sr.Sensor == nil || sr.Latest == nil {
			continue
		}

		sensors = append(sensors, sr.Sensor)
		byID[sr.Sensor.ID] = sr.Latest
	}

	nearest, ok := NearestSensor(lat, lng, sensors)
	if !ok {
		return nil
	}

	latest := byID[nearest.ID]

	return &Correlation{
		SensorName:           nearest.Name,
		Temperature:          latest.Temperature,
		MeasuredAt:           latest.MeasuredAt,
		WithinPreferredRange: preferred.Contains(latest.Temperature),
	}
}
