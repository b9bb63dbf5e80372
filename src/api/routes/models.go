package routes

import "time"

// swagger:model
type DivingCenter struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// swagger:model
type TemperatureCorrelation struct {
	SensorName           string    `json:"sensorName"`
	Temperature          float64   `json:"temperature"`
	MeasuredAt           time.Time `json:"measuredAt"`
	WithinPreferredRange bool      `json:"withinPreferredRange"`
}

// swagger:model
type Sighting struct {
	ID        uint      `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	SightedAt time.Time `json:"sightedAt"`

	TemperatureCorrelation *TemperatureCorrelation `json:"temperatureCorrelation"`
}

// swagger:model
type Fish struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Rarity   string  `json:"rarity,omitempty"`
	LengthCm float64 `json:"lengthCm,omitempty"`
	WeightKg float64 `json:"weightKg,omitempty"`

	PreferredTemperatureMin float64 `json:"preferredTemperatureMin"`
	PreferredTemperatureMax float64 `json:"preferredTemperatureMax"`

	LatestSighting *Sighting `json:"latestSighting"`
}

// swagger:model
type FishDetail struct {
	Fish

	Sightings []*Sighting `json:"sightings"`
}

// swagger:model
type Sensor struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	LatestTemperature *float64   `json:"latestTemperature"`
	MeasuredAt        *time.Time `json:"measuredAt"`
}

// swagger:model
type ErrorResponse struct {
	Error string `json:"error"`
}
