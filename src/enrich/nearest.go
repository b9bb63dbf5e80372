package enrich

import "diving-backend/src/storage"

// NearestSensor scans for the sensor minimizing squared planar distance on
// raw degree values. Sensors sit close enough together that geodesic
// distance would change nothing, so the cheap comparison is intentional.
// Ties go to the sensor encountered first; the tie-break is not unique and
// callers must not rely on it.
func NearestSensor(lat, lng float64, sensors []*storage.Sensor) (*storage.Sensor, bool) {
	var nearest *storage.Sensor
	best := 0.0

	for _, sensor := range sensors {
		d := squaredDistance(lat, lng, sensor.Latitude, sensor.Longitude)
		if nearest == nil || d < best {
			nearest = sensor
			best = d
		}
	}

	return nearest, nearest != nil
}

func squaredDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := lat2 - lat1
	dLng := lng2 - lng1

	return dLat*dLat + dLng*dLng
}
