// Package seed replaces the reference data wholesale. It is run as an
// offline maintenance step, never by the live service.
package seed

import (
	"strings"

	"github.com/apex/log"

	"diving-backend/src/storage"
)

func DefaultDivingCenters() []*storage.DivingCenter {
	return []*storage.DivingCenter{
		{Name: "Marsa Shagra Village", Latitude: 25.2485, Longitude: 34.7967},
		{Name: "Abu Dabbab Diving Lodge", Latitude: 25.3392, Longitude: 34.7360},
		{Name: "Elphinstone Reef Base", Latitude: 25.3120, Longitude: 34.8590},
		{Name: "Sha'ab Samadai Center", Latitude: 24.9896, Longitude: 34.9903},
		{Name: "Daedalus Liveaboard Dock", Latitude: 24.9320, Longitude: 35.0680},
	}
}

func DefaultFish() []*storage.Fish {
	return []*storage.Fish{
		{Name: "Clownfish", ImageURL: "/images/clownfish.jpg", Rarity: storage.RarityCommon, LengthCm: 9, WeightKg: 0.2},
		{Name: "Parrotfish", ImageURL: "/images/parrotfish.jpg", Rarity: storage.RarityCommon, LengthCm: 35, WeightKg: 1.2},
		{Name: "Lionfish", ImageURL: "/images/lionfish.jpg", Rarity: storage.RarityCommon, LengthCm: 30, WeightKg: 1},
		{Name: "Barracuda", ImageURL: "/images/barracuda.jpg", Rarity: storage.RarityCommon, LengthCm: 90, WeightKg: 5},
		{Name: "Moray Eel", ImageURL: "/images/moray-eel.jpg", Rarity: storage.RarityRare, LengthCm: 150, WeightKg: 10},
		{Name: "Napoleon Wrasse", ImageURL: "/images/napoleon-wrasse.jpg", Rarity: storage.RarityRare, LengthCm: 180, WeightKg: 80},
		{Name: "Hawksbill Turtle", ImageURL: "/images/hawksbill-turtle.jpg", Rarity: storage.RarityRare, LengthCm: 80, WeightKg: 60},
		{Name: "Manta Ray", ImageURL: "/images/manta-ray.jpg", Rarity: storage.RarityEpic, LengthCm: 400, WeightKg: 1300},
		{Name: "Whale Shark", ImageURL: "/images/whale-shark.jpg", Rarity: storage.RarityEpic, LengthCm: 900, WeightKg: 9000},
		{Name: "Dugong", ImageURL: "/images/dugong.jpg", Rarity: storage.RarityEpic, LengthCm: 300, WeightKg: 400},
	}
}

func DefaultSensors() []*storage.Sensor {
	return []*storage.Sensor{
		{Name: "Marsa Shagra North Buoy", Latitude: 25.2530, Longitude: 34.8010},
		{Name: "Abu Dabbab Bay", Latitude: 25.3370, Longitude: 34.7420},
		{Name: "Elphinstone Plateau", Latitude: 25.3100, Longitude: 34.8610},
		{Name: "Samadai Lagoon", Latitude: 24.9910, Longitude: 34.9880},
	}
}

// Reseed wipes and reloads the built-in reference data.
func Reseed(s *storage.Storage) error {
	return s.Reseed(DefaultDivingCenters(), DefaultFish(), DefaultSensors())
}

// ReseedWithScrapedSpecies additionally appends species scraped from
// oceana.org as untiered fish. A scrape failure degrades to the built-in
// list only.
func ReseedWithScrapedSpecies(s *storage.Storage) error {
	fish := DefaultFish()

	known := make(map[string]struct{}, len(fish))
	for _, f := range fish {
		known[strings.ToLower(f.Name)] = struct{}{}
	}

	names, err := FetchSpeciesNames()
	if err != nil {
		log.WithError(err).Warn("species scrape failed, seeding built-in list only")
	}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := known[strings.ToLower(name)]; ok {
			continue
		}

		known[strings.ToLower(name)] = struct{}{}
		fish = append(fish, &storage.Fish{Name: name})
	}

	return s.Reseed(DefaultDivingCenters(), fish, DefaultSensors())
}
