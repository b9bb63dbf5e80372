package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
)

func TestStorageTestSuite(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

type StorageTestSuite struct {
	suite.Suite
	storage *Storage
}

func (s *StorageTestSuite) SetupTest() {
	storage, err := NewStorage(
		WithDialector(sqlite.Open(filepath.Join(s.T().TempDir(), "test.db"))),
	)
	s.Require().NoError(err, err)

	s.storage = storage
}

func (s *StorageTestSuite) TearDownTest() {
	err := s.storage.Close()
	s.NoError(err, err)
}

func (s *StorageTestSuite) createFish(name string, rarity Rarity) *Fish {
	fish := &Fish{Name: name, Rarity: rarity}
	s.Require().NoError(s.storage.CreateFish(fish))

	return fish
}

func (s *StorageTestSuite) TestGetFishNotFound() {
	_, err := s.storage.GetFish(12345)
	s.ErrorIs(err, ErrFishNotFound)
}

func (s *StorageTestSuite) TestListFishByRarities() {
	s.createFish("Clownfish", RarityCommon)
	s.createFish("Sardine", RarityNone)
	s.createFish("Manta Ray", RarityEpic)

	common, err := s.storage.ListFishByRarities(RarityCommon, RarityNone)
	s.Require().NoError(err, err)
	s.Require().Len(common, 2)
	s.Equal("Clownfish", common[0].Name)
	s.Equal("Sardine", common[1].Name)

	epic, err := s.storage.ListFishByRarities(RarityEpic)
	s.Require().NoError(err, err)
	s.Require().Len(epic, 1)
	s.Equal("Manta Ray", epic[0].Name)
}

func (s *StorageTestSuite) TestLatestSightingNone() {
	fish := s.createFish("Lionfish", RarityCommon)

	latest, err := s.storage.LatestSighting(fish.ID)
	s.Require().NoError(err, err)
	s.Nil(latest)
}

func (s *StorageTestSuite) TestRotateSightingFromEmpty() {
	fish := s.createFish("Lionfish", RarityCommon)

	at := time.Now().Truncate(time.Second)
	err := s.storage.RotateSighting(fish.ID, 25.1, 34.9, at)
	s.Require().NoError(err, err)

	count, err := s.storage.CountSightings(fish.ID)
	s.Require().NoError(err, err)
	s.Equal(int64(1), count)

	latest, err := s.storage.LatestSighting(fish.ID)
	s.Require().NoError(err, err)
	s.Require().NotNil(latest)
	s.Equal(25.1, latest.Latitude)
	s.Equal(34.9, latest.Longitude)
}

func (s *StorageTestSuite) TestRotateSightingReplacesOldest() {
	fish := s.createFish("Barracuda", RarityCommon)

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	oldest := &FishSighting{FishID: fish.ID, Latitude: 25, Longitude: 34.8, SightedAt: base}
	newer := &FishSighting{FishID: fish.ID, Latitude: 25.2, Longitude: 34.9, SightedAt: base.Add(time.Minute)}
	s.Require().NoError(s.storage.CreateSighting(oldest))
	s.Require().NoError(s.storage.CreateSighting(newer))

	at := time.Now().Truncate(time.Second)
	err := s.storage.RotateSighting(fish.ID, 25.3, 34.7, at)
	s.Require().NoError(err, err)

	count, err := s.storage.CountSightings(fish.ID)
	s.Require().NoError(err, err)
	s.Equal(int64(2), count)

	history, err := s.storage.SightingHistory(fish.ID)
	s.Require().NoError(err, err)
	s.Require().Len(history, 2)

	// Newest first; the original oldest row is gone.
	s.Equal(at.Unix(), history[0].SightedAt.Unix())
	s.Equal(newer.SightedAt.Unix(), history[1].SightedAt.Unix())
	for _, sighting := range history {
		s.NotEqual(oldest.ID, sighting.ID)
	}
}

func (s *StorageTestSuite) TestSightingHistoryWindow() {
	fish := s.createFish("Moray Eel", RarityRare)

	base := time.Now().Add(-3 * time.Hour).Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := s.storage.CreateSighting(&FishSighting{
			FishID:    fish.ID,
			Latitude:  25,
			Longitude: 34.8,
			SightedAt: base.Add(time.Duration(i) * time.Hour),
		})
		s.Require().NoError(err, err)
	}

	all, err := s.storage.SightingHistory(fish.ID)
	s.Require().NoError(err, err)
	s.Require().Len(all, 3)
	s.True(all[0].SightedAt.After(all[1].SightedAt))
	s.True(all[1].SightedAt.After(all[2].SightedAt))

	window, err := s.storage.SightingHistory(fish.ID,
		WithSightedFrom(base.Add(30*time.Minute)),
		WithSightedTill(base.Add(90*time.Minute)),
	)
	s.Require().NoError(err, err)
	s.Require().Len(window, 1)
	s.Equal(base.Add(time.Hour).Unix(), window[0].SightedAt.Unix())
}

func (s *StorageTestSuite) TestLatestReading() {
	sensor := &Sensor{Name: "Samadai Lagoon", Latitude: 24.99, Longitude: 34.99}
	s.Require().NoError(s.storage.CreateSensor(sensor))

	latest, err := s.storage.LatestReading(context.Background(), sensor.ID)
	s.Require().NoError(err, err)
	s.Nil(latest)

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	for i, temp := range []float64{24.1, 24.5, 23.9} {
		err = s.storage.CreateReading(&Reading{
			SensorID:    sensor.ID,
			Temperature: temp,
			MeasuredAt:  base.Add(time.Duration(i) * time.Minute),
		})
		s.Require().NoError(err, err)
	}

	latest, err = s.storage.LatestReading(context.Background(), sensor.ID)
	s.Require().NoError(err, err)
	s.Require().NotNil(latest)
	s.Equal(23.9, latest.Temperature)
}

func (s *StorageTestSuite) TestReseed() {
	stale := s.createFish("Stale", RarityCommon)
	s.Require().NoError(s.storage.CreateSighting(&FishSighting{FishID: stale.ID, Latitude: 1, Longitude: 1}))
	s.Require().NoError(s.storage.CreateDivingCenter(&DivingCenter{Name: "Old Center"}))

	err := s.storage.Reseed(
		[]*DivingCenter{{Name: "Marsa Shagra Village", Latitude: 25.2485, Longitude: 34.7967}},
		[]*Fish{{Name: "Clownfish", Rarity: RarityCommon}, {Name: "Dugong", Rarity: RarityEpic}},
		[]*Sensor{{Name: "North Buoy", Latitude: 25.25, Longitude: 34.8}},
	)
	s.Require().NoError(err, err)

	centers, err := s.storage.ListDivingCenters()
	s.Require().NoError(err, err)
	s.Require().Len(centers, 1)
	s.Equal("Marsa Shagra Village", centers[0].Name)

	fish, err := s.storage.ListFish()
	s.Require().NoError(err, err)
	s.Require().Len(fish, 2)

	sensors, err := s.storage.ListSensors()
	s.Require().NoError(err, err)
	s.Len(sensors, 1)

	for _, f := range fish {
		count, err := s.storage.CountSightings(f.ID)
		s.Require().NoError(err, err)
		s.Zero(count)
	}
}

func (s *StorageTestSuite) TestParseRarity() {
	for in, want := range map[string]Rarity{
		"":       RarityNone,
		"common": RarityCommon,
		"RARE":   RarityRare,
		"Epic":   RarityEpic,
	} {
		got, ok := ParseRarity(in)
		s.True(ok)
		s.Equal(want, got)
	}

	_, ok := ParseRarity("legendary")
	s.False(ok)
}
