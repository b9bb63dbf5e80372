package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const latestReadingTTL = 10 * time.Second

var ErrFishNotFound = errors.New("fish not found")

type Storage struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewStorage(opts ...Option) (*Storage, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	var (
		db  *gorm.DB
		err error
	)
	if options.dialector != nil {
		db, err = gorm.Open(options.dialector, &gorm.Config{})
	} else {
		db, err = connectToDb(options)
	}
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&DivingCenter{}, &Fish{}, &FishSighting{}, &Sensor{}, &Reading{})
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	if options.redisAddress != "" {
		redisClient, err = connectToRedis(options)
		if err != nil {
			return nil, err
		}
	}

	return &Storage{
		db:    db,
		redis: redisClient,
	}, nil
}

func (s *Storage) Close() error {
	if s.redis != nil {
		s.redis.Close()
	}

	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func (s *Storage) ListDivingCenters() ([]*DivingCenter, error) {
	var centers []*DivingCenter
	res := s.db.Order("id").Find(&centers)
	if res.Error != nil {
		return nil, res.Error
	}

	return centers, nil
}

func (s *Storage) ListFish() ([]*Fish, error) {
	var fish []*Fish
	res := s.db.Order("id").Find(&fish)
	if res.Error != nil {
		return nil, res.Error
	}

	return fish, nil
}

func (s *Storage) ListFishByRarities(rarities ...Rarity) ([]*Fish, error) {
	var fish []*Fish
	res := s.db.Where("rarity IN ?", rarities).Order("id").Find(&fish)
	if res.Error != nil {
		return nil, res.Error
	}

	return fish, nil
}

func (s *Storage) GetFish(id uint) (*Fish, error) {
	var fish Fish
	res := s.db.First(&fish, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, ErrFishNotFound
		}

		return nil, res.Error
	}

	return &fish, nil
}

// LatestSighting returns nil without an error when the fish has never been
// sighted.
func (s *Storage) LatestSighting(fishID uint) (*FishSighting, error) {
	var sighting FishSighting
	res := s.db.Where("fish_id = ?", fishID).
		Order("sighted_at DESC, id DESC").
		First(&sighting)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, res.Error
	}

	return &sighting, nil
}

func (s *Storage) SightingHistory(fishID uint, opts ...ConditionOption) ([]*FishSighting, error) {
	var sightings []*FishSighting
	tx := s.db.Where("fish_id = ?", fishID).Order("sighted_at DESC, id DESC")

	for _, opt := range opts {
		opt(SightingTable, "sighted_at", tx)
	}

	res := tx.Find(&sightings)
	if res.Error != nil {
		return nil, res.Error
	}

	return sightings, nil
}

func (s *Storage) CountSightings(fishID uint) (int64, error) {
	var count int64
	res := s.db.Model(&FishSighting{}).Where("fish_id = ?", fishID).Count(&count)
	if res.Error != nil {
		return 0, res.Error
	}

	return count, nil
}

// RotateSighting removes the fish's oldest sighting, if it has one, and
// records a new one at the given point, in a single transaction. A reader can
// never observe the fish with its old sighting gone and the new one missing.
func (s *Storage) RotateSighting(fishID uint, lat, lon float64, at time.Time) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var oldest FishSighting
		res := tx.Where("fish_id = ?", fishID).
			Order("sighted_at ASC, id ASC").
			First(&oldest)
		if res.Error != nil && !errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return res.Error
		}

		if res.Error == nil {
			// Hard delete: rotation would otherwise grow the table on
			// every tick.
			if err := tx.Unscoped().Delete(&oldest).Error; err != nil {
				return err
			}
		}

		return tx.Create(&FishSighting{
			FishID:    fishID,
			Latitude:  lat,
			Longitude: lon,
			SightedAt: at,
		}).Error
	})
}

func (s *Storage) ListSensors() ([]*Sensor, error) {
	var sensors []*Sensor
	res := s.db.Order("id").Find(&sensors)
	if res.Error != nil {
		return nil, res.Error
	}

	return sensors, nil
}

// LatestReading returns nil without an error when the sensor has no readings
// yet. Results are cached in redis for a few seconds when a cache is
// configured.
func (s *Storage) LatestReading(ctx context.Context, sensorID uint) (*Reading, error) {
	key := latestReadingKey(sensorID)
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, key).Result()
		if err == nil {
			var reading Reading
			if err = json.Unmarshal([]byte(cached), &reading); err == nil {
				return &reading, nil
			}
		}
	}

	var reading Reading
	res := s.db.Where("sensor_id = ?", sensorID).
		Order("measured_at DESC, id DESC").
		First(&reading)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, res.Error
	}

	if s.redis != nil {
		if raw, err := json.Marshal(&reading); err == nil {
			s.redis.Set(ctx, key, raw, latestReadingTTL)
		}
	}

	return &reading, nil
}

func (s *Storage) CreateDivingCenter(center *DivingCenter) error {
	return s.db.Create(center).Error
}

func (s *Storage) CreateFish(fish *Fish) error {
	return s.db.Create(fish).Error
}

func (s *Storage) CreateSighting(sighting *FishSighting) error {
	return s.db.Create(sighting).Error
}

func (s *Storage) CreateSensor(sensor *Sensor) error {
	return s.db.Create(sensor).Error
}

func (s *Storage) CreateReading(reading *Reading) error {
	return s.db.Create(reading).Error
}

// Reseed wipes all reference data and replaces it wholesale. Sightings and
// readings go first so the restrict foreign keys never fire. This is an
// offline maintenance operation, never called from the live service.
func (s *Storage) Reseed(centers []*DivingCenter, fish []*Fish, sensors []*Sensor) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&FishSighting{}, &Fish{}, &DivingCenter{}, &Reading{}, &Sensor{},
		} {
			wipe := tx.Unscoped().Session(&gorm.Session{AllowGlobalUpdate: true})
			if err := wipe.Delete(model).Error; err != nil {
				return err
			}
		}

		if len(centers) > 0 {
			if err := tx.Create(centers).Error; err != nil {
				return err
			}
		}
		if len(fish) > 0 {
			if err := tx.Create(fish).Error; err != nil {
				return err
			}
		}
		if len(sensors) > 0 {
			if err := tx.Create(sensors).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func latestReadingKey(sensorID uint) string {
	return fmt.Sprintf("latestReading:%d", sensorID)
}

func connectToDb(options *Options) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s sslmode=disable",
		options.dbHost,
		options.dbPort,
		options.dbUser,
		options.dbPassword,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	var dbExists bool
	db.Raw("SELECT EXISTS (SELECT datname FROM pg_database WHERE datname = ?)", options.dbName).Scan(&dbExists)
	if !dbExists {
		db.Exec("CREATE DATABASE " + options.dbName)
	}

	if sqlDb, err := db.DB(); err == nil {
		sqlDb.Close()
	}

	return gorm.Open(postgres.Open(dsn+" dbname="+options.dbName), &gorm.Config{})
}

func connectToRedis(options *Options) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{Addr: options.redisAddress})
	_, err := redisClient.Ping(context.Background()).Result()
	if err != nil {
		return nil, err
	}

	return redisClient, nil
}
