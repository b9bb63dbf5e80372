package storage

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	DivingCenterTable = "diving_centers"
	FishTable         = "fish"
	SightingTable     = "fish_sightings"
	SensorTable       = "sensors"
	ReadingTable      = "readings"
)

// Rarity is a closed set; the empty value means the fish has no tier.
type Rarity string

const (
	RarityNone   Rarity = ""
	RarityCommon Rarity = "COMMON"
	RarityRare   Rarity = "RARE"
	RarityEpic   Rarity = "EPIC"
)

func ParseRarity(s string) (Rarity, bool) {
	switch Rarity(strings.ToUpper(s)) {
	case RarityNone:
		return RarityNone, true
	case RarityCommon:
		return RarityCommon, true
	case RarityRare:
		return RarityRare, true
	case RarityEpic:
		return RarityEpic, true
	}

	return RarityNone, false
}

type DivingCenter struct {
	gorm.Model

	Name      string
	Latitude  float64
	Longitude float64
}

type Fish struct {
	gorm.Model

	Name     string
	ImageURL string
	Rarity   Rarity
	LengthCm float64
	WeightKg float64
}

type FishSighting struct {
	gorm.Model

	FishID uint `gorm:"index"`
	Fish   Fish `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	Latitude  float64
	Longitude float64
	SightedAt time.Time
}

func (s *FishSighting) BeforeCreate(tx *gorm.DB) error {
	if s.SightedAt.IsZero() {
		s.SightedAt = time.Now()
	}

	return nil
}

type Sensor struct {
	gorm.Model

	Name      string
	Latitude  float64
	Longitude float64
}

type Reading struct {
	gorm.Model

	SensorID uint   `gorm:"index"`
	Sensor   Sensor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	Temperature float64
	MeasuredAt  time.Time
}

func (r *Reading) BeforeCreate(tx *gorm.DB) error {
	if r.MeasuredAt.IsZero() {
		r.MeasuredAt = time.Now()
	}

	return nil
}
