package rotator

import (
	"math/rand"
	"time"

	"diving-backend/src/geo"
)

const (
	defaultCommonInterval = 30 * time.Second
	defaultRareInterval   = 2 * time.Minute

	defaultRadiusKm = 40
)

// Default home point: the reef area off Marsa Alam the seed data is placed
// around.
var defaultHomePoint = geo.NewPoint(25.067, 34.893)

type rotationRules struct {
	commonInterval time.Duration
	rareInterval   time.Duration

	homePoint geo.Point
	radiusKm  float64

	rng *rand.Rand
}

func defaultRotationRules() *rotationRules {
	return &rotationRules{
		commonInterval: defaultCommonInterval,
		rareInterval:   defaultRareInterval,
		homePoint:      defaultHomePoint,
		radiusKm:       defaultRadiusKm,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type Option func(rules *rotationRules)

func WithCommonInterval(d time.Duration) Option {
	return func(rules *rotationRules) {
		if d > 0 {
			rules.commonInterval = d
		}
	}
}

func WithRareInterval(d time.Duration) Option {
	return func(rules *rotationRules) {
		if d > 0 {
			rules.rareInterval = d
		}
	}
}

func WithHomePoint(p geo.Point) Option {
	return func(rules *rotationRules) {
		rules.homePoint = p
	}
}

func WithRadiusKm(r float64) Option {
	return func(rules *rotationRules) {
		if r >= 0 {
			rules.radiusKm = r
		}
	}
}

// WithRand pins the randomness source; tests use it for determinism.
func WithRand(rng *rand.Rand) Option {
	return func(rules *rotationRules) {
		if rng != nil {
			rules.rng = rng
		}
	}
}
