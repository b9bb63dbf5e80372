// Package rotator periodically refreshes fish sightings to simulate live
// movement: each tick deletes a fish's oldest sighting and records a fresh
// one at a random point near the home reef.
package rotator

import (
	"math/rand"
	"sync"
	"time"

	"github.com/apex/log"

	"diving-backend/src/geo"
	"diving-backend/src/storage"
)

type Rotator struct {
	rules   *rotationRules
	storage *storage.Storage

	// tickLock serializes ticks across both tiers so two ticks can never
	// rotate the same fish concurrently. A tick that fires while the
	// previous one is still running simply waits its turn.
	tickLock sync.Mutex

	done chan struct{}
	wg   sync.WaitGroup
}

func New(s *storage.Storage, opts ...Option) *Rotator {
	rules := defaultRotationRules()
	for _, opt := range opts {
		opt(rules)
	}

	return &Rotator{
		rules:   rules,
		storage: s,
		done:    make(chan struct{}),
	}
}

// Start launches one ticker per rarity tier. Common and untiered fish
// rotate on the short interval, rare and epic fish on the long one.
func (r *Rotator) Start() {
	r.wg.Add(2)
	go r.loop(r.rules.commonInterval, r.TickCommon)
	go r.loop(r.rules.rareInterval, r.TickRare)
}

// Stop halts both tickers and waits for any in-flight tick to finish.
func (r *Rotator) Stop() {
	close(r.done)
	r.wg.Wait()
}

func (r *Rotator) loop(interval time.Duration, tick func()) {
	defer r.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			tick()
		}
	}
}

// TickCommon refreshes a uniform-random count (1..n) of common and untiered
// fish.
func (r *Rotator) TickCommon() {
	r.tick("common", []storage.Rarity{storage.RarityCommon, storage.RarityNone}, pickUniform)
}

// TickRare gives rare and epic fish each an independent coin flip: either
// one of them rotates this tick or none does.
func (r *Rotator) TickRare() {
	r.tick("rare", []storage.Rarity{storage.RarityRare}, pickCoinFlip)
	r.tick("epic", []storage.Rarity{storage.RarityEpic}, pickCoinFlip)
}

func (r *Rotator) tick(tier string, rarities []storage.Rarity, pick func(*rand.Rand, int) int) {
	r.tickLock.Lock()
	defer r.tickLock.Unlock()

	started := time.Now()

	candidates, err := r.storage.ListFishByRarities(rarities...)
	if err != nil {
		log.WithError(err).WithField("tier", tier).Error("rotation tick: fetch candidates")
		return
	}
	if len(candidates) == 0 {
		return
	}

	count := pick(r.rules.rng, len(candidates))
	refreshed := 0
	for _, i := range pickIndexes(r.rules.rng, len(candidates), count) {
		fish := candidates[i]
		p := geo.RandomPointInDisc(r.rules.rng, r.rules.homePoint, r.rules.radiusKm)

		// A failed fish is logged and skipped; the rest of the tick
		// proceeds and the next tick retries naturally.
		if err := r.storage.RotateSighting(fish.ID, p.Lat, p.Lng, time.Now()); err != nil {
			log.WithError(err).WithField("fish", fish.Name).Error("rotation tick: rotate sighting")
			continue
		}
		refreshed++
	}

	log.WithFields(log.Fields{
		"tier":       tier,
		"refreshed":  refreshed,
		"candidates": len(candidates),
		"took":       time.Since(started).String(),
	}).Info("rotation tick complete")
}

// pickIndexes selects count distinct indexes out of n via a Fisher-Yates
// shuffle over an explicit index array, then takes the prefix.
func pickIndexes(rng *rand.Rand, n, count int) []int {
	if count > n {
		count = n
	}
	if count <= 0 {
		return nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:count]
}

func pickUniform(rng *rand.Rand, n int) int {
	return 1 + rng.Intn(n)
}

func pickCoinFlip(rng *rand.Rand, n int) int {
	return rng.Intn(2)
}
