// Package simulator holds the session-scoped background loops that stand in
// for a real price feed and yield engine. Both run only while a session is
// alive and stop cleanly on teardown.
package simulator

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"cryptowallet/internal/models"
	"cryptowallet/internal/sched"
	"cryptowallet/internal/store"

	"github.com/shopspring/decimal"
)

// Volatility is the multiplicative half-width of a single price step: each
// tick multiplies the price by 1 + U(-Volatility, Volatility).
const Volatility = 0.002

// changeDrift is the additive half-width applied to the 24h change figure.
const changeDrift = 0.05

// MarketSimulator nudges every tracked asset on a fixed interval. Prices are
// an unbounded random walk; no floor or ceiling is applied.
type MarketSimulator struct {
	assets    *store.AssetStore
	scheduler sched.Scheduler
	interval  time.Duration
	rng       *rand.Rand
	broadcast func([]models.Asset)
	stopCh    chan struct{}
	stopOnce  sync.Once
}

func NewMarket(assets *store.AssetStore, scheduler sched.Scheduler, interval time.Duration, rng *rand.Rand, broadcast func([]models.Asset)) *MarketSimulator {
	return &MarketSimulator{
		assets:    assets,
		scheduler: scheduler,
		interval:  interval,
		rng:       rng,
		broadcast: broadcast,
		stopCh:    make(chan struct{}),
	}
}

// Run loops until the context is cancelled or Stop is called. It is meant to
// run on its own goroutine.
func (m *MarketSimulator) Run(ctx context.Context) {
	ticker := m.scheduler.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopCh:
			return
		case <-ticker.C():
			// a tick and a stop can be ready at once; never step after stop
			select {
			case <-ctx.Done():
				return
			case <-m.stopCh:
				return
			default:
			}
			m.Step()
		}
	}
}

func (m *MarketSimulator) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// Step applies one tick to every asset independently.
func (m *MarketSimulator) Step() {
	m.assets.UpdateEach(func(asset models.Asset) models.Asset {
		factor := 1 + (m.rng.Float64()*2-1)*Volatility
		drift := (m.rng.Float64()*2 - 1) * changeDrift
		asset.Price = asset.Price.Mul(decimal.NewFromFloat(factor))
		asset.Change24h = asset.Change24h.Add(decimal.NewFromFloat(drift))
		return asset
	})
	if m.broadcast != nil {
		m.broadcast(m.assets.List())
	}
}
