package store

import (
	"sync"

	"cryptowallet/internal/models"
)

// AssetStore tracks the fixed set of market instruments. The set and every
// symbol are fixed at startup; only prices and 24h change figures mutate.
type AssetStore struct {
	mu     sync.RWMutex
	order  []string
	assets map[string]models.Asset
}

func NewAssetStore(seed []models.Asset) *AssetStore {
	order := make([]string, 0, len(seed))
	assets := make(map[string]models.Asset, len(seed))
	for _, asset := range seed {
		order = append(order, asset.Symbol)
		assets[asset.Symbol] = asset
	}
	return &AssetStore{order: order, assets: assets}
}

// List returns the assets in their seed order.
func (s *AssetStore) List() []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Asset, 0, len(s.order))
	for _, symbol := range s.order {
		out = append(out, s.assets[symbol])
	}
	return out
}

func (s *AssetStore) Get(symbol string) (models.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	asset, ok := s.assets[symbol]
	return asset, ok
}

// UpdateEach applies fn to every asset under the store lock. The symbol is
// restored afterwards so identity cannot change.
func (s *AssetStore) UpdateEach(fn func(models.Asset) models.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, symbol := range s.order {
		updated := fn(s.assets[symbol])
		updated.Symbol = symbol
		s.assets[symbol] = updated
	}
}
