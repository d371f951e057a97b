package session

import (
	"context"
	"math/rand"
	"sync"

	"cryptowallet/internal/config"
	"cryptowallet/internal/models"
	"cryptowallet/internal/money"
	"cryptowallet/internal/notify"
	"cryptowallet/internal/sched"
	"cryptowallet/internal/simulator"
	"cryptowallet/internal/store"
	"cryptowallet/internal/websocket"
	"cryptowallet/internal/workflow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Manager is the registry of live sessions, keyed by session id.
type Manager struct {
	mu        sync.RWMutex
	cfg       config.Config
	scheduler sched.Scheduler
	hub       *websocket.Hub
	sessions  map[string]*Session
}

func NewManager(cfg config.Config, scheduler sched.Scheduler, hub *websocket.Hub) *Manager {
	return &Manager{
		cfg:       cfg,
		scheduler: scheduler,
		hub:       hub,
		sessions:  make(map[string]*Session),
	}
}

// Create builds a fresh session for the user: seeded stores, notifier,
// workflow, and both simulators already running.
func (m *Manager) Create(user models.User) *Session {
	id := uuid.NewString()
	s := &Session{
		ID:        id,
		Wallet:    store.NewWalletStore(store.OpeningBalance, store.OpeningEarnings),
		Assets:    store.NewAssetStore(store.SeedAssets()),
		Plans:     store.NewPlanStore(store.SeedPlans()),
		Ledger:    store.NewLedgerStore(store.SeedTransactions()),
		user:      user,
		view:      ViewHome,
		scheduler: m.scheduler,
		hub:       m.hub,
	}
	s.Notifier = notify.New(m.scheduler, m.cfg.ToastDuration, func(n models.Notification) {
		if m.hub != nil {
			m.hub.BroadcastNotification(id, n)
		}
	})
	s.Workflow = workflow.New(m.scheduler, m.cfg.ProcessingDelay, m.cfg.SuccessDelay, s.Wallet.Balance, s.confirm)

	rng := rand.New(rand.NewSource(m.scheduler.Now().UnixNano()))
	s.market = simulator.NewMarket(s.Assets, m.scheduler, m.cfg.MarketInterval, rng, func(assets []models.Asset) {
		if m.hub == nil {
			return
		}
		updates := make([]websocket.PriceUpdate, 0, len(assets))
		for _, asset := range assets {
			updates = append(updates, websocket.PriceUpdate{
				Symbol:    asset.Symbol,
				Price:     money.Format(asset.Price),
				Change24h: asset.Change24h.StringFixed(2),
			})
		}
		m.hub.BroadcastPrices(id, updates)
	})
	s.accrual = simulator.NewAccrual(s.Wallet, s.Plans, s.Ledger, m.scheduler, m.cfg.AccrualInterval, func(balance, totalEarnings decimal.Decimal) {
		s.broadcastWallet()
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.market.Run(ctx)
	go s.accrual.Run(ctx)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Destroy removes the session and tears down all of its scheduled work.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.Close()
	}
}
