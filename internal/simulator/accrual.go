package simulator

import (
	"context"
	"sync"
	"time"

	"cryptowallet/internal/models"
	"cryptowallet/internal/sched"
	"cryptowallet/internal/store"

	"github.com/shopspring/decimal"
)

// AccrualIncrement is added to both balance and total earnings on every tick
// that finds at least one active plan.
var AccrualIncrement = decimal.RequireFromString("0.05")

// accrualCurrency matches the seeded earn history entries.
const accrualCurrency = "USDT"

// AccrualSimulator models passive yield from active earning plans. Each
// accruing tick also appends a completed earn transaction so the ledger and
// the wallet aggregate agree.
type AccrualSimulator struct {
	wallet    *store.WalletStore
	plans     *store.PlanStore
	ledger    *store.LedgerStore
	scheduler sched.Scheduler
	interval  time.Duration
	broadcast func(balance, totalEarnings decimal.Decimal)
	stopCh    chan struct{}
	stopOnce  sync.Once
}

func NewAccrual(wallet *store.WalletStore, plans *store.PlanStore, ledger *store.LedgerStore, scheduler sched.Scheduler, interval time.Duration, broadcast func(balance, totalEarnings decimal.Decimal)) *AccrualSimulator {
	return &AccrualSimulator{
		wallet:    wallet,
		plans:     plans,
		ledger:    ledger,
		scheduler: scheduler,
		interval:  interval,
		broadcast: broadcast,
		stopCh:    make(chan struct{}),
	}
}

func (a *AccrualSimulator) Run(ctx context.Context) {
	ticker := a.scheduler.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-a.stopCh:
			return
		case <-ticker.C():
			// a tick and a stop can be ready at once; never step after stop
			select {
			case <-ctx.Done():
				return
			case <-a.stopCh:
				return
			default:
			}
			a.Step()
		}
	}
}

func (a *AccrualSimulator) Stop() {
	a.stopOnce.Do(func() { close(a.stopCh) })
}

// Step accrues one increment if any plan is active, otherwise does nothing.
func (a *AccrualSimulator) Step() {
	if !a.plans.HasActive() {
		return
	}
	balance, totalEarnings := a.wallet.Accrue(AccrualIncrement)
	a.ledger.Append(models.TxEarn, AccrualIncrement, accrualCurrency, models.StatusCompleted, a.scheduler.Now())
	if a.broadcast != nil {
		a.broadcast(balance, totalEarnings)
	}
}
