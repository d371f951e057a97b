package simulator

import (
	"testing"
	"time"

	"cryptowallet/internal/models"
	"cryptowallet/internal/sched"
	"cryptowallet/internal/store"

	"github.com/shopspring/decimal"
)

func newAccrualFixture() (*AccrualSimulator, *store.WalletStore, *store.PlanStore, *store.LedgerStore) {
	wallet := store.NewWalletStore(store.OpeningBalance, store.OpeningEarnings)
	plans := store.NewPlanStore(store.SeedPlans())
	ledger := store.NewLedgerStore(nil)
	manual := sched.NewManual(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewAccrual(wallet, plans, ledger, manual, 5*time.Second, nil), wallet, plans, ledger
}

func TestStepAccruesWhenAnyPlanActive(t *testing.T) {
	accrual, wallet, _, ledger := newAccrualFixture()
	balanceBefore := wallet.Balance()
	earningsBefore := wallet.TotalEarnings()

	accrual.Step()

	if !wallet.Balance().Equal(balanceBefore.Add(AccrualIncrement)) {
		t.Fatalf("expected balance +%s, got %s", AccrualIncrement, wallet.Balance())
	}
	if !wallet.TotalEarnings().Equal(earningsBefore.Add(AccrualIncrement)) {
		t.Fatalf("expected earnings +%s, got %s", AccrualIncrement, wallet.TotalEarnings())
	}
	head, ok := ledger.Head()
	if !ok {
		t.Fatal("expected an earn ledger entry")
	}
	if head.Type != models.TxEarn || head.Status != models.StatusCompleted || !head.Amount.Equal(AccrualIncrement) {
		t.Fatalf("unexpected earn entry: %+v", head)
	}
}

func TestStepIsNoOpWithoutActivePlans(t *testing.T) {
	accrual, wallet, plans, ledger := newAccrualFixture()
	// seed has p1 and p3 active; turn everything off
	if _, err := plans.Toggle("p1"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if _, err := plans.Toggle("p3"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	balanceBefore := wallet.Balance()
	earningsBefore := wallet.TotalEarnings()

	accrual.Step()

	if !wallet.Balance().Equal(balanceBefore) {
		t.Fatalf("balance changed with no active plans: %s", wallet.Balance())
	}
	if !wallet.TotalEarnings().Equal(earningsBefore) {
		t.Fatalf("earnings changed with no active plans: %s", wallet.TotalEarnings())
	}
	if ledger.Len() != 0 {
		t.Fatalf("ledger entry created with no active plans: %d", ledger.Len())
	}
}

func TestToggleOnThenTickAccruesExactlyOneIncrement(t *testing.T) {
	accrual, wallet, plans, _ := newAccrualFixture()
	for _, id := range []string{"p1", "p3"} {
		if _, err := plans.Toggle(id); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
	}
	if _, err := plans.Toggle("p2"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	balanceBefore := wallet.Balance()

	accrual.Step()

	want := balanceBefore.Add(AccrualIncrement)
	if !wallet.Balance().Equal(want) {
		t.Fatalf("expected exactly one increment, got %s (want %s)", wallet.Balance(), want)
	}
}

func TestBroadcastReceivesNewFigures(t *testing.T) {
	wallet := store.NewWalletStore(decimal.NewFromInt(100), decimal.Zero)
	plans := store.NewPlanStore(store.SeedPlans())
	ledger := store.NewLedgerStore(nil)
	manual := sched.NewManual(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	var gotBalance decimal.Decimal
	accrual := NewAccrual(wallet, plans, ledger, manual, 5*time.Second, func(balance, totalEarnings decimal.Decimal) {
		gotBalance = balance
	})
	accrual.Step()
	if !gotBalance.Equal(decimal.RequireFromString("100.05")) {
		t.Fatalf("broadcast got stale balance: %s", gotBalance)
	}
}
