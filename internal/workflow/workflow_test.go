package workflow

import (
	"sync"
	"testing"
	"time"

	"cryptowallet/internal/sched"

	"github.com/shopspring/decimal"
)

type confirmRecorder struct {
	mu    sync.Mutex
	calls []confirmCall
}

type confirmCall struct {
	kind    Kind
	amount  decimal.Decimal
	address string
}

func (r *confirmRecorder) confirm(kind Kind, amount decimal.Decimal, address string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, confirmCall{kind: kind, amount: amount, address: address})
}

func (r *confirmRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func newTestWorkflow(balance string) (*Workflow, *sched.Manual, *confirmRecorder) {
	manual := sched.NewManual(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	recorder := &confirmRecorder{}
	available := decimal.RequireFromString(balance)
	w := New(manual, 2*time.Second, 1500*time.Millisecond, func() decimal.Decimal { return available }, recorder.confirm)
	return w, manual, recorder
}

func TestSubmitRejectsInvalidAmounts(t *testing.T) {
	for _, raw := range []string{"", "   ", "0", "-5", "abc"} {
		w, manual, recorder := newTestWorkflow("1000")
		err := w.Submit(Deposit, raw, "")
		if err != ErrInvalidAmount {
			t.Fatalf("amount %q: expected ErrInvalidAmount, got %v", raw, err)
		}
		if got := w.State(); got != StateIdle {
			t.Fatalf("amount %q: expected idle, got %s", raw, got)
		}
		manual.Advance(time.Minute)
		if recorder.count() != 0 {
			t.Fatalf("amount %q: confirm fired after rejected submit", raw)
		}
	}
}

func TestSubmitAcceptsArbitraryPrecisionAmounts(t *testing.T) {
	w, manual, recorder := newTestWorkflow("1000")
	if err := w.Submit(Deposit, "10.125", ""); err != nil {
		t.Fatalf("valid positive amount 10.125 rejected: %v", err)
	}
	manual.Advance(4 * time.Second)
	if recorder.count() != 1 {
		t.Fatalf("expected one confirm, got %d", recorder.count())
	}
	if !recorder.calls[0].amount.Equal(decimal.RequireFromString("10.125")) {
		t.Fatalf("amount lost precision: %s", recorder.calls[0].amount)
	}
}

func TestWithdrawRejectsInsufficientBalance(t *testing.T) {
	w, manual, recorder := newTestWorkflow("100")
	err := w.Submit(Withdraw, "100.01", "addr1")
	if err != ErrInsufficientBalance {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if got := w.State(); got != StateIdle {
		t.Fatalf("expected idle, got %s", got)
	}
	manual.Advance(time.Minute)
	if recorder.count() != 0 {
		t.Fatal("confirm fired after rejected withdraw")
	}
}

func TestWithdrawRejectsEmptyAddress(t *testing.T) {
	w, _, _ := newTestWorkflow("1000")
	if err := w.Submit(Withdraw, "50", "   "); err != ErrMissingAddress {
		t.Fatalf("expected ErrMissingAddress, got %v", err)
	}
	if got := w.State(); got != StateIdle {
		t.Fatalf("expected idle, got %s", got)
	}
}

func TestWithdrawAtExactBalanceIsAccepted(t *testing.T) {
	w, _, _ := newTestWorkflow("100")
	if err := w.Submit(Withdraw, "100", "addr1"); err != nil {
		t.Fatalf("expected withdraw at exact balance to be accepted, got %v", err)
	}
}

func TestDepositLifecycle(t *testing.T) {
	w, manual, recorder := newTestWorkflow("1000")
	if err := w.Submit(Deposit, "250.50", ""); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if got := w.State(); got != StateProcessing {
		t.Fatalf("expected processing immediately after submit, got %s", got)
	}

	manual.Advance(1999 * time.Millisecond)
	if got := w.State(); got != StateProcessing {
		t.Fatalf("expected processing before delay elapsed, got %s", got)
	}

	manual.Advance(1 * time.Millisecond)
	if got := w.State(); got != StateSuccess {
		t.Fatalf("expected success after processing delay, got %s", got)
	}
	if recorder.count() != 0 {
		t.Fatal("confirm fired before success delay elapsed")
	}

	manual.Advance(1500 * time.Millisecond)
	if recorder.count() != 1 {
		t.Fatalf("expected exactly one confirm, got %d", recorder.count())
	}
	call := recorder.calls[0]
	if call.kind != Deposit || !call.amount.Equal(decimal.RequireFromString("250.50")) {
		t.Fatalf("unexpected confirm call: %+v", call)
	}
	if got := w.State(); got != StateIdle {
		t.Fatalf("expected idle after confirm, got %s", got)
	}
}

func TestConfirmFiresExactlyOncePerRun(t *testing.T) {
	w, manual, recorder := newTestWorkflow("1000")
	if err := w.Submit(Withdraw, "10", "addr1"); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	manual.Advance(time.Hour)
	if recorder.count() != 1 {
		t.Fatalf("expected exactly one confirm, got %d", recorder.count())
	}
}

func TestSecondSubmitWhileRunningIsRejected(t *testing.T) {
	w, manual, _ := newTestWorkflow("1000")
	if err := w.Submit(Deposit, "10", ""); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if err := w.Submit(Deposit, "20", ""); err != ErrBusy {
		t.Fatalf("expected ErrBusy during processing, got %v", err)
	}
	manual.Advance(2 * time.Second)
	if err := w.Submit(Deposit, "20", ""); err != ErrBusy {
		t.Fatalf("expected ErrBusy during success display, got %v", err)
	}
}

func TestCloseOnlyWhileIdle(t *testing.T) {
	w, manual, _ := newTestWorkflow("1000")
	if err := w.Close(); err != nil {
		t.Fatalf("close while idle should succeed, got %v", err)
	}
	if err := w.Submit(Deposit, "10", ""); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if err := w.Close(); err != ErrBusy {
		t.Fatalf("expected ErrBusy while processing, got %v", err)
	}
	manual.Advance(4 * time.Second)
	if err := w.Close(); err != nil {
		t.Fatalf("close after completion should succeed, got %v", err)
	}
}

func TestTeardownCancelsPendingTimers(t *testing.T) {
	w, manual, recorder := newTestWorkflow("1000")
	if err := w.Submit(Withdraw, "10", "addr1"); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	w.Teardown()
	manual.Advance(time.Hour)
	if recorder.count() != 0 {
		t.Fatalf("confirm fired after teardown: %d calls", recorder.count())
	}
	if got := w.State(); got != StateIdle {
		t.Fatalf("expected idle after teardown, got %s", got)
	}
}

func TestWorkflowIsReusableAfterCompletion(t *testing.T) {
	w, manual, recorder := newTestWorkflow("1000")
	for i := 0; i < 3; i++ {
		if err := w.Submit(Deposit, "5", ""); err != nil {
			t.Fatalf("run %d: submit failed: %v", i, err)
		}
		manual.Advance(4 * time.Second)
	}
	if recorder.count() != 3 {
		t.Fatalf("expected three confirms, got %d", recorder.count())
	}
}
