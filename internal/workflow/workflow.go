// Package workflow implements the staged deposit/withdraw confirmation: a
// simulated asynchronous submission that validates synchronously, then walks
// idle → processing → success on scheduler timers and fires a confirmation
// callback exactly once per run. There is no failure path once validation
// passes; real settlement sits behind the callback so a future backend can
// introduce one without reshaping the state machine.
package workflow

import (
	"errors"
	"strings"
	"sync"
	"time"

	"cryptowallet/internal/money"
	"cryptowallet/internal/sched"
	"cryptowallet/internal/validator"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	Deposit  Kind = "deposit"
	Withdraw Kind = "withdraw"
)

type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
	StateSuccess    State = "success"
)

var (
	ErrInvalidAmount       = errors.New("Please enter a valid amount")
	ErrInsufficientBalance = errors.New("Insufficient balance")
	ErrMissingAddress      = errors.New("Please enter a wallet address")
	ErrBusy                = errors.New("a submission is already in progress")
)

// ConfirmFunc receives the validated submission after the success state has
// been displayed for its full delay, strictly before the workflow resets.
type ConfirmFunc func(kind Kind, amount decimal.Decimal, address string)

type Workflow struct {
	mu              sync.Mutex
	scheduler       sched.Scheduler
	processingDelay time.Duration
	successDelay    time.Duration
	balance         func() decimal.Decimal
	confirm         ConfirmFunc

	state   State
	kind    Kind
	amount  decimal.Decimal
	address string
	cancel  sched.CancelFunc
	run     uint64
}

func New(scheduler sched.Scheduler, processingDelay, successDelay time.Duration, balance func() decimal.Decimal, confirm ConfirmFunc) *Workflow {
	return &Workflow{
		scheduler:       scheduler,
		processingDelay: processingDelay,
		successDelay:    successDelay,
		balance:         balance,
		confirm:         confirm,
		state:           StateIdle,
	}
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Submit validates the input and, on success, starts the simulated
// submission. Validation failures leave the workflow idle with no state
// change anywhere.
func (w *Workflow) Submit(kind Kind, rawAmount, address string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateIdle {
		return ErrBusy
	}
	amount, err := money.ParsePositive(rawAmount)
	if err != nil {
		return ErrInvalidAmount
	}
	if kind == Withdraw {
		if amount.GreaterThan(w.balance()) {
			return ErrInsufficientBalance
		}
		if err := validator.ValidateAddress(address); err != nil {
			return ErrMissingAddress
		}
	}
	w.state = StateProcessing
	w.kind = kind
	w.amount = amount
	w.address = strings.TrimSpace(address)
	run := w.run
	w.cancel = w.scheduler.AfterFunc(w.processingDelay, func() { w.succeed(run) })
	return nil
}

func (w *Workflow) succeed(run uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if run != w.run || w.state != StateProcessing {
		return
	}
	w.state = StateSuccess
	w.cancel = w.scheduler.AfterFunc(w.successDelay, func() { w.finish(run) })
}

func (w *Workflow) finish(run uint64) {
	w.mu.Lock()
	if run != w.run || w.state != StateSuccess {
		w.mu.Unlock()
		return
	}
	kind, amount, address := w.kind, w.amount, w.address
	confirm := w.confirm
	w.mu.Unlock()
	// The workflow is modal, so no second submission can interleave here:
	// state is still success, which blocks Submit until the reset below.
	confirm(kind, amount, address)
	w.mu.Lock()
	if run == w.run {
		w.resetLocked()
	}
	w.mu.Unlock()
}

// Close is the user-facing cancel affordance. It is only available while
// idle; once submitted there is no cancellation.
func (w *Workflow) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateIdle {
		return ErrBusy
	}
	return nil
}

// Teardown cancels any armed timer and resets, regardless of state. Used
// when the owning session is destroyed.
func (w *Workflow) Teardown() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		w.cancel()
	}
	w.resetLocked()
}

func (w *Workflow) resetLocked() {
	w.run++
	w.state = StateIdle
	w.kind = ""
	w.amount = decimal.Zero
	w.address = ""
	w.cancel = nil
}
