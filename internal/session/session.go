// Package session owns all per-login state: the user, the wallet stores,
// the simulators, the action workflow, the notifier and the current view.
// Nothing is ambient or global; handlers receive a *Session resolved from
// the bearer token, and destroying the session tears every timer down.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cryptowallet/internal/auth"
	"cryptowallet/internal/models"
	"cryptowallet/internal/money"
	"cryptowallet/internal/notify"
	"cryptowallet/internal/sched"
	"cryptowallet/internal/simulator"
	"cryptowallet/internal/store"
	"cryptowallet/internal/validator"
	"cryptowallet/internal/websocket"
	"cryptowallet/internal/workflow"

	"github.com/shopspring/decimal"
)

type Session struct {
	ID string

	Wallet   *store.WalletStore
	Assets   *store.AssetStore
	Plans    *store.PlanStore
	Ledger   *store.LedgerStore
	Notifier *notify.Notifier
	Workflow *workflow.Workflow

	mu   sync.RWMutex
	user models.User
	view View

	scheduler sched.Scheduler
	hub       *websocket.Hub
	market    *simulator.MarketSimulator
	accrual   *simulator.AccrualSimulator
	cancel    context.CancelFunc
}

func (s *Session) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// UpdateProfile applies a name/email patch to the active user.
func (s *Session) UpdateProfile(name, email string) (models.User, error) {
	if err := validator.ValidateName(name); err != nil {
		s.Notifier.Show(err.Error(), models.NotifyError)
		return models.User{}, err
	}
	if err := validator.ValidateEmail(email); err != nil {
		s.Notifier.Show(err.Error(), models.NotifyError)
		return models.User{}, err
	}
	s.mu.Lock()
	s.user.Name = name
	s.user.Email = email
	user := s.user
	s.mu.Unlock()
	s.Notifier.Show("Profile updated successfully", models.NotifySuccess)
	return user, nil
}

// ChangePassword validates the new password, rehashes and stores it. The
// old password is accepted unverified; the mock auth layer has nothing to
// check it against.
func (s *Session) ChangePassword(newPassword string) error {
	if err := validator.ValidatePassword(newPassword); err != nil {
		s.Notifier.Show(err.Error(), models.NotifyError)
		return err
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.user.PasswordHash = hash
	s.mu.Unlock()
	s.Notifier.Show("Password updated successfully!", models.NotifySuccess)
	return nil
}

// TogglePlan flips a plan's active flag and notifies.
func (s *Session) TogglePlan(id string) (models.EarningPlan, error) {
	plan, err := s.Plans.Toggle(id)
	if err != nil {
		return models.EarningPlan{}, err
	}
	if plan.Active {
		s.Notifier.Show(fmt.Sprintf("%s activated", plan.Name), models.NotifySuccess)
	} else {
		s.Notifier.Show(fmt.Sprintf("%s deactivated", plan.Name), models.NotifyInfo)
	}
	return plan, nil
}

// SubmitDeposit starts the deposit workflow. Validation errors surface as
// error notifications and leave everything unchanged.
func (s *Session) SubmitDeposit(rawAmount string) error {
	return s.submit(workflow.Deposit, rawAmount, "")
}

// SubmitWithdraw starts the withdraw workflow.
func (s *Session) SubmitWithdraw(rawAmount, address string) error {
	return s.submit(workflow.Withdraw, rawAmount, address)
}

func (s *Session) submit(kind workflow.Kind, rawAmount, address string) error {
	err := s.Workflow.Submit(kind, rawAmount, address)
	if err != nil && err != workflow.ErrBusy {
		s.Notifier.Show(err.Error(), models.NotifyError)
	}
	return err
}

func (s *Session) CurrentView() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *Session) SetView(view View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
}

// Back returns from the profile screen to home. It is a no-op elsewhere;
// every other screen navigates through the bottom navigation instead.
func (s *Session) Back() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == ViewProfile {
		s.view = ViewHome
	}
	return s.view
}

// Close stops both simulators, cancels the workflow's armed timer and the
// notifier's pending auto-dismiss. No state mutation may occur afterwards,
// even from timers that were already pending at teardown.
func (s *Session) Close() {
	s.cancel()
	s.market.Stop()
	s.accrual.Stop()
	s.Workflow.Teardown()
	s.Notifier.Close()
}

// confirm is the workflow's settlement hook. Deposits append a pending
// ledger entry without crediting the balance; nothing is received on the
// mock address, so the entry stays pending forever. Withdrawals re-check
// and decrement the balance, then append.
func (s *Session) confirm(kind workflow.Kind, amount decimal.Decimal, address string) {
	switch kind {
	case workflow.Deposit:
		s.Ledger.Append(models.TxDeposit, amount, s.Wallet.Currency(), models.StatusPending, s.now())
		s.Notifier.Show(fmt.Sprintf("Deposit of $%s submitted", money.Format(amount)), models.NotifySuccess)
	case workflow.Withdraw:
		if _, err := s.Wallet.Withdraw(amount); err != nil {
			return
		}
		s.Ledger.Append(models.TxWithdraw, amount, s.Wallet.Currency(), models.StatusPending, s.now())
		s.Notifier.Show(fmt.Sprintf("Withdrawal of $%s submitted", money.Format(amount)), models.NotifySuccess)
		s.broadcastWallet()
	}
}

func (s *Session) now() time.Time {
	return s.scheduler.Now()
}

func (s *Session) broadcastWallet() {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastWallet(s.ID, websocket.WalletUpdate{
		Balance:       money.Format(s.Wallet.Balance()),
		TotalEarnings: money.Format(s.Wallet.TotalEarnings()),
		Currency:      s.Wallet.Currency(),
	})
}
