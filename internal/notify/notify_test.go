package notify

import (
	"testing"
	"time"

	"cryptowallet/internal/models"
	"cryptowallet/internal/sched"
)

func newTestNotifier() (*Notifier, *sched.Manual) {
	manual := sched.NewManual(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	return New(manual, 3*time.Second, nil), manual
}

func TestShowAutoDismisses(t *testing.T) {
	n, manual := newTestNotifier()
	n.Show("Profile updated successfully", models.NotifySuccess)
	if _, visible := n.Current(); !visible {
		t.Fatal("expected message to be visible")
	}
	manual.Advance(2999 * time.Millisecond)
	if _, visible := n.Current(); !visible {
		t.Fatal("message hidden before duration elapsed")
	}
	manual.Advance(1 * time.Millisecond)
	if _, visible := n.Current(); visible {
		t.Fatal("message still visible after duration elapsed")
	}
}

func TestLatestWinsAndHidesExactlyOnce(t *testing.T) {
	n, manual := newTestNotifier()
	n.Show("first", models.NotifyInfo)
	manual.Advance(1 * time.Second)
	n.Show("second", models.NotifyError)

	current, visible := n.Current()
	if !visible || current.Message != "second" || current.Kind != models.NotifyError {
		t.Fatalf("expected second message visible, got %+v visible=%v", current, visible)
	}

	// the first message's timer would have fired here; it must not hide
	// the replacement early
	manual.Advance(2 * time.Second)
	if current, visible := n.Current(); !visible || current.Message != "second" {
		t.Fatalf("second message hidden by the first message's stale timer: %+v visible=%v", current, visible)
	}

	// second-call-time + duration
	manual.Advance(1 * time.Second)
	if _, visible := n.Current(); visible {
		t.Fatal("second message still visible past its own duration")
	}
}

func TestManualDismissCancelsPendingTimer(t *testing.T) {
	n, manual := newTestNotifier()
	n.Show("first", models.NotifyInfo)
	manual.Advance(1 * time.Second)
	n.Dismiss()
	if _, visible := n.Current(); visible {
		t.Fatal("message visible after manual dismiss")
	}

	n.Show("second", models.NotifySuccess)
	// the dismissed message's timer would have fired at t=3s
	manual.Advance(2 * time.Second)
	if current, visible := n.Current(); !visible || current.Message != "second" {
		t.Fatalf("second message hidden by dismissed message's timer: %+v visible=%v", current, visible)
	}
}

func TestBroadcastInvokedPerShow(t *testing.T) {
	manual := sched.NewManual(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	var seen []models.Notification
	n := New(manual, 3*time.Second, func(notification models.Notification) {
		seen = append(seen, notification)
	})
	n.Show("one", models.NotifyInfo)
	n.Show("two", models.NotifySuccess)
	if len(seen) != 2 || seen[1].Message != "two" {
		t.Fatalf("unexpected broadcasts: %+v", seen)
	}
}

func TestCloseCancelsPendingTimer(t *testing.T) {
	n, manual := newTestNotifier()
	n.Show("first", models.NotifyInfo)
	n.Close()
	manual.Advance(time.Minute)
	if _, visible := n.Current(); visible {
		t.Fatal("message visible after close")
	}
	if pending := manual.Pending(); len(pending) != 0 {
		t.Fatalf("expected no pending timers after close, got %d", len(pending))
	}
}
