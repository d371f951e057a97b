// Package notify implements the single-slot transient message channel.
// Showing a new message cancels the prior auto-dismiss token before arming a
// new one: latest wins, no queueing.
package notify

import (
	"sync"
	"time"

	"cryptowallet/internal/models"
	"cryptowallet/internal/sched"
)

type Notifier struct {
	mu        sync.Mutex
	scheduler sched.Scheduler
	duration  time.Duration
	broadcast func(models.Notification)
	current   *models.Notification
	cancel    sched.CancelFunc
	seq       uint64
}

// New builds a notifier that auto-dismisses after duration. broadcast, if
// non-nil, is invoked outside the lock for every shown message.
func New(scheduler sched.Scheduler, duration time.Duration, broadcast func(models.Notification)) *Notifier {
	return &Notifier{scheduler: scheduler, duration: duration, broadcast: broadcast}
}

// Show replaces any visible message and re-arms the auto-dismiss timer.
func (n *Notifier) Show(message string, kind models.NotificationKind) {
	notification := models.Notification{Message: message, Kind: kind}
	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
	}
	n.seq++
	seq := n.seq
	n.current = &notification
	n.cancel = n.scheduler.AfterFunc(n.duration, func() { n.expire(seq) })
	broadcast := n.broadcast
	n.mu.Unlock()
	if broadcast != nil {
		broadcast(notification)
	}
}

func (n *Notifier) expire(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if seq != n.seq {
		// a newer message replaced this one before its timer fired
		return
	}
	n.current = nil
	n.cancel = nil
}

// Dismiss hides the current message and cancels its pending auto-dismiss so
// a stale timer cannot re-hide a later message.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.seq++
	n.current = nil
}

// Current returns the visible message, if any.
func (n *Notifier) Current() (models.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return models.Notification{}, false
	}
	return *n.current, true
}

// Close tears the notifier down with its session, cancelling any pending
// timer so nothing fires after teardown.
func (n *Notifier) Close() {
	n.Dismiss()
}
