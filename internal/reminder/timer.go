package reminder

import (
	"sync"
	"time"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
)

// TimerWakeups implements WakeupFacility with in-process timers, the host
// analog of a platform alarm service. Timers do not survive a process
// restart, which is why boot recovery exists.
type TimerWakeups struct {
	mu      sync.Mutex
	timers  map[Slot]*time.Timer
	handler func(Payload)
	logger  internal.Logger
}

func NewTimerWakeups(logger internal.Logger) *TimerWakeups {
	return &TimerWakeups{timers: map[Slot]*time.Timer{}, logger: logger}
}

// SetHandler registers the wake-up delivery target. Must be called before any
// slot is armed.
func (t *TimerWakeups) SetHandler(handler func(Payload)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handler = handler
}

func (t *TimerWakeups) ArmExact(at time.Time, slot Slot, payload Payload) error {
	return t.arm(at, slot, payload)
}

// ArmInexact behaves like ArmExact in-process; a platform facility would
// batch it with other wake-ups.
func (t *TimerWakeups) ArmInexact(at time.Time, slot Slot, payload Payload) error {
	return t.arm(at, slot, payload)
}

func (t *TimerWakeups) arm(at time.Time, slot Slot, payload Payload) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if prev, ok := t.timers[slot]; ok {
		prev.Stop()
	}
	t.timers[slot] = time.AfterFunc(time.Until(at), func() {
		t.fire(slot, payload)
	})
	return nil
}

func (t *TimerWakeups) fire(slot Slot, payload Payload) {
	t.mu.Lock()
	delete(t.timers, slot)
	handler := t.handler
	t.mu.Unlock()
	if handler == nil {
		t.logger.Warnf("wake-up for %s slot fired with no handler registered", slot)
		return
	}
	handler(payload)
}

func (t *TimerWakeups) Cancel(slot Slot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if timer, ok := t.timers[slot]; ok {
		timer.Stop()
		delete(t.timers, slot)
	}
}

func (t *TimerWakeups) CanScheduleExact() bool { return true }

var _ WakeupFacility = (*TimerWakeups)(nil)
