// Package reminder arms daily journaling reminders. The underlying wake-up
// primitive is one-shot, so each firing re-arms the next occurrence of its
// slot.
package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/remote"
)

// Slot identifies one recurring reminder time of day. Arming a slot cancels
// and replaces exactly that slot's prior registration, never another's.
type Slot string

const (
	SlotMorning Slot = "morning"
	SlotNoon    Slot = "noon"
	SlotEvening Slot = "evening"
	SlotOnce    Slot = "once"
)

// Slots lists every slot id, for cancel-all sweeps.
func Slots() []Slot { return []Slot{SlotMorning, SlotNoon, SlotEvening, SlotOnce} }

// Fixed slot hours (24h clock).
const (
	morningHour = 9
	noonHour    = 13
	eveningHour = 19

	// The once-daily reminder fires at a random time in [08:00, 18:00).
	randomStartHour = 8
	randomEndHour   = 18
)

// Payload rides along with an armed wake-up and comes back on firing.
type Payload struct {
	Slot      Slot               `json:"slot"`
	Frequency internal.Frequency `json:"frequency"`
	UserName  string             `json:"userName"`
}

// WakeupFacility is the host's one-shot alarm service. Arming an already
// armed slot replaces its registration.
type WakeupFacility interface {
	ArmExact(at time.Time, slot Slot, payload Payload) error
	// ArmInexact is the batched best-effort variant used when exact wake-up
	// rights are denied.
	ArmInexact(at time.Time, slot Slot, payload Payload) error
	Cancel(slot Slot)
	CanScheduleExact() bool
}

// Notifier presents reminder notifications.
type Notifier interface {
	Show(title, body string) error
	CanShowNotifications() bool
	CreateChannel()
}

// ErrNotificationsDisabled reports that no wake-up was armed because the host
// cannot present notifications.
var ErrNotificationsDisabled = errors.New("reminder: notifications are not permitted")

// Scheduler computes and registers future wake-ups for the user's reminder
// preference and re-arms the fired slot after each delivery.
type Scheduler struct {
	wakeups  WakeupFacility
	notifier Notifier
	remote   remote.Store
	auth     remote.Auth
	logger   internal.Logger

	now     func() time.Time
	randInt func(n int) int
}

func NewScheduler(wakeups WakeupFacility, notifier Notifier, rs remote.Store, auth remote.Auth, logger internal.Logger) *Scheduler {
	return &Scheduler{
		wakeups:  wakeups,
		notifier: notifier,
		remote:   rs,
		auth:     auth,
		logger:   logger,
		now:      time.Now,
		randInt:  rand.Intn,
	}
}

// ScheduleNotifications cancels every previously armed slot and arms the
// slots the given frequency calls for. When notifications cannot be shown at
// all, nothing is armed and ErrNotificationsDisabled is returned so an
// explicit preference change can surface it; periodic re-arms just log it.
func (s *Scheduler) ScheduleNotifications(frequency internal.Frequency, userName string) error {
	s.logger.Infof("reminder: scheduling notifications for preference %q", frequency)

	s.notifier.CreateChannel()

	for _, slot := range Slots() {
		s.wakeups.Cancel(slot)
	}

	if frequency == internal.FrequencyNone {
		return nil
	}
	if !s.notifier.CanShowNotifications() {
		s.logger.Warn("reminder: notifications not permitted, skipping scheduling")
		return ErrNotificationsDisabled
	}

	switch frequency {
	case internal.FrequencyOnce:
		hour := randomStartHour + s.randInt(randomEndHour-randomStartHour)
		minute := s.randInt(60)
		return s.armSlot(SlotOnce, hour, minute, frequency, userName)
	case internal.FrequencyTwice:
		if err := s.armSlot(SlotMorning, morningHour, 0, frequency, userName); err != nil {
			return err
		}
		return s.armSlot(SlotEvening, eveningHour, 0, frequency, userName)
	case internal.FrequencyThrice:
		if err := s.armSlot(SlotMorning, morningHour, 0, frequency, userName); err != nil {
			return err
		}
		if err := s.armSlot(SlotNoon, noonHour, 0, frequency, userName); err != nil {
			return err
		}
		return s.armSlot(SlotEvening, eveningHour, 0, frequency, userName)
	default:
		return errors.New("reminder: unknown frequency: " + string(frequency))
	}
}

// armSlot arms the next occurrence of hour:minute, today if still ahead and
// otherwise tomorrow. Denied exact-wake-up rights degrade to an inexact arm
// rather than failing.
func (s *Scheduler) armSlot(slot Slot, hour, minute int, frequency internal.Frequency, userName string) error {
	now := s.now()
	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}

	payload := Payload{Slot: slot, Frequency: frequency, UserName: userName}
	if s.wakeups.CanScheduleExact() {
		s.logger.Debugf("reminder: arming %s slot at %s", slot, at)
		return s.wakeups.ArmExact(at, slot, payload)
	}
	s.logger.Warnf("reminder: exact wake-ups denied, arming %s slot inexactly at %s", slot, at)
	return s.wakeups.ArmInexact(at, slot, payload)
}

// HandleWakeup is the wake-up delivery entry point: show the reminder, then
// re-arm the next occurrence for the same preference.
func (s *Scheduler) HandleWakeup(payload Payload) {
	s.logger.Debugf("reminder: wake-up fired for %s slot", payload.Slot)

	if err := s.notifier.Show("MindfulJot", reminderMessage(payload.UserName)); err != nil {
		s.logger.Errorf("reminder: failed to show notification: %v", err)
	}

	if err := s.ScheduleNotifications(payload.Frequency, payload.UserName); err != nil {
		s.logger.Errorf("reminder: failed to re-arm after %s slot fired: %v", payload.Slot, err)
	}
}

// RescheduleOnBoot re-arms reminders after a restart, when all prior wake-ups
// are lost. The preference is read from the signed-in user's remote record;
// no user or a "none" preference arms nothing.
func (s *Scheduler) RescheduleOnBoot(ctx context.Context) error {
	userID, err := s.auth.CurrentUserID(ctx)
	if err != nil {
		s.logger.Errorf("reminder: boot recovery failed to resolve user: %v", err)
		return err
	}
	if userID == "" {
		s.logger.Debug("reminder: no user signed in, skipping boot recovery")
		return nil
	}

	raw, err := s.remote.Read(ctx, remote.CollectionUsers, userID)
	if err == remote.ErrNotFound {
		s.logger.Debugf("reminder: no remote record for user %s", userID)
		return nil
	}
	if err != nil {
		s.logger.Errorf("reminder: boot recovery failed to read user record: %v", err)
		return err
	}

	var pref internal.ReminderPreference
	if err := json.Unmarshal(raw, &pref); err != nil {
		s.logger.Errorf("reminder: malformed user record for %s: %v", userID, err)
		return err
	}
	if pref.Frequency == "" || pref.Frequency == internal.FrequencyNone {
		s.logger.Debugf("reminder: user %s has no reminder preference", userID)
		return nil
	}
	return s.ScheduleNotifications(pref.Frequency, pref.UserName)
}

func reminderMessage(userName string) string {
	if userName == "" {
		return "Hi there, remember to log how you feel."
	}
	return "Hi " + userName + ", remember to log how you feel."
}
