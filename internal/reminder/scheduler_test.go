package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/remote"
)

type armedWakeup struct {
	at      time.Time
	payload Payload
	exact   bool
}

// fakeWakeups records arms and cancels instead of starting timers.
type fakeWakeups struct {
	armed     map[Slot]armedWakeup
	cancels   []Slot
	denyExact bool
}

func newFakeWakeups() *fakeWakeups {
	return &fakeWakeups{armed: map[Slot]armedWakeup{}}
}

func (f *fakeWakeups) ArmExact(at time.Time, slot Slot, payload Payload) error {
	f.armed[slot] = armedWakeup{at: at, payload: payload, exact: true}
	return nil
}

func (f *fakeWakeups) ArmInexact(at time.Time, slot Slot, payload Payload) error {
	f.armed[slot] = armedWakeup{at: at, payload: payload, exact: false}
	return nil
}

func (f *fakeWakeups) Cancel(slot Slot) {
	f.cancels = append(f.cancels, slot)
	delete(f.armed, slot)
}

func (f *fakeWakeups) CanScheduleExact() bool { return !f.denyExact }

type fakeNotifier struct {
	shown    []string
	denied   bool
	channels int
}

func (f *fakeNotifier) Show(title, body string) error {
	f.shown = append(f.shown, title+": "+body)
	return nil
}

func (f *fakeNotifier) CanShowNotifications() bool { return !f.denied }

func (f *fakeNotifier) CreateChannel() { f.channels++ }

func newTestScheduler(wakeups *fakeWakeups, notifier *fakeNotifier, rs remote.Store, auth remote.Auth) *Scheduler {
	s := NewScheduler(wakeups, notifier, rs, auth, internal.NopLogger())
	// Saturday 20:00, past every fixed slot hour.
	s.now = func() time.Time { return time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC) }
	s.randInt = func(n int) int { return 0 }
	return s
}

func TestScheduleThriceArmsThreeSlots(t *testing.T) {
	wakeups := newFakeWakeups()
	notifier := &fakeNotifier{}
	s := newTestScheduler(wakeups, notifier, remote.NewMemoryStore(), &remote.StaticAuth{})

	require.NoError(t, s.ScheduleNotifications(internal.FrequencyThrice, "Ada"))

	require.Len(t, wakeups.armed, 3)
	assert.Equal(t, 1, notifier.channels)

	// 20:00 is past all three slot hours, so each rolls to tomorrow.
	tomorrow := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, tomorrow.Add(9*time.Hour), wakeups.armed[SlotMorning].at)
	assert.Equal(t, tomorrow.Add(13*time.Hour), wakeups.armed[SlotNoon].at)
	assert.Equal(t, tomorrow.Add(19*time.Hour), wakeups.armed[SlotEvening].at)

	payload := wakeups.armed[SlotNoon].payload
	assert.Equal(t, SlotNoon, payload.Slot)
	assert.Equal(t, internal.FrequencyThrice, payload.Frequency)
	assert.Equal(t, "Ada", payload.UserName)
}

func TestScheduleTwiceArmsMorningAndEvening(t *testing.T) {
	wakeups := newFakeWakeups()
	s := newTestScheduler(wakeups, &fakeNotifier{}, remote.NewMemoryStore(), &remote.StaticAuth{})

	require.NoError(t, s.ScheduleNotifications(internal.FrequencyTwice, "Ada"))

	require.Len(t, wakeups.armed, 2)
	assert.Contains(t, wakeups.armed, SlotMorning)
	assert.Contains(t, wakeups.armed, SlotEvening)
	assert.NotContains(t, wakeups.armed, SlotNoon)
}

func TestScheduleOnceArmsRandomSlotWithinWindow(t *testing.T) {
	wakeups := newFakeWakeups()
	s := newTestScheduler(wakeups, &fakeNotifier{}, remote.NewMemoryStore(), &remote.StaticAuth{})
	s.randInt = func(n int) int { return n - 1 }

	require.NoError(t, s.ScheduleNotifications(internal.FrequencyOnce, "Ada"))

	require.Len(t, wakeups.armed, 1)
	armed := wakeups.armed[SlotOnce]
	assert.Equal(t, 17, armed.at.Hour())
	assert.Equal(t, 59, armed.at.Minute())
}

func TestRescheduleReplacesPriorSlots(t *testing.T) {
	wakeups := newFakeWakeups()
	s := newTestScheduler(wakeups, &fakeNotifier{}, remote.NewMemoryStore(), &remote.StaticAuth{})

	require.NoError(t, s.ScheduleNotifications(internal.FrequencyThrice, "Ada"))
	require.NoError(t, s.ScheduleNotifications(internal.FrequencyOnce, "Ada"))

	// Only the once slot survives; every slot was cancelled in between.
	require.Len(t, wakeups.armed, 1)
	assert.Contains(t, wakeups.armed, SlotOnce)
}

func TestScheduleNoneCancelsEverything(t *testing.T) {
	wakeups := newFakeWakeups()
	s := newTestScheduler(wakeups, &fakeNotifier{}, remote.NewMemoryStore(), &remote.StaticAuth{})

	require.NoError(t, s.ScheduleNotifications(internal.FrequencyTwice, "Ada"))
	require.NoError(t, s.ScheduleNotifications(internal.FrequencyNone, "Ada"))

	assert.Empty(t, wakeups.armed)
}

func TestScheduleNoneSucceedsWhenNotificationsDenied(t *testing.T) {
	wakeups := newFakeWakeups()
	s := newTestScheduler(wakeups, &fakeNotifier{denied: true}, remote.NewMemoryStore(), &remote.StaticAuth{})

	assert.NoError(t, s.ScheduleNotifications(internal.FrequencyNone, "Ada"))
}

func TestScheduleFailsWhenNotificationsDenied(t *testing.T) {
	wakeups := newFakeWakeups()
	s := newTestScheduler(wakeups, &fakeNotifier{denied: true}, remote.NewMemoryStore(), &remote.StaticAuth{})

	err := s.ScheduleNotifications(internal.FrequencyThrice, "Ada")
	assert.ErrorIs(t, err, ErrNotificationsDisabled)
	assert.Empty(t, wakeups.armed)
}

func TestScheduleRejectsUnknownFrequency(t *testing.T) {
	wakeups := newFakeWakeups()
	s := newTestScheduler(wakeups, &fakeNotifier{}, remote.NewMemoryStore(), &remote.StaticAuth{})

	assert.Error(t, s.ScheduleNotifications(internal.Frequency("hourly"), "Ada"))
	assert.Empty(t, wakeups.armed)
}

func TestExactDeniedDegradesToInexact(t *testing.T) {
	wakeups := newFakeWakeups()
	wakeups.denyExact = true
	s := newTestScheduler(wakeups, &fakeNotifier{}, remote.NewMemoryStore(), &remote.StaticAuth{})

	require.NoError(t, s.ScheduleNotifications(internal.FrequencyTwice, "Ada"))

	require.Len(t, wakeups.armed, 2)
	assert.False(t, wakeups.armed[SlotMorning].exact)
	assert.False(t, wakeups.armed[SlotEvening].exact)
}

func TestHandleWakeupShowsAndRearms(t *testing.T) {
	wakeups := newFakeWakeups()
	notifier := &fakeNotifier{}
	s := newTestScheduler(wakeups, notifier, remote.NewMemoryStore(), &remote.StaticAuth{})

	s.HandleWakeup(Payload{Slot: SlotMorning, Frequency: internal.FrequencyTwice, UserName: "Ada"})

	require.Len(t, notifier.shown, 1)
	assert.Equal(t, "MindfulJot: Hi Ada, remember to log how you feel.", notifier.shown[0])

	// The firing re-armed the full preference.
	assert.Len(t, wakeups.armed, 2)
}

func TestHandleWakeupWithoutNameUsesGenericGreeting(t *testing.T) {
	notifier := &fakeNotifier{}
	s := newTestScheduler(newFakeWakeups(), notifier, remote.NewMemoryStore(), &remote.StaticAuth{})

	s.HandleWakeup(Payload{Slot: SlotOnce, Frequency: internal.FrequencyOnce})

	require.Len(t, notifier.shown, 1)
	assert.Equal(t, "MindfulJot: Hi there, remember to log how you feel.", notifier.shown[0])
}

func TestRescheduleOnBoot(t *testing.T) {
	wakeups := newFakeWakeups()
	rs := remote.NewMemoryStore()
	ctx := context.Background()

	pref := internal.ReminderPreference{Frequency: internal.FrequencyThrice, UserName: "Ada"}
	require.NoError(t, rs.Push(ctx, remote.CollectionUsers, "u1", pref))

	s := newTestScheduler(wakeups, &fakeNotifier{}, rs, &remote.StaticAuth{UserID: "u1"})
	require.NoError(t, s.RescheduleOnBoot(ctx))

	assert.Len(t, wakeups.armed, 3)
	assert.Equal(t, "Ada", wakeups.armed[SlotMorning].payload.UserName)
}

func TestRescheduleOnBootSkipsWithoutUser(t *testing.T) {
	wakeups := newFakeWakeups()
	s := newTestScheduler(wakeups, &fakeNotifier{}, remote.NewMemoryStore(), &remote.StaticAuth{})

	require.NoError(t, s.RescheduleOnBoot(context.Background()))
	assert.Empty(t, wakeups.armed)
}

func TestRescheduleOnBootSkipsNonePreference(t *testing.T) {
	wakeups := newFakeWakeups()
	rs := remote.NewMemoryStore()
	ctx := context.Background()

	pref := internal.ReminderPreference{Frequency: internal.FrequencyNone, UserName: "Ada"}
	require.NoError(t, rs.Push(ctx, remote.CollectionUsers, "u1", pref))

	s := newTestScheduler(wakeups, &fakeNotifier{}, rs, &remote.StaticAuth{UserID: "u1"})
	require.NoError(t, s.RescheduleOnBoot(ctx))
	assert.Empty(t, wakeups.armed)
}

func TestRescheduleOnBootSkipsMissingRecord(t *testing.T) {
	wakeups := newFakeWakeups()
	s := newTestScheduler(wakeups, &fakeNotifier{}, remote.NewMemoryStore(), &remote.StaticAuth{UserID: "u1"})

	require.NoError(t, s.RescheduleOnBoot(context.Background()))
	assert.Empty(t, wakeups.armed)
}

func TestArmSlotSameDayWhenStillAhead(t *testing.T) {
	wakeups := newFakeWakeups()
	s := newTestScheduler(wakeups, &fakeNotifier{}, remote.NewMemoryStore(), &remote.StaticAuth{})
	// 07:30, before every slot.
	s.now = func() time.Time { return time.Date(2025, 6, 14, 7, 30, 0, 0, time.UTC) }

	require.NoError(t, s.ScheduleNotifications(internal.FrequencyThrice, "Ada"))

	today := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today.Add(9*time.Hour), wakeups.armed[SlotMorning].at)
	assert.Equal(t, today.Add(13*time.Hour), wakeups.armed[SlotNoon].at)
	assert.Equal(t, today.Add(19*time.Hour), wakeups.armed[SlotEvening].at)
}
