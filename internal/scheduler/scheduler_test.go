package scheduler

import (
	"errors"
	"testing"
	"time"

	"SeniorCompanion_Backend/internal/mailer"
	"SeniorCompanion_Backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	// reminders keyed by "HH:MM"
	reminders map[string][]models.DueReminder
	// last_sent stamps keyed by reminder ID
	sent map[int]string
	// policies keyed by expiry date "YYYY-MM-DD"
	expiring map[string][]models.ExpiringPolicy
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		reminders: map[string][]models.DueReminder{},
		sent:      map[int]string{},
		expiring:  map[string][]models.ExpiringPolicy{},
	}
}

func (f *fakeStore) DueReminders(timeOfDay, today string) ([]models.DueReminder, error) {
	due := []models.DueReminder{}
	for _, r := range f.reminders[timeOfDay] {
		if f.sent[r.ReminderID] != today {
			due = append(due, r)
		}
	}
	return due, nil
}

func (f *fakeStore) MarkReminderSent(reminderID int, today string) error {
	f.sent[reminderID] = today
	return nil
}

func (f *fakeStore) PoliciesExpiringOn(date string) ([]models.ExpiringPolicy, error) {
	return f.expiring[date], nil
}

type fakeMailer struct {
	sent    []string // "to|subject"
	failAll bool
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.failAll {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, to+"|"+subject)
	return nil
}

func newTestScheduler(store *fakeStore, m mailer.Mailer) *Scheduler {
	return New(store, m, time.UTC, zap.NewNop())
}

func at(hour, min int) time.Time {
	return time.Date(2026, 8, 31, hour, min, 45, 0, time.UTC)
}

func TestCheckReminders_FiresOnExactMinuteOnly(t *testing.T) {
	store := newFakeStore()
	store.reminders["14:30"] = []models.DueReminder{
		{ReminderID: 1, Email: "senior@example.com", Username: "maria", Medication: "Aspirin", Dosage: "50mg"},
	}
	m := &fakeMailer{}
	s := newTestScheduler(store, m)

	s.CheckReminders(at(14, 30))
	require.Len(t, m.sent, 1)
	assert.Contains(t, m.sent[0], "senior@example.com")

	// The next minute is not a match.
	s.CheckReminders(at(14, 31))
	assert.Len(t, m.sent, 1)
}

func TestCheckReminders_NoResendWithinSameDay(t *testing.T) {
	store := newFakeStore()
	store.reminders["08:00"] = []models.DueReminder{
		{ReminderID: 2, Email: "senior@example.com", Username: "ravi", Medication: "Vitamin D", Dosage: "1 tablet"},
	}
	m := &fakeMailer{}
	s := newTestScheduler(store, m)

	s.CheckReminders(at(8, 0))
	s.CheckReminders(at(8, 0)) // sweep re-runs within the matching minute
	assert.Len(t, m.sent, 1)
}

func TestCheckReminders_FailedSendIsRetried(t *testing.T) {
	store := newFakeStore()
	store.reminders["09:15"] = []models.DueReminder{
		{ReminderID: 3, Email: "senior@example.com", Username: "joan", Medication: "Metformin", Dosage: "500mg"},
	}
	m := &fakeMailer{failAll: true}
	s := newTestScheduler(store, m)

	s.CheckReminders(at(9, 15))
	assert.Empty(t, m.sent)
	// last_sent stays unset on failure...
	assert.Empty(t, store.sent)

	// ...so the next matching sweep delivers.
	m.failAll = false
	s.CheckReminders(at(9, 15))
	require.Len(t, m.sent, 1)
	assert.Equal(t, "2026-08-31", store.sent[3])
}

func TestCheckReminders_OneFailureDoesNotAbortSweep(t *testing.T) {
	store := newFakeStore()
	store.reminders["10:00"] = []models.DueReminder{
		{ReminderID: 4, Email: "first@example.com", Username: "a", Medication: "A", Dosage: "1"},
		{ReminderID: 5, Email: "second@example.com", Username: "b", Medication: "B", Dosage: "2"},
	}
	m := &failFirstMailer{}
	s := newTestScheduler(store, m)

	s.CheckReminders(at(10, 0))
	require.Len(t, m.sent, 1)
	assert.Contains(t, m.sent[0], "second@example.com")
	// Only the delivered reminder is stamped.
	assert.NotContains(t, store.sent, 4)
	assert.Contains(t, store.sent, 5)
}

type failFirstMailer struct {
	calls int
	sent  []string
}

func (f *failFirstMailer) Send(to, subject, body string) error {
	f.calls++
	if f.calls == 1 {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, to+"|"+subject)
	return nil
}

func TestCheckExpiries_WarnsAtThirtyAndSevenDays(t *testing.T) {
	store := newFakeStore()
	store.expiring["2026-09-30"] = []models.ExpiringPolicy{ // today + 30
		{PolicyID: 1, Email: "a@example.com", Username: "a", PolicyName: "Health Shield", ProviderName: "LIC", ExpiryDate: "2026-09-30"},
	}
	store.expiring["2026-09-07"] = []models.ExpiringPolicy{ // today + 7
		{PolicyID: 2, Email: "b@example.com", Username: "b", PolicyName: "Home Cover", ProviderName: "SBI", ExpiryDate: "2026-09-07"},
	}
	m := &fakeMailer{}
	s := newTestScheduler(store, m)

	s.CheckExpiries(at(12, 0))
	require.Len(t, m.sent, 2)
	assert.Contains(t, m.sent[0], "expires in 30 days")
	assert.Contains(t, m.sent[1], "expires in 7 days")
}

func TestCheckExpiries_ResendsOnRepeatedRuns(t *testing.T) {
	// No sent-flag exists for expiry warnings: re-running the sweep
	// on the same day resends. At-least-once is the contract.
	store := newFakeStore()
	store.expiring["2026-09-07"] = []models.ExpiringPolicy{
		{PolicyID: 2, Email: "b@example.com", Username: "b", PolicyName: "Home Cover", ProviderName: "SBI", ExpiryDate: "2026-09-07"},
	}
	m := &fakeMailer{}
	s := newTestScheduler(store, m)

	s.CheckExpiries(at(12, 0))
	s.CheckExpiries(at(12, 1))
	assert.Len(t, m.sent, 2)
}
