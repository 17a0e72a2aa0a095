package scheduler

import (
	"fmt"
	"time"

	"SeniorCompanion_Backend/internal/mailer"
	"SeniorCompanion_Backend/internal/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DueStore is the slice of storage the sweeps consume: a due-item
// query plus the reminder dedup stamp.
type DueStore interface {
	DueReminders(timeOfDay, today string) ([]models.DueReminder, error)
	MarkReminderSent(reminderID int, today string) error
	PoliciesExpiringOn(date string) ([]models.ExpiringPolicy, error)
}

// Expiry-warning windows in days before a policy's expiry date.
var expiryWindows = []int{30, 7}

// Scheduler drives the periodic reminder and insurance-expiry
// sweeps. Both run every minute; the reminder sweep only acts when
// the wall-clock minute matches a stored reminder time.
type Scheduler struct {
	store  DueStore
	mailer mailer.Mailer
	loc    *time.Location
	logger *zap.Logger
	cron   *cron.Cron
}

func New(store DueStore, m mailer.Mailer, loc *time.Location, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		store:  store,
		mailer: m,
		loc:    loc,
		logger: logger,
		cron:   cron.New(cron.WithLocation(loc)),
	}
}

// Start registers the minute-aligned sweeps and launches the cron
// runner in its own goroutine.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", func() {
		s.CheckReminders(time.Now().In(s.loc))
	}); err != nil {
		return fmt.Errorf("register reminder sweep: %w", err)
	}
	if _, err := s.cron.AddFunc("* * * * *", func() {
		s.CheckExpiries(time.Now().In(s.loc))
	}); err != nil {
		return fmt.Errorf("register expiry sweep: %w", err)
	}
	s.cron.Start()
	s.logger.Info("scheduler started", zap.String("time_zone", s.loc.String()))
	return nil
}

// Stop halts the cron runner and waits for running sweeps.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// CheckReminders runs one reminder sweep for the given local time.
// Seconds are ignored: a reminder stored as 14:30 is due during the
// whole 14:30 minute and never at 14:31. A reminder already stamped
// with today's date is skipped, so re-running inside the same minute
// sends nothing twice. A failed send leaves the stamp untouched and
// is retried on the next matching sweep.
func (s *Scheduler) CheckReminders(now time.Time) {
	timeOfDay := now.Format("15:04")
	today := now.Format("2006-01-02")

	due, err := s.store.DueReminders(timeOfDay, today)
	if err != nil {
		s.logger.Error("reminder sweep query failed", zap.Error(err))
		return
	}
	if len(due) == 0 {
		return
	}

	s.logger.Info("reminder sweep found due items",
		zap.String("time_of_day", timeOfDay),
		zap.Int("count", len(due)))

	for _, reminder := range due {
		subject := "Friendly Reminder: Time for your medication!"
		body := fmt.Sprintf(`Hello, %s!
This is a friendly reminder to take your medication:

  Medication: %s
  Dosage:     %s

Have a wonderful day!

- The Senior Companion Team
`, reminder.Username, reminder.Medication, reminder.Dosage)

		if err := s.mailer.Send(reminder.Email, subject, body); err != nil {
			// Leave last_sent unset so the next matching sweep
			// retries this reminder.
			s.logger.Error("failed to send reminder email",
				zap.String("to", reminder.Email),
				zap.String("medication", reminder.Medication),
				zap.Error(err))
			continue
		}

		if err := s.store.MarkReminderSent(reminder.ReminderID, today); err != nil {
			s.logger.Error("failed to stamp reminder as sent",
				zap.Int("reminder_id", reminder.ReminderID),
				zap.Error(err))
			continue
		}

		s.logger.Info("reminder email sent",
			zap.String("to", reminder.Email),
			zap.String("medication", reminder.Medication))
	}
}

// CheckExpiries runs one insurance-expiry sweep: policies expiring
// exactly 30 or exactly 7 days from today get a warning email. There
// is no sent-flag on policies, so repeated sweeps on the same day
// resend; delivery is at-least-once.
func (s *Scheduler) CheckExpiries(now time.Time) {
	today := now.In(s.loc)

	for _, days := range expiryWindows {
		target := today.AddDate(0, 0, days).Format("2006-01-02")

		policies, err := s.store.PoliciesExpiringOn(target)
		if err != nil {
			s.logger.Error("expiry sweep query failed",
				zap.Int("days_left", days),
				zap.Error(err))
			continue
		}

		for _, policy := range policies {
			subject := fmt.Sprintf("Action Required: Your %s expires in %d days", policy.PolicyName, days)
			body := fmt.Sprintf(`Hello, %s!

This is an important reminder that your insurance policy is expiring soon.

  Policy Name:   %s
  Provider:      %s
  Policy Number: %s
  Expiry Date:   %s

  Days Remaining: %d days

Please review your policy or contact your provider to renew it.

- The Senior Companion Team
`, policy.Username, policy.PolicyName, policy.ProviderName, policy.PolicyNumber, policy.ExpiryDate, days)

			if err := s.mailer.Send(policy.Email, subject, body); err != nil {
				s.logger.Error("failed to send expiry email",
					zap.String("to", policy.Email),
					zap.String("policy", policy.PolicyName),
					zap.Error(err))
				continue
			}

			s.logger.Info("expiry warning sent",
				zap.String("to", policy.Email),
				zap.String("policy", policy.PolicyName),
				zap.Int("days_left", days))
		}
	}
}
