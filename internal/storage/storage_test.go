package storage

import (
	"os"
	"path/filepath"
	"testing"

	"SeniorCompanion_Backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "senior-companion-test")
	if err != nil {
		panic(err)
	}
	InitDB(filepath.Join(dir, "test.db"))

	code := m.Run()

	CloseDB()
	os.RemoveAll(dir)
	os.Exit(code)
}

func mustCreateUser(t *testing.T, email, username string) int {
	t.Helper()
	id, err := CreateUser(email, username, "hash", false)
	require.NoError(t, err)
	return id
}

func TestCreateUserMakesBlankProfile(t *testing.T) {
	id := mustCreateUser(t, "meera@example.com", "meera")

	profile, err := GetProfileByUserID(id)
	require.NoError(t, err)
	assert.Equal(t, id, profile.UserID)
	assert.Empty(t, profile.EmergencyContactName)
	assert.Empty(t, profile.Hobbies)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	mustCreateUser(t, "dup@example.com", "first")

	_, err := CreateUser("dup@example.com", "second", "hash", false)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestCompanionLinkIsOneDirectional(t *testing.T) {
	alice := mustCreateUser(t, "alice@example.com", "alice")
	bob := mustCreateUser(t, "bob@example.com", "bob")

	require.NoError(t, AddCompanion(alice, bob))

	forward, err := IsCompanionOf(alice, bob)
	require.NoError(t, err)
	assert.True(t, forward)

	reverse, err := IsCompanionOf(bob, alice)
	require.NoError(t, err)
	assert.False(t, reverse, "adding never creates the reverse link")

	// Removing the forward link must not invent or disturb anything
	// on bob's side either.
	require.NoError(t, RemoveCompanion(alice, bob))
	forward, err = IsCompanionOf(alice, bob)
	require.NoError(t, err)
	assert.False(t, forward)
}

func TestAddCompanionUnknownUser(t *testing.T) {
	alice := mustCreateUser(t, "alice2@example.com", "alice2")
	err := AddCompanion(alice, 99999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddCompanionIdempotent(t *testing.T) {
	a := mustCreateUser(t, "ca@example.com", "ca")
	b := mustCreateUser(t, "cb@example.com", "cb")

	require.NoError(t, AddCompanion(a, b))
	require.NoError(t, AddCompanion(a, b))

	entries, err := ListCompanionEntries(a)
	require.NoError(t, err)
	count := 0
	for _, e := range entries {
		if e.UserID == b && e.IsCompanion {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestDueRemindersSuppressedAfterStamp(t *testing.T) {
	user := mustCreateUser(t, "raju@example.com", "raju")
	medID, err := CreateMedication(user, "Amlodipine", "5mg")
	require.NoError(t, err)
	reminderID, err := AddReminder(medID, user, "09:15")
	require.NoError(t, err)

	due, err := DueReminders("09:15", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, reminderID, due[0].ReminderID)
	assert.Equal(t, "raju@example.com", due[0].Email)
	assert.Equal(t, "Amlodipine", due[0].Medication)

	// Off-minute queries find nothing.
	due, err = DueReminders("09:16", "2026-08-31")
	require.NoError(t, err)
	assert.Empty(t, due)

	// Stamped today, so the same day stops returning it.
	require.NoError(t, MarkReminderSent(reminderID, "2026-08-31"))
	due, err = DueReminders("09:15", "2026-08-31")
	require.NoError(t, err)
	assert.Empty(t, due)

	// The next day it is due again.
	due, err = DueReminders("09:15", "2026-09-01")
	require.NoError(t, err)
	assert.Len(t, due, 1)
}

func TestDeleteMedicationCascadesReminders(t *testing.T) {
	user := mustCreateUser(t, "leela@example.com", "leela")
	medID, err := CreateMedication(user, "Calcium", "1 tablet")
	require.NoError(t, err)
	_, err = AddReminder(medID, user, "20:00")
	require.NoError(t, err)

	require.NoError(t, DeleteMedication(medID, user))

	due, err := DueReminders("20:00", "2026-08-31")
	require.NoError(t, err)
	assert.Empty(t, due)

	// A stranger cannot delete someone else's medication.
	other := mustCreateUser(t, "other@example.com", "other")
	med2, err := CreateMedication(user, "Iron", "1 tablet")
	require.NoError(t, err)
	assert.ErrorIs(t, DeleteMedication(med2, other), ErrMedicationNotFound)
}

func TestPoliciesExpiringOn(t *testing.T) {
	user := mustCreateUser(t, "shanti@example.com", "shanti")
	_, err := CreateUserPolicy(models.UserInsurancePolicy{
		UserID:     user,
		PolicyName: "Senior Health Shield",
		ExpiryDate: "2026-09-30",
	})
	require.NoError(t, err)
	_, err = CreateUserPolicy(models.UserInsurancePolicy{
		UserID:     user,
		PolicyName: "No Expiry Plan",
	})
	require.NoError(t, err)

	expiring, err := PoliciesExpiringOn("2026-09-30")
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "Senior Health Shield", expiring[0].PolicyName)
	assert.Equal(t, "shanti@example.com", expiring[0].Email)

	expiring, err = PoliciesExpiringOn("2026-10-01")
	require.NoError(t, err)
	assert.Empty(t, expiring)
}

func TestLearningProgressUpsert(t *testing.T) {
	user := mustCreateUser(t, "gopal@example.com", "gopal")
	resID, err := CreateLearningResource(models.LearningResource{
		Title:       "Video calling basics",
		ContentType: models.ContentVideo,
		Difficulty:  models.DifficultyBeginner,
	})
	require.NoError(t, err)

	require.NoError(t, UpsertLearningProgress(user, resID, models.ProgressInProgress))
	require.NoError(t, UpsertLearningProgress(user, resID, models.ProgressCompleted))

	progress, err := LearningProgressMap(user)
	require.NoError(t, err)
	assert.Equal(t, models.ProgressCompleted, progress[resID])
	assert.Len(t, progress, 1)
}
