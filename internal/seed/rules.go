package seed

import (
	"go.uber.org/zap"

	"SeniorCompanion_Backend/internal/models"
	"SeniorCompanion_Backend/internal/storage"
)

// defaultRules covers the common questions seniors ask the assistant.
// Emergency outranks everything so "emergency near a hospital" routes
// to the emergency answer, not the hospital one.
var defaultRules = []models.LogicRule{
	{Pattern: "register", MatchType: models.MatchContains, Response: "You can create a new account on the registration page.", SuggestedLink: "/accounts/register/", Priority: 10},
	{Pattern: "login", MatchType: models.MatchContains, Response: "You can sign in to your account on the login page.", SuggestedLink: "/accounts/login/", Priority: 10},
	{Pattern: "profile", MatchType: models.MatchContains, Response: "You can view and update your personal details on your profile page.", SuggestedLink: "/accounts/profile/", Priority: 8},
	{Pattern: "address", MatchType: models.MatchContains, Response: "You can update your address from your profile page.", SuggestedLink: "/accounts/profile/", Priority: 8},
	{Pattern: "hospital", MatchType: models.MatchContains, Response: "You can browse hospitals and their doctors in the hospital directory.", SuggestedLink: "/hospitals/", Priority: 9},
	{Pattern: "doctor", MatchType: models.MatchContains, Response: "You can find doctors and their specialties in the hospital directory.", SuggestedLink: "/hospitals/", Priority: 9},
	{Pattern: "emergency", MatchType: models.MatchContains, Response: "If this is a medical emergency, please call 100 immediately. You can find nearby emergency hospitals here:", SuggestedLink: "/hospitals/?nearby_emergency=on", Priority: 20},
	{Pattern: "insurance", MatchType: models.MatchContains, Response: "You can manage your insurance policies in the insurance hub.", SuggestedLink: "/insurance/", Priority: 9},
	{Pattern: "policy", MatchType: models.MatchContains, Response: "Your saved policies are listed in the insurance hub.", SuggestedLink: "/insurance/", Priority: 8},
	{Pattern: "suggestion", MatchType: models.MatchContains, Response: "You can get a personalised insurance suggestion by answering a short questionnaire.", SuggestedLink: "/insurance/suggest/", Priority: 9},
	{Pattern: "recommend", MatchType: models.MatchContains, Response: "You can get a personalised insurance recommendation by answering a short questionnaire.", SuggestedLink: "/insurance/suggest/", Priority: 9},
	{Pattern: "learn", MatchType: models.MatchContains, Response: "You can explore tutorials and videos in the learning section.", SuggestedLink: "/learning/", Priority: 9},
	{Pattern: "video", MatchType: models.MatchContains, Response: "You can watch helpful videos in the learning section.", SuggestedLink: "/learning/?content_type=video", Priority: 8},
	{Pattern: "tutorial", MatchType: models.MatchContains, Response: "You can follow step-by-step tutorials in the learning section.", SuggestedLink: "/learning/?content_type=tutorial", Priority: 8},
	{Pattern: "game", MatchType: models.MatchContains, Response: "You can play brain games to keep your mind sharp.", SuggestedLink: "/games/", Priority: 9},
	{Pattern: "play", MatchType: models.MatchContains, Response: "You can try the memory game to exercise your memory.", SuggestedLink: "/games/memory/", Priority: 8},
	{Pattern: "memory", MatchType: models.MatchContains, Response: "The memory game is a fun way to exercise your memory.", SuggestedLink: "/games/memory/", Priority: 9},
	{Pattern: "companion", MatchType: models.MatchContains, Response: "You can add companions and chat with them from your companions page.", SuggestedLink: "/accounts/companions/", Priority: 9},
	{Pattern: "friend", MatchType: models.MatchContains, Response: "You can add friends as companions and chat with them.", SuggestedLink: "/accounts/companions/", Priority: 9},
	{Pattern: "chat", MatchType: models.MatchContains, Response: "You can chat with your companions from your companions page.", SuggestedLink: "/accounts/companions/", Priority: 9},
	{Pattern: "reminder", MatchType: models.MatchContains, Response: "You can set medication reminders and we will email you when they are due.", SuggestedLink: "/reminders/", Priority: 9},
	{Pattern: "medicine", MatchType: models.MatchContains, Response: "You can track your medicines and set reminders for them.", SuggestedLink: "/reminders/", Priority: 9},
	{Pattern: "pill", MatchType: models.MatchContains, Response: "You can add your pills and set reminder times for them.", SuggestedLink: "/reminders/", Priority: 8},
}

// Rules inserts the default assistant rules that are not already
// present, so restarting the server never duplicates them and staff
// edits survive restarts.
func Rules(log *zap.Logger) error {
	existing, err := storage.CountRules()
	if err != nil {
		return err
	}
	if existing >= len(defaultRules) {
		return nil
	}

	seeded := 0
	for _, rule := range defaultRules {
		exists, err := storage.RuleExistsForPattern(rule.Pattern)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := storage.CreateRule(rule); err != nil {
			return err
		}
		seeded++
	}
	if seeded > 0 {
		log.Info("seeded assistant rules", zap.Int("count", seeded))
	}
	return nil
}
