package models

// A personal policy tracked by a senior, swept for upcoming expiry.
// StartDate and ExpiryDate are "YYYY-MM-DD", empty when unset.
type UserInsurancePolicy struct {
	ID               int     `json:"id"`
	UserID           int     `json:"user_id"`
	PolicyName       string  `json:"policy_name"`
	PolicyNumber     string  `json:"policy_number"`
	ProviderName     string  `json:"provider_name"`
	CoverageType     string  `json:"coverage_type"`
	StartDate        string  `json:"start_date,omitempty"`
	ExpiryDate       string  `json:"expiry_date,omitempty"`
	PremiumAmount    float64 `json:"premium_amount"`
	PremiumFrequency string  `json:"premium_frequency"`
	CoverageSummary  string  `json:"coverage_summary"`
}

// A staff-curated policy shown in the insurance hub.
type CatalogPolicy struct {
	ID              int    `json:"id"`
	PolicyName      string `json:"policy_name"`
	ProviderName    string `json:"provider_name"`
	Description     string `json:"description"`
	PolicyType      string `json:"policy_type"`
	CoverageSummary string `json:"coverage_summary"`
}

// A policy hitting an expiry-warning window, joined with the
// owning user for notification.
type ExpiringPolicy struct {
	PolicyID     int
	Email        string
	Username     string
	PolicyName   string
	PolicyNumber string
	ProviderName string
	ExpiryDate   string
}
