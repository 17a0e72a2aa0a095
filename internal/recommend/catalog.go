package recommend

import (
	"sort"
	"time"
)

// Offer is a scored policy suggestion returned to the client.
type Offer struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Company     string   `json:"company"`
	Premium     int      `json:"premium"`
	Coverage    int      `json:"coverage"`
	Term        string   `json:"term"`
	Features    []string `json:"features"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Score       float64  `json:"score"`
}

// offerTemplate is a catalog entry before scoring. Multiplier shifts
// the model score per product type, whole-life plans rank slightly
// above the base and endowments slightly below.
type offerTemplate struct {
	Offer
	Multiplier float64
}

var offerCatalog = []offerTemplate{
	{
		Offer: Offer{
			ID:          1,
			Name:        "Term Life Insurance",
			Company:     "LIC (Life Insurance Corporation)",
			Premium:     2500,
			Coverage:    5000000,
			Term:        "20 years",
			Features:    []string{"Death benefit", "Accelerated death benefit", "Convertible"},
			Rating:      4.8,
			Description: "Affordable term life insurance from India's most trusted insurer with comprehensive coverage.",
		},
		Multiplier: 0.9,
	},
	{
		Offer: Offer{
			ID:          2,
			Name:        "Whole Life Insurance",
			Company:     "HDFC Life",
			Premium:     8000,
			Coverage:    3000000,
			Term:        "Lifetime",
			Features:    []string{"Death benefit", "Cash value accumulation", "Guaranteed premiums"},
			Rating:      4.6,
			Description: "Permanent life insurance with cash value growth and guaranteed benefits from HDFC Life.",
		},
		Multiplier: 1.1,
	},
	{
		Offer: Offer{
			ID:          3,
			Name:        "Universal Life Insurance",
			Company:     "ICICI Prudential",
			Premium:     6000,
			Coverage:    4000000,
			Term:        "Flexible",
			Features:    []string{"Death benefit", "Flexible premiums", "Investment options"},
			Rating:      4.7,
			Description: "Flexible universal life insurance with adjustable premiums and benefits from ICICI Prudential.",
		},
		Multiplier: 1.0,
	},
	{
		Offer: Offer{
			ID:          4,
			Name:        "Endowment Plan",
			Company:     "SBI Life",
			Premium:     4000,
			Coverage:    2500000,
			Term:        "15 years",
			Features:    []string{"Death benefit", "Maturity benefit", "Bonus", "Tax benefits"},
			Rating:      4.5,
			Description: "Traditional endowment plan with guaranteed returns and tax benefits under Section 80C.",
		},
		Multiplier: 0.8,
	},
	{
		Offer: Offer{
			ID:          5,
			Name:        "ULIP (Unit Linked Insurance Plan)",
			Company:     "Bajaj Allianz",
			Premium:     5000,
			Coverage:    3500000,
			Term:        "Flexible",
			Features:    []string{"Death benefit", "Investment growth", "Flexible fund options", "Partial withdrawal"},
			Rating:      4.4,
			Description: "Unit Linked Insurance Plan combining insurance with investment opportunities.",
		},
		Multiplier: 0.85,
	},
}

// Recommend scores the full catalog against the questionnaire and
// returns offers ordered best-first. Ties keep catalog order.
func (m *Model) Recommend(in Input, now time.Time) []Offer {
	base := m.Predict(FeatureVector(in, now))
	offers := make([]Offer, len(offerCatalog))
	for i, tmpl := range offerCatalog {
		o := tmpl.Offer
		o.Score = base * tmpl.Multiplier
		offers[i] = o
	}
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Score > offers[j].Score
	})
	return offers
}
