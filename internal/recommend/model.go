package recommend

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrModelUnavailable is returned when the trained weights file is
// missing or unreadable. Callers surface it as a service-level error
// instead of silently falling back to an unscored list.
var ErrModelUnavailable = errors.New("recommendation model unavailable")

const featureCount = 10

// Model holds regression weights exported from the offline training
// pipeline. Scoring is a dot product plus intercept, clamped to
// [0.1, 1.0] so a base suitability never vanishes or exceeds full.
type Model struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// LoadModel reads the weights artifact from disk.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	if len(m.Coefficients) != featureCount {
		return nil, fmt.Errorf("%w: expected %d coefficients, got %d",
			ErrModelUnavailable, featureCount, len(m.Coefficients))
	}
	return &m, nil
}

// Predict scores a feature vector. The result is deterministic for a
// given vector and weights.
func (m *Model) Predict(features []float64) float64 {
	score := m.Intercept
	for i, f := range features {
		score += m.Coefficients[i] * f
	}
	if score < 0.1 {
		score = 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
