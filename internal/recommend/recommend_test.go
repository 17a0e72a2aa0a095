package recommend

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func writeWeights(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rf_weights.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const validWeights = `{
	"intercept": 0.15,
	"coefficients": [0.002, 0.1, 0.1, 0.05, 0.05, 0.1, 0.05, 0.05, 0.1, 0.05]
}`

func TestFeatureVectorEncoding(t *testing.T) {
	in := Input{
		DateOfBirth:       "1956-08-31",
		AnnualIncome:      "5lakh-8lakh",
		CoverageAmount:    "50lakh-75lakh",
		PremiumBudget:     "5000-8000",
		RiskTolerance:     "moderate",
		SmokingStatus:     "never",
		ExerciseFrequency: "light",
		FamilySize:        "2",
		MedicalConditions: []string{"diabetes", "hypertension"},
		Dependents:        "yes",
	}

	features := FeatureVector(in, testNow)
	require.Len(t, features, 10)
	assert.Equal(t, 70.0, features[0], "age")
	assert.Equal(t, 0.6, features[1], "income")
	assert.Equal(t, 0.7, features[2], "coverage")
	assert.Equal(t, 0.6, features[3], "premium")
	assert.Equal(t, 0.6, features[4], "risk")
	assert.Equal(t, 1.0, features[5], "smoking")
	assert.Equal(t, 0.5, features[6], "exercise")
	assert.Equal(t, 0.5, features[7], "family size 2 of 4")
	assert.InDelta(t, 0.6, features[8], 1e-9, "two conditions")
	assert.Equal(t, 0.8, features[9], "has dependents")
}

func TestFeatureVectorUnknownKeysDefault(t *testing.T) {
	features := FeatureVector(Input{
		DateOfBirth:   "not-a-date",
		AnnualIncome:  "plenty",
		RiskTolerance: "",
		FamilySize:    "many",
	}, testNow)

	assert.Equal(t, 65.0, features[0], "unparseable birth date")
	assert.Equal(t, 0.5, features[1], "unknown income bracket")
	assert.Equal(t, 0.5, features[4], "missing risk tolerance")
	assert.Equal(t, 0.5, features[7], "unparseable family size")
}

func TestFeatureVectorHealthFloor(t *testing.T) {
	in := Input{MedicalConditions: []string{"a", "b", "c", "d", "e", "f"}}
	features := FeatureVector(in, testNow)
	assert.InDelta(t, 0.1, features[8], 1e-9)
}

func TestFeatureVectorFamilyCap(t *testing.T) {
	features := FeatureVector(Input{FamilySize: "9"}, testNow)
	assert.Equal(t, 1.0, features[7])
}

func TestLoadModelMissingFile(t *testing.T) {
	_, err := LoadModel(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestLoadModelBadCoefficientCount(t *testing.T) {
	path := writeWeights(t, `{"intercept": 0.1, "coefficients": [1, 2, 3]}`)
	_, err := LoadModel(path)
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestPredictClamped(t *testing.T) {
	m := &Model{Intercept: 50, Coefficients: make([]float64, 10)}
	assert.Equal(t, 1.0, m.Predict(make([]float64, 10)))

	m.Intercept = -50
	assert.Equal(t, 0.1, m.Predict(make([]float64, 10)))
}

func TestRecommendDeterministic(t *testing.T) {
	m, err := LoadModel(writeWeights(t, validWeights))
	require.NoError(t, err)

	in := Input{
		DateOfBirth:   "1958-01-15",
		AnnualIncome:  "8lakh-12lakh",
		RiskTolerance: "conservative",
		SmokingStatus: "former",
		FamilySize:    "3",
	}
	first := m.Recommend(in, testNow)
	second := m.Recommend(in, testNow)
	assert.Equal(t, first, second)
}

func TestRecommendMultipliersAndOrdering(t *testing.T) {
	m, err := LoadModel(writeWeights(t, validWeights))
	require.NoError(t, err)

	offers := m.Recommend(Input{DateOfBirth: "1960-06-01", FamilySize: "2"}, testNow)
	require.Len(t, offers, 5)

	byName := map[string]Offer{}
	for _, o := range offers {
		byName[o.Name] = o
	}
	whole := byName["Whole Life Insurance"]
	universal := byName["Universal Life Insurance"]
	assert.InDelta(t, universal.Score*1.1, whole.Score, 1e-9)

	for i := 1; i < len(offers); i++ {
		assert.GreaterOrEqual(t, offers[i-1].Score, offers[i].Score)
	}
	assert.Equal(t, "Whole Life Insurance", offers[0].Name,
		"highest multiplier ranks first")
}
