package recommend

import (
	"strconv"
	"time"
)

// Feature engineering: each categorical input maps through a fixed
// table to a value in [0,1]. Unknown or missing keys score 0.5.

var incomeMapping = map[string]float64{
	"under-3lakh":   0.2,
	"3lakh-5lakh":   0.4,
	"5lakh-8lakh":   0.6,
	"8lakh-12lakh":  0.7,
	"12lakh-20lakh": 0.8,
	"20lakh-30lakh": 0.9,
	"over-30lakh":   1.0,
}

var coverageMapping = map[string]float64{
	"10lakh-25lakh":   0.3,
	"25lakh-50lakh":   0.5,
	"50lakh-75lakh":   0.7,
	"75lakh-1crore":   0.8,
	"1crore-1.5crore": 0.9,
	"1.5crore-2crore": 0.95,
	"over-2crore":     1.0,
}

var premiumMapping = map[string]float64{
	"under-2000":  0.2,
	"2000-5000":   0.4,
	"5000-8000":   0.6,
	"8000-12000":  0.7,
	"12000-20000": 0.8,
	"20000-30000": 0.9,
	"over-30000":  1.0,
}

var riskMapping = map[string]float64{
	"conservative": 0.3,
	"moderate":     0.6,
	"aggressive":   0.9,
}

// Lower is riskier for the insurer, so "never" scores highest.
var smokingMapping = map[string]float64{
	"never":   1.0,
	"former":  0.7,
	"current": 0.3,
}

var exerciseMapping = map[string]float64{
	"none":     0.2,
	"light":    0.5,
	"moderate": 0.8,
	"intense":  1.0,
}

const unknownScore = 0.5

func encode(mapping map[string]float64, key string) float64 {
	if v, ok := mapping[key]; ok {
		return v
	}
	return unknownScore
}

// Age a date-of-birth parse failure defaults to, tuned for the
// senior audience.
const defaultAge = 65

// calculateAge derives whole years from a "YYYY-MM-DD" date of birth.
func calculateAge(dateOfBirth string, now time.Time) float64 {
	birth, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return defaultAge
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return float64(age)
}

// Input is the recommendation questionnaire payload.
type Input struct {
	DateOfBirth       string   `json:"dateOfBirth"`
	AnnualIncome      string   `json:"annualIncome"`
	CoverageAmount    string   `json:"coverageAmount"`
	PremiumBudget     string   `json:"premiumBudget"`
	RiskTolerance     string   `json:"riskTolerance"`
	SmokingStatus     string   `json:"smokingStatus"`
	ExerciseFrequency string   `json:"exerciseFrequency"`
	FamilySize        string   `json:"familySize"`
	MedicalConditions []string `json:"medicalConditions"`
	Dependents        string   `json:"dependents"`
}

// FeatureVector encodes the questionnaire into the ten features the
// model expects, in its fixed order.
func FeatureVector(in Input, now time.Time) []float64 {
	familySize, err := strconv.Atoi(in.FamilySize)
	if err != nil {
		familySize = 2
	}
	familyScore := float64(familySize) / 4.0
	if familyScore > 1.0 {
		familyScore = 1.0
	}

	// Each medical condition knocks 0.2 off, floored at 0.1.
	healthScore := 1.0 - 0.2*float64(len(in.MedicalConditions))
	if healthScore < 0.1 {
		healthScore = 0.1
	}

	dependentsScore := 0.5
	if in.Dependents == "yes" {
		dependentsScore = 0.8
	}

	return []float64{
		calculateAge(in.DateOfBirth, now),
		encode(incomeMapping, in.AnnualIncome),
		encode(coverageMapping, in.CoverageAmount),
		encode(premiumMapping, in.PremiumBudget),
		encode(riskMapping, in.RiskTolerance),
		encode(smokingMapping, in.SmokingStatus),
		encode(exerciseMapping, in.ExerciseFrequency),
		familyScore,
		healthScore,
		dependentsScore,
	}
}
