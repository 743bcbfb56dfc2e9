package domain

import (
	"errors"
	"math"
)

// Unit systems accepted by the metrics engine.
const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

const (
	lbToKg      = 0.45359237
	inchToMeter = 0.0254

	// Inclusive lower and exclusive upper bound of the normal BMI band.
	normalBMILow  = 18.5
	normalBMIHigh = 25.0
	overweightBMI = 30.0
)

var (
	// ErrAgeOutOfRange indicates a supplied age outside the accepted range.
	ErrAgeOutOfRange = errors.New("age must be between 2 and 120")
	// ErrUnknownUnits indicates an unrecognised unit system.
	ErrUnknownUnits = errors.New("unit system must be \"metric\" or \"imperial\"")
	// ErrNonPositiveInput indicates height or weight that is missing or
	// converts to a non-positive value.
	ErrNonPositiveInput = errors.New("height and weight must be positive numbers")
)

// BMIStatus is one of the fixed, ordered classification bands.
type BMIStatus string

// Classification bands, ordered from lowest to highest BMI.
const (
	StatusUnderweight BMIStatus = "Underweight"
	StatusNormal      BMIStatus = "Normal weight"
	StatusOverweight  BMIStatus = "Overweight"
	StatusObesity     BMIStatus = "Obesity"
)

// MetricsInput is the raw anthropometric input for a BMI calculation.
// In metric units HeightPrimary is centimeters and Weight is kilograms;
// in imperial units HeightPrimary is feet, HeightSecondary is inches and
// Weight is pounds. Age is optional; zero means not supplied.
type MetricsInput struct {
	Units           string  `json:"unitSystem"`
	HeightPrimary   float64 `json:"heightPrimary"`
	HeightSecondary float64 `json:"heightSecondary,omitempty"`
	Weight          float64 `json:"weight"`
	Age             int     `json:"age,omitempty"`
	Gender          string  `json:"gender,omitempty"`
}

// MetricsResult is the derived, immutable outcome of a calculation.
type MetricsResult struct {
	BMI                float64    `json:"bmi"`
	Status             BMIStatus  `json:"status"`
	HealthyWeightRange [2]float64 `json:"healthyWeightRange"`
	BMIPrime           float64    `json:"bmiPrime"`
	PonderalIndex      float64    `json:"ponderalIndex"`
	HeightMeters       float64    `json:"heightMeters"`
	WeightKg           float64    `json:"weightKg"`
	Age                int        `json:"age,omitempty"`
	Gender             string     `json:"gender,omitempty"`
	Units              string     `json:"unitSystemUsed"`
}

// ComputeBMI converts the input to meters and kilograms, validates it and
// derives BMI, status band, healthy weight range, BMI Prime and Ponderal
// Index. It is a pure function; persisting the result is the caller's
// decision.
func ComputeBMI(in MetricsInput) (*MetricsResult, error) {
	if in.Age != 0 && (in.Age < 2 || in.Age > 120) {
		return nil, ErrAgeOutOfRange
	}

	var heightM, weightKg float64
	switch in.Units {
	case UnitsMetric:
		heightM = in.HeightPrimary / 100
		weightKg = in.Weight
	case UnitsImperial:
		totalInches := in.HeightPrimary*12 + in.HeightSecondary
		heightM = totalInches * inchToMeter
		weightKg = in.Weight * lbToKg
	default:
		return nil, ErrUnknownUnits
	}

	if heightM <= 0 || weightKg <= 0 {
		return nil, ErrNonPositiveInput
	}

	bmi := weightKg / (heightM * heightM)
	return &MetricsResult{
		BMI:    round1(bmi),
		Status: ClassifyBMI(bmi),
		HealthyWeightRange: [2]float64{
			round1(normalBMILow * heightM * heightM),
			round1(normalBMIHigh * heightM * heightM),
		},
		BMIPrime:      round2(bmi / normalBMIHigh),
		PonderalIndex: round2(weightKg / (heightM * heightM * heightM)),
		HeightMeters:  heightM,
		WeightKg:      weightKg,
		Age:           in.Age,
		Gender:        in.Gender,
		Units:         in.Units,
	}, nil
}

// ClassifyBMI maps a BMI value onto its status band. Bounds are inclusive
// below and exclusive above, evaluated lowest band first.
func ClassifyBMI(bmi float64) BMIStatus {
	switch {
	case bmi < normalBMILow:
		return StatusUnderweight
	case bmi < normalBMIHigh:
		return StatusNormal
	case bmi < overweightBMI:
		return StatusOverweight
	default:
		return StatusObesity
	}
}

// AdviceFor returns the nutrition guidance line shown next to a status band.
func AdviceFor(status BMIStatus) string {
	switch status {
	case StatusUnderweight:
		return "Consider nutrient-dense meals to move into the healthy range."
	case StatusNormal:
		return "Great job! Maintain your current habits to stay in this zone."
	case StatusOverweight:
		return "Focus on balanced meals and daily movement to reverse the trend."
	case StatusObesity:
		return "Work with a coach/clinician for a personalized plan; start with small daily changes."
	default:
		return "BMI compares your weight to your height to estimate health risk."
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
