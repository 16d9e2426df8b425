package utils

import (
	"errors"
	"fmt"
	"math"
)

type BMICategory string

const (
	Underweight  BMICategory = "Underweight"
	NormalWeight BMICategory = "Normal weight"
	Overweight   BMICategory = "Overweight"
	Obese        BMICategory = "Obese"
)

var ErrInvalidMeasurement = errors.New("height and weight must be positive numbers")

// CalculateBMI returns weight / (height in meters)^2 rounded to one decimal,
// halves away from zero. The formula keeps height in centimeters so integer
// inputs divide exactly: 180cm/81kg is 25.0, not 24.99...
func CalculateBMI(heightCM, weightKG float64) (float64, error) {
	if !isPositiveFinite(heightCM) || !isPositiveFinite(weightKG) {
		return 0, fmt.Errorf("%w: height=%v weight=%v", ErrInvalidMeasurement, heightCM, weightKG)
	}
	return math.Round(weightKG*100000/(heightCM*heightCM)) / 10, nil
}

// ClassifyBMI maps a BMI onto half-open intervals; boundaries go up.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
