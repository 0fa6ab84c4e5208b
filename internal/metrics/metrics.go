// Package metrics computes body-metric targets from biometric inputs.
// All functions are pure: no I/O, no shared state, deterministic output.
package metrics

import (
	"math"
	"strings"

	"diet-planner-api/internal/domain"
)

// activityMultipliers maps a normalized activity level to its TDEE factor.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"low":               1.2,
	"light":             1.375,
	"lightly active":    1.375,
	"moderate":          1.55,
	"moderately active": 1.55,
	"high":              1.725,
	"very active":       1.725,
	"athlete":           1.9,
	"extra active":      1.9,
}

var lossGoals = map[string]bool{
	"loss":        true,
	"weight loss": true,
	"fat loss":    true,
	"lose":        true,
}

var gainGoals = map[string]bool{
	"gain":        true,
	"weight gain": true,
	"bulk":        true,
	"gaining":     true,
}

const calorieFloor = 1200

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// BMI returns weight over height squared, rounded to 2 decimals.
// A non-positive height returns 0 instead of dividing by zero.
func BMI(heightCm, weightKg float64) float64 {
	heightM := heightCm / 100.0
	if heightM <= 0 {
		return 0.0
	}
	return round2(weightKg / (heightM * heightM))
}

// BMR estimates basal metabolic rate with the Mifflin-St Jeor formula.
// Gender matching is trimmed and case-folded; anything other than "male"
// uses the female constant.
func BMR(age int, heightCm, weightKg float64, gender string) float64 {
	base := 10.0*weightKg + 6.25*heightCm - 5.0*float64(age)

	adjustment := -161.0
	if normalize(gender) == "male" {
		adjustment = 5.0
	}

	return round2(base + adjustment)
}

// ActivityMultiplier looks up the TDEE factor for an activity level.
// Unrecognized or empty input falls back to sedentary (1.2); it never errors.
func ActivityMultiplier(activityLevel string) float64 {
	if m, ok := activityMultipliers[normalize(activityLevel)]; ok {
		return m
	}
	return 1.2
}

// TDEE scales BMR by the activity multiplier, rounded to 2 decimals.
func TDEE(bmr float64, activityLevel string) float64 {
	return round2(bmr * ActivityMultiplier(activityLevel))
}

// ApplyGoal adjusts a TDEE for the stated goal: -400 kcal for loss goals,
// +300 for gain goals, unchanged otherwise. The result is clamped to a
// floor of 1200 kcal and rounded to the nearest integer.
func ApplyGoal(tdee float64, goal string) int {
	g := normalize(goal)

	calories := tdee
	switch {
	case lossGoals[g]:
		calories = tdee - 400.0
	case gainGoals[g]:
		calories = tdee + 300.0
	}

	if calories < calorieFloor {
		calories = calorieFloor
	}
	return int(math.Round(calories))
}

// ProteinTarget returns the daily protein goal in grams: 1.8 g/kg for gain
// goals, 1.7 for loss, 1.6 otherwise.
func ProteinTarget(weightKg float64, goal string) int {
	g := normalize(goal)

	gramsPerKg := 1.6
	switch {
	case gainGoals[g]:
		gramsPerKg = 1.8
	case lossGoals[g]:
		gramsPerKg = 1.7
	}

	return int(math.Round(weightKg * gramsPerKg))
}

// Compute derives the full MetricResult for a profile.
func Compute(p domain.BiometricProfile) domain.MetricResult {
	bmr := BMR(p.Age, p.HeightCm, p.WeightKg, p.Gender)
	tdee := TDEE(bmr, p.ActivityLevel)

	return domain.MetricResult{
		BMI:            BMI(p.HeightCm, p.WeightKg),
		BMR:            bmr,
		TDEE:           tdee,
		CalorieTarget:  ApplyGoal(tdee, p.Goal),
		ProteinTargetG: ProteinTarget(p.WeightKg, p.Goal),
	}
}
