package domain

// BiometricProfile is the caller-supplied input for a diet plan request.
// Values are consumed once per request and never mutated or stored.
type BiometricProfile struct {
	Age           int      `json:"age"`
	HeightCm      float64  `json:"height_cm"`
	WeightKg      float64  `json:"weight_kg"`
	Gender        string   `json:"gender"`
	ActivityLevel string   `json:"activity_level"`
	Goal          string   `json:"goal"`
	Preferences   []string `json:"preferences"`
}

// MetricResult holds the computed body-metric targets for one profile.
// CalorieTarget is always clamped to a floor of 1200 kcal.
type MetricResult struct {
	BMI            float64 `json:"bmi"`
	BMR            float64 `json:"bmr"`
	TDEE           float64 `json:"tdee"`
	CalorieTarget  int     `json:"calorie_target"`
	ProteinTargetG int     `json:"protein_target_g"`
}
