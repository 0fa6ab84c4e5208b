package domain

// DietPlan is the structured meal-plan suggestion. On the success path it
// is decoded from the model's JSON output; on a parse failure it is built
// by the fallback constructor with empty lists.
type DietPlan struct {
	DailyCalories  float64  `json:"daily_calories"`
	ProteinTargetG float64  `json:"protein_target_g"`
	Breakfast      []string `json:"breakfast"`
	Lunch          []string `json:"lunch"`
	Dinner         []string `json:"dinner"`
	Snacks         []string `json:"snacks"`
	Hydration      []string `json:"hydration"`
	AvoidFoods     []string `json:"avoid_foods"`
	Notes          []string `json:"notes"`
	Disclaimer     string   `json:"disclaimer"`
}

// PlanResponse combines the computed metrics with the advisor plan.
type PlanResponse struct {
	Metrics    MetricResult `json:"metrics"`
	AIPlan     DietPlan     `json:"ai_plan"`
	Disclaimer string       `json:"disclaimer"`
}
