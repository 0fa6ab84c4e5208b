package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"diet-planner-api/internal/domain"
)

type fakeGenerator struct {
	response   string
	err        error
	lastSystem string
	lastPrompt string
	calls      int
}

func (f *fakeGenerator) Generate(_ context.Context, system, prompt string) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastPrompt = prompt
	return f.response, f.err
}

var testProfile = domain.BiometricProfile{
	Age:           30,
	HeightCm:      170,
	WeightKg:      70,
	Gender:        "female",
	ActivityLevel: "moderate",
	Goal:          "loss",
}

var testResult = domain.MetricResult{
	BMI:            24.22,
	BMR:            1451.5,
	TDEE:           2249.83,
	CalorieTarget:  1850,
	ProteinTargetG: 119,
}

const validPlanJSON = `{
	"daily_calories": 1850,
	"protein_target_g": 119,
	"breakfast": ["Oatmeal with berries", "Boiled egg"],
	"lunch": ["Grilled chicken salad", "Brown rice"],
	"dinner": ["Baked salmon", "Steamed vegetables"],
	"snacks": ["Greek yogurt", "Apple"],
	"hydration": ["2L water", "Unsweetened tea"],
	"avoid_foods": ["Sugary drinks", "Fried snacks", "Pastries"],
	"notes": ["Eat slowly", "Plan meals ahead", "Prioritize protein"],
	"disclaimer": "General guidance from the model."
}`

func TestGeneratePlan(t *testing.T) {
	t.Run("parses well-formed model output", func(t *testing.T) {
		gen := &fakeGenerator{response: validPlanJSON}
		a := New(gen, zap.NewNop())

		plan, err := a.GeneratePlan(context.Background(), testProfile, testResult)
		require.NoError(t, err)

		assert.Equal(t, 1850.0, plan.DailyCalories)
		assert.Equal(t, 119.0, plan.ProteinTargetG)
		assert.Equal(t, []string{"Oatmeal with berries", "Boiled egg"}, plan.Breakfast)
		assert.Len(t, plan.AvoidFoods, 3)
		assert.Equal(t, "General guidance from the model.", plan.Disclaimer)
		assert.Equal(t, 1, gen.calls)
	})

	t.Run("tolerates surrounding whitespace", func(t *testing.T) {
		gen := &fakeGenerator{response: "\n  " + validPlanJSON + "  \n"}
		a := New(gen, zap.NewNop())

		plan, err := a.GeneratePlan(context.Background(), testProfile, testResult)
		require.NoError(t, err)
		assert.Equal(t, 1850.0, plan.DailyCalories)
	})

	t.Run("non-JSON output degrades to the fallback plan", func(t *testing.T) {
		gen := &fakeGenerator{response: "not json"}
		a := New(gen, zap.NewNop())

		plan, err := a.GeneratePlan(context.Background(), testProfile, testResult)
		require.NoError(t, err)

		assert.Equal(t, 1850.0, plan.DailyCalories)
		assert.Equal(t, 119.0, plan.ProteinTargetG)
		assert.Empty(t, plan.Breakfast)
		assert.Empty(t, plan.Lunch)
		assert.Empty(t, plan.Dinner)
		assert.Empty(t, plan.Snacks)
		assert.Empty(t, plan.Hydration)
		assert.Empty(t, plan.AvoidFoods)
		assert.Empty(t, plan.Notes)
		assert.Equal(t, fallbackDisclaimer, plan.Disclaimer)
		assert.NotEqual(t, "General guidance from the model.", plan.Disclaimer)
	})

	t.Run("empty output degrades to the fallback plan", func(t *testing.T) {
		gen := &fakeGenerator{response: "   "}
		a := New(gen, zap.NewNop())

		plan, err := a.GeneratePlan(context.Background(), testProfile, testResult)
		require.NoError(t, err)
		assert.Equal(t, fallbackDisclaimer, plan.Disclaimer)
	})

	t.Run("non-object output degrades to the fallback plan", func(t *testing.T) {
		gen := &fakeGenerator{response: `["a","b"]`}
		a := New(gen, zap.NewNop())

		plan, err := a.GeneratePlan(context.Background(), testProfile, testResult)
		require.NoError(t, err)
		assert.Equal(t, fallbackDisclaimer, plan.Disclaimer)
	})

	t.Run("transport errors propagate", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("connection reset")}
		a := New(gen, zap.NewNop())

		_, err := a.GeneratePlan(context.Background(), testProfile, testResult)
		assert.Error(t, err)
	})
}

func TestBuildPrompt(t *testing.T) {
	t.Run("embeds profile and targets", func(t *testing.T) {
		gen := &fakeGenerator{response: validPlanJSON}
		a := New(gen, zap.NewNop())

		_, err := a.GeneratePlan(context.Background(), testProfile, testResult)
		require.NoError(t, err)

		assert.Contains(t, gen.lastPrompt, "- age: 30")
		assert.Contains(t, gen.lastPrompt, "- height_cm: 170")
		assert.Contains(t, gen.lastPrompt, "- weight_kg: 70")
		assert.Contains(t, gen.lastPrompt, "- daily_calories: 1850")
		assert.Contains(t, gen.lastPrompt, "- protein_target_g: 119")
		assert.Contains(t, gen.lastPrompt, "Return ONLY valid JSON")
		assert.Equal(t, systemInstruction, gen.lastSystem)
	})

	t.Run("empty preferences become the literal none", func(t *testing.T) {
		gen := &fakeGenerator{response: validPlanJSON}
		a := New(gen, zap.NewNop())

		_, err := a.GeneratePlan(context.Background(), testProfile, testResult)
		require.NoError(t, err)
		assert.Contains(t, gen.lastPrompt, "Preferences/constraints: none")
	})

	t.Run("preferences are comma-joined", func(t *testing.T) {
		profile := testProfile
		profile.Preferences = []string{"vegetarian", "no dairy"}

		gen := &fakeGenerator{response: validPlanJSON}
		a := New(gen, zap.NewNop())

		_, err := a.GeneratePlan(context.Background(), profile, testResult)
		require.NoError(t, err)
		assert.Contains(t, gen.lastPrompt, "Preferences/constraints: vegetarian, no dairy")
	})
}
