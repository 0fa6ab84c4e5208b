// Package advisor turns computed targets into a structured meal-plan
// suggestion by prompting an external text-generation model.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"diet-planner-api/internal/domain"
)

// systemInstruction is sent with every generation call.
const systemInstruction = "You provide general diet guidance, not medical advice."

// fallbackDisclaimer is the program's own disclaimer, used only on the
// fallback path so it is distinguishable from a model-authored one.
const fallbackDisclaimer = "General wellness info only. For medical conditions, consult a qualified clinician."

// TextGenerator is the single call the advisor needs from a language-model
// provider. Tests inject fakes; production uses GeminiGenerator.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

type Advisor struct {
	gen    TextGenerator
	logger *zap.Logger
}

func New(gen TextGenerator, logger *zap.Logger) *Advisor {
	return &Advisor{gen: gen, logger: logger}
}

// GeneratePlan asks the model for a diet plan built around the computed
// targets. A transport failure of the call itself is returned as an error;
// malformed model output never is — it degrades to a deterministic
// fallback plan instead.
func (a *Advisor) GeneratePlan(ctx context.Context, profile domain.BiometricProfile, result domain.MetricResult) (domain.DietPlan, error) {
	prompt := buildPrompt(profile, result)

	content, err := a.gen.Generate(ctx, systemInstruction, prompt)
	if err != nil {
		return domain.DietPlan{}, fmt.Errorf("diet plan generation failed: %w", err)
	}

	content = strings.TrimSpace(content)

	var plan domain.DietPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		a.logger.Warn("model returned unparseable plan, using fallback",
			zap.Error(err),
			zap.Int("content_len", len(content)))
		return fallbackPlan(result), nil
	}

	return plan, nil
}

// fallbackPlan echoes the numeric targets and leaves every list empty.
func fallbackPlan(result domain.MetricResult) domain.DietPlan {
	return domain.DietPlan{
		DailyCalories:  float64(result.CalorieTarget),
		ProteinTargetG: float64(result.ProteinTargetG),
		Breakfast:      []string{},
		Lunch:          []string{},
		Dinner:         []string{},
		Snacks:         []string{},
		Hydration:      []string{},
		AvoidFoods:     []string{},
		Notes:          []string{},
		Disclaimer:     fallbackDisclaimer,
	}
}

func buildPrompt(p domain.BiometricProfile, r domain.MetricResult) string {
	prefText := "none"
	if len(p.Preferences) > 0 {
		prefText = strings.Join(p.Preferences, ", ")
	}

	var b strings.Builder
	b.WriteString("You are a nutrition assistant. Provide general wellness info, NOT medical advice.\n\n")

	b.WriteString("User profile:\n")
	fmt.Fprintf(&b, "- age: %d\n", p.Age)
	fmt.Fprintf(&b, "- height_cm: %g\n", p.HeightCm)
	fmt.Fprintf(&b, "- weight_kg: %g\n", p.WeightKg)
	fmt.Fprintf(&b, "- gender: %s\n", p.Gender)
	fmt.Fprintf(&b, "- activity_level: %s\n", p.ActivityLevel)
	fmt.Fprintf(&b, "- goal: %s\n\n", p.Goal)

	b.WriteString("Targets:\n")
	fmt.Fprintf(&b, "- daily_calories: %d\n", r.CalorieTarget)
	fmt.Fprintf(&b, "- protein_target_g: %d\n\n", r.ProteinTargetG)

	fmt.Fprintf(&b, "Preferences/constraints: %s\n\n", prefText)

	b.WriteString("Return ONLY valid JSON with EXACTLY these keys:\n")
	b.WriteString("- \"daily_calories\" (number)\n")
	b.WriteString("- \"protein_target_g\" (number)\n")
	b.WriteString("- \"breakfast\" (array of 2-3 items)\n")
	b.WriteString("- \"lunch\" (array of 2-3 items)\n")
	b.WriteString("- \"dinner\" (array of 2-3 items)\n")
	b.WriteString("- \"snacks\" (array of 2-3 items)\n")
	b.WriteString("- \"hydration\" (array of 2 items)\n")
	b.WriteString("- \"avoid_foods\" (array of 3 items)\n")
	b.WriteString("- \"notes\" (array of 3 short tips)\n")
	b.WriteString("- \"disclaimer\" (string, 1 line)\n\n")

	b.WriteString("Rules:\n")
	b.WriteString("- Keep items short and practical.\n")
	b.WriteString("- No supplement advice.\n")
	b.WriteString("- No disease claims.\n")
	b.WriteString("- No extra keys.\n")
	b.WriteString("- No markdown.\n")

	return b.String()
}
