// Package planner composes the metric calculator and the plan advisor
// into the combined diet-plan response.
package planner

import (
	"context"

	"diet-planner-api/internal/advisor"
	"diet-planner-api/internal/domain"
	"diet-planner-api/internal/metrics"
)

// Disclaimer is the fixed top-level response disclaimer.
const Disclaimer = "General wellness info only. Not medical advice."

type Planner struct {
	advisor *advisor.Advisor
}

func New(a *advisor.Advisor) *Planner {
	return &Planner{advisor: a}
}

// ComputeDietPlan derives the metric targets for a profile, feeds them to
// the advisor, and returns the combined result. The only failure mode is
// the advisor's transport error; malformed model output is already
// absorbed downstream.
func (p *Planner) ComputeDietPlan(ctx context.Context, profile domain.BiometricProfile) (*domain.PlanResponse, error) {
	result := metrics.Compute(profile)

	plan, err := p.advisor.GeneratePlan(ctx, profile, result)
	if err != nil {
		return nil, err
	}

	return &domain.PlanResponse{
		Metrics:    result,
		AIPlan:     plan,
		Disclaimer: Disclaimer,
	}, nil
}
