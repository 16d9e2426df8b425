package services

import (
	"context"

	"aromi-agent-backend/knowledge"
	"aromi-agent-backend/models"
	"aromi-agent-backend/utils"

	"github.com/rs/zerolog"
)

// FitnessService classifies BMI and picks an exercise plan for a goal.
type FitnessService struct {
	goals *utils.KeywordMatcher[knowledge.FitnessPlan]
}

func NewFitnessService(tables *knowledge.Tables) *FitnessService {
	plans := tables.FitnessPlans()
	rules := make([]utils.Rule[knowledge.FitnessPlan], 0, len(plans))
	for _, plan := range plans {
		rules = append(rules, utils.Rule[knowledge.FitnessPlan]{Keywords: plan.Keywords, Value: plan})
	}

	return &FitnessService{
		goals: utils.NewKeywordMatcher(rules, tables.FallbackFitnessPlan()),
	}
}

func (s *FitnessService) BuildPlan(ctx context.Context, req models.FitnessRequest) (*models.FitnessResponse, error) {
	bmi, err := utils.CalculateBMI(float64(req.Height), float64(req.Weight))
	if err != nil {
		return nil, models.NewValidationError(err)
	}
	category := utils.ClassifyBMI(bmi)

	plan := s.goals.Match(req.Goal).Clone()

	zerolog.Ctx(ctx).Debug().
		Float64("bmi", bmi).
		Str("category", string(category)).
		Str("plan", plan.Goal).
		Msg("fitness plan selected")

	return &models.FitnessResponse{
		BMI:      bmi,
		Category: string(category),
		Plan:     plan.Steps,
	}, nil
}
