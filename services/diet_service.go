package services

import (
	"context"

	"aromi-agent-backend/knowledge"
	"aromi-agent-backend/models"
	"aromi-agent-backend/utils"

	"github.com/rs/zerolog"
)

const (
	MaxRecommended = 8
	MaxAvoid       = 6
)

// DietService selects dietary guidance for a health condition.
type DietService struct {
	diseases *utils.KeywordMatcher[knowledge.DietPlan]
}

func NewDietService(tables *knowledge.Tables) *DietService {
	plans := tables.DietPlans()
	rules := make([]utils.Rule[knowledge.DietPlan], 0, len(plans))
	for _, plan := range plans {
		rules = append(rules, utils.Rule[knowledge.DietPlan]{Keywords: plan.Keywords, Value: plan})
	}

	return &DietService{
		diseases: utils.NewKeywordMatcher(rules, tables.DefaultDietPlan()),
	}
}

// BuildPlan filters a private copy of the matched plan, so one request's
// preference never leaks into the next.
func (s *DietService) BuildPlan(ctx context.Context, req models.DiseaseRequest) (*models.DiseaseResponse, error) {
	plan := s.diseases.Match(req.Disease).Clone()
	preference := req.PreferenceOrDefault()
	recommended := utils.ApplyPreference(plan.Recommended, preference)

	zerolog.Ctx(ctx).Debug().
		Str("plan", plan.Disease).
		Str("preference", string(utils.ParsePreference(preference))).
		Msg("diet plan selected")

	return &models.DiseaseResponse{
		Recommended: utils.Truncate(recommended, MaxRecommended),
		Avoid:       utils.Truncate(plan.Avoid, MaxAvoid),
	}, nil
}
