package services

import (
	"context"
	"strings"
	"testing"

	"aromi-agent-backend/knowledge"
	"aromi-agent-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDietPlanMatchesDisease(t *testing.T) {
	svc := NewDietService(knowledge.Default())
	ctx := context.Background()

	tests := []struct {
		disease          string
		firstRecommended string
		firstAvoid       string
	}{
		{"Type 2 Diabetes", "Leafy greens (spinach, kale, lettuce)", "Sugary beverages and sodas"},
		{"HYPERTENSION", "Bananas and avocados (potassium-rich)", "High-sodium foods (canned soups, processed meats)"},
		{"hypothyroidism", "Selenium-rich foods (Brazil nuts, tuna)", "Soy-based products (can interfere with medication)"},
		{"coronary heart disease", "Fatty fish (salmon, tuna, mackerel)", "Trans fats (fried foods, baked goods)"},
		{"unknown condition", "Fresh fruits and vegetables", "Processed foods"},
		{"", "Fresh fruits and vegetables", "Processed foods"},
	}

	for _, tt := range tests {
		t.Run(tt.disease, func(t *testing.T) {
			resp, err := svc.BuildPlan(ctx, models.DiseaseRequest{Disease: tt.disease})
			require.NoError(t, err)

			assert.Equal(t, tt.firstRecommended, resp.Recommended[0])
			assert.Equal(t, tt.firstAvoid, resp.Avoid[0])
			assert.Len(t, resp.Recommended, 7)
			assert.Len(t, resp.Avoid, MaxAvoid)
		})
	}
}

func TestBuildDietPlanVegetarianDefault(t *testing.T) {
	svc := NewDietService(knowledge.Default())

	resp, err := svc.BuildPlan(context.Background(), models.DiseaseRequest{
		Disease:    "flu",
		Preference: "Vegetarian",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Fresh fruits and vegetables",
		"Whole grains",
		"Healthy fats (avocado, nuts, olive oil)",
		"Plenty of water",
		"Herbal teas",
		"Probiotic foods (yogurt, kefir)",
		"Plant-based proteins (tofu, tempeh, legumes)",
	}, resp.Recommended)
}

func TestBuildDietPlanRespectsListLimits(t *testing.T) {
	svc := NewDietService(knowledge.Default())
	ctx := context.Background()

	diseases := []string{"diabetes", "hypertension", "thyroid", "heart disease", "other"}
	preferences := []string{"", models.NoPreference, "vegetarian", "vegan", "keto", "paleo"}

	for _, disease := range diseases {
		for _, pref := range preferences {
			resp, err := svc.BuildPlan(ctx, models.DiseaseRequest{Disease: disease, Preference: pref})
			require.NoError(t, err)

			assert.LessOrEqual(t, len(resp.Recommended), MaxRecommended, "%s/%s", disease, pref)
			assert.LessOrEqual(t, len(resp.Avoid), MaxAvoid, "%s/%s", disease, pref)
			assert.NotNil(t, resp.Recommended)
			assert.NotNil(t, resp.Avoid)
		}
	}
}

func TestBuildDietPlanKetoFillsToLimit(t *testing.T) {
	svc := NewDietService(knowledge.Default())

	resp, err := svc.BuildPlan(context.Background(), models.DiseaseRequest{
		Disease:    "diabetes",
		Preference: "keto",
	})

	require.NoError(t, err)
	assert.Len(t, resp.Recommended, MaxRecommended)
	for _, item := range resp.Recommended {
		assert.NotContains(t, strings.ToLower(item), "grains")
		assert.NotContains(t, strings.ToLower(item), "oats")
	}
}

func TestBuildDietPlanDoesNotLeakBetweenRequests(t *testing.T) {
	svc := NewDietService(knowledge.Default())
	ctx := context.Background()

	baseline, err := svc.BuildPlan(ctx, models.DiseaseRequest{Disease: "diabetes"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for _, pref := range []string{"vegan", "vegetarian", "keto"} {
			resp, err := svc.BuildPlan(ctx, models.DiseaseRequest{Disease: "diabetes", Preference: pref})
			require.NoError(t, err)
			resp.Recommended[0] = "mutated"
		}
	}

	after, err := svc.BuildPlan(ctx, models.DiseaseRequest{Disease: "diabetes"})
	require.NoError(t, err)
	assert.Equal(t, baseline, after)
	assert.Contains(t, after.Recommended, "Lean proteins (chicken, fish, tofu)")
}
