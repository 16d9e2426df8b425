package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesLoad(t *testing.T) {
	tables := Default()
	require.NotNil(t, tables)

	assert.Equal(t, "english", tables.FallbackLanguage())
	assert.Equal(t, []string{"english", "hindi"}, tables.Languages())
	assert.Same(t, tables, Default())
}

func TestTemplateLookup(t *testing.T) {
	tables := Default()

	text, ok := tables.Template("english", "Artificial Intelligence")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(text, "# The Future of Artificial Intelligence\n\n"))
	assert.True(t, strings.HasSuffix(text, "benefit humanity as a whole."))

	_, ok = tables.Template("english", "artificial intelligence")
	assert.False(t, ok, "topic lookup is case sensitive")

	_, ok = tables.Template("hindi", "Artificial Intelligence")
	assert.False(t, ok)

	_, ok = tables.Template("french", "Climate Change")
	assert.False(t, ok)
}

func TestLanguageDefaults(t *testing.T) {
	tables := Default()

	english, ok := tables.LanguageDefault("english")
	require.True(t, ok)
	assert.Equal(t, 5, strings.Count(english, TopicPlaceholder))
	assert.True(t, strings.HasPrefix(english, "# {topic}\n"))

	hindi, ok := tables.LanguageDefault("hindi")
	require.True(t, ok)
	assert.Equal(t, 4, strings.Count(hindi, TopicPlaceholder))

	_, ok = tables.LanguageDefault("french")
	assert.False(t, ok)
}

func TestFitnessPlansOrderAndShape(t *testing.T) {
	tables := Default()
	plans := tables.FitnessPlans()

	goals := make([]string, 0, len(plans))
	for _, plan := range plans {
		goals = append(goals, plan.Goal)
		assert.Len(t, plan.Steps, FitnessPlanLength, plan.Goal)
	}
	assert.Equal(t, []string{"weight-loss", "muscle-gain", "maintenance", "endurance"}, goals)
	assert.Equal(t, []string{"gain", "muscle"}, plans[1].Keywords)

	fallback := tables.FallbackFitnessPlan()
	assert.Equal(t, "general-fitness", fallback.Goal)
	assert.Len(t, fallback.Steps, FitnessPlanLength)
	assert.Equal(t, "🚶 Start with 20-30 minutes walking daily", fallback.Steps[0])
}

func TestDietPlansOrderAndKeywords(t *testing.T) {
	tables := Default()
	plans := tables.DietPlans()

	require.Len(t, plans, 4)
	want := []string{"diabetes", "hypertension", "thyroid", "heart disease"}
	for i, plan := range plans {
		assert.Equal(t, want[i], plan.Disease)
		assert.Equal(t, []string{want[i]}, plan.Keywords)
		assert.Len(t, plan.Recommended, 7)
		assert.Len(t, plan.Avoid, 7)
	}

	def := tables.DefaultDietPlan()
	assert.Equal(t, "Lean proteins (chicken, fish, legumes)", def.Recommended[1])
}

func TestAccessorsReturnCopies(t *testing.T) {
	tables := Default()

	plans := tables.DietPlans()
	plans[0].Recommended[0] = "mutated"
	plans[0].Recommended = append(plans[0].Recommended, "extra")

	def := tables.DefaultDietPlan()
	def.Recommended = def.Recommended[:0]
	def.Avoid[0] = "mutated"

	fitness := tables.FallbackFitnessPlan()
	fitness.Steps[0] = "mutated"

	assert.Equal(t, "Leafy greens (spinach, kale, lettuce)", tables.DietPlans()[0].Recommended[0])
	assert.Len(t, tables.DietPlans()[0].Recommended, 7)
	assert.Len(t, tables.DefaultDietPlan().Recommended, 7)
	assert.Equal(t, "Processed foods", tables.DefaultDietPlan().Avoid[0])
	assert.NotEqual(t, "mutated", tables.FallbackFitnessPlan().Steps[0])
}

func TestParseRejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			doc:     "content: [",
			wantErr: "failed to decode",
		},
		{
			name: "missing fallback language",
			doc: `
content:
  fallback_language: english
  languages:
    - name: hindi
      default: "{topic}"
`,
			wantErr: "fallback language",
		},
		{
			name: "short fitness plan",
			doc: `
content:
  fallback_language: english
  languages:
    - name: english
      default: "{topic}"
fitness:
  plans:
    - goal: short
      keywords: ["x"]
      steps: ["a", "b"]
`,
			wantErr: `fitness plan "short" has 2 steps`,
		},
		{
			name: "duplicate language",
			doc: `
content:
  fallback_language: english
  languages:
    - name: english
      default: "{topic}"
    - name: English
      default: "{topic}"
`,
			wantErr: "duplicate language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
