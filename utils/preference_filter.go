package utils

import (
	"strings"

	"aromi-agent-backend/models"
)

type Preference string

const (
	PreferenceNone       Preference = ""
	PreferenceVegetarian Preference = "vegetarian"
	PreferenceVegan      Preference = "vegan"
	PreferenceKeto       Preference = "keto"
)

type preferenceRule struct {
	preference Preference
	exclude    []string
	additions  []string
}

// Checked in order; the first preference found in the request text applies.
var preferenceRules = []preferenceRule{
	{
		preference: PreferenceVegetarian,
		exclude:    []string{"chicken", "fish"},
		additions:  []string{"Plant-based proteins (tofu, tempeh, legumes)"},
	},
	{
		preference: PreferenceVegan,
		exclude:    []string{"chicken", "fish", "yogurt", "dairy"},
		additions:  []string{"Plant-based proteins", "Fortified plant milks"},
	},
	{
		preference: PreferenceKeto,
		exclude:    []string{"grains", "oats"},
		additions:  []string{"Healthy fats", "Low-carb vegetables"},
	},
}

// ParsePreference reports which filter a free-text preference selects.
func ParsePreference(raw string) Preference {
	rule, ok := findPreferenceRule(raw)
	if !ok {
		return PreferenceNone
	}
	return rule.preference
}

// ApplyPreference drops recommendations that conflict with the preference and
// appends its substitutes. The input slice is never modified; the result is
// always a fresh slice.
func ApplyPreference(recommended []string, raw string) []string {
	rule, ok := findPreferenceRule(raw)
	if !ok {
		return Truncate(recommended, len(recommended))
	}

	filtered := make([]string, 0, len(recommended)+len(rule.additions))
	for _, item := range recommended {
		if containsAnyKeyword(strings.ToLower(item), rule.exclude) {
			continue
		}
		filtered = append(filtered, item)
	}
	return append(filtered, rule.additions...)
}

func findPreferenceRule(raw string) (preferenceRule, bool) {
	if raw == "" || raw == models.NoPreference {
		return preferenceRule{}, false
	}

	text := strings.ToLower(raw)
	for _, rule := range preferenceRules {
		if strings.Contains(text, string(rule.preference)) {
			return rule, true
		}
	}
	return preferenceRule{}, false
}

// Truncate returns a copy of at most limit leading items. The result is never nil.
func Truncate(items []string, limit int) []string {
	if limit < 0 {
		limit = 0
	}
	n := len(items)
	if n > limit {
		n = limit
	}
	out := make([]string, n)
	copy(out, items[:n])
	return out
}
