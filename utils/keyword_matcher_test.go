package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newGoalMatcher() *KeywordMatcher[string] {
	return NewKeywordMatcher([]Rule[string]{
		{Keywords: []string{"lose"}, Value: "weight-loss"},
		{Keywords: []string{"gain", "muscle"}, Value: "muscle-gain"},
		{Keywords: []string{"maintain"}, Value: "maintenance"},
		{Keywords: []string{"endurance"}, Value: "endurance"},
	}, "general-fitness")
}

func TestKeywordMatcherMatch(t *testing.T) {
	m := newGoalMatcher()

	tests := []struct {
		text string
		want string
	}{
		{"I want to LOSE weight", "weight-loss"},
		{"build Muscle", "muscle-gain"},
		{"Gain Weight", "muscle-gain"},
		{"  maintain  ", "maintenance"},
		{"Improve Endurance", "endurance"},
		{"lose fat and gain muscle", "weight-loss"},
		{"xyz", "general-fitness"},
		{"Get Fit", "general-fitness"},
		{"", "general-fitness"},
		{"   ", "general-fitness"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.text))
		})
	}
}

func TestKeywordMatcherLookupReportsFallback(t *testing.T) {
	m := newGoalMatcher()

	value, ok := m.Lookup("endurance run")
	assert.True(t, ok)
	assert.Equal(t, "endurance", value)

	value, ok = m.Lookup("yoga")
	assert.False(t, ok)
	assert.Equal(t, "general-fitness", value)
}

func TestKeywordMatcherIgnoresEmptyKeywords(t *testing.T) {
	m := NewKeywordMatcher([]Rule[int]{
		{Keywords: []string{"", "  "}, Value: 1},
		{Keywords: []string{"Heart Disease"}, Value: 2},
	}, 0)

	assert.Equal(t, 0, m.Match("anything"))
	assert.Equal(t, 2, m.Match("chronic heart disease"))
}

func TestKeywordMatcherMatchExact(t *testing.T) {
	m := NewKeywordMatcher([]Rule[string]{
		{Keywords: []string{"english"}, Value: "english"},
		{Keywords: []string{"hindi"}, Value: "hindi"},
	}, "english")

	assert.Equal(t, "hindi", m.MatchExact("Hindi"))
	assert.Equal(t, "english", m.MatchExact(" ENGLISH "))
	assert.Equal(t, "english", m.MatchExact("french"))
	assert.Equal(t, "english", m.MatchExact("hind"), "substrings do not count")
	assert.Equal(t, "english", m.MatchExact(""))
}
