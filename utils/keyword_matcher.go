package utils

import "strings"

// Rule maps a group of keywords to the value selected when any of them matches.
type Rule[T any] struct {
	Keywords []string
	Value    T
}

// KeywordMatcher picks a value for free text by walking its rules in order.
// The first rule with a matching keyword wins; no match yields the fallback.
type KeywordMatcher[T any] struct {
	rules    []Rule[T]
	fallback T
}

func NewKeywordMatcher[T any](rules []Rule[T], fallback T) *KeywordMatcher[T] {
	normalized := make([]Rule[T], 0, len(rules))
	for _, rule := range rules {
		keywords := make([]string, 0, len(rule.Keywords))
		for _, keyword := range rule.Keywords {
			if keyword = Normalize(keyword); keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
		normalized = append(normalized, Rule[T]{Keywords: keywords, Value: rule.Value})
	}

	return &KeywordMatcher[T]{
		rules:    normalized,
		fallback: fallback,
	}
}

// Match returns the value of the first rule with a keyword contained in text.
func (m *KeywordMatcher[T]) Match(text string) T {
	value, _ := m.Lookup(text)
	return value
}

// Lookup is Match that also reports whether a rule matched.
func (m *KeywordMatcher[T]) Lookup(text string) (T, bool) {
	text = Normalize(text)
	if text == "" {
		return m.fallback, false
	}

	for _, rule := range m.rules {
		if containsAnyKeyword(text, rule.Keywords) {
			return rule.Value, true
		}
	}
	return m.fallback, false
}

// MatchExact returns the value of the first rule with a keyword equal to text.
func (m *KeywordMatcher[T]) MatchExact(text string) T {
	text = Normalize(text)
	for _, rule := range m.rules {
		for _, keyword := range rule.Keywords {
			if keyword == text {
				return rule.Value
			}
		}
	}
	return m.fallback
}

// Normalize lower-cases and trims text before matching.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func containsAnyKeyword(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
