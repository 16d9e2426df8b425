// Package knowledge holds the canned content, fitness plans and diet plans
// served by the API. The tables are parsed once from an embedded YAML document
// and are read-only afterwards: every accessor hands out copies.
package knowledge

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// TopicPlaceholder is replaced with the requested topic in default templates.
const TopicPlaceholder = "{topic}"

// FitnessPlanLength is the number of steps every fitness plan carries.
const FitnessPlanLength = 6

//go:embed tables.yaml
var embeddedTables []byte

type Template struct {
	Topic string `yaml:"topic"`
	Text  string `yaml:"text"`
}

type Language struct {
	Name      string     `yaml:"name"`
	Templates []Template `yaml:"templates"`
	Default   string     `yaml:"default"`
}

type FitnessPlan struct {
	Goal     string   `yaml:"goal"`
	Keywords []string `yaml:"keywords"`
	Steps    []string `yaml:"steps"`
}

// Clone returns a deep copy of the plan.
func (p FitnessPlan) Clone() FitnessPlan {
	return FitnessPlan{
		Goal:     p.Goal,
		Keywords: cloneStrings(p.Keywords),
		Steps:    cloneStrings(p.Steps),
	}
}

type DietPlan struct {
	Disease     string   `yaml:"disease"`
	Keywords    []string `yaml:"keywords"`
	Recommended []string `yaml:"recommended"`
	Avoid       []string `yaml:"avoid"`
}

// Clone returns a deep copy of the plan.
func (p DietPlan) Clone() DietPlan {
	return DietPlan{
		Disease:     p.Disease,
		Keywords:    cloneStrings(p.Keywords),
		Recommended: cloneStrings(p.Recommended),
		Avoid:       cloneStrings(p.Avoid),
	}
}

type document struct {
	Content struct {
		FallbackLanguage string     `yaml:"fallback_language"`
		Languages        []Language `yaml:"languages"`
	} `yaml:"content"`
	Fitness struct {
		Plans    []FitnessPlan `yaml:"plans"`
		Fallback FitnessPlan   `yaml:"fallback"`
	} `yaml:"fitness"`
	Diet struct {
		Plans   []DietPlan `yaml:"plans"`
		Default DietPlan   `yaml:"default"`
	} `yaml:"diet"`
}

// Tables is an immutable view over the parsed knowledge document.
type Tables struct {
	doc       document
	languages map[string]int
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the process-wide tables built from the embedded document.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Parse(embeddedTables)
		if err != nil {
			panic(fmt.Sprintf("knowledge: embedded tables are invalid: %v", err))
		}
		defaultTables = t
	})
	return defaultTables
}

// Parse decodes a knowledge document and checks its invariants.
func Parse(data []byte) (*Tables, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode knowledge tables: %w", err)
	}

	doc.Content.FallbackLanguage = strings.ToLower(doc.Content.FallbackLanguage)
	t := &Tables{doc: doc, languages: make(map[string]int, len(doc.Content.Languages))}
	for i := range t.doc.Content.Languages {
		lang := &t.doc.Content.Languages[i]
		lang.Name = strings.ToLower(lang.Name)
		if _, dup := t.languages[lang.Name]; dup {
			return nil, fmt.Errorf("duplicate language %q", lang.Name)
		}
		t.languages[lang.Name] = i
	}
	for i := range t.doc.Diet.Plans {
		plan := &t.doc.Diet.Plans[i]
		if len(plan.Keywords) == 0 && plan.Disease != "" {
			plan.Keywords = []string{plan.Disease}
		}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate reports the first structural problem found in the tables.
func (t *Tables) Validate() error {
	fallback, ok := t.language(t.doc.Content.FallbackLanguage)
	if !ok {
		return fmt.Errorf("fallback language %q is not defined", t.doc.Content.FallbackLanguage)
	}
	if fallback.Default == "" {
		return fmt.Errorf("fallback language %q has no default template", fallback.Name)
	}

	plans := append(t.FitnessPlans(), t.FallbackFitnessPlan())
	for _, plan := range plans {
		if len(plan.Steps) != FitnessPlanLength {
			return fmt.Errorf("fitness plan %q has %d steps, want %d", plan.Goal, len(plan.Steps), FitnessPlanLength)
		}
	}
	for _, plan := range t.doc.Fitness.Plans {
		if len(plan.Keywords) == 0 {
			return fmt.Errorf("fitness plan %q has no keywords", plan.Goal)
		}
	}

	for _, plan := range t.doc.Diet.Plans {
		if len(plan.Keywords) == 0 {
			return fmt.Errorf("diet plan at %q has no keywords", plan.Disease)
		}
	}
	if len(t.doc.Diet.Default.Recommended) == 0 {
		return fmt.Errorf("default diet plan has no recommendations")
	}
	return nil
}

func (t *Tables) language(name string) (Language, bool) {
	i, ok := t.languages[name]
	if !ok {
		return Language{}, false
	}
	return t.doc.Content.Languages[i], true
}

// FallbackLanguage is used when a request names an unknown language.
func (t *Tables) FallbackLanguage() string {
	return t.doc.Content.FallbackLanguage
}

// Languages lists the supported language names in document order.
func (t *Tables) Languages() []string {
	names := make([]string, 0, len(t.doc.Content.Languages))
	for _, lang := range t.doc.Content.Languages {
		names = append(names, lang.Name)
	}
	return names
}

// Template returns the hand-written text for an exact topic in a language.
func (t *Tables) Template(language, topic string) (string, bool) {
	lang, ok := t.language(language)
	if !ok {
		return "", false
	}
	for _, tmpl := range lang.Templates {
		if tmpl.Topic == topic {
			return tmpl.Text, true
		}
	}
	return "", false
}

// LanguageDefault returns the placeholder template of a language.
func (t *Tables) LanguageDefault(language string) (string, bool) {
	lang, ok := t.language(language)
	if !ok || lang.Default == "" {
		return "", false
	}
	return lang.Default, true
}

func (t *Tables) FitnessPlans() []FitnessPlan {
	plans := make([]FitnessPlan, 0, len(t.doc.Fitness.Plans))
	for _, plan := range t.doc.Fitness.Plans {
		plans = append(plans, plan.Clone())
	}
	return plans
}

func (t *Tables) FallbackFitnessPlan() FitnessPlan {
	return t.doc.Fitness.Fallback.Clone()
}

func (t *Tables) DietPlans() []DietPlan {
	plans := make([]DietPlan, 0, len(t.doc.Diet.Plans))
	for _, plan := range t.doc.Diet.Plans {
		plans = append(plans, plan.Clone())
	}
	return plans
}

func (t *Tables) DefaultDietPlan() DietPlan {
	return t.doc.Diet.Default.Clone()
}

func cloneStrings(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
