package domain

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var lexiconYAML []byte

// Lexicon holds the fixed word sets used for extraction and offline advice.
// All entries are normalized to lower case.
type Lexicon struct {
	Careers    []string
	Activities []string
	Ordinals   []string
	Stopwords  []string
	Rules      []AdviceRule
	Fallback   string
	Industries []Industry

	careerSet   map[string]struct{}
	activitySet map[string]struct{}
	ordinalSet  map[string]struct{}
	stopwordSet map[string]struct{}
}

// AdviceRule maps a keyword set to a canned reply. Rules are evaluated in
// slice order and the first match wins.
type AdviceRule struct {
	Category string
	Keywords []string
	Reply    string
}

type lexiconSchema struct {
	Careers    []string           `yaml:"careers"`
	Activities []string           `yaml:"activities"`
	Ordinals   []string           `yaml:"ordinals"`
	Stopwords  []string           `yaml:"stopwords"`
	Advice     []adviceRuleSchema `yaml:"advice"`
	Fallback   string             `yaml:"fallback"`
	Industries []industrySchema   `yaml:"industries"`
}

type adviceRuleSchema struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
	Reply    string   `yaml:"reply"`
}

type industrySchema struct {
	Name   string `yaml:"name"`
	Growth string `yaml:"growth"`
}

var defaultLexicon = mustParseLexicon(lexiconYAML)

// DefaultLexicon returns the embedded lexicon.
func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

// ParseLexicon decodes a YAML lexicon document.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var raw lexiconSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}
	if strings.TrimSpace(raw.Fallback) == "" {
		return nil, fmt.Errorf("lexicon fallback reply is required")
	}

	lex := &Lexicon{
		Careers:    normalizeWords(raw.Careers),
		Activities: normalizeWords(raw.Activities),
		Ordinals:   normalizeWords(raw.Ordinals),
		Stopwords:  normalizeWords(raw.Stopwords),
		Fallback:   strings.TrimSpace(raw.Fallback),
	}
	for _, rule := range raw.Advice {
		if strings.TrimSpace(rule.Reply) == "" {
			return nil, fmt.Errorf("advice rule %q has no reply", rule.Category)
		}
		lex.Rules = append(lex.Rules, AdviceRule{
			Category: rule.Category,
			Keywords: normalizeWords(rule.Keywords),
			Reply:    strings.TrimSpace(rule.Reply),
		})
	}
	for _, industry := range raw.Industries {
		lex.Industries = append(lex.Industries, Industry{Name: industry.Name, GrowthEstimate: industry.Growth})
	}

	lex.careerSet = toSet(lex.Careers)
	lex.activitySet = toSet(lex.Activities)
	lex.ordinalSet = toSet(lex.Ordinals)
	lex.stopwordSet = toSet(lex.Stopwords)

	return lex, nil
}

func mustParseLexicon(data []byte) *Lexicon {
	lex, err := ParseLexicon(data)
	if err != nil {
		panic(err)
	}
	return lex
}

// lookup returns the lexicon word a token stands for, accepting a plural
// "s" or "ies".
func lookup(set map[string]struct{}, token string) (string, bool) {
	if _, ok := set[token]; ok {
		return token, true
	}
	if stem, ok := strings.CutSuffix(token, "ies"); ok && stem != "" {
		if _, ok := set[stem+"y"]; ok {
			return stem + "y", true
		}
	}
	if singular, ok := strings.CutSuffix(token, "s"); ok && singular != "" {
		if _, ok := set[singular]; ok {
			return singular, true
		}
	}
	return "", false
}

func (l *Lexicon) isStopword(token string) bool {
	_, ok := l.stopwordSet[token]
	return ok
}

func normalizeWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		out = append(out, word)
	}
	return out
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}
