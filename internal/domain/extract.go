package domain

import (
	"regexp"
	"strings"
)

var digitOrdinal = regexp.MustCompile(`^\d{1,2}(st|nd|rd|th)$`)

// Extract pulls learner attributes out of a single utterance using the
// default lexicon. An utterance with nothing recognisable yields an empty
// result.
func Extract(utterance string) ContextAttributes {
	return defaultLexicon.Extract(utterance)
}

// Extract is the lexicon-bound form of the package-level Extract.
func (l *Lexicon) Extract(utterance string) ContextAttributes {
	tokens := Tokenize(utterance)

	var partial ContextAttributes
	partial.GradeLevel = l.gradeLevel(utterance, tokens)

	for _, token := range tokens {
		if partial.CareerInterest == "" {
			if career, ok := lookup(l.careerSet, token.Norm); ok {
				partial.CareerInterest = career
				continue
			}
		}
		if activity, ok := lookup(l.activitySet, token.Norm); ok {
			partial.Activities = append(partial.Activities, activity)
		}
	}

	return partial
}

// gradeLevel returns the first ordinal that sits directly next to a word
// containing "grade", e.g. "11th grade" or "grade twelfth".
func (l *Lexicon) gradeLevel(utterance string, tokens []Token) string {
	if !strings.Contains(strings.ToLower(utterance), "grade") {
		return ""
	}

	for i, token := range tokens {
		if !l.isOrdinal(token.Norm) {
			continue
		}
		if i+1 < len(tokens) && strings.Contains(tokens[i+1].Norm, "grade") {
			return token.Text
		}
		if i > 0 && strings.Contains(tokens[i-1].Norm, "grade") {
			return token.Text
		}
	}

	return ""
}

func (l *Lexicon) isOrdinal(norm string) bool {
	if digitOrdinal.MatchString(norm) {
		return true
	}
	_, ok := l.ordinalSet[norm]
	return ok
}
