package domain

// Advise answers an utterance from the keyword rule table without calling a
// model. Stopwords are removed first, then the first rule with a matching
// keyword wins; software is checked before business, business before art.
func Advise(utterance string) string {
	return defaultLexicon.Advise(utterance)
}

func (l *Lexicon) Advise(utterance string) string {
	rule, ok := l.MatchRule(utterance)
	if !ok {
		return l.Fallback
	}
	return rule.Reply
}

// MatchRule reports the first advice rule whose keywords appear in the
// utterance.
func (l *Lexicon) MatchRule(utterance string) (AdviceRule, bool) {
	present := make(map[string]struct{})
	for _, token := range Tokenize(utterance) {
		if l.isStopword(token.Norm) {
			continue
		}
		present[token.Norm] = struct{}{}
	}

	for _, rule := range l.Rules {
		for _, keyword := range rule.Keywords {
			if _, ok := present[keyword]; ok {
				return rule, true
			}
		}
	}

	return AdviceRule{}, false
}
