package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is one word of an utterance. Text keeps the original casing, Norm is
// the lower-cased form used for lexicon lookups.
type Token struct {
	Text  string
	Norm  string
	Start int
}

// Tokenize splits text on every rune that is not a letter, digit or
// apostrophe. Apostrophes at either end of a word are dropped so quoted words
// still match the lexicons.
func Tokenize(text string) []Token {
	var tokens []Token
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		word := text[start:end]
		trimmedLeft := strings.TrimLeft(word, "'’")
		offset := start + len(word) - len(trimmedLeft)
		word = strings.TrimRight(trimmedLeft, "'’")
		if word != "" {
			tokens = append(tokens, Token{
				Text:  word,
				Norm:  strings.ToLower(strings.ReplaceAll(word, "’", "'")),
				Start: offset,
			})
		}
		start = -1
	}

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
		} else {
			flush(i)
		}
		i += size
	}
	flush(len(text))

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '’'
}
