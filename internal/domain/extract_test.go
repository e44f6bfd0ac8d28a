package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		utterance string
		want      ContextAttributes
	}{
		{
			name:      "digit ordinal before grade",
			utterance: "I'm in 11th grade",
			want:      ContextAttributes{GradeLevel: "11th"},
		},
		{
			name:      "grade is case insensitive",
			utterance: "Currently 10TH GRADE at a school in Durban",
			want:      ContextAttributes{GradeLevel: "10TH"},
		},
		{
			name:      "word ordinal after grade",
			utterance: "my grade twelfth results come out soon",
			want:      ContextAttributes{GradeLevel: "twelfth"},
		},
		{
			name:      "ordinal without grade is ignored",
			utterance: "I came 3rd in the maths olympiad",
			want:      ContextAttributes{},
		},
		{
			name:      "grade without ordinal is ignored",
			utterance: "my grade average is good",
			want:      ContextAttributes{},
		},
		{
			name:      "ordinal not adjacent to grade is ignored",
			utterance: "my 2nd choice depends on the grade I get",
			want:      ContextAttributes{},
		},
		{
			name:      "single career word",
			utterance: "I want to become a Nurse",
			want:      ContextAttributes{CareerInterest: "nurse"},
		},
		{
			name:      "first career word wins",
			utterance: "either a doctor or an engineer",
			want:      ContextAttributes{CareerInterest: "doctor"},
		},
		{
			name:      "plural career word",
			utterance: "engineers seem to earn well",
			want:      ContextAttributes{CareerInterest: "engineer"},
		},
		{
			name:      "activities keep order and duplicates",
			utterance: "volunteering, an internship and more volunteering",
			want:      ContextAttributes{Activities: []string{"volunteering", "internship", "volunteering"}},
		},
		{
			name:      "ies plural maps to y",
			utterance: "bursaries and internships",
			want:      ContextAttributes{Activities: []string{"bursary", "internship"}},
		},
		{
			name:      "grade with bare number is ignored",
			utterance: "I'm in Grade 11",
			want:      ContextAttributes{},
		},
		{
			name:      "everything at once",
			utterance: "In 12th grade I did an internship and want to be a teacher, mentorship helped",
			want: ContextAttributes{
				GradeLevel:     "12th",
				CareerInterest: "teacher",
				Activities:     []string{"internship", "mentorship"},
			},
		},
		{
			name:      "nothing recognisable",
			utterance: "hello there",
			want:      ContextAttributes{},
		},
		{
			name:      "empty",
			utterance: "",
			want:      ContextAttributes{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Extract(tc.utterance)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Extract(%q) mismatch (-want +got):\n%s", tc.utterance, diff)
			}
		})
	}
}

func TestExtractIsPure(t *testing.T) {
	t.Parallel()

	first := Extract("11th grade, internship, engineer")
	second := Extract("11th grade, internship, engineer")

	assert.Equal(t, first, second)
}

func TestTokenizeKeepsOffsetsAndStripsQuotes(t *testing.T) {
	t.Parallel()

	tokens := Tokenize("I'm 'keen' on 11th-grade")

	norms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		norms = append(norms, token.Norm)
	}
	assert.Equal(t, []string{"i'm", "keen", "on", "11th", "grade"}, norms)
	assert.Equal(t, "keen", "I'm 'keen' on 11th-grade"[tokens[1].Start:tokens[1].Start+len(tokens[1].Text)])
}

func TestParseLexiconRequiresFallback(t *testing.T) {
	t.Parallel()

	_, err := ParseLexicon([]byte("careers: [engineer]\n"))
	assert.ErrorContains(t, err, "fallback reply is required")
}
