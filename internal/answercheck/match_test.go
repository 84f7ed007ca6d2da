package answercheck

import (
	"reflect"
	"testing"
)

func TestEquivalent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want bool
	}{
		{"ŽIR", "zir", true},
		{"čaj", "caj", true},
		{"Kuća", "kuca", true},
		{"  hello  world ", "hello world", true},
		{"hello", "world", false},
		{"dobar dan", "dobar   dan", true},
		{"dobar dan", "dobardan", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := Equivalent(tt.a, tt.b); got != tt.want {
			t.Errorf("Equivalent(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompareWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		user      string
		candidate string
		want      []WordDifference
	}{
		{
			name:      "second word wrong",
			user:      "dobar dan",
			candidate: "dobar vece",
			want: []WordDifference{
				{Word: "dobar", Position: 0, Correct: true},
				{Word: "dan", Position: 1, Correct: false, CorrectWord: "vece"},
			},
		},
		{
			name:      "diacritics ignored per word",
			user:      "dobar večer",
			candidate: "Dobar vecer",
			want: []WordDifference{
				{Word: "dobar", Position: 0, Correct: true},
				{Word: "večer", Position: 1, Correct: true},
			},
		},
		{
			name:      "user answer longer than candidate",
			user:      "good morning everyone",
			candidate: "good morning",
			want: []WordDifference{
				{Word: "good", Position: 0, Correct: true},
				{Word: "morning", Position: 1, Correct: true},
				{Word: "everyone", Position: 2, Correct: false},
			},
		},
		{
			name:      "user answer shorter than candidate emits nothing extra",
			user:      "good",
			candidate: "good morning",
			want: []WordDifference{
				{Word: "good", Position: 0, Correct: true},
			},
		},
		{
			name:      "transposed words are positionally wrong",
			user:      "dan dobar",
			candidate: "dobar dan",
			want: []WordDifference{
				{Word: "dan", Position: 0, Correct: false, CorrectWord: "dobar"},
				{Word: "dobar", Position: 1, Correct: false, CorrectWord: "dan"},
			},
		},
		{
			name:      "empty user answer",
			user:      "",
			candidate: "good morning",
			want:      []WordDifference{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CompareWords(tt.user, tt.candidate)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CompareWords(%q, %q) = %+v, want %+v", tt.user, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestMatchExactPrecedence(t *testing.T) {
	t.Parallel()

	res := Match("Kuća", []string{"kuća", "dom", "house"})
	if !res.Correct {
		t.Fatal("expected correct match")
	}
	if res.MatchedAnswer != "kuća" {
		t.Errorf("MatchedAnswer = %q, want %q", res.MatchedAnswer, "kuća")
	}
	if len(res.Differences) != 0 {
		t.Errorf("expected no differences on exact match, got %+v", res.Differences)
	}
}

func TestMatchSynonym(t *testing.T) {
	t.Parallel()

	res := Match("Hi", []string{"hello", "hi"})
	if !res.Correct {
		t.Fatal("expected correct match via synonym")
	}
	if res.MatchedAnswer != "hi" {
		t.Errorf("MatchedAnswer = %q, want %q", res.MatchedAnswer, "hi")
	}
}

func TestMatchBestEffortTieBreak(t *testing.T) {
	t.Parallel()

	// Both candidates agree on "good" and miss one word: the first candidate
	// in list order must win on every run.
	for i := 0; i < 10; i++ {
		res := Match("good night", []string{"good morning", "good evening"})
		if res.Correct {
			t.Fatal("expected incorrect result")
		}
		if res.MatchedAnswer != "" {
			t.Errorf("MatchedAnswer = %q, want empty on failure", res.MatchedAnswer)
		}
		if res.BestMatch != "good morning" {
			t.Fatalf("BestMatch = %q, want %q", res.BestMatch, "good morning")
		}
	}
}

func TestMatchAllEquallyWrong(t *testing.T) {
	t.Parallel()

	res := Match("bad", []string{"good", "nice", "fine"})
	if res.Correct {
		t.Fatal("expected incorrect result")
	}
	if res.BestMatch != "good" {
		t.Errorf("BestMatch = %q, want first candidate %q", res.BestMatch, "good")
	}
	want := []WordDifference{{Word: "bad", Position: 0, Correct: false, CorrectWord: "good"}}
	if !reflect.DeepEqual(res.Differences, want) {
		t.Errorf("Differences = %+v, want %+v", res.Differences, want)
	}
}

func TestMatchPrefersLeastWrongCandidate(t *testing.T) {
	t.Parallel()

	res := Match("dobro jutro", []string{"laku noc", "dobro vece"})
	if res.BestMatch != "dobro vece" {
		t.Errorf("BestMatch = %q, want %q", res.BestMatch, "dobro vece")
	}
}

func TestMatchEmptyCandidates(t *testing.T) {
	t.Parallel()

	res := Match("anything", nil)
	if res.Correct {
		t.Error("expected incorrect result for empty candidate list")
	}
	if res.BestMatch != "" {
		t.Errorf("BestMatch = %q, want empty", res.BestMatch)
	}
	if len(res.Differences) != 0 {
		t.Errorf("expected no differences, got %+v", res.Differences)
	}
}
