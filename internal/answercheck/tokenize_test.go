package answercheck

import (
	"reflect"
	"testing"
)

func TestSplitWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "only whitespace", input: " \t \n ", want: []string{}},
		{name: "single word", input: "hello", want: []string{"hello"}},
		{name: "two words", input: "dobar dan", want: []string{"dobar", "dan"}},
		{name: "repeated separators", input: "good   morning", want: []string{"good", "morning"}},
		{name: "surrounding whitespace", input: "  good morning \t", want: []string{"good", "morning"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SplitWords(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitWords(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
