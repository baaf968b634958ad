package lang

import (
	"errors"
	"testing"
)

func TestLex_TokenSequence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "call with one argument",
			input: "[[이름|값]]",
			want: []Token{
				{Kind: KindMarker, Marker: MarkerOpen},
				{Kind: KindMarker, Marker: MarkerOpen},
				{Kind: KindIdentifier, Text: "이름"},
				{Kind: KindMarker, Marker: MarkerSeparator},
				{Kind: KindValue, Text: "값"},
				{Kind: KindMarker, Marker: MarkerClose},
				{Kind: KindMarker, Marker: MarkerClose},
			},
		},
		{
			name:  "call with numeric arguments",
			input: "[[더하기|1|2|3]]",
			want: []Token{
				{Kind: KindMarker, Marker: MarkerOpen},
				{Kind: KindMarker, Marker: MarkerOpen},
				{Kind: KindIdentifier, Text: "더하기"},
				{Kind: KindMarker, Marker: MarkerSeparator},
				{Kind: KindValue, Text: "1"},
				{Kind: KindMarker, Marker: MarkerSeparator},
				{Kind: KindValue, Text: "2"},
				{Kind: KindMarker, Marker: MarkerSeparator},
				{Kind: KindValue, Text: "3"},
				{Kind: KindMarker, Marker: MarkerClose},
				{Kind: KindMarker, Marker: MarkerClose},
			},
		},
		{
			name:  "bare variable reference",
			input: "[[넓이]]",
			want: []Token{
				{Kind: KindMarker, Marker: MarkerOpen},
				{Kind: KindMarker, Marker: MarkerOpen},
				{Kind: KindIdentifier, Text: "넓이"},
				{Kind: KindMarker, Marker: MarkerClose},
				{Kind: KindMarker, Marker: MarkerClose},
			},
		},
		{
			name:  "whitespace between tokens is discarded",
			input: "  [[ 이름 | 값 ]]  ",
			want: []Token{
				{Kind: KindMarker, Marker: MarkerOpen},
				{Kind: KindMarker, Marker: MarkerOpen},
				{Kind: KindIdentifier, Text: "이름"},
				{Kind: KindMarker, Marker: MarkerSeparator},
				{Kind: KindValue, Text: "값"},
				{Kind: KindMarker, Marker: MarkerClose},
				{Kind: KindMarker, Marker: MarkerClose},
			},
		},
		{
			name:  "mixed script and digits in one word",
			input: "[[값12ab|7]]",
			want: []Token{
				{Kind: KindMarker, Marker: MarkerOpen},
				{Kind: KindMarker, Marker: MarkerOpen},
				{Kind: KindIdentifier, Text: "값12ab"},
				{Kind: KindMarker, Marker: MarkerSeparator},
				{Kind: KindValue, Text: "7"},
				{Kind: KindMarker, Marker: MarkerClose},
				{Kind: KindMarker, Marker: MarkerClose},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lex(tt.input)
			if err != nil {
				t.Fatalf("lex error: %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %d: %v",
					len(tt.want), len(got), got)
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: expected %+v, got %+v",
						i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestLex_EmptyStream(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n\r "} {
		got, err := Lex(input)
		if err != nil {
			t.Fatalf("lex error on %q: %v", input, err)
		}

		if len(got) != 0 {
			t.Errorf("expected empty stream for %q, got %v", input, got)
		}
	}
}

func TestLex_UnexpectedCharacter(t *testing.T) {
	for _, input := range []string{"@", "[[a|1+2]]", "{x}"} {
		_, err := Lex(input)
		if !errors.Is(err, ErrUnexpectedCharacter) {
			t.Errorf("expected ErrUnexpectedCharacter for %q, got %v",
				input, err)
		}
	}
}

func TestLex_Reclassification(t *testing.T) {
	t.Run("first token is never reclassified", func(t *testing.T) {
		got, err := Lex("값")
		if err != nil {
			t.Fatalf("lex error: %v", err)
		}

		if len(got) != 1 || got[0].Kind != KindIdentifier {
			t.Errorf("expected lone Identifier, got %v", got)
		}
	})

	t.Run("only words after a separator become values", func(t *testing.T) {
		// The second word follows the first value, not a separator,
		// so it stays an identifier.
		got, err := Lex("[[f|1 2]]")
		if err != nil {
			t.Fatalf("lex error: %v", err)
		}

		if got[4].Kind != KindValue || got[4].Text != "1" {
			t.Errorf("expected Value(1), got %v", got[4])
		}

		if got[5].Kind != KindIdentifier || got[5].Text != "2" {
			t.Errorf("expected Identifier(2), got %v", got[5])
		}
	})
}
