package repl

import (
	"testing"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		cursor int
		want   string
	}{
		{
			name:   "name inside brackets",
			input:  "[[더하기|1]]",
			cursor: len("[[더하기"),
			want:   "더하기",
		},
		{
			name:   "cursor mid-word",
			input:  "[[print|x]]",
			cursor: len("[[pri"),
			want:   "print",
		},
		{
			name:   "cursor on separator is empty",
			input:  "[[sum|",
			cursor: len("[[sum|"),
			want:   "",
		},
		{
			name:   "argument after separator",
			input:  "[[sum|값]]",
			cursor: len("[[sum|값"),
			want:   "값",
		},
		{
			name:   "empty input",
			input:  "",
			cursor: 0,
			want:   "",
		},
		{
			name:   "cursor clamped past end",
			input:  "[[ab",
			cursor: 99,
			want:   "ab",
		},
		{
			name:   "command word after colon",
			input:  ":hel",
			cursor: 4,
			want:   "hel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)

			if word != tt.want {
				t.Errorf("word = %q, want %q", word, tt.want)
			}

			if start > end || end > len(tt.input) {
				t.Errorf("bounds out of range: start=%d end=%d len=%d",
					start, end, len(tt.input))
			}

			if tt.input[start:end] != word {
				t.Errorf("bounds do not cover word: %q vs %q",
					tt.input[start:end], word)
			}
		})
	}
}
