package lang

import (
	"log/slog"
	"unicode"
)

// Marker characters recognized by the scanner.
const (
	charOpen      = '['
	charClose     = ']'
	charSeparator = '|'
)

// Lex converts source text into a token stream.
//
// Scanning is a single deterministic pass followed by one reclassification
// pass that turns identifiers in argument position (immediately after a
// separator) into literal Value tokens. The end-of-input sentinel terminates
// the scan loop and is never appended to the returned stream.
func Lex(source string) ([]Token, error) {
	src := []rune(source)

	var out []Token

	pos, n := 0, len(src)

	for pos < n {
		switch r := src[pos]; {
		case r == charOpen:
			out = append(out, Token{Kind: KindMarker, Marker: MarkerOpen})
			pos++

		case r == charClose:
			out = append(out, Token{Kind: KindMarker, Marker: MarkerClose})
			pos++

		case r == charSeparator:
			out = append(out, Token{Kind: KindMarker, Marker: MarkerSeparator})
			pos++

		case unicode.IsSpace(r):
			// Whitespace is consumed and discarded.
			pos++

		case isWordRune(r):
			// Greedy word scan. The cursor advances past each rune of the
			// run and backs off one position when it overshoots into a
			// close marker or separator, so that marker is lexed on the
			// next iteration.
			start := pos

			for pos < n {
				next := src[pos]
				pos++

				if next == charClose || next == charSeparator {
					pos--

					break
				}

				if !isWordRune(next) {
					pos--

					break
				}
			}

			out = append(out, Token{
				Kind: KindIdentifier,
				Text: string(src[start:pos]),
			})

		default:
			return nil, ErrUnexpectedCharacter.
				With(slog.String("char", string(r)))
		}
	}

	return reclassify(out), nil
}

// reclassify converts every Identifier token whose immediately preceding
// token is a separator marker into a Value token with the same text. This
// turns "argument position after |" into literal values; identifiers not
// preceded by a separator remain call or variable names. The first token of
// the stream has no predecessor and is never reclassified.
func reclassify(tokens []Token) []Token {
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Kind != KindIdentifier {
			continue
		}

		if tokens[i-1].IsMarker(MarkerSeparator) {
			tokens[i].Kind = KindValue
		}
	}

	return tokens
}

// isWordRune reports whether r may appear in an identifier or literal run:
// any Unicode letter (including Hangul) or digit.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
