package lang

import (
	"log/slog"
)

// Parse converts a token stream into an AST by recursive descent: a single
// left-to-right pass with no backtracking. The cursor is an explicit parser
// value rather than shared state, so repeated parses of the same stream are
// independent and deterministic.
func Parse(tokens []Token) (*AST, error) {
	p := &parser{toks: tokens}

	ast := &AST{}

	for p.cur().Kind != KindEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		ast.Statements = append(ast.Statements, stmt)
	}

	return ast, nil
}

// parser holds the token stream and a cursor into it.
type parser struct {
	toks []Token
	pos  int
}

// cur returns the token under the cursor, synthesizing an end-of-input
// sentinel when the cursor has run off the stream.
func (p *parser) cur() Token {
	if p.pos >= len(p.toks) {
		return Token{Kind: KindEOF}
	}

	return p.toks[p.pos]
}

// next returns the token under the cursor and advances past it.
func (p *parser) next() Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}

	return t
}

// parseStatement parses one statement: a doubled-bracket construct, a
// literal Value token, or a raw Identifier token.
func (p *parser) parseStatement() (*Node, error) {
	switch tok := p.cur(); {
	case tok.IsMarker(MarkerOpen):
		return p.parseConstruct()

	case tok.Kind == KindValue:
		p.next()

		return &Node{Type: NodeValue, Text: tok.Text}, nil

	case tok.Kind == KindIdentifier:
		p.next()

		return &Node{Type: NodeIdentifier, Text: tok.Text}, nil

	case tok.Kind == KindEOF:
		return nil, ErrUnexpectedEndOfInput

	default:
		return nil, ErrUnexpectedToken.
			With(slog.String("token", tok.String()))
	}
}

// parseConstruct parses a call or a bare variable reference under the
// doubled-bracket protocol: both opening and closing the construct require
// two consecutive bracket tokens of the same direction.
func (p *parser) parseConstruct() (*Node, error) {
	p.next() // first open marker, verified by the caller

	if tok := p.next(); !tok.IsMarker(MarkerOpen) {
		return nil, ErrExpectedBlockStart.
			With(slog.String("token", tok.String()))
	}

	name := p.next()

	switch {
	case name.Kind == KindEOF:
		return nil, ErrUnexpectedEndOfInput

	case name.Kind != KindIdentifier:
		return nil, ErrUnexpectedToken.
			With(slog.String("token", name.String()))
	}

	node := &Node{Text: name.Text}

	// A separator immediately after the name commits the construct to
	// being a call, even with zero arguments remaining. A close marker
	// instead makes it a bare variable reference.
	switch tok := p.cur(); {
	case tok.IsMarker(MarkerSeparator):
		p.next()

		node.Type = NodeFunction

		if err := p.parseArgs(node); err != nil {
			return nil, err
		}

	case tok.IsMarker(MarkerClose):
		p.next()

		node.Type = NodeBlock

	case tok.Kind == KindEOF:
		return nil, ErrUnexpectedEndOfInput

	default:
		return nil, ErrUnexpectedToken.
			With(slog.String("token", tok.String()))
	}

	// Both paths above consumed exactly one close marker; the protocol
	// demands a second.
	if tok := p.next(); !tok.IsMarker(MarkerClose) {
		return nil, ErrExpectedBlockEnd.
			With(slog.String("token", tok.String()))
	}

	return node, nil
}

// parseArgs parses the argument list of a call, one argument per loop turn,
// optionally consuming a leading separator before each argument. Separators
// between arguments are therefore optional: consecutive nested constructs
// may be juxtaposed. The loop stops after consuming the first close marker.
func (p *parser) parseArgs(node *Node) error {
	for {
		switch tok := p.cur(); {
		case tok.IsMarker(MarkerClose):
			p.next()

			return nil

		case tok.IsMarker(MarkerSeparator):
			p.next()

		case tok.Kind == KindEOF:
			return ErrUnexpectedEndOfInput

		default:
			arg, err := p.parseStatement()
			if err != nil {
				return err
			}

			node.Args = append(node.Args, arg)
		}
	}
}
