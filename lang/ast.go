package lang

import (
	"io"
	"strings"
)

// AST represents the abstract syntax tree for a gyeop program.
// Statement order is significant.
type AST struct {
	Statements []*Node
}

// Node is a single syntax node.
type Node struct {
	Type NodeType
	// Text is the call name (NodeFunction), variable name (NodeBlock),
	// raw name (NodeIdentifier), or literal text (NodeValue).
	Text string
	// Args is populated only for NodeFunction.
	Args []*Node
}

// NodeType indicates the kind of syntax node.
type NodeType int

const (
	// NodeFunction is an invocation: a name followed by a separator inside
	// doubled brackets, with zero or more arguments.
	NodeFunction NodeType = iota

	// NodeBlock is a bare variable reference: a name with no separator and
	// no arguments inside doubled brackets.
	NodeBlock

	// NodeIdentifier is a raw name outside any construct. It arises only
	// for the very first token of a stream (which is never reclassified)
	// and is otherwise inert.
	NodeIdentifier

	// NodeValue is a literal argument produced from a reclassified token.
	NodeValue
)

// String returns a string representation of the node type.
func (nt NodeType) String() string {
	switch nt {
	case NodeFunction:
		return "Function"
	case NodeBlock:
		return "Block"
	case NodeIdentifier:
		return "Identifier"
	case NodeValue:
		return "Value"
	default:
		return "Unknown"
	}
}

// Print writes a formatted representation of the AST to the writer.
func (ast *AST) Print(w io.Writer) {
	ast.PrintIndent(w, 0)
}

// PrintIndent writes a formatted representation of the AST to the writer
// with the specified indentation.
func (ast *AST) PrintIndent(w io.Writer, indent int) {
	for _, stmt := range ast.Statements {
		stmt.Print(w, indent)
	}
}

func writer(w io.Writer) func(eol string, item ...string) {
	return func(eol string, item ...string) {
		_, err := io.WriteString(w, strings.Join(item, ": ")+eol)
		if err != nil {
			panic(err)
		}
	}
}

// Print writes a formatted representation of the node.
func (n *Node) Print(w io.Writer, indent int) {
	prefix := strings.Repeat("  ", indent)
	put := writer(w)

	put("\n", prefix+n.Type.String(), n.Text)

	for _, arg := range n.Args {
		arg.Print(w, indent+1)
	}
}
