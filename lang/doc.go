// Package lang implements the gyeop language core: a lexer, a
// recursive-descent parser, and a tree-walking interpreter for a small
// block-structured call language.
//
// A program is UTF-8 text. Calls are written with doubled brackets and a
// pipe separator:
//
//	[[더하기|1|2|3]]
//	[[print|[[sum|1|2]]|done]]
//	[[greeting]]
//
// A name followed by a separator is a call; a bare name inside doubled
// brackets is a variable reference. Literals are unquoted runs of letters
// and digits; a literal that parses as a number is passed to native
// functions as a number, anything else as a string. Names resolve against a
// host-supplied flat symbol table of native functions and variables:
//
//	ectx := lang.NewContext()
//	ectx.Bindings().PutFunction(&lang.NativeFunction{
//		Name: "print",
//		Processor: func(_ context.Context, args []lang.Value) (any, error) {
//			for _, a := range args {
//				fmt.Println(a)
//			}
//			return nil, nil
//		},
//	})
//	err := ectx.Evaluate(ctx, "[[print|안녕]]")
//
// The language has no user-defined functions, control flow, or scoping
// beyond the single flat namespace.
package lang
