// Package parser turns program text (spec.md §6) into an *ast.Program,
// mirroring the teacher's split between a raw participle grammar tree and a
// conversion step into the real AST.
package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// mmLexer tokenizes the mini-language's input format. Unlike the teacher's
// Kanso lexer, newlines are a real, non-elided token (EOL) because the grammar
// is line-structured: the first line is the variable declaration, every
// following line is one "L<src> <command> L<dst>" edge. EOL's regex also
// swallows any further blank lines, so "subsequent non-blank lines" (spec.md
// §6) falls out of the lexer instead of the grammar.
var mmLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"EOL", `[\t ]*\n[\t \n]*`, nil},
		{"Ident", `[A-Za-z_][A-Za-z0-9_]*`, nil},
		{"Int", `-?[0-9]+`, nil},
		{"Op", `(:=|!=|\?|\+|-|=|\(|\))`, nil},
		{"Whitespace", `[\t ]+`, nil},
	},
})

// rawProgram is the top-level participle grammar node.
type rawProgram struct {
	Pos       lexer.Position
	Variables []string   `@Ident+ EOL`
	Lines     []*rawLine `@@*`
}

// rawLine is one "L<src> <command-text> L<dst>" edge. The trailing EOL is
// optional so a file without a final newline still parses (its last line
// simply ends at EOF instead of at a lexed EOL token).
type rawLine struct {
	Pos     lexer.Position
	Src     string      `@Ident`
	Command *rawCommand `@@`
	Dst     string      `@Ident EOL?`
}

// rawCommand is the alternation over spec.md §6's command-text forms.
type rawCommand struct {
	Pos     lexer.Position
	Skip    bool        `(  @"skip"`
	Assume  *rawECond   ` | "assume" @@`
	Assert  *rawOr      ` | "assert" @@`
	Assign  *rawAssign  ` | @@ )`
}

// rawAssign covers "I := J", "I := K", "I := ?", "I := J + 1", "I := J - 1".
type rawAssign struct {
	Pos     lexer.Position
	I       string  `@Ident ":="`
	Unknown bool    `(  @"?"`
	Const   *int    ` | @Int`
	J       *string ` | @Ident`
	Plus    bool    `   ( @"+" "1"`
	Minus   bool    `   | @"-" "1" )? )`
}

// rawECond is one of spec.md §6's E-condition surface forms.
type rawECond struct {
	Pos   lexer.Position
	I     *string `(  @Ident`
	EqVar *string `   ( "=" @Ident`
	NeVar *string `   | "!=" @Ident`
	EqK   *int    `   | "=" @Int`
	NeK   *int    `   | "!=" @Int )`
	True  bool    ` | @"TRUE"`
	False bool    ` | @"FALSE" )`
}

// rawOr is the DNF surface form: a sequence of "(...)" groups.
type rawOr struct {
	Pos      lexer.Position
	Conjuncts []*rawAnd `@@+`
}

type rawAnd struct {
	Pos      lexer.Position
	Literals []*rawBool `"(" @@+ ")"`
}

// rawBool is one "EVEN v", "ODD v" or "SUM v... = SUM v..." literal.
type rawBool struct {
	Pos  lexer.Position
	Even *string   `(  "EVEN" @Ident`
	Odd  *string    ` | "ODD" @Ident`
	ISum []string   ` | "SUM" @Ident+ "=" "SUM"`
	JSum []string   `   @Ident+ )`
}
