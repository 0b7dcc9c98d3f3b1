package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"saav/internal/ast"
	serrors "saav/internal/errors"
)

var mmParser = buildParser()

func buildParser() *participle.Parser[rawProgram] {
	p, err := participle.Build[rawProgram](
		participle.Lexer(mmLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(3),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}
	return p
}

// Parse turns program text into an *ast.Program, or a serrors.CompilerError
// (code E01xx) pinpointing the offending line and column.
func Parse(filename, source string) (*ast.Program, error) {
	raw, err := mmParser.ParseString(filename, source)
	if err != nil {
		return nil, toCompilerError(filename, source, err)
	}
	return convertProgram(raw)
}

func toCompilerError(filename, source string, err error) error {
	pe, ok := err.(participle.Error)
	if !ok {
		return serrors.CompilerError{
			Level:   serrors.Error,
			Code:    serrors.ErrorMalformedLine,
			Message: err.Error(),
		}
	}
	pos := pe.Position()
	return serrors.CompilerError{
		Level:   serrors.Error,
		Code:    serrors.ErrorMalformedLine,
		Message: pe.Message(),
		Position: ast.Position{
			Filename: filename,
			Line:     pos.Line,
			Column:   pos.Column,
		},
		Length: 1,
	}
}

func convertProgram(raw *rawProgram) (*ast.Program, error) {
	lines := make([]ast.ProgramLine, 0, len(raw.Lines))
	for _, rl := range raw.Lines {
		line, err := convertLine(rl)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return &ast.Program{Variables: raw.Variables, Lines: lines}, nil
}

func convertLine(rl *rawLine) (ast.ProgramLine, error) {
	src, err := labelToInt(rl.Src, toPos(rl.Pos))
	if err != nil {
		return ast.ProgramLine{}, err
	}
	dst, err := labelToInt(rl.Dst, toPos(rl.Pos))
	if err != nil {
		return ast.ProgramLine{}, err
	}
	cmd, err := convertCommand(rl.Command)
	if err != nil {
		return ast.ProgramLine{}, err
	}
	return ast.ProgramLine{Src: src, Dst: dst, Command: cmd}, nil
}

func labelToInt(s string, pos ast.Position) (int, error) {
	if !strings.HasPrefix(s, "L") {
		return 0, serrors.CompilerError{
			Level: serrors.Error, Code: serrors.ErrorMalformedLine,
			Message: "label \"" + s + "\" does not start with \"L\"", Position: pos,
		}
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 0 {
		return 0, serrors.CompilerError{
			Level: serrors.Error, Code: serrors.ErrorMalformedLine,
			Message: "label \"" + s + "\" is not a non-negative integer", Position: pos,
		}
	}
	return n, nil
}

func convertCommand(rc *rawCommand) (ast.Command, error) {
	pos := toPos(rc.Pos)
	switch {
	case rc.Skip:
		return ast.NewSkip(pos), nil
	case rc.Assume != nil:
		e, err := convertECond(rc.Assume)
		if err != nil {
			return nil, err
		}
		return ast.NewAssume(pos, e), nil
	case rc.Assert != nil:
		orc, err := convertOr(rc.Assert)
		if err != nil {
			return nil, err
		}
		return ast.NewAssert(pos, orc), nil
	case rc.Assign != nil:
		return convertAssign(pos, rc.Assign)
	default:
		return nil, serrors.CompilerError{Level: serrors.Error, Code: serrors.ErrorMalformedLine, Message: "empty command", Position: pos}
	}
}

func convertAssign(pos ast.Position, ra *rawAssign) (ast.Command, error) {
	switch {
	case ra.Unknown:
		return ast.NewAssignUnknown(pos, ra.I), nil
	case ra.Const != nil:
		return ast.NewAssignConst(pos, ra.I, *ra.Const), nil
	case ra.J != nil:
		switch {
		case ra.Plus:
			return ast.NewPlus1(pos, ra.I, *ra.J), nil
		case ra.Minus:
			return ast.NewMinus1(pos, ra.I, *ra.J), nil
		default:
			return ast.NewAssignVar(pos, ra.I, *ra.J), nil
		}
	default:
		return nil, serrors.CompilerError{Level: serrors.Error, Code: serrors.ErrorMalformedLine, Message: "malformed assignment", Position: pos}
	}
}

func convertECond(re *rawECond) (ast.ECondition, error) {
	pos := toPos(re.Pos)
	switch {
	case re.True:
		return ast.ECondition{Kind: ast.ETrue}, nil
	case re.False:
		return ast.ECondition{Kind: ast.EFalse}, nil
	case re.I == nil:
		return ast.ECondition{}, serrors.CompilerError{Level: serrors.Error, Code: serrors.ErrorMalformedCondition, Message: "malformed condition", Position: pos}
	case re.EqVar != nil:
		return ast.ECondition{Kind: ast.EqVar, I: *re.I, J: *re.EqVar}, nil
	case re.NeVar != nil:
		return ast.ECondition{Kind: ast.DiffVar, I: *re.I, J: *re.NeVar}, nil
	case re.EqK != nil:
		return ast.ECondition{Kind: ast.EqConst, I: *re.I, K: *re.EqK}, nil
	case re.NeK != nil:
		return ast.ECondition{Kind: ast.DiffConst, I: *re.I, K: *re.NeK}, nil
	default:
		return ast.ECondition{}, serrors.CompilerError{Level: serrors.Error, Code: serrors.ErrorMalformedCondition, Message: "malformed condition", Position: pos}
	}
}

func convertOr(ro *rawOr) (ast.OrCondition, error) {
	disjuncts := make([]ast.AndCondition, 0, len(ro.Conjuncts))
	for _, ra := range ro.Conjuncts {
		and, err := convertAnd(ra)
		if err != nil {
			return ast.OrCondition{}, err
		}
		disjuncts = append(disjuncts, and)
	}
	return ast.OrCondition{Disjuncts: disjuncts}, nil
}

func convertAnd(ra *rawAnd) (ast.AndCondition, error) {
	conjuncts := make([]ast.BoolCondition, 0, len(ra.Literals))
	for _, rb := range ra.Literals {
		b, err := convertBool(rb)
		if err != nil {
			return ast.AndCondition{}, err
		}
		conjuncts = append(conjuncts, b)
	}
	return ast.AndCondition{Conjuncts: conjuncts}, nil
}

func convertBool(rb *rawBool) (ast.BoolCondition, error) {
	pos := toPos(rb.Pos)
	switch {
	case rb.Even != nil:
		return ast.BoolCondition{Kind: ast.Even, I: *rb.Even}, nil
	case rb.Odd != nil:
		return ast.BoolCondition{Kind: ast.Odd, I: *rb.Odd}, nil
	case len(rb.ISum) > 0 || len(rb.JSum) > 0:
		return ast.BoolCondition{Kind: ast.Sum, ISum: rb.ISum, JSum: rb.JSum}, nil
	default:
		return ast.BoolCondition{}, serrors.CompilerError{Level: serrors.Error, Code: serrors.ErrorMalformedCondition, Message: "malformed literal", Position: pos}
	}
}

func toPos(p lexer.Position) ast.Position {
	return ast.Position{Filename: p.Filename, Line: p.Line, Column: p.Column}
}
