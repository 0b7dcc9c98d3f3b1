package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"saav/internal/ast"
)

func TestCompilerErrorStringIncludesCodeAndPosition(t *testing.T) {
	err := CompilerError{
		Level:    Error,
		Code:     ErrorUnknownVariable,
		Message:  "variable \"w\" is not declared",
		Position: ast.Position{Line: 2, Column: 3},
	}
	s := err.Error()
	assert.Contains(t, s, ErrorUnknownVariable)
	assert.Contains(t, s, "not declared")
}

func TestCompilerErrorStringWithoutCode(t *testing.T) {
	err := CompilerError{Level: Warning, Message: "no code here"}
	s := err.Error()
	assert.NotContains(t, s, "[")
	assert.Contains(t, s, "no code here")
}

func TestReporterFormatShowsErrorHeaderAndLocation(t *testing.T) {
	source := "x y\nL0 skip L1\nL1 assert ( EVEN w ) L2\n"
	reporter := NewReporter("<test>", source)

	err := CompilerError{
		Level:    Error,
		Code:     ErrorUnknownVariable,
		Message:  "variable \"w\" is not declared",
		Position: ast.Position{Line: 3, Column: 14},
		Length:   1,
	}
	formatted := reporter.Format(err)

	assert.Contains(t, formatted, "error["+ErrorUnknownVariable+"]")
	assert.Contains(t, formatted, "not declared")
	assert.Contains(t, formatted, "<test>:3:14")
	assert.Contains(t, formatted, "EVEN w")
}

func TestReporterFormatIncludesNotesAndHelpText(t *testing.T) {
	source := "x\nL0 skip L1\n"
	reporter := NewReporter("<test>", source)

	err := CompilerError{
		Level:    Error,
		Message:  "assertion failed",
		Position: ast.Position{Line: 2, Column: 1},
		Notes:    []string{"witness: x=Even"},
		HelpText: "check the preceding assume",
	}
	formatted := reporter.Format(err)

	assert.Contains(t, formatted, "note:")
	assert.Contains(t, formatted, "witness: x=Even")
	assert.Contains(t, formatted, "help:")
	assert.Contains(t, formatted, "check the preceding assume")
}

func TestReporterMarkerSpacingAndLength(t *testing.T) {
	reporter := NewReporter("<test>", "L0 assert ( EVEN x ) L1\n")
	marker := reporter.marker(13, 6, Error)

	assert.Equal(t, 12, strings.Count(marker, " "))
	assert.Equal(t, 6, strings.Count(marker, "^"))
}

func TestReporterWarningLevelLabel(t *testing.T) {
	reporter := NewReporter("<test>", "x\n")
	formatted := reporter.Format(CompilerError{
		Level:    Warning,
		Message:  "unused variable",
		Position: ast.Position{Line: 1, Column: 1},
	})
	assert.Contains(t, formatted, "warning:")
}

func TestGetErrorDescriptionKnownAndUnknown(t *testing.T) {
	assert.Contains(t, GetErrorDescription(ErrorNoEntry), "no entry node")
	assert.Equal(t, "Unknown error code", GetErrorDescription("E9999"))
}

func TestGetErrorCategoryRanges(t *testing.T) {
	assert.Equal(t, "Parser", GetErrorCategory(ErrorMalformedLine))
	assert.Equal(t, "CFG Shape", GetErrorCategory(ErrorNoEntry))
	assert.Equal(t, "Domain Configuration", GetErrorCategory(ErrorEmptyUniverse))
	assert.Equal(t, "Fixpoint Engine", GetErrorCategory(ErrorNoConvergence))
	assert.Equal(t, "Unknown", GetErrorCategory("Z9999"))
}
