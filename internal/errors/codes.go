package errors

// Error codes for the analyzer.
//
// Error code ranges:
// E0100-E0199: Parser errors (malformed program text)
// E0200-E0299: CFG shape errors (entry/label problems)
// E0300-E0399: Domain configuration errors (bad universe, unknown variable)
// E0400-E0499: Fixpoint engine errors (non-termination guard, internal invariant)

const (
	// E0101: a program line does not match "L<src> <command> L<dst>"
	ErrorMalformedLine = "E0101"

	// E0102: a condition expression could not be parsed
	ErrorMalformedCondition = "E0102"

	// E0201: the program has no entry node (every label has an incoming edge)
	ErrorNoEntry = "E0201"

	// E0202: the program has more than one candidate entry node
	ErrorAmbiguousEntry = "E0202"

	// E0203: the program has zero lines
	ErrorEmptyProgram = "E0203"

	// E0301: the LE universe's coefficient or constant range is empty
	ErrorEmptyUniverse = "E0301"

	// E0302: a command references a variable outside the configured variable list
	ErrorUnknownVariable = "E0302"

	// E0303: an assert condition uses a literal kind the selected domain
	// cannot decide (e.g. SUM under the parity-only domain)
	ErrorUnsupportedLiteral = "E0303"

	// E0401: the chaotic-iteration worklist made no progress within the
	// finite-domain bound — signals a broken Join/LessEqual implementation
	// rather than a user-facing condition.
	ErrorNoConvergence = "E0401"
)

// GetErrorDescription returns a human-readable description of the error code.
func GetErrorDescription(code string) string {
	switch code {
	case ErrorMalformedLine:
		return "Line does not match the expected \"L<src> <command> L<dst>\" shape"
	case ErrorMalformedCondition:
		return "Condition expression could not be parsed"
	case ErrorNoEntry:
		return "Program has no entry node: every label has an incoming edge"
	case ErrorAmbiguousEntry:
		return "Program has more than one node with no incoming edges"
	case ErrorEmptyProgram:
		return "Program has no lines to analyze"
	case ErrorEmptyUniverse:
		return "Linear-equalities universe has an empty coefficient or constant range"
	case ErrorUnknownVariable:
		return "Command references a variable outside the configured variable list"
	case ErrorUnsupportedLiteral:
		return "Assert condition uses a literal kind the selected domain cannot decide"
	case ErrorNoConvergence:
		return "Fixpoint iteration failed to converge within the finite-domain bound"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code.
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "CFG Shape"
	case code >= "E0300" && code < "E0400":
		return "Domain Configuration"
	case code >= "E0400" && code < "E0500":
		return "Fixpoint Engine"
	default:
		return "Unknown"
	}
}
