package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"saav/internal/analyzer"
	serrors "saav/internal/errors"
	"saav/internal/parser"
)

func main() {
	domainFlag := flag.String("domain", "parity", "parity | le | cartesian | relational")
	strategyFlag := flag.String("strategy", "vanilla", "vanilla | chaotic")
	coeffRange := flag.String("coeff-range", "-1,1", "min,max coefficient range for the LE universe")
	intRange := flag.String("int-range", "-2,2", "min,max constant range for the LE universe")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: saav [flags] <program-file>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read %s: %v", path, err)
		os.Exit(1)
	}

	program, err := parser.Parse(path, string(source))
	if err != nil {
		reportError(string(source), path, err)
		os.Exit(1)
	}

	cfg := analyzer.Config{
		Variables:        program.Variables,
		CoefficientRange: parseRange(*coeffRange),
		IntegerRange:     parseRange(*intRange),
		Strategy:         parseStrategy(*strategyFlag),
		Domain:           parseDomain(*domainFlag),
	}

	result, err := analyzer.Run(program, cfg)
	if err != nil {
		reportError(string(source), path, err)
		os.Exit(1)
	}

	printStates(result.States)

	failed := false
	reporter := serrors.NewReporter(path, string(source))
	for _, f := range result.Findings {
		if !f.Pass {
			failed = true
		}
		fmt.Print(reporter.Format(f.Diagnostic()))
	}

	if failed {
		color.Red("one or more assertions may fail")
		os.Exit(1)
	}
	color.Green("all assertions hold")
}

func printStates(states map[int]string) {
	nodes := make([]int, 0, len(states))
	for n := range states {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)
	for _, n := range nodes {
		fmt.Printf("L%d: %s\n", n, states[n])
	}
}

func reportError(source, filename string, err error) {
	if ce, ok := err.(serrors.CompilerError); ok {
		reporter := serrors.NewReporter(filename, source)
		fmt.Print(reporter.Format(ce))
		return
	}
	color.Red("error: %v", err)
}

func parseRange(s string) [2]int {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return [2]int{-1, 1}
	}
	lo, errLo := strconv.Atoi(strings.TrimSpace(parts[0]))
	hi, errHi := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errLo != nil || errHi != nil {
		return [2]int{-1, 1}
	}
	return [2]int{lo, hi}
}

func parseStrategy(s string) analyzer.Strategy {
	if s == "chaotic" {
		return analyzer.Chaotic
	}
	return analyzer.Vanilla
}

func parseDomain(s string) analyzer.DomainKind {
	switch s {
	case "le":
		return analyzer.LE
	case "cartesian":
		return analyzer.Cartesian
	case "relational":
		return analyzer.Relational
	default:
		return analyzer.Parity
	}
}
