package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"saav/internal/domain/linear"
	"saav/internal/repl"
)

func main() {
	varsFlag := flag.String("vars", "x y z", "space-separated variable list")
	domainFlag := flag.String("domain", "parity", "parity | le | cartesian | relational")
	coeffRange := flag.String("coeff-range", "-1,1", "min,max coefficient range")
	intRange := flag.String("int-range", "-2,2", "min,max constant range")
	flag.Parse()

	variables := strings.Fields(*varsFlag)
	u := linear.Universe{
		Variables: variables,
		CoeffMin:  intField(*coeffRange, 0, -1),
		CoeffMax:  intField(*coeffRange, 1, 1),
		MMin:      intField(*intRange, 0, -2),
		MMax:      intField(*intRange, 1, 2),
	}

	session := repl.New(variables, u, *domainFlag)
	if err := repl.Run(session, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func intField(s string, idx int, fallback int) int {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return fallback
	}
	var n int
	if _, err := fmt.Sscanf(parts[idx], "%d", &n); err != nil {
		return fallback
	}
	return n
}
