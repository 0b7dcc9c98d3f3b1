package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"saav/internal/analyzer"
	"saav/internal/lsp"
)

const lsName = "saav"

var (
	version = "0.0.1"
	handler protocol.Handler
)

func main() {
	domainFlag := flag.String("domain", "parity", "parity | le | cartesian | relational")
	strategyFlag := flag.String("strategy", "vanilla", "vanilla | chaotic")
	coeffRange := flag.String("coeff-range", "-1,1", "min,max coefficient range for the LE universe")
	intRange := flag.String("int-range", "-2,2", "min,max constant range for the LE universe")
	flag.Parse()

	commonlog.Configure(1, nil)

	h := lsp.NewHandler(lsp.Config{
		CoefficientRange: parseRange(*coeffRange),
		IntegerRange:     parseRange(*intRange),
		Strategy:         parseStrategy(*strategyFlag),
		Domain:           parseDomain(*domainFlag),
	})

	handler = protocol.Handler{
		Initialize:            h.Initialize,
		Initialized:           h.Initialized,
		Shutdown:              h.Shutdown,
		SetTrace:              h.SetTrace,
		TextDocumentDidOpen:   h.TextDocumentDidOpen,
		TextDocumentDidClose:  h.TextDocumentDidClose,
		TextDocumentDidChange: h.TextDocumentDidChange,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting saav LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting saav LSP server:", err)
		os.Exit(1)
	}
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
