package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/limaJavier/satscan/pkg/sat"
)

var validSolvers = []string{"backtracking", "minisat"}

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "backtracking", "Solver to use. Allowed values are: \"backtracking\" (in-process recursive search) and \"minisat\" (external solver), where \"backtracking\" is the default")
	heuristicsPtr := flag.Bool("heuristics", false, "Enable unit-clause propagation (backtracking solver only)")
	debugPtr := flag.Bool("debug", false, "Log the DIMACS content and the external solver's output")
	filePathPtr := flag.String("file", "", "Path to the DIMACS-CNF input file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the result will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	heuristics := *heuristicsPtr
	debug := *debugPtr
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" {
		log.Fatal("an input file must be specified")
	}

	// Extract the instance
	file, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("cannot open input file: %v", err)
	}
	instance, err := sat.ParseDIMACS(file)
	file.Close()
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	// Solve
	result := sat.Verify(instance, heuristics, debug, solverStr == "minisat")

	// Build output from result
	var builder strings.Builder
	if !result.Satisfiable {
		builder.WriteString("UNSAT\n")
	} else {
		builder.WriteString("SAT\n")
		variables := make([]uint64, 0, len(result.Assignment))
		for variable := range result.Assignment {
			variables = append(variables, variable)
		}
		slices.Sort(variables)
		for _, variable := range variables {
			literal := int64(variable)
			if !result.Assignment[variable] {
				literal = -literal
			}
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}

	// Verify outfile is empty, if so then write the result to the Standard Output
	if outFile == "" {
		fmt.Print(builder.String())
	} else {
		err := os.WriteFile(outFile, []byte(builder.String()), 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	if !result.Satisfiable {
		os.Exit(20)
	}
	os.Exit(10)
}
