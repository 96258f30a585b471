package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/limaJavier/satscan/pkg/sat"

	"github.com/samber/lo"
)

var validSolvers = []string{"backtracking", "minisat"}

type RatioResult struct {
	Ratio              float64
	Clauses            int
	PercentSatisfiable float64
	MeanDuration       time.Duration
}

func main() {
	// Define arguments
	variablesPtr := flag.Uint64("variables", 20, "Number of variables per generated formula")
	minRatioPtr := flag.Float64("min-ratio", 1, "Smallest clause-to-variable ratio to sweep")
	maxRatioPtr := flag.Float64("max-ratio", 8, "Largest clause-to-variable ratio to sweep")
	stepPtr := flag.Float64("step", 0.5, "Ratio increment between sweep points")
	experimentsPtr := flag.Int("experiments", 50, "Number of random formulas per ratio")
	solverPtr := flag.String("solver", "backtracking", "Solver to use. Allowed values are: \"backtracking\" and \"minisat\", where \"backtracking\" is the default")
	heuristicsPtr := flag.Bool("heuristics", false, "Enable unit-clause propagation (backtracking solver only)")
	outPtr := flag.String("out", "benchmark_results.csv", "Path of the CSV file the sweep is written to")
	flag.Parse()
	variables := *variablesPtr
	minRatio := *minRatioPtr
	maxRatio := *maxRatioPtr
	step := *stepPtr
	experiments := *experimentsPtr
	solverStr := strings.ToLower(*solverPtr)
	heuristics := *heuristicsPtr
	outFile := *outPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if variables < 3 {
		log.Fatalf("at least 3 variables are required for 3-SAT generation: %v", variables)
	} else if minRatio <= 0 || maxRatio < minRatio || step <= 0 {
		log.Fatalf("invalid ratio range: [%v, %v] with step %v", minRatio, maxRatio, step)
	} else if experiments <= 0 {
		log.Fatalf("the number of experiments must be positive: %v", experiments)
	}

	useMinisat := solverStr == "minisat"
	solverTag := "SAT"
	if useMinisat {
		solverTag = "MiniSAT"
	} else if heuristics {
		solverTag = "SAT+Heuristics"
	}

	results := make([]RatioResult, 0)
	for ratio := minRatio; ratio <= maxRatio+1e-9; ratio += step {
		clauses := int(math.Round(ratio * float64(variables)))

		satisfiedCount := 0
		var totalDuration time.Duration
		for range experiments {
			formula := sat.GenerateFormula(variables, clauses)

			start := time.Now()
			result := sat.Verify(formula, heuristics, false, useMinisat)
			totalDuration += time.Since(start)

			if result.Satisfiable {
				satisfiedCount++
			}
		}

		meanDuration := totalDuration / time.Duration(experiments)
		percentSatisfiable := float64(satisfiedCount) / float64(experiments) * 100
		fmt.Printf("[%v] N: %v, Ratio: %.2f, Avg Time: %v\n", solverTag, variables, ratio, meanDuration)

		results = append(results, RatioResult{
			Ratio:              ratio,
			Clauses:            clauses,
			PercentSatisfiable: percentSatisfiable,
			MeanDuration:       meanDuration,
		})
	}

	toCsv(results, outFile)
}

func toCsv(results []RatioResult, outFile string) {
	file, err := os.Create(outFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Ratio", "Clauses", "Satisfiable(%)", "Duration(ms)"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	records := lo.Map(results, func(result RatioResult, _ int) []string {
		return []string{
			fmt.Sprintf("%.2f", result.Ratio),
			fmt.Sprintf("%d", result.Clauses),
			fmt.Sprintf("%.1f", result.PercentSatisfiable),
			fmt.Sprintf("%.3f", float64(result.MeanDuration.Microseconds())/1000),
		}
	})
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
