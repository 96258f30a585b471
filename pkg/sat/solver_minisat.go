package sat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Hard wall-clock bound for a single minisat invocation.
var minisatTimeout = 30 * time.Second

var minisatMissingOnce sync.Once

type minisatSolver struct {
	debug bool
}

// NewMinisatSolver returns an adapter that delegates to an external minisat
// binary through DIMACS input/output files. A timeout, a missing executable
// or unparseable output all yield a no-solution Result rather than an error.
func NewMinisatSolver(debug bool) Solver {
	return &minisatSolver{debug: debug}
}

func (solver *minisatSolver) Solve(instance SAT) (Result, error) {
	minisatPath := getExecutablePath("minisatPath", "minisat")
	dimacs := instance.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	// Create temporary files to hold the DIMACS content and minisat's output
	inputTempFile, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return Result{}, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(inputTempFile.Name()) // Ensure the file is removed after execution

	outputTempFile, err := os.CreateTemp("", "minisat_output-*.out")
	if err != nil {
		inputTempFile.Close()
		return Result{}, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(outputTempFile.Name()) // Ensure the file is removed after execution
	outputTempFile.Close()

	// Write the DIMACS content to the temporary file
	if _, err := inputTempFile.WriteString(dimacs); err != nil {
		inputTempFile.Close()
		return Result{}, fmt.Errorf("failed to write DIMACS to temporary file: %v", err)
	}
	if err := inputTempFile.Close(); err != nil {
		return Result{}, fmt.Errorf("failed to close temporary file: %v", err)
	}

	if solver.debug {
		log.Printf("DIMACS content:\n%v", dimacs)
	}

	ctx, cancel := context.WithTimeout(context.Background(), minisatTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, minisatPath, inputTempFile.Name(), outputTempFile.Name())

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	// minisat exits 10 for satisfiable and 20 for unsatisfiable; the verdict
	// comes from the output file, so the exit status is deliberately ignored.
	err = cmd.Run()
	if solver.debug {
		log.Printf("minisat stdout: %v", stdOut.String())
	}
	if ctx.Err() == context.DeadlineExceeded {
		// Indistinguishable from unsatisfiable for the caller.
		return Result{}, nil
	}
	// A bare name missing from $PATH surfaces as exec.ErrNotFound, a
	// configured path with a separator as fs.ErrNotExist.
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		minisatMissingOnce.Do(func() {
			log.Printf("ERROR: minisat (%v) not found. Install it and ensure it's in your PATH.", minisatPath)
		})
		return Result{}, nil
	}

	output, err := os.ReadFile(outputTempFile.Name())
	if err != nil {
		return Result{}, fmt.Errorf("failed to read output file: %v", err)
	}
	return solver.parseOutput(string(output)), nil
}

// parseOutput interprets minisat's output file: "SAT" or "UNSAT" on the first
// line and, for SAT, an optional second line of assignment literals
// terminated by 0. Anything else counts as no solution.
func (solver *minisatSolver) parseOutput(output string) Result {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if strings.TrimSpace(lines[0]) != "SAT" {
		return Result{}
	}

	assignment := Assignment{}
	if len(lines) > 1 {
		for _, literalStr := range strings.Fields(lines[1]) {
			literal, err := strconv.ParseInt(literalStr, 10, 64)
			if err != nil {
				return Result{}
			}
			if literal == 0 {
				break
			}
			variable, value := literalVariable(literal)
			assignment[variable] = value
		}
	}
	// SAT with no witness line: satisfiable with an empty assignment.
	return Result{Satisfiable: true, Assignment: assignment}
}
