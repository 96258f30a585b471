package sat

import "log"

// Solver decides satisfiability of a SAT instance. Both implementations
// produce the same Result shape; the error is reserved for adapter I/O
// failures, logical unsatisfiability is never an error.
type Solver interface {
	Solve(SAT) (Result, error)
}

// Verify is the engine entry point: it routes the instance to the in-process
// backtracking solver or, when useMinisat is set, to the external minisat
// adapter. Adapter failures collapse into an unsatisfiable Result, so the
// caller cannot tell a proved UNSAT from an unavailable or timed-out solver.
func Verify(instance SAT, useHeuristics, debug, useMinisat bool) Result {
	var solver Solver
	if useMinisat {
		solver = NewMinisatSolver(debug)
	} else {
		solver = NewBacktrackingSolver(useHeuristics)
	}

	result, err := solver.Solve(instance)
	if err != nil {
		log.Printf("solver failure treated as no solution: %v", err)
		return Result{}
	}
	return result
}
