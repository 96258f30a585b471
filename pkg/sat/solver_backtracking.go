package sat

import (
	"maps"
	"slices"
)

type backtrackingSolver struct {
	useHeuristics bool
}

// NewBacktrackingSolver returns an in-process recursive solver. With
// useHeuristics enabled, every recursive step propagates the unit clauses
// visible on entry before branching.
func NewBacktrackingSolver(useHeuristics bool) Solver {
	return &backtrackingSolver{useHeuristics: useHeuristics}
}

func (solver *backtrackingSolver) Solve(instance SAT) (Result, error) {
	variables := make([]uint64, instance.Variables)
	for i := range variables {
		variables[i] = uint64(i) + 1
	}

	assignment, ok := solver.search(instance, variables, Assignment{})
	if !ok {
		return Result{}, nil
	}
	return Result{Satisfiable: true, Assignment: assignment}, nil
}

// search owns its assignment map; branches receive fresh copies so a failed
// branch never leaks values into its sibling.
func (solver *backtrackingSolver) search(instance SAT, variables []uint64, assignment Assignment) (Assignment, bool) {
	if len(instance.Clauses) == 0 {
		return assignment, true
	}
	for _, clause := range instance.Clauses {
		if len(clause) == 0 {
			return nil, false
		}
	}

	if solver.useHeuristics {
		// Single pass: only the unit clauses visible on entry are propagated.
		// Units revealed by the propagation itself wait for the branch step.
		units := make([]int64, 0)
		for _, clause := range instance.Clauses {
			if len(clause) == 1 {
				units = append(units, clause[0])
			}
		}
		for _, unit := range units {
			variable, value := literalVariable(unit)
			var ok bool
			instance, ok = Simplify(instance, variable, value)
			assignment[variable] = value
			if !ok {
				return nil, false
			}
			if i := slices.Index(variables, variable); i >= 0 {
				variables = slices.Delete(slices.Clone(variables), i, i+1)
			}
		}
		if len(variables) == 0 {
			return assignment, true
		}
	}

	variable := variables[0]
	rest := variables[1:]

	// True first, then false: together with the fixed variable order this
	// makes the returned witness deterministic.
	for _, value := range []bool{true, false} {
		branch := maps.Clone(assignment)
		branch[variable] = value
		simplified, ok := Simplify(instance, variable, value)
		if !ok {
			continue
		}
		if result, ok := solver.search(simplified, rest, branch); ok {
			return result, true
		}
	}

	return nil, false
}
