package sat

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Assignment maps 1-based variable indices to truth values. It is partial
// while a search is running and total once a solver succeeds.
type Assignment map[uint64]bool

// Result is the outcome of a solve: a satisfying assignment, or the explicit
// absence of one. Unsatisfiability is a value, never an error.
type Result struct {
	Satisfiable bool
	Assignment  Assignment
}

// SAT is a CNF instance: an ordered sequence of clauses over signed literals.
// A literal's magnitude is its 1-based variable index, its sign the polarity.
// Literal magnitudes must lie in [1, Variables]; the engine does not validate
// this.
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// Satisfies reports whether the assignment makes at least one literal true in
// every clause of the instance.
func Satisfies(instance SAT, assignment Assignment) bool {
	return lo.EveryBy(instance.Clauses, func(clause []int64) bool {
		return lo.SomeBy(clause, func(literal int64) bool {
			variable, polarity := literalVariable(literal)
			value, assigned := assignment[variable]
			return assigned && value == polarity
		})
	})
}

func literalVariable(literal int64) (variable uint64, value bool) {
	if literal < 0 {
		return uint64(-literal), false
	}
	return uint64(literal), true
}
