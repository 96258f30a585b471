package sat

import "math/rand/v2"

const clauseSize = 3

// GenerateFormula samples a uniform random 3-SAT instance: each clause draws
// three distinct variables, every literal negated with probability 1/2.
// Requires variables >= 3.
func GenerateFormula(variables uint64, clauses int) SAT {
	instance := SAT{
		Variables: variables,
		Clauses:   make([][]int64, clauses),
	}

	for i := range clauses {
		clause := make([]int64, 0, clauseSize)
		used := make(map[uint64]bool, clauseSize)
		for len(clause) < clauseSize {
			variable := rand.Uint64N(variables) + 1
			if used[variable] {
				continue
			}
			used[variable] = true

			literal := int64(variable)
			if rand.Float32() < 0.5 {
				literal = -literal
			}
			clause = append(clause, literal)
		}
		instance.Clauses[i] = clause
	}

	return instance
}
