package sat

import "slices"

// Simplify applies variable=value to the instance: clauses containing the
// satisfied literal are dropped, the falsified literal is removed from the
// remaining ones. It returns ok == false when the removal empties a clause
// that was not empty before; a clause that was already empty on input passes
// through untouched (the solver's empty-clause check owns that case). The
// relative order of surviving clauses is preserved and the input is never
// mutated.
func Simplify(instance SAT, variable uint64, value bool) (SAT, bool) {
	satisfied := int64(variable)
	if !value {
		satisfied = -satisfied
	}
	falsified := -satisfied

	clauses := make([][]int64, 0, len(instance.Clauses))
	for _, clause := range instance.Clauses {
		if slices.Contains(clause, satisfied) {
			continue
		}
		reduced := make([]int64, 0, len(clause))
		for _, literal := range clause {
			if literal != falsified {
				reduced = append(reduced, literal)
			}
		}
		if len(reduced) == 0 && len(clause) > 0 {
			return SAT{}, false
		}
		clauses = append(clauses, reduced)
	}

	return SAT{Variables: instance.Variables, Clauses: clauses}, true
}
