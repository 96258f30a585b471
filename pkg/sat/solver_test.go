package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyBacktracking(t *testing.T) {
	instance := SAT{Variables: 2, Clauses: [][]int64{{1, 2}, {-1, -2}}}

	result := Verify(instance, false, false, false)

	assert.True(t, result.Satisfiable)
	assert.True(t, Satisfies(instance, result.Assignment))
}

func TestVerifyBacktrackingWithHeuristics(t *testing.T) {
	instance := SAT{Variables: 2, Clauses: [][]int64{{1}, {-1, 2}}}

	result := Verify(instance, true, false, false)

	assert.True(t, result.Satisfiable)
	assert.Equal(t, Assignment{1: true, 2: true}, result.Assignment)
}

func TestVerifyMinisat(t *testing.T) {
	stubSolver(t, "printf 'SAT\\n1 -2 0\\n' > \"$2\"\n")

	result := Verify(SAT{Variables: 2, Clauses: [][]int64{{1, -2}}}, false, false, true)

	assert.True(t, result.Satisfiable)
	assert.Equal(t, Assignment{1: true, 2: false}, result.Assignment)
}

// Both strategies hand back the same Result shape.
func TestVerifyUniformContract(t *testing.T) {
	stubSolver(t, "printf 'UNSAT\\n' > \"$2\"\n")
	instance := SAT{Variables: 1, Clauses: [][]int64{{1}, {-1}}}

	internal := Verify(instance, false, false, false)
	external := Verify(instance, false, false, true)

	assert.Equal(t, internal, external)
	assert.False(t, internal.Satisfiable)
}
