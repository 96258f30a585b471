package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFormula(t *testing.T) {
	instance := GenerateFormula(10, 40)

	assert.Equal(t, uint64(10), instance.Variables)
	assert.Len(t, instance.Clauses, 40)

	for _, clause := range instance.Clauses {
		assert.Len(t, clause, 3)

		seen := map[uint64]bool{}
		for _, literal := range clause {
			variable, _ := literalVariable(literal)
			assert.GreaterOrEqual(t, variable, uint64(1))
			assert.LessOrEqual(t, variable, uint64(10))
			assert.False(t, seen[variable], "variables within a clause must be distinct")
			seen[variable] = true
		}
	}
}
