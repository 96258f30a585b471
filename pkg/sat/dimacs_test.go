package sat

import (
	"strings"
	"testing"

	"github.com/onsi/gomega"
)

func TestToDIMACS(t *testing.T) {
	g := gomega.NewWithT(t)

	instance := SAT{
		Variables: 3,
		Clauses:   [][]int64{{1, -2, 3}, {-1, 2}},
	}

	// The wire format is byte-exact: header, then space-separated literals
	// with a terminating 0 per clause.
	g.Expect(instance.ToDIMACS()).To(gomega.Equal("p cnf 3 2\n1 -2 3 0\n-1 2 0\n"))
}

func TestParseDIMACS(t *testing.T) {
	g := gomega.NewWithT(t)

	document := "c randomly generated\np cnf 4 3\n1 -2 4 0\nc inline comment\n-3 2 0\n\n4 0\n"
	instance, err := ParseDIMACS(strings.NewReader(document))

	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(instance.Variables).To(gomega.Equal(uint64(4)))
	g.Expect(instance.Clauses).To(gomega.Equal([][]int64{{1, -2, 4}, {-3, 2}, {4}}))
}

func TestParseDIMACSRejectsMalformedInput(t *testing.T) {
	g := gomega.NewWithT(t)

	_, err := ParseDIMACS(strings.NewReader("p cnf 2\n1 2 0\n"))
	g.Expect(err).To(gomega.HaveOccurred())

	_, err = ParseDIMACS(strings.NewReader("p cnf 2 1\n1 two 0\n"))
	g.Expect(err).To(gomega.HaveOccurred())

	// A document with no problem line at all is truncated, not empty
	_, err = ParseDIMACS(strings.NewReader("1 2 0\n"))
	g.Expect(err).To(gomega.HaveOccurred())
}

// A bare 0 line is the serialization of an empty clause and must survive
// parsing; only whitespace-only lines are skipped. Dropping it would turn a
// trivially unsatisfiable document into a satisfiable one.
func TestDIMACSRoundTripEmptyClause(t *testing.T) {
	g := gomega.NewWithT(t)

	instance := SAT{Variables: 2, Clauses: [][]int64{{1, 2}, {}}}
	g.Expect(instance.ToDIMACS()).To(gomega.Equal("p cnf 2 2\n1 2 0\n0\n"))

	parsed, err := ParseDIMACS(strings.NewReader(instance.ToDIMACS()))
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(parsed.Clauses).To(gomega.HaveLen(2))
	g.Expect(parsed).To(gomega.Equal(instance))

	g.Expect(Verify(parsed, false, false, false).Satisfiable).To(gomega.BeFalse())
}

func TestDIMACSRoundTrip(t *testing.T) {
	g := gomega.NewWithT(t)

	for range 10 {
		instance := GenerateFormula(12, 40)

		parsed, err := ParseDIMACS(strings.NewReader(instance.ToDIMACS()))

		g.Expect(err).NotTo(gomega.HaveOccurred())
		g.Expect(parsed).To(gomega.Equal(instance))
	}
}
