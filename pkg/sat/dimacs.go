package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS reads a DIMACS-CNF document: a "p cnf <vars> <clauses>" problem
// line, then one clause per line as space-separated literals terminated by 0.
// Comment lines ("c ...") are skipped.
func ParseDIMACS(reader io.Reader) (SAT, error) {
	var instance SAT
	headerSeen := false
	scanner := bufio.NewScanner(reader)

	for scanner.Scan() {
		line := scanner.Text()
		// Skip comments
		if strings.HasPrefix(line, "c") {
			continue
		}
		// Problem line
		if strings.HasPrefix(line, "p cnf") {
			parts := strings.Fields(line)
			if len(parts) != 4 {
				return SAT{}, fmt.Errorf("invalid problem line: %s", line)
			}
			variables, err := strconv.ParseUint(parts[2], 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid variable count: %w", err)
			}
			instance.Variables = variables
			headerSeen = true
			continue
		}
		// Clause line
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		// A line holding just the terminating 0 is an empty clause, not a
		// blank line; it must survive parsing.
		clause := make([]int64, 0, len(fields))
		for _, literalStr := range fields {
			literal, err := strconv.ParseInt(literalStr, 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid literal '%s': %w", literalStr, err)
			}
			if literal == 0 {
				break
			}
			clause = append(clause, literal)
		}
		instance.Clauses = append(instance.Clauses, clause)
	}

	if err := scanner.Err(); err != nil {
		return SAT{}, fmt.Errorf("error reading input: %w", err)
	}
	if !headerSeen {
		return SAT{}, fmt.Errorf("missing problem line")
	}

	return instance, nil
}
