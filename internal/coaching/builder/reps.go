package builder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrRepsMissing  = errors.New("reps missing")
	ErrRepsMismatch = errors.New("reps count does not match sets")
)

// ParsedReps is the numeric form of the reps text field.
type ParsedReps struct {
	Reps []int
	// Coerced holds the positions of tokens that were not numbers and
	// became 0.
	Coerced []int
}

// ParseReps parses a comma or semicolon delimited reps field, e.g.
// "10, 10, 8". Whitespace also separates values inside a field. Tokens that
// are not whole numbers, empty ones included, are coerced to 0 and reported
// in Coerced. A single trailing delimiter is ignored. A single value is used
// for every set.
func ParseReps(text string, sets int) (ParsedReps, error) {
	if strings.TrimFunc(text, isRepsDelimiter) == "" {
		return ParsedReps{}, ErrRepsMissing
	}

	fields := strings.Split(strings.ReplaceAll(text, ";", ","), ",")
	if len(fields) > 1 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}

	var tokens []string
	for _, field := range fields {
		values := strings.Fields(field)
		if len(values) == 0 {
			// empty positions keep their place
			tokens = append(tokens, "")
			continue
		}
		tokens = append(tokens, values...)
	}

	var parsed ParsedReps
	for i, token := range tokens {
		reps, err := strconv.Atoi(token)
		if err != nil || reps < 0 {
			reps = 0
			parsed.Coerced = append(parsed.Coerced, i)
		}
		parsed.Reps = append(parsed.Reps, reps)
	}

	if len(parsed.Reps) == 1 && sets > 1 {
		single := parsed.Reps[0]
		parsed.Reps = make([]int, sets)
		for i := range parsed.Reps {
			parsed.Reps[i] = single
		}
		return parsed, nil
	}

	if len(parsed.Reps) != sets {
		return ParsedReps{}, fmt.Errorf("%w: %d reps, %d sets", ErrRepsMismatch, len(parsed.Reps), sets)
	}

	return parsed, nil
}

// FormatReps is the inverse of ParseReps, used when a program is loaded
// back into the builder.
func FormatReps(reps []int) string {
	parts := make([]string, len(reps))
	for i, r := range reps {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, ",")
}

func isRepsDelimiter(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}
