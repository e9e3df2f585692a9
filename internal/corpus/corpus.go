// Package corpus defines the canonical data types for the swcorpus
// training-data output: the (instruction, code) pair, the category
// generator contract, and pair-level validation.
package corpus

import (
	"fmt"
	"strings"
)

// Pair is one training example: a natural-language instruction and the
// SolidWorks API code that fulfills it. Downstream writers consume the
// two fields verbatim.
type Pair struct {
	Instruction string `json:"instruction"`
	Code        string `json:"code"`
}

// Generator produces every training pair for one behavioral category.
//
// Implementations must be deterministic (two calls to GenerateAll, in the
// same or a fresh process, return byte-identical sequences), stateless,
// and independent of sibling generators. A generator may include a small
// number of hand-authored pairs alongside enumerated ones; those follow
// the same contracts.
type Generator interface {
	// Name identifies the category in logs, summaries, and errors.
	Name() string
	// GenerateAll returns the category's pairs in a fixed order.
	GenerateAll() ([]Pair, error)
}

// MalformedPairError reports a pair with an empty instruction or code
// field. It is an authoring defect in the generator that produced the
// pair, never a recoverable runtime condition.
type MalformedPairError struct {
	Generator string
	Index     int
	Field     string
}

func (e *MalformedPairError) Error() string {
	return fmt.Sprintf("corpus: generator %q pair %d: %s is empty",
		e.Generator, e.Index, e.Field)
}

// Validate checks that every pair from the named generator has a
// non-empty instruction and code after trimming whitespace. The first
// violation is returned; nil means all pairs are admissible.
func Validate(generator string, pairs []Pair) error {
	for i, p := range pairs {
		if strings.TrimSpace(p.Instruction) == "" {
			return &MalformedPairError{Generator: generator, Index: i, Field: "instruction"}
		}
		if strings.TrimSpace(p.Code) == "" {
			return &MalformedPairError{Generator: generator, Index: i, Field: "code"}
		}
	}
	return nil
}
