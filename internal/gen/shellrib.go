package gen

import (
	"fmt"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/snippet"
	"github.com/swsemantic/swcorpus/internal/units"
)

// ShellRib generates shell and rib feature training pairs.
type ShellRib struct {
	cat *catalog.Catalog
}

func NewShellRib(cat *catalog.Catalog) *ShellRib {
	return &ShellRib{cat: cat}
}

func (g *ShellRib) Name() string { return "shellrib" }

func (g *ShellRib) GenerateAll() ([]corpus.Pair, error) {
	var pairs []corpus.Pair

	// Uniform shells.
	for _, t := range []float64{0.5, 1, 1.5, 2, 3, 5} {
		code := snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  fmt.Sprintf("Shell %smm", human(t)),
			Method: "InsertFeatureShell",
			Args:   fmt.Sprintf("%s, false", units.Format(units.MMToMeters(t))),
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a shell feature with %smm uniform wall thickness in SolidWorks.", human(t)),
			Code:        code,
		})
	}

	// Shells that remove selected faces first.
	for _, t := range []struct {
		thickness float64
		faces     int
	}{
		{1, 1}, {2, 1}, {1.5, 2}, {3, 2}, {2, 3},
	} {
		sels := make([]snippet.Selection, t.faces)
		for i := range sels {
			sels[i] = snippet.Selection{Name: fmt.Sprintf("Face%d", i+1), Kind: "FACE"}
		}
		code := snippet.FeatureCall(snippet.FeatureCallParams{
			Label:      fmt.Sprintf("Shell %smm removing %d face(s)", human(t.thickness), t.faces),
			Method:     "InsertFeatureShell",
			Args:       fmt.Sprintf("%s, false", units.Format(units.MMToMeters(t.thickness))),
			Selections: sels,
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a shell removing %d face(s) with %smm wall thickness in SolidWorks.",
				t.faces, human(t.thickness)),
			Code: code,
		})
	}

	// Outward shells.
	for _, t := range []float64{1, 2, 3} {
		code := snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  fmt.Sprintf("Shell outward %smm", human(t)),
			Method: "InsertFeatureShell",
			Args:   fmt.Sprintf("%s, true", units.Format(units.MMToMeters(t))),
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a %smm shell feature that adds material outward in SolidWorks.", human(t)),
			Code:        code,
		})
	}

	// Ribs.
	for _, t := range []float64{2, 3, 5} {
		code := snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  fmt.Sprintf("Rib %smm", human(t)),
			Method: "InsertRib",
			Args:   fmt.Sprintf("true, false, %s, 0, false, 0, false, false", units.Format(units.MMToMeters(t))),
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a rib feature with %smm thickness from the current sketch in SolidWorks.", human(t)),
			Code:        code,
		})
	}

	// Ribs with draft.
	for _, t := range []struct{ thickness, draft float64 }{
		{3, 1}, {5, 3},
	} {
		code := snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  fmt.Sprintf("Rib %smm draft %s deg", human(t.thickness), human(t.draft)),
			Method: "InsertRib",
			Args: fmt.Sprintf("true, false, %s, 0, false, %s, true, false",
				units.Format(units.MMToMeters(t.thickness)), units.Format(units.DegToRadians(t.draft))),
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a rib with %smm thickness and %s-degree draft in SolidWorks.",
				human(t.thickness), human(t.draft)),
			Code: code,
		})
	}

	return pairs, nil
}
