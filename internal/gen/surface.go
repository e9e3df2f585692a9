package gen

import (
	"fmt"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/snippet"
	"github.com/swsemantic/swcorpus/internal/units"
)

// Surface generates surface-modeling training pairs.
type Surface struct {
	cat *catalog.Catalog
}

func NewSurface(cat *catalog.Catalog) *Surface {
	return &Surface{cat: cat}
}

func (g *Surface) Name() string { return "surface" }

func (g *Surface) GenerateAll() ([]corpus.Pair, error) {
	var pairs []corpus.Pair

	// Extruded surfaces from the active sketch.
	for _, d := range []float64{10, 25, 50, 100} {
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create an extruded surface %smm deep from the active sketch in SolidWorks.", human(d)),
			Code: snippet.FeatureCall(snippet.FeatureCallParams{
				Label:  fmt.Sprintf("Extruded surface %smm", human(d)),
				Method: "FeatureExtruRefSurface3",
				Args: fmt.Sprintf("true, false, false, 0, 0, %s, 0, false, false, false, false, 0, 0, false, false, false, false, false, false, false, 0, 0, false",
					units.Format(units.MMToMeters(d))),
			}),
		})
	}

	// Revolved surfaces.
	for _, a := range []float64{90, 180, 360} {
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a revolved surface through %s degrees from the active sketch in SolidWorks.", human(a)),
			Code: snippet.FeatureCall(snippet.FeatureCallParams{
				Label:  fmt.Sprintf("Revolved surface %s deg", human(a)),
				Method: "FeatureRevolve2",
				Args: fmt.Sprintf("true, false, false, false, false, false, 0, 0, %s, 0, false, false, 0, 0, 0, 0, 0, true, true, true",
					units.Format(units.DegToRadians(a))),
				Selections: []snippet.Selection{
					{Name: "CenterLine", Kind: "SKETCHSEGMENT", Mark: 16},
				},
			}),
		})
	}

	// Planar surfaces bounded by a closed sketch.
	pairs = append(pairs, corpus.Pair{
		Instruction: "Create a planar surface bounded by the closed active sketch in SolidWorks.",
		Code: snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  "Planar surface",
			Method: "InsertPlanarRefSurface",
		}),
	})

	// Offset surfaces.
	for _, d := range []float64{1, 2, 5, 10} {
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a surface offset %smm from the selected face in SolidWorks.", human(d)),
			Code: snippet.FeatureCall(snippet.FeatureCallParams{
				Label:  fmt.Sprintf("Offset surface %smm", human(d)),
				Method: "InsertOffsetSurface",
				Args:   fmt.Sprintf("%s, false", units.Format(units.MMToMeters(d))),
				Selections: []snippet.Selection{
					{Name: "Face1", Kind: "FACE"},
				},
			}),
		})
	}

	// Trim a surface with a cutting tool.
	pairs = append(pairs, corpus.Pair{
		Instruction: "Trim a surface body using another surface as the trim tool in SolidWorks.",
		Code: snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  "Trim surface",
			Method: "CutWithSurface",
			Args:   "false",
			Selections: []snippet.Selection{
				{Name: "Surface-Trim1", Kind: "SURFACEBODY"},
			},
		}),
	})

	// Untrim a surface back to its natural boundary.
	pairs = append(pairs, corpus.Pair{
		Instruction: "Untrim the selected surface, restoring its natural boundary, in SolidWorks.",
		Code: snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  "Untrim surface",
			Method: "InsertUntrimSurface",
			Args:   "100, false",
			Selections: []snippet.Selection{
				{Name: "Surface-Offset1", Kind: "SURFACEBODY"},
			},
		}),
	})

	// Knit surfaces into one body.
	pairs = append(pairs, corpus.Pair{
		Instruction: "Knit the selected surface bodies into a single surface in SolidWorks.",
		Code: snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  "Knit surfaces",
			Method: "InsertSewRefSurface",
			Args:   "true, false, false, 0, 0",
			Selections: []snippet.Selection{
				{Name: "Surface-Extrude1", Kind: "SURFACEBODY"},
				{Name: "Surface-Plane1", Kind: "SURFACEBODY"},
			},
		}),
	})

	// Thicken a surface into a solid.
	for _, t := range []float64{1, 2, 3} {
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Thicken the selected surface by %smm into a solid body in SolidWorks.", human(t)),
			Code: snippet.FeatureCall(snippet.FeatureCallParams{
				Label:  fmt.Sprintf("Thicken surface %smm", human(t)),
				Method: "FeatureBossThicken",
				Args:   fmt.Sprintf("%s, 0, 0, false, true, true, true", units.Format(units.MMToMeters(t))),
				Selections: []snippet.Selection{
					{Name: "Surface-Knit1", Kind: "SURFACEBODY"},
				},
			}),
		})
	}

	// Filled surface patching a boundary.
	pairs = append(pairs, corpus.Pair{
		Instruction: "Create a filled surface patching the selected boundary edges in SolidWorks.",
		Code: snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  "Filled surface",
			Method: "InsertFillSurface",
			Args:   "2, 0, null, 0, null, null",
			Selections: []snippet.Selection{
				{Name: "Edge1", Kind: "EDGE"},
				{Name: "Edge2", Kind: "EDGE"},
				{Name: "Edge3", Kind: "EDGE"},
			},
		}),
	})

	// Swept surface: profile plus path.
	pairs = append(pairs, corpus.Pair{
		Instruction: "Create a swept surface from a profile sketch along a path sketch in SolidWorks.",
		Code: snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  "Swept surface",
			Method: "InsertProtrusionSwept4",
			Args:   "false, false, 0, false, false, 0, 0, false, 0, 0, 0, 0, true, true, 0, true, true, true, false",
			Selections: []snippet.Selection{
				{Name: "Sketch1", Kind: "SKETCH"},
				{Name: "Sketch2", Kind: "SKETCH", Mark: 4},
			},
		}),
	})

	// Lofted surface between two profiles.
	pairs = append(pairs, corpus.Pair{
		Instruction: "Create a lofted surface between two profile sketches in SolidWorks.",
		Code: snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  "Lofted surface",
			Method: "InsertProtrusionBlend2",
			Args:   "false, true, false, 1, 0, 0, 1, 1, true, true, false, 0, 0, 0, true, true, true",
			Selections: []snippet.Selection{
				{Name: "Sketch1", Kind: "SKETCH", Mark: 1},
				{Name: "Sketch2", Kind: "SKETCH", Mark: 1},
			},
		}),
	})

	return pairs, nil
}
