package gen

import (
	"fmt"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/snippet"
	"github.com/swsemantic/swcorpus/internal/units"
)

// Pattern generates feature pattern training pairs: linear (1D and 2D),
// circular, mirror, curve-driven, and fill patterns.
type Pattern struct {
	cat *catalog.Catalog
}

func NewPattern(cat *catalog.Catalog) *Pattern {
	return &Pattern{cat: cat}
}

func (g *Pattern) Name() string { return "pattern" }

func (g *Pattern) GenerateAll() ([]corpus.Pair, error) {
	var pairs []corpus.Pair

	// Linear, one direction.
	for _, t := range []struct {
		count   int
		spacing float64
	}{
		{2, 10}, {3, 10}, {4, 15}, {5, 20}, {6, 10}, {8, 12.5},
		{10, 8}, {3, 25}, {4, 30}, {12, 5}, {2, 50}, {3, 40},
	} {
		code := snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  fmt.Sprintf("Linear pattern %dx %smm", t.count, human(t.spacing)),
			Method: "FeatureLinearPattern4",
			Args: fmt.Sprintf(`%d, %s, 1, 0, false, false, false, "", false, false, true, false`,
				t.count, units.Format(units.MMToMeters(t.spacing))),
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a linear pattern with %d instances spaced %smm apart in SolidWorks.",
				t.count, human(t.spacing)),
			Code: code,
		})
	}

	// Linear, two directions.
	for _, t := range []struct {
		c1 int
		s1 float64
		c2 int
		s2 float64
	}{
		{3, 10, 2, 15}, {4, 12, 3, 12}, {5, 8, 4, 8}, {6, 10, 2, 20},
		{3, 20, 3, 20}, {2, 25, 2, 25}, {4, 10, 4, 10},
	} {
		code := snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  fmt.Sprintf("Linear pattern 2D %dx%smm / %dx%smm", t.c1, human(t.s1), t.c2, human(t.s2)),
			Method: "FeatureLinearPattern4",
			Args: fmt.Sprintf(`%d, %s, %d, %s, false, false, false, "", false, false, true, false`,
				t.c1, units.Format(units.MMToMeters(t.s1)), t.c2, units.Format(units.MMToMeters(t.s2))),
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a 2D linear pattern: %d at %smm in direction 1, %d at %smm in direction 2 in SolidWorks.",
				t.c1, human(t.s1), t.c2, human(t.s2)),
			Code: code,
		})
	}

	// Circular.
	for _, t := range []struct {
		count int
		angle float64
	}{
		{4, 360}, {6, 360}, {8, 360}, {3, 180}, {4, 90}, {12, 360},
		{5, 270}, {6, 180}, {3, 120}, {10, 360}, {8, 270},
	} {
		equalSpacing := t.angle == 360
		span := "full circle"
		if !equalSpacing {
			span = fmt.Sprintf("%s degrees", human(t.angle))
		}
		code := snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  fmt.Sprintf("Circular pattern %dx %s", t.count, span),
			Method: "FeatureCircularPattern4",
			Args: fmt.Sprintf(`%d, %s, false, "", false, false, %t, false`,
				t.count, units.Format(units.DegToRadians(t.angle)), equalSpacing),
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a circular pattern with %d instances over %s in SolidWorks.",
				t.count, span),
			Code: code,
		})
	}

	// Mirror about a standard plane.
	for _, plane := range []string{"Right Plane", "Front Plane", "Top Plane"} {
		code := snippet.FeatureCall(snippet.FeatureCallParams{
			Label:      fmt.Sprintf("Mirror about %s", plane),
			Method:     "InsertMirrorFeature2",
			Args:       "false, false, false, true",
			Selections: []snippet.Selection{{Name: plane, Kind: "PLANE", Mark: 2}},
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Mirror the selected feature about the %s in SolidWorks.", plane),
			Code:        code,
		})
	}

	// Curve-driven.
	for _, count := range []int{3, 4, 6, 8, 10, 12} {
		code := snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  fmt.Sprintf("Curve-driven pattern %dx", count),
			Method: "InsertCurveDrivenPattern",
			Args:   fmt.Sprintf("%d, true, 0, false, false, false", count),
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a curve-driven pattern with %d instances along a selected curve in SolidWorks.", count),
			Code:        code,
		})
	}

	// Fill pattern.
	for _, s := range []float64{3, 5, 8, 10, 15} {
		sm := units.Format(units.MMToMeters(s))
		code := snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  fmt.Sprintf("Fill pattern %smm", human(s)),
			Method: "InsertFillPattern2",
			Args:   fmt.Sprintf("%s, 0, true, true, 0, %s, 1, true, false", sm, sm),
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a fill pattern with %smm spacing within a selected boundary in SolidWorks.", human(s)),
			Code:        code,
		})
	}

	return pairs, nil
}
