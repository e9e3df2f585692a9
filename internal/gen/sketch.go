package gen

import (
	"fmt"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/snippet"
	"github.com/swsemantic/swcorpus/internal/units"
)

// Dimension values for sketch dimension examples, in millimeters.
var dimValuesMM = []float64{2.5, 5, 8, 10, 12.5, 15, 20, 25, 30, 50, 75, 100}

// Sketch generates training pairs for geometric sketch relations and
// driving dimensions.
type Sketch struct {
	cat *catalog.Catalog
}

func NewSketch(cat *catalog.Catalog) *Sketch {
	return &Sketch{cat: cat}
}

func (g *Sketch) Name() string { return "sketch" }

func (g *Sketch) GenerateAll() ([]corpus.Pair, error) {
	var pairs []corpus.Pair
	for _, build := range []func() ([]corpus.Pair, error){
		g.unaryConstraints,
		g.binaryConstraints,
		g.dimensions,
		g.tolerancedDimensions,
	} {
		p, err := build()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p...)
	}
	return pairs, nil
}

// unary relations apply to a single entity.
func (g *Sketch) unaryConstraints() ([]corpus.Pair, error) {
	tuples := []struct {
		constraint string
		entityType string
		entityName string
	}{
		{"horizontal", "line", "Line1"},
		{"horizontal", "line", "Line2"},
		{"horizontal", "line", "EdgeLine"},
		{"horizontal", "line", "CenterLine"},
		{"vertical", "line", "Line1"},
		{"vertical", "line", "Line2"},
		{"vertical", "line", "EdgeLine"},
		{"vertical", "line", "CenterLine"},
		{"fixed", "line", "Line1"},
		{"fixed", "arc", "Arc1"},
		{"fixed", "circle", "Circle1"},
		{"fixed", "spline", "Spline1"},
	}
	pairs := make([]corpus.Pair, 0, len(tuples))
	for _, t := range tuples {
		code, err := snippet.Constraint(g.cat, snippet.ConstraintParams{
			Constraint:  t.constraint,
			Entity1Name: t.entityName,
			Entity1Type: t.entityType,
		})
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Make %s '%s' %s in the active SolidWorks sketch.",
				t.entityType, t.entityName, t.constraint),
			Code: code,
		})
	}
	return pairs, nil
}

// binary relations apply between two entities; the pairings are curated
// per relation so only geometrically sensible combinations appear.
func (g *Sketch) binaryConstraints() ([]corpus.Pair, error) {
	type pairing struct{ t1, n1, t2, n2 string }
	domains := []struct {
		constraint string
		pairings   []pairing
	}{
		{"perpendicular", []pairing{
			{"line", "Line1", "line", "Line2"},
			{"line", "Line2", "line", "Line3"},
			{"line", "EdgeLine", "line", "CenterLine"},
		}},
		{"parallel", []pairing{
			{"line", "Line1", "line", "Line2"},
			{"line", "Line1", "line", "Line3"},
			{"line", "EdgeLine", "line", "Line1"},
		}},
		{"tangent", []pairing{
			{"line", "Line1", "arc", "Arc1"},
			{"line", "Line1", "circle", "Circle1"},
			{"arc", "Arc1", "arc", "Arc2"},
			{"spline", "Spline1", "line", "Line1"},
		}},
		{"coincident", []pairing{
			{"point", "Point1", "line", "Line1"},
			{"point", "Point1", "arc", "Arc1"},
			{"point", "CenterPoint", "point", "Point2"},
			{"line", "Line1", "point", "Point2"},
		}},
		{"concentric", []pairing{
			{"arc", "Arc1", "arc", "Arc2"},
			{"arc", "Arc1", "circle", "Circle1"},
			{"circle", "Circle1", "circle", "Circle2"},
		}},
		{"equal", []pairing{
			{"line", "Line1", "line", "Line2"},
			{"arc", "Arc1", "arc", "Arc2"},
			{"circle", "Circle1", "circle", "Circle2"},
		}},
		{"midpoint", []pairing{
			{"point", "Point1", "line", "Line1"},
			{"point", "CenterPoint", "line", "Line2"},
		}},
		{"collinear", []pairing{
			{"line", "Line1", "line", "Line2"},
			{"line", "Line2", "line", "Line3"},
		}},
	}

	var pairs []corpus.Pair
	for _, d := range domains {
		for _, pr := range d.pairings {
			code, err := snippet.Constraint(g.cat, snippet.ConstraintParams{
				Constraint:  d.constraint,
				Entity1Name: pr.n1,
				Entity1Type: pr.t1,
				Entity2Name: pr.n2,
				Entity2Type: pr.t2,
			})
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, corpus.Pair{
				Instruction: fmt.Sprintf("Make %s '%s' %s to %s '%s' in the active SolidWorks sketch.",
					pr.t1, pr.n1, d.constraint, pr.t2, pr.n2),
				Code: code,
			})
		}
	}

	// Symmetric relations need a reference centerline.
	for _, pr := range []pairing{
		{"line", "Line1", "line", "Line2"},
		{"point", "Point1", "point", "Point2"},
	} {
		code, err := snippet.Constraint(g.cat, snippet.ConstraintParams{
			Constraint:  "symmetric",
			Entity1Name: pr.n1,
			Entity1Type: pr.t1,
			Entity2Name: pr.n2,
			Entity2Type: pr.t2,
			Reference:   "CenterLine",
		})
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Make %s '%s' and %s '%s' symmetric about the centerline in the active SolidWorks sketch.",
				pr.t1, pr.n1, pr.t2, pr.n2),
			Code: code,
		})
	}
	return pairs, nil
}

func (g *Sketch) dimensions() ([]corpus.Pair, error) {
	type target struct{ name, entityType string }
	targets := map[string][]target{
		"distance": {{"Line1", "line"}, {"Edge1", "line"}},
		"radius":   {{"Arc1", "arc"}, {"Fillet1", "arc"}},
		"diameter": {{"Circle1", "circle"}, {"Bore1", "circle"}},
		"angle":    {{"Line1", "line"}, {"ChamferLine", "line"}},
	}
	var pairs []corpus.Pair
	for _, kind := range []string{"distance", "radius", "diameter", "angle"} {
		for _, tgt := range targets[kind] {
			for _, vmm := range dimValuesMM {
				var value float64
				var instruction string
				if kind == "angle" {
					// Angle dimensions reuse the mm table as degree values.
					value = units.DegToRadians(vmm)
					instruction = fmt.Sprintf("Add a %s-degree angle dimension to %s '%s' in SolidWorks.",
						human(vmm), tgt.entityType, tgt.name)
				} else {
					value = units.MMToMeters(vmm)
					instruction = fmt.Sprintf("Add a %smm %s dimension to %s '%s' in SolidWorks.",
						human(vmm), kind, tgt.entityType, tgt.name)
				}
				code, err := snippet.Dimension(g.cat, snippet.DimensionParams{
					EntityName: tgt.name,
					Kind:       kind,
					Value:      value,
				})
				if err != nil {
					return nil, err
				}
				pairs = append(pairs, corpus.Pair{Instruction: instruction, Code: code})
			}
		}
	}
	return pairs, nil
}

func (g *Sketch) tolerancedDimensions() ([]corpus.Pair, error) {
	tolCombos := []struct{ plus, minus float64 }{
		{0.01, 0.01},
		{0.05, 0.05},
		{0.1, 0.1},
		{0.1, 0.05},
		{0.2, 0.1},
	}
	type target struct {
		name string
		kind string
	}
	targets := []target{
		{"Line1", "distance"},
		{"Arc1", "radius"},
		{"Circle1", "diameter"},
		{"Bore1", "diameter"},
	}
	var pairs []corpus.Pair
	for _, tgt := range targets {
		for _, vmm := range []float64{10, 20, 25, 50} {
			for _, tc := range tolCombos {
				code, err := snippet.Dimension(g.cat, snippet.DimensionParams{
					EntityName: tgt.name,
					Kind:       tgt.kind,
					Value:      units.MMToMeters(vmm),
					Tolerance: &snippet.Tolerance{
						Plus:  units.MMToMeters(tc.plus),
						Minus: units.MMToMeters(tc.minus),
					},
				})
				if err != nil {
					return nil, err
				}
				pairs = append(pairs, corpus.Pair{
					Instruction: fmt.Sprintf("Add a %s of %smm (+%s/-%s) to '%s' in SolidWorks.",
						tgt.kind, human(vmm), human(tc.plus), human(tc.minus), tgt.name),
					Code: code,
				})
			}
		}
	}
	return pairs, nil
}
