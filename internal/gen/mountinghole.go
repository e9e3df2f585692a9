package gen

import (
	"fmt"
	"strings"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/paramspace"
	"github.com/swsemantic/swcorpus/internal/snippet"
	"github.com/swsemantic/swcorpus/internal/units"
)

// MountingHole generates multi-step pairs that combine sketching, a
// through-all cut, and a position tolerance: one toleranced mounting hole
// per point of the hole parameter space.
type MountingHole struct {
	cat *catalog.Catalog
}

func NewMountingHole(cat *catalog.Catalog) *MountingHole {
	return &MountingHole{cat: cat}
}

func (g *MountingHole) Name() string { return "mountinghole" }

// holeSamplesPer fixes the per-parameter sample count for the space
// enumeration. Two samples per numeric axis keeps the family small while
// still covering every corner of the space.
const holeSamplesPer = 2

func holeSpace() (*paramspace.Space, error) {
	return paramspace.NewSpace("mounting_hole",
		paramspace.Definition{Name: "hole_diameter", Unit: "mm", Min: 3, Max: 10},
		paramspace.Definition{Name: "x_position", Unit: "mm", Min: 10, Max: 40},
		paramspace.Definition{Name: "y_position", Unit: "mm", Min: 10, Max: 30},
		paramspace.Definition{Name: "position_tolerance", Unit: "mm", Min: 0.1, Max: 0.5},
		paramspace.Definition{Name: "material_modifier", Options: []string{"MMC", ""}},
	)
}

func (g *MountingHole) GenerateAll() ([]corpus.Pair, error) {
	space, err := holeSpace()
	if err != nil {
		return nil, fmt.Errorf("gen: mountinghole: %w", err)
	}

	var pairs []corpus.Pair
	for _, a := range space.Enumerate(holeSamplesPer) {
		dia := a.Num("hole_diameter")
		x := a.Num("x_position")
		y := a.Num("y_position")
		tol := a.Num("position_tolerance")
		mod := a.Sym("material_modifier")

		code, err := g.holeCode(dia, x, y, tol, mod)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: holeInstruction(dia, x, y, tol, mod),
			Code:        code,
		})
	}
	return pairs, nil
}

func holeInstruction(dia, x, y, tol float64, mod string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a %smm diameter mounting hole at (%smm, %smm) on the front plane of a SolidWorks part,",
		human(dia), human(x), human(y))
	fmt.Fprintf(&sb, " cut through all, and apply a position tolerance of %s", human(tol))
	if mod != "" {
		fmt.Fprintf(&sb, " at %s", mod)
	}
	sb.WriteString(" relative to datums A, B, and C.")
	return sb.String()
}

// holeCode assembles the full sketch, cut, and tolerance sequence. The
// sketch geometry and the frame tolerance are both authored in meters;
// the instruction quotes the millimeter values.
func (g *MountingHole) holeCode(dia, x, y, tol float64, mod string) (string, error) {
	var steps []string

	var sketch strings.Builder
	sketch.WriteString("// Step 1: sketch the hole circle\n")
	sketch.WriteString(snippet.SelectionBlock([]snippet.Selection{
		{Name: "Front Plane", Kind: "PLANE"},
	}))
	sketch.WriteString("\nmodelDoc.SketchManager.InsertSketch(true);\n")
	fmt.Fprintf(&sketch, "SketchSegment circle = modelDoc.SketchManager.CreateCircleByRadius(%s, %s, 0, %s);",
		units.Format(units.MMToMeters(x)),
		units.Format(units.MMToMeters(y)),
		units.Format(units.MMToMeters(dia/2)))
	steps = append(steps, sketch.String())

	dim, err := snippet.Dimension(g.cat, snippet.DimensionParams{
		EntityName: "Arc1",
		Kind:       "diameter",
		Value:      units.MMToMeters(dia),
	})
	if err != nil {
		return "", fmt.Errorf("gen: mountinghole: dimension: %w", err)
	}
	steps = append(steps, "// Step 2: dimension the hole diameter\n"+dim)

	cut, err := snippet.Extrude(g.cat, snippet.ExtrudeParams{
		Label:        fmt.Sprintf("Step 3: cut the %smm hole through all", human(dia)),
		EndCondition: "through_all",
		Cut:          true,
	})
	if err != nil {
		return "", fmt.Errorf("gen: mountinghole: cut: %w", err)
	}
	steps = append(steps, "modelDoc.SketchManager.InsertSketch(true);\n\n"+cut)

	gtol, err := snippet.Gtol(g.cat, snippet.GtolParams{
		Characteristic: "position",
		Tolerance:      units.MMToMeters(tol),
		ZoneShape:      "cylindrical",
		Modifier:       mod,
		Datums: []snippet.DatumRef{
			{Label: "A", Order: 1},
			{Label: "B", Order: 2},
			{Label: "C", Order: 3},
		},
	})
	if err != nil {
		return "", fmt.Errorf("gen: mountinghole: gtol: %w", err)
	}
	sel := snippet.SelectionBlock([]snippet.Selection{
		{Name: "Cut-Extrude1", Kind: "BODYFEATURE"},
	})
	steps = append(steps, "// Step 4: apply the position tolerance\n"+sel+"\n"+gtol)

	return strings.Join(steps, "\n\n"), nil
}
