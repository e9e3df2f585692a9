package gen

import (
	"fmt"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/snippet"
	"github.com/swsemantic/swcorpus/internal/units"
)

// Extrude generates boss and cut extrusion training pairs: blind,
// through-all, mid-plane, thin-feature, and drafted variants.
type Extrude struct {
	cat *catalog.Catalog
}

func NewExtrude(cat *catalog.Catalog) *Extrude {
	return &Extrude{cat: cat}
}

func (g *Extrude) Name() string { return "extrude" }

func (g *Extrude) GenerateAll() ([]corpus.Pair, error) {
	var pairs []corpus.Pair

	add := func(instruction string, p snippet.ExtrudeParams) error {
		code, err := snippet.Extrude(g.cat, p)
		if err != nil {
			return err
		}
		pairs = append(pairs, corpus.Pair{Instruction: instruction, Code: code})
		return nil
	}

	// Boss blind.
	for _, d := range []float64{5, 10, 15, 20, 25, 30, 40, 50, 75, 100} {
		err := add(
			fmt.Sprintf("Create a %smm blind boss extrusion from the current sketch in SolidWorks.", human(d)),
			snippet.ExtrudeParams{
				Label:        fmt.Sprintf("Boss-Extrude blind %smm", human(d)),
				EndCondition: "blind",
				Depth:        units.MMToMeters(d),
			})
		if err != nil {
			return nil, err
		}
	}

	// Boss through-all and up-to-surface.
	if err := add("Create a boss extrusion through the entire body in SolidWorks.",
		snippet.ExtrudeParams{Label: "Boss-Extrude through all", EndCondition: "through_all"}); err != nil {
		return nil, err
	}
	if err := add("Create a boss extrusion up to a selected surface in SolidWorks.",
		snippet.ExtrudeParams{Label: "Boss-Extrude up to surface", EndCondition: "up_to_surface"}); err != nil {
		return nil, err
	}

	// Boss mid-plane.
	for _, d := range []float64{10, 20, 30, 40, 60, 80} {
		err := add(
			fmt.Sprintf("Create a %smm boss extrusion using the mid-plane end condition in SolidWorks.", human(d)),
			snippet.ExtrudeParams{
				Label:        fmt.Sprintf("Boss-Extrude mid-plane %smm", human(d)),
				EndCondition: "mid_plane",
				Depth:        units.MMToMeters(d),
			})
		if err != nil {
			return nil, err
		}
	}

	// Cut blind.
	for _, d := range []float64{2, 3, 5, 8, 10, 12, 15, 20} {
		err := add(
			fmt.Sprintf("Create a %smm blind cut extrusion from the current sketch in SolidWorks.", human(d)),
			snippet.ExtrudeParams{
				Label:        fmt.Sprintf("Cut-Extrude blind %smm", human(d)),
				EndCondition: "blind",
				Depth:        units.MMToMeters(d),
				Cut:          true,
			})
		if err != nil {
			return nil, err
		}
	}

	// Cut through-all.
	if err := add("Create a cut extrusion through the entire body in SolidWorks.",
		snippet.ExtrudeParams{Label: "Cut-Extrude through all", EndCondition: "through_all", Cut: true}); err != nil {
		return nil, err
	}

	// Thin-feature extrusions.
	for _, t := range []struct{ depth, wall float64 }{
		{10, 1}, {15, 1.5}, {20, 2}, {25, 3}, {30, 1}, {50, 2},
	} {
		err := add(
			fmt.Sprintf("Create a %smm thin-feature extrusion with %smm wall thickness in SolidWorks.",
				human(t.depth), human(t.wall)),
			snippet.ExtrudeParams{
				Label:        fmt.Sprintf("Thin extrude %smm, wall %smm", human(t.depth), human(t.wall)),
				EndCondition: "blind",
				Depth:        units.MMToMeters(t.depth),
				ThinWall:     units.MMToMeters(t.wall),
			})
		if err != nil {
			return nil, err
		}
	}

	// Boss with draft.
	for _, t := range []struct{ depth, draft float64 }{
		{10, 1}, {15, 2}, {20, 3}, {25, 5}, {30, 1.5}, {50, 2},
		{10, 7}, {20, 10}, {15, 0.5}, {40, 3}, {60, 2}, {8, 4},
	} {
		err := add(
			fmt.Sprintf("Create a %smm blind boss extrusion with a %s-degree draft angle in SolidWorks.",
				human(t.depth), human(t.draft)),
			snippet.ExtrudeParams{
				Label:        fmt.Sprintf("Boss-Extrude %smm draft %s deg", human(t.depth), human(t.draft)),
				EndCondition: "blind",
				Depth:        units.MMToMeters(t.depth),
				Draft:        units.DegToRadians(t.draft),
				DraftOutward: true,
			})
		if err != nil {
			return nil, err
		}
	}

	// Cut with draft.
	for _, t := range []struct{ depth, draft float64 }{
		{5, 1}, {10, 2}, {15, 3}, {20, 5}, {8, 1.5}, {12, 4},
	} {
		err := add(
			fmt.Sprintf("Create a %smm blind cut extrusion with a %s-degree draft angle in SolidWorks.",
				human(t.depth), human(t.draft)),
			snippet.ExtrudeParams{
				Label:        fmt.Sprintf("Cut-Extrude %smm draft %s deg", human(t.depth), human(t.draft)),
				EndCondition: "blind",
				Depth:        units.MMToMeters(t.depth),
				Draft:        units.DegToRadians(t.draft),
				DraftOutward: true,
				Cut:          true,
			})
		if err != nil {
			return nil, err
		}
	}

	return pairs, nil
}
