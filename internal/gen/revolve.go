package gen

import (
	"fmt"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/snippet"
	"github.com/swsemantic/swcorpus/internal/units"
)

// Revolve generates boss and cut revolve training pairs: full and partial
// angles, mid-plane, thin-wall, and revolves around a named axis.
type Revolve struct {
	cat *catalog.Catalog
}

func NewRevolve(cat *catalog.Catalog) *Revolve {
	return &Revolve{cat: cat}
}

func (g *Revolve) Name() string { return "revolve" }

func (g *Revolve) GenerateAll() ([]corpus.Pair, error) {
	var pairs []corpus.Pair

	add := func(instruction string, p snippet.RevolveParams) error {
		if p.EndCondition == "" {
			p.EndCondition = "blind"
		}
		code, err := snippet.Revolve(g.cat, p)
		if err != nil {
			return err
		}
		pairs = append(pairs, corpus.Pair{Instruction: instruction, Code: code})
		return nil
	}

	// Full 360-degree boss revolves forming common turned shapes.
	for _, shape := range []string{"cylindrical body", "shaft", "ring", "tube", "hub"} {
		err := add(
			fmt.Sprintf("Create a full 360-degree boss revolve to form a %s in SolidWorks.", shape),
			snippet.RevolveParams{
				Label: fmt.Sprintf("Boss-Revolve 360 -- %s", shape),
				Boss:  true,
				Angle: units.DegToRadians(360),
			})
		if err != nil {
			return nil, err
		}
	}

	// Partial boss revolves.
	for _, a := range []float64{45, 90, 120, 150, 180, 210, 270, 300} {
		err := add(
			fmt.Sprintf("Create a %s-degree boss revolve from the current sketch in SolidWorks.", human(a)),
			snippet.RevolveParams{
				Label: fmt.Sprintf("Boss-Revolve %s deg", human(a)),
				Boss:  true,
				Angle: units.DegToRadians(a),
			})
		if err != nil {
			return nil, err
		}
	}

	// Mid-plane boss revolves.
	for _, a := range []float64{60, 90, 120, 180, 240} {
		err := add(
			fmt.Sprintf("Create a %s-degree mid-plane boss revolve in SolidWorks.", human(a)),
			snippet.RevolveParams{
				Label:        fmt.Sprintf("Boss-Revolve mid-plane %s deg", human(a)),
				Boss:         true,
				Angle:        units.DegToRadians(a),
				EndCondition: "mid_plane",
			})
		if err != nil {
			return nil, err
		}
	}

	// Cut revolves.
	for _, a := range []float64{360, 180, 90, 270, 45} {
		desc := fmt.Sprintf("%s-degree", human(a))
		if a == 360 {
			desc = "full 360-degree"
		}
		err := add(
			fmt.Sprintf("Create a %s cut revolve in SolidWorks to remove material.", desc),
			snippet.RevolveParams{
				Label: fmt.Sprintf("Cut-Revolve %s deg", human(a)),
				Angle: units.DegToRadians(a),
			})
		if err != nil {
			return nil, err
		}
	}

	// Thin-wall revolves.
	for _, t := range []struct{ angle, wall float64 }{
		{360, 1}, {360, 2}, {180, 1.5}, {270, 2}, {360, 0.5}, {180, 3},
	} {
		err := add(
			fmt.Sprintf("Create a %s-degree thin-wall revolve with %smm wall thickness in SolidWorks.",
				human(t.angle), human(t.wall)),
			snippet.RevolveParams{
				Label: fmt.Sprintf("Thin-Revolve %s deg wall %smm", human(t.angle), human(t.wall)),
				Boss:  true,
				Angle: units.DegToRadians(t.angle),
				Thin:  true,
				Wall:  units.MMToMeters(t.wall),
			})
		if err != nil {
			return nil, err
		}
	}

	// Revolves around a named axis.
	for _, axis := range []string{"centerline", "Y-axis", "construction line"} {
		err := add(
			fmt.Sprintf("Create a 360-degree boss revolve around the %s in SolidWorks.", axis),
			snippet.RevolveParams{
				Label: fmt.Sprintf("Boss-Revolve 360 around %s", axis),
				Boss:  true,
				Angle: units.DegToRadians(360),
				Axis:  axis,
			})
		if err != nil {
			return nil, err
		}
	}

	return pairs, nil
}
