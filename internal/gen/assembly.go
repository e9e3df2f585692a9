package gen

import (
	"fmt"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/snippet"
	"github.com/swsemantic/swcorpus/internal/units"
)

// Assembly generates component-insertion, mating, and assembly-management
// training pairs.
type Assembly struct {
	cat *catalog.Catalog
}

func NewAssembly(cat *catalog.Catalog) *Assembly {
	return &Assembly{cat: cat}
}

func (g *Assembly) Name() string { return "assembly" }

var assemblyComponentFiles = []string{
	"Bracket.SLDPRT",
	"BasePlate.SLDPRT",
	"Shaft.SLDPRT",
	"Bearing.SLDPRT",
	"Housing.SLDPRT",
	"Cover.SLDPRT",
	"Gear.SLDPRT",
	"Spacer.SLDPRT",
	"Pin.SLDPRT",
	"SubAssembly.SLDASM",
}

func (g *Assembly) GenerateAll() ([]corpus.Pair, error) {
	var pairs []corpus.Pair

	// Component insertion.
	for _, f := range assemblyComponentFiles {
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Insert the component %s into the active assembly in SolidWorks.", f),
			Code:        snippet.AddComponent(snippet.ComponentParams{FileName: f}),
		})
	}

	// Standard mates between two component faces.
	for _, mt := range []string{"coincident", "concentric", "parallel", "perpendicular", "tangent", "lock"} {
		code, err := g.mateWithSelections(mt, snippet.MateParams{
			Label: fmt.Sprintf("Mate: %s", mt),
			Type:  mt,
		}, "FACE")
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a %s mate between two faces of different components in a SolidWorks assembly.", mt),
			Code:        code,
		})
	}

	// Anti-aligned coincident mate.
	{
		code, err := g.mateWithSelections("coincident", snippet.MateParams{
			Label:     "Anti-aligned coincident mate",
			Type:      "coincident",
			Alignment: "anti_aligned",
		}, "FACE")
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: "Create an anti-aligned coincident mate between two faces in a SolidWorks assembly.",
			Code:        code,
		})
	}

	// Distance mates.
	for _, d := range []float64{1, 2.5, 5, 10, 15, 25, 50} {
		code, err := g.mateWithSelections("distance", snippet.MateParams{
			Label:    fmt.Sprintf("Distance mate %smm", human(d)),
			Type:     "distance",
			Distance: units.MMToMeters(d),
		}, "FACE")
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a distance mate of %smm between two faces in a SolidWorks assembly.", human(d)),
			Code:        code,
		})
	}

	// Angle mates.
	for _, a := range []float64{15, 30, 45, 60, 90, 120} {
		code, err := g.mateWithSelections("angle", snippet.MateParams{
			Label: fmt.Sprintf("Angle mate %s deg", human(a)),
			Type:  "angle",
			Angle: units.DegToRadians(a),
		}, "FACE")
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create an angle mate of %s degrees between two planar faces in a SolidWorks assembly.", human(a)),
			Code:        code,
		})
	}

	// Gear mates with tooth ratios.
	for _, r := range []struct{ r1, r2 float64 }{
		{1, 1}, {2, 1}, {3, 1}, {4, 1}, {3, 2},
	} {
		code, err := g.mateWithSelections("gear", snippet.MateParams{
			Label:      fmt.Sprintf("Gear mate %s:%s", human(r.r1), human(r.r2)),
			Type:       "gear",
			GearRatio1: r.r1,
			GearRatio2: r.r2,
		}, "EDGE")
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a gear mate with a %s:%s ratio between two cylindrical faces in a SolidWorks assembly.",
				human(r.r1), human(r.r2)),
			Code: code,
		})
	}

	// Width and cam mates.
	{
		code, err := g.mateWithSelections("width", snippet.MateParams{
			Label: "Width mate",
			Type:  "width",
		}, "FACE")
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: "Create a width mate centering a tab between two faces in a SolidWorks assembly.",
			Code:        code,
		})
	}
	{
		code, err := g.mateWithSelections("cam", snippet.MateParams{
			Label: "Cam follower mate",
			Type:  "cam",
		}, "FACE")
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: "Create a cam follower mate between a cam profile and a follower face in a SolidWorks assembly.",
			Code:        code,
		})
	}

	// Component patterns.
	for _, t := range []struct {
		count   int
		spacing float64
	}{
		{3, 20}, {4, 25}, {6, 15},
	} {
		sel := snippet.SelectionBlock([]snippet.Selection{
			{Name: "Bracket-1", Kind: "COMPONENT"},
		})
		code := sel + "\n" + snippet.AssemblyCall(snippet.AssemblyCallParams{
			Label:  fmt.Sprintf("Linear component pattern: %d instances at %smm", t.count, human(t.spacing)),
			Decl:   "Feature patt = (Feature)",
			Method: "InsertLinearComponentPattern",
			Args: fmt.Sprintf("%d, %s, 1, 0, false, false", t.count,
				units.Format(units.MMToMeters(t.spacing))),
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a linear component pattern with %d instances spaced %smm apart in a SolidWorks assembly.",
				t.count, human(t.spacing)),
			Code: code,
		})
	}
	for _, t := range []struct {
		count int
		angle float64
	}{
		{4, 360}, {6, 360}, {3, 120},
	} {
		sel := snippet.SelectionBlock([]snippet.Selection{
			{Name: "Bolt-1", Kind: "COMPONENT"},
			{Name: "Axis1", Kind: "AXIS", Mark: 1},
		})
		code := sel + "\n" + snippet.AssemblyCall(snippet.AssemblyCallParams{
			Label:  fmt.Sprintf("Circular component pattern: %d instances over %s deg", t.count, human(t.angle)),
			Decl:   "Feature patt = (Feature)",
			Method: "InsertCircularComponentPattern",
			Args: fmt.Sprintf("%d, %s, true, false", t.count,
				units.Format(units.DegToRadians(t.angle))),
		})
		var instr string
		if t.angle == 360 {
			instr = fmt.Sprintf("Create a circular component pattern with %d instances equally spaced around an axis in a SolidWorks assembly.", t.count)
		} else {
			instr = fmt.Sprintf("Create a circular component pattern with %d instances over %s degrees in a SolidWorks assembly.",
				t.count, human(t.angle))
		}
		pairs = append(pairs, corpus.Pair{Instruction: instr, Code: code})
	}

	// Interference detection.
	pairs = append(pairs, corpus.Pair{
		Instruction: "Run interference detection across all components of the active SolidWorks assembly and report the number of interferences found.",
		Code: snippet.AssemblyCall(snippet.AssemblyCallParams{
			Label:  "Interference detection",
			Decl:   "int count = ",
			Method: "ToolsCheckInterference2",
			Args:   "0, null, false, out object comps, out object faces",
		}),
	})

	// Suppress, unsuppress, replace.
	{
		sel := snippet.SelectionBlock([]snippet.Selection{
			{Name: "Cover-1", Kind: "COMPONENT"},
		})
		code := sel + "\n" + snippet.AssemblyCall(snippet.AssemblyCallParams{
			Label:  "Suppress component",
			Decl:   "bool ok = ",
			Method: "EditSuppress2",
			Args:   "",
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: "Suppress the component Cover-1 in the active SolidWorks assembly.",
			Code:        code,
		})
	}
	{
		sel := snippet.SelectionBlock([]snippet.Selection{
			{Name: "Cover-1", Kind: "COMPONENT"},
		})
		code := sel + "\n" + snippet.AssemblyCall(snippet.AssemblyCallParams{
			Label:  "Unsuppress component",
			Decl:   "bool ok = ",
			Method: "EditUnsuppress2",
			Args:   "",
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: "Unsuppress the component Cover-1 in the active SolidWorks assembly.",
			Code:        code,
		})
	}
	{
		sel := snippet.SelectionBlock([]snippet.Selection{
			{Name: "Bearing-1", Kind: "COMPONENT"},
		})
		code := sel + "\n" + snippet.AssemblyCall(snippet.AssemblyCallParams{
			Label:  "Replace component",
			Decl:   "bool ok = ",
			Method: "ReplaceComponents2",
			Args:   `@"C:\Parts\BearingV2.SLDPRT", "", true, 2, true`,
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: "Replace the component Bearing-1 with BearingV2.SLDPRT in the active SolidWorks assembly.",
			Code:        code,
		})
	}

	return pairs, nil
}

// mateWithSelections prefixes a mate snippet with a two-entity selection
// block so the rendered code is self-contained.
func (g *Assembly) mateWithSelections(mateType string, p snippet.MateParams, kind string) (string, error) {
	mate, err := snippet.Mate(g.cat, p)
	if err != nil {
		return "", fmt.Errorf("gen: assembly: %s mate: %w", mateType, err)
	}
	sel := snippet.SelectionBlock([]snippet.Selection{
		{Name: "Face1@Part1-1", Kind: kind},
		{Name: "Face2@Part2-1", Kind: kind},
	})
	return sel + "\n" + mate, nil
}
