package gen

import (
	"fmt"
	"strings"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/snippet"
	"github.com/swsemantic/swcorpus/internal/units"
)

// keywaySizes lists shaft diameter, key width, and keyway depth (all mm)
// per DIN 6885.
var keywaySizes = []struct {
	shaftDia, keyWidth, keyDepth float64
}{
	{10, 3, 1.4},
	{12, 4, 1.8},
	{16, 5, 2.3},
	{20, 6, 2.8},
	{25, 8, 3.3},
	{40, 12, 3.3},
}

// Shaft generates shaft and power-transmission feature training pairs:
// stepped revolve profiles, shoulder chamfers and fillets, and DIN 6885
// keyway cuts.
type Shaft struct {
	cat *catalog.Catalog
}

func NewShaft(cat *catalog.Catalog) *Shaft {
	return &Shaft{cat: cat}
}

func (g *Shaft) Name() string { return "shaft" }

func (g *Shaft) GenerateAll() ([]corpus.Pair, error) {
	var pairs []corpus.Pair

	// Stepped shaft revolve profiles.
	for _, t := range []struct{ d1, d2 float64 }{
		{10, 15}, {15, 20}, {20, 25}, {25, 30}, {20, 30}, {30, 50},
	} {
		code, err := g.steppedShaft(t.d1, t.d2)
		if err != nil {
			return nil, fmt.Errorf("gen: shaft: stepped %s to %s: %w", human(t.d1), human(t.d2), err)
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a stepped shaft with a diameter transition from %smm to %smm using a revolved profile in SolidWorks.",
				human(t.d1), human(t.d2)),
			Code: code,
		})
	}

	// Shoulder chamfers.
	for _, ch := range []float64{0.5, 1, 2} {
		for _, sd := range []float64{15, 20, 25, 30} {
			code := snippet.FeatureCall(snippet.FeatureCallParams{
				Label:  fmt.Sprintf("Chamfer %smm x 45 deg at shaft shoulder, dia %smm", human(ch), human(sd)),
				Method: "InsertFeatureChamfer",
				Args: fmt.Sprintf("4, 1, %s, %s, 0, 0, 0, 0",
					units.Format(units.MMToMeters(ch)), units.Format(units.DegToRadians(45))),
				Selections: []snippet.Selection{{Name: "", Kind: "EDGE", Mark: 1}},
			})
			pairs = append(pairs, corpus.Pair{
				Instruction: fmt.Sprintf("Add a %smm x 45-degree chamfer at the shoulder of a %smm diameter shaft in SolidWorks.",
					human(ch), human(sd)),
				Code: code,
			})
		}
	}

	// Shoulder fillets.
	for _, fr := range []float64{0.5, 1, 1.5, 2} {
		for _, sd := range []float64{15, 20, 25, 30} {
			code := snippet.FeatureCall(snippet.FeatureCallParams{
				Label:  fmt.Sprintf("Fillet R%smm at shaft shoulder, dia %smm", human(fr), human(sd)),
				Method: "FeatureFillet3",
				Args: fmt.Sprintf("195, %s, 0, 0, 0, 0, 0, 0",
					units.Format(units.MMToMeters(fr))),
				Selections: []snippet.Selection{{Name: "", Kind: "EDGE", Mark: 1}},
			})
			pairs = append(pairs, corpus.Pair{
				Instruction: fmt.Sprintf("Add an R%smm fillet at the shoulder of a %smm diameter shaft in SolidWorks.",
					human(fr), human(sd)),
				Code: code,
			})
		}
	}

	// DIN 6885 keyway slots on the shaft.
	for _, k := range keywaySizes {
		code, err := g.keyway(k.shaftDia, k.keyWidth, k.keyDepth)
		if err != nil {
			return nil, fmt.Errorf("gen: shaft: keyway dia %s: %w", human(k.shaftDia), err)
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Cut a DIN 6885 keyway slot on a %smm diameter shaft (key width %smm, depth %smm) in SolidWorks.",
				human(k.shaftDia), human(k.keyWidth), human(k.keyDepth)),
			Code: code,
		})
	}

	return pairs, nil
}

// steppedShaft sketches a half-profile on the Right Plane with a step
// from radius d1/2 to d2/2 and revolves it a full turn around the first
// profile line.
func (g *Shaft) steppedShaft(d1, d2 float64) (string, error) {
	r1 := units.Format(units.MMToMeters(d1 / 2))
	r2 := units.Format(units.MMToMeters(d2 / 2))

	var sb strings.Builder
	fmt.Fprintf(&sb, "// Stepped shaft: %smm to %smm diameter transition\n", human(d1), human(d2))
	sb.WriteString("modelDoc.SketchManager.InsertSketch(true);\n")
	sb.WriteString("modelDoc.SketchManager.CreateLine(0, 0, 0, 0.03, 0, 0);\n")
	fmt.Fprintf(&sb, "modelDoc.SketchManager.CreateLine(0.03, 0, 0, 0.03, %s, 0);\n", r1)
	fmt.Fprintf(&sb, "modelDoc.SketchManager.CreateLine(0.03, %s, 0, 0.02, %s, 0);\n", r1, r1)
	fmt.Fprintf(&sb, "modelDoc.SketchManager.CreateLine(0.02, %s, 0, 0.02, %s, 0);\n", r1, r2)
	fmt.Fprintf(&sb, "modelDoc.SketchManager.CreateLine(0.02, %s, 0, 0, %s, 0);\n", r2, r2)
	fmt.Fprintf(&sb, "modelDoc.SketchManager.CreateLine(0, %s, 0, 0, 0, 0);\n", r2)
	sb.WriteString("modelDoc.SketchManager.InsertSketch(true);\n")
	sb.WriteString(snippet.SelectionBlock([]snippet.Selection{
		{Name: "Line1", Kind: "SKETCHSEGMENT", Mark: 16},
	}))
	sb.WriteString("\n")

	rev, err := snippet.Revolve(g.cat, snippet.RevolveParams{
		Label:        fmt.Sprintf("Revolve the shaft profile, %smm to %smm", human(d1), human(d2)),
		Boss:         true,
		Angle:        units.DegToRadians(360),
		EndCondition: "blind",
	})
	if err != nil {
		return "", err
	}
	sb.WriteString(rev)
	return sb.String(), nil
}

// keyway sketches a rectangular slot on the shaft's cylindrical face and
// cuts it to the keyway depth. The key length follows the 1.5 x diameter
// convention.
func (g *Shaft) keyway(shaftDia, keyWidth, keyDepth float64) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "// Keyway on shaft dia %smm: width %smm, depth %smm\n",
		human(shaftDia), human(keyWidth), human(keyDepth))
	sb.WriteString(snippet.SelectionBlock([]snippet.Selection{
		{Name: "", Kind: "FACE"},
	}))
	sb.WriteString("\nmodelDoc.SketchManager.InsertSketch(true);\n")
	fmt.Fprintf(&sb, "double hw = %s;\n", units.Format(units.MMToMeters(keyWidth/2)))
	fmt.Fprintf(&sb, "double kl = %s;\n", units.Format(units.MMToMeters(shaftDia*1.5)))
	sb.WriteString("modelDoc.SketchManager.CreateLine(-hw, 0, 0, -hw, kl, 0);\n")
	sb.WriteString("modelDoc.SketchManager.CreateLine(-hw, kl, 0, hw, kl, 0);\n")
	sb.WriteString("modelDoc.SketchManager.CreateLine(hw, kl, 0, hw, 0, 0);\n")
	sb.WriteString("modelDoc.SketchManager.CreateLine(hw, 0, 0, -hw, 0, 0);\n")
	sb.WriteString("modelDoc.SketchManager.InsertSketch(true);\n")

	cut, err := snippet.Extrude(g.cat, snippet.ExtrudeParams{
		Label:        fmt.Sprintf("Cut the keyway %smm deep", human(keyDepth)),
		EndCondition: "blind",
		Depth:        units.MMToMeters(keyDepth),
		Cut:          true,
	})
	if err != nil {
		return "", err
	}
	sb.WriteString(cut)
	return sb.String(), nil
}
