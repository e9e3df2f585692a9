package snippet

import (
	"fmt"
	"strings"

	"github.com/swsemantic/swcorpus/internal/catalog"
)

// ExtrudeParams describes a boss or cut extrusion from the active sketch.
// Depth and ThinWall are meters; Draft is radians.
type ExtrudeParams struct {
	Label        string // comment label for the block
	EndCondition string // catalog key, e.g. "blind"
	Depth        float64
	Draft        float64
	DraftOutward bool
	Cut          bool    // cut instead of boss
	ThinWall     float64 // >0 adds a thin-wall call after the feature
}

// Extrude renders an IFeatureManager extrusion (FeatureExtrusion3) or cut
// (FeatureCut4) call followed by a rebuild.
func Extrude(cat *catalog.Catalog, p ExtrudeParams) (string, error) {
	ec, err := cat.EndCondition(p.EndCondition)
	if err != nil {
		return "", err
	}
	draftOut := cbool(p.DraftOutward && p.Draft != 0)
	thin := cbool(p.ThinWall > 0)

	var sb strings.Builder
	fmt.Fprintf(&sb, "// %s\n", p.Label)
	if p.Cut {
		sb.WriteString("Feature cutFeat = (Feature)featMgr.FeatureCut4(\n")
		fmt.Fprintf(&sb, "    true, false, false, (int)%s, 0, %s, 0,\n", ec, num(p.Depth))
		fmt.Fprintf(&sb, "    false, false, false, false, %s, %s,\n", num(p.Draft), draftOut)
		sb.WriteString("    false, false, false, false, false, false, 0, 0, false, false);\n")
	} else {
		sb.WriteString("Feature feat = (Feature)featMgr.FeatureExtrusion3(\n")
		fmt.Fprintf(&sb, "    true, false, false, (int)%s, 0, %s, 0,\n", ec, num(p.Depth))
		fmt.Fprintf(&sb, "    %s, false, false, false, %s, %s,\n", thin, num(p.Draft), draftOut)
		sb.WriteString("    false, false, false, false, 0, 0, false, false);\n")
	}
	if p.ThinWall > 0 && !p.Cut {
		fmt.Fprintf(&sb, "feat.SetThinWallThickness(true, %s, 0);\n", num(p.ThinWall))
	}
	sb.WriteString("modelDoc.EditRebuild3();")
	return normalize(sb.String()), nil
}

// RevolveParams describes a boss or cut revolve. Angle is radians; Wall
// is meters and applies only when Thin is set.
type RevolveParams struct {
	Label        string
	Boss         bool
	Angle        float64
	EndCondition string // catalog key; "blind" for a plain revolve
	Thin         bool
	Wall         float64
	Axis         string // optional named axis to select first
}

// Revolve renders an IFeatureManager.FeatureRevolve2 call, optionally
// preceded by selection of a named revolution axis.
func Revolve(cat *catalog.Catalog, p RevolveParams) (string, error) {
	ec, err := cat.EndCondition(p.EndCondition)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if p.Axis != "" {
		sb.WriteString("// Select axis\n")
		sb.WriteString(SelectionBlock([]Selection{{Name: p.Axis, Kind: "AXIS", Mark: 4}}))
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "// %s\n", p.Label)
	sb.WriteString("Feature feat = (Feature)featMgr.FeatureRevolve2(\n")
	fmt.Fprintf(&sb, "    true, %s, false, %s, 0, %s, 0,\n", cbool(p.Boss), cbool(p.Thin), num(p.Wall))
	fmt.Fprintf(&sb, "    (int)%s, %s, 0, 0, false, false, 0, 0, false);\n", ec, num(p.Angle))
	sb.WriteString("modelDoc.EditRebuild3();")
	return normalize(sb.String()), nil
}

// FeatureCallParams describes a single-call feature method invocation:
// patterns, fillets, chamfers, shells, ribs, and surface operations all
// reduce to one IFeatureManager (or AssemblyDoc) method with positional
// arguments. Args holds the already-formatted argument list.
type FeatureCallParams struct {
	Label      string
	Method     string
	Args       string
	Selections []Selection // optional pre-selections
}

// FeatureCall renders the selection block (if any), the feature method
// call, and a rebuild.
func FeatureCall(p FeatureCallParams) string {
	var sb strings.Builder
	if len(p.Selections) > 0 {
		sb.WriteString(SelectionBlock(p.Selections))
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "// %s\n", p.Label)
	fmt.Fprintf(&sb, "Feature feat = (Feature)featMgr.%s(%s);\n", p.Method, p.Args)
	sb.WriteString("modelDoc.EditRebuild3();")
	return normalize(sb.String())
}
