package snippet

import (
	"fmt"
	"strings"

	"github.com/swsemantic/swcorpus/internal/catalog"
)

// MateParams describes an assembly mate. Distance is meters, Angle is
// radians; the gear ratio values are dimensionless tooth ratios.
type MateParams struct {
	Label      string
	Type       string // catalog key, e.g. "coincident"
	Alignment  string // catalog key; "aligned" when empty
	Distance   float64
	Angle      float64
	GearRatio1 float64
	GearRatio2 float64
}

// Mate renders an AssemblyDoc.AddMate5 call between the current selections.
func Mate(cat *catalog.Catalog, p MateParams) (string, error) {
	mateEnum, err := cat.MateType(p.Type)
	if err != nil {
		return "", err
	}
	align := p.Alignment
	if align == "" {
		align = "aligned"
	}
	alignEnum, err := cat.MateAlignment(align)
	if err != nil {
		return "", err
	}

	d, a := num(p.Distance), num(p.Angle)
	var sb strings.Builder
	fmt.Fprintf(&sb, "// %s\n", p.Label)
	sb.WriteString("AssemblyDoc asmDoc = (AssemblyDoc)modelDoc;\n")
	sb.WriteString("int errCode = 0;\n")
	sb.WriteString("Mate2 mate = asmDoc.AddMate5(\n")
	fmt.Fprintf(&sb, "    (int)swMateType_e.%s, (int)%s,\n", mateEnum, alignEnum)
	fmt.Fprintf(&sb, "    false, %s, %s, %s, %s, %s, %s, %s, %s,\n",
		d, d, d, a, a, a, num(p.GearRatio1), num(p.GearRatio2))
	sb.WriteString("    false, out errCode);\n")
	sb.WriteString("modelDoc.EditRebuild3();")
	return normalize(sb.String()), nil
}

// ComponentParams describes a part or assembly file to insert.
type ComponentParams struct {
	FileName string // e.g. "Bracket.SLDPRT"
	Dir      string // parts directory; a default is used when empty
}

// AddComponent renders an AssemblyDoc.AddComponent5 call placing the
// component at the assembly origin.
func AddComponent(p ComponentParams) string {
	dir := p.Dir
	if dir == "" {
		dir = `C:\Parts`
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "// Add component: %s\n", p.FileName)
	sb.WriteString("AssemblyDoc asmDoc = (AssemblyDoc)modelDoc;\n")
	sb.WriteString("Component2 comp = asmDoc.AddComponent5(\n")
	fmt.Fprintf(&sb, "    @\"%s\\%s\", 0, \"\", false, \"\", 0, 0, 0);\n", dir, p.FileName)
	sb.WriteString("modelDoc.EditRebuild3();")
	return normalize(sb.String())
}

// AssemblyCallParams is the assembly analogue of FeatureCallParams: one
// AssemblyDoc method invocation with pre-formatted arguments.
type AssemblyCallParams struct {
	Label  string
	Decl   string // e.g. "Feature patt = (Feature)"
	Method string
	Args   string
}

// AssemblyCall renders a cast to AssemblyDoc, the method call, and a rebuild.
func AssemblyCall(p AssemblyCallParams) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "// %s\n", p.Label)
	sb.WriteString("AssemblyDoc asmDoc = (AssemblyDoc)modelDoc;\n")
	fmt.Fprintf(&sb, "%sasmDoc.%s(%s);\n", p.Decl, p.Method, p.Args)
	sb.WriteString("modelDoc.EditRebuild3();")
	return normalize(sb.String())
}
