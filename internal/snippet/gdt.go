package snippet

import (
	"fmt"
	"strings"

	"github.com/swsemantic/swcorpus/internal/catalog"
)

// Feature control frames hold at most three datum slots.
const maxDatumSlots = 3

// DatumRef is one datum reference in a feature control frame.
type DatumRef struct {
	Label    string // "A", "B", "C"
	Modifier string // catalog modifier key; empty means RFS
	Order    int    // 1-based slot order
}

// GtolParams describes a GD&T feature control frame. Tolerance values are
// embedded as given — GD&T tolerances are authored directly in the
// drawing unit, not converted.
type GtolParams struct {
	Characteristic string // catalog key, e.g. "position"
	Tolerance      float64
	ZoneShape      string // catalog key: "cylindrical" or "total"
	Modifier       string // catalog modifier key; empty means RFS
	Datums         []DatumRef
	Composite      bool
	Refinement     float64 // second-row tolerance when Composite
}

// Gtol renders C# that builds a fully configured feature control frame on
// the selected face via IGtol.
func Gtol(cat *catalog.Catalog, p GtolParams) (string, error) {
	charEnum, err := cat.Characteristic(p.Characteristic)
	if err != nil {
		return "", err
	}
	modEnum, err := cat.Modifier(p.Modifier)
	if err != nil {
		return "", err
	}
	zoneEnum, err := cat.ZoneShape(p.ZoneShape)
	if err != nil {
		return "", err
	}
	datumCode, err := gtolDatums(cat, p.Datums)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(header(fmt.Sprintf("Apply %s tolerance: %s", p.Characteristic, num(p.Tolerance))))
	sb.WriteString("\n\n// Obtain the selected face / feature\n")
	sb.WriteString("Face2 selectedFace = (Face2)selectionMgr.GetSelectedObject6(1, -1);\n")
	sb.WriteString("Annotation annotation = (Annotation)selectedFace.GetAnnotation();\n\n")
	sb.WriteString("// Create the tolerance feature\n")
	sb.WriteString("Gtol gtol = (Gtol)annotation.GetSpecificAnnotation();\n")
	sb.WriteString("if (gtol == null)\n{\n    gtol = (Gtol)modelDoc.InsertGtol();\n}\n\n")
	sb.WriteString("// Configure the feature control frame\n")
	fmt.Fprintf(&sb, "gtol.SetFrameSymbol2(0, (int)%s);\n", charEnum)
	sb.WriteString("gtol.SetFrameValues3(\n")
	sb.WriteString("    0,                              // frame index\n")
	fmt.Fprintf(&sb, "    %s,%s// tolerance value\n", num(p.Tolerance), pad(num(p.Tolerance)))
	fmt.Fprintf(&sb, "    (int)%s,\n", zoneEnum)
	fmt.Fprintf(&sb, "    (int)%s);\n\n", modEnum)
	sb.WriteString(datumCode)
	sb.WriteString("\n")
	sb.WriteString(gtolComposite(p, charEnum))
	sb.WriteString("\n\n// Commit changes\n")
	sb.WriteString("gtol.SetDisplay(true);\nmodelDoc.EditRebuild3();")
	return normalize(sb.String()), nil
}

// pad aligns the inline comment after a tolerance literal.
func pad(lit string) string {
	width := 31 - len(lit)
	if width < 1 {
		width = 1
	}
	return strings.Repeat(" ", width)
}

func gtolDatums(cat *catalog.Catalog, datums []DatumRef) (string, error) {
	if len(datums) == 0 {
		return "// No datum references required for this tolerance.", nil
	}
	lines := []string{"// Set datum references"}
	for _, d := range datums {
		if d.Order > maxDatumSlots {
			continue
		}
		modEnum, err := cat.Modifier(d.Modifier)
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf(
			`gtol.SetFrameDatumRef2(0, %d, "%s", (int)%s);`,
			d.Order-1, d.Label, modEnum))
	}
	return strings.Join(lines, "\n"), nil
}

func gtolComposite(p GtolParams, charEnum string) string {
	if !p.Composite || p.Refinement == 0 {
		return "// Single-segment feature control frame."
	}
	return fmt.Sprintf(`// Composite refinement row
gtol.SetFrameSymbol2(1, (int)%s);
gtol.SetFrameValues3(
    1,                              // second frame row
    %s,%s// refinement tolerance
    (int)swGDTToleranceZoneShape_e.swGDTToleranceZoneLinear,
    (int)swGDTModifyingSymbol_e.swGDTModifyingSymbolNone);`,
		charEnum, num(p.Refinement), pad(num(p.Refinement)))
}
