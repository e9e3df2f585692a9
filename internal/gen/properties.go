package gen

import (
	"fmt"
	"strings"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
)

// propConfigs are the configuration names the property families cycle
// through; the empty string targets the document-level property set.
var propConfigs = []string{"Default", "Large", "Small", "Rev-B"}

// propTextValues are representative text properties for a released part.
var propTextValues = []struct{ name, value string }{
	{"PartNumber", "PN-10042"},
	{"Description", "Mounting flange"},
	{"Vendor", "Acme Corp"},
}

// Properties generates custom property and BOM metadata training pairs:
// configuration-scoped adds, reads, deletes, typed values, and a mass
// readback stored as a property.
type Properties struct {
	cat *catalog.Catalog
}

func NewProperties(cat *catalog.Catalog) *Properties {
	return &Properties{cat: cat}
}

func (g *Properties) Name() string { return "properties" }

func (g *Properties) GenerateAll() ([]corpus.Pair, error) {
	var pairs []corpus.Pair

	// Configuration-scoped text properties.
	for _, cfg := range propConfigs {
		for _, pv := range propTextValues {
			code, err := g.propAdd(cfg, pv.name, "text", pv.value)
			if err != nil {
				return nil, fmt.Errorf("gen: properties: add %s: %w", pv.name, err)
			}
			pairs = append(pairs, corpus.Pair{
				Instruction: fmt.Sprintf("Set configuration-specific property %q to %q on configuration %q in SolidWorks.",
					pv.name, pv.value, cfg),
				Code: code,
			})
		}
	}

	// Property reads.
	for _, cfg := range propConfigs[:3] {
		for _, name := range []string{"PartNumber", "Material"} {
			pairs = append(pairs, corpus.Pair{
				Instruction: fmt.Sprintf("Read configuration-specific property %q from configuration %q in SolidWorks.",
					name, cfg),
				Code: propRead(cfg, name),
			})
		}
	}

	// Document-level deletes.
	for _, name := range []string{"Vendor", "CostCenter", "LeadTime", "Tolerance"} {
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Delete custom property %q from the active SolidWorks document.", name),
			Code:        propDelete(name),
		})
	}

	// Typed values beyond plain text.
	for _, tv := range []struct{ kind, name, value, what string }{
		{"number", "StockQty", "150", "integer"},
		{"double", "UnitCost", "12.75", "floating-point"},
		{"date", "ReleaseDate", "2024-06-15", "date"},
		{"yes_no", "IsPurchased", "Yes", "yes/no"},
	} {
		code, err := g.propAdd("", tv.name, tv.kind, tv.value)
		if err != nil {
			return nil, fmt.Errorf("gen: properties: add %s: %w", tv.name, err)
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Add a %s custom property %q with value %q to the active SolidWorks document.",
				tv.what, tv.name, tv.value),
			Code: code,
		})
	}

	// Mass readback into a property.
	massCode, err := g.massProperty()
	if err != nil {
		return nil, fmt.Errorf("gen: properties: mass: %w", err)
	}
	pairs = append(pairs, corpus.Pair{
		Instruction: "Read the mass of the active part and store it as a Weight custom property in SolidWorks.",
		Code:        massCode,
	})

	return pairs, nil
}

// propAdd emits a CustomPropertyManager.Add3 with delete-and-add
// semantics so re-running the macro updates rather than duplicates.
func (g *Properties) propAdd(cfg, name, kind, value string) (string, error) {
	infoType, err := g.cat.CustomInfoType(kind)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "// Set custom property %s\n", name)
	fmt.Fprintf(&sb, "CustomPropertyManager cpMgr = modelDoc.Extension.get_CustomPropertyManager(\"%s\");\n", cfg)
	fmt.Fprintf(&sb, "cpMgr.Add3(\"%s\", (int)%s, \"%s\",\n", name, infoType, value)
	sb.WriteString("    (int)swCustomPropertyAddOption_e.swCustomPropertyDeleteAndAdd);\n")
	sb.WriteString("modelDoc.EditRebuild3();")
	return sb.String(), nil
}

func propRead(cfg, name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "// Read custom property %s\n", name)
	fmt.Fprintf(&sb, "CustomPropertyManager cpMgr = modelDoc.Extension.get_CustomPropertyManager(\"%s\");\n", cfg)
	sb.WriteString("string valOut = \"\", resolvedOut = \"\";\n")
	sb.WriteString("bool wasResolved = false;\n")
	fmt.Fprintf(&sb, "cpMgr.Get6(\"%s\", false, out valOut, out resolvedOut, out wasResolved);\n", name)
	fmt.Fprintf(&sb, "System.Diagnostics.Debug.WriteLine(\"%s@%s = \" + resolvedOut);", name, cfg)
	return sb.String()
}

func propDelete(name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "// Delete custom property %s\n", name)
	sb.WriteString("CustomPropertyManager cpMgr = modelDoc.Extension.get_CustomPropertyManager(\"\");\n")
	fmt.Fprintf(&sb, "int retVal = cpMgr.Delete2(\"%s\");\n", name)
	fmt.Fprintf(&sb, "System.Diagnostics.Debug.WriteLine(retVal == 0 ? \"Deleted %s\" : \"Delete failed: \" + retVal);", name)
	return sb.String()
}

func (g *Properties) massProperty() (string, error) {
	infoType, err := g.cat.CustomInfoType("text")
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("// Store the part mass as a Weight property\n")
	sb.WriteString("MassProperty massProp = modelDoc.Extension.CreateMassProperty();\n")
	sb.WriteString("string massStr = massProp.Mass.ToString(\"F3\") + \" kg\";\n")
	sb.WriteString("CustomPropertyManager cpMgr = modelDoc.Extension.get_CustomPropertyManager(\"\");\n")
	fmt.Fprintf(&sb, "cpMgr.Add3(\"Weight\", (int)%s, massStr,\n", infoType)
	sb.WriteString("    (int)swCustomPropertyAddOption_e.swCustomPropertyDeleteAndAdd);")
	return sb.String(), nil
}
