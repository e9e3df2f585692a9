package snippet

import (
	"fmt"
	"math"
	"strings"

	"github.com/swsemantic/swcorpus/internal/catalog"
)

// ConstraintParams describes a geometric sketch relation between one or
// two entities, with an optional reference entity (e.g. a datum axis for
// symmetric relations).
type ConstraintParams struct {
	Constraint  string // catalog key, e.g. "perpendicular"
	Entity1Name string
	Entity1Type string // catalog key, e.g. "line"
	Entity2Name string // empty for unary relations
	Entity2Type string
	Reference   string // optional axis / centerline entity name
}

// Constraint renders C# that selects the participating entities and
// applies a geometric relation via ISketchManager.AddConstraint.
func Constraint(cat *catalog.Catalog, p ConstraintParams) (string, error) {
	ctype, err := cat.ConstraintType(p.Constraint)
	if err != nil {
		return "", err
	}
	filter1, err := cat.SelectType(p.Entity1Type)
	if err != nil {
		return "", err
	}

	sels := []Selection{{Name: p.Entity1Name, Kind: "SKETCHSEGMENT", Mark: 0, Filter: filter1}}
	entity2 := "N/A"
	if p.Entity2Name != "" && p.Entity2Type != "" {
		filter2, err := cat.SelectType(p.Entity2Type)
		if err != nil {
			return "", err
		}
		sels = append(sels, Selection{Name: p.Entity2Name, Kind: "SKETCHSEGMENT", Mark: 1, Filter: filter2})
		entity2 = fmt.Sprintf("%s %q", p.Entity2Type, p.Entity2Name)
	}
	if p.Reference != "" {
		sels = append(sels, Selection{
			Name: p.Reference, Kind: "SKETCHSEGMENT", Mark: 2,
			Filter: "swSelectType_e.swSelDATUMAXES",
		})
	}

	var sb strings.Builder
	sb.WriteString(header(fmt.Sprintf("Apply sketch constraint: %s", p.Constraint)))
	fmt.Fprintf(&sb, "\n//   Entity 1: %s %q\n//   Entity 2: %s\n\n", p.Entity1Type, p.Entity1Name, entity2)
	sb.WriteString("SketchManager sketchMgr = modelDoc.SketchManager;\n\n")
	sb.WriteString("// Select entities\n")
	sb.WriteString(SelectionBlock(sels))
	sb.WriteString("\n\n// Apply the constraint\n")
	fmt.Fprintf(&sb, "sketchMgr.AddConstraint((int)%s);", ctype)
	return normalize(sb.String()), nil
}

// Tolerance is a bilateral tolerance band around a nominal dimension.
// Minus carries its magnitude; the sign is applied by the template.
type Tolerance struct {
	Plus  float64
	Minus float64
}

// DimensionParams describes a driving dimension on one sketch entity.
// Value is in base units (meters for lengths, radians for angles).
type DimensionParams struct {
	EntityName string
	Kind       string // catalog key: distance, angle, radius, diameter
	Value      float64
	Tolerance  *Tolerance // nil for an untoleranced dimension
}

// Dimension renders C# that selects the target entity, creates the
// dimension via the kind-specific IModelDoc2 method, and sets its value.
func Dimension(cat *catalog.Catalog, p DimensionParams) (string, error) {
	method, err := cat.DimensionMethod(p.Kind)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(header(fmt.Sprintf("Add %s dimension to %q: %s", p.Kind, p.EntityName, num(p.Value))))
	sb.WriteString("\n\n// Select the target entity\n")
	sb.WriteString("bool selOk = " + selectLine(Selection{Name: p.EntityName, Kind: "SKETCHSEGMENT"}, false))
	sb.WriteString("\n\n// Create the dimension\n")
	fmt.Fprintf(&sb, "Dimension dim = (Dimension)modelDoc.%s(0, 0, 0);\n", method)
	sb.WriteString("if (dim != null)\n{\n")
	fmt.Fprintf(&sb, "    dim.SystemValue = %s;\n", num(p.Value))
	if p.Tolerance != nil {
		sb.WriteString("\n    // Apply bilateral tolerance\n")
		sb.WriteString("    DisplayDimension dispDim = (DisplayDimension)dim;\n")
		sb.WriteString("    DimensionTolerance tolObj = dispDim.GetTolerance();\n")
		sb.WriteString("    tolObj.Type = (int)swDimensionToleranceType_e.swDimTolBilateral;\n")
		fmt.Fprintf(&sb, "    tolObj.MaxValue = %s;\n", num(p.Tolerance.Plus))
		fmt.Fprintf(&sb, "    tolObj.MinValue = -%s;\n", num(math.Abs(p.Tolerance.Minus)))
	}
	sb.WriteString("}\n\nmodelDoc.ClearSelection2(true);")
	return normalize(sb.String()), nil
}
