package snippet

import (
	"strings"
	"testing"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/units"
)

func TestSelectionBlockAppendFlags(t *testing.T) {
	block := SelectionBlock([]Selection{
		{Name: "Line1", Kind: "SKETCHSEGMENT"},
		{Name: "Line2", Kind: "SKETCHSEGMENT", Mark: 1},
		{Name: "Line3", Kind: "SKETCHSEGMENT", Mark: 2},
	})
	lines := strings.Split(block, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), block)
	}
	if !strings.Contains(lines[0], "0, 0, 0, false, 0,") {
		t.Errorf("first selection must replace, got %q", lines[0])
	}
	for _, ln := range lines[1:] {
		if !strings.Contains(ln, "true") {
			t.Errorf("later selection must append, got %q", ln)
		}
	}
}

func TestSelectionBlockSingle(t *testing.T) {
	block := SelectionBlock([]Selection{{Name: "Face1", Kind: "FACE"}})
	if strings.Count(block, "\n") != 0 {
		t.Fatalf("single selection should be one line:\n%s", block)
	}
	if !strings.Contains(block, `"Face1", "FACE", 0, 0, 0, false, 0, null, 0);`) {
		t.Errorf("unexpected line: %q", block)
	}
}

func TestSelectionBlockFilter(t *testing.T) {
	block := SelectionBlock([]Selection{
		{Name: "Axis1", Kind: "AXIS", Filter: "swSelectType_e.swSelDATUMAXES"},
	})
	if !strings.Contains(block, "(int)swSelectType_e.swSelDATUMAXES") {
		t.Errorf("filter enum missing: %q", block)
	}
}

func TestNormalize(t *testing.T) {
	in := "\n\n  code;  \nmore;\t\n\n"
	want := "  code;\nmore;"
	if got := normalize(in); got != want {
		t.Errorf("normalize(%q) = %q, want %q", in, got, want)
	}
}

func TestDimensionEmitsMeters(t *testing.T) {
	code, err := Dimension(catalog.Default(), DimensionParams{
		EntityName: "Line1",
		Kind:       "distance",
		Value:      units.MMToMeters(25),
	})
	if err != nil {
		t.Fatalf("Dimension: %v", err)
	}
	if !strings.Contains(code, "SystemValue = 0.025;") {
		t.Errorf("expected meter literal 0.025:\n%s", code)
	}
	if strings.Contains(code, "SystemValue = 25;") {
		t.Errorf("raw millimeter value leaked into code:\n%s", code)
	}
}

func TestDimensionAngleEmitsRadians(t *testing.T) {
	code, err := Dimension(catalog.Default(), DimensionParams{
		EntityName: "Angle1",
		Kind:       "angle",
		Value:      units.DegToRadians(90),
	})
	if err != nil {
		t.Fatalf("Dimension: %v", err)
	}
	if !strings.Contains(code, "1.5707963") {
		t.Errorf("expected radian literal:\n%s", code)
	}
	if strings.Contains(code, "deg") {
		t.Errorf("unit token leaked into code:\n%s", code)
	}
	if !strings.Contains(code, "AddAngularDimension2") {
		t.Errorf("wrong dimension method:\n%s", code)
	}
}

func TestDimensionTolerance(t *testing.T) {
	code, err := Dimension(catalog.Default(), DimensionParams{
		EntityName: "D1",
		Kind:       "distance",
		Value:      units.MMToMeters(50),
		Tolerance:  &Tolerance{Plus: units.MMToMeters(0.1), Minus: units.MMToMeters(0.1)},
	})
	if err != nil {
		t.Fatalf("Dimension: %v", err)
	}
	if !strings.Contains(code, "MaxValue = 0.0001;") {
		t.Errorf("plus tolerance missing:\n%s", code)
	}
	if !strings.Contains(code, "MinValue = -0.0001;") {
		t.Errorf("minus tolerance missing:\n%s", code)
	}
}

func TestDimensionUnknownKind(t *testing.T) {
	_, err := Dimension(catalog.Default(), DimensionParams{
		EntityName: "X", Kind: "weight", Value: 1,
	})
	if err == nil {
		t.Fatal("expected error for unknown dimension kind")
	}
	if !strings.Contains(err.Error(), "weight") {
		t.Errorf("error should name the bad key: %v", err)
	}
}

func TestConstraintUnknownKey(t *testing.T) {
	_, err := Constraint(catalog.Default(), ConstraintParams{
		Constraint:  "magnetic",
		Entity1Name: "Line1",
		Entity1Type: "line",
	})
	if err == nil {
		t.Fatal("expected error for unknown constraint")
	}
	if !strings.Contains(err.Error(), "valid:") {
		t.Errorf("error should list valid keys: %v", err)
	}
}

func TestConstraintBinary(t *testing.T) {
	code, err := Constraint(catalog.Default(), ConstraintParams{
		Constraint:  "perpendicular",
		Entity1Name: "Line1",
		Entity1Type: "line",
		Entity2Name: "Line2",
		Entity2Type: "line",
	})
	if err != nil {
		t.Fatalf("Constraint: %v", err)
	}
	if !strings.Contains(code, "swConstraintTypePerpendicular") {
		t.Errorf("constraint enum missing:\n%s", code)
	}
	if strings.Count(code, "SelectByID2") != 2 {
		t.Errorf("want 2 selections:\n%s", code)
	}
	first := strings.Index(code, "false, 0, null")
	second := strings.Index(code, "true, 1, null")
	if first == -1 || second == -1 || second < first {
		t.Errorf("selection flags out of order:\n%s", code)
	}
}

func TestExtrudeKnownShape(t *testing.T) {
	code, err := Extrude(catalog.Default(), ExtrudeParams{
		Label:        "Boss 25mm",
		EndCondition: "blind",
		Depth:        units.MMToMeters(25),
	})
	if err != nil {
		t.Fatalf("Extrude: %v", err)
	}
	if !strings.Contains(code, "FeatureExtrusion3") {
		t.Errorf("boss should use FeatureExtrusion3:\n%s", code)
	}
	if !strings.Contains(code, "0.025") {
		t.Errorf("depth should be 0.025 meters:\n%s", code)
	}
	if !strings.HasSuffix(code, "modelDoc.EditRebuild3();") {
		t.Errorf("missing rebuild:\n%s", code)
	}
}

func TestExtrudeCut(t *testing.T) {
	code, err := Extrude(catalog.Default(), ExtrudeParams{
		Label:        "Cut",
		EndCondition: "through_all",
		Cut:          true,
	})
	if err != nil {
		t.Fatalf("Extrude: %v", err)
	}
	if !strings.Contains(code, "FeatureCut4") {
		t.Errorf("cut should use FeatureCut4:\n%s", code)
	}
	if !strings.Contains(code, "swEndCondThroughAll") {
		t.Errorf("end condition enum missing:\n%s", code)
	}
}

func TestGtolDatumsAndModifier(t *testing.T) {
	code, err := Gtol(catalog.Default(), GtolParams{
		Characteristic: "position",
		Tolerance:      0.25,
		ZoneShape:      "cylindrical",
		Modifier:       "MMC",
		Datums: []DatumRef{
			{Label: "A", Order: 1},
			{Label: "B", Order: 2},
		},
	})
	if err != nil {
		t.Fatalf("Gtol: %v", err)
	}
	if !strings.Contains(code, "swGDTPosition") {
		t.Errorf("characteristic enum missing:\n%s", code)
	}
	if !strings.Contains(code, "swGDTModifyingSymbolMMC") {
		t.Errorf("modifier enum missing:\n%s", code)
	}
	if !strings.Contains(code, `SetFrameDatumRef2(0, 0, "A"`) ||
		!strings.Contains(code, `SetFrameDatumRef2(0, 1, "B"`) {
		t.Errorf("datum references missing:\n%s", code)
	}
	if !strings.Contains(code, "0.25") {
		t.Errorf("tolerance should be embedded unconverted:\n%s", code)
	}
	if strings.Contains(code, "0.00025") {
		t.Errorf("tolerance must not be unit-converted:\n%s", code)
	}
}

func TestGtolUnknownCharacteristic(t *testing.T) {
	_, err := Gtol(catalog.Default(), GtolParams{
		Characteristic: "wobble",
		Tolerance:      0.1,
		ZoneShape:      "total",
	})
	if err == nil {
		t.Fatal("expected error for unknown characteristic")
	}
}

func TestMateDefaultsAlignment(t *testing.T) {
	code, err := Mate(catalog.Default(), MateParams{
		Label: "Coincident",
		Type:  "coincident",
	})
	if err != nil {
		t.Fatalf("Mate: %v", err)
	}
	if !strings.Contains(code, "swMateCOINCIDENT") {
		t.Errorf("mate enum missing:\n%s", code)
	}
	if !strings.Contains(code, "swMateAlignALIGNED") {
		t.Errorf("default alignment missing:\n%s", code)
	}
}
