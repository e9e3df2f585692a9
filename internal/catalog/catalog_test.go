package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultHasAllTables(t *testing.T) {
	want := []string{
		TableCharacteristics,
		TableConstraints,
		TableCustomInfoTypes,
		TableDimensionMethods,
		TableEndConditions,
		TableHoleFasteners,
		TableHoleStandards,
		TableHoleTypes,
		TableMateAlignments,
		TableMateTypes,
		TableModifiers,
		TableMotionStudyTypes,
		TableMotorTypes,
		TableSelectTypes,
		TableZoneShapes,
	}
	got := Default().TableNames()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TableNames() = %v, want %v", got, want)
	}
}

func TestDefaultLookups(t *testing.T) {
	tests := []struct {
		table, key, want string
	}{
		{TableConstraints, "perpendicular", "swConstraintType_e.swConstraintTypePerpendicular"},
		{TableDimensionMethods, "angle", "AddAngularDimension2"},
		{TableEndConditions, "through_all", "swEndConditions_e.swEndCondThroughAll"},
		{TableCharacteristics, "position", "swGDTCharacteristic_e.swGDTPosition"},
		{TableMateTypes, "coincident", "swMateCOINCIDENT"},
		{TableHoleTypes, "counterbore", "swWzdGeneralHoleTypes_e.swWzdHoleCounterbore"},
		{TableHoleStandards, "iso", "swWzdHoleStandards_e.swWzdHoleStandardISO"},
		{TableHoleFasteners, "tapped_standard", "swWzdHoleFastenerType_e.swWzdHoleFastenerTypeTappedHole"},
		{TableCustomInfoTypes, "text", "swCustomInfoType_e.swCustomInfoText"},
		{TableMotionStudyTypes, "motion_analysis", "swMotionStudyType_e.swMotionStudyTypeMotionAnalysis"},
		{TableMotorTypes, "rotary", "swMotionStudyMotorType_e.swMotorTypeRotary"},
	}
	for _, tt := range tests {
		got, err := Default().Lookup(tt.table, tt.key)
		if err != nil {
			t.Errorf("Lookup(%s, %s): %v", tt.table, tt.key, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%s, %s) = %q, want %q", tt.table, tt.key, got, tt.want)
		}
	}
}

func TestLookupUnknownKey(t *testing.T) {
	_, err := Default().Lookup(TableEndConditions, "bogus")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	var ke *KeyError
	if !errors.As(err, &ke) {
		t.Fatalf("error type = %T, want *KeyError", err)
	}
	if ke.Table != TableEndConditions || ke.Key != "bogus" {
		t.Errorf("KeyError = %+v", ke)
	}
	want := Default().Keys(TableEndConditions)
	if !reflect.DeepEqual(ke.Valid, want) {
		t.Errorf("Valid = %v, want sorted keys %v", ke.Valid, want)
	}
}

func TestLookupUnknownTable(t *testing.T) {
	_, err := Default().Lookup("nope", "any")
	var ke *KeyError
	if !errors.As(err, &ke) {
		t.Fatalf("error type = %T, want *KeyError", err)
	}
	if !reflect.DeepEqual(ke.Valid, Default().TableNames()) {
		t.Errorf("Valid should list table names, got %v", ke.Valid)
	}
}

func TestModifierDefaultsToRFS(t *testing.T) {
	got, err := Default().Modifier("")
	if err != nil {
		t.Fatalf("Modifier(\"\"): %v", err)
	}
	want, _ := Default().Modifier("RFS")
	if got != want {
		t.Errorf("Modifier(\"\") = %q, want %q", got, want)
	}
}

func TestParseAndMerge(t *testing.T) {
	a, err := Parse([]byte("colors:\n  red: RED\n  blue: BLUE\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := Parse([]byte("shapes:\n  round: ROUND\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	merged, err := a.Merge(b)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	v, err := merged.Lookup("colors", "red")
	if err != nil || v != "RED" {
		t.Errorf("Lookup(colors, red) = %q, %v", v, err)
	}
	v, err = merged.Lookup("shapes", "round")
	if err != nil || v != "ROUND" {
		t.Errorf("Lookup(shapes, round) = %q, %v", v, err)
	}
}

func TestMergeRejectsDuplicateTable(t *testing.T) {
	a, _ := Parse([]byte("colors:\n  red: RED\n"))
	b, _ := Parse([]byte("colors:\n  blue: BLUE\n"))
	if _, err := a.Merge(b); err == nil {
		t.Fatal("expected duplicate-table error")
	}
}
