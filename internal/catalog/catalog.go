// Package catalog holds the SolidWorks enum tables that parameterize code
// generation: category name → fully qualified API enum value.
//
// Tables are loaded once from embedded YAML and are read-only afterwards.
// Keeping the tables as data, separate from generation logic, lets tests
// exercise the engine against small synthetic catalogs.
package catalog

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Table names present in the default catalog.
const (
	TableConstraints      = "constraints"
	TableDimensionMethods = "dimension_methods"
	TableSelectTypes      = "select_types"
	TableEndConditions    = "end_conditions"
	TableCharacteristics  = "characteristics"
	TableModifiers        = "modifiers"
	TableZoneShapes       = "zone_shapes"
	TableMateTypes        = "mate_types"
	TableMateAlignments   = "mate_alignments"
	TableHoleTypes        = "hole_types"
	TableHoleStandards    = "hole_standards"
	TableHoleFasteners    = "hole_fastener_types"
	TableCustomInfoTypes  = "custom_info_types"
	TableMotionStudyTypes = "motion_study_types"
	TableMotorTypes       = "motor_types"
)

// KeyError reports a lookup against a key the table does not contain.
// It always names the valid keys so the offending generator can be fixed.
type KeyError struct {
	Table string
	Key   string
	Valid []string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("catalog: table %q has no key %q (valid: %s)",
		e.Table, e.Key, strings.Join(e.Valid, ", "))
}

// Catalog is an immutable set of named lookup tables.
type Catalog struct {
	tables map[string]map[string]string
}

// Parse builds a catalog from YAML content mapping table names to
// key/value tables. Duplicate table names across calls are rejected by
// Merge; within one document the YAML decoder keeps the last entry.
func Parse(data []byte) (*Catalog, error) {
	var tables map[string]map[string]string
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("catalog: parse yaml: %w", err)
	}
	return &Catalog{tables: tables}, nil
}

// Merge combines the tables of c and other into a new catalog.
// A table name present in both is an authoring error.
func (c *Catalog) Merge(other *Catalog) (*Catalog, error) {
	merged := make(map[string]map[string]string, len(c.tables)+len(other.tables))
	for name, t := range c.tables {
		merged[name] = t
	}
	for name, t := range other.tables {
		if _, dup := merged[name]; dup {
			return nil, fmt.Errorf("catalog: duplicate table %q", name)
		}
		merged[name] = t
	}
	return &Catalog{tables: merged}, nil
}

// defaultCatalog is built from the embedded YAML files at process start
// and never mutated afterwards.
var defaultCatalog = mustLoadEmbedded()

// Default returns the built-in SolidWorks catalog.
func Default() *Catalog {
	return defaultCatalog
}

func mustLoadEmbedded() *Catalog {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		panic(fmt.Sprintf("catalog: read embedded data: %v", err))
	}
	// ReadDir returns entries sorted by name, so the merge order (and any
	// duplicate-table error) is stable.
	cat := &Catalog{tables: map[string]map[string]string{}}
	for _, entry := range entries {
		b, err := dataFS.ReadFile("data/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("catalog: read %s: %v", entry.Name(), err))
		}
		parsed, err := Parse(b)
		if err != nil {
			panic(fmt.Sprintf("catalog: %s: %v", entry.Name(), err))
		}
		cat, err = cat.Merge(parsed)
		if err != nil {
			panic(fmt.Sprintf("catalog: %s: %v", entry.Name(), err))
		}
	}
	return cat
}

// Lookup resolves a key in the named table. A missing table or key is an
// authoring defect and returns a *KeyError; callers abort the generator
// run rather than substituting a placeholder.
func (c *Catalog) Lookup(table, key string) (string, error) {
	t, ok := c.tables[table]
	if !ok {
		return "", &KeyError{Table: table, Key: key, Valid: c.TableNames()}
	}
	v, ok := t[key]
	if !ok {
		return "", &KeyError{Table: table, Key: key, Valid: c.Keys(table)}
	}
	return v, nil
}

// Keys returns the sorted keys of the named table, or nil if the table
// does not exist.
func (c *Catalog) Keys(table string) []string {
	t, ok := c.tables[table]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TableNames returns the sorted names of all tables in the catalog.
func (c *Catalog) TableNames() []string {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Typed accessors for the default tables. Each fails with a *KeyError on
// an unknown key.

// ConstraintType resolves a sketch relation name to swConstraintType_e.
func (c *Catalog) ConstraintType(name string) (string, error) {
	return c.Lookup(TableConstraints, name)
}

// DimensionMethod resolves a dimension kind to its IModelDoc2 method name.
func (c *Catalog) DimensionMethod(kind string) (string, error) {
	return c.Lookup(TableDimensionMethods, kind)
}

// SelectType resolves a sketch entity kind to swSelectType_e.
func (c *Catalog) SelectType(entity string) (string, error) {
	return c.Lookup(TableSelectTypes, entity)
}

// EndCondition resolves an extrusion end condition to swEndConditions_e.
func (c *Catalog) EndCondition(name string) (string, error) {
	return c.Lookup(TableEndConditions, name)
}

// Characteristic resolves a GD&T characteristic to swGDTCharacteristic_e.
func (c *Catalog) Characteristic(name string) (string, error) {
	return c.Lookup(TableCharacteristics, name)
}

// Modifier resolves a material condition modifier to swGDTModifyingSymbol_e.
// The empty string means RFS, the default material condition.
func (c *Catalog) Modifier(name string) (string, error) {
	if name == "" {
		name = "RFS"
	}
	return c.Lookup(TableModifiers, name)
}

// ZoneShape resolves a tolerance zone shape to swGDTToleranceZoneShape_e.
func (c *Catalog) ZoneShape(name string) (string, error) {
	return c.Lookup(TableZoneShapes, name)
}

// MateType resolves a mate kind to its swMateType_e member name.
func (c *Catalog) MateType(name string) (string, error) {
	return c.Lookup(TableMateTypes, name)
}

// MateAlignment resolves a mate alignment to swMateAlign_e.
func (c *Catalog) MateAlignment(name string) (string, error) {
	return c.Lookup(TableMateAlignments, name)
}

// HoleType resolves a Hole Wizard hole kind to swWzdGeneralHoleTypes_e.
func (c *Catalog) HoleType(name string) (string, error) {
	return c.Lookup(TableHoleTypes, name)
}

// HoleStandard resolves a hole dimensioning standard to swWzdHoleStandards_e.
func (c *Catalog) HoleStandard(name string) (string, error) {
	return c.Lookup(TableHoleStandards, name)
}

// HoleFastener resolves the target fastener kind to swWzdHoleFastenerType_e.
func (c *Catalog) HoleFastener(name string) (string, error) {
	return c.Lookup(TableHoleFasteners, name)
}

// CustomInfoType resolves a custom property value type to swCustomInfoType_e.
func (c *Catalog) CustomInfoType(name string) (string, error) {
	return c.Lookup(TableCustomInfoTypes, name)
}

// MotionStudyType resolves a study kind to swMotionStudyType_e.
func (c *Catalog) MotionStudyType(name string) (string, error) {
	return c.Lookup(TableMotionStudyTypes, name)
}

// MotorType resolves a simulation motor kind to swMotionStudyMotorType_e.
func (c *Catalog) MotorType(name string) (string, error) {
	return c.Lookup(TableMotorTypes, name)
}
