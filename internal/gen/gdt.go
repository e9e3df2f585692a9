package gen

import (
	"fmt"
	"strings"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/snippet"
)

// characteristic describes one of the 14 geometric characteristics of
// ASME Y14.5 and which frame options apply to it.
type characteristic struct {
	key           string
	requiresDatum bool
	allowsMod     bool
}

// The slice order fixes the output order; form, then orientation,
// location, runout, profile.
var gdtCharacteristics = []characteristic{
	{"straightness", false, false},
	{"flatness", false, false},
	{"circularity", false, false},
	{"cylindricity", false, false},
	{"perpendicularity", true, true},
	{"parallelism", true, true},
	{"angularity", true, true},
	{"position", true, true},
	{"concentricity", true, false},
	{"symmetry", true, false},
	{"circular_runout", true, false},
	{"total_runout", true, false},
	{"profile_of_a_line", true, false},
	{"profile_of_a_surface", true, false},
}

// Tolerance values used to permute feature control frame examples.
var gdtToleranceValues = []float64{0.01, 0.05, 0.1, 0.2, 0.5}

// Datum reference frames permuted across datum-referencing characteristics.
var gdtDatumConfigs = [][]snippet.DatumRef{
	{{Label: "A", Order: 1}},
	{{Label: "A", Order: 1}, {Label: "B", Order: 2}},
	{{Label: "A", Order: 1}, {Label: "B", Order: 2}, {Label: "C", Order: 3}},
}

// Frames with material modifiers on the datum references themselves.
var gdtDatumConfigsWithMod = [][]snippet.DatumRef{
	{{Label: "A", Order: 1}, {Label: "B", Modifier: "MMC", Order: 2}},
	{{Label: "A", Order: 1}, {Label: "B", Modifier: "MMC", Order: 2}, {Label: "C", Modifier: "MMC", Order: 3}},
	{{Label: "A", Order: 1}, {Label: "B", Modifier: "LMC", Order: 2}, {Label: "C", Order: 3}},
}

// GDT generates feature control frame training pairs across all 14
// geometric characteristics, plus a few fixed datum-frame setup pairs.
type GDT struct {
	cat *catalog.Catalog
}

func NewGDT(cat *catalog.Catalog) *GDT {
	return &GDT{cat: cat}
}

func (g *GDT) Name() string { return "gdt" }

func (g *GDT) GenerateAll() ([]corpus.Pair, error) {
	var pairs []corpus.Pair
	for _, char := range gdtCharacteristics {
		p, err := g.characteristicPairs(char)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p...)
	}
	pairs = append(pairs, g.datumFramePairs()...)
	return pairs, nil
}

func (g *GDT) characteristicPairs(char characteristic) ([]corpus.Pair, error) {
	var pairs []corpus.Pair

	zone := "total"
	appliesMod := func(datums []snippet.DatumRef) []string {
		if char.allowsMod && len(datums) > 0 {
			return []string{"", "MMC", "LMC"}
		}
		return []string{""}
	}
	if char.key == "position" {
		zone = "cylindrical"
	}

	datumSets := [][]snippet.DatumRef{nil}
	if char.requiresDatum {
		datumSets = gdtDatumConfigs
	}

	for _, tol := range gdtToleranceValues {
		for _, datums := range datumSets {
			for _, mod := range appliesMod(datums) {
				code, err := snippet.Gtol(g.cat, snippet.GtolParams{
					Characteristic: char.key,
					Tolerance:      tol,
					ZoneShape:      zone,
					Modifier:       mod,
					Datums:         datums,
				})
				if err != nil {
					return nil, err
				}
				pairs = append(pairs, corpus.Pair{
					Instruction: gdtInstruction(char.key, tol, mod, datums),
					Code:        code,
				})
			}
		}
	}

	// Frames whose datum references carry their own material modifiers.
	if char.requiresDatum && char.allowsMod {
		for _, tol := range []float64{0.1, 0.25} {
			for _, datums := range gdtDatumConfigsWithMod {
				code, err := snippet.Gtol(g.cat, snippet.GtolParams{
					Characteristic: char.key,
					Tolerance:      tol,
					ZoneShape:      zone,
					Datums:         datums,
				})
				if err != nil {
					return nil, err
				}
				pairs = append(pairs, corpus.Pair{
					Instruction: gdtDatumModInstruction(char.key, tol, datums),
					Code:        code,
				})
			}
		}
	}
	return pairs, nil
}

func gdtInstruction(char string, tol float64, mod string, datums []snippet.DatumRef) string {
	name := strings.ReplaceAll(char, "_", " ")
	var sb strings.Builder
	fmt.Fprintf(&sb, "Apply a %s tolerance of %s", name, human(tol))
	if mod != "" {
		fmt.Fprintf(&sb, " at %s", mod)
	}
	if len(datums) > 0 {
		labels := make([]string, len(datums))
		for i, d := range datums {
			labels[i] = d.Label
		}
		fmt.Fprintf(&sb, " with datum references %s", strings.Join(labels, ", "))
	}
	sb.WriteString(" to the selected feature.")
	return sb.String()
}

func gdtDatumModInstruction(char string, tol float64, datums []snippet.DatumRef) string {
	name := strings.ReplaceAll(char, "_", " ")
	parts := make([]string, len(datums))
	for i, d := range datums {
		if d.Modifier != "" {
			parts[i] = fmt.Sprintf("%s at %s", d.Label, d.Modifier)
		} else {
			parts[i] = d.Label
		}
	}
	return fmt.Sprintf("Apply a %s tolerance of %s referencing datums %s to the selected feature.",
		name, human(tol), strings.Join(parts, ", "))
}

// datumFramePairs are fixed, hand-authored pairs covering datum reference
// frame setup. They follow the same non-emptiness and determinism
// contracts as the enumerated pairs.
func (g *GDT) datumFramePairs() []corpus.Pair {
	frames := []struct {
		name   string
		labels []string
	}{
		{"3-2-1", []string{"A", "B", "C"}},
		{"two-datum", []string{"A", "B"}},
		{"single-datum", []string{"A"}},
	}
	var pairs []corpus.Pair
	for _, f := range frames {
		var sb strings.Builder
		for i, lbl := range f.labels {
			sels := []snippet.Selection{{Name: fmt.Sprintf("Face_%s", lbl), Kind: "FACE"}}
			block := snippet.SelectionBlock(sels)
			if i > 0 {
				// Each datum tag starts its own selection sequence.
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "// Assign datum label %q to the selected face\n", lbl)
			sb.WriteString(block)
			fmt.Fprintf(&sb, "\nDatumTag dt%s = (DatumTag)modelDoc.InsertDatumTag2(\"%s\", 0);\n", lbl, lbl)
		}
		sb.WriteString("modelDoc.EditRebuild3();")
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Set up a %s datum reference frame (%s) in SolidWorks.",
				f.name, strings.Join(f.labels, ", ")),
			Code: sb.String(),
		})
	}
	return pairs
}
