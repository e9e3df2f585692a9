// Package snippet contains the pure code-template functions: each takes a
// typed parameter record and returns a normalized C# block targeting the
// SolidWorks COM API.
//
// Two rules apply everywhere in this package. Numeric magnitudes arrive
// already converted to base units (meters, radians); templates never
// convert. Entity identifiers are embedded verbatim — callers own their
// validity. Category keys, by contrast, are resolved through the catalog
// and an unknown key aborts the template with an error.
package snippet

import (
	"fmt"
	"strings"

	"github.com/swsemantic/swcorpus/internal/units"
)

// Selection describes one entity to add to the selection set.
type Selection struct {
	// Name is the entity identifier passed to SelectByID2, verbatim.
	Name string
	// Kind is the SelectByID2 type string, e.g. "SKETCHSEGMENT", "FACE".
	Kind string
	// Mark is the selection mark index consumed by the following feature call.
	Mark int
	// Filter is an optional swSelectType_e member; 0 is passed when empty.
	Filter string
}

// SelectionBlock renders a sequence of SelectByID2 calls. The first call
// always replaces the prior selection state (append=false) and every
// later call appends (append=true). The order of sels is the order of
// the emitted calls; callers cannot flip the flags, because swapping
// replace and append changes a single-entity operation into a
// multi-entity one.
func SelectionBlock(sels []Selection) string {
	lines := make([]string, 0, len(sels))
	for i, s := range sels {
		lines = append(lines, selectLine(s, i > 0))
	}
	return strings.Join(lines, "\n")
}

func selectLine(s Selection, append bool) string {
	filter := "0"
	if s.Filter != "" {
		filter = "(int)" + s.Filter
	}
	return fmt.Sprintf(
		`modelDoc.Extension.SelectByID2("%s", "%s", 0, 0, 0, %t, %d, null, %s);`,
		s.Name, s.Kind, append, s.Mark, filter)
}

// normalize strips leading and trailing blank lines and any trailing
// whitespace per line, so every template yields a self-contained block.
func normalize(s string) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " \t")
	}
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// num renders a base-unit magnitude as a C# double literal.
func num(v float64) string {
	return units.Format(v)
}

// cbool renders a Go bool as a C# literal.
func cbool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// header renders the banner comment used at the top of most blocks.
func header(text string) string {
	return "// ---------------------------------------------------------\n" +
		"// " + text + "\n" +
		"// ---------------------------------------------------------"
}
