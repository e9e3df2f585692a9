// Package gen holds the category generators. Each generator owns one
// behavioral topic, enumerates its parameter domain, and maps every tuple
// to exactly one training pair via the snippet templates.
//
// Generators are pure: no randomness, no clock, no shared mutable state,
// and no reliance on map iteration order. Re-running any of them yields a
// byte-identical sequence.
package gen

import (
	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/units"
)

// All returns every category generator in registration order. This order
// is the corpus order: the aggregator concatenates generator outputs
// exactly as listed here.
func All(cat *catalog.Catalog) []corpus.Generator {
	return []corpus.Generator{
		NewSketch(cat),
		NewGDT(cat),
		NewExtrude(cat),
		NewRevolve(cat),
		NewPattern(cat),
		NewFilletChamfer(cat),
		NewShellRib(cat),
		NewAssembly(cat),
		NewSurface(cat),
		NewMountingHole(cat),
		NewFastener(cat),
		NewShaft(cat),
		NewProperties(cat),
		NewMotion(cat),
		NewDrawing(cat),
	}
}

// human renders a magnitude the way instructions quote it (the human
// unit, shortest form): 12.5 → "12.5".
func human(v float64) string {
	return units.Format(v)
}
