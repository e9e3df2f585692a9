package gen

import (
	"fmt"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/snippet"
	"github.com/swsemantic/swcorpus/internal/units"
)

// metricHoleSpecs pairs a metric thread size with its nominal diameter
// and the counterbore dimensions for a socket head cap screw, per the
// ANSI B18.2.8 clearance tables.
var metricHoleSpecs = []struct {
	size                 string
	nominal              float64 // mm
	cboreDia, cboreDepth float64 // mm
}{
	{"M3", 3, 6.5, 3.5},
	{"M4", 4, 8, 4.5},
	{"M5", 5, 10, 5.5},
	{"M6", 6, 11, 6.5},
	{"M8", 8, 14.5, 8.5},
	{"M10", 10, 17.5, 10.5},
	{"M12", 12, 20, 13},
}

// Fastener generates Hole Wizard training pairs: counterbore,
// countersink, tapped, and clearance holes across the metric sizes.
type Fastener struct {
	cat *catalog.Catalog
}

func NewFastener(cat *catalog.Catalog) *Fastener {
	return &Fastener{cat: cat}
}

func (g *Fastener) Name() string { return "fastener" }

func (g *Fastener) GenerateAll() ([]corpus.Pair, error) {
	var pairs []corpus.Pair

	add := func(instruction string, p holeWizardParams) error {
		code, err := g.holeWizard(p)
		if err != nil {
			return fmt.Errorf("gen: fastener: %w", err)
		}
		pairs = append(pairs, corpus.Pair{Instruction: instruction, Code: code})
		return nil
	}

	// Counterbore holes, blind.
	for _, s := range metricHoleSpecs {
		for _, depth := range []float64{10, 20} {
			err := add(
				fmt.Sprintf("Create a counterbore hole for an %s socket head cap screw, %smm deep, using the ANSI Metric standard in SolidWorks.",
					s.size, human(depth)),
				holeWizardParams{
					Label:        fmt.Sprintf("Counterbore %s, %smm deep", s.size, human(depth)),
					HoleType:     "counterbore",
					Standard:     "ansi_metric",
					Fastener:     "counterbore",
					Size:         s.size,
					EndCondition: "blind",
					Depth:        units.MMToMeters(depth),
					CboreDia:     units.MMToMeters(s.cboreDia),
					CboreDepth:   units.MMToMeters(s.cboreDepth),
				})
			if err != nil {
				return nil, err
			}
		}
	}

	// Counterbore holes, through all.
	for _, s := range metricHoleSpecs {
		err := add(
			fmt.Sprintf("Create a through-all counterbore hole for %s socket head cap screws using the ANSI Metric standard in SolidWorks.", s.size),
			holeWizardParams{
				Label:        fmt.Sprintf("Counterbore %s through all", s.size),
				HoleType:     "counterbore",
				Standard:     "ansi_metric",
				Fastener:     "counterbore",
				Size:         s.size,
				EndCondition: "through_all",
				CboreDia:     units.MMToMeters(s.cboreDia),
				CboreDepth:   units.MMToMeters(s.cboreDepth),
			})
		if err != nil {
			return nil, err
		}
	}

	// Countersink holes, ANSI Metric 82-degree, blind. The countersink
	// diameter is twice the nominal thread diameter.
	for _, s := range metricHoleSpecs[:4] {
		for _, depth := range []float64{8, 12} {
			err := add(
				fmt.Sprintf("Create a countersink hole for an %s flat head screw, %smm deep, using the ANSI Metric standard in SolidWorks.",
					s.size, human(depth)),
				holeWizardParams{
					Label:        fmt.Sprintf("Countersink %s, %smm deep", s.size, human(depth)),
					HoleType:     "countersink",
					Standard:     "ansi_metric",
					Fastener:     "countersink",
					Size:         s.size,
					EndCondition: "blind",
					Depth:        units.MMToMeters(depth),
					CsinkDia:     units.MMToMeters(s.nominal * 2),
					CsinkAngle:   units.DegToRadians(82),
				})
			if err != nil {
				return nil, err
			}
		}
	}

	// Countersink holes, ISO 90-degree, through all.
	for _, s := range metricHoleSpecs[2:6] {
		err := add(
			fmt.Sprintf("Create an ISO through-all countersink hole for an %s flat head screw in SolidWorks.", s.size),
			holeWizardParams{
				Label:        fmt.Sprintf("Countersink %s ISO through all", s.size),
				HoleType:     "countersink",
				Standard:     "iso",
				Fastener:     "countersink",
				Size:         s.size,
				EndCondition: "through_all",
				CsinkDia:     units.MMToMeters(s.nominal * 2),
				CsinkAngle:   units.DegToRadians(90),
			})
		if err != nil {
			return nil, err
		}
	}

	// Tapped holes, blind.
	for _, s := range metricHoleSpecs[2:] {
		for _, depth := range []float64{10, 15, 20} {
			err := add(
				fmt.Sprintf("Create a tapped hole for an %s thread, %smm deep, using the ANSI Metric standard in SolidWorks.",
					s.size, human(depth)),
				holeWizardParams{
					Label:        fmt.Sprintf("Tapped %s, %smm deep", s.size, human(depth)),
					HoleType:     "tapped",
					Standard:     "ansi_metric",
					Fastener:     "tapped_standard",
					Size:         s.size,
					EndCondition: "blind",
					Depth:        units.MMToMeters(depth),
				})
			if err != nil {
				return nil, err
			}
		}
	}

	// Tapped holes, through all.
	for _, s := range metricHoleSpecs[1:6] {
		err := add(
			fmt.Sprintf("Create a through-all tapped hole for an %s thread using the ANSI Metric standard in SolidWorks.", s.size),
			holeWizardParams{
				Label:        fmt.Sprintf("Tapped %s through all", s.size),
				HoleType:     "tapped",
				Standard:     "ansi_metric",
				Fastener:     "tapped_standard",
				Size:         s.size,
				EndCondition: "through_all",
			})
		if err != nil {
			return nil, err
		}
	}

	// Standard clearance holes, through all.
	for _, s := range metricHoleSpecs {
		err := add(
			fmt.Sprintf("Create a through-all clearance hole for %s fasteners using the ANSI Metric standard in SolidWorks.", s.size),
			holeWizardParams{
				Label:        fmt.Sprintf("Clearance %s through all", s.size),
				HoleType:     "standard",
				Standard:     "ansi_metric",
				Fastener:     "standard",
				Size:         s.size,
				EndCondition: "through_all",
			})
		if err != nil {
			return nil, err
		}
	}

	return pairs, nil
}

// holeWizardParams collects the HoleWizard5 arguments that vary per
// family. All lengths are meters, CsinkAngle is radians; zero disables
// an argument.
type holeWizardParams struct {
	Label        string
	HoleType     string // catalog key
	Standard     string // catalog key
	Fastener     string // catalog key
	Size         string // thread size, embedded verbatim
	EndCondition string // catalog key
	Depth        float64
	CboreDia     float64
	CboreDepth   float64
	CsinkDia     float64
	CsinkAngle   float64
}

func (g *Fastener) holeWizard(p holeWizardParams) (string, error) {
	ht, err := g.cat.HoleType(p.HoleType)
	if err != nil {
		return "", err
	}
	hs, err := g.cat.HoleStandard(p.Standard)
	if err != nil {
		return "", err
	}
	ft, err := g.cat.HoleFastener(p.Fastener)
	if err != nil {
		return "", err
	}
	ec, err := g.cat.EndCondition(p.EndCondition)
	if err != nil {
		return "", err
	}
	args := fmt.Sprintf("(int)%s, (int)%s, (int)%s, \"%s\", (int)%s, %s, %s, %s, %s, %s, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0",
		ht, hs, ft, p.Size, ec,
		units.Format(p.Depth), units.Format(p.CboreDia), units.Format(p.CboreDepth),
		units.Format(p.CsinkDia), units.Format(p.CsinkAngle))
	return snippet.FeatureCall(snippet.FeatureCallParams{
		Label:      p.Label,
		Method:     "HoleWizard5",
		Args:       args,
		Selections: []snippet.Selection{{Name: "", Kind: "FACE"}},
	}), nil
}
