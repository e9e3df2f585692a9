package gen

import (
	"fmt"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/snippet"
	"github.com/swsemantic/swcorpus/internal/units"
)

// FilletChamfer generates edge-break training pairs: constant, variable,
// face, and full-round fillets, plus equal-distance and distance-angle
// chamfers.
type FilletChamfer struct {
	cat *catalog.Catalog
}

func NewFilletChamfer(cat *catalog.Catalog) *FilletChamfer {
	return &FilletChamfer{cat: cat}
}

func (g *FilletChamfer) Name() string { return "filletchamfer" }

func (g *FilletChamfer) GenerateAll() ([]corpus.Pair, error) {
	var pairs []corpus.Pair

	// Constant-radius fillets.
	for _, r := range []float64{0.25, 0.5, 1, 1.5, 2, 3, 4, 5, 6, 8, 10, 12} {
		code := snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  fmt.Sprintf("Fillet %smm", human(r)),
			Method: "FeatureFillet3",
			Args:   fmt.Sprintf("195, %s, 0, 0, 0, 0, 0, 0", units.Format(units.MMToMeters(r))),
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Add a %smm constant-radius fillet to the selected edge(s) in SolidWorks.", human(r)),
			Code:        code,
		})
	}

	// Variable-radius fillets need a definition edit after creation.
	for _, t := range []struct{ r1, r2 float64 }{
		{1, 3}, {2, 5}, {1, 8}, {3, 10}, {0.5, 2}, {2, 8}, {1, 5},
	} {
		code := fmt.Sprintf(`// Variable fillet %smm to %smm
Feature fillet = (Feature)featMgr.InsertFeatureFillet2(0, %s, 0, 0, 0, 0);
IFillFilletFeatureData2 fData = (IFillFilletFeatureData2)fillet.GetDefinition();
fData.SetRadius(1, %s);
fillet.ModifyDefinition(fData, modelDoc, null);
modelDoc.EditRebuild3();`,
			human(t.r1), human(t.r2),
			units.Format(units.MMToMeters(t.r1)), units.Format(units.MMToMeters(t.r2)))
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Add a variable-radius fillet from %smm to %smm on the selected edge in SolidWorks.",
				human(t.r1), human(t.r2)),
			Code: code,
		})
	}

	// Face fillets.
	for _, r := range []float64{1, 2, 3, 5} {
		code := snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  fmt.Sprintf("Face fillet %smm", human(r)),
			Method: "FeatureFillet3",
			Args:   fmt.Sprintf("195, %s, 1, 0, 0, 0, 0, 0", units.Format(units.MMToMeters(r))),
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Add a %smm face fillet between two adjacent faces in SolidWorks.", human(r)),
			Code:        code,
		})
	}

	// Full-round fillet.
	pairs = append(pairs, corpus.Pair{
		Instruction: "Create a full-round fillet between three faces in SolidWorks.",
		Code: snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  "Full-round fillet",
			Method: "FeatureFillet3",
			Args:   "195, 0, 5, 0, 0, 0, 0, 0",
		}),
	})

	// Equal-distance chamfers.
	for _, d := range []float64{0.5, 1, 1.5, 2, 3, 5} {
		code := snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  fmt.Sprintf("Chamfer %smm", human(d)),
			Method: "InsertFeatureChamfer",
			Args:   fmt.Sprintf("4, 0, %s, 0, 0, 0, 0", units.Format(units.MMToMeters(d))),
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Add a %smm equal-distance chamfer to the selected edge(s) in SolidWorks.", human(d)),
			Code:        code,
		})
	}

	// Distance-angle chamfers.
	for _, t := range []struct{ dist, angle float64 }{
		{1, 45}, {2, 30}, {3, 60}, {1, 15}, {2, 45}, {0.5, 45}, {3, 45},
	} {
		code := snippet.FeatureCall(snippet.FeatureCallParams{
			Label:  fmt.Sprintf("Chamfer %smm x %s deg", human(t.dist), human(t.angle)),
			Method: "InsertFeatureChamfer",
			Args: fmt.Sprintf("4, 1, %s, %s, 0, 0, 0",
				units.Format(units.MMToMeters(t.dist)), units.Format(units.DegToRadians(t.angle))),
		})
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Add a chamfer with %smm distance and %s-degree angle to the selected edge in SolidWorks.",
				human(t.dist), human(t.angle)),
			Code: code,
		})
	}

	return pairs, nil
}
