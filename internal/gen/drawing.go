package gen

import (
	"fmt"
	"strings"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/snippet"
	"github.com/swsemantic/swcorpus/internal/units"
)

// drawingModels are the part files the view families reference.
var drawingModels = []string{
	"Part1.SLDPRT", "Housing.SLDPRT", "Bracket.SLDPRT",
	"Shaft.SLDPRT", "Plate.SLDPRT", "Flange.SLDPRT",
}

// Drawing generates drawing view and configuration training pairs:
// standard views, section and detail views, view scaling, and
// configuration management.
type Drawing struct {
	cat *catalog.Catalog
}

func NewDrawing(cat *catalog.Catalog) *Drawing {
	return &Drawing{cat: cat}
}

func (g *Drawing) Name() string { return "drawing" }

// drawingPreamble casts the active document for drawing operations.
const drawingPreamble = "DrawingDoc drawDoc = (DrawingDoc)swApp.ActiveDoc;\n" +
	"ModelDoc2 modelDoc = (ModelDoc2)swApp.ActiveDoc;\n"

func (g *Drawing) GenerateAll() ([]corpus.Pair, error) {
	var pairs []corpus.Pair

	// Standard three-view layouts.
	for _, m := range drawingModels {
		var sb strings.Builder
		fmt.Fprintf(&sb, "// Standard 3-view drawing of %s\n", m)
		sb.WriteString(drawingPreamble)
		fmt.Fprintf(&sb, "IView front = drawDoc.CreateDrawViewFromModelView3(\"%s\", \"*Front\", 0.15, 0.15, 0);\n", m)
		fmt.Fprintf(&sb, "IView top = drawDoc.CreateDrawViewFromModelView3(\"%s\", \"*Top\", 0.15, 0.25, 0);\n", m)
		fmt.Fprintf(&sb, "IView right = drawDoc.CreateDrawViewFromModelView3(\"%s\", \"*Right\", 0.3, 0.15, 0);\n", m)
		sb.WriteString("modelDoc.EditRebuild3();")
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a standard 3-view drawing (front, top, right) of %s in SolidWorks.", m),
			Code:        sb.String(),
		})
	}

	// Section views through the front view.
	for _, t := range []struct {
		label string
		y     float64
	}{
		{"A", 0.1}, {"B", 0.05}, {"C", 0.15}, {"D", 0.12},
	} {
		var sb strings.Builder
		fmt.Fprintf(&sb, "// Section view %s-%s\n", t.label, t.label)
		sb.WriteString(drawingPreamble)
		sb.WriteString(snippet.SelectionBlock([]snippet.Selection{
			{Name: "Drawing View1", Kind: "DRAWINGVIEW"},
		}))
		fmt.Fprintf(&sb, "\ndrawDoc.InsertLine(0.05, %s, 0, 0.25, %s, 0);\n",
			units.Format(t.y), units.Format(t.y))
		fmt.Fprintf(&sb, "drawDoc.CreateSectionViewAt(0.35, 0.15, 0, \"%s\");\n", t.label)
		sb.WriteString("modelDoc.ClearSelection2(true);\n")
		sb.WriteString("modelDoc.EditRebuild3();")
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create section view %s-%s through the front view in a SolidWorks drawing.", t.label, t.label),
			Code:        sb.String(),
		})
	}

	// Detail views at magnifying scales.
	for _, scale := range []int{2, 3, 4, 5} {
		for _, label := range []string{"A", "B"} {
			var sb strings.Builder
			fmt.Fprintf(&sb, "// Detail view %s at %d:1\n", label, scale)
			sb.WriteString(drawingPreamble)
			sb.WriteString(snippet.SelectionBlock([]snippet.Selection{
				{Name: "Drawing View1", Kind: "DRAWINGVIEW"},
			}))
			sb.WriteString("\ndrawDoc.CreateDetailCircle(0.12, 0.12, 0.02);\n")
			sb.WriteString("IView dv = drawDoc.CreateDetailViewAt4(0.35, 0.25, 0,\n")
			fmt.Fprintf(&sb, "    (int)swDetViewStyle_e.swDetViewSTANDARD, %d, 1, \"%s\",\n", scale, label)
			sb.WriteString("    (int)swDetCircleShowType_e.swDetCircleCIRCLE, true, true);\n")
			sb.WriteString("modelDoc.EditRebuild3();")
			pairs = append(pairs, corpus.Pair{
				Instruction: fmt.Sprintf("Create detail view %s at scale %d:1 in a SolidWorks drawing.", label, scale),
				Code:        sb.String(),
			})
		}
	}

	// Isometric views.
	for _, m := range []string{"Part1.SLDPRT", "Assembly1.SLDASM", "Gear.SLDPRT", "Motor.SLDASM"} {
		var sb strings.Builder
		fmt.Fprintf(&sb, "// Isometric view of %s\n", m)
		sb.WriteString(drawingPreamble)
		fmt.Fprintf(&sb, "IView iv = drawDoc.CreateDrawViewFromModelView3(\"%s\", \"*Isometric\", 0.35, 0.25, 0);\n", m)
		sb.WriteString("modelDoc.EditRebuild3();")
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create an isometric view of %s in a SolidWorks drawing.", m),
			Code:        sb.String(),
		})
	}

	// View scale overrides.
	for _, t := range []struct{ num, den int }{
		{1, 2}, {1, 4}, {2, 1}, {5, 1},
	} {
		var sb strings.Builder
		fmt.Fprintf(&sb, "// Set view scale %d:%d\n", t.num, t.den)
		sb.WriteString(drawingPreamble)
		sb.WriteString(snippet.SelectionBlock([]snippet.Selection{
			{Name: "Drawing View1", Kind: "DRAWINGVIEW"},
		}))
		sb.WriteString("\nIView v = drawDoc.ActiveDrawingView;\n")
		sb.WriteString("v.UseSheetScale = false;\n")
		fmt.Fprintf(&sb, "v.ScaleRatio = new double[] { %d.0, %d.0 };\n", t.num, t.den)
		sb.WriteString("modelDoc.EditRebuild3();")
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Set a drawing view scale to %d:%d in SolidWorks.", t.num, t.den),
			Code:        sb.String(),
		})
	}

	// Configuration management.
	for _, cn := range []string{"Large", "Small", "Rev-B", "Metric", "Imperial", "Prototype"} {
		var sb strings.Builder
		fmt.Fprintf(&sb, "// Create configuration %s\n", cn)
		sb.WriteString("ConfigurationManager cfgMgr = modelDoc.ConfigurationManager;\n")
		fmt.Fprintf(&sb, "Configuration cfg = cfgMgr.AddConfiguration2(\"%s\",\n", cn)
		sb.WriteString("    \"Auto-generated configuration\", \"\", true, false, false);\n")
		sb.WriteString("modelDoc.EditRebuild3();")
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a new configuration named %q in the active SolidWorks part.", cn),
			Code:        sb.String(),
		})
	}

	for _, cn := range []string{"Default", "Large", "Small", "Rev-B"} {
		var sb strings.Builder
		fmt.Fprintf(&sb, "// Activate configuration %s\n", cn)
		fmt.Fprintf(&sb, "bool ok = modelDoc.ShowConfiguration2(\"%s\");\n", cn)
		fmt.Fprintf(&sb, "if (!ok) System.Diagnostics.Debug.WriteLine(\"Failed to activate: %s\");\n", cn)
		sb.WriteString("modelDoc.EditRebuild3();")
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Switch the active configuration to %q in SolidWorks.", cn),
			Code:        sb.String(),
		})
	}

	// Configuration-specific dimension overrides.
	for _, t := range []struct {
		dim string
		cfg string
		mm  float64
	}{
		{"D1@Sketch1", "Large", 50},
		{"D1@Sketch1", "Small", 20},
		{"D2@Boss-Extrude1", "Default", 10},
		{"D1@Fillet1", "Rev-B", 3},
	} {
		var sb strings.Builder
		fmt.Fprintf(&sb, "// Configuration %s: set %s to %smm\n", t.cfg, t.dim, human(t.mm))
		fmt.Fprintf(&sb, "Dimension dim = (Dimension)modelDoc.Parameter(\"%s\");\n", t.dim)
		fmt.Fprintf(&sb, "dim.SetSystemValue3(%s,\n", units.Format(units.MMToMeters(t.mm)))
		sb.WriteString("    (int)swSetValueInConfiguration_e.swSetValue_InSpecificConfigurations,\n")
		fmt.Fprintf(&sb, "    new string[] { \"%s\" });\n", t.cfg)
		sb.WriteString("modelDoc.EditRebuild3();")
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Set dimension %q to %smm in configuration %q in SolidWorks.", t.dim, human(t.mm), t.cfg),
			Code:        sb.String(),
		})
	}

	// Configuration deletion.
	for _, cn := range []string{"Prototype", "Lightweight"} {
		var sb strings.Builder
		fmt.Fprintf(&sb, "// Delete configuration %s\n", cn)
		sb.WriteString("modelDoc.ShowConfiguration2(\"Default\");\n")
		fmt.Fprintf(&sb, "bool ok = modelDoc.DeleteConfiguration2(\"%s\");\n", cn)
		fmt.Fprintf(&sb, "if (!ok) System.Diagnostics.Debug.WriteLine(\"Failed to delete: %s\");\n", cn)
		sb.WriteString("modelDoc.EditRebuild3();")
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Delete configuration %q in SolidWorks.", cn),
			Code:        sb.String(),
		})
	}

	return pairs, nil
}
