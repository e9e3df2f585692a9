package gen

import (
	"strings"
	"testing"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
)

func mustGenerate(t *testing.T, g corpus.Generator) []corpus.Pair {
	t.Helper()
	pairs, err := g.GenerateAll()
	if err != nil {
		t.Fatalf("%s: GenerateAll: %v", g.Name(), err)
	}
	return pairs
}

func TestGeneratorsProducePairs(t *testing.T) {
	for _, g := range All(catalog.Default()) {
		pairs := mustGenerate(t, g)
		if len(pairs) == 0 {
			t.Errorf("%s: produced no pairs", g.Name())
		}
		if err := corpus.Validate(g.Name(), pairs); err != nil {
			t.Errorf("%s: %v", g.Name(), err)
		}
	}
}

func TestGeneratorsDeterministic(t *testing.T) {
	for _, g := range All(catalog.Default()) {
		first := mustGenerate(t, g)
		second := mustGenerate(t, g)
		if len(first) != len(second) {
			t.Errorf("%s: run lengths differ: %d vs %d", g.Name(), len(first), len(second))
			continue
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("%s: pair %d differs between runs", g.Name(), i)
				break
			}
		}
	}
}

func TestGeneratorsUniqueInstructions(t *testing.T) {
	for _, g := range All(catalog.Default()) {
		pairs := mustGenerate(t, g)
		seen := make(map[string]int, len(pairs))
		for i, p := range pairs {
			if j, dup := seen[p.Instruction]; dup {
				t.Errorf("%s: pairs %d and %d share instruction %q", g.Name(), j, i, p.Instruction)
			}
			seen[p.Instruction] = i
		}
	}
}

func TestGeneratorNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, g := range All(catalog.Default()) {
		if seen[g.Name()] {
			t.Errorf("duplicate generator name %q", g.Name())
		}
		seen[g.Name()] = true
	}
}

func TestSketchDimensionValues(t *testing.T) {
	pairs := mustGenerate(t, NewSketch(catalog.Default()))

	var found bool
	for _, p := range pairs {
		if strings.Contains(p.Instruction, "25mm") && strings.Contains(p.Code, "SystemValue = 0.025;") {
			found = true
		}
		if strings.Contains(p.Code, "SystemValue = 25;") {
			t.Errorf("raw millimeter value in code for %q", p.Instruction)
		}
	}
	if !found {
		t.Error("no pair embeds 25mm as 0.025 meters")
	}
}

func TestSketchAngularDimensionsInRadians(t *testing.T) {
	pairs := mustGenerate(t, NewSketch(catalog.Default()))

	var angular int
	for _, p := range pairs {
		if !strings.Contains(p.Code, "AddAngularDimension2") {
			continue
		}
		angular++
		if strings.Contains(p.Code, "deg") {
			t.Errorf("unit token in angular dimension code for %q", p.Instruction)
		}
	}
	if angular == 0 {
		t.Error("no angular dimension pairs generated")
	}
}

func TestPatternLinearFamilySize(t *testing.T) {
	pairs := mustGenerate(t, NewPattern(catalog.Default()))

	var oneD []corpus.Pair
	for _, p := range pairs {
		if strings.HasPrefix(p.Instruction, "Create a linear pattern with") {
			oneD = append(oneD, p)
		}
	}
	// The one-direction family enumerates twelve count/spacing tuples.
	if len(oneD) != 12 {
		t.Fatalf("one-direction linear pattern pairs = %d, want 12", len(oneD))
	}
	seen := map[string]bool{}
	for _, p := range oneD {
		if seen[p.Instruction] {
			t.Errorf("duplicate instruction %q", p.Instruction)
		}
		seen[p.Instruction] = true
	}
}

func TestExtrudeDepthsConverted(t *testing.T) {
	pairs := mustGenerate(t, NewExtrude(catalog.Default()))
	for _, p := range pairs {
		if strings.Contains(p.Instruction, "25mm") && strings.Contains(p.Code, "FeatureExtrusion3") {
			if !strings.Contains(p.Code, "0.025") {
				t.Errorf("25mm boss missing meter literal:\n%s", p.Code)
			}
			return
		}
	}
	t.Error("no 25mm boss extrusion pair found")
}

func TestRevolveAnglesConverted(t *testing.T) {
	pairs := mustGenerate(t, NewRevolve(catalog.Default()))
	var partial bool
	for _, p := range pairs {
		if strings.Contains(p.Instruction, "90-degree") {
			partial = true
			if !strings.Contains(p.Code, "1.5707963") {
				t.Errorf("90-degree revolve missing radian literal:\n%s", p.Code)
			}
		}
	}
	if !partial {
		t.Error("no 90-degree revolve pair generated")
	}
}

func TestGDTTolerancesUnconverted(t *testing.T) {
	pairs := mustGenerate(t, NewGDT(catalog.Default()))
	var found bool
	for _, p := range pairs {
		if strings.Contains(p.Instruction, "0.05") && strings.Contains(p.Code, "SetFrameValues3") {
			found = true
			if !strings.Contains(p.Code, "0.05") {
				t.Errorf("tolerance literal missing:\n%s", p.Code)
			}
			if strings.Contains(p.Code, "5e-05") {
				t.Errorf("tolerance was unit-converted:\n%s", p.Code)
			}
		}
	}
	if !found {
		t.Error("no 0.05 tolerance pair generated")
	}
}

func TestMountingHoleCombinesSteps(t *testing.T) {
	pairs := mustGenerate(t, NewMountingHole(catalog.Default()))
	space, err := holeSpace()
	if err != nil {
		t.Fatalf("holeSpace: %v", err)
	}
	want := len(space.Enumerate(holeSamplesPer))
	if len(pairs) != want {
		t.Fatalf("pairs = %d, want one per enumeration point (%d)", len(pairs), want)
	}
	for _, p := range pairs {
		for _, token := range []string{"CreateCircleByRadius", "FeatureCut4", "SetFrameDatumRef2"} {
			if !strings.Contains(p.Code, token) {
				t.Errorf("pair %q missing %s step", p.Instruction, token)
			}
		}
	}
}

func TestMountingHoleTolerancesConverted(t *testing.T) {
	pairs := mustGenerate(t, NewMountingHole(catalog.Default()))
	var found bool
	for _, p := range pairs {
		if !strings.Contains(p.Instruction, "position tolerance of 0.1") {
			continue
		}
		found = true
		if !strings.Contains(p.Code, "    0.0001,") {
			t.Errorf("frame tolerance not in meters:\n%s", p.Code)
		}
		if strings.Contains(p.Code, "    0.1,") {
			t.Errorf("raw millimeter tolerance in frame:\n%s", p.Code)
		}
	}
	if !found {
		t.Error("no 0.1mm position tolerance pair generated")
	}
}

func TestFastenerHoleWizardConversions(t *testing.T) {
	pairs := mustGenerate(t, NewFastener(catalog.Default()))

	var cbore, csink bool
	for _, p := range pairs {
		if strings.Contains(p.Instruction, "counterbore hole for an M6") && strings.Contains(p.Instruction, "10mm deep") {
			cbore = true
			for _, token := range []string{"HoleWizard5", "swWzdHoleCounterbore", "\"M6\"", "0.01,", "0.011,"} {
				if !strings.Contains(p.Code, token) {
					t.Errorf("M6 counterbore missing %s:\n%s", token, p.Code)
				}
			}
		}
		if strings.Contains(p.Instruction, "countersink hole for an M4") && strings.Contains(p.Instruction, "8mm deep") {
			csink = true
			// 82 degrees in radians.
			if !strings.Contains(p.Code, "1.4311699") {
				t.Errorf("countersink angle not in radians:\n%s", p.Code)
			}
		}
	}
	if !cbore {
		t.Error("no M6 10mm counterbore pair generated")
	}
	if !csink {
		t.Error("no M4 8mm countersink pair generated")
	}
}

func TestShaftKeywayDepthsConverted(t *testing.T) {
	pairs := mustGenerate(t, NewShaft(catalog.Default()))
	var found bool
	for _, p := range pairs {
		if !strings.Contains(p.Instruction, "keyway slot on a 20mm diameter shaft") {
			continue
		}
		found = true
		for _, token := range []string{"FeatureCut4", "0.0028", "double hw = 0.003;"} {
			if !strings.Contains(p.Code, token) {
				t.Errorf("keyway pair missing %s:\n%s", token, p.Code)
			}
		}
	}
	if !found {
		t.Error("no 20mm keyway pair generated")
	}
}

func TestPropertiesConfigurationScoped(t *testing.T) {
	pairs := mustGenerate(t, NewProperties(catalog.Default()))
	var found bool
	for _, p := range pairs {
		if !strings.Contains(p.Instruction, `"PartNumber"`) || !strings.Contains(p.Instruction, `"Large"`) {
			continue
		}
		if !strings.Contains(p.Instruction, "Set") {
			continue
		}
		found = true
		for _, token := range []string{
			`get_CustomPropertyManager("Large")`,
			"swCustomInfoType_e.swCustomInfoText",
			"swCustomPropertyDeleteAndAdd",
		} {
			if !strings.Contains(p.Code, token) {
				t.Errorf("property pair missing %s:\n%s", token, p.Code)
			}
		}
	}
	if !found {
		t.Error("no PartNumber@Large property pair generated")
	}
}

func TestMotionMotorSpeeds(t *testing.T) {
	pairs := mustGenerate(t, NewMotion(catalog.Default()))

	var rotary, linear bool
	for _, p := range pairs {
		if strings.Contains(p.Instruction, "1200 RPM") {
			rotary = true
			if !strings.Contains(p.Code, "1200 * 2 * Math.PI / 60") {
				t.Errorf("rotary motor speed not an RPM conversion expression:\n%s", p.Code)
			}
		}
		if strings.Contains(p.Instruction, "50 mm/s") {
			linear = true
			if !strings.Contains(p.Code, "motorData.Speed = 0.05;") {
				t.Errorf("linear motor speed not in m/s:\n%s", p.Code)
			}
		}
	}
	if !rotary {
		t.Error("no 1200 RPM motor pair generated")
	}
	if !linear {
		t.Error("no 50 mm/s motor pair generated")
	}
}

func TestDrawingViewsAndConfigurations(t *testing.T) {
	pairs := mustGenerate(t, NewDrawing(catalog.Default()))

	var threeView, cfgDim bool
	for _, p := range pairs {
		if strings.Contains(p.Instruction, "3-view drawing") && strings.Contains(p.Instruction, "Housing.SLDPRT") {
			threeView = true
			if strings.Count(p.Code, "CreateDrawViewFromModelView3") != 3 {
				t.Errorf("3-view pair does not place three views:\n%s", p.Code)
			}
		}
		if strings.Contains(p.Instruction, `"D1@Sketch1"`) && strings.Contains(p.Instruction, `"Large"`) {
			cfgDim = true
			if !strings.Contains(p.Code, "dim.SetSystemValue3(0.05,") {
				t.Errorf("configuration dimension not in meters:\n%s", p.Code)
			}
		}
	}
	if !threeView {
		t.Error("no Housing 3-view pair generated")
	}
	if !cfgDim {
		t.Error("no configuration dimension pair generated")
	}
}

func TestAssemblyMatesSelectBeforeMating(t *testing.T) {
	pairs := mustGenerate(t, NewAssembly(catalog.Default()))
	for _, p := range pairs {
		if !strings.Contains(p.Code, "AddMate5") {
			continue
		}
		sel := strings.Index(p.Code, "SelectByID2")
		mate := strings.Index(p.Code, "AddMate5")
		if sel == -1 || sel > mate {
			t.Errorf("mate pair %q does not select entities first", p.Instruction)
		}
	}
}
