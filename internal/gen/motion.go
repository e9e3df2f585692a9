package gen

import (
	"fmt"
	"strings"

	"github.com/swsemantic/swcorpus/internal/catalog"
	"github.com/swsemantic/swcorpus/internal/corpus"
	"github.com/swsemantic/swcorpus/internal/units"
)

// Motion generates motion study training pairs: study creation per study
// kind, rotary and linear motors, and oscillating motor profiles.
type Motion struct {
	cat *catalog.Catalog
}

func NewMotion(cat *catalog.Catalog) *Motion {
	return &Motion{cat: cat}
}

func (g *Motion) Name() string { return "motion" }

func (g *Motion) GenerateAll() ([]corpus.Pair, error) {
	var pairs []corpus.Pair

	// Study creation per kind.
	for _, t := range []struct{ kind, label string }{
		{"animation", "animation"},
		{"basic_motion", "basic motion"},
		{"motion_analysis", "motion analysis"},
	} {
		code, err := g.createStudy(t.kind)
		if err != nil {
			return nil, fmt.Errorf("gen: motion: create %s study: %w", t.kind, err)
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Create a new %s motion study in the active SolidWorks document.", t.label),
			Code:        code,
		})
	}

	// Rotary motors. Speed stays an RPM-to-rad/s expression so the
	// generated macro documents the conversion.
	for _, rpm := range []int{30, 60, 120, 300, 600, 1200, 1800, 3600} {
		code, err := g.motor("rotary",
			fmt.Sprintf("%d * 2 * Math.PI / 60", rpm),
			fmt.Sprintf("// %d RPM in rad/s", rpm))
		if err != nil {
			return nil, fmt.Errorf("gen: motion: rotary motor: %w", err)
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Add a rotary motor spinning at %d RPM to the active SolidWorks motion study.", rpm),
			Code:        code,
		})
	}

	// Linear motors, constant velocity.
	for _, vel := range []float64{10, 25, 50, 100, 200, 500} {
		code, err := g.motor("linear",
			units.Format(units.MMToMeters(vel)),
			fmt.Sprintf("// %s mm/s in m/s", human(vel)))
		if err != nil {
			return nil, fmt.Errorf("gen: motion: linear motor: %w", err)
		}
		pairs = append(pairs, corpus.Pair{
			Instruction: fmt.Sprintf("Add a linear motor with a constant velocity of %s mm/s to the active SolidWorks motion study.", human(vel)),
			Code:        code,
		})
	}

	// Oscillating motors.
	for _, t := range []struct {
		motorType   string
		amplitude   string
		ampComment  string
		frequency   float64
		instruction string
	}{
		{
			motorType:   "rotary",
			amplitude:   units.Format(units.DegToRadians(30)),
			ampComment:  "// 30 degrees in radians",
			frequency:   2,
			instruction: "Add an oscillating rotary motor with 30-degree amplitude at 2 Hz in SolidWorks.",
		},
		{
			motorType:   "linear",
			amplitude:   units.Format(units.MMToMeters(10)),
			ampComment:  "// 10 mm in meters",
			frequency:   5,
			instruction: "Add an oscillating linear motor with 10mm amplitude at 5 Hz in SolidWorks.",
		},
	} {
		code, err := g.oscillatingMotor(t.motorType, t.amplitude, t.ampComment, t.frequency)
		if err != nil {
			return nil, fmt.Errorf("gen: motion: oscillating motor: %w", err)
		}
		pairs = append(pairs, corpus.Pair{Instruction: t.instruction, Code: code})
	}

	return pairs, nil
}

func (g *Motion) createStudy(kind string) (string, error) {
	studyType, err := g.cat.MotionStudyType(kind)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("MotionStudyManager motionMgr = (MotionStudyManager)modelDoc.Extension.GetMotionStudyManager();\n")
	sb.WriteString("MotionStudy study = (MotionStudy)motionMgr.CreateMotionStudy();\n")
	fmt.Fprintf(&sb, "study.SetType((int)%s);", studyType)
	return sb.String(), nil
}

// motor emits a SimulationMotorFeatureData block. speed is embedded
// verbatim so callers can pass a literal or a conversion expression.
func (g *Motion) motor(motorType, speed, speedComment string) (string, error) {
	mt, err := g.cat.MotorType(motorType)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("SimulationMotorFeatureData motorData =\n")
	sb.WriteString("    (SimulationMotorFeatureData)study.CreateDefinition(\"Motor\");\n")
	fmt.Fprintf(&sb, "motorData.MotorType = (int)%s;\n", mt)
	fmt.Fprintf(&sb, "motorData.Speed = %s; %s\n", speed, speedComment)
	sb.WriteString("study.AddFeature(motorData);")
	return sb.String(), nil
}

func (g *Motion) oscillatingMotor(motorType, amplitude, ampComment string, frequency float64) (string, error) {
	mt, err := g.cat.MotorType(motorType)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("SimulationMotorFeatureData motorData =\n")
	sb.WriteString("    (SimulationMotorFeatureData)study.CreateDefinition(\"Motor\");\n")
	fmt.Fprintf(&sb, "motorData.MotorType = (int)%s;\n", mt)
	sb.WriteString("motorData.MotionType = (int)swMotionStudyMotionType_e.swMotionTypeOscillating;\n")
	fmt.Fprintf(&sb, "motorData.Amplitude = %s; %s\n", amplitude, ampComment)
	fmt.Fprintf(&sb, "motorData.Frequency = %s;\n", units.Format(frequency))
	sb.WriteString("study.AddFeature(motorData);")
	return sb.String(), nil
}
