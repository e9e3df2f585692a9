package paramspace

import (
	"math"
	"reflect"
	"testing"
)

func TestNewSpaceRejectsInvertedRange(t *testing.T) {
	_, err := NewSpace("bad", Definition{Name: "x", Min: 10, Max: 1})
	if err == nil {
		t.Fatal("expected error for min > max")
	}
}

func TestSamplesRange(t *testing.T) {
	d := Definition{Name: "depth", Unit: "mm", Min: 10, Max: 30}
	got := Samples(d, 3)
	want := []Value{{Num: 10}, {Num: 20}, {Num: 30}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Samples(3) = %v, want %v", got, want)
	}
}

func TestSamplesSingle(t *testing.T) {
	d := Definition{Name: "depth", Min: 5, Max: 50}
	got := Samples(d, 1)
	if len(got) != 1 || got[0].Num != 5 {
		t.Errorf("Samples(1) = %v, want just the minimum", got)
	}
}

func TestSamplesSymbolic(t *testing.T) {
	d := Definition{Name: "mod", Options: []string{"MMC", "LMC", ""}}
	got := Samples(d, 99)
	want := []Value{{Sym: "MMC"}, {Sym: "LMC"}, {Sym: ""}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Samples = %v, want options in declared order %v", got, want)
	}
}

func TestEnumerateCountAndOrder(t *testing.T) {
	s, err := NewSpace("test",
		Definition{Name: "a", Min: 0, Max: 1},
		Definition{Name: "b", Options: []string{"x", "y", "z"}},
	)
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	got := s.Enumerate(2)
	if len(got) != 6 {
		t.Fatalf("Enumerate(2) produced %d assignments, want 6", len(got))
	}
	// First definition varies slowest.
	wantA := []float64{0, 0, 0, 1, 1, 1}
	wantB := []string{"x", "y", "z", "x", "y", "z"}
	for i, a := range got {
		if a.Num("a") != wantA[i] || a.Sym("b") != wantB[i] {
			t.Errorf("assignment %d = (a=%v, b=%q), want (a=%v, b=%q)",
				i, a.Num("a"), a.Sym("b"), wantA[i], wantB[i])
		}
	}
}

func TestEnumerateDeterministic(t *testing.T) {
	s, err := NewSpace("test",
		Definition{Name: "d", Min: 3, Max: 12},
		Definition{Name: "t", Min: 0.1, Max: 0.5},
		Definition{Name: "m", Options: []string{"MMC", ""}},
	)
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	first := s.Enumerate(3)
	second := s.Enumerate(3)
	if !reflect.DeepEqual(first, second) {
		t.Error("Enumerate is not deterministic across calls")
	}
}

func TestEnumerateAssignmentsIndependent(t *testing.T) {
	s, _ := NewSpace("test", Definition{Name: "x", Min: 0, Max: 1})
	got := s.Enumerate(2)
	got[0]["x"] = Value{Num: 99}
	if math.Abs(got[1].Num("x")-1) > 1e-15 {
		t.Error("mutating one assignment affected another")
	}
}
