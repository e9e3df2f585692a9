package corpus

import (
	"errors"
	"testing"
)

func TestValidateAccepts(t *testing.T) {
	pairs := []Pair{
		{Instruction: "do a thing", Code: "code;"},
		{Instruction: "do another", Code: "more();"},
	}
	if err := Validate("test", pairs); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateEmptyFields(t *testing.T) {
	tests := []struct {
		name      string
		pairs     []Pair
		wantIndex int
		wantField string
	}{
		{"empty instruction", []Pair{{Instruction: "", Code: "c"}}, 0, "instruction"},
		{"whitespace instruction", []Pair{{Instruction: " \t\n", Code: "c"}}, 0, "instruction"},
		{"empty code", []Pair{{Instruction: "i", Code: ""}}, 0, "code"},
		{"whitespace code", []Pair{{Instruction: "i", Code: "  \n  "}}, 0, "code"},
		{"later pair", []Pair{{Instruction: "i", Code: "c"}, {Instruction: "", Code: "c"}}, 1, "instruction"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate("gen", tt.pairs)
			if err == nil {
				t.Fatal("expected error")
			}
			var mpe *MalformedPairError
			if !errors.As(err, &mpe) {
				t.Fatalf("error type = %T, want *MalformedPairError", err)
			}
			if mpe.Index != tt.wantIndex || mpe.Field != tt.wantField {
				t.Errorf("got index=%d field=%q, want index=%d field=%q",
					mpe.Index, mpe.Field, tt.wantIndex, tt.wantField)
			}
			if mpe.Generator != "gen" {
				t.Errorf("generator = %q, want %q", mpe.Generator, "gen")
			}
		})
	}
}

func TestValidateEmptySlice(t *testing.T) {
	if err := Validate("none", nil); err != nil {
		t.Fatalf("nil pairs should validate: %v", err)
	}
}
