// Package paramspace models the parameter space of a parameterized
// design: named parameter definitions with range or discrete domains, and
// deterministic enumeration of value combinations across the space.
//
// Families of related training pairs come from one parameterized template
// plus an enumeration of this space, instead of hand-authoring each pair.
package paramspace

import "fmt"

// Definition declares one parameter. A parameter is numeric with an
// inclusive [Min, Max] range, or symbolic with a fixed Options list when
// Options is non-empty.
type Definition struct {
	Name    string
	Unit    string // "mm", "deg", "" for unitless/symbolic
	Min     float64
	Max     float64
	Options []string
}

// Value is one concrete parameter value: numeric (Num) or symbolic (Sym).
type Value struct {
	Num float64
	Sym string
}

// Assignment maps parameter names to concrete values for one combination.
type Assignment map[string]Value

// Num returns the numeric value of the named parameter.
func (a Assignment) Num(name string) float64 { return a[name].Num }

// Sym returns the symbolic value of the named parameter.
func (a Assignment) Sym(name string) string { return a[name].Sym }

// Space is an ordered set of parameter definitions. Order matters: it
// fixes the enumeration order of Enumerate, with earlier definitions
// varying slowest.
type Space struct {
	Name string
	Defs []Definition
}

// NewSpace validates the definitions and returns the space. A range
// parameter with Min > Max, or a symbolic parameter with no options, is
// rejected.
func NewSpace(name string, defs ...Definition) (*Space, error) {
	for _, d := range defs {
		if len(d.Options) == 0 && d.Min > d.Max {
			return nil, fmt.Errorf("paramspace: parameter %q: min %v > max %v", d.Name, d.Min, d.Max)
		}
	}
	return &Space{Name: name, Defs: defs}, nil
}

// Samples returns n evenly spaced values across a range parameter, or
// all options of a symbolic one (n is ignored for symbolic parameters).
// For n < 2 a range parameter yields only its minimum.
func Samples(d Definition, n int) []Value {
	if len(d.Options) > 0 {
		out := make([]Value, len(d.Options))
		for i, o := range d.Options {
			out[i] = Value{Sym: o}
		}
		return out
	}
	if n < 2 {
		return []Value{{Num: d.Min}}
	}
	step := (d.Max - d.Min) / float64(n-1)
	out := make([]Value, n)
	for i := range out {
		out[i] = Value{Num: d.Min + float64(i)*step}
	}
	return out
}

// Enumerate returns the cartesian product of per-parameter samples, in a
// fixed order: definitions vary from slowest (first) to fastest (last).
// Each assignment is an independent map.
func (s *Space) Enumerate(samplesPer int) []Assignment {
	values := make([][]Value, len(s.Defs))
	total := 1
	for i, d := range s.Defs {
		values[i] = Samples(d, samplesPer)
		total *= len(values[i])
	}
	out := make([]Assignment, 0, total)
	idx := make([]int, len(s.Defs))
	for n := 0; n < total; n++ {
		a := make(Assignment, len(s.Defs))
		for i, d := range s.Defs {
			a[d.Name] = values[i][idx[i]]
		}
		out = append(out, a)
		for i := len(idx) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(values[i]) {
				break
			}
			idx[i] = 0
		}
	}
	return out
}
