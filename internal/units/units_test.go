package units

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestLengthRoundTrip(t *testing.T) {
	values := []float64{0.001, 0.5, 1, 2.5, 12.5, 25, 100, 1000, 12345.678}
	for _, v := range values {
		got := MetersToMM(MMToMeters(v))
		if math.Abs(got-v) > 1e-9 {
			t.Errorf("MetersToMM(MMToMeters(%v)) = %v, want within 1e-9", v, got)
		}
	}
}

func TestAngleRoundTrip(t *testing.T) {
	values := []float64{0, 1, 15, 45, 90, 180, 270, 359.5, 360}
	for _, v := range values {
		got := RadiansToDeg(DegToRadians(v))
		if math.Abs(got-v) > 1e-9 {
			t.Errorf("RadiansToDeg(DegToRadians(%v)) = %v, want within 1e-9", v, got)
		}
	}
}

func TestMMToMeters(t *testing.T) {
	tests := []struct {
		mm   float64
		want string
	}{
		{25, "0.025"},
		{5, "0.005"},
		{100, "0.1"},
		{1000, "1"},
		{12.5, "0.0125"},
	}
	for _, tt := range tests {
		got := Format(MMToMeters(tt.mm))
		if got != tt.want {
			t.Errorf("Format(MMToMeters(%v)) = %q, want %q", tt.mm, got, tt.want)
		}
	}
}

func TestDegToRadians(t *testing.T) {
	got := DegToRadians(90)
	if math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("DegToRadians(90) = %v, want pi/2", got)
	}
	lit := Format(got)
	if !strings.HasPrefix(lit, "1.5707963") {
		t.Errorf("Format(DegToRadians(90)) = %q, want 1.5707963...", lit)
	}
	if strings.Contains(lit, "deg") {
		t.Errorf("formatted radian value %q leaks a unit token", lit)
	}
}

func TestFormatShortest(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{12.5, "12.5"},
		{25, "25"},
		{0.025, "0.025"},
		{0.1, "0.1"},
		{3, "3"},
	}
	for _, tt := range tests {
		if got := Format(tt.v); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFormatRoundTrips(t *testing.T) {
	// The shortest representation must parse back to the same float.
	values := []float64{0.025, math.Pi / 2, 1e-9, 123456.789, 0.0001}
	for _, v := range values {
		lit := Format(v)
		parsed, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			t.Fatalf("parse %q: %v", lit, err)
		}
		if parsed != v {
			t.Errorf("Format(%v) = %q parses to %v", v, lit, parsed)
		}
	}
}
