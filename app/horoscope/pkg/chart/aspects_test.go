package chart

import (
	"math"
	"testing"
)

func TestSeparation(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{10, 190, 180},
		{0, 0, 0},
		{350, 10, 20},
		{10, 350, 20},
		{0, 270, 90},
		{-30, 30, 60},
	}
	for _, tt := range tests {
		if got := Separation(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Separation(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	rules := DefaultAspectRules()
	tests := []struct {
		name    string
		a, b    float64
		want    AspectType
		wantOrb float64
		wantOK  bool
	}{
		{"exact opposition", 10, 190, Opposition, 0, true},
		{"exact conjunction", 123.4, 123.4, Conjunction, 0, true},
		{"conjunction edge", 0, 10, Conjunction, 10, true},
		{"conjunction across zero", 355, 3, Conjunction, 8, true},
		{"trine", 0, 125, Trine, 5, true},
		{"square", 0, 270, Square, 0, true},
		{"sextile", 100, 155, Sextile, 5, true},
		{"sextile edge", 0, 66, Sextile, 6, true},
		{"no aspect", 0, 40, 0, 0, false},
		{"just outside opposition", 0, 171.5, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, orb, ok := Classify(tt.a, tt.b, rules)
			if ok != tt.wantOK {
				t.Fatalf("Classify() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.want || math.Abs(orb-tt.wantOrb) > 1e-9 {
				t.Errorf("Classify() = (%v, %v), want (%v, %v)", got, orb, tt.want, tt.wantOrb)
			}
		})
	}
}

func TestClassify_Symmetric(t *testing.T) {
	rules := DefaultAspectRules()
	for a := 0.0; a < 360; a += 13.7 {
		for b := 0.0; b < 360; b += 11.3 {
			t1, o1, ok1 := Classify(a, b, rules)
			t2, o2, ok2 := Classify(b, a, rules)
			if t1 != t2 || o1 != o2 || ok1 != ok2 {
				t.Fatalf("Classify(%v, %v) = (%v, %v, %v), reversed = (%v, %v, %v)", a, b, t1, o1, ok1, t2, o2, ok2)
			}
		}
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	rules := []AspectRule{
		{Type: Square, Angle: 90, Orb: 20},
		{Type: Trine, Angle: 120, Orb: 20},
	}
	got, _, ok := Classify(0, 105, rules)
	if !ok || got != Square {
		t.Errorf("Classify() = %v, %v, want square", got, ok)
	}
}

func TestDetectAspects(t *testing.T) {
	positions := []BodyPosition{
		{Body: Sun, Longitude: 10},
		{Body: Moon, Longitude: 190},
		{Body: Mercury, Longitude: 10},
		{Body: Venus, Longitude: 50},
	}
	aspects := DetectAspects(positions, DefaultAspectRules())

	want := map[[2]Body]AspectType{
		{Sun, Moon}:     Opposition,
		{Sun, Mercury}:  Conjunction,
		{Moon, Mercury}: Opposition,
	}
	if len(aspects) != len(want) {
		t.Fatalf("len(aspects) = %d, want %d: %+v", len(aspects), len(want), aspects)
	}
	for _, a := range aspects {
		w, ok := want[[2]Body{a.Body1, a.Body2}]
		if !ok || w != a.Type {
			t.Errorf("unexpected aspect %+v", a)
		}
		if a.Orb != 0 {
			t.Errorf("aspect %+v orb = %v, want 0", a, a.Orb)
		}
	}
}

func TestDefaultAspectRules_Fresh(t *testing.T) {
	r := DefaultAspectRules()
	r[0].Orb = 99
	if DefaultAspectRules()[0].Orb != 10 {
		t.Error("DefaultAspectRules() shares state between calls")
	}
}

func TestAspect_OrbString(t *testing.T) {
	a := Aspect{Orb: 2.345}
	if got := a.OrbString(); got != "2.35°" && got != "2.34°" {
		t.Errorf("OrbString() = %q", got)
	}
	if got := (Aspect{Orb: 0}).OrbString(); got != "0.00°" {
		t.Errorf("OrbString() = %q", got)
	}
}
