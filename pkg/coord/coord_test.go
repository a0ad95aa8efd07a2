package coord

import "testing"

func TestArithmetic(t *testing.T) {
	a := Coord{X: 0.5, Y: 0.25, Z: 0.75}
	b := Coord{X: 0.75, Y: 0.5, Z: 0.25}

	tests := []struct {
		name string
		got  Coord
		want Coord
	}{
		{name: "add", got: a.Add(b), want: Coord{X: 1.25, Y: 0.75, Z: 1}},
		{name: "sub", got: a.Sub(b), want: Coord{X: -0.25, Y: -0.25, Z: 0.5}},
		{name: "scale", got: a.Scale(2), want: Coord{X: 1, Y: 0.5, Z: 1.5}},
		{name: "div", got: a.Div(2), want: Coord{X: 0.25, Y: 0.125, Z: 0.375}},
		{name: "midpoint", got: a.Midpoint(b), want: Coord{X: 0.625, Y: 0.375, Z: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestMidpointCommutes(t *testing.T) {
	a := Coord{X: 0.1, Y: 0.7, Z: 0.3}
	b := Coord{X: 0.9, Y: 0.2, Z: 0.6}
	if a.Midpoint(b) != b.Midpoint(a) {
		t.Errorf("Midpoint is not commutative: %v vs %v", a.Midpoint(b), b.Midpoint(a))
	}
}

func TestString(t *testing.T) {
	if got := (Coord{X: 1, Y: 0.5, Z: 0}).String(); got != "(1, 0.5, 0)" {
		t.Errorf("String() = %q", got)
	}
}
