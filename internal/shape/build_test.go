package shape

import (
	"errors"
	"image/color"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestBuild(t *testing.T) {
	origin := r2.Vec{X: 10, Y: 10}
	release := r2.Vec{X: 110, Y: 60}

	tests := []struct {
		kind Kind
		want Geometry
	}{
		{KindRectangle, Rect{Min: r2.Vec{X: 10, Y: 10}, Width: 100, Height: 50}},
		{KindSquare, Rect{Min: r2.Vec{X: 10, Y: 10}, Width: 50, Height: 50}},
		{KindOval, Ellipse{Center: r2.Vec{X: 60, Y: 35}, RX: 50, RY: 25}},
		{KindLine, Segment{From: origin, To: release}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, err := Build(tt.kind, origin, release)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Build() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuildCircleFromDiameter(t *testing.T) {
	got, err := Build(KindCircle, r2.Vec{X: 50, Y: 100}, r2.Vec{X: 150, Y: 100})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := Circle{Center: r2.Vec{X: 100, Y: 100}, Radius: 50}
	if got != want {
		t.Errorf("Build() = %+v, want %+v", got, want)
	}

	// 3-4-5 triangle: diameter 50.
	got, err = Build(KindCircle, r2.Vec{X: 10, Y: 10}, r2.Vec{X: 40, Y: 50})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if c := got.(Circle); c.Radius != 25 || c.Center != (r2.Vec{X: 25, Y: 30}) {
		t.Errorf("Build() = %+v, want radius 25 at (25,30)", c)
	}
}

func TestBuildNormalizesReversedDrag(t *testing.T) {
	got, err := Build(KindRectangle, r2.Vec{X: 110, Y: 60}, r2.Vec{X: 10, Y: 10})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := Rect{Min: r2.Vec{X: 10, Y: 10}, Width: 100, Height: 50}
	if got != want {
		t.Errorf("Build() = %+v, want %+v", got, want)
	}

	line, err := Build(KindLine, r2.Vec{X: 110, Y: 60}, r2.Vec{X: 10, Y: 10})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if seg := line.(Segment); seg.From != (r2.Vec{X: 110, Y: 60}) {
		t.Errorf("line endpoints were reordered: %+v", seg)
	}
}

func TestBuildRejectsNonPositiveCoordinates(t *testing.T) {
	valid := r2.Vec{X: 50, Y: 50}
	tests := []struct {
		name            string
		origin, release r2.Vec
	}{
		{"origin x zero", r2.Vec{X: 0, Y: 50}, valid},
		{"origin y negative", r2.Vec{X: 50, Y: -1}, valid},
		{"release x zero", valid, r2.Vec{X: 0, Y: 80}},
		{"release y zero", valid, r2.Vec{X: 80, Y: 0}},
	}

	for _, kind := range Kinds() {
		for _, tt := range tests {
			t.Run(kind.String()+"/"+tt.name, func(t *testing.T) {
				g, err := Build(kind, tt.origin, tt.release)
				if g != nil {
					t.Errorf("Build() = %+v, want nil", g)
				}
				var invalid *InvalidGeometryError
				if !errors.As(err, &invalid) {
					t.Fatalf("Build() error = %v, want InvalidGeometryError", err)
				}
				if invalid.Kind != kind {
					t.Errorf("error kind = %v, want %v", invalid.Kind, kind)
				}
				if want := "Invalid dimensions for " + kind.String(); err.Error() != want {
					t.Errorf("Error() = %q, want %q", err.Error(), want)
				}
			})
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
	if got, err := ParseKind(" oval "); err != nil || got != KindOval {
		t.Errorf("ParseKind(\" oval \") = %v, %v", got, err)
	}
	if _, err := ParseKind("triangle"); err == nil {
		t.Error("ParseKind(\"triangle\") should fail")
	}
}

func TestStyleFilled(t *testing.T) {
	if (Style{Fill: Transparent}).Filled() {
		t.Error("transparent fill reported as filled")
	}
	if !(Style{Fill: color.NRGBA{R: 0xff, A: 0xff}}).Filled() {
		t.Error("opaque fill reported as hollow")
	}
}
