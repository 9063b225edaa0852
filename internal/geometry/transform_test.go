package geometry

import "testing"

func TestFitCentersAndScales(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	view := Fit(bounds, 840, 440, 20)

	// Ограничивает ширина: (840-40)/100 = 8, по высоте влезло бы 8 тоже.
	if !approxEqual(view.Scale, 8, tolerance) {
		t.Errorf("expected scale 8, got %f", view.Scale)
	}
	pointNear(t, view.Apply(bounds.Center()), Pt(420, 220), tolerance)
}

func TestFitPicksTighterAxis(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 10, Height: 100}
	view := Fit(bounds, 1000, 500, 0)
	if !approxEqual(view.Scale, 5, tolerance) {
		t.Errorf("expected scale 5, got %f", view.Scale)
	}
}

func TestFitDegenerateBounds(t *testing.T) {
	view := Fit(Rect{}, 400, 300, 20)
	if !approxEqual(view.Scale, 1, tolerance) {
		t.Errorf("expected unit scale, got %f", view.Scale)
	}
	pointNear(t, view.Apply(Pt(0, 0)), Pt(200, 150), tolerance)
}

func TestTransformLength(t *testing.T) {
	view := Transform{Scale: 2.5}
	if got := view.Length(4); !approxEqual(got, 10, tolerance) {
		t.Errorf("expected 10, got %f", got)
	}
}

func TestIdentity(t *testing.T) {
	pointNear(t, Identity.Apply(Pt(3, 4)), Pt(3, 4), tolerance)
}
