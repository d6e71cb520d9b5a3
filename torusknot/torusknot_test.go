package torusknot

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/pcurve"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/ungerik/go3d/float64/vec3"
)

func position(t *testing.T, c *Curve, at float64) vec3.T {
	t.Helper()
	s, err := c.Evaluate(at, 0)
	if err != nil {
		t.Fatalf("Evaluate(%g, 0) failed: %v", at, err)
	}
	return s.Point()
}

func TestAnchorPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pt := position(t, New(), 0)
	if pt != (vec3.T{3, 0, 0}) {
		t.Errorf("expected position (3,0,0) at t=0, got %v", pt)
	}
}

func TestDomain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New()
	if c.DomainStart() != 0 {
		t.Errorf("expected domain start 0, got %g", c.DomainStart())
	}
	if math.Abs(c.DomainEnd()-6*math.Pi) > 1e-12 {
		t.Errorf("expected domain end 6π, got %g", c.DomainEnd())
	}
	if !c.IsClosed() {
		t.Error("torus knot must report itself as closed")
	}
}

func TestClosure(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New()
	period := c.DomainEnd() - c.DomainStart()
	for tt := 0.0; tt < period; tt += 0.37 {
		p1 := position(t, c, tt)
		p2 := position(t, c, tt+period)
		diff := vec3.Sub(&p1, &p2)
		if diff.Length() > 1e-9 {
			t.Errorf("curve not closed at t=%g: |Δ|=%g", tt, diff.Length())
		}
	}
}

func TestDerivativesMatchCentralDifference(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New()
	const h = 1e-6
	for tt := 0.1; tt < c.DomainEnd(); tt += 0.53 {
		s, err := c.Evaluate(tt, 2)
		if err != nil {
			t.Fatalf("Evaluate(%g, 2) failed: %v", tt, err)
		}
		fwd := position(t, c, tt+h)
		bwd := position(t, c, tt-h)
		numeric1 := vec3.Sub(&fwd, &bwd)
		numeric1 = numeric1.Scaled(1 / (2 * h))
		d1, _ := s.Derivative(1)
		delta := vec3.Sub(&d1, &numeric1)
		if delta.Length() > 1e-5 {
			t.Errorf("1st derivative at t=%g deviates from central difference by %g", tt, delta.Length())
		}

		sf, err := c.Evaluate(tt+h, 1)
		if err != nil {
			t.Fatalf("Evaluate(%g, 1) failed: %v", tt+h, err)
		}
		sb, err := c.Evaluate(tt-h, 1)
		if err != nil {
			t.Fatalf("Evaluate(%g, 1) failed: %v", tt-h, err)
		}
		df, _ := sf.Derivative(1)
		db, _ := sb.Derivative(1)
		numeric2 := vec3.Sub(&df, &db)
		numeric2 = numeric2.Scaled(1 / (2 * h))
		d2, _ := s.Derivative(2)
		delta = vec3.Sub(&d2, &numeric2)
		if delta.Length() > 1e-4 {
			t.Errorf("2nd derivative at t=%g deviates from central difference by %g", tt, delta.Length())
		}
	}
}

func TestUnsupportedDerivativeOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if _, err := New().Evaluate(1, 3); !errors.Is(err, pcurve.ErrUnsupportedOrder) {
		t.Errorf("expected unsupported-order error for d=3, got %v", err)
	}
}

func TestNewPQValidation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if _, err := NewPQ(0, 2, 3); !errors.Is(err, pcurve.ErrInvalidCurve) {
		t.Errorf("expected invalid-curve error for zero radius, got %v", err)
	}
	if _, err := NewPQ(2, 2, 4); !errors.Is(err, pcurve.ErrInvalidCurve) {
		t.Errorf("expected invalid-curve error for non-coprime (2,4), got %v", err)
	}
	if _, err := NewPQ(1.5, 3, 5); err != nil {
		t.Errorf("expected (3,5) knot to be valid, got %v", err)
	}
}
