package bspline

import (
	"errors"
	"testing"

	"github.com/npillmayer/pcurve"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/ungerik/go3d/float64/vec3"
)

func testControls() []vec3.T {
	return []vec3.T{
		{0, 0, 0},
		{1, 2, 0},
		{3, 2, 1},
		{4, 0, 0},
	}
}

func TestNewRequiresControls(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if _, err := New([]vec3.T{{0, 0, 0}, {1, 1, 1}}); !errors.Is(err, pcurve.ErrInvalidCurve) {
		t.Errorf("expected invalid-curve error for 2 control points, got %v", err)
	}
}

func TestCurveInterpolatesEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	controls := testControls()
	c, err := New(controls)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	first, err := c.Evaluate(c.DomainStart(), 0)
	if err != nil {
		t.Fatalf("Evaluate at domain start failed: %v", err)
	}
	if first.Point() != controls[0] {
		t.Errorf("clamped curve must start at the first control point, got %v", first.Point())
	}
	last, err := c.Evaluate(c.DomainEnd(), 0)
	if err != nil {
		t.Fatalf("Evaluate at domain end failed: %v", err)
	}
	if last.Point() != controls[len(controls)-1] {
		t.Errorf("clamped curve must end at the last control point, got %v", last.Point())
	}
}

func TestCurveIsOpen(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := New(testControls())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if c.IsClosed() {
		t.Error("b-spline curve must not report itself as closed")
	}
}

func TestEvaluateRejectsDerivatives(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := New(testControls())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := c.Evaluate(0.5, 1); !errors.Is(err, pcurve.ErrUnsupportedOrder) {
		t.Errorf("expected unsupported-order error for d=1, got %v", err)
	}
}

func TestEvaluateRejectsOutOfDomain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := New(testControls())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, tt := range []float64{-0.5, c.DomainEnd() + 0.1} {
		if _, err := c.Evaluate(tt, 0); !errors.Is(err, pcurve.ErrOutOfDomain) {
			t.Errorf("expected out-of-domain error for t=%g, got %v", tt, err)
		}
	}
}
