package pcurve

import "fmt"

// Sweep evaluates a curve at n parameters spaced uniformly over its domain,
// with derivatives up to order d at every sample. It is the sampling loop a
// rendering driver would run once per replot; for a closed curve the last
// sample coincides with the first.
func Sweep(c Curve, n int, d int) ([]Sample, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: sweep needs at least 2 samples, got %d", ErrInvalidCurve, n)
	}
	start, end := c.DomainStart(), c.DomainEnd()
	if end <= start {
		return nil, fmt.Errorf("%w: empty domain [%g,%g]", ErrInvalidCurve, start, end)
	}
	tracer().Debugf("sweep %T with %d samples over [%g,%g]", c, n, start, end)
	samples := make([]Sample, n)
	step := (end - start) / float64(n-1)
	for i := 0; i < n; i++ {
		t := start + float64(i)*step
		if i == n-1 {
			t = end // avoid drifting past the domain by accumulated rounding
		}
		s, err := c.Evaluate(t, d)
		if err != nil {
			return nil, fmt.Errorf("sweep at t=%g: %w", t, err)
		}
		samples[i] = s
	}
	return samples, nil
}
