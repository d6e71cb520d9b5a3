// Package pcurve defines a common contract for parametric 3D curves and
// provides a uniform sampling driver for them.
/*

Concrete curve families live in sub-packages:

   bspline    quadratic B-splines, either from given control points or
              fitted to sample data by least squares
   torusknot  analytic (p,q) torus knots with exact derivatives
   subdiv     closed subdivision curves (Lane–Riesenfeld refinement)
   polygon    planar control polygons, feeding the subdivision engine

All curve kinds implement the Curve interface of this package: evaluation
of position plus a requested number of derivatives at a parameter value,
together with the curve's parameter domain and a closedness flag. Evaluation
is a pure read of state computed once at construction time; a constructed
curve may be evaluated concurrently.

The primary sources of information for the curve math are:

   The NURBS Book -- Les Piegl, Wayne Tiller
   Springer, 2nd edition, 1997
   (knot vectors, Cox–de Boor recursion, least-squares fitting)

and

   A theoretical development for the computer generation and display of
   piecewise polynomial surfaces -- J.M. Lane, R.F. Riesenfeld
   IEEE TPAMI 2(1), 1980
   (refine-and-smooth subdivision)

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pcurve
