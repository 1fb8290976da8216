// Package ratmath implements exact arithmetic over rational numbers and
// closed rational intervals.
//
// Nothing is ever rounded. Rational is a normalized fraction of big integers,
// Interval is a closed interval of rationals with interval-sound arithmetic,
// and Fraction and FractionInterval are unreduced fractions for Stern–Brocot
// mediant partitioning.
//
// Expressions are written like "1..1/2 + 3:4 * (-2)^2". "a:b" is the closed
// interval between a and b, "a..b/c" is a mixed number, "^" raises to an
// integer power with the tightest possible bound, and "**" multiplies an
// interval by itself repeatedly, which usually gives a wider result:
// "(1:-1)^2" is 0:1, but "(1:-1)**2" is -1:1.
//
// A leading minus negates the whole factor that follows it, so "-1:2" is
// -(1:2), the interval -2:-1. Write "1:-1" for the interval from -1 to 1.
package ratmath
