// Package exacteval implements a small calculator with two output modes.
//
// Exact mode keeps results symbolic where a closed form exists: rational
// numbers stay rational, and square roots simplify into sums of surd terms,
// so "1/3+1/3+1/3" is exactly "1" and "sqrt(8)" is "2*√2". Expressions with
// no rational-plus-surd form, such as "sin(1/3)" or anything involving pi,
// fall back to an unevaluated symbolic string rather than a decimal
// approximation.
//
// Decimal mode evaluates the same expressions with ordinary floating-point
// semantics and renders a plain decimal string, or the literal "Error" for
// results that are not finite.
//
// Every call to Evaluate is self-contained; the package keeps no state
// between calls and is safe to use from concurrent goroutines.
package exacteval
