// Package calcolatrice evaluates one-line calculator expressions.
//
// An expression has exactly one of four shapes:
//
//	5!          factorial of an integer
//	sin 0       function of one number: sin, cos, tan, sec, inv
//	root 3 27   function of two numbers: root degree value
//	2 ^ 10      binary operator: + - * / ^
//
// Terms are separated by whitespace, and function names are case-insensitive.
// There is no precedence, nesting, or grouping; "1 + 2 * 3" is simply not an
// expression.
//
package calcolatrice
