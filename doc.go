// Package calc implements basic arithmetic and a safe expression evaluator.
//
// The evaluator parses a single arithmetic expression into a small tree and
// interprets that tree structurally. Only numeric literals, unary + and -,
// and the binary operators +, -, *, /, //, %, and ** ever evaluate. Anything
// else the grammar can express, such as "f(x)" or "a.b" or "'text'", parses
// but is rejected with a typed error before it can run anything. No input
// text is ever handed to a general execution facility.
package calc
