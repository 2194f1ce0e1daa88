// Package calc implements a calculator for arithmetic expressions.
//
// Expressions are non-negative decimal numbers combined with + - * / and ^,
// grouped with parentheses. ** is another way to write ^. Whitespace is
// ignored everywhere, even inside numbers. There is no unary minus; write
// "0-x" instead.
//
// ^ binds tighter than * and /, which bind tighter than + and -. All
// operators associate to the left, so "2^3^2" is 64.
//
// By default, the calculator is tolerant of malformed input: stray characters
// are dropped, unbalanced parentheses are ignored, and so on. Strict(true)
// turns each of those into an error. Division by zero is always an error.
//
package calc
