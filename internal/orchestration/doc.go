// Package orchestration coordinates the execution of arbitrary-precision
// arithmetic operations: operand parsing, computation, decimal rendering,
// and per-phase timing. It decouples business logic from presentation, and
// reports metrics and traces through injectable interfaces.
package orchestration
