package orchestration

import apperrors "github.com/4310V343k/labs-project-stuffs/internal/errors"

// Operation identifies an arithmetic operation.
type Operation string

const (
	OpAdd   Operation = "add"
	OpSub   Operation = "sub"
	OpMul   Operation = "mul"
	OpDiv   Operation = "div"
	OpPow   Operation = "pow"
	OpSqrt  Operation = "sqrt"
	OpPrime Operation = "prime"
	OpCmp   Operation = "cmp"
)

// Operations lists every supported operation in display order.
var Operations = []Operation{OpAdd, OpSub, OpMul, OpDiv, OpPow, OpSqrt, OpPrime, OpCmp}

// ParseOperation maps a configuration string to an Operation.
func ParseOperation(s string) (Operation, error) {
	for _, op := range Operations {
		if string(op) == s {
			return op, nil
		}
	}
	return "", apperrors.ValidationError{Field: "operation", Message: "unknown operation " + s}
}

// NeedsB reports whether the operation consumes a second operand.
func (op Operation) NeedsB() bool {
	switch op {
	case OpPow, OpSqrt, OpPrime:
		return false
	default:
		return true
	}
}

// Display returns the human-readable label used by the front ends.
func (op Operation) Display() string {
	switch op {
	case OpAdd:
		return "A + B"
	case OpSub:
		return "A - B"
	case OpMul:
		return "A × B"
	case OpDiv:
		return "A div B"
	case OpPow:
		return "A ^ exp"
	case OpSqrt:
		return "isqrt(A)"
	case OpPrime:
		return "A prime?"
	case OpCmp:
		return "cmp(A, B)"
	default:
		return string(op)
	}
}
