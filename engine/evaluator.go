package engine

import (
	"errors"
	"fmt"
)

// Operator enumerates every operation the evaluation engine can dispatch.
type Operator byte

const (
	OpEqual Operator = iota
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual

	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpMod
	OpNegative
	OpPositive

	OpAnd
	OpOr
	OpXOr
	OpNot

	OpBitAnd
	OpBitOr
	OpBitXOr
	OpBitFlip
	OpBitShiftLeft
	OpBitShiftRight

	// operatorEnd marks the end of the enum and sizes the evaluator table.
	operatorEnd
)

var operatorNames = [operatorEnd]string{
	"Equal", "NotEqual", "Less", "LessEqual", "Greater", "GreaterEqual",
	"Add", "Subtract", "Multiply", "Divide", "Mod", "Negative", "Positive",
	"And", "Or", "XOr", "Not",
	"BitAnd", "BitOr", "BitXOr", "BitFlip", "BitShiftLeft", "BitShiftRight",
}

// String returns the operator name for diagnostics.
func (op Operator) String() string {
	if op >= operatorEnd {
		return "?"
	}
	return operatorNames[op]
}

// ErrUnsupportedOperation is returned by Evaluate when no evaluator is
// registered for the (left kind, right kind, operator) triple.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// evaluator computes one (kind, kind, operator) combination. Evaluators
// are pure functions of the operand values; they encode all promotion
// rules and perform no side effects.
type evaluator func(a, b Variant) Variant

// evaluators is the 3-axis dispatch table [leftKind][rightKind][operator].
// It is populated exactly once by registerEvaluators before first use and
// is immutable (safe for unsynchronized concurrent reads) thereafter.
//
// Unary operators occupy the [kind][TypeNull][op] column; callers pass the
// Null variant as the right operand.
var evaluators [typeEnd][typeEnd][operatorEnd]evaluator

func registerEvaluator(op Operator, a, b VariantType, fn evaluator) {
	evaluators[a][b][op] = fn
}

// CanEvaluate reports whether an evaluator is registered for the triple.
func CanEvaluate(op Operator, a, b VariantType) bool {
	if op >= operatorEnd || a >= typeEnd || b >= typeEnd {
		return false
	}
	return evaluators[a][b][op] != nil
}

// Evaluate dispatches the operator over the two operands. A combination
// with no registered evaluator returns the Null variant and
// ErrUnsupportedOperation; there is no undefined behavior for callers
// that skip the CanEvaluate pre-check.
func Evaluate(op Operator, a, b Variant) (Variant, error) {
	if !CanEvaluate(op, a.GetType(), b.GetType()) {
		return NewVariant(), fmt.Errorf("%w: %v %v %v", ErrUnsupportedOperation, a.GetType(), op, b.GetType())
	}
	return evaluators[a.GetType()][b.GetType()][op](a, b), nil
}
