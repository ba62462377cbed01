package engine

// Evaluator table population.
//
// registerEvaluators is the single source of truth for every supported
// (kind, kind, operator) combination. It runs once, at package init,
// before any Evaluate call; the table is read-only afterwards.

func init() {
	registerEvaluators()
}

func registerEvaluators() {
	registerNullEvaluators()
	registerBoolEvaluators()
	registerInt64Evaluators()
	registerDoubleEvaluators()
	registerMixedNumericEvaluators()
	registerStringEvaluators()
	registerObjectEvaluators()
}

func registerNullEvaluators() {
	registerEvaluator(OpEqual, TypeNull, TypeNull, func(a, b Variant) Variant {
		return NewVariantBool(true)
	})
	registerEvaluator(OpNotEqual, TypeNull, TypeNull, func(a, b Variant) Variant {
		return NewVariantBool(false)
	})
}

func registerBoolEvaluators() {
	registerEvaluator(OpEqual, TypeBool, TypeBool, func(a, b Variant) Variant {
		return NewVariantBool(a.vBool == b.vBool)
	})
	registerEvaluator(OpNotEqual, TypeBool, TypeBool, func(a, b Variant) Variant {
		return NewVariantBool(a.vBool != b.vBool)
	})
	registerEvaluator(OpAnd, TypeBool, TypeBool, func(a, b Variant) Variant {
		return NewVariantBool(a.vBool && b.vBool)
	})
	registerEvaluator(OpOr, TypeBool, TypeBool, func(a, b Variant) Variant {
		return NewVariantBool(a.vBool || b.vBool)
	})
	registerEvaluator(OpXOr, TypeBool, TypeBool, func(a, b Variant) Variant {
		return NewVariantBool(a.vBool != b.vBool)
	})

	// Unary: Not.
	registerEvaluator(OpNot, TypeBool, TypeNull, func(a, b Variant) Variant {
		return NewVariantBool(!a.vBool)
	})
}

func registerInt64Evaluators() {
	registerEvaluator(OpEqual, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantBool(a.vInt64 == b.vInt64)
	})
	registerEvaluator(OpNotEqual, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantBool(a.vInt64 != b.vInt64)
	})
	registerEvaluator(OpLess, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantBool(a.vInt64 < b.vInt64)
	})
	registerEvaluator(OpLessEqual, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantBool(a.vInt64 <= b.vInt64)
	})
	registerEvaluator(OpGreater, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantBool(a.vInt64 > b.vInt64)
	})
	registerEvaluator(OpGreaterEqual, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantBool(a.vInt64 >= b.vInt64)
	})

	registerEvaluator(OpAdd, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantInt(a.vInt64 + b.vInt64)
	})
	registerEvaluator(OpSubtract, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantInt(a.vInt64 - b.vInt64)
	})
	registerEvaluator(OpMultiply, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantInt(a.vInt64 * b.vInt64)
	})
	// Integer division and mod by zero are structural violations and panic.
	registerEvaluator(OpDivide, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantInt(a.vInt64 / b.vInt64)
	})
	registerEvaluator(OpMod, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantInt(a.vInt64 % b.vInt64)
	})

	registerEvaluator(OpBitAnd, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantInt(a.vInt64 & b.vInt64)
	})
	registerEvaluator(OpBitOr, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantInt(a.vInt64 | b.vInt64)
	})
	registerEvaluator(OpBitXOr, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantInt(a.vInt64 ^ b.vInt64)
	})
	registerEvaluator(OpBitShiftLeft, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantInt(a.vInt64 << uint64(b.vInt64))
	})
	registerEvaluator(OpBitShiftRight, TypeInt64, TypeInt64, func(a, b Variant) Variant {
		return NewVariantInt(a.vInt64 >> uint64(b.vInt64))
	})

	// Unary: Negative, Positive, BitFlip.
	registerEvaluator(OpNegative, TypeInt64, TypeNull, func(a, b Variant) Variant {
		return NewVariantInt(-a.vInt64)
	})
	registerEvaluator(OpPositive, TypeInt64, TypeNull, func(a, b Variant) Variant {
		return NewVariantInt(a.vInt64)
	})
	registerEvaluator(OpBitFlip, TypeInt64, TypeNull, func(a, b Variant) Variant {
		return NewVariantInt(^a.vInt64)
	})
}

func registerDoubleEvaluators() {
	registerEvaluator(OpEqual, TypeDouble, TypeDouble, func(a, b Variant) Variant {
		return NewVariantBool(a.vDouble == b.vDouble)
	})
	registerEvaluator(OpNotEqual, TypeDouble, TypeDouble, func(a, b Variant) Variant {
		return NewVariantBool(a.vDouble != b.vDouble)
	})
	registerEvaluator(OpLess, TypeDouble, TypeDouble, func(a, b Variant) Variant {
		return NewVariantBool(a.vDouble < b.vDouble)
	})
	registerEvaluator(OpLessEqual, TypeDouble, TypeDouble, func(a, b Variant) Variant {
		return NewVariantBool(a.vDouble <= b.vDouble)
	})
	registerEvaluator(OpGreater, TypeDouble, TypeDouble, func(a, b Variant) Variant {
		return NewVariantBool(a.vDouble > b.vDouble)
	})
	registerEvaluator(OpGreaterEqual, TypeDouble, TypeDouble, func(a, b Variant) Variant {
		return NewVariantBool(a.vDouble >= b.vDouble)
	})

	registerEvaluator(OpAdd, TypeDouble, TypeDouble, func(a, b Variant) Variant {
		return NewVariantFloat(a.vDouble + b.vDouble)
	})
	registerEvaluator(OpSubtract, TypeDouble, TypeDouble, func(a, b Variant) Variant {
		return NewVariantFloat(a.vDouble - b.vDouble)
	})
	registerEvaluator(OpMultiply, TypeDouble, TypeDouble, func(a, b Variant) Variant {
		return NewVariantFloat(a.vDouble * b.vDouble)
	})
	// Double division follows IEEE 754 (divide by zero gives an infinity).
	registerEvaluator(OpDivide, TypeDouble, TypeDouble, func(a, b Variant) Variant {
		return NewVariantFloat(a.vDouble / b.vDouble)
	})

	// Unary: Negative, Positive.
	registerEvaluator(OpNegative, TypeDouble, TypeNull, func(a, b Variant) Variant {
		return NewVariantFloat(-a.vDouble)
	})
	registerEvaluator(OpPositive, TypeDouble, TypeNull, func(a, b Variant) Variant {
		return NewVariantFloat(a.vDouble)
	})
}

// registerMixedNumericEvaluators covers Int64×Double and Double×Int64 via
// numeric widening to Double. Mod and bitwise stay integer-only.
func registerMixedNumericEvaluators() {
	type promoted struct {
		a, b float64
	}
	promote := func(a, b Variant) promoted {
		return promoted{a.asDouble(0), b.asDouble(0)}
	}

	pairs := [][2]VariantType{
		{TypeInt64, TypeDouble},
		{TypeDouble, TypeInt64},
	}
	for _, pair := range pairs {
		left, right := pair[0], pair[1]

		registerEvaluator(OpEqual, left, right, func(a, b Variant) Variant {
			p := promote(a, b)
			return NewVariantBool(p.a == p.b)
		})
		registerEvaluator(OpNotEqual, left, right, func(a, b Variant) Variant {
			p := promote(a, b)
			return NewVariantBool(p.a != p.b)
		})
		registerEvaluator(OpLess, left, right, func(a, b Variant) Variant {
			p := promote(a, b)
			return NewVariantBool(p.a < p.b)
		})
		registerEvaluator(OpLessEqual, left, right, func(a, b Variant) Variant {
			p := promote(a, b)
			return NewVariantBool(p.a <= p.b)
		})
		registerEvaluator(OpGreater, left, right, func(a, b Variant) Variant {
			p := promote(a, b)
			return NewVariantBool(p.a > p.b)
		})
		registerEvaluator(OpGreaterEqual, left, right, func(a, b Variant) Variant {
			p := promote(a, b)
			return NewVariantBool(p.a >= p.b)
		})

		registerEvaluator(OpAdd, left, right, func(a, b Variant) Variant {
			p := promote(a, b)
			return NewVariantFloat(p.a + p.b)
		})
		registerEvaluator(OpSubtract, left, right, func(a, b Variant) Variant {
			p := promote(a, b)
			return NewVariantFloat(p.a - p.b)
		})
		registerEvaluator(OpMultiply, left, right, func(a, b Variant) Variant {
			p := promote(a, b)
			return NewVariantFloat(p.a * p.b)
		})
		registerEvaluator(OpDivide, left, right, func(a, b Variant) Variant {
			p := promote(a, b)
			return NewVariantFloat(p.a / p.b)
		})
	}
}

func registerStringEvaluators() {
	registerEvaluator(OpEqual, TypeString, TypeString, func(a, b Variant) Variant {
		return NewVariantBool(a.vString.Equals(b.vString))
	})
	registerEvaluator(OpNotEqual, TypeString, TypeString, func(a, b Variant) Variant {
		return NewVariantBool(!a.vString.Equals(b.vString))
	})
	registerEvaluator(OpLess, TypeString, TypeString, func(a, b Variant) Variant {
		return NewVariantBool(a.vString.Less(b.vString))
	})
	registerEvaluator(OpLessEqual, TypeString, TypeString, func(a, b Variant) Variant {
		return NewVariantBool(!b.vString.Less(a.vString))
	})
	registerEvaluator(OpGreater, TypeString, TypeString, func(a, b Variant) Variant {
		return NewVariantBool(b.vString.Less(a.vString))
	})
	registerEvaluator(OpGreaterEqual, TypeString, TypeString, func(a, b Variant) Variant {
		return NewVariantBool(!a.vString.Less(b.vString))
	})

	registerEvaluator(OpAdd, TypeString, TypeString, func(a, b Variant) Variant {
		return NewVariantString(a.vString.Concat(b.vString))
	})
}

func registerObjectEvaluators() {
	// Identity comparison is by instance id, so a destroyed-and-reused
	// reference never compares equal to a different live object.
	registerEvaluator(OpEqual, TypeObject, TypeObject, func(a, b Variant) Variant {
		return NewVariantBool(a.vObject.id == b.vObject.id)
	})
	registerEvaluator(OpNotEqual, TypeObject, TypeObject, func(a, b Variant) Variant {
		return NewVariantBool(a.vObject.id != b.vObject.id)
	})

	// Null-reference tests: an Object variant is never the null value.
	registerEvaluator(OpEqual, TypeObject, TypeNull, func(a, b Variant) Variant {
		return NewVariantBool(false)
	})
	registerEvaluator(OpNotEqual, TypeObject, TypeNull, func(a, b Variant) Variant {
		return NewVariantBool(true)
	})
	registerEvaluator(OpEqual, TypeNull, TypeObject, func(a, b Variant) Variant {
		return NewVariantBool(false)
	})
	registerEvaluator(OpNotEqual, TypeNull, TypeObject, func(a, b Variant) Variant {
		return NewVariantBool(true)
	})
}
