package engine

// MethodBind is the type-erased callable behind a ReflectionMethod.
//
// Binds are declared once (at class declaration time) and never rebound.
// Call receives the fully assembled argument list; conversion to the
// callable's native parameter kinds happens inside the bound closure via
// the Variant AsX family, so a mismatched argument degrades to that
// parameter's zero value instead of aborting the invocation.
type MethodBind interface {
	Call(target Object, args []Variant) Variant
	IsStatic() bool
	IsConst() bool
	ReturnType() VariantType
	Arity() int
}

// Native callable signatures for the arity-specialized binds. Void
// callables return the Null variant and declare a TypeNull return kind.
type (
	StaticFunc0 func() Variant
	StaticFunc1 func(arg1 Variant) Variant
	StaticFunc2 func(arg1, arg2 Variant) Variant
	StaticFunc3 func(arg1, arg2, arg3 Variant) Variant

	InstanceFunc0 func(target Object) Variant
	InstanceFunc1 func(target Object, arg1 Variant) Variant
	InstanceFunc2 func(target Object, arg1, arg2 Variant) Variant
	InstanceFunc3 func(target Object, arg1, arg2, arg3 Variant) Variant
)

// ---------------------------------------------------------------------------
// Static binds
// ---------------------------------------------------------------------------

type staticBind struct {
	returnType VariantType
	arity      int
	call       func(args []Variant) Variant
}

func (b *staticBind) Call(target Object, args []Variant) Variant { return b.call(args) }
func (b *staticBind) IsStatic() bool                             { return true }
func (b *staticBind) IsConst() bool                              { return false }
func (b *staticBind) ReturnType() VariantType                    { return b.returnType }
func (b *staticBind) Arity() int                                 { return b.arity }

// NewStaticMethod0 binds a zero-argument static callable.
func NewStaticMethod0(returnType VariantType, fn StaticFunc0) MethodBind {
	return &staticBind{returnType: returnType, arity: 0, call: func(args []Variant) Variant {
		return fn()
	}}
}

// NewStaticMethod1 binds a one-argument static callable.
func NewStaticMethod1(returnType VariantType, fn StaticFunc1) MethodBind {
	return &staticBind{returnType: returnType, arity: 1, call: func(args []Variant) Variant {
		return fn(args[0])
	}}
}

// NewStaticMethod2 binds a two-argument static callable.
func NewStaticMethod2(returnType VariantType, fn StaticFunc2) MethodBind {
	return &staticBind{returnType: returnType, arity: 2, call: func(args []Variant) Variant {
		return fn(args[0], args[1])
	}}
}

// NewStaticMethod3 binds a three-argument static callable.
func NewStaticMethod3(returnType VariantType, fn StaticFunc3) MethodBind {
	return &staticBind{returnType: returnType, arity: 3, call: func(args []Variant) Variant {
		return fn(args[0], args[1], args[2])
	}}
}

// ---------------------------------------------------------------------------
// Instance binds
// ---------------------------------------------------------------------------

type instanceBind struct {
	returnType VariantType
	arity      int
	constFlag  bool
	call       func(target Object, args []Variant) Variant
}

func (b *instanceBind) Call(target Object, args []Variant) Variant { return b.call(target, args) }
func (b *instanceBind) IsStatic() bool                             { return false }
func (b *instanceBind) IsConst() bool                              { return b.constFlag }
func (b *instanceBind) ReturnType() VariantType                    { return b.returnType }
func (b *instanceBind) Arity() int                                 { return b.arity }

// NewInstanceMethod0 binds a zero-argument instance callable.
func NewInstanceMethod0(returnType VariantType, isConst bool, fn InstanceFunc0) MethodBind {
	return &instanceBind{returnType: returnType, arity: 0, constFlag: isConst,
		call: func(target Object, args []Variant) Variant {
			return fn(target)
		}}
}

// NewInstanceMethod1 binds a one-argument instance callable.
func NewInstanceMethod1(returnType VariantType, isConst bool, fn InstanceFunc1) MethodBind {
	return &instanceBind{returnType: returnType, arity: 1, constFlag: isConst,
		call: func(target Object, args []Variant) Variant {
			return fn(target, args[0])
		}}
}

// NewInstanceMethod2 binds a two-argument instance callable.
func NewInstanceMethod2(returnType VariantType, isConst bool, fn InstanceFunc2) MethodBind {
	return &instanceBind{returnType: returnType, arity: 2, constFlag: isConst,
		call: func(target Object, args []Variant) Variant {
			return fn(target, args[0], args[1])
		}}
}

// NewInstanceMethod3 binds a three-argument instance callable.
func NewInstanceMethod3(returnType VariantType, isConst bool, fn InstanceFunc3) MethodBind {
	return &instanceBind{returnType: returnType, arity: 3, constFlag: isConst,
		call: func(target Object, args []Variant) Variant {
			return fn(target, args[0], args[1], args[2])
		}}
}

// ---------------------------------------------------------------------------
// InvokeResult
// ---------------------------------------------------------------------------

// InvokeResult is the outcome of a reflective invocation.
type InvokeResult int

const (
	InvokeOK InvokeResult = iota
	InvokeInvalidTarget
	InvokeArgumentCountMismatch
)

// String returns the result name for diagnostics.
func (r InvokeResult) String() string {
	switch r {
	case InvokeOK:
		return "OK"
	case InvokeInvalidTarget:
		return "InvalidTarget"
	case InvokeArgumentCountMismatch:
		return "ArgumentCountMismatch"
	default:
		return "?"
	}
}

// ---------------------------------------------------------------------------
// ReflectionMethod
// ---------------------------------------------------------------------------

// ReflectionMethod is a bound, invocable descriptor wrapping one callable.
// It carries the declared parameter names and the default values for the
// trailing parameters. Bound once at declaration time, immutable after.
type ReflectionMethod struct {
	name             string
	bind             MethodBind
	argumentNames    []string
	defaultArguments []Variant

	// declaringClass is set when the owning class is registered; it is
	// what non-static invocation validates the target against.
	declaringClass *ReflectionClass
}

// NewReflectionMethod creates an unregistered method descriptor.
// len(argumentNames) must equal the bind's arity and
// len(defaultArguments) must not exceed it; violations surface as
// ErrInvalidDeclaration when the declaring class is registered.
func NewReflectionMethod(name string, bind MethodBind, argumentNames []string, defaultArguments []Variant) *ReflectionMethod {
	return &ReflectionMethod{
		name:             name,
		bind:             bind,
		argumentNames:    argumentNames,
		defaultArguments: defaultArguments,
	}
}

// GetName returns the method name.
func (m *ReflectionMethod) GetName() string { return m.name }

// IsStatic reports whether the bound callable is static.
func (m *ReflectionMethod) IsStatic() bool { return m.bind.IsStatic() }

// IsConst reports whether the bound callable leaves the target unchanged.
func (m *ReflectionMethod) IsConst() bool { return m.bind.IsConst() }

// GetReturnType returns the declared return kind (TypeNull for void).
func (m *ReflectionMethod) GetReturnType() VariantType { return m.bind.ReturnType() }

// GetArgumentCount returns the declared arity.
func (m *ReflectionMethod) GetArgumentCount() int { return len(m.argumentNames) }

// GetDefaultArgumentCount returns the number of trailing defaults.
func (m *ReflectionMethod) GetDefaultArgumentCount() int { return len(m.defaultArguments) }

// GetArgumentNames returns the declared parameter name tokens.
func (m *ReflectionMethod) GetArgumentNames() []string {
	names := make([]string, len(m.argumentNames))
	copy(names, m.argumentNames)
	return names
}

// GetDeclaringClass returns the class the method was registered on,
// or nil for an unregistered descriptor.
func (m *ReflectionMethod) GetDeclaringClass() *ReflectionClass { return m.declaringClass }

// Invoke executes the bound callable.
//
//  1. Non-static binds require target to be a live instance of the
//     declaring class (or a child of it); static binds ignore target.
//  2. The provided argument count must satisfy
//     arity - defaults <= len(args) <= arity.
//  3. Missing trailing arguments are filled from the declared defaults,
//     right-aligned: default i supplies parameter arity-defaults+i.
//  4. The callable runs synchronously on the calling thread; its result
//     is stored into returnValue (the Null variant for void callables).
//
// returnValue may be nil when the caller discards the result.
func (m *ReflectionMethod) Invoke(target Object, args []Variant, returnValue *Variant) InvokeResult {
	if !m.bind.IsStatic() {
		if target == nil || !IsInstanceValid(target.GetInstanceId()) {
			return InvokeInvalidTarget
		}
		if m.declaringClass != nil && !m.declaringClass.isCompatibleTarget(target) {
			return InvokeInvalidTarget
		}
	}

	arity := len(m.argumentNames)
	defaults := len(m.defaultArguments)
	provided := len(args)
	if provided < arity-defaults || provided > arity {
		return InvokeArgumentCountMismatch
	}

	full := args
	if provided < arity {
		full = make([]Variant, arity)
		copy(full, args)
		for i := provided; i < arity; i++ {
			full[i] = m.defaultArguments[i-(arity-defaults)]
		}
	}

	result := m.bind.Call(target, full)
	if returnValue != nil {
		*returnValue = result
	}
	return InvokeOK
}
