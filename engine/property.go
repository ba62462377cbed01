package engine

// ReflectionProperty exposes a getter/setter pair as a single logical
// field. The getter must be zero-arity and non-void, the setter
// single-arity and void; both shapes are checked when the declaring class
// is registered. Whether the setter's parameter kind agrees with the
// getter's return kind is not checked — that agreement is the declarer's
// responsibility.
type ReflectionProperty struct {
	name   string
	getter *ReflectionMethod
	setter *ReflectionMethod
}

// GetName returns the property name.
func (p *ReflectionProperty) GetName() string { return p.name }

// GetType returns the declared property kind: the getter's return kind.
func (p *ReflectionProperty) GetType() VariantType {
	return p.getter.GetReturnType()
}

// GetGetter returns the underlying getter method.
func (p *ReflectionProperty) GetGetter() *ReflectionMethod { return p.getter }

// GetSetter returns the underlying setter method.
func (p *ReflectionProperty) GetSetter() *ReflectionMethod { return p.setter }

// Get invokes the getter with zero arguments and propagates its
// InvokeResult semantics.
func (p *ReflectionProperty) Get(target Object) (Variant, InvokeResult) {
	var value Variant
	result := p.getter.Invoke(target, nil, &value)
	return value, result
}

// Set invokes the setter with exactly one argument.
func (p *ReflectionProperty) Set(target Object, value Variant) InvokeResult {
	return p.setter.Invoke(target, []Variant{value}, nil)
}
