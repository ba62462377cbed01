package engine

import "sort"

// ReflectionClass is the per-class metadata record: identity, parent link,
// instantiability, and the method and property tables. Instances are
// constructed during the registration pass and immutable thereafter; they
// live for the process lifetime and are safe for unsynchronized reads.
type ReflectionClass struct {
	name         string
	parentName   string
	parent       *ReflectionClass
	instantiable bool

	methods    map[string]*ReflectionMethod
	properties map[string]*ReflectionProperty

	registry *Reflection
}

// GetName returns the qualified class name.
func (c *ReflectionClass) GetName() string { return c.name }

// GetParentName returns the declared parent name, or "" for a root class.
func (c *ReflectionClass) GetParentName() string { return c.parentName }

// GetParent returns the resolved parent class, or nil for a root class.
func (c *ReflectionClass) GetParent() *ReflectionClass { return c.parent }

// IsInstantiatable reports the declared instantiability flag.
func (c *ReflectionClass) IsInstantiatable() bool { return c.instantiable }

// ---------------------------------------------------------------------------
// Hierarchy predicates
// ---------------------------------------------------------------------------

// IsParentOf reports whether other is c itself or a descendant of c.
// Terminates because registration rejects declared parent cycles.
func (c *ReflectionClass) IsParentOf(other *ReflectionClass) bool {
	for current := other; current != nil; current = current.parent {
		if current == c {
			return true
		}
	}
	return false
}

// IsChildOf is the mirror of IsParentOf.
func (c *ReflectionClass) IsChildOf(other *ReflectionClass) bool {
	if other == nil {
		return false
	}
	return other.IsParentOf(c)
}

// isCompatibleTarget reports whether the object's registered class is c
// or a descendant of c. Objects of unregistered classes never match.
func (c *ReflectionClass) isCompatibleTarget(target Object) bool {
	targetClass := c.registry.GetClass(target.GetClassName())
	if targetClass == nil {
		return false
	}
	return c.IsParentOf(targetClass)
}

// ---------------------------------------------------------------------------
// Method and property lookup
// ---------------------------------------------------------------------------

// GetMethod looks up a method by name, walking from this class upward
// through the parent chain (override-by-nearest-ancestor).
// Returns nil if the method is absent everywhere in the chain.
func (c *ReflectionClass) GetMethod(name string) *ReflectionMethod {
	for current := c; current != nil; current = current.parent {
		if m, ok := current.methods[name]; ok {
			return m
		}
	}
	return nil
}

// GetOwnMethod looks up a method defined on this class only.
func (c *ReflectionClass) GetOwnMethod(name string) *ReflectionMethod {
	return c.methods[name]
}

// GetProperty looks up a property by name, walking the parent chain.
// Returns nil if the property is absent everywhere in the chain.
func (c *ReflectionClass) GetProperty(name string) *ReflectionProperty {
	for current := c; current != nil; current = current.parent {
		if p, ok := current.properties[name]; ok {
			return p
		}
	}
	return nil
}

// GetOwnProperty looks up a property defined on this class only.
func (c *ReflectionClass) GetOwnProperty(name string) *ReflectionProperty {
	return c.properties[name]
}

// GetMethodNames returns the names of methods defined on this class
// (not inherited), sorted.
func (c *ReflectionClass) GetMethodNames() []string {
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPropertyNames returns the names of properties defined on this class
// (not inherited), sorted.
func (c *ReflectionClass) GetPropertyNames() []string {
	names := make([]string, 0, len(c.properties))
	for name := range c.properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Depth returns the inheritance depth (0 for a root class).
func (c *ReflectionClass) Depth() int {
	depth := 0
	for current := c.parent; current != nil; current = current.parent {
		depth++
	}
	return depth
}

// String implements the Stringer interface.
func (c *ReflectionClass) String() string {
	return c.name
}
