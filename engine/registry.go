package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("engine.reflection")

// Registration errors.
var (
	ErrClassNotFound      = errors.New("class not found")
	ErrClassAlreadyExists = errors.New("class already exists")
	ErrParentNotFound     = errors.New("parent class not found")
	ErrParentCycle        = errors.New("declared parent cycle")
	ErrInvalidDeclaration = errors.New("invalid declaration")
)

// ---------------------------------------------------------------------------
// Declaration surface
// ---------------------------------------------------------------------------

// MethodDeclaration describes one method of a class declaration.
type MethodDeclaration struct {
	Name             string
	Bind             MethodBind
	ArgumentNames    []string
	DefaultArguments []Variant
}

// PropertyDeclaration describes one property by naming its accessors.
// The named methods may live on the declaring class or any ancestor.
type PropertyDeclaration struct {
	Name       string
	GetterName string
	SetterName string
}

// ClassDeclaration is the declaration surface consumed once by the
// registry: pure data, no side effects, produced by engine or
// application code during startup.
type ClassDeclaration struct {
	Name         string
	ParentName   string
	Instantiable bool
	Methods      []MethodDeclaration
	Properties   []PropertyDeclaration
}

// ---------------------------------------------------------------------------
// Reflection: the class registry
// ---------------------------------------------------------------------------

// Reflection is the name→class catalog.
//
// Startup is two-phase: Declare collects declarations (a pure data pass),
// Initialize resolves them deterministically with deferred parent
// resolution, so declaration order never matters. Register combines the
// two for single-declaration use during the startup phase.
//
// All registration completes during single-threaded startup; the catalog
// is append-only while starting up and read-only afterwards, so
// post-startup reads need no coordination beyond the retained RWMutex.
type Reflection struct {
	mu      sync.RWMutex
	classes map[string]*ReflectionClass
	pending []ClassDeclaration
}

// NewReflection creates an empty class registry.
func NewReflection() *Reflection {
	return &Reflection{
		classes: make(map[string]*ReflectionClass),
	}
}

// Declare collects one class declaration for the next Initialize.
// It performs no resolution and cannot fail.
func (r *Reflection) Declare(decl ClassDeclaration) {
	r.mu.Lock()
	r.pending = append(r.pending, decl)
	r.mu.Unlock()
}

// Register consumes one declaration immediately. Parent resolution is
// deferred: if the declared parent is not registered yet the declaration
// stays pending until a later Register or Initialize resolves it.
// Startup-phase only.
func (r *Reflection) Register(decl ClassDeclaration) error {
	r.Declare(decl)
	return r.resolvePending(false)
}

// Initialize resolves every pending declaration and finalizes the
// registry. Unknown parents, declared cycles, duplicate names and
// malformed method/property declarations are reported as errors.
func (r *Reflection) Initialize() error {
	return r.resolvePending(true)
}

// resolvePending builds classes from pending declarations, making passes
// until a fixed point so that a child declared before its parent still
// resolves. When strict, leftover declarations are an error.
func (r *Reflection) resolvePending(strict bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(r.pending))
	for _, decl := range r.pending {
		if decl.Name == "" {
			return fmt.Errorf("%w: class with empty name", ErrInvalidDeclaration)
		}
		if _, exists := r.classes[decl.Name]; exists || seen[decl.Name] {
			return fmt.Errorf("%w: %s", ErrClassAlreadyExists, decl.Name)
		}
		seen[decl.Name] = true
	}

	registered := 0
	for progress := true; progress; {
		progress = false
		var remaining []ClassDeclaration
		for _, decl := range r.pending {
			var parent *ReflectionClass
			if decl.ParentName != "" {
				parent = r.classes[decl.ParentName]
				if parent == nil {
					remaining = append(remaining, decl)
					continue
				}
			}
			class, err := r.buildClass(decl, parent)
			if err != nil {
				r.pending = remaining
				return err
			}
			r.classes[decl.Name] = class
			registered++
			progress = true
			log.Debugf("registered class %s", decl.Name)
		}
		r.pending = remaining
	}

	if registered > 0 {
		log.Infof("class registry: %d classes registered, %d total", registered, len(r.classes))
	}

	if strict && len(r.pending) > 0 {
		return r.describeUnresolved()
	}
	return nil
}

// describeUnresolved classifies leftover declarations: a parent name that
// refers to another leftover declaration is a cycle, anything else is a
// missing parent.
func (r *Reflection) describeUnresolved() error {
	leftover := make(map[string]string, len(r.pending))
	for _, decl := range r.pending {
		leftover[decl.Name] = decl.ParentName
	}
	for name, parent := range leftover {
		if _, ok := leftover[parent]; ok {
			return fmt.Errorf("%w: involving %s and %s", ErrParentCycle, name, parent)
		}
	}
	decl := r.pending[0]
	return fmt.Errorf("%w: %s (declared by %s)", ErrParentNotFound, decl.ParentName, decl.Name)
}

// buildClass constructs one ReflectionClass from its declaration.
// The parent, when declared, is already resolved.
func (r *Reflection) buildClass(decl ClassDeclaration, parent *ReflectionClass) (*ReflectionClass, error) {
	class := &ReflectionClass{
		name:         decl.Name,
		parentName:   decl.ParentName,
		parent:       parent,
		instantiable: decl.Instantiable,
		methods:      make(map[string]*ReflectionMethod, len(decl.Methods)),
		properties:   make(map[string]*ReflectionProperty, len(decl.Properties)),
		registry:     r,
	}

	for _, md := range decl.Methods {
		if md.Name == "" || md.Bind == nil {
			return nil, fmt.Errorf("%w: %s declares a method without name or bind", ErrInvalidDeclaration, decl.Name)
		}
		if _, dup := class.methods[md.Name]; dup {
			return nil, fmt.Errorf("%w: %s declares method %s twice", ErrInvalidDeclaration, decl.Name, md.Name)
		}
		if len(md.ArgumentNames) != md.Bind.Arity() {
			return nil, fmt.Errorf("%w: %s.%s declares %d parameter names for arity %d",
				ErrInvalidDeclaration, decl.Name, md.Name, len(md.ArgumentNames), md.Bind.Arity())
		}
		if len(md.DefaultArguments) > md.Bind.Arity() {
			return nil, fmt.Errorf("%w: %s.%s declares %d defaults for arity %d",
				ErrInvalidDeclaration, decl.Name, md.Name, len(md.DefaultArguments), md.Bind.Arity())
		}
		method := NewReflectionMethod(md.Name, md.Bind, md.ArgumentNames, md.DefaultArguments)
		method.declaringClass = class
		class.methods[md.Name] = method
	}

	for _, pd := range decl.Properties {
		if pd.Name == "" {
			return nil, fmt.Errorf("%w: %s declares a property without name", ErrInvalidDeclaration, decl.Name)
		}
		if _, dup := class.properties[pd.Name]; dup {
			return nil, fmt.Errorf("%w: %s declares property %s twice", ErrInvalidDeclaration, decl.Name, pd.Name)
		}
		getter := class.GetMethod(pd.GetterName)
		if getter == nil {
			return nil, fmt.Errorf("%w: %s.%s getter %s not found", ErrInvalidDeclaration, decl.Name, pd.Name, pd.GetterName)
		}
		setter := class.GetMethod(pd.SetterName)
		if setter == nil {
			return nil, fmt.Errorf("%w: %s.%s setter %s not found", ErrInvalidDeclaration, decl.Name, pd.Name, pd.SetterName)
		}
		if getter.GetArgumentCount() != 0 || getter.GetReturnType() == TypeNull {
			return nil, fmt.Errorf("%w: %s.%s getter %s must take no arguments and return a value",
				ErrInvalidDeclaration, decl.Name, pd.Name, pd.GetterName)
		}
		if setter.GetArgumentCount() != 1 || setter.GetReturnType() != TypeNull {
			return nil, fmt.Errorf("%w: %s.%s setter %s must take one argument and return nothing",
				ErrInvalidDeclaration, decl.Name, pd.Name, pd.SetterName)
		}
		class.properties[pd.Name] = &ReflectionProperty{name: pd.Name, getter: getter, setter: setter}
	}

	return class, nil
}

// ---------------------------------------------------------------------------
// Lookup
// ---------------------------------------------------------------------------

// GetClass finds a class by qualified name. Returns nil if not found.
func (r *Reflection) GetClass(name string) *ReflectionClass {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.classes[name]
}

// IsClassExists reports whether a class with this name is registered.
func (r *Reflection) IsClassExists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.classes[name]
	return ok
}

// GetClassNames returns all registered class names, sorted.
func (r *Reflection) GetClassNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered classes.
func (r *Reflection) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.classes)
}

// PendingCount returns the number of declarations awaiting Initialize.
func (r *Reflection) PendingCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pending)
}
