package engine

import (
	"sync"
	"sync/atomic"
)

// InstanceId is an opaque liveness token distinguishing one live object
// instance from another. Zero is never assigned and means "no instance".
type InstanceId uint64

// IsValid reports whether the id could refer to an instance at all.
func (id InstanceId) IsValid() bool {
	return id != 0
}

// Object is the minimal identity surface the reflection layer needs from
// an engine object: a liveness token and the declaring class name.
type Object interface {
	GetInstanceId() InstanceId
	GetClassName() string
}

// ---------------------------------------------------------------------------
// Instance registry
// ---------------------------------------------------------------------------

// instanceRegistry tracks every live object by id so invocation targets
// and Object variants can be validated for staleness.
var instanceRegistry = struct {
	sync.RWMutex
	instances map[InstanceId]Object
}{
	instances: make(map[InstanceId]Object),
}

// Start ids at 1 (0 could be confused with nil/uninitialized).
var nextInstanceId atomic.Uint64

func registerInstance(obj Object) InstanceId {
	id := InstanceId(nextInstanceId.Add(1))

	instanceRegistry.Lock()
	instanceRegistry.instances[id] = obj
	instanceRegistry.Unlock()

	return id
}

func unregisterInstance(id InstanceId) {
	instanceRegistry.Lock()
	delete(instanceRegistry.instances, id)
	instanceRegistry.Unlock()
}

// IsInstanceValid reports whether the id refers to a live instance.
func IsInstanceValid(id InstanceId) bool {
	if !id.IsValid() {
		return false
	}
	instanceRegistry.RLock()
	_, ok := instanceRegistry.instances[id]
	instanceRegistry.RUnlock()
	return ok
}

// GetInstance retrieves a live instance by id, or nil.
func GetInstance(id InstanceId) Object {
	instanceRegistry.RLock()
	defer instanceRegistry.RUnlock()
	return instanceRegistry.instances[id]
}

// InstanceCount returns the number of live instances.
func InstanceCount() int {
	instanceRegistry.RLock()
	defer instanceRegistry.RUnlock()
	return len(instanceRegistry.instances)
}

// ---------------------------------------------------------------------------
// ObjectBase
// ---------------------------------------------------------------------------

// ObjectBase is the embeddable identity implementation. Embedders call
// Init exactly once during construction; the base mints an instance id
// and registers itself as live.
type ObjectBase struct {
	id        InstanceId
	className string
}

// Init registers the object as a live instance of className.
// The self reference is what the registry hands back from GetInstance.
func (b *ObjectBase) Init(self Object, className string) {
	b.className = className
	b.id = registerInstance(self)
}

// GetInstanceId returns the liveness token minted at Init.
func (b *ObjectBase) GetInstanceId() InstanceId {
	return b.id
}

// GetClassName returns the qualified class name given at Init.
func (b *ObjectBase) GetClassName() string {
	return b.className
}

// release removes the object from the live set. Idempotent.
func (b *ObjectBase) release() {
	if b.id.IsValid() {
		unregisterInstance(b.id)
		b.id = 0
	}
}

// ---------------------------------------------------------------------------
// ManualObject / ReferencedObject
// ---------------------------------------------------------------------------

// ManualObject is an object whose lifetime is managed explicitly:
// it stays live until Destroy is called.
type ManualObject struct {
	ObjectBase
}

// Destroy removes the object from the live set. After Destroy, Variants
// holding the object degrade to their defaults.
func (m *ManualObject) Destroy() {
	m.release()
}

// ReferencedObject is an object whose lifetime is reference-counted.
// Construction leaves the count at zero; the first Reference claims
// ownership and the Dereference that returns zero destroys the object.
type ReferencedObject struct {
	ObjectBase
	refs atomic.Int32
}

// Reference increments the reference count and returns the new count.
func (r *ReferencedObject) Reference() int32 {
	return r.refs.Add(1)
}

// Dereference decrements the reference count and returns the new count.
// Reaching zero removes the object from the live set.
func (r *ReferencedObject) Dereference() int32 {
	n := r.refs.Add(-1)
	if n <= 0 {
		r.release()
	}
	return n
}

// GetReferenceCount returns the current reference count.
func (r *ReferencedObject) GetReferenceCount() int32 {
	return r.refs.Load()
}
