package engine

// Built-in class declarations for the engine object roots. This is the
// engine-side declaration pass: pure data records handed to the registry,
// resolved whenever Initialize runs.

// Qualified names of the built-in classes.
const (
	ObjectClassName           = "::Engine::Object"
	ManualObjectClassName     = "::Engine::ManualObject"
	ReferencedObjectClassName = "::Engine::ReferencedObject"
)

// referenceCounted is what the reflective surface of ReferencedObject
// needs from a target; embedders satisfy it through the embedded base.
type referenceCounted interface {
	Reference() int32
	Dereference() int32
	GetReferenceCount() int32
}

// DeclareBuiltinClasses declares the engine object roots into the
// registry. None of them are instantiable through reflection; they exist
// as hierarchy roots for application classes.
func DeclareBuiltinClasses(r *Reflection) {
	r.Declare(ClassDeclaration{
		Name: ObjectClassName,
		Methods: []MethodDeclaration{
			{
				Name: "GetClassName",
				Bind: NewInstanceMethod0(TypeString, true, func(target Object) Variant {
					return NewVariantGoString(target.GetClassName())
				}),
			},
			{
				Name: "GetInstanceId",
				Bind: NewInstanceMethod0(TypeInt64, true, func(target Object) Variant {
					return NewVariantInt(int64(target.GetInstanceId()))
				}),
			},
		},
	})

	r.Declare(ClassDeclaration{
		Name:       ManualObjectClassName,
		ParentName: ObjectClassName,
	})

	r.Declare(ClassDeclaration{
		Name:       ReferencedObjectClassName,
		ParentName: ObjectClassName,
		Methods: []MethodDeclaration{
			{
				Name: "Reference",
				Bind: NewInstanceMethod0(TypeInt64, false, func(target Object) Variant {
					if rc, ok := target.(referenceCounted); ok {
						return NewVariantInt(int64(rc.Reference()))
					}
					return NewVariant()
				}),
			},
			{
				Name: "Dereference",
				Bind: NewInstanceMethod0(TypeInt64, false, func(target Object) Variant {
					if rc, ok := target.(referenceCounted); ok {
						return NewVariantInt(int64(rc.Dereference()))
					}
					return NewVariant()
				}),
			},
			{
				Name: "GetReferenceCount",
				Bind: NewInstanceMethod0(TypeInt64, true, func(target Object) Variant {
					if rc, ok := target.(referenceCounted); ok {
						return NewVariantInt(int64(rc.GetReferenceCount()))
					}
					return NewVariant()
				}),
			},
		},
	})
}
