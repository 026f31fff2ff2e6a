package ast

// PrimitiveType is one of the eight primitive type keywords.
type PrimitiveType struct {
	BaseNode
	Name string // one of boolean,byte,short,int,long,char,float,double
}

func (n *PrimitiveType) aNode() {}
func (n *PrimitiveType) aType() {}

// VoidType is the `void` return-type marker.
type VoidType struct {
	BaseNode
}

func (n *VoidType) aNode() {}
func (n *VoidType) aType() {}

// GenericType is a (possibly generic, possibly qualified) reference type,
// e.g. `List<String>` or `Outer<T>.Inner<U>` (Container chains the latter).
type GenericType struct {
	BaseNode
	Name        string
	TypeArgs    []*TypeArgument // nil means no '<...>' was written at all
	Container   *GenericType    // non-nil for Outer.Inner qualified types
	Annotations []*Annotation
}

func (n *GenericType) aNode() {}
func (n *GenericType) aType() {}

// ArrayType is Base[][]...[] with Dimensions recording one entry per `[]`
// pair (possibly annotated, spec invariant: len(Dimensions) >= 1).
type ArrayType struct {
	BaseNode
	Base       TypeNode
	Dimensions []ArrayDimension
}

func (n *ArrayType) aNode() {}
func (n *ArrayType) aType() {}

// ArrayDimension is one `[]` pair of an ArrayType, with any annotations that
// preceded it (e.g. `int @NonNull [] xs`).
type ArrayDimension struct {
	Annotations []*Annotation
}

// TypeArgument is one entry of a `<...>` type-argument list: either a
// concrete type, `?`, `? extends Bound`, or `? super Bound`.
type TypeArgument struct {
	BaseNode
	Base    TypeNode // nil for a bare wildcard
	Bound   TypeNode // the extends/super bound, if any
	Wildcard BoundKind
}

func (n *TypeArgument) aNode() {}

// BoundKind classifies a TypeArgument's wildcard bound.
type BoundKind int

const (
	NoBound BoundKind = iota
	ExtendsBound
	SuperBound
)

// TypeUnion is an `&`-joined type list, as used in multi-bounded type
// parameters (`<T extends A & B>`) and intersection casts (`(A & B) x`).
// Naming follows the reference AST (spec §3.2, GLOSSARY), not ordinary
// English usage of "union"/"intersection".
type TypeUnion struct {
	BaseNode
	Types []TypeNode
}

func (n *TypeUnion) aNode() {}
func (n *TypeUnion) aType() {}

// TypeIntersection is a `|`-joined type list, as used in multi-catch
// (`catch (IOException | SQLException e)`).
type TypeIntersection struct {
	BaseNode
	Types []TypeNode
}

func (n *TypeIntersection) aNode() {}
func (n *TypeIntersection) aType() {}
