package ast

// TypeParameter is one `<T extends Bound>` entry of a type-parameter list.
type TypeParameter struct {
	BaseNode
	Name  string
	Bound TypeNode // may be a TypeUnion for multiple bounds; nil if absent
}

func (n *TypeParameter) aNode() {}

// ClassDeclaration is a `class` top-level or nested type declaration.
// `record` declarations are not parsed.
type ClassDeclaration struct {
	BaseNode
	Name        string
	TypeParams  []*TypeParameter
	Superclass  TypeNode
	Interfaces  []TypeNode
	Members     []Decl
	Modifiers   []Modifier
	Annotations []*Annotation
	Doc         Doc
	Permits     []TypeNode // sealed classes: `permits A, B`
}

func (n *ClassDeclaration) aNode() {}
func (n *ClassDeclaration) aDecl() {}

// InterfaceDeclaration is an `interface` type declaration.
type InterfaceDeclaration struct {
	BaseNode
	Name        string
	TypeParams  []*TypeParameter
	Interfaces  []TypeNode // extended interfaces
	Members     []Decl
	Modifiers   []Modifier
	Annotations []*Annotation
	Doc         Doc
	Permits     []TypeNode
}

func (n *InterfaceDeclaration) aNode() {}
func (n *InterfaceDeclaration) aDecl() {}

// EnumDeclaration is an `enum` type declaration.
type EnumDeclaration struct {
	BaseNode
	Name        string
	Interfaces  []TypeNode
	Fields      []*EnumField
	Members     []Decl
	Modifiers   []Modifier
	Annotations []*Annotation
	Doc         Doc
}

func (n *EnumDeclaration) aNode() {}
func (n *EnumDeclaration) aDecl() {}

// AnnotationDeclaration is an `@interface` type declaration.
type AnnotationDeclaration struct {
	BaseNode
	Name        string
	Members     []Decl
	Modifiers   []Modifier
	Annotations []*Annotation
	Doc         Doc
}

func (n *AnnotationDeclaration) aNode() {}
func (n *AnnotationDeclaration) aDecl() {}

// FunctionDeclaration is a method declaration.
type FunctionDeclaration struct {
	BaseNode
	Name       string
	ReturnType TypeNode
	TypeParams []*TypeParameter
	Params     []*FormalParameter
	Throws     []TypeNode
	Body       *Block // nil for abstract/interface/native methods
	Modifiers  []Modifier
	Annotations []*Annotation
	Doc        Doc
}

func (n *FunctionDeclaration) aNode() {}
func (n *FunctionDeclaration) aDecl() {}

// ConstructorDeclaration is a constructor declaration.
type ConstructorDeclaration struct {
	BaseNode
	Name        string // the enclosing class's simple name, by Java convention
	TypeParams  []*TypeParameter
	Params      []*FormalParameter
	Throws      []TypeNode
	Body        *Block
	Modifiers   []Modifier
	Annotations []*Annotation
	Doc         Doc
}

func (n *ConstructorDeclaration) aNode() {}
func (n *ConstructorDeclaration) aDecl() {}

// FieldDeclaration is a field member, possibly declaring several variables
// sharing one base type (`int a, b[], c = 3;`).
type FieldDeclaration struct {
	BaseNode
	Type        TypeNode
	Declarators []*VariableDeclarator
	Modifiers   []Modifier
	Annotations []*Annotation
	Doc         Doc
}

func (n *FieldDeclaration) aNode() {}
func (n *FieldDeclaration) aDecl() {}

// EnumField is one enum constant, with optional constructor arguments and
// an optional constant-specific class body.
type EnumField struct {
	BaseNode
	Name        string
	Args        []Expression
	Members     []Decl
	Annotations []*Annotation
	Doc         Doc
}

func (n *EnumField) aNode() {}

// AnnotationProperty is an `@interface` member: `Type name() [default v];`.
type AnnotationProperty struct {
	BaseNode
	Type       TypeNode
	Name       string
	Default    Expression
	Dimensions []ArrayDimension
	Modifiers  []Modifier
	Doc        Doc
}

func (n *AnnotationProperty) aNode() {}
func (n *AnnotationProperty) aDecl() {}

// InitializerBlock is a `{ ... }` or `static { ... }` class-body block.
type InitializerBlock struct {
	BaseNode
	Body   *Block
	Static bool
}

func (n *InitializerBlock) aNode() {}
func (n *InitializerBlock) aDecl() {}

// VariableDeclaration is a local variable declaration statement.
type VariableDeclaration struct {
	BaseNode
	Type        TypeNode
	Declarators []*VariableDeclarator
	Modifiers   []Modifier
	Annotations []*Annotation
}

func (n *VariableDeclaration) aNode()      {}
func (n *VariableDeclaration) aStatement() {}

// VariableDeclarator is one `name[dims] [= init]` entry of a declaration.
type VariableDeclarator struct {
	BaseNode
	Name       string
	Init       Expression
	Dimensions []ArrayDimension
}

func (n *VariableDeclarator) aNode() {}

// FormalParameter is one parameter of a method, constructor, or lambda.
type FormalParameter struct {
	BaseNode
	Type        TypeNode
	Name        string
	Variadic    bool
	Dimensions  []ArrayDimension
	Modifiers   []Modifier
	Annotations []*Annotation
}

func (n *FormalParameter) aNode() {}

// ThisParameter is an explicit receiver parameter (`Outer.this` as the first
// parameter of an inner-class method).
type ThisParameter struct {
	BaseNode
	Type      TypeNode
	Qualifier string
}

func (n *ThisParameter) aNode() {}
