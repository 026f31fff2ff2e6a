package ast

// LiteralKind classifies a Literal node's source form.
type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	LongLiteral
	FloatLiteral
	DoubleLiteral
	BooleanLiteral
	CharLiteral
	StringLiteral
)

// Literal is any non-null constant: integer, floating-point, boolean, char,
// or string. Value is the canonical, re-encoded Java source spelling (spec
// §8 property 12: always valid Java, never a `\xNN` escape); Raw is the
// original lexer text.
type Literal struct {
	BaseNode
	Kind  LiteralKind
	Raw   string
	Value string
}

func (n *Literal) aNode()       {}
func (n *Literal) aExpression() {}

// NullLiteral is the `null` literal.
type NullLiteral struct {
	BaseNode
}

func (n *NullLiteral) aNode()       {}
func (n *NullLiteral) aExpression() {}

// TypeLiteral is `Type.class` (including `void.class`, `int[].class`).
type TypeLiteral struct {
	BaseNode
	Type TypeNode
}

func (n *TypeLiteral) aNode()       {}
func (n *TypeLiteral) aExpression() {}

// This is `this` or `Qualifier.this`.
type This struct {
	BaseNode
	Object Expression
}

func (n *This) aNode()       {}
func (n *This) aExpression() {}

// Super is `super` or `Qualifier.super`.
type Super struct {
	BaseNode
	Object Expression
}

func (n *Super) aNode()       {}
func (n *Super) aExpression() {}

// Name is a bare identifier reference.
type Name struct {
	BaseNode
	Value string
}

func (n *Name) aNode()       {}
func (n *Name) aExpression() {}

// MemberAccess is `object.name` (field or package-qualified access).
type MemberAccess struct {
	BaseNode
	Object Expression
	Name   string
}

func (n *MemberAccess) aNode()       {}
func (n *MemberAccess) aExpression() {}

// FunctionCall is `[object.]name[<typeargs>](args)`.
type FunctionCall struct {
	BaseNode
	Object   Expression
	Name     string
	Args     []Expression
	TypeArgs []*TypeArgument
}

func (n *FunctionCall) aNode()       {}
func (n *FunctionCall) aExpression() {}

// ThisCall is `[<typeargs>]this(args);` as a constructor's first statement.
// For a qualified `outer.this(args)` the qualifier is not kept.
type ThisCall struct {
	BaseNode
	Args     []Expression
	TypeArgs []*TypeArgument
}

func (n *ThisCall) aNode()       {}
func (n *ThisCall) aExpression() {}

// SuperCall is `[<typeargs>]super(args);` as a constructor's first
// statement, optionally qualified (`outer.super(args)`).
type SuperCall struct {
	BaseNode
	Object   Expression
	Args     []Expression
	TypeArgs []*TypeArgument
}

func (n *SuperCall) aNode()       {}
func (n *SuperCall) aExpression() {}

// IndexExpression is `array[index]`.
type IndexExpression struct {
	BaseNode
	Array Expression
	Index Expression
}

func (n *IndexExpression) aNode()       {}
func (n *IndexExpression) aExpression() {}

// MethodReference is `Object::name` or `Object::new`. Object is the
// expression parsed before `::` (for `ArrayList::new`, the Name
// `ArrayList`); a primitive or array operand such as `int[]::new` is not
// parsed.
type MethodReference struct {
	BaseNode
	Object Node
	Name   string // identifier, or "new"
}

func (n *MethodReference) aNode()       {}
func (n *MethodReference) aExpression() {}

// CastExpression is `(Type) expr`.
type CastExpression struct {
	BaseNode
	Type TypeNode
	Expr Expression
}

func (n *CastExpression) aNode()       {}
func (n *CastExpression) aExpression() {}

// UnaryExpression is a prefix `+ - ~ !` application.
type UnaryExpression struct {
	BaseNode
	Op   string
	Expr Expression
}

func (n *UnaryExpression) aNode()       {}
func (n *UnaryExpression) aExpression() {}

// IncrementExpression is `++x`/`x++`/`--x`/`x--`.
type IncrementExpression struct {
	BaseNode
	Op     string // "++" or "--"
	Expr   Expression
	Prefix bool
}

func (n *IncrementExpression) aNode()       {}
func (n *IncrementExpression) aExpression() {}

// BinaryExpression is any left-associative binary operator application
// (arithmetic, bitwise, logical, relational).
type BinaryExpression struct {
	BaseNode
	Op  string
	LHS Expression
	RHS Expression
}

func (n *BinaryExpression) aNode()       {}
func (n *BinaryExpression) aExpression() {}

// ConditionalExpression is `cond ? then : else_`.
type ConditionalExpression struct {
	BaseNode
	Condition Expression
	Then      Expression
	Else      Expression
}

func (n *ConditionalExpression) aNode()       {}
func (n *ConditionalExpression) aExpression() {}

// Assignment is any `lhs op= rhs` assignment, including plain `=`.
type Assignment struct {
	BaseNode
	Op  string
	LHS Expression
	RHS Expression
}

func (n *Assignment) aNode()       {}
func (n *Assignment) aExpression() {}

// Lambda is `params -> body`; Body is either an Expression or a *Block.
type Lambda struct {
	BaseNode
	Params []*FormalParameter
	Body   Node
}

func (n *Lambda) aNode()       {}
func (n *Lambda) aExpression() {}

// ClassCreator is `[object.]new Type[<typeargs>](args) [{ members }]`.
type ClassCreator struct {
	BaseNode
	Object   Expression
	Type     TypeNode
	Args     []Expression
	TypeArgs []*TypeArgument
	Members  []Decl // non-nil for an anonymous-class body
}

func (n *ClassCreator) aNode()       {}
func (n *ClassCreator) aExpression() {}

// ArrayCreator is `new Type[dim1][dim2]...[initializer]`.
type ArrayCreator struct {
	BaseNode
	Type        TypeNode
	Dimensions  []*DimensionExpression
	Initializer *ArrayInitializer
}

func (n *ArrayCreator) aNode()       {}
func (n *ArrayCreator) aExpression() {}

// DimensionExpression is one `[size]` or `[]` entry of an array creator.
type DimensionExpression struct {
	BaseNode
	Annotations []*Annotation
	Size        Expression // nil for an empty "[]" dimension
}

func (n *DimensionExpression) aNode() {}

// TypeTest is `expr instanceof Type [binding]`.
type TypeTest struct {
	BaseNode
	Expr    Expression
	Type    TypeNode
	Binding string // pattern variable name, Java 16+; "" if absent
}

func (n *TypeTest) aNode()       {}
func (n *TypeTest) aExpression() {}

// Parenthesis is `(expr)`, kept as its own node so parenthesisation is
// distinguishable from a lambda/cast that was ruled out during speculation
// (spec §8 property 7).
type Parenthesis struct {
	BaseNode
	Expr Expression
}

func (n *Parenthesis) aNode()       {}
func (n *Parenthesis) aExpression() {}

// Annotation is `@Name(args)` or `@Name` or `@Name(value)`.
type Annotation struct {
	BaseNode
	Type TypeNode
	Args []*AnnotationArgument
}

func (n *Annotation) aNode()       {}
func (n *Annotation) aExpression() {}

// AnnotationArgument is one `name = value` pair of an annotation's argument
// list; Name == "" for the single-element shorthand `@Name(value)`.
type AnnotationArgument struct {
	BaseNode
	Name  string
	Value Expression
}

func (n *AnnotationArgument) aNode() {}

// ArrayInitializer is `{ v1, v2, ... }`.
type ArrayInitializer struct {
	BaseNode
	Values []Expression
}

func (n *ArrayInitializer) aNode()       {}
func (n *ArrayInitializer) aExpression() {}
