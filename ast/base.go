// Package ast defines the Java abstract syntax tree: one concrete struct per
// node kind (spec §3.2), joined by the Node interface. There is no class
// hierarchy — callers type-switch on the concrete type, the idiomatic Go
// rendering of the reference implementation's tagged-union-plus-pattern-
// matching design (spec §9).
package ast

import "github.com/cwbudde/go-javaparser/token"

// Node is implemented by every AST node. Trees are owned by their parent;
// there is no sharing and no back-pointers (spec §3.4, §5).
type Node interface {
	Pos() token.Position
	End() token.Position
	aNode()
}

// Expression is implemented by every node usable in expression position.
type Expression interface {
	Node
	aExpression()
}

// Statement is implemented by every node usable in statement position.
type Statement interface {
	Node
	aStatement()
}

// Decl is implemented by every declaration that can sit at class/interface/
// annotation body or module-compilation-unit scope.
type Decl interface {
	Node
	aDecl()
}

// Directive is implemented by the five module-member kinds (spec §3.2).
type Directive interface {
	Node
	aDirective()
}

// TypeNode is implemented by every node usable in type position.
type TypeNode interface {
	Node
	aType()
}

// BaseNode carries the start/end source position every node records for
// diagnostics (spec §3.3: "every node records the location of its first
// token"; this implementation also records the last, so callers never need
// a reflection-based lookup the way the teacher's NodeBuilder does).
type BaseNode struct {
	Start token.Position
	Finish token.Position
}

func (b BaseNode) Pos() token.Position { return b.Start }
func (b BaseNode) End() token.Position { return b.Finish }
func (b BaseNode) aNode()              {}

// Modifier is one entry from the closed modifier-keyword set (spec §3.2).
type Modifier struct {
	BaseNode
	Name string
}

// Doc is a Javadoc comment's raw text (including the /** */ delimiters),
// attached to the declaration it immediately precedes (spec §3.1, §8.11).
type Doc = string
