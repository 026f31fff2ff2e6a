package parser

import (
	"github.com/cwbudde/go-javaparser/ast"
	"github.com/cwbudde/go-javaparser/token"
)

// parseType parses any type reference: primitive, void, or a (possibly
// generic, possibly array) reference type.
func (p *Parser) parseType() (ast.TypeNode, error) {
	cur := p.cur.Current()
	if cur.Kind == token.NAME && token.PrimitiveNames[cur.Text] {
		return p.parsePrimitiveOrArrayType()
	}
	if cur.IsKeyword("void") {
		p.cur = p.cur.Advance()
		return &ast.VoidType{BaseNode: finish(baseFrom(cur), cur.End)}, nil
	}
	return p.parseGenericTypeOrArray(nil)
}

func (p *Parser) parsePrimitiveOrArrayType() (ast.TypeNode, error) {
	start := p.cur.Current()
	prim := &ast.PrimitiveType{BaseNode: finish(baseFrom(start), start.End), Name: start.Text}
	p.cur = p.cur.Advance()
	dims, err := p.parseArrayDimensionsOpt()
	if err != nil {
		return nil, err
	}
	if len(dims) == 0 {
		return prim, nil
	}
	return &ast.ArrayType{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Base: prim, Dimensions: dims}, nil
}

// parseArrayDimensionsOpt consumes zero or more `[]` pairs (each optionally
// annotated), e.g. the trailing dims of `int foo() [][]`.
func (p *Parser) parseArrayDimensionsOpt() ([]ast.ArrayDimension, error) {
	var dims []ast.ArrayDimension
	for {
		var annots []*ast.Annotation
		for p.cur.IsOp("@") {
			a, err := p.parseAnnotation()
			if err != nil {
				return nil, err
			}
			annots = append(annots, a)
		}
		if !p.cur.Is("[") || !p.cur.Peek(1).Is("]") {
			if len(annots) > 0 {
				return nil, p.errHere(ErrUnexpectedToken, "expected '[' after dimension annotation")
			}
			break
		}
		p.cur = p.cur.Advance()
		p.cur = p.cur.Advance()
		dims = append(dims, ast.ArrayDimension{Annotations: annots})
	}
	return dims, nil
}

// parseGenericTypeOrArray parses a (possibly qualified, possibly generic)
// reference type and folds any trailing `[]` pairs into an ArrayType,
// reassigning the element type's own annotations onto the ArrayType per
// spec §3.4 invariant 3 / SPEC_FULL §3.
func (p *Parser) parseGenericTypeOrArray(leadingAnnots []*ast.Annotation) (ast.TypeNode, error) {
	start := p.cur.Current()
	gt, err := p.parseGenericTypeChain(leadingAnnots)
	if err != nil {
		return nil, err
	}
	dims, err := p.parseArrayDimensionsOpt()
	if err != nil {
		return nil, err
	}
	if len(dims) == 0 {
		return gt, nil
	}
	arr := &ast.ArrayType{
		BaseNode:   finish(baseFrom(start), p.cur.Previous().End),
		Base:       gt,
		Dimensions: dims,
	}
	gt.Annotations = nil
	return arr, nil
}

// parseGenericTypeChain parses `Name[<args>][.Name[<args>]]*`.
func (p *Parser) parseGenericTypeChain(leadingAnnots []*ast.Annotation) (*ast.GenericType, error) {
	var container *ast.GenericType
	var gt *ast.GenericType
	for {
		start := p.cur.Current()
		var annots []*ast.Annotation
		if container == nil {
			annots = leadingAnnots
		}
		for p.cur.IsOp("@") {
			a, err := p.parseAnnotation()
			if err != nil {
				return nil, err
			}
			annots = append(annots, a)
		}
		name, pos, err := p.requireIdent()
		if err != nil {
			return nil, err
		}
		// 'var' as a bare local-variable/enhanced-for type marker is built
		// directly by parseLocalVarOrEnhancedForType without ever calling
		// this routine, so any 'var' reaching here is genuinely in a
		// declared-type position and is rejected (spec invariant §3.3).
		if err := p.requireNotVar(name, pos); err != nil {
			return nil, err
		}
		var typeArgs []*ast.TypeArgument
		if p.cur.Is("<") {
			typeArgs, err = p.parseTypeArgumentList()
			if err != nil {
				return nil, err
			}
		}
		gt = &ast.GenericType{
			BaseNode:    finish(baseFrom(start), p.cur.Previous().End),
			Name:        name,
			TypeArgs:    typeArgs,
			Container:   container,
			Annotations: annots,
		}
		if p.cur.Is(".") && p.cur.Peek(1).Kind == token.NAME && !p.cur.Peek(1).IsKeyword("class") && !p.cur.Peek(1).IsKeyword("this") {
			p.cur = p.cur.Advance()
			container = gt
			continue
		}
		return gt, nil
	}
}

// parseTypeArgumentList parses `<T1, T2, ...>`, including the empty
// diamond `<>`. PRE: cursor is on '<'.
func (p *Parser) parseTypeArgumentList() ([]*ast.TypeArgument, error) {
	if _, err := p.require("<"); err != nil {
		return nil, err
	}
	var args []*ast.TypeArgument
	if p.closesAngle(1) {
		p.consumeCloseAngle(1)
		return args, nil
	}
	for {
		arg, err := p.parseTypeArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Is(",") {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	if !p.closesAngle(1) {
		return nil, p.errHere(ErrUnexpectedToken, "expected '>' to close type argument list, got %q", p.describe(p.cur.Current()))
	}
	p.consumeCloseAngle(1)
	return args, nil
}

// closesAngle reports whether n adjacent '>' tokens are present at the
// cursor (the shift-fusion check, spec §4.1).
func (p *Parser) closesAngle(n int) bool {
	return p.cur.AdjacentGT(n)
}

// consumeCloseAngle consumes the next n tokens, which callers have already
// checked with closesAngle to be adjacent '>' tokens.
func (p *Parser) consumeCloseAngle(n int) {
	p.cur = p.cur.AdvanceN(n)
}

func (p *Parser) parseTypeArgument() (*ast.TypeArgument, error) {
	start := p.cur.Current()
	if p.cur.IsOp("?") {
		p.cur = p.cur.Advance()
		if p.cur.IsKeyword("extends") {
			p.cur = p.cur.Advance()
			bound, err := p.parseType()
			if err != nil {
				return nil, err
			}
			return &ast.TypeArgument{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Bound: bound, Wildcard: ast.ExtendsBound}, nil
		}
		if p.cur.IsKeyword("super") {
			p.cur = p.cur.Advance()
			bound, err := p.parseType()
			if err != nil {
				return nil, err
			}
			return &ast.TypeArgument{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Bound: bound, Wildcard: ast.SuperBound}, nil
		}
		return &ast.TypeArgument{BaseNode: finish(baseFrom(start), start.End), Wildcard: ast.NoBound}, nil
	}
	base, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.TypeArgument{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Base: base, Wildcard: ast.NoBound}, nil
}

// parseTypeParameters parses `<T1 extends B1 & B2, T2>`. PRE: cursor on '<'.
func (p *Parser) parseTypeParameters() ([]*ast.TypeParameter, error) {
	if _, err := p.require("<"); err != nil {
		return nil, err
	}
	var params []*ast.TypeParameter
	for {
		start := p.cur.Current()
		var annots []*ast.Annotation
		for p.cur.IsOp("@") {
			a, err := p.parseAnnotation()
			if err != nil {
				return nil, err
			}
			annots = append(annots, a)
		}
		_ = annots
		name, pos, err := p.requireIdent()
		if err != nil {
			return nil, err
		}
		if err := p.requireNotVar(name, pos); err != nil {
			return nil, err
		}
		var bound ast.TypeNode
		if p.cur.IsKeyword("extends") {
			p.cur = p.cur.Advance()
			first, err := p.parseType()
			if err != nil {
				return nil, err
			}
			bound = first
			if p.cur.IsOp("&") {
				types := []ast.TypeNode{first}
				for p.cur.IsOp("&") {
					p.cur = p.cur.Advance()
					t, err := p.parseType()
					if err != nil {
						return nil, err
					}
					types = append(types, t)
				}
				bound = &ast.TypeUnion{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Types: types}
			}
		}
		params = append(params, &ast.TypeParameter{
			BaseNode: finish(baseFrom(start), p.cur.Previous().End),
			Name:     name,
			Bound:    bound,
		})
		if p.cur.Is(",") {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	if !p.closesAngle(1) {
		return nil, p.errHere(ErrUnexpectedToken, "expected '>' to close type parameter list, got %q", p.describe(p.cur.Current()))
	}
	p.consumeCloseAngle(1)
	return params, nil
}
