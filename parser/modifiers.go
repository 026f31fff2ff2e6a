package parser

import (
	"github.com/cwbudde/go-javaparser/ast"
	"github.com/cwbudde/go-javaparser/token"
)

// parseModsAndAnnotations loops consuming modifier keywords and @Name(...)
// annotations in any order until neither matches (spec §4.3).
func (p *Parser) parseModsAndAnnotations() ([]ast.Modifier, []*ast.Annotation, error) {
	var mods []ast.Modifier
	var annots []*ast.Annotation
	for {
		cur := p.cur.Current()
		if token.Modifiers[cur.Text] && cur.Kind == token.NAME {
			p.cur = p.cur.Advance()
			mods = append(mods, ast.Modifier{BaseNode: finish(baseFrom(cur), cur.End), Name: cur.Text})
			continue
		}
		if cur.IsOp("@") && !p.cur.Peek(1).Is("interface") {
			a, err := p.parseAnnotation()
			if err != nil {
				return nil, nil, err
			}
			annots = append(annots, a)
			continue
		}
		break
	}
	return mods, annots, nil
}

// parseAnnotation parses `@Name`, `@Name(value)`, or `@Name(k1=v1, k2=v2)`.
// PRE: cursor is on '@'.
func (p *Parser) parseAnnotation() (*ast.Annotation, error) {
	start := p.cur.Current()
	if _, err := p.require("@"); err != nil {
		return nil, err
	}
	typ, err := p.parseGenericTypeName()
	if err != nil {
		return nil, err
	}
	var args []*ast.AnnotationArgument
	if p.cur.Is("(") {
		p.cur = p.cur.Advance()
		if !p.cur.Is(")") {
			args, err = p.parseAnnotationArgs()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.require(")"); err != nil {
			return nil, err
		}
	}
	return &ast.Annotation{
		BaseNode: finish(baseFrom(start), p.cur.Previous().End),
		Type:     typ,
		Args:     args,
	}, nil
}

// parseGenericTypeName parses a dotted annotation/type name without generic
// arguments, e.g. `java.lang.Override`.
func (p *Parser) parseGenericTypeName() (*ast.GenericType, error) {
	start := p.cur.Current()
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	return &ast.GenericType{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Name: name}, nil
}

func (p *Parser) parseAnnotationArgs() ([]*ast.AnnotationArgument, error) {
	var args []*ast.AnnotationArgument
	for {
		start := p.cur.Current()
		var name string
		if p.cur.Current().Kind == token.NAME && p.cur.Peek(1).IsOp("=") {
			name, _, _ = p.requireIdent()
			p.cur = p.cur.Advance() // '='
		}
		val, err := p.parseAnnotationValue()
		if err != nil {
			return nil, err
		}
		args = append(args, &ast.AnnotationArgument{
			BaseNode: finish(baseFrom(start), p.cur.Previous().End),
			Name:     name,
			Value:    val,
		})
		if p.cur.Is(",") {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	return args, nil
}

// parseAnnotationValue parses one annotation-argument value: a nested
// annotation, an array initializer, or an expression (parsed at assignment
// level).
func (p *Parser) parseAnnotationValue() (ast.Expression, error) {
	if p.cur.IsOp("@") {
		return p.parseAnnotation()
	}
	if p.cur.Is("{") {
		return p.parseArrayInitializer()
	}
	return p.parseExpression(precAssignment)
}
