package parser

import (
	"github.com/cwbudde/go-javaparser/ast"
	"github.com/cwbudde/go-javaparser/token"
)

// parseClassDeclaration parses `class Name<T> extends S implements I... { }`,
// including `permits` (sealed classes, Java 15+).
func (p *Parser) parseClassDeclaration(doc ast.Doc, mods []ast.Modifier, annots []*ast.Annotation) (ast.Decl, error) {
	start := p.cur.Current()
	if _, err := p.require("class"); err != nil {
		return nil, err
	}
	name, _, err := p.requireIdent()
	if err != nil {
		return nil, err
	}
	typeParams, err := p.maybeParseTypeParameters()
	if err != nil {
		return nil, err
	}
	var super ast.TypeNode
	if p.cur.IsKeyword("extends") {
		p.cur = p.cur.Advance()
		super, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	var interfaces []ast.TypeNode
	if p.cur.IsKeyword("implements") {
		interfaces, err = p.parseTypeList()
		if err != nil {
			return nil, err
		}
	}
	var permits []ast.TypeNode
	if p.cur.IsKeyword("permits") {
		permits, err = p.parseTypeList()
		if err != nil {
			return nil, err
		}
	}
	prevEnclosing := p.enclosingName
	p.enclosingName = name
	members, err := p.parseClassBody()
	p.enclosingName = prevEnclosing
	if err != nil {
		return nil, err
	}
	return &ast.ClassDeclaration{
		BaseNode:    finish(baseFrom(start), p.cur.Previous().End),
		Name:        name,
		TypeParams:  typeParams,
		Superclass:  super,
		Interfaces:  interfaces,
		Members:     members,
		Modifiers:   mods,
		Annotations: annots,
		Doc:         doc,
		Permits:     permits,
	}, nil
}

func (p *Parser) parseInterfaceDeclaration(doc ast.Doc, mods []ast.Modifier, annots []*ast.Annotation) (ast.Decl, error) {
	start := p.cur.Current()
	if _, err := p.require("interface"); err != nil {
		return nil, err
	}
	name, _, err := p.requireIdent()
	if err != nil {
		return nil, err
	}
	typeParams, err := p.maybeParseTypeParameters()
	if err != nil {
		return nil, err
	}
	var interfaces []ast.TypeNode
	if p.cur.IsKeyword("extends") {
		interfaces, err = p.parseTypeList()
		if err != nil {
			return nil, err
		}
	}
	var permits []ast.TypeNode
	if p.cur.IsKeyword("permits") {
		permits, err = p.parseTypeList()
		if err != nil {
			return nil, err
		}
	}
	prevEnclosing := p.enclosingName
	p.enclosingName = name
	members, err := p.parseClassBody()
	p.enclosingName = prevEnclosing
	if err != nil {
		return nil, err
	}
	return &ast.InterfaceDeclaration{
		BaseNode:    finish(baseFrom(start), p.cur.Previous().End),
		Name:        name,
		TypeParams:  typeParams,
		Interfaces:  interfaces,
		Members:     members,
		Modifiers:   mods,
		Annotations: annots,
		Doc:         doc,
		Permits:     permits,
	}, nil
}

func (p *Parser) parseEnumDeclaration(doc ast.Doc, mods []ast.Modifier, annots []*ast.Annotation) (ast.Decl, error) {
	start := p.cur.Current()
	if _, err := p.require("enum"); err != nil {
		return nil, err
	}
	name, _, err := p.requireIdent()
	if err != nil {
		return nil, err
	}
	var interfaces []ast.TypeNode
	if p.cur.IsKeyword("implements") {
		interfaces, err = p.parseTypeList()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.require("{"); err != nil {
		return nil, err
	}
	prevEnclosing := p.enclosingName
	p.enclosingName = name
	fields, err := p.parseEnumFields()
	if err != nil {
		p.enclosingName = prevEnclosing
		return nil, err
	}
	var members []ast.Decl
	if p.cur.IsOp(";") {
		p.cur = p.cur.Advance()
		members, err = p.parseMemberList()
		if err != nil {
			p.enclosingName = prevEnclosing
			return nil, err
		}
	}
	p.enclosingName = prevEnclosing
	if _, err := p.require("}"); err != nil {
		return nil, err
	}
	return &ast.EnumDeclaration{
		BaseNode:    finish(baseFrom(start), p.cur.Previous().End),
		Name:        name,
		Interfaces:  interfaces,
		Fields:      fields,
		Members:     members,
		Modifiers:   mods,
		Annotations: annots,
		Doc:         doc,
	}, nil
}

func (p *Parser) parseEnumFields() ([]*ast.EnumField, error) {
	var fields []*ast.EnumField
	for p.cur.IsKind(token.NAME) && !token.Keywords[p.cur.Current().Text] {
		start := p.cur.Current()
		doc := p.takeDoc()
		var annots []*ast.Annotation
		for p.cur.IsOp("@") {
			a, err := p.parseAnnotation()
			if err != nil {
				return nil, err
			}
			annots = append(annots, a)
		}
		name, _, err := p.requireIdent()
		if err != nil {
			return nil, err
		}
		var args []ast.Expression
		if p.cur.IsOp("(") {
			args, err = p.parseCallArgs()
			if err != nil {
				return nil, err
			}
		}
		var members []ast.Decl
		if p.cur.IsOp("{") {
			members, err = p.parseClassBody()
			if err != nil {
				return nil, err
			}
		}
		fields = append(fields, &ast.EnumField{
			BaseNode:    finish(baseFrom(start), p.cur.Previous().End),
			Name:        name,
			Args:        args,
			Members:     members,
			Annotations: annots,
			Doc:         doc,
		})
		if p.cur.Is(",") {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	return fields, nil
}

func (p *Parser) parseAnnotationDeclaration(doc ast.Doc, mods []ast.Modifier, annots []*ast.Annotation) (ast.Decl, error) {
	start := p.cur.Current()
	if _, err := p.require("@"); err != nil {
		return nil, err
	}
	if _, err := p.require("interface"); err != nil {
		return nil, err
	}
	name, _, err := p.requireIdent()
	if err != nil {
		return nil, err
	}
	members, err := p.parseAnnotationBody()
	if err != nil {
		return nil, err
	}
	return &ast.AnnotationDeclaration{
		BaseNode:    finish(baseFrom(start), p.cur.Previous().End),
		Name:        name,
		Members:     members,
		Modifiers:   mods,
		Annotations: annots,
		Doc:         doc,
	}, nil
}

func (p *Parser) parseAnnotationBody() ([]ast.Decl, error) {
	if _, err := p.require("{"); err != nil {
		return nil, err
	}
	var members []ast.Decl
	for !p.cur.IsOp("}") {
		if p.cur.IsOp(";") {
			p.cur = p.cur.Advance()
			continue
		}
		m, err := p.parseAnnotationMember()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if _, err := p.require("}"); err != nil {
		return nil, err
	}
	return members, nil
}

// parseAnnotationMember parses one @interface body member: a property
// (`Type name() [default v];`), or a nested type declaration.
func (p *Parser) parseAnnotationMember() (ast.Decl, error) {
	start := p.cur.Current()
	doc := p.takeDoc()
	mods, annots, err := p.parseModsAndAnnotations()
	if err != nil {
		return nil, err
	}
	if nested, ok, err := p.tryParseNestedTypeDecl(doc, mods, annots); ok || err != nil {
		return nested, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, _, err := p.requireIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.require("("); err != nil {
		return nil, err
	}
	if _, err := p.require(")"); err != nil {
		return nil, err
	}
	dims, err := p.parseArrayDimensionsOpt()
	if err != nil {
		return nil, err
	}
	var def ast.Expression
	if p.cur.IsKeyword("default") {
		p.cur = p.cur.Advance()
		def, err = p.parseAnnotationValue()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.AnnotationProperty{
		BaseNode:   finish(baseFrom(start), p.cur.Previous().End),
		Type:       typ,
		Name:       name,
		Default:    def,
		Dimensions: dims,
		Modifiers:  mods,
		Doc:        doc,
	}, nil
}

// --- module-info.java ---------------------------------------------------

func (p *Parser) parseModuleCompilationUnit(start token.Token, doc ast.Doc, annots []*ast.Annotation, imports []*ast.Import) (ast.Node, error) {
	open := false
	if p.cur.IsKeyword("open") {
		open = true
		p.cur = p.cur.Advance()
	}
	if _, err := p.require("module"); err != nil {
		return nil, err
	}
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	if _, err := p.require("{"); err != nil {
		return nil, err
	}
	var members []ast.Directive
	for !p.cur.IsOp("}") {
		d, err := p.parseModuleDirective()
		if err != nil {
			return nil, err
		}
		members = append(members, d)
	}
	if _, err := p.require("}"); err != nil {
		return nil, err
	}
	return &ast.ModuleCompilationUnit{
		BaseNode:    finish(baseFrom(start), p.cur.Previous().End),
		Name:        name,
		Open:        open,
		Imports:     imports,
		Annotations: annots,
		Doc:         doc,
		Members:     members,
	}, nil
}

// --- class/interface body -------------------------------------------------

func (p *Parser) parseClassBody() ([]ast.Decl, error) {
	if _, err := p.require("{"); err != nil {
		return nil, err
	}
	members, err := p.parseMemberList()
	if err != nil {
		return nil, err
	}
	if _, err := p.require("}"); err != nil {
		return nil, err
	}
	return members, nil
}

func (p *Parser) parseMemberList() ([]ast.Decl, error) {
	var members []ast.Decl
	for !p.cur.IsOp("}") {
		if p.cur.IsOp(";") {
			p.cur = p.cur.Advance()
			continue
		}
		m, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		if m != nil {
			members = append(members, m)
		}
	}
	return members, nil
}

// tryParseNestedTypeDecl dispatches to a nested type declaration if the
// current token starts one, reporting ok=false (no error) if it doesn't so
// the caller can continue trying member-shaped alternatives.
func (p *Parser) tryParseNestedTypeDecl(doc ast.Doc, mods []ast.Modifier, annots []*ast.Annotation) (ast.Decl, bool, error) {
	switch {
	case p.cur.Is("class"):
		d, err := p.parseClassDeclaration(doc, mods, annots)
		return d, true, err
	case p.cur.Is("interface"):
		d, err := p.parseInterfaceDeclaration(doc, mods, annots)
		return d, true, err
	case p.cur.Is("enum"):
		d, err := p.parseEnumDeclaration(doc, mods, annots)
		return d, true, err
	case p.cur.IsOp("@") && p.cur.Peek(1).Is("interface"):
		d, err := p.parseAnnotationDeclaration(doc, mods, annots)
		return d, true, err
	default:
		return nil, false, nil
	}
}

// parseMember dispatches one class/interface body member: a static or
// instance initializer block, a nested type declaration, a constructor, a
// field declaration, or a method declaration (spec §4.3's disambiguation
// table).
func (p *Parser) parseMember() (ast.Decl, error) {
	start := p.cur.Current()
	doc := p.takeDoc()
	mods, annots, err := p.parseModsAndAnnotations()
	if err != nil {
		return nil, err
	}

	if nested, ok, err := p.tryParseNestedTypeDecl(doc, mods, annots); ok || err != nil {
		return nested, err
	}

	if p.cur.IsOp("{") {
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.InitializerBlock{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Body: body, Static: hasModifier(mods, "static")}, nil
	}

	var typeParams []*ast.TypeParameter
	if p.cur.IsOp("<") {
		typeParams, err = p.parseTypeParameters()
		if err != nil {
			return nil, err
		}
	}

	// A constructor looks like `Name(` with no return type at all.
	if p.cur.IsKind(token.NAME) && p.cur.Current().Text == p.enclosingName && p.cur.Peek(1).Is("(") {
		return p.parseConstructorDeclaration(start, doc, mods, annots, typeParams)
	}

	var retType ast.TypeNode
	if p.cur.IsKeyword("void") {
		p.cur = p.cur.Advance()
		retType = &ast.VoidType{BaseNode: finish(baseFrom(start), p.cur.Previous().End)}
	} else {
		retType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	name, _, err := p.requireIdent()
	if err != nil {
		return nil, err
	}

	if p.cur.IsOp("(") {
		return p.parseMethodDeclaration(start, doc, mods, annots, typeParams, retType, name)
	}
	return p.parseFieldDeclaration(start, doc, mods, annots, retType, name)
}

func hasModifier(mods []ast.Modifier, name string) bool {
	for _, m := range mods {
		if m.Name == name {
			return true
		}
	}
	return false
}

func (p *Parser) parseConstructorDeclaration(start token.Token, doc ast.Doc, mods []ast.Modifier, annots []*ast.Annotation, typeParams []*ast.TypeParameter) (ast.Decl, error) {
	name, _, err := p.requireIdent()
	if err != nil {
		return nil, err
	}
	params, err := p.parseFormalParameterList()
	if err != nil {
		return nil, err
	}
	var throws []ast.TypeNode
	if p.cur.IsKeyword("throws") {
		throws, err = p.parseTypeList()
		if err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ConstructorDeclaration{
		BaseNode:    finish(baseFrom(start), p.cur.Previous().End),
		Name:        name,
		TypeParams:  typeParams,
		Params:      params,
		Throws:      throws,
		Body:        body,
		Modifiers:   mods,
		Annotations: annots,
		Doc:         doc,
	}, nil
}

func (p *Parser) parseMethodDeclaration(start token.Token, doc ast.Doc, mods []ast.Modifier, annots []*ast.Annotation, typeParams []*ast.TypeParameter, retType ast.TypeNode, name string) (ast.Decl, error) {
	params, err := p.parseFormalParameterList()
	if err != nil {
		return nil, err
	}
	dims, err := p.parseArrayDimensionsOpt()
	if err != nil {
		return nil, err
	}
	if len(dims) > 0 {
		retType = &ast.ArrayType{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Base: retType, Dimensions: dims}
	}
	var throws []ast.TypeNode
	if p.cur.IsKeyword("throws") {
		throws, err = p.parseTypeList()
		if err != nil {
			return nil, err
		}
	}
	var body *ast.Block
	if p.cur.IsOp("{") {
		body, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	} else {
		if _, err := p.require(";"); err != nil {
			return nil, err
		}
	}
	return &ast.FunctionDeclaration{
		BaseNode:    finish(baseFrom(start), p.cur.Previous().End),
		Name:        name,
		ReturnType:  retType,
		TypeParams:  typeParams,
		Params:      params,
		Throws:      throws,
		Body:        body,
		Modifiers:   mods,
		Annotations: annots,
		Doc:         doc,
	}, nil
}

func (p *Parser) parseFieldDeclaration(start token.Token, doc ast.Doc, mods []ast.Modifier, annots []*ast.Annotation, typ ast.TypeNode, firstName string) (ast.Decl, error) {
	var decls []*ast.VariableDeclarator
	dims, err := p.parseArrayDimensionsOpt()
	if err != nil {
		return nil, err
	}
	var init ast.Expression
	if p.cur.IsOp("=") {
		p.cur = p.cur.Advance()
		if p.cur.IsOp("{") {
			init, err = p.parseArrayInitializer()
		} else {
			init, err = p.parseExpression(precAssignment)
		}
		if err != nil {
			return nil, err
		}
	}
	decls = append(decls, &ast.VariableDeclarator{
		BaseNode:   finish(ast.BaseNode{Start: start.Start}, p.cur.Previous().End),
		Name:       firstName,
		Init:       init,
		Dimensions: dims,
	})
	for p.cur.Is(",") {
		p.cur = p.cur.Advance()
		d, err := p.parseVariableDeclarator()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.FieldDeclaration{
		BaseNode:    finish(baseFrom(start), p.cur.Previous().End),
		Type:        typ,
		Declarators: decls,
		Modifiers:   mods,
		Annotations: annots,
		Doc:         doc,
	}, nil
}

// --- shared helpers --------------------------------------------------------

func (p *Parser) maybeParseTypeParameters() ([]*ast.TypeParameter, error) {
	if !p.cur.IsOp("<") {
		return nil, nil
	}
	return p.parseTypeParameters()
}

func (p *Parser) parseTypeList() ([]ast.TypeNode, error) {
	p.cur = p.cur.Advance() // the introducing keyword: extends/implements/permits
	var types []ast.TypeNode
	for {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
		if p.cur.Is(",") {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	return types, nil
}

// parseFormalParameterList parses `(params)`, enforcing that a variadic
// parameter (if any) is last and that an explicit receiver parameter
// (`Outer.this`), if present, is first (spec §4.3 invariants).
func (p *Parser) parseFormalParameterList() ([]*ast.FormalParameter, error) {
	if _, err := p.require("("); err != nil {
		return nil, err
	}
	var params []*ast.FormalParameter
	seenVariadic := false
	first := true
	if !p.cur.IsOp(")") {
		for {
			if _, err := speculate(p, (*Parser).tryParseThisParameter); err == nil {
				if !first {
					return nil, p.errHere(ErrMisplacedThisParam, "a receiver parameter must be the first parameter")
				}
				// An explicit receiver parameter only restates the
				// enclosing type; it is validated for placement here and
				// otherwise discarded rather than threaded into the
				// FormalParameter slice.
			} else {
				if seenVariadic {
					return nil, p.errHere(ErrMisplacedVariadic, "a variadic parameter must be the last parameter")
				}
				param, err := p.parseFormalParameter()
				if err != nil {
					return nil, err
				}
				if param.Variadic {
					seenVariadic = true
				}
				params = append(params, param)
			}
			first = false
			if p.cur.Is(",") {
				p.cur = p.cur.Advance()
				continue
			}
			break
		}
	}
	if _, err := p.require(")"); err != nil {
		return nil, err
	}
	return params, nil
}

// tryParseThisParameter attempts an explicit receiver parameter (JLS 8.4.1):
// a Type, then an optional `Identifier .` qualifier, then `this`. It is tried
// speculatively because an ordinary parameter also opens with a Type, and
// only the presence of `this` afterward tells them apart.
func (p *Parser) tryParseThisParameter() (*ast.ThisParameter, error) {
	start := p.cur.Current()
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	qualifier := ""
	if first := p.cur.Peek(0); first.Kind == token.NAME && !token.Keywords[first.Text] && p.cur.Peek(1).Is(".") {
		qualifier, _ = p.requireIdentLoose()
		if _, err := p.require("."); err != nil {
			return nil, err
		}
	}
	if _, err := p.require("this"); err != nil {
		return nil, err
	}
	return &ast.ThisParameter{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Type: typ, Qualifier: qualifier}, nil
}

// requireIdentLoose consumes a NAME token without rejecting contextual
// keywords, used for the dotted qualifier ahead of `.this`.
func (p *Parser) requireIdentLoose() (string, token.Position) {
	cur := p.cur.Current()
	p.cur = p.cur.Advance()
	return cur.Text, cur.Start
}

func (p *Parser) parseFormalParameter() (*ast.FormalParameter, error) {
	start := p.cur.Current()
	mods, annots, err := p.parseModsAndAnnotations()
	if err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	variadic := false
	if p.cur.IsOp("...") {
		p.cur = p.cur.Advance()
		variadic = true
	}
	name, namePos, err := p.requireIdent()
	if err != nil {
		return nil, err
	}
	if err := p.requireNotVar(name, namePos); err != nil {
		return nil, err
	}
	dims, err := p.parseArrayDimensionsOpt()
	if err != nil {
		return nil, err
	}
	return &ast.FormalParameter{
		BaseNode:    finish(baseFrom(start), p.cur.Previous().End),
		Type:        typ,
		Name:        name,
		Variadic:    variadic,
		Dimensions:  dims,
		Modifiers:   mods,
		Annotations: annots,
	}, nil
}
