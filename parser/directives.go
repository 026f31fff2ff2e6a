package parser

import "github.com/cwbudde/go-javaparser/ast"

// parseModuleDirective parses one member of a module-info.java body: one of
// requires/exports/opens/uses/provides (spec §3.2, §4.2).
func (p *Parser) parseModuleDirective() (ast.Directive, error) {
	doc := p.takeDoc()
	switch {
	case p.cur.IsKeyword("requires"):
		return p.parseRequiresDirective(doc)
	case p.cur.IsKeyword("exports"):
		return p.parseExportsDirective(doc)
	case p.cur.IsKeyword("opens"):
		return p.parseOpensDirective(doc)
	case p.cur.IsKeyword("uses"):
		return p.parseUsesDirective(doc)
	case p.cur.IsKeyword("provides"):
		return p.parseProvidesDirective(doc)
	default:
		return nil, p.errHere(ErrUnexpectedToken, "expected a module directive, got %q", p.describe(p.cur.Current()))
	}
}

// parseRequiresDirective parses `requires [transitive] [static] name;`. The
// target is a plain module name, not a type name, so it is exempt from the
// 'var' check (SPEC_FULL.md: only uses/provides/generic-type check for var).
func (p *Parser) parseRequiresDirective(doc ast.Doc) (*ast.Requires, error) {
	start := p.cur.Current()
	if _, err := p.require("requires"); err != nil {
		return nil, err
	}
	var mods []ast.Modifier
	for {
		tok := p.cur.Current()
		if tok.IsKeyword("transitive") || tok.IsKeyword("static") {
			mods = append(mods, ast.Modifier{BaseNode: baseFrom(tok), Name: tok.Text})
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.Requires{
		BaseNode:  finish(baseFrom(start), p.cur.Previous().End),
		Name:      name,
		Modifiers: mods,
		Doc:       doc,
	}, nil
}

// parseExportsDirective parses `exports p [to q, r, ...];`.
func (p *Parser) parseExportsDirective(doc ast.Doc) (*ast.Exports, error) {
	start := p.cur.Current()
	if _, err := p.require("exports"); err != nil {
		return nil, err
	}
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	to, err := p.parseOptionalToClause()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.Exports{
		BaseNode: finish(baseFrom(start), p.cur.Previous().End),
		Name:     name,
		To:       to,
		Doc:      doc,
	}, nil
}

// parseOpensDirective parses `opens p [to q, r, ...];`.
func (p *Parser) parseOpensDirective(doc ast.Doc) (*ast.Opens, error) {
	start := p.cur.Current()
	if _, err := p.require("opens"); err != nil {
		return nil, err
	}
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	to, err := p.parseOptionalToClause()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.Opens{
		BaseNode: finish(baseFrom(start), p.cur.Previous().End),
		Name:     name,
		To:       to,
		Doc:      doc,
	}, nil
}

func (p *Parser) parseOptionalToClause() ([]string, error) {
	if !p.cur.IsKeyword("to") {
		return nil, nil
	}
	p.cur = p.cur.Advance()
	var to []string
	for {
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		to = append(to, name)
		if p.cur.IsOp(",") {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	return to, nil
}

// parseUsesDirective parses `uses p.Service;`. The service name is a type
// name and so is subject to the 'var' check.
func (p *Parser) parseUsesDirective(doc ast.Doc) (*ast.Uses, error) {
	start := p.cur.Current()
	if _, err := p.require("uses"); err != nil {
		return nil, err
	}
	namePos := p.cur.Current().Start
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	if err := p.requireNotVar(name, namePos); err != nil {
		return nil, err
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.Uses{
		BaseNode: finish(baseFrom(start), p.cur.Previous().End),
		Name:     name,
		Doc:      doc,
	}, nil
}

// parseProvidesDirective parses `provides p.Service with p.Impl1, p.Impl2;`.
// Both the service name and each implementation name are type names, so both
// are subject to the 'var' check.
func (p *Parser) parseProvidesDirective(doc ast.Doc) (*ast.Provides, error) {
	start := p.cur.Current()
	if _, err := p.require("provides"); err != nil {
		return nil, err
	}
	namePos := p.cur.Current().Start
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	if err := p.requireNotVar(name, namePos); err != nil {
		return nil, err
	}
	if _, err := p.require("with"); err != nil {
		return nil, err
	}
	var impls []string
	for {
		implPos := p.cur.Current().Start
		impl, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		if err := p.requireNotVar(impl, implPos); err != nil {
			return nil, err
		}
		impls = append(impls, impl)
		if p.cur.IsOp(",") {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.Provides{
		BaseNode: finish(baseFrom(start), p.cur.Previous().End),
		Name:     name,
		Provides: impls,
		Doc:      doc,
	}, nil
}
