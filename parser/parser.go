// Package parser implements the hand-written recursive-descent Java parser
// described by spec.md/SPEC_FULL.md: a token Cursor (§4.1), an AST schema
// consumed from package ast, and ~90 mutually recursive grammar routines
// (§4.2-§4.5) producing a CompilationUnit or ModuleCompilationUnit. It does
// no name resolution, type checking, or error recovery: the first
// SyntaxError raised outside a speculative section halts parsing (§1).
package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/go-javaparser/ast"
	"github.com/cwbudde/go-javaparser/lexer"
	"github.com/cwbudde/go-javaparser/token"
)

// Parser holds a parse's mutable state: its cursor and the name of the type
// whose body is being parsed.
// It is not safe for concurrent use by multiple goroutines, but independent
// Parser instances share no state and may run fully in parallel (spec §5).
type Parser struct {
	cur      *Cursor
	filename string
	pre      preStatements

	// enclosingName is the simple name of the type whose body is currently
	// being parsed, used to recognize a constructor member (a method-shaped
	// declaration with no return type whose name matches it).
	enclosingName string
}

// New creates a Parser consuming l's token stream.
func New(l *lexer.Lexer, filename string) *Parser {
	return &Parser{cur: NewCursor(l), filename: filename}
}

// ParseSource is the byte-slice entry point (spec §6.2).
func ParseSource(src []byte, filename string) (ast.Node, error) {
	p := New(lexer.New(src, filename), filename)
	return p.ParseCompilationUnit()
}

// ParseStream is the io.Reader entry point (spec §6.2).
func ParseStream(r io.Reader, filename string) (ast.Node, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, err
	}
	return ParseSource(buf.Bytes(), filename)
}

// --- low-level helpers -----------------------------------------------------

func (p *Parser) errAt(pos token.Position, got string, code, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Message:  fmt.Sprintf(format, args...),
		Code:     code,
		Filename: p.filename,
		Line:     pos.Line,
		Column:   pos.Column,
		LineText: p.cur.Current().Line,
		Got:      got,
	}
}

func (p *Parser) errHere(code, format string, args ...interface{}) *SyntaxError {
	cur := p.cur.Current()
	return p.errAt(cur.Start, cur.Text, code, format, args...)
}

// require advances past the current token if it has the given text,
// otherwise raises the canonical "expected X got Y" SyntaxError (spec §4.6).
func (p *Parser) require(text string) (token.Token, error) {
	cur := p.cur.Current()
	if cur.Text == text && cur.Kind != token.ENDMARKER {
		tok := cur
		p.cur = p.cur.Advance()
		return tok, nil
	}
	return token.Token{}, p.errHere(ErrUnexpectedToken, "expected %q got %q", text, p.describe(cur))
}

func (p *Parser) requireKind(k token.Kind, what string) (token.Token, error) {
	cur := p.cur.Current()
	if cur.Kind == k {
		tok := cur
		p.cur = p.cur.Advance()
		return tok, nil
	}
	return token.Token{}, p.errHere(ErrUnexpectedToken, "expected %s got %q", what, p.describe(cur))
}

func (p *Parser) describe(t token.Token) string {
	if t.Kind == token.ENDMARKER {
		return "end of input"
	}
	return t.Text
}

// requireIdent consumes a NAME token that is not a reserved keyword.
func (p *Parser) requireIdent() (string, token.Position, error) {
	cur := p.cur.Current()
	if cur.Kind != token.NAME {
		return "", cur.Start, p.errHere(ErrExpectedIdent, "expected identifier got %q", p.describe(cur))
	}
	if token.Keywords[cur.Text] && cur.Text != "var" {
		// Contextual/reserved words are never valid simple identifiers
		// except 'var', whose legality is decided by requireNotVar at each
		// call site per spec invariant §3.3.
		return "", cur.Start, p.errHere(ErrExpectedIdent, "expected identifier got keyword %q", cur.Text)
	}
	p.cur = p.cur.Advance()
	return cur.Text, cur.Start, nil
}

// requireNotVar enforces spec invariant §3.3: 'var' (and any dotted name
// ending in ".var") is never legal as a type name.
func (p *Parser) requireNotVar(name string, pos token.Position) error {
	if name == "var" || strings.HasSuffix(name, ".var") {
		return p.errAt(pos, name, ErrVarAsTypeName, "'var' cannot be used as a type name")
	}
	return nil
}

// takeDoc returns the Javadoc attached to the declaration about to be
// parsed: the nearest comment immediately preceding the current token, if
// its text begins "/**" and is not the empty form "/**/" (spec §3.1, §8.11).
func (p *Parser) takeDoc() ast.Doc {
	c, ok := p.cur.PrecedingComment()
	if !ok {
		return ""
	}
	if strings.HasPrefix(c.Text, "/**") && c.Text != "/**/" {
		return c.Text
	}
	return ""
}

func finish(b ast.BaseNode, end token.Position) ast.BaseNode {
	b.Finish = end
	return b
}

func baseFrom(start token.Token) ast.BaseNode {
	return ast.BaseNode{Start: start.Start, Finish: start.End}
}

// --- top level --------------------------------------------------------

// ParseCompilationUnit parses an entire source file, producing either a
// *ast.CompilationUnit or a *ast.ModuleCompilationUnit (spec §4.2).
func (p *Parser) ParseCompilationUnit() (ast.Node, error) {
	start := p.cur.Current()
	doc := p.takeDoc()
	mods, annots, err := p.parseModsAndAnnotations()
	if err != nil {
		return nil, err
	}

	var pkg *ast.Package
	if len(mods) == 0 && p.cur.Is("package") {
		pkg, err = p.parsePackageDeclaration(doc, annots)
		if err != nil {
			return nil, err
		}
		doc = ""
		annots = nil
	} else if p.cur.Is("package") {
		return nil, p.errHere(ErrUnexpectedToken, "modifiers cannot precede a package declaration")
	}

	if (len(mods) != 0 || len(annots) != 0) && (p.cur.Is("import") || p.cur.Is("from")) {
		return nil, p.errHere(ErrModifiersBeforeImport, "expected 'class', 'interface', '@interface', or 'enum' here")
	}

	imports, err := p.parseImportSection()
	if err != nil {
		return nil, err
	}

	// Re-read mods/annotations for the first type/module declaration if none
	// were consumed above (spec §4.2 "awkward ordering").
	if len(mods) == 0 && len(annots) == 0 {
		doc = p.takeDoc()
		mods, annots, err = p.parseModsAndAnnotations()
		if err != nil {
			return nil, err
		}
	}

	if p.cur.Is("open") || p.cur.Is("module") {
		return p.parseModuleCompilationUnit(start, doc, annots, imports)
	}

	var types []ast.Decl
	for !p.cur.IsEOF() {
		td, err := p.parseTypeDeclaration(doc, mods, annots)
		if err != nil {
			return nil, err
		}
		if td != nil {
			types = append(types, td)
		}
		doc = p.takeDoc()
		mods, annots, err = p.parseModsAndAnnotations()
		if err != nil {
			return nil, err
		}
	}

	return &ast.CompilationUnit{
		BaseNode: finish(baseFrom(start), p.cur.Current().Start),
		Package:  pkg,
		Imports:  imports,
		Types:    types,
	}, nil
}

func (p *Parser) parsePackageDeclaration(doc ast.Doc, annots []*ast.Annotation) (*ast.Package, error) {
	start := p.cur.Current()
	if _, err := p.require("package"); err != nil {
		return nil, err
	}
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.Package{
		BaseNode:    finish(baseFrom(start), p.cur.Previous().End),
		Name:        name,
		Annotations: annots,
		Doc:         doc,
	}, nil
}

func (p *Parser) parseImportSection() ([]*ast.Import, error) {
	var imports []*ast.Import
	for p.cur.Is("import") {
		start := p.cur.Current()
		p.cur = p.cur.Advance()
		static := false
		if p.cur.Is("static") {
			static = true
			p.cur = p.cur.Advance()
		}
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		wildcard := false
		if p.cur.Is(".") && p.cur.Peek(1).IsOp("*") {
			p.cur = p.cur.Advance()
			p.cur = p.cur.Advance()
			wildcard = true
		}
		if _, err := p.require(";"); err != nil {
			return nil, err
		}
		imports = append(imports, &ast.Import{
			BaseNode: finish(baseFrom(start), p.cur.Previous().End),
			Name:     name,
			Static:   static,
			Wildcard: wildcard,
		})
	}
	return imports, nil
}

// parseQualifiedName parses a dotted identifier chain: a.b.c
func (p *Parser) parseQualifiedName() (string, error) {
	first, _, err := p.requireIdent()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(first)
	for p.cur.Is(".") && p.cur.Peek(1).Kind == token.NAME {
		p.cur = p.cur.Advance()
		part, _, err := p.requireIdent()
		if err != nil {
			return "", err
		}
		b.WriteString(".")
		b.WriteString(part)
	}
	return b.String(), nil
}

func (p *Parser) parseTypeDeclaration(doc ast.Doc, mods []ast.Modifier, annots []*ast.Annotation) (ast.Decl, error) {
	switch {
	case p.cur.Is(";"):
		p.cur = p.cur.Advance()
		return nil, nil
	case p.cur.Is("class"):
		return p.parseClassDeclaration(doc, mods, annots)
	case p.cur.Is("interface"):
		return p.parseInterfaceDeclaration(doc, mods, annots)
	case p.cur.Is("enum"):
		return p.parseEnumDeclaration(doc, mods, annots)
	case p.cur.Is("@") && p.cur.Peek(1).Is("interface"):
		return p.parseAnnotationDeclaration(doc, mods, annots)
	default:
		return nil, p.errHere(ErrUnexpectedToken, "expected a type declaration, got %q", p.describe(p.cur.Current()))
	}
}
