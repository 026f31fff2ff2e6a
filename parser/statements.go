package parser

import (
	"github.com/cwbudde/go-javaparser/ast"
	"github.com/cwbudde/go-javaparser/token"
)

// parseBlock parses a `{ stmt* }` statement list.
func (p *Parser) parseBlock() (*ast.Block, error) {
	start := p.cur.Current()
	if _, err := p.require("{"); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for !p.cur.IsOp("}") {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.require("}"); err != nil {
		return nil, err
	}
	return &ast.Block{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Statements: stmts}, nil
}

// parseStatement dispatches on the current token to the right statement
// grammar rule (spec §4.2-§4.5).
func (p *Parser) parseStatement() (ast.Statement, error) {
	cur := p.cur.Current()
	switch {
	case cur.IsOp(";"):
		p.cur = p.cur.Advance()
		return &ast.EmptyStatement{BaseNode: finish(baseFrom(cur), cur.End)}, nil
	case cur.IsOp("{"):
		return p.parseBlock()
	case cur.IsKeyword("if"):
		return p.parseIfStatement()
	case cur.IsKeyword("for"):
		return p.parseForStatement()
	case cur.IsKeyword("while"):
		return p.parseWhileStatement()
	case cur.IsKeyword("do"):
		return p.parseDoWhileStatement()
	case cur.IsKeyword("try"):
		return p.parseTryStatement()
	case cur.IsKeyword("switch"):
		sw, err := p.parseSwitch()
		if err != nil {
			return nil, err
		}
		return sw.(*ast.Switch), nil
	case cur.IsKeyword("return"):
		return p.parseReturnStatement()
	case cur.IsKeyword("throw"):
		return p.parseThrowStatement()
	case cur.IsKeyword("break"):
		return p.parseBreakStatement()
	case cur.IsKeyword("continue"):
		return p.parseContinueStatement()
	case cur.IsKeyword("yield") && p.startsExpressionAt(p.cur.Peek(1)):
		return p.parseYieldStatement()
	case cur.IsKeyword("assert"):
		return p.parseAssertStatement()
	case cur.IsKeyword("synchronized"):
		return p.parseSynchronizedBlock()
	case cur.IsKeyword("this") && p.cur.Peek(1).Is("("):
		return p.parseThisCallStatement()
	case cur.IsKeyword("super") && p.cur.Peek(1).Is("("):
		return p.parseSuperCallStatement()
	case cur.Kind == token.NAME && p.cur.Peek(1).Is(":") && !token.Keywords[cur.Text]:
		return p.parseLabeledStatement()
	case token.Modifiers[cur.Text] && cur.Kind == token.NAME:
		return p.parseLocalVarDeclStatement()
	case cur.IsOp("@"):
		return p.parseLocalVarDeclStatement()
	case cur.Kind == token.NAME && token.PrimitiveNames[cur.Text]:
		return p.parseLocalVarDeclStatement()
	case cur.IsKeyword("var") && p.cur.Peek(1).Kind == token.NAME:
		return p.parseLocalVarDeclStatement()
	default:
		return p.parseExpressionOrLocalVarStatement()
	}
}

func (p *Parser) startsExpressionAt(t token.Token) bool {
	return p.startsUnaryOperand(t)
}

func (p *Parser) parseIfStatement() (ast.Statement, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	if _, err := p.require("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}
	if _, err := p.require(")"); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var els ast.Statement
	if p.cur.IsKeyword("else") {
		p.cur = p.cur.Advance()
		els, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStatement{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Condition: cond, Then: then, Else: els}, nil
}

// parseForStatement implements speculation site 4: after '(', speculatively
// try the enhanced-for header (`Type name : iterable`) before falling back
// to the classic `init; cond; update` header (spec §4.4, §8 property 4).
func (p *Parser) parseForStatement() (ast.Statement, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	if _, err := p.require("("); err != nil {
		return nil, err
	}
	if !p.cur.IsOp(";") {
		if ctrl, err := speculate(p, (*Parser).tryParseEnhancedForControl); err == nil {
			if _, err := p.require(")"); err != nil {
				return nil, err
			}
			body, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			return &ast.ForLoop{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Control: ctrl, Body: body}, nil
		}
	}
	ctrl, err := p.parseClassicForControl()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(")"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ForLoop{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Control: ctrl, Body: body}, nil
}

func (p *Parser) tryParseEnhancedForControl() (ast.ForControlNode, error) {
	start := p.cur.Current()
	mods, annots, err := p.parseModsAndAnnotations()
	if err != nil {
		return nil, err
	}
	typ, err := p.parseLocalVarOrEnhancedForType()
	if err != nil {
		return nil, err
	}
	name, namePos, err := p.requireIdent()
	if err != nil {
		return nil, err
	}
	if _, isVar := typ.(*ast.GenericType); !isVar || typ.(*ast.GenericType).Name != "var" {
		if err := p.requireNotVar(name, namePos); err != nil {
			return nil, err
		}
	}
	if !p.cur.IsOp(":") {
		return nil, p.errHere(ErrUnexpectedToken, "not an enhanced for: expected ':'")
	}
	p.cur = p.cur.Advance()
	iterable, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}
	return &ast.EnhancedForControl{
		BaseNode: finish(baseFrom(start), iterable.End()),
		Var: &ast.FormalParameter{
			BaseNode:    finish(baseFrom(start), namePos),
			Type:        typ,
			Name:        name,
			Modifiers:   mods,
			Annotations: annots,
		},
		Iterable: iterable,
	}, nil
}

func (p *Parser) parseClassicForControl() (ast.ForControlNode, error) {
	start := p.cur.Current()
	var init []ast.Statement
	if !p.cur.IsOp(";") {
		stmt, err := p.parseForInitStatement()
		if err != nil {
			return nil, err
		}
		init = append(init, stmt)
	} else {
		if _, err := p.require(";"); err != nil {
			return nil, err
		}
	}
	var cond ast.Expression
	if !p.cur.IsOp(";") {
		var err error
		cond, err = p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	var update []ast.Expression
	if !p.cur.IsOp(")") {
		for {
			e, err := p.parseExpression(precAssignment)
			if err != nil {
				return nil, err
			}
			update = append(update, e)
			if p.cur.Is(",") {
				p.cur = p.cur.Advance()
				continue
			}
			break
		}
	}
	return &ast.ForControl{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Init: init, Condition: cond, Update: update}, nil
}

// parseForInitStatement parses the single init clause of a classic for
// header: either a local variable declaration (without its own trailing
// consumption of ';' beyond the one the for-header already expects) or one
// or more comma-separated expression statements.
func (p *Parser) parseForInitStatement() (ast.Statement, error) {
	cur := p.cur.Current()
	if looksLikeLocalVarDecl(p, cur) {
		return p.parseLocalVarDeclHeader()
	}
	if decl, err := speculate(p, (*Parser).tryParseLocalVarDecl); err == nil {
		return decl, nil
	}
	start := p.cur.Current()
	var exprs []ast.Expression
	for {
		e, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if p.cur.Is(",") {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	if len(exprs) == 1 {
		return &ast.ExpressionStatement{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Expr: exprs[0]}, nil
	}
	// Multiple comma-joined init expressions: represent as a block of
	// expression statements, matching how the enclosing ForControl.Init
	// slice is consumed (one Statement per clause).
	stmts := make([]ast.Statement, len(exprs))
	for i, e := range exprs {
		stmts[i] = &ast.ExpressionStatement{BaseNode: ast.BaseNode{Start: e.Pos(), Finish: e.End()}, Expr: e}
	}
	return &ast.Block{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Statements: stmts}, nil
}

func (p *Parser) parseWhileStatement() (ast.Statement, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	if _, err := p.require("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}
	if _, err := p.require(")"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileLoop{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Condition: cond, Body: body}, nil
}

func (p *Parser) parseDoWhileStatement() (ast.Statement, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.require("while"); err != nil {
		return nil, err
	}
	if _, err := p.require("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}
	if _, err := p.require(")"); err != nil {
		return nil, err
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.DoWhileLoop{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Body: body, Condition: cond}, nil
}

// parseTryStatement handles plain try, try-with-resources (speculation site
// 5 decides whether each resource entry is a typed declaration or a bare
// expression), catch clauses (including multi-catch `A | B e`), and finally.
func (p *Parser) parseTryStatement() (ast.Statement, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	var resources []*ast.TryResource
	if p.cur.IsOp("(") {
		p.cur = p.cur.Advance()
		for {
			res, err := p.parseTryResource()
			if err != nil {
				return nil, err
			}
			resources = append(resources, res)
			if p.cur.Is(";") && !p.cur.Peek(1).Is(")") {
				p.cur = p.cur.Advance()
				continue
			}
			if p.cur.Is(";") {
				p.cur = p.cur.Advance()
			}
			break
		}
		if _, err := p.require(")"); err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var catches []*ast.CatchClause
	for p.cur.IsKeyword("catch") {
		c, err := p.parseCatchClause()
		if err != nil {
			return nil, err
		}
		catches = append(catches, c)
	}
	var finallyBody *ast.Block
	if p.cur.IsKeyword("finally") {
		p.cur = p.cur.Advance()
		finallyBody, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	if len(resources) == 0 && len(catches) == 0 && finallyBody == nil {
		return nil, p.errHere(ErrEmptyTryStatement, "'try' must have resources, a catch, or a finally")
	}
	return &ast.TryStatement{
		BaseNode:    finish(baseFrom(start), p.cur.Previous().End),
		Resources:   resources,
		Catches:     catches,
		Body:        body,
		FinallyBody: finallyBody,
	}, nil
}

// parseTryResource implements speculation site 5: a resource entry is
// either a typed declaration (`Type r = expr`, `var r = expr`, or a final
// modifier/annotation-qualified form) or a bare expression referring to an
// existing variable.
func (p *Parser) parseTryResource() (*ast.TryResource, error) {
	if res, err := speculate(p, (*Parser).tryParseTypedResource); err == nil {
		return res, nil
	}
	start := p.cur.Current()
	expr, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}
	return &ast.TryResource{BaseNode: finish(baseFrom(start), expr.End()), Init: expr}, nil
}

func (p *Parser) tryParseTypedResource() (*ast.TryResource, error) {
	start := p.cur.Current()
	mods, annots, err := p.parseModsAndAnnotations()
	if err != nil {
		return nil, err
	}
	typ, err := p.parseLocalVarOrEnhancedForType()
	if err != nil {
		return nil, err
	}
	name, namePos, err := p.requireIdent()
	if err != nil {
		return nil, err
	}
	if gt, ok := typ.(*ast.GenericType); !ok || gt.Name != "var" {
		if err := p.requireNotVar(name, namePos); err != nil {
			return nil, err
		}
	}
	if _, err := p.require("="); err != nil {
		return nil, err
	}
	init, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}
	return &ast.TryResource{
		BaseNode:    finish(baseFrom(start), init.End()),
		Type:        typ,
		Name:        name,
		Init:        init,
		Modifiers:   mods,
		Annotations: annots,
	}, nil
}

func (p *Parser) parseCatchClause() (*ast.CatchClause, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	if _, err := p.require("("); err != nil {
		return nil, err
	}
	mods, annots, err := p.parseModsAndAnnotations()
	if err != nil {
		return nil, err
	}
	first, err := p.parseType()
	if err != nil {
		return nil, err
	}
	var typ ast.TypeNode = first
	if p.cur.IsOp("|") {
		types := []ast.TypeNode{first}
		for p.cur.IsOp("|") {
			p.cur = p.cur.Advance()
			t, err := p.parseType()
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
		typ = &ast.TypeIntersection{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Types: types}
	}
	name, _, err := p.requireIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.CatchClause{
		BaseNode: finish(baseFrom(start), p.cur.Previous().End),
		Var: &ast.CatchVar{
			BaseNode:    finish(baseFrom(start), p.cur.Previous().End),
			Type:        typ,
			Name:        name,
			Modifiers:   mods,
			Annotations: annots,
		},
		Body: body,
	}, nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	var value ast.Expression
	if !p.cur.IsOp(";") {
		var err error
		value, err = p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Value: value}, nil
}

func (p *Parser) parseThrowStatement() (ast.Statement, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	value, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.ThrowStatement{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Value: value}, nil
}

func (p *Parser) parseBreakStatement() (ast.Statement, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	label := ""
	if p.cur.Current().Kind == token.NAME && !token.Keywords[p.cur.Current().Text] {
		label = p.cur.Current().Text
		p.cur = p.cur.Advance()
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.BreakStatement{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Label: label}, nil
}

func (p *Parser) parseContinueStatement() (ast.Statement, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	label := ""
	if p.cur.Current().Kind == token.NAME && !token.Keywords[p.cur.Current().Text] {
		label = p.cur.Current().Text
		p.cur = p.cur.Advance()
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.ContinueStatement{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Label: label}, nil
}

func (p *Parser) parseYieldStatement() (ast.Statement, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	value, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.YieldStatement{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Value: value}, nil
}

func (p *Parser) parseAssertStatement() (ast.Statement, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	cond, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}
	var msg ast.Expression
	if p.cur.Is(":") {
		p.cur = p.cur.Advance()
		msg, err = p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.AssertStatement{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Condition: cond, Message: msg}, nil
}

func (p *Parser) parseSynchronizedBlock() (ast.Statement, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	if _, err := p.require("("); err != nil {
		return nil, err
	}
	lock, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}
	if _, err := p.require(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.SynchronizedBlock{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Lock: lock, Body: body}, nil
}

// parseThisCallStatement and parseSuperCallStatement handle the constructor
// statement forms `this(args);` / `super(args);`. Java allows these only as
// a constructor body's first statement; the parser accepts them at any
// statement position and does not check that.
func (p *Parser) parseThisCallStatement() (ast.Statement, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	args, err := p.parseCallArgs()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	call := &ast.ThisCall{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Args: args}
	return &ast.ExpressionStatement{BaseNode: call.BaseNode, Expr: call}, nil
}

func (p *Parser) parseSuperCallStatement() (ast.Statement, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	args, err := p.parseCallArgs()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	call := &ast.SuperCall{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Args: args}
	return &ast.ExpressionStatement{BaseNode: call.BaseNode, Expr: call}, nil
}

func (p *Parser) parseLabeledStatement() (ast.Statement, error) {
	start := p.cur.Current()
	label, _, err := p.requireIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(":"); err != nil {
		return nil, err
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.LabeledStatement{BaseNode: finish(baseFrom(start), stmt.End()), Label: label, Stmt: stmt}, nil
}

// --- local-variable-decl vs. expression-statement (speculation site 3) -----

// looksLikeLocalVarDecl is a cheap syntactic pre-filter: true when the
// current token obviously starts a type (a modifier, annotation, primitive
// name, or 'var'). It does not by itself prove a declaration is present —
// `Foo.bar()` also starts with a NAME — so ordinary identifiers still go
// through the full speculative attempt.
func looksLikeLocalVarDecl(p *Parser, cur token.Token) bool {
	if token.Modifiers[cur.Text] && cur.Kind == token.NAME {
		return true
	}
	if cur.IsOp("@") {
		return true
	}
	if cur.Kind == token.NAME && token.PrimitiveNames[cur.Text] {
		return true
	}
	if cur.IsKeyword("var") && p.cur.Peek(1).Kind == token.NAME {
		return true
	}
	return false
}

func (p *Parser) parseLocalVarDeclStatement() (ast.Statement, error) {
	decl, err := p.parseLocalVarDeclHeader()
	if err != nil {
		return nil, err
	}
	return decl, nil
}

// parseExpressionOrLocalVarStatement implements speculation site 3: plain
// identifiers could start either `Foo x = ...;` (a declaration) or
// `Foo.bar();` (an expression statement), so try the declaration first and
// fall back to an expression statement on failure (spec §4.4, §8 property
// 3).
func (p *Parser) parseExpressionOrLocalVarStatement() (ast.Statement, error) {
	if decl, err := speculate(p, (*Parser).tryParseLocalVarDecl); err == nil {
		return decl, nil
	}
	start := p.cur.Current()
	expr, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Expr: expr}, nil
}

func (p *Parser) tryParseLocalVarDecl() (ast.Statement, error) {
	return p.parseLocalVarDeclHeader()
}

// parseLocalVarDeclHeader parses `[mods] Type name [= init] (, name [=
// init])* ;`, including the `var` form built directly from
// parseLocalVarOrEnhancedForType (spec invariant §3.3: 'var' never goes
// through parseGenericTypeChain).
func (p *Parser) parseLocalVarDeclHeader() (*ast.VariableDeclaration, error) {
	start := p.cur.Current()
	mods, annots, err := p.parseModsAndAnnotations()
	if err != nil {
		return nil, err
	}
	typ, err := p.parseLocalVarOrEnhancedForType()
	if err != nil {
		return nil, err
	}
	isVar := false
	if gt, ok := typ.(*ast.GenericType); ok && gt.Name == "var" {
		isVar = true
	}
	var decls []*ast.VariableDeclarator
	for {
		d, err := p.parseVariableDeclarator()
		if err != nil {
			return nil, err
		}
		if !isVar {
			if err := p.requireNotVar(d.Name, d.Start); err != nil {
				return nil, err
			}
		}
		decls = append(decls, d)
		if p.cur.Is(",") {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	if _, err := p.require(";"); err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{
		BaseNode:    finish(baseFrom(start), p.cur.Previous().End),
		Type:        typ,
		Declarators: decls,
		Modifiers:   mods,
		Annotations: annots,
	}, nil
}

// parseLocalVarOrEnhancedForType parses the type header of a local variable
// declaration or an enhanced-for loop variable. Unlike parseType, this
// recognizes the bare keyword 'var' and builds its GenericType node
// directly, never routing it through parseGenericTypeChain (which
// unconditionally rejects the name "var" as spec invariant §3.3 requires
// everywhere else a type name can appear).
func (p *Parser) parseLocalVarOrEnhancedForType() (ast.TypeNode, error) {
	cur := p.cur.Current()
	if cur.IsKeyword("var") && p.cur.Peek(1).Kind == token.NAME {
		p.cur = p.cur.Advance()
		return &ast.GenericType{BaseNode: finish(baseFrom(cur), cur.End), Name: "var"}, nil
	}
	return p.parseType()
}

func (p *Parser) parseVariableDeclarator() (*ast.VariableDeclarator, error) {
	start := p.cur.Current()
	name, _, err := p.requireIdent()
	if err != nil {
		return nil, err
	}
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
	return &ast.VariableDeclarator{
		BaseNode:   finish(baseFrom(start), p.cur.Previous().End),
		Name:       name,
		Init:       init,
		Dimensions: dims,
	}, nil
}
