package parser

import (
	"github.com/cwbudde/go-javaparser/ast"
	"github.com/cwbudde/go-javaparser/token"
)

// Precedence levels, low to high (spec §4.4). Each parse method for level L
// calls the parser for the next-tighter level for its operands.
const (
	precAssignment = iota
	precConditional
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precComparison
	precShift
	precAdditive
	precMultiplicative
	precUnary
	precPostfix
	precPrimary
)

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, ">>=": true, ">>>=": true,
}

// parseExpression is the general expression entry point. A minPrec of
// precAssignment or lower parses a full expression including assignment;
// a higher minPrec starts at the conditional/lambda level. Every call site
// in this package passes precAssignment.
func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	if minPrec <= precAssignment {
		return p.parseAssignment()
	}
	return p.parseConditionalOrLambda()
}

func (p *Parser) parseAssignment() (ast.Expression, error) {
	lhs, err := p.parseConditionalOrLambda()
	if err != nil {
		return nil, err
	}
	cur := p.cur.Current()
	if assignOps[cur.Text] && (cur.Kind == token.OP) {
		start := cur
		p.cur = p.cur.Advance()
		rhs, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{
			BaseNode: ast.BaseNode{Start: lhs.Pos(), Finish: rhs.End()},
			Op:       start.Text,
			LHS:      lhs,
			RHS:      rhs,
		}, nil
	}
	return lhs, nil
}

// looksLikeLambdaStart reports whether the current position could begin a
// lambda expression: `NAME ->` or `(`  (spec §4.4 lambda disambiguation).
func (p *Parser) looksLikeLambdaStart() bool {
	cur := p.cur.Current()
	if cur.Kind == token.NAME && p.cur.Peek(1).IsOp("->") {
		return true
	}
	return cur.IsOp("(")
}

func (p *Parser) parseConditionalOrLambda() (ast.Expression, error) {
	if p.looksLikeLambdaStart() {
		if lam, err := speculate(p, (*Parser).tryParseLambda); err == nil {
			return lam, nil
		}
	}
	return p.parseConditional()
}

func (p *Parser) parseConditional() (ast.Expression, error) {
	cond, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if p.cur.IsOp("?") {
		p.cur = p.cur.Advance()
		then, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
		if _, err := p.require(":"); err != nil {
			return nil, err
		}
		els, err := p.parseConditionalOrLambda()
		if err != nil {
			return nil, err
		}
		return &ast.ConditionalExpression{
			BaseNode:  ast.BaseNode{Start: cond.Pos(), Finish: els.End()},
			Condition: cond,
			Then:      then,
			Else:      els,
		}, nil
	}
	return cond, nil
}

func (p *Parser) binaryLevel(next func() (ast.Expression, error), ops ...string) (ast.Expression, error) {
	lhs, err := next()
	if err != nil {
		return nil, err
	}
	for {
		cur := p.cur.Current()
		matched := ""
		for _, op := range ops {
			if cur.IsOp(op) {
				matched = op
				break
			}
		}
		if matched == "" {
			return lhs, nil
		}
		p.cur = p.cur.Advance()
		rhs, err := next()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpression{
			BaseNode: ast.BaseNode{Start: lhs.Pos(), Finish: rhs.End()},
			Op:       matched,
			LHS:      lhs,
			RHS:      rhs,
		}
	}
}

func (p *Parser) parseLogicalOr() (ast.Expression, error) {
	return p.binaryLevel(p.parseLogicalAnd, "||")
}

func (p *Parser) parseLogicalAnd() (ast.Expression, error) {
	return p.binaryLevel(p.parseBitwiseOr, "&&")
}

func (p *Parser) parseBitwiseOr() (ast.Expression, error) {
	return p.binaryLevel(p.parseBitwiseXor, "|")
}

func (p *Parser) parseBitwiseXor() (ast.Expression, error) {
	return p.binaryLevel(p.parseBitwiseAnd, "^")
}

func (p *Parser) parseBitwiseAnd() (ast.Expression, error) {
	return p.binaryLevel(p.parseEquality, "&")
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	return p.binaryLevel(p.parseComparison, "==", "!=")
}

// parseComparison handles <, <=, >, >=, and `instanceof Type [binding]`. A
// bare '>' is only consumed here, never when it begins a fused '>>'/'>>>'
// that the shift level below should own instead.
func (p *Parser) parseComparison() (ast.Expression, error) {
	lhs, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	for {
		cur := p.cur.Current()
		switch {
		case cur.IsKeyword("instanceof"):
			p.cur = p.cur.Advance()
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			binding := ""
			if p.cur.Current().Kind == token.NAME && !token.Keywords[p.cur.Current().Text] {
				binding = p.cur.Current().Text
				p.cur = p.cur.Advance()
			}
			lhs = &ast.TypeTest{
				BaseNode: ast.BaseNode{Start: lhs.Pos(), Finish: p.cur.Previous().End},
				Expr:     lhs,
				Type:     typ,
				Binding:  binding,
			}
		case cur.IsOp("<=") || cur.IsOp(">="):
			p.cur = p.cur.Advance()
			rhs, err := p.parseShift()
			if err != nil {
				return nil, err
			}
			lhs = &ast.BinaryExpression{BaseNode: ast.BaseNode{Start: lhs.Pos(), Finish: rhs.End()}, Op: cur.Text, LHS: lhs, RHS: rhs}
		case cur.IsOp("<"):
			p.cur = p.cur.Advance()
			rhs, err := p.parseShift()
			if err != nil {
				return nil, err
			}
			lhs = &ast.BinaryExpression{BaseNode: ast.BaseNode{Start: lhs.Pos(), Finish: rhs.End()}, Op: "<", LHS: lhs, RHS: rhs}
		case cur.IsOp(">") && !p.cur.AdjacentGT(2):
			p.cur = p.cur.Advance()
			rhs, err := p.parseShift()
			if err != nil {
				return nil, err
			}
			lhs = &ast.BinaryExpression{BaseNode: ast.BaseNode{Start: lhs.Pos(), Finish: rhs.End()}, Op: ">", LHS: lhs, RHS: rhs}
		default:
			return lhs, nil
		}
	}
}

func (p *Parser) parseShift() (ast.Expression, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		cur := p.cur.Current()
		switch {
		case cur.IsOp("<<"):
			p.cur = p.cur.Advance()
			rhs, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			lhs = &ast.BinaryExpression{BaseNode: ast.BaseNode{Start: lhs.Pos(), Finish: rhs.End()}, Op: "<<", LHS: lhs, RHS: rhs}
		case p.cur.AdjacentGT(3):
			p.cur = p.cur.AdvanceN(3)
			rhs, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			lhs = &ast.BinaryExpression{BaseNode: ast.BaseNode{Start: lhs.Pos(), Finish: rhs.End()}, Op: ">>>", LHS: lhs, RHS: rhs}
		case p.cur.AdjacentGT(2):
			p.cur = p.cur.AdvanceN(2)
			rhs, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			lhs = &ast.BinaryExpression{BaseNode: ast.BaseNode{Start: lhs.Pos(), Finish: rhs.End()}, Op: ">>", LHS: lhs, RHS: rhs}
		default:
			return lhs, nil
		}
	}
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.binaryLevel(p.parseMultiplicative, "+", "-")
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	return p.binaryLevel(p.parseUnary, "*", "/", "%")
}

var unaryOps = map[string]bool{"+": true, "-": true, "~": true, "!": true}

func (p *Parser) parseUnary() (ast.Expression, error) {
	cur := p.cur.Current()
	if unaryOps[cur.Text] && cur.Kind == token.OP {
		p.cur = p.cur.Advance()
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{BaseNode: ast.BaseNode{Start: cur.Start, Finish: expr.End()}, Op: cur.Text, Expr: expr}, nil
	}
	if cur.IsOp("++") || cur.IsOp("--") {
		p.cur = p.cur.Advance()
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.IncrementExpression{BaseNode: ast.BaseNode{Start: cur.Start, Finish: expr.End()}, Op: cur.Text, Expr: expr, Prefix: true}, nil
	}
	if cur.IsOp("(") {
		if castExpr, err := speculate(p, (*Parser).tryParseCast); err == nil {
			return castExpr, nil
		}
	}
	return p.parsePostfix()
}

// tryParseCast implements speculation site 2: on '(', speculatively parse
// `Type )` then decide whether what follows makes this a cast (spec §4.4,
// §8 property 6). A primitive or array type is always a cast; otherwise it
// is a cast only if the next token can begin a unary operand other than a
// leading '+' or '-', so `(x) - y` stays a subtraction.
func (p *Parser) tryParseCast() (ast.Expression, error) {
	start := p.cur.Current()
	if _, err := p.require("("); err != nil {
		return nil, err
	}
	typ, err := p.parseCastType()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(")"); err != nil {
		return nil, err
	}
	_, isPrimitive := typ.(*ast.PrimitiveType)
	_, isArray := typ.(*ast.ArrayType)
	next := p.cur.Current()
	if !isPrimitive && !isArray && (!p.startsUnaryOperand(next) || next.IsOp("+") || next.IsOp("-")) {
		return nil, p.errHere(ErrUnexpectedToken, "not a cast: %q does not begin an operand", p.describe(next))
	}
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.CastExpression{BaseNode: ast.BaseNode{Start: start.Start, Finish: expr.End()}, Type: typ, Expr: expr}, nil
}

// parseCastType parses the type inside a speculative cast header, including
// `A & B` intersection casts (spec §3.2 TypeUnion, used here per its &
// spelling).
func (p *Parser) parseCastType() (ast.TypeNode, error) {
	start := p.cur.Current()
	first, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if !p.cur.IsOp("&") {
		return first, nil
	}
	types := []ast.TypeNode{first}
	for p.cur.IsOp("&") {
		p.cur = p.cur.Advance()
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return &ast.TypeUnion{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Types: types}, nil
}

func (p *Parser) startsUnaryOperand(t token.Token) bool {
	switch t.Kind {
	case token.NAME, token.NUMBER, token.STRING, token.CHAR:
		return true
	}
	switch t.Text {
	case "(", "!", "~", "+", "-", "++", "--", "this", "super", "new", "switch", "true", "false", "null":
		return true
	}
	return false
}

// parsePostfix parses a primary expression followed by any chain of
// `.member`, `[index]`, `::ref`, and trailing `++`/`--`.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		cur := p.cur.Current()
		switch {
		case cur.IsOp("."):
			expr, err = p.parseDotSuffix(expr)
			if err != nil {
				return nil, err
			}
		case cur.IsOp("["):
			p.cur = p.cur.Advance()
			idx, err := p.parseExpression(precAssignment)
			if err != nil {
				return nil, err
			}
			if _, err := p.require("]"); err != nil {
				return nil, err
			}
			expr = &ast.IndexExpression{BaseNode: ast.BaseNode{Start: expr.Pos(), Finish: p.cur.Previous().End}, Array: expr, Index: idx}
		case cur.IsOp("::"):
			p.cur = p.cur.Advance()
			var name string
			if p.cur.IsKeyword("new") {
				name = "new"
				p.cur = p.cur.Advance()
			} else {
				name, _, err = p.requireIdent()
				if err != nil {
					return nil, err
				}
			}
			expr = &ast.MethodReference{BaseNode: ast.BaseNode{Start: expr.Pos(), Finish: p.cur.Previous().End}, Object: expr, Name: name}
		case cur.IsOp("++") || cur.IsOp("--"):
			p.cur = p.cur.Advance()
			expr = &ast.IncrementExpression{BaseNode: ast.BaseNode{Start: expr.Pos(), Finish: cur.End}, Op: cur.Text, Expr: expr, Prefix: false}
		default:
			return expr, nil
		}
	}
}

// parseDotSuffix handles everything that can follow '.': a member name, a
// call, `.class`, `.this`, `.super`, `.new Inner(...)`, or `.<T>method()`.
// PRE: cursor is on '.'.
func (p *Parser) parseDotSuffix(object ast.Expression) (ast.Expression, error) {
	p.cur = p.cur.Advance()
	cur := p.cur.Current()
	switch {
	case cur.IsKeyword("class"):
		p.cur = p.cur.Advance()
		typ := p.exprAsType(object)
		return &ast.TypeLiteral{BaseNode: ast.BaseNode{Start: object.Pos(), Finish: p.cur.Previous().End}, Type: typ}, nil
	case cur.IsKeyword("this"):
		p.cur = p.cur.Advance()
		if p.cur.IsOp("(") {
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			return &ast.ThisCall{BaseNode: ast.BaseNode{Start: object.Pos(), Finish: p.cur.Previous().End}, Args: args}, nil
		}
		return &ast.This{BaseNode: ast.BaseNode{Start: object.Pos(), Finish: p.cur.Previous().End}, Object: object}, nil
	case cur.IsKeyword("super"):
		p.cur = p.cur.Advance()
		if p.cur.IsOp("(") {
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			return &ast.SuperCall{BaseNode: ast.BaseNode{Start: object.Pos(), Finish: p.cur.Previous().End}, Object: object, Args: args}, nil
		}
		return &ast.Super{BaseNode: ast.BaseNode{Start: object.Pos(), Finish: p.cur.Previous().End}, Object: object}, nil
	case cur.IsKeyword("new"):
		return p.parseQualifiedClassCreator(object)
	case cur.IsOp("<"):
		typeArgs, err := p.parseTypeArgumentList()
		if err != nil {
			return nil, err
		}
		if p.cur.IsKeyword("this") {
			p.cur = p.cur.Advance()
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			return &ast.ThisCall{BaseNode: ast.BaseNode{Start: object.Pos(), Finish: p.cur.Previous().End}, Args: args, TypeArgs: typeArgs}, nil
		}
		if p.cur.IsKeyword("super") {
			p.cur = p.cur.Advance()
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			return &ast.SuperCall{BaseNode: ast.BaseNode{Start: object.Pos(), Finish: p.cur.Previous().End}, Object: object, Args: args, TypeArgs: typeArgs}, nil
		}
		name, _, err := p.requireIdent()
		if err != nil {
			return nil, err
		}
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		return &ast.FunctionCall{BaseNode: ast.BaseNode{Start: object.Pos(), Finish: p.cur.Previous().End}, Object: object, Name: name, Args: args, TypeArgs: typeArgs}, nil
	default:
		name, _, err := p.requireIdent()
		if err != nil {
			return nil, err
		}
		if p.cur.IsOp("(") {
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			return &ast.FunctionCall{BaseNode: ast.BaseNode{Start: object.Pos(), Finish: p.cur.Previous().End}, Object: object, Name: name, Args: args}, nil
		}
		return &ast.MemberAccess{BaseNode: ast.BaseNode{Start: object.Pos(), Finish: p.cur.Previous().End}, Object: object, Name: name}, nil
	}
}

// exprAsType reinterprets an already-parsed Name/MemberAccess chain as a
// qualified GenericType, the representation `.class` needs (spec §4.4
// speculation site 6, simplified: dotted-name class literals never carry
// generic type arguments, so a post-hoc reinterpretation of the expression
// chain is equivalent to a forward type-prefix speculation here).
func (p *Parser) exprAsType(e ast.Expression) ast.TypeNode {
	switch v := e.(type) {
	case *ast.Name:
		return &ast.GenericType{BaseNode: v.BaseNode, Name: v.Value}
	case *ast.MemberAccess:
		container := p.exprAsType(v.Object)
		gt, _ := container.(*ast.GenericType)
		return &ast.GenericType{BaseNode: v.BaseNode, Name: v.Name, Container: gt}
	default:
		return &ast.GenericType{BaseNode: ast.BaseNode{Start: e.Pos(), Finish: e.End()}, Name: ""}
	}
}

func (p *Parser) parseCallArgs() ([]ast.Expression, error) {
	if _, err := p.require("("); err != nil {
		return nil, err
	}
	var args []ast.Expression
	if !p.cur.Is(")") {
		for {
			arg, err := p.parseExpression(precAssignment)
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
	}
	if _, err := p.require(")"); err != nil {
		return nil, err
	}
	return args, nil
}

// parsePrimary parses the tightest-binding expression forms (spec §4.4).
func (p *Parser) parsePrimary() (ast.Expression, error) {
	cur := p.cur.Current()
	switch {
	case cur.Kind == token.NUMBER:
		return p.parseNumberLiteral()
	case cur.Kind == token.STRING:
		return p.parseStringLiteral()
	case cur.Kind == token.CHAR:
		return p.parseCharLiteral()
	case cur.IsKeyword("true") || cur.IsKeyword("false"):
		p.cur = p.cur.Advance()
		return &ast.Literal{BaseNode: finish(baseFrom(cur), cur.End), Kind: ast.BooleanLiteral, Raw: cur.Text, Value: cur.Text}, nil
	case cur.IsKeyword("null"):
		p.cur = p.cur.Advance()
		return &ast.NullLiteral{BaseNode: finish(baseFrom(cur), cur.End)}, nil
	case cur.IsKeyword("this"):
		p.cur = p.cur.Advance()
		if p.cur.IsOp("(") {
			return nil, p.errAt(cur.Start, cur.Text, ErrUnexpectedToken, "'this(...)' is only valid as a constructor's first statement")
		}
		return &ast.This{BaseNode: finish(baseFrom(cur), cur.End)}, nil
	case cur.IsKeyword("super"):
		p.cur = p.cur.Advance()
		if p.cur.IsOp("(") {
			return nil, p.errAt(cur.Start, cur.Text, ErrUnexpectedToken, "'super(...)' is only valid as a constructor's first statement")
		}
		if !p.cur.IsOp(".") && !p.cur.IsOp("::") {
			return nil, p.errAt(cur.Start, cur.Text, ErrSuperNeedsMember, "'super' must be followed by a member-access expression")
		}
		return &ast.Super{BaseNode: finish(baseFrom(cur), cur.End)}, nil
	case cur.IsKeyword("new"):
		return p.parseCreator()
	case cur.IsKeyword("switch"):
		return p.parseSwitch()
	case cur.IsOp("("):
		p.cur = p.cur.Advance()
		expr, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
		if _, err := p.require(")"); err != nil {
			return nil, err
		}
		return &ast.Parenthesis{BaseNode: finish(baseFrom(cur), p.cur.Previous().End), Expr: expr}, nil
	case cur.IsKeyword("void"):
		p.cur = p.cur.Advance()
		if _, err := p.require("."); err != nil {
			return nil, err
		}
		if _, err := p.require("class"); err != nil {
			return nil, err
		}
		return &ast.TypeLiteral{BaseNode: finish(baseFrom(cur), p.cur.Previous().End), Type: &ast.VoidType{BaseNode: finish(baseFrom(cur), cur.End)}}, nil
	case cur.Kind == token.NAME && token.PrimitiveNames[cur.Text]:
		return p.parsePrimitiveClassLiteral()
	case cur.Kind == token.NAME:
		return p.parseNameOrCall()
	default:
		return nil, p.errHere(ErrIllegalStartOfExpr, "illegal start of expression: %q", p.describe(cur))
	}
}

func (p *Parser) parsePrimitiveClassLiteral() (ast.Expression, error) {
	start := p.cur.Current()
	typ, err := p.parsePrimitiveOrArrayType()
	if err != nil {
		return nil, err
	}
	if _, err := p.require("."); err != nil {
		return nil, err
	}
	if _, err := p.require("class"); err != nil {
		return nil, err
	}
	return &ast.TypeLiteral{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Type: typ}, nil
}

// parseNameOrCall parses a bare identifier or a call `name(args)`. A
// following `.class` or `::ref` is handled by the postfix and dot-suffix
// layers above it; a name followed by `[]` (as in `String[].class`) is not
// parsed.
func (p *Parser) parseNameOrCall() (ast.Expression, error) {
	name, pos, err := p.requireIdent()
	if err != nil {
		return nil, err
	}
	if p.cur.IsOp("(") {
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		return &ast.FunctionCall{BaseNode: finish(ast.BaseNode{Start: pos}, p.cur.Previous().End), Name: name, Args: args}, nil
	}
	return &ast.Name{BaseNode: finish(ast.BaseNode{Start: pos}, p.cur.Previous().End), Value: name}, nil
}

// --- lambdas (speculation site 1) ------------------------------------------

// tryParseLambda implements speculation site 1: a lambda is either a bare
// identifier or a parenthesized parameter list, followed by '->' and an
// expression or block body (spec §4.4, §8 property 2).
func (p *Parser) tryParseLambda() (ast.Expression, error) {
	start := p.cur.Current()
	params, err := p.parseLambdaParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.require("->"); err != nil {
		return nil, err
	}
	var body ast.Node
	if p.cur.IsOp("{") {
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		body = block
	} else {
		expr, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
		body = expr
	}
	return &ast.Lambda{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Params: params, Body: body}, nil
}

func (p *Parser) parseLambdaParams() ([]*ast.FormalParameter, error) {
	cur := p.cur.Current()
	if cur.Kind == token.NAME && !token.Keywords[cur.Text] {
		p.cur = p.cur.Advance()
		return []*ast.FormalParameter{{BaseNode: finish(baseFrom(cur), cur.End), Name: cur.Text}}, nil
	}
	if !p.cur.IsOp("(") {
		return nil, p.errHere(ErrUnexpectedToken, "expected lambda parameter list, got %q", p.describe(cur))
	}
	p.cur = p.cur.Advance()
	var params []*ast.FormalParameter
	if !p.cur.IsOp(")") {
		for {
			param, err := p.parseLambdaParam()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
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

// parseLambdaParam parses either an untyped name (`x`), a var-typed name
// (`var x`), or a conventionally typed parameter (`Type x`). A bare name
// immediately followed by ',' or ')' is untyped; anything else expects a
// type before the parameter name.
func (p *Parser) parseLambdaParam() (*ast.FormalParameter, error) {
	start := p.cur.Current()
	mods, annots, err := p.parseModsAndAnnotations()
	if err != nil {
		return nil, err
	}
	cur := p.cur.Current()
	if cur.Kind == token.NAME && !token.Keywords[cur.Text] {
		nxt := p.cur.Peek(1)
		if nxt.Is(",") || nxt.Is(")") {
			p.cur = p.cur.Advance()
			return &ast.FormalParameter{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Name: cur.Text, Modifiers: mods, Annotations: annots}, nil
		}
	}
	var typ ast.TypeNode
	if p.cur.IsKeyword("var") {
		varTok := p.cur.Current()
		p.cur = p.cur.Advance()
		typ = &ast.GenericType{BaseNode: finish(baseFrom(varTok), varTok.End), Name: "var"}
	} else {
		typ, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	name, namePos, err := p.requireIdent()
	if err != nil {
		return nil, err
	}
	if err := p.requireNotVar(name, namePos); err != nil {
		return nil, err
	}
	return &ast.FormalParameter{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Type: typ, Name: name, Modifiers: mods, Annotations: annots}, nil
}

// --- object creation --------------------------------------------------------

// parseCreator parses `new Type(args) [{ members }]` or
// `new Type[dims...][initializer]`. PRE: cursor is on 'new'.
func (p *Parser) parseCreator() (ast.Expression, error) {
	start := p.cur.Current()
	p.cur = p.cur.Advance()
	var typeArgs []*ast.TypeArgument
	if p.cur.IsOp("<") {
		var err error
		typeArgs, err = p.parseTypeArgumentList()
		if err != nil {
			return nil, err
		}
	}
	base, err := p.parseCreatorBaseType()
	if err != nil {
		return nil, err
	}
	if p.cur.IsOp("(") {
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		var members []ast.Decl
		if p.cur.IsOp("{") {
			members, err = p.parseClassBody()
			if err != nil {
				return nil, err
			}
		}
		return &ast.ClassCreator{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Type: base, Args: args, TypeArgs: typeArgs, Members: members}, nil
	}
	if p.cur.IsOp("[") {
		return p.parseArrayCreatorTail(start, base)
	}
	return nil, p.errHere(ErrUnexpectedToken, "expected '(' or '[' after 'new', got %q", p.describe(p.cur.Current()))
}

// parseQualifiedClassCreator parses `object.new Inner(args)`. PRE: cursor on
// 'new'.
func (p *Parser) parseQualifiedClassCreator(object ast.Expression) (ast.Expression, error) {
	p.cur = p.cur.Advance()
	var typeArgs []*ast.TypeArgument
	if p.cur.IsOp("<") {
		var err error
		typeArgs, err = p.parseTypeArgumentList()
		if err != nil {
			return nil, err
		}
	}
	base, err := p.parseCreatorBaseType()
	if err != nil {
		return nil, err
	}
	args, err := p.parseCallArgs()
	if err != nil {
		return nil, err
	}
	var members []ast.Decl
	if p.cur.IsOp("{") {
		members, err = p.parseClassBody()
		if err != nil {
			return nil, err
		}
	}
	return &ast.ClassCreator{
		BaseNode: ast.BaseNode{Start: object.Pos(), Finish: p.cur.Previous().End},
		Object:   object,
		Type:     base,
		Args:     args,
		TypeArgs: typeArgs,
		Members:  members,
	}, nil
}

// parseCreatorBaseType parses the type named right after 'new', stopping
// before any '[' or '(' that belongs to the creator itself rather than the
// type (so array creators keep their size expressions distinct from plain
// array-type dimension markers).
func (p *Parser) parseCreatorBaseType() (ast.TypeNode, error) {
	cur := p.cur.Current()
	if cur.Kind == token.NAME && token.PrimitiveNames[cur.Text] {
		p.cur = p.cur.Advance()
		return &ast.PrimitiveType{BaseNode: finish(baseFrom(cur), cur.End), Name: cur.Text}, nil
	}
	return p.parseGenericTypeChain(nil)
}

func (p *Parser) parseArrayCreatorTail(start token.Token, base ast.TypeNode) (ast.Expression, error) {
	var dims []*ast.DimensionExpression
	for p.cur.IsOp("[") {
		dimStart := p.cur.Current()
		p.cur = p.cur.Advance()
		if p.cur.IsOp("]") {
			p.cur = p.cur.Advance()
			dims = append(dims, &ast.DimensionExpression{BaseNode: finish(baseFrom(dimStart), p.cur.Previous().End)})
			continue
		}
		size, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
		if _, err := p.require("]"); err != nil {
			return nil, err
		}
		dims = append(dims, &ast.DimensionExpression{BaseNode: finish(baseFrom(dimStart), p.cur.Previous().End), Size: size})
	}
	var init *ast.ArrayInitializer
	if p.cur.IsOp("{") {
		initExpr, err := p.parseArrayInitializer()
		if err != nil {
			return nil, err
		}
		init = initExpr.(*ast.ArrayInitializer)
	}
	return &ast.ArrayCreator{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Type: base, Dimensions: dims, Initializer: init}, nil
}

// parseArrayInitializer parses `{ v1, v2, ... }`, allowing a trailing comma
// and nested initializers.
func (p *Parser) parseArrayInitializer() (ast.Expression, error) {
	start := p.cur.Current()
	if _, err := p.require("{"); err != nil {
		return nil, err
	}
	var vals []ast.Expression
	for !p.cur.IsOp("}") {
		var v ast.Expression
		var err error
		if p.cur.IsOp("{") {
			v, err = p.parseArrayInitializer()
		} else {
			v, err = p.parseExpression(precAssignment)
		}
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
		if p.cur.Is(",") {
			p.cur = p.cur.Advance()
			continue
		}
		break
	}
	if _, err := p.require("}"); err != nil {
		return nil, err
	}
	return &ast.ArrayInitializer{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Values: vals}, nil
}

// --- switch (statement and expression) --------------------------------------

// parseSwitch parses a switch block and returns it as an ast.Expression;
// ast.Switch implements both Expression and Statement, so a caller parsing
// a switch statement simply wraps this result, and a caller parsing a
// switch expression uses it directly (spec §4.4).
func (p *Parser) parseSwitch() (ast.Expression, error) {
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
	if _, err := p.require("{"); err != nil {
		return nil, err
	}
	var cases []*ast.SwitchCase
	sawDefault := false
	for !p.cur.IsOp("}") {
		c, err := p.parseSwitchCase()
		if err != nil {
			return nil, err
		}
		if c.Labels == nil {
			if sawDefault {
				return nil, p.errHere(ErrDuplicateDefault, "duplicate 'default' label in switch")
			}
			sawDefault = true
		}
		cases = append(cases, c)
	}
	if _, err := p.require("}"); err != nil {
		return nil, err
	}
	return &ast.Switch{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Condition: cond, Cases: cases}, nil
}

func (p *Parser) parseSwitchCase() (*ast.SwitchCase, error) {
	start := p.cur.Current()
	var labels []ast.Expression
	switch {
	case p.cur.IsKeyword("default"):
		p.cur = p.cur.Advance()
	case p.cur.IsKeyword("case"):
		p.cur = p.cur.Advance()
		for {
			lbl, err := p.parseExpression(precAssignment)
			if err != nil {
				return nil, err
			}
			labels = append(labels, lbl)
			if p.cur.Is(",") {
				p.cur = p.cur.Advance()
				continue
			}
			break
		}
	default:
		return nil, p.errHere(ErrCaseOutsideSwitch, "expected 'case' or 'default', got %q", p.describe(p.cur.Current()))
	}

	arrow := false
	if p.cur.IsOp("->") {
		arrow = true
		p.cur = p.cur.Advance()
	} else if _, err := p.require(":"); err != nil {
		return nil, err
	}

	var stmts []ast.Statement
	if arrow {
		switch {
		case p.cur.IsOp("{"):
			block, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			stmts = block.Statements
		case p.cur.IsKeyword("throw"):
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			stmts = []ast.Statement{stmt}
		default:
			expr, err := p.parseExpression(precAssignment)
			if err != nil {
				return nil, err
			}
			if _, err := p.require(";"); err != nil {
				return nil, err
			}
			stmts = []ast.Statement{&ast.ExpressionStatement{BaseNode: ast.BaseNode{Start: expr.Pos(), Finish: p.cur.Previous().End}, Expr: expr}}
		}
	} else {
		for !p.cur.IsKeyword("case") && !p.cur.IsKeyword("default") && !p.cur.IsOp("}") {
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, stmt)
		}
	}
	return &ast.SwitchCase{BaseNode: finish(baseFrom(start), p.cur.Previous().End), Labels: labels, Stmts: stmts, Arrow: arrow}, nil
}
