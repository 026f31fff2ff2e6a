package parser

import (
	"testing"

	"github.com/cwbudde/go-javaparser/ast"
)

func mustParse(t *testing.T, src string) ast.Node {
	t.Helper()
	unit, err := ParseSource([]byte(src), "test.java")
	if err != nil {
		t.Fatalf("ParseSource(%q): unexpected error: %v", src, err)
	}
	return unit
}

func mustFail(t *testing.T, src string) *SyntaxError {
	t.Helper()
	_, err := ParseSource([]byte(src), "test.java")
	if err == nil {
		t.Fatalf("ParseSource(%q): expected a SyntaxError, got none", src)
	}
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("ParseSource(%q): error is not *SyntaxError: %T %v", src, err, err)
	}
	return se
}

// firstMethodBody parses src (a full compilation unit containing exactly
// one class with one method) and returns that method's body statements, for
// tests that only care about statement/expression shape.
func firstMethodBody(t *testing.T, src string) []ast.Statement {
	t.Helper()
	unit := mustParse(t, src)
	cu := unit.(*ast.CompilationUnit)
	class := cu.Types[0].(*ast.ClassDeclaration)
	fn := class.Members[0].(*ast.FunctionDeclaration)
	return fn.Body.Statements
}

func firstExprStmt(t *testing.T, src string) ast.Expression {
	t.Helper()
	stmts := firstMethodBody(t, src)
	es := stmts[0].(*ast.ExpressionStatement)
	return es.Expr
}

// --- §8 scenario table --------------------------------------------------

func TestScenarioPackageAndClass(t *testing.T) {
	unit := mustParse(t, "package a.b; class C {}")
	cu, ok := unit.(*ast.CompilationUnit)
	if !ok {
		t.Fatalf("expected *ast.CompilationUnit, got %T", unit)
	}
	if cu.Package == nil || cu.Package.Name != "a.b" {
		t.Fatalf("expected package a.b, got %+v", cu.Package)
	}
	if len(cu.Types) != 1 {
		t.Fatalf("expected 1 type decl, got %d", len(cu.Types))
	}
	class, ok := cu.Types[0].(*ast.ClassDeclaration)
	if !ok || class.Name != "C" {
		t.Fatalf("expected ClassDeclaration(C), got %#v", cu.Types[0])
	}
}

func TestScenarioStaticWildcardImport(t *testing.T) {
	unit := mustParse(t, "import static a.B.*;")
	cu := unit.(*ast.CompilationUnit)
	if len(cu.Imports) != 1 {
		t.Fatalf("expected 1 import, got %d", len(cu.Imports))
	}
	imp := cu.Imports[0]
	if imp.Name != "a.B" || !imp.Static || !imp.Wildcard {
		t.Fatalf("got Import{%q, static=%v, wildcard=%v}", imp.Name, imp.Static, imp.Wildcard)
	}
}

func TestScenarioModuleDirectives(t *testing.T) {
	unit := mustParse(t, "module m { requires transitive x; exports p to q, r; }")
	mcu, ok := unit.(*ast.ModuleCompilationUnit)
	if !ok {
		t.Fatalf("expected *ast.ModuleCompilationUnit, got %T", unit)
	}
	if mcu.Name != "m" {
		t.Fatalf("module name = %q", mcu.Name)
	}
	if len(mcu.Members) != 2 {
		t.Fatalf("expected 2 directives, got %d", len(mcu.Members))
	}
	req, ok := mcu.Members[0].(*ast.Requires)
	if !ok || req.Name != "x" {
		t.Fatalf("directive 0 = %#v", mcu.Members[0])
	}
	foundTransitive := false
	for _, m := range req.Modifiers {
		if m.Name == "transitive" {
			foundTransitive = true
		}
	}
	if !foundTransitive {
		t.Error("expected 'transitive' among requires' modifiers")
	}
	exp, ok := mcu.Members[1].(*ast.Exports)
	if !ok || exp.Name != "p" || len(exp.To) != 2 || exp.To[0] != "q" || exp.To[1] != "r" {
		t.Fatalf("directive 1 = %#v", mcu.Members[1])
	}
}

func TestScenarioGenericConstructor(t *testing.T) {
	unit := mustParse(t, "class C { <T> C(T t){} }")
	cu := unit.(*ast.CompilationUnit)
	class := cu.Types[0].(*ast.ClassDeclaration)
	ctor, ok := class.Members[0].(*ast.ConstructorDeclaration)
	if !ok {
		t.Fatalf("expected *ast.ConstructorDeclaration, got %T", class.Members[0])
	}
	if len(ctor.TypeParams) != 1 || ctor.TypeParams[0].Name != "T" {
		t.Fatalf("type params = %#v", ctor.TypeParams)
	}
	if len(ctor.Params) != 1 || ctor.Params[0].Name != "t" {
		t.Fatalf("params = %#v", ctor.Params)
	}
}

func TestScenarioLocalVarInference(t *testing.T) {
	stmts := firstMethodBody(t, "class C { void m(){ var x = foo(); } }")
	decl, ok := stmts[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected *ast.VariableDeclaration, got %T", stmts[0])
	}
	gt, ok := decl.Type.(*ast.GenericType)
	if !ok || gt.Name != "var" {
		t.Fatalf("type = %#v, want GenericType(var)", decl.Type)
	}
	if len(decl.Declarators) != 1 || decl.Declarators[0].Name != "x" {
		t.Fatalf("declarators = %#v", decl.Declarators)
	}
	call, ok := decl.Declarators[0].Init.(*ast.FunctionCall)
	if !ok || call.Name != "foo" {
		t.Fatalf("init = %#v, want FunctionCall(foo)", decl.Declarators[0].Init)
	}
}

func TestScenarioJaggedArrayCreator(t *testing.T) {
	stmts := firstMethodBody(t, "class C { void m(){ int[][] a = new int[3][]; } }")
	decl := stmts[0].(*ast.VariableDeclaration)
	at, ok := decl.Type.(*ast.ArrayType)
	if !ok || len(at.Dimensions) != 2 {
		t.Fatalf("type = %#v, want ArrayType with 2 dimensions", decl.Type)
	}
	creator, ok := decl.Declarators[0].Init.(*ast.ArrayCreator)
	if !ok {
		t.Fatalf("init = %#v, want *ast.ArrayCreator", decl.Declarators[0].Init)
	}
	if len(creator.Dimensions) != 2 {
		t.Fatalf("creator dimensions = %d, want 2", len(creator.Dimensions))
	}
	if creator.Dimensions[0].Size == nil {
		t.Error("first dimension should have an explicit size")
	}
	if creator.Dimensions[1].Size != nil {
		t.Error("second dimension should be empty ([])")
	}
}

// --- §8 property 4: operator precedence --------------------------------

func TestOperatorPrecedence(t *testing.T) {
	// a + b * c == d && e | f  ⇒  ((a + (b*c)) == d) && (e | f)
	expr := firstExprStmt(t, "class C { void m(){ a + b * c == d && e | f; } }")
	and, ok := expr.(*ast.BinaryExpression)
	if !ok || and.Op != "&&" {
		t.Fatalf("top level = %#v, want && BinaryExpression", expr)
	}
	eq, ok := and.LHS.(*ast.BinaryExpression)
	if !ok || eq.Op != "==" {
		t.Fatalf("lhs of && = %#v, want == BinaryExpression", and.LHS)
	}
	orBit, ok := and.RHS.(*ast.BinaryExpression)
	if !ok || orBit.Op != "|" {
		t.Fatalf("rhs of && = %#v, want | BinaryExpression", and.RHS)
	}
	add, ok := eq.LHS.(*ast.BinaryExpression)
	if !ok || add.Op != "+" {
		t.Fatalf("lhs of == = %#v, want + BinaryExpression", eq.LHS)
	}
	mul, ok := add.RHS.(*ast.BinaryExpression)
	if !ok || mul.Op != "*" {
		t.Fatalf("rhs of + = %#v, want * BinaryExpression", add.RHS)
	}
	if name, ok := mul.LHS.(*ast.Name); !ok || name.Value != "b" {
		t.Errorf("lhs of * = %#v, want Name(b)", mul.LHS)
	}
}

// --- §8 property 5: shift fusion ----------------------------------------

func TestShiftFusion(t *testing.T) {
	cases := []struct {
		src string
		op  string
	}{
		{"class C { void m(){ x >> 2; } }", ">>"},
		{"class C { void m(){ x >>> 2; } }", ">>>"},
	}
	for _, c := range cases {
		expr := firstExprStmt(t, c.src)
		bin, ok := expr.(*ast.BinaryExpression)
		if !ok || bin.Op != c.op {
			t.Errorf("%q: got %#v, want BinaryExpression(%s)", c.src, expr, c.op)
		}
	}
}

func TestShiftFusionDoesNotSwallowNestedGenerics(t *testing.T) {
	stmts := firstMethodBody(t, "class C { void m(){ Map<K, List<V>> m2; } }")
	decl, ok := stmts[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected *ast.VariableDeclaration, got %T", stmts[0])
	}
	gt, ok := decl.Type.(*ast.GenericType)
	if !ok || gt.Name != "Map" || len(gt.TypeArgs) != 2 {
		t.Fatalf("type = %#v", decl.Type)
	}
	inner, ok := gt.TypeArgs[1].Base.(*ast.GenericType)
	if !ok || inner.Name != "List" || len(inner.TypeArgs) != 1 {
		t.Fatalf("second type arg = %#v", gt.TypeArgs[1])
	}
}

func TestShiftLeftAssociative(t *testing.T) {
	// a >> b >>> c  ⇒  (a >> b) >>> c
	expr := firstExprStmt(t, "class C { void m(){ a >> b >>> c; } }")
	outer, ok := expr.(*ast.BinaryExpression)
	if !ok || outer.Op != ">>>" {
		t.Fatalf("got %#v, want outer >>> BinaryExpression", expr)
	}
	inner, ok := outer.LHS.(*ast.BinaryExpression)
	if !ok || inner.Op != ">>" {
		t.Fatalf("lhs = %#v, want inner >> BinaryExpression", outer.LHS)
	}
}

// --- §8 property 6: cast vs. parenthesised expression -------------------

func TestCastVsParenDisambiguation(t *testing.T) {
	t.Run("cast of unary minus", func(t *testing.T) {
		expr := firstExprStmt(t, "class C { void m(){ (int) -x; } }")
		cast, ok := expr.(*ast.CastExpression)
		if !ok {
			t.Fatalf("got %#v, want *ast.CastExpression", expr)
		}
		if _, ok := cast.Type.(*ast.PrimitiveType); !ok {
			t.Errorf("cast type = %#v, want PrimitiveType", cast.Type)
		}
		if _, ok := cast.Expr.(*ast.UnaryExpression); !ok {
			t.Errorf("cast operand = %#v, want UnaryExpression", cast.Expr)
		}
	})

	t.Run("parenthesised subtraction", func(t *testing.T) {
		expr := firstExprStmt(t, "class C { void m(){ (x) - y; } }")
		bin, ok := expr.(*ast.BinaryExpression)
		if !ok || bin.Op != "-" {
			t.Fatalf("got %#v, want '-' BinaryExpression", expr)
		}
		if _, ok := bin.LHS.(*ast.Parenthesis); !ok {
			t.Errorf("lhs = %#v, want Parenthesis", bin.LHS)
		}
	})

	t.Run("cast of reference type", func(t *testing.T) {
		expr := firstExprStmt(t, "class C { void m(){ (Foo) bar; } }")
		cast, ok := expr.(*ast.CastExpression)
		if !ok {
			t.Fatalf("got %#v, want *ast.CastExpression", expr)
		}
		gt, ok := cast.Type.(*ast.GenericType)
		if !ok || gt.Name != "Foo" {
			t.Errorf("cast type = %#v", cast.Type)
		}
	})

	t.Run("bare parenthesis", func(t *testing.T) {
		expr := firstExprStmt(t, "class C { void m(){ (foo); } }")
		paren, ok := expr.(*ast.Parenthesis)
		if !ok {
			t.Fatalf("got %#v, want *ast.Parenthesis", expr)
		}
		if _, ok := paren.Expr.(*ast.Name); !ok {
			t.Errorf("paren.Expr = %#v, want Name", paren.Expr)
		}
	})
}

// --- §8 property 7: lambda vs. parenthesised expression ------------------

func TestLambdaVsParenDisambiguation(t *testing.T) {
	cases := []string{
		"class C { void m(){ Runnable r = () -> 1; } }",
		"class C { void m(){ Function f = x -> x; } }",
		"class C { void m(){ Combiner c = (x, y) -> x + y; } }",
		"class C { void m(){ Function f = (int x) -> x; } }",
	}
	for _, src := range cases {
		stmts := firstMethodBody(t, src)
		decl := stmts[0].(*ast.VariableDeclaration)
		if _, ok := decl.Declarators[0].Init.(*ast.Lambda); !ok {
			t.Errorf("%q: init = %#v, want *ast.Lambda", src, decl.Declarators[0].Init)
		}
	}

	t.Run("bare parenthesis is not a lambda", func(t *testing.T) {
		expr := firstExprStmt(t, "class C { void m(){ (x); } }")
		if _, ok := expr.(*ast.Lambda); ok {
			t.Fatal("(x) must not parse as a lambda")
		}
		if _, ok := expr.(*ast.Parenthesis); !ok {
			t.Errorf("got %#v, want *ast.Parenthesis", expr)
		}
	})

	t.Run("parenthesis plus addition is not a lambda", func(t *testing.T) {
		expr := firstExprStmt(t, "class C { void m(){ (x) + 1; } }")
		if _, ok := expr.(*ast.Lambda); ok {
			t.Fatal("(x) + 1 must not parse as a lambda")
		}
		bin, ok := expr.(*ast.BinaryExpression)
		if !ok || bin.Op != "+" {
			t.Fatalf("got %#v, want '+' BinaryExpression", expr)
		}
	})
}

// --- §8 property 8: enhanced for vs. classic for -------------------------

func TestEnhancedForVsClassicFor(t *testing.T) {
	stmts := firstMethodBody(t, "class C { void m(){ for (var e : list) {} } }")
	loop, ok := stmts[0].(*ast.ForLoop)
	if !ok {
		t.Fatalf("got %#v, want *ast.ForLoop", stmts[0])
	}
	efc, ok := loop.Control.(*ast.EnhancedForControl)
	if !ok {
		t.Fatalf("control = %#v, want *ast.EnhancedForControl", loop.Control)
	}
	gt, ok := efc.Var.Type.(*ast.GenericType)
	if !ok || gt.Name != "var" {
		t.Errorf("loop variable type = %#v, want GenericType(var)", efc.Var.Type)
	}

	stmts2 := firstMethodBody(t, "class C { void m(){ for (int i = 0; i < n; i++) {} } }")
	loop2 := stmts2[0].(*ast.ForLoop)
	fc, ok := loop2.Control.(*ast.ForControl)
	if !ok {
		t.Fatalf("control = %#v, want *ast.ForControl", loop2.Control)
	}
	if len(fc.Init) != 1 || fc.Condition == nil || len(fc.Update) != 1 {
		t.Errorf("classic for control shape wrong: %#v", fc)
	}
}

// --- §8 property 9: switch both forms ------------------------------------

func TestSwitchBothArrowAndColonForms(t *testing.T) {
	stmts := firstMethodBody(t, `class C { void m(){
		switch (x) {
			case 1: y = 1; break;
			case 2 -> y = 2;
			default: y = 0;
		}
	} }`)
	sw, ok := stmts[0].(*ast.Switch)
	if !ok {
		t.Fatalf("got %#v, want *ast.Switch", stmts[0])
	}
	if len(sw.Cases) != 3 {
		t.Fatalf("expected 3 cases, got %d", len(sw.Cases))
	}
	if sw.Cases[0].Arrow {
		t.Error("case 1 should be colon form (arrow=false)")
	}
	if !sw.Cases[1].Arrow {
		t.Error("case 2 should be arrow form (arrow=true)")
	}
	if sw.Cases[2].Labels != nil {
		t.Errorf("default case should have nil Labels, got %#v", sw.Cases[2].Labels)
	}
}

// --- §8 property 10: multi-catch -----------------------------------------

func TestMultiCatch(t *testing.T) {
	stmts := firstMethodBody(t, `class C { void m(){
		try {
			f();
		} catch (IOException | SQLException e) {
			g();
		}
	} }`)
	try, ok := stmts[0].(*ast.TryStatement)
	if !ok {
		t.Fatalf("got %#v, want *ast.TryStatement", stmts[0])
	}
	if len(try.Catches) != 1 {
		t.Fatalf("expected 1 catch clause, got %d", len(try.Catches))
	}
	ti, ok := try.Catches[0].Var.Type.(*ast.TypeIntersection)
	if !ok || len(ti.Types) != 2 {
		t.Fatalf("catch var type = %#v, want TypeIntersection of 2", try.Catches[0].Var.Type)
	}
}

// --- §8 property 11: Javadoc attachment -----------------------------------

func TestJavadocAttachment(t *testing.T) {
	unit := mustParse(t, "/** doc */ class C {}")
	cu := unit.(*ast.CompilationUnit)
	class := cu.Types[0].(*ast.ClassDeclaration)
	if class.Doc != "/** doc */" {
		t.Errorf("doc = %q, want \"/** doc */\"", class.Doc)
	}
}

func TestJavadocNotAttachedForShortOrPlainComments(t *testing.T) {
	unit := mustParse(t, "/**/ class C {}")
	class := unit.(*ast.CompilationUnit).Types[0].(*ast.ClassDeclaration)
	if class.Doc != "" {
		t.Errorf("/**/ must not be treated as Javadoc, got %q", class.Doc)
	}

	unit2 := mustParse(t, "/* plain */ class D {}")
	class2 := unit2.(*ast.CompilationUnit).Types[0].(*ast.ClassDeclaration)
	if class2.Doc != "" {
		t.Errorf("/* ... */ must not be treated as Javadoc, got %q", class2.Doc)
	}
}

// --- §8 property 12: literal round trip -----------------------------------

func TestStringLiteralRoundTrip(t *testing.T) {
	expr := firstExprStmt(t, `class C { void m(){ "a\tb"; } }`)
	lit, ok := expr.(*ast.Literal)
	if !ok || lit.Kind != ast.StringLiteral {
		t.Fatalf("got %#v, want string Literal", expr)
	}
	if lit.Value != `"a\tb"` {
		t.Errorf("value = %q, want %q", lit.Value, `"a\tb"`)
	}
}

func TestCharLiteralControlByteBecomesUnicodeEscape(t *testing.T) {
	// The source char literal '\u0001' names a control codepoint that is not
	// valid to write as \x01 in Java; it must round-trip through a \u00xx
	// escape, never \xNN.
	expr := firstExprStmt(t, "class C { void m(){ '\\u0001'; } }")
	lit, ok := expr.(*ast.Literal)
	if !ok || lit.Kind != ast.CharLiteral {
		t.Fatalf("got %#v, want char Literal", expr)
	}
	if lit.Value != `'\u0001'` {
		t.Errorf("value = %q, want %q", lit.Value, `'\u0001'`)
	}
}

// --- 'var' enforcement (spec invariant §3.3, §8 property 3) --------------

func TestVarEnforcement(t *testing.T) {
	t.Run("var as a superclass name is rejected", func(t *testing.T) {
		se := mustFail(t, "class C extends var {}")
		if se.Code != ErrVarAsTypeName {
			t.Errorf("code = %s, want %s", se.Code, ErrVarAsTypeName)
		}
	})

	t.Run("var as an inferred local variable type is fine", func(t *testing.T) {
		mustParse(t, "class C { void m(){ var x = 1; } }")
	})

	t.Run("uses directive naming var is rejected", func(t *testing.T) {
		se := mustFail(t, "module m { uses foo.var; }")
		if se.Code != ErrVarAsTypeName {
			t.Errorf("code = %s, want %s", se.Code, ErrVarAsTypeName)
		}
	})

	t.Run("new var() is rejected", func(t *testing.T) {
		mustFail(t, "class C { void m(){ new var(); } }")
	})

	t.Run("var as a parameter type is rejected", func(t *testing.T) {
		mustFail(t, "class C { void m(var x){} }")
	})
}

// --- §7 contextual errors --------------------------------------------------

func TestSuperMustBeFollowedByMemberAccess(t *testing.T) {
	se := mustFail(t, "class C { void m(){ super; } }")
	if se.Code != ErrSuperNeedsMember {
		t.Errorf("code = %s, want %s", se.Code, ErrSuperNeedsMember)
	}
}

func TestUnexpectedTokenReportsPosition(t *testing.T) {
	se := mustFail(t, "class C {\n  int x = ;\n}")
	if se.Line != 2 {
		t.Errorf("line = %d, want 2", se.Line)
	}
}

func TestIllegalStartOfExpression(t *testing.T) {
	se := mustFail(t, "class C { void m(){ [1, 2]; } }")
	if se.Code != ErrIllegalStartOfExpr {
		t.Errorf("code = %s, want %s (list literals are not valid Java)", se.Code, ErrIllegalStartOfExpr)
	}
}

// --- explicit receiver parameters (JLS 8.4.1, spec §3.2) -------------------

func TestReceiverParameterBareThis(t *testing.T) {
	unit := mustParse(t, "class Inner { void m(Inner this){} }")
	cu := unit.(*ast.CompilationUnit)
	class := cu.Types[0].(*ast.ClassDeclaration)
	fn := class.Members[0].(*ast.FunctionDeclaration)
	if len(fn.Params) != 0 {
		t.Fatalf("Params = %v, want none (receiver parameter is validated and discarded)", fn.Params)
	}
}

func TestReceiverParameterQualifiedType(t *testing.T) {
	unit := mustParse(t, "class Outer { class Inner { void m(Outer.Inner this){} } }")
	cu := unit.(*ast.CompilationUnit)
	outer := cu.Types[0].(*ast.ClassDeclaration)
	inner := outer.Members[0].(*ast.ClassDeclaration)
	fn := inner.Members[0].(*ast.FunctionDeclaration)
	if len(fn.Params) != 0 {
		t.Fatalf("Params = %v, want none", fn.Params)
	}
}

func TestReceiverParameterWithQualifier(t *testing.T) {
	unit := mustParse(t, "class Outer { class Inner { void m(Outer.Inner Outer.this, int x){} } }")
	cu := unit.(*ast.CompilationUnit)
	outer := cu.Types[0].(*ast.ClassDeclaration)
	inner := outer.Members[0].(*ast.ClassDeclaration)
	fn := inner.Members[0].(*ast.FunctionDeclaration)
	if len(fn.Params) != 1 || fn.Params[0].Name != "x" {
		t.Fatalf("Params = %v, want just [x]", fn.Params)
	}
}

func TestReceiverParameterMustBeFirst(t *testing.T) {
	se := mustFail(t, "class Inner { void m(int x, Inner this){} }")
	if se.Code != ErrMisplacedThisParam {
		t.Errorf("code = %s, want %s", se.Code, ErrMisplacedThisParam)
	}
}

// --- qualified and typed constructor-call forms (spec §3, original_source
// java/parser.py parse_dot_expr) ---------------------------------------------

// firstConstructorExprStmt parses src (a class with one constructor whose
// body is a single expression statement) and returns that expression.
func firstConstructorExprStmt(t *testing.T, src string) ast.Expression {
	t.Helper()
	unit := mustParse(t, src)
	cu := unit.(*ast.CompilationUnit)
	class := cu.Types[0].(*ast.ClassDeclaration)
	ctor := class.Members[0].(*ast.ConstructorDeclaration)
	es := ctor.Body.Statements[0].(*ast.ExpressionStatement)
	return es.Expr
}

func TestQualifiedThisCallStatement(t *testing.T) {
	expr := firstConstructorExprStmt(t, "class C { C(){ Outer.this(1, 2); } }")
	call, ok := expr.(*ast.ThisCall)
	if !ok {
		t.Fatalf("got %#v, want *ast.ThisCall", expr)
	}
	if len(call.Args) != 2 {
		t.Errorf("Args = %v, want 2 args", call.Args)
	}
}

func TestQualifiedSuperCallStatement(t *testing.T) {
	expr := firstConstructorExprStmt(t, "class C { C(){ Outer.super(1); } }")
	call, ok := expr.(*ast.SuperCall)
	if !ok {
		t.Fatalf("got %#v, want *ast.SuperCall", expr)
	}
	if call.Object == nil {
		t.Errorf("Object = nil, want the Outer qualifier expression")
	}
	if len(call.Args) != 1 {
		t.Errorf("Args = %v, want 1 arg", call.Args)
	}
}

func TestTypedThisCallStatement(t *testing.T) {
	expr := firstConstructorExprStmt(t, "class C { C(){ Outer.<String>this(1); } }")
	call, ok := expr.(*ast.ThisCall)
	if !ok {
		t.Fatalf("got %#v, want *ast.ThisCall", expr)
	}
	if len(call.TypeArgs) != 1 {
		t.Fatalf("TypeArgs = %v, want 1 type argument", call.TypeArgs)
	}
}

func TestTypedSuperCallStatement(t *testing.T) {
	expr := firstConstructorExprStmt(t, "class C { C(){ Outer.<String>super(1); } }")
	call, ok := expr.(*ast.SuperCall)
	if !ok {
		t.Fatalf("got %#v, want *ast.SuperCall", expr)
	}
	if call.Object == nil {
		t.Errorf("Object = nil, want the Outer qualifier expression")
	}
	if len(call.TypeArgs) != 1 {
		t.Fatalf("TypeArgs = %v, want 1 type argument", call.TypeArgs)
	}
}

// --- modifiers cannot precede an import section (spec §3, original_source
// java/parser.py:181-182) ---------------------------------------------------

func TestModifiersBeforeImportRejected(t *testing.T) {
	se := mustFail(t, "public import a.b;")
	if se.Code != ErrModifiersBeforeImport {
		t.Errorf("code = %s, want %s", se.Code, ErrModifiersBeforeImport)
	}
}
