package token

import "testing"

func TestPositionLess(t *testing.T) {
	cases := []struct {
		a, b Position
		want bool
	}{
		{Position{1, 1}, Position{2, 1}, true},
		{Position{2, 1}, Position{1, 1}, false},
		{Position{1, 1}, Position{1, 2}, true},
		{Position{1, 2}, Position{1, 1}, false},
		{Position{1, 1}, Position{1, 1}, false},
	}
	for _, c := range cases {
		if got := c.a.Less(c.b); got != c.want {
			t.Errorf("%v.Less(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestTokenAdjacent(t *testing.T) {
	a := Token{Kind: OP, Text: ">", Start: Position{1, 5}, End: Position{1, 6}}
	b := Token{Kind: OP, Text: ">", Start: Position{1, 6}, End: Position{1, 7}}
	c := Token{Kind: OP, Text: ">", Start: Position{1, 7}, End: Position{1, 8}}

	if !a.Adjacent(b) {
		t.Error("expected a adjacent to b")
	}
	if !b.Adjacent(c) {
		t.Error("expected b adjacent to c")
	}
	if a.Adjacent(c) {
		t.Error("a should not be adjacent to c (one token apart)")
	}
}

func TestIsKeywordAcceptsNameOrKeywordKind(t *testing.T) {
	nameTok := Token{Kind: NAME, Text: "class"}
	kwTok := Token{Kind: KEYWORD, Text: "class"}
	ident := Token{Kind: NAME, Text: "classy"}

	if !nameTok.IsKeyword("class") {
		t.Error("NAME-kind token carrying 'class' should report IsKeyword")
	}
	if !kwTok.IsKeyword("class") {
		t.Error("KEYWORD-kind token carrying 'class' should report IsKeyword")
	}
	if ident.IsKeyword("class") {
		t.Error("'classy' must not match IsKeyword(\"class\")")
	}
}

func TestVarIsReservedButNotAModifier(t *testing.T) {
	if !Keywords["var"] {
		t.Error("'var' must be a reserved word (spec §3.3, GLOSSARY)")
	}
	if Modifiers["var"] {
		t.Error("'var' is not a declaration modifier")
	}
}

func TestIsOpRequiresOpKind(t *testing.T) {
	op := Token{Kind: OP, Text: "+"}
	name := Token{Kind: NAME, Text: "+"} // can't really happen, but exercise the kind check
	if !op.IsOp("+") {
		t.Error("expected OP('+').IsOp(\"+\") to be true")
	}
	if name.IsOp("+") {
		t.Error("IsOp must require Kind == OP")
	}
}
