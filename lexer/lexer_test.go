package lexer

import (
	"testing"

	"github.com/cwbudde/go-javaparser/token"
)

// collect tokenizes src and drops ENCODING/ENDMARKER bookkeeping tokens,
// returning only the tokens a parser cursor would ever see plus a trailing
// ENDMARKER, mirroring the Cursor's own filtering (spec §3.1, §6.1).
func collect(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New([]byte(src), "test.java")
	var toks []token.Token
	for {
		tok := l.NextToken()
		switch tok.Kind {
		case token.ENCODING:
			continue
		}
		toks = append(toks, tok)
		if tok.Kind == token.ENDMARKER {
			break
		}
	}
	return toks
}

func texts(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, tk := range toks {
		out[i] = tk.Text
	}
	return out
}

func TestLexerBasicTokens(t *testing.T) {
	toks := collect(t, "class C { int x = 1; }")
	want := []string{"class", "C", "{", "int", "x", "=", "1", ";", "}", ""}
	got := texts(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q want %q", i, got[i], want[i])
		}
	}
	if toks[len(toks)-1].Kind != token.ENDMARKER {
		t.Error("last token must be ENDMARKER")
	}
}

// TestShiftOperatorsStayUnfused verifies that '>>' and '>>>' are never
// emitted as single lexer tokens: the parser performs the fusion itself via
// adjacency (spec §4.1, §8 property 5), so `Map<K, List<V>>` remains
// parsable as nested generics.
func TestShiftOperatorsStayUnfused(t *testing.T) {
	toks := collect(t, "x >> 2; y >>> 3; Map<K, List<V>> m;")
	for _, tk := range toks {
		if tk.Kind == token.OP && (tk.Text == ">>" || tk.Text == ">>>") {
			t.Fatalf("lexer must not emit %q as a single token", tk.Text)
		}
	}
	// Each '>' in ">>" and ">>>" is its own adjacent token.
	var gts []token.Token
	for _, tk := range toks {
		if tk.IsOp(">") {
			gts = append(gts, tk)
		}
	}
	if len(gts) != 7 { // ">>" (2) + ">>>" (3) + "List<V>>" (2)
		t.Fatalf("expected 7 individual '>' tokens, got %d", len(gts))
	}
	if !gts[0].Adjacent(gts[1]) {
		t.Error("the two '>' tokens composing '>>' must be adjacent")
	}
	if !gts[2].Adjacent(gts[3]) || !gts[3].Adjacent(gts[4]) {
		t.Error("the three '>' tokens composing '>>>' must be pairwise adjacent")
	}
}

func TestLexerNumberSuffixesKeepRawText(t *testing.T) {
	cases := []string{"123", "123L", "1.5", "1.5f", "1.5d", "0x1F", "0b101", "1e10", "1_000_000"}
	for _, src := range cases {
		toks := collect(t, src+";")
		if toks[0].Kind != token.NUMBER {
			t.Fatalf("%q: expected NUMBER, got %s", src, toks[0].Kind)
		}
		if toks[0].Text != src {
			t.Errorf("%q: NUMBER token text = %q, want verbatim suffix preserved", src, toks[0].Text)
		}
	}
}

func TestLexerSkipsCommentsButKeepsThemQueryable(t *testing.T) {
	toks := collect(t, "/** doc */ class C {}")
	var kinds []token.Kind
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	// COMMENT must still be produced by NextToken (the Cursor is what
	// filters it out while remembering it for Javadoc attachment).
	if toks[0].Kind != token.COMMENT {
		t.Fatalf("expected first raw token to be COMMENT, got %s", toks[0].Kind)
	}
	if toks[0].Text != "/** doc */" {
		t.Errorf("comment text = %q", toks[0].Text)
	}
}

func TestDecodeStringHandlesEscapesAndUnicode(t *testing.T) {
	decoded, err := DecodeString(`"a\tbé"`)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	want := "a\tbé"
	if decoded != want {
		t.Errorf("decoded = %q, want %q", decoded, want)
	}
}

func TestDecodeStringTextBlock(t *testing.T) {
	decoded, err := DecodeString("\"\"\"\nhello\"\"\"")
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if decoded != "hello" {
		t.Errorf("decoded text block = %q, want %q", decoded, "hello")
	}
}

func TestDecodeCharRejectsMultiCodepoint(t *testing.T) {
	if _, err := DecodeChar(`'ab'`); err == nil {
		t.Error("expected an error decoding a two-codepoint char literal")
	}
}

func TestLexerIdentifierNFCNormalization(t *testing.T) {
	// An NFD decomposition (e + combining acute, U+0065 U+0301) must come
	// back as one NFC-normalized rune (U+00E9) so it compares equal to its
	// precomposed spelling when checked against keyword/var text.
	decomposed := "caf" + "e" + "\u0301"
	toks := collect(t, decomposed+";")
	if toks[0].Kind != token.NAME {
		t.Fatalf("expected NAME, got %s", toks[0].Kind)
	}
	precomposed := "caf" + "\u00e9"
	if toks[0].Text != precomposed {
		t.Errorf("identifier not NFC-normalized: got %q, want %q", toks[0].Text, precomposed)
	}
}
