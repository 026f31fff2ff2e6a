// Package lexer tokenizes Java source text for the parser in package
// parser. The parser treats the lexer strictly as a consumed interface
// (spec §6.1): it only depends on the token.Kind/Text/Start/End/Line
// contract, never on this package's internals.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/cwbudde/go-javaparser/token"
)

// Lexer turns a byte slice of Java source into a stream of tokens, one
// NextToken call at a time. It never emits NEWLINE, INDENT, or DEDENT —
// those Kind values exist in the token package only for interface
// completeness (mirroring the Python `tokenize`-derived reference this
// grammar was ported from); Java has no layout-sensitive grammar, so there
// is nothing for the parser to filter.
type Lexer struct {
	filename string
	runes    []rune
	lines    []string
	pos      int
	line     int // 1-based
	col      int // 1-based, in runes
	sentEnc  bool
	sentEnd  bool
}

// New creates a Lexer over src. filename is stored on the Lexer but not
// used by it; the lexer itself does not report filenames.
func New(src []byte, filename string) *Lexer {
	text := string(src)
	return &Lexer{
		filename: filename,
		runes:    []rune(text),
		lines:    strings.Split(text, "\n"),
		pos:      0,
		line:     1,
		col:      1,
	}
}

func (l *Lexer) currentLine() string {
	if l.line-1 < len(l.lines) {
		return l.lines[l.line-1]
	}
	return ""
}

func (l *Lexer) pPos() token.Position {
	return token.Position{Line: l.line, Column: l.col}
}

func (l *Lexer) peekRune() (rune, bool) {
	if l.pos >= len(l.runes) {
		return 0, false
	}
	return l.runes[l.pos], true
}

func (l *Lexer) peekRuneAt(offset int) (rune, bool) {
	idx := l.pos + offset
	if idx >= len(l.runes) {
		return 0, false
	}
	return l.runes[idx], true
}

func (l *Lexer) advanceRune() rune {
	r := l.runes[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func isJavaIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isJavaIdentPart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// NextToken returns the next token in the stream. After the ENDMARKER token
// has been produced once, subsequent calls keep returning it, matching the
// lexer contract's "ends with one ENDMARKER token" guarantee for cursors
// that peek past the logical end of input.
func (l *Lexer) NextToken() token.Token {
	if !l.sentEnc {
		l.sentEnc = true
		return token.Token{Kind: token.ENCODING, Text: "utf-8", Start: l.pPos(), End: l.pPos(), Line: l.currentLine()}
	}

	l.skipWhitespace()

	start := l.pPos()
	line := l.currentLine()

	r, ok := l.peekRune()
	if !ok {
		l.sentEnd = true
		return token.Token{Kind: token.ENDMARKER, Text: "", Start: start, End: start, Line: line}
	}

	switch {
	case r == '/' && l.peekIs(1, '/'):
		return l.lexLineComment(start, line)
	case r == '/' && l.peekIs(1, '*'):
		return l.lexBlockComment(start, line)
	case r == '"' && l.peekIs(1, '"') && l.peekIs(2, '"'):
		return l.lexTextBlock(start, line)
	case r == '"':
		return l.lexString(start, line)
	case r == '\'':
		return l.lexChar(start, line)
	case isJavaIdentStart(r):
		return l.lexIdent(start, line)
	case unicode.IsDigit(r) || (r == '.' && l.peekDigitAt(1)):
		return l.lexNumber(start, line)
	default:
		return l.lexOperator(start, line)
	}
}

func (l *Lexer) peekIs(offset int, want rune) bool {
	r, ok := l.peekRuneAt(offset)
	return ok && r == want
}

func (l *Lexer) peekDigitAt(offset int) bool {
	r, ok := l.peekRuneAt(offset)
	return ok && unicode.IsDigit(r)
}

func (l *Lexer) skipWhitespace() {
	for {
		r, ok := l.peekRune()
		if !ok {
			return
		}
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\f' {
			l.advanceRune()
			continue
		}
		return
	}
}

func (l *Lexer) lexLineComment(start token.Position, line string) token.Token {
	var b strings.Builder
	for {
		r, ok := l.peekRune()
		if !ok || r == '\n' {
			break
		}
		b.WriteRune(l.advanceRune())
	}
	return token.Token{Kind: token.COMMENT, Text: b.String(), Start: start, End: l.pPos(), Line: line}
}

func (l *Lexer) lexBlockComment(start token.Position, line string) token.Token {
	var b strings.Builder
	b.WriteRune(l.advanceRune()) // '/'
	b.WriteRune(l.advanceRune()) // '*'
	for {
		r, ok := l.peekRune()
		if !ok {
			break
		}
		if r == '*' && l.peekIs(1, '/') {
			b.WriteRune(l.advanceRune())
			b.WriteRune(l.advanceRune())
			break
		}
		b.WriteRune(l.advanceRune())
	}
	return token.Token{Kind: token.COMMENT, Text: b.String(), Start: start, End: l.pPos(), Line: line}
}

func (l *Lexer) lexIdent(start token.Position, line string) token.Token {
	var b strings.Builder
	for {
		r, ok := l.peekRune()
		if !ok || !isJavaIdentPart(r) {
			break
		}
		b.WriteRune(l.advanceRune())
	}
	text := norm.NFC.String(b.String())
	kind := token.NAME
	return token.Token{Kind: kind, Text: text, Start: start, End: l.pPos(), Line: line}
}

func (l *Lexer) lexNumber(start token.Position, line string) token.Token {
	var b strings.Builder
	// hex / binary / octal prefix
	if r, _ := l.peekRune(); r == '0' {
		if n, ok := l.peekRuneAt(1); ok && (n == 'x' || n == 'X') {
			b.WriteRune(l.advanceRune())
			b.WriteRune(l.advanceRune())
			l.scanDigits(&b, isHexDigit)
			l.scanFloatSuffixOrIntSuffix(&b, false)
			return token.Token{Kind: token.NUMBER, Text: b.String(), Start: start, End: l.pPos(), Line: line}
		}
		if n, ok := l.peekRuneAt(1); ok && (n == 'b' || n == 'B') {
			b.WriteRune(l.advanceRune())
			b.WriteRune(l.advanceRune())
			l.scanDigits(&b, func(r rune) bool { return r == '0' || r == '1' || r == '_' })
			l.scanIntSuffix(&b)
			return token.Token{Kind: token.NUMBER, Text: b.String(), Start: start, End: l.pPos(), Line: line}
		}
	}

	l.scanDigits(&b, unicode.IsDigit)
	isFloat := false
	if r, ok := l.peekRune(); ok && r == '.' {
		if n, ok2 := l.peekRuneAt(1); !ok2 || n != '.' {
			isFloat = true
			b.WriteRune(l.advanceRune())
			l.scanDigits(&b, unicode.IsDigit)
		}
	}
	if r, ok := l.peekRune(); ok && (r == 'e' || r == 'E') {
		isFloat = true
		b.WriteRune(l.advanceRune())
		if r2, ok2 := l.peekRune(); ok2 && (r2 == '+' || r2 == '-') {
			b.WriteRune(l.advanceRune())
		}
		l.scanDigits(&b, unicode.IsDigit)
	}
	l.scanFloatSuffixOrIntSuffix(&b, isFloat)
	return token.Token{Kind: token.NUMBER, Text: b.String(), Start: start, End: l.pPos(), Line: line}
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') || r == '_'
}

func (l *Lexer) scanDigits(b *strings.Builder, pred func(rune) bool) {
	for {
		r, ok := l.peekRune()
		if !ok || !(pred(r) || r == '_') {
			break
		}
		b.WriteRune(l.advanceRune())
	}
}

func (l *Lexer) scanIntSuffix(b *strings.Builder) {
	if r, ok := l.peekRune(); ok && (r == 'l' || r == 'L') {
		b.WriteRune(l.advanceRune())
	}
}

func (l *Lexer) scanFloatSuffixOrIntSuffix(b *strings.Builder, isFloat bool) {
	r, ok := l.peekRune()
	if !ok {
		return
	}
	switch r {
	case 'f', 'F', 'd', 'D':
		b.WriteRune(l.advanceRune())
	case 'l', 'L':
		if !isFloat {
			b.WriteRune(l.advanceRune())
		}
	}
}

func (l *Lexer) lexString(start token.Position, line string) token.Token {
	var b strings.Builder
	b.WriteRune(l.advanceRune()) // opening quote
	for {
		r, ok := l.peekRune()
		if !ok || r == '\n' {
			break
		}
		if r == '\\' {
			b.WriteRune(l.advanceRune())
			if r2, ok2 := l.peekRune(); ok2 {
				b.WriteRune(l.advanceRune())
				_ = r2
			}
			continue
		}
		b.WriteRune(l.advanceRune())
		if r == '"' {
			break
		}
	}
	return token.Token{Kind: token.STRING, Text: b.String(), Start: start, End: l.pPos(), Line: line}
}

func (l *Lexer) lexTextBlock(start token.Position, line string) token.Token {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		b.WriteRune(l.advanceRune())
	}
	for {
		r, ok := l.peekRune()
		if !ok {
			break
		}
		if r == '\\' {
			b.WriteRune(l.advanceRune())
			if _, ok2 := l.peekRune(); ok2 {
				b.WriteRune(l.advanceRune())
			}
			continue
		}
		if r == '"' && l.peekIs(1, '"') && l.peekIs(2, '"') {
			b.WriteRune(l.advanceRune())
			b.WriteRune(l.advanceRune())
			b.WriteRune(l.advanceRune())
			break
		}
		b.WriteRune(l.advanceRune())
	}
	return token.Token{Kind: token.STRING, Text: b.String(), Start: start, End: l.pPos(), Line: line}
}

func (l *Lexer) lexChar(start token.Position, line string) token.Token {
	var b strings.Builder
	b.WriteRune(l.advanceRune()) // opening quote
	for {
		r, ok := l.peekRune()
		if !ok || r == '\n' {
			break
		}
		if r == '\\' {
			b.WriteRune(l.advanceRune())
			if _, ok2 := l.peekRune(); ok2 {
				b.WriteRune(l.advanceRune())
			}
			continue
		}
		b.WriteRune(l.advanceRune())
		if r == '\'' {
			break
		}
	}
	return token.Token{Kind: token.CHAR, Text: b.String(), Start: start, End: l.pPos(), Line: line}
}

// threeCharOps/twoCharOps deliberately exclude ">>" and ">>>": the parser
// performs shift-operator recognition itself via adjacent-token fusion over
// single '>' tokens (spec §4.1), so the lexer must never coalesce them —
// doing so would make `Map<K, List<V>>` unparsable as nested generics.
var fourCharOps = []string{">>>="}
var threeCharOps = []string{"<<=", "...", ">>="}
var twoCharOps = []string{
	"==", "!=", "<=", ">=", "&&", "||", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<",
	"->", "::",
}
var oneCharOps = "+-*/%=<>!&|^~?:;,.()[]{}@"

func (l *Lexer) lexOperator(start token.Position, line string) token.Token {
	for _, op := range fourCharOps {
		if l.matchesLiteral(op) {
			return l.consumeOp(op, start, line)
		}
	}
	for _, op := range threeCharOps {
		if l.matchesLiteral(op) {
			return l.consumeOp(op, start, line)
		}
	}
	for _, op := range twoCharOps {
		if l.matchesLiteral(op) {
			return l.consumeOp(op, start, line)
		}
	}
	r, ok := l.peekRune()
	if ok && strings.ContainsRune(oneCharOps, r) {
		l.advanceRune()
		return token.Token{Kind: token.OP, Text: string(r), Start: start, End: l.pPos(), Line: line}
	}
	// Unrecognised byte: emit as a one-rune OP rather than panicking; the
	// parser will reject it with "illegal start of expression" or similar.
	if ok {
		l.advanceRune()
		return token.Token{Kind: token.OP, Text: string(r), Start: start, End: l.pPos(), Line: line}
	}
	l.sentEnd = true
	return token.Token{Kind: token.ENDMARKER, Text: "", Start: start, End: start, Line: line}
}

func (l *Lexer) matchesLiteral(s string) bool {
	rs := []rune(s)
	for i, want := range rs {
		r, ok := l.peekRuneAt(i)
		if !ok || r != want {
			return false
		}
	}
	return true
}

func (l *Lexer) consumeOp(s string, start token.Position, line string) token.Token {
	for range []rune(s) {
		l.advanceRune()
	}
	return token.Token{Kind: token.OP, Text: s, Start: start, End: l.pPos(), Line: line}
}

// RuneLen returns the number of runes (Unicode code points) in s.
func RuneLen(s string) int { return utf8.RuneCountInString(s) }
