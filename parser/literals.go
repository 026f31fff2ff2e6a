package parser

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/cwbudde/go-javaparser/ast"
	"github.com/cwbudde/go-javaparser/lexer"
)

// parseNumberLiteral classifies a NUMBER token by its suffix/shape and
// re-emits it verbatim: numeric literal source spellings never need
// re-escaping, unlike string and char literals.
func (p *Parser) parseNumberLiteral() (ast.Expression, error) {
	cur := p.cur.Current()
	p.cur = p.cur.Advance()
	return &ast.Literal{
		BaseNode: finish(baseFrom(cur), cur.End),
		Kind:     classifyNumberKind(cur.Text),
		Raw:      cur.Text,
		Value:    cur.Text,
	}, nil
}

func classifyNumberKind(raw string) ast.LiteralKind {
	if raw == "" {
		return ast.IntLiteral
	}
	switch raw[len(raw)-1] {
	case 'l', 'L':
		return ast.LongLiteral
	case 'f', 'F':
		return ast.FloatLiteral
	case 'd', 'D':
		return ast.DoubleLiteral
	}
	isHexOrBinary := strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") ||
		strings.HasPrefix(raw, "0b") || strings.HasPrefix(raw, "0B")
	if !isHexOrBinary && (strings.Contains(raw, ".") || strings.ContainsAny(raw, "eE")) {
		return ast.DoubleLiteral
	}
	return ast.IntLiteral
}

// parseStringLiteral decodes raw lexer text (which may be a classic
// "..." literal or a Java 13+ text block) and re-encodes it into the
// canonical, always-valid Java spelling (spec §8 property 12).
func (p *Parser) parseStringLiteral() (ast.Expression, error) {
	cur := p.cur.Current()
	p.cur = p.cur.Advance()
	decoded, err := lexer.DecodeString(cur.Text)
	if err != nil {
		return nil, p.errAt(cur.Start, cur.Text, ErrInvalidLiteral, "invalid string literal: %v", err)
	}
	return &ast.Literal{
		BaseNode: finish(baseFrom(cur), cur.End),
		Kind:     ast.StringLiteral,
		Raw:      cur.Text,
		Value:    encodeJavaString(decoded),
	}, nil
}

func (p *Parser) parseCharLiteral() (ast.Expression, error) {
	cur := p.cur.Current()
	p.cur = p.cur.Advance()
	decoded, err := lexer.DecodeChar(cur.Text)
	if err != nil {
		return nil, p.errAt(cur.Start, cur.Text, ErrInvalidLiteral, "invalid char literal: %v", err)
	}
	return &ast.Literal{
		BaseNode: finish(baseFrom(cur), cur.End),
		Kind:     ast.CharLiteral,
		Raw:      cur.Text,
		Value:    encodeJavaChar(decoded),
	}, nil
}

// encodeJavaString re-escapes a decoded string into quoted Java source text.
// Backslash, the quote, \n, \r, \t, \b and \f use their short escapes; other
// code points below 0x20 and 0x7f become \u00xx, and code points above
// 0xFFFF become a surrogate pair of \u escapes. A \xNN form is never
// emitted, since Java source has no \x escape at all.
func encodeJavaString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		b.WriteString(escapeRune(r, '"'))
	}
	b.WriteByte('"')
	return b.String()
}

func encodeJavaChar(r rune) string {
	return "'" + escapeRune(r, '\'') + "'"
}

func escapeRune(r rune, quote rune) string {
	switch r {
	case '\\':
		return `\\`
	case quote:
		return `\` + string(quote)
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case '\b':
		return `\b`
	case '\f':
		return `\f`
	}
	if r < 0x20 || r == 0x7f {
		return fmt.Sprintf(`\u%04x`, r)
	}
	if r > 0xffff {
		r1, r2 := utf16.EncodeRune(r)
		return fmt.Sprintf(`\u%04x\u%04x`, r1, r2)
	}
	return string(r)
}
