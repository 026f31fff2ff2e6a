package parser

import (
	"github.com/cwbudde/go-javaparser/lexer"
	"github.com/cwbudde/go-javaparser/token"
)

// Cursor is a look-ahead buffer over the filtered token stream (spec §4.1).
// It is immutable: every navigation method returns a new Cursor, the same
// discipline the teacher repository's TokenCursor uses, so speculative
// parsing is just "save a Mark, try, and either keep the resulting cursor or
// go back to the Mark" with no mutable undo log.
//
// ENCODING, COMMENT, NEWLINE, INDENT and DEDENT tokens never appear as a
// Current()/Peek() result — they are filtered here once, at the boundary
// with the lexer, exactly as the lexer contract promises (spec §3.1, §6.1).
// COMMENT tokens are not discarded, though: the nearest one preceding each
// significant token is kept in precedingComment so Javadoc attachment
// (spec §8 property 11) does not need to re-scan raw lexer output.
type Cursor struct {
	lex              *lexer.Lexer
	tokens           []token.Token
	precedingComment []*token.Token
	index            int
}

// NewCursor creates a Cursor positioned at the first significant token of l.
func NewCursor(l *lexer.Lexer) *Cursor {
	c := &Cursor{lex: l}
	c.fillTo(0)
	return c
}

// fillTo ensures tokens[0..n] are populated, skipping ENCODING/COMMENT and
// the layout tokens the lexer never emits, recording the nearest comment
// that preceded each significant token along the way.
func (c *Cursor) fillTo(n int) {
	var pending *token.Token
	for len(c.tokens) <= n {
		if len(c.tokens) > 0 && c.tokens[len(c.tokens)-1].Kind == token.ENDMARKER {
			// Keep returning the same ENDMARKER forever once reached.
			c.tokens = append(c.tokens, c.tokens[len(c.tokens)-1])
			c.precedingComment = append(c.precedingComment, nil)
			continue
		}
		raw := c.lex.NextToken()
		switch raw.Kind {
		case token.ENCODING, token.NEWLINE, token.INDENT, token.DEDENT:
			continue
		case token.COMMENT:
			r := raw
			pending = &r
			continue
		default:
			c.tokens = append(c.tokens, raw)
			c.precedingComment = append(c.precedingComment, pending)
			pending = nil
		}
	}
}

// Current returns the token at the cursor's position.
func (c *Cursor) Current() token.Token {
	c.fillTo(c.index)
	return c.tokens[c.index]
}

// Peek returns the token n positions ahead (n >= 0); Peek(0) == Current().
func (c *Cursor) Peek(n int) token.Token {
	if n < 0 {
		return c.Current()
	}
	c.fillTo(c.index + n)
	return c.tokens[c.index+n]
}

// Previous returns the most recently consumed significant token, i.e.
// look(-1) restricted to the filtered stream. Used for error locations and
// for contextual checks that need "what did we just pass".
func (c *Cursor) Previous() token.Token {
	if c.index == 0 {
		return c.Current()
	}
	return c.tokens[c.index-1]
}

// PrecedingComment returns the raw COMMENT token immediately preceding the
// current token, if any — the mechanism behind Javadoc attachment.
func (c *Cursor) PrecedingComment() (token.Token, bool) {
	c.fillTo(c.index)
	if c.precedingComment[c.index] == nil {
		return token.Token{}, false
	}
	return *c.precedingComment[c.index], true
}

// Advance returns a new Cursor one significant token further along.
func (c *Cursor) Advance() *Cursor {
	return c.AdvanceN(1)
}

// AdvanceN returns a new Cursor n significant tokens further along.
func (c *Cursor) AdvanceN(n int) *Cursor {
	if n <= 0 {
		return c
	}
	c.fillTo(c.index + n)
	next := c.index + n
	if next >= len(c.tokens) {
		next = len(c.tokens) - 1
	}
	return &Cursor{lex: c.lex, tokens: c.tokens, precedingComment: c.precedingComment, index: next}
}

// Is reports whether Current() is an OP/NAME/etc. token with exactly this
// text (keyword or operator spelling).
func (c *Cursor) Is(text string) bool {
	return c.Current().Text == text
}

// IsKind reports whether Current() has the given Kind.
func (c *Cursor) IsKind(k token.Kind) bool {
	return c.Current().Kind == k
}

// IsOp reports whether Current() is an OP token with exactly this text.
func (c *Cursor) IsOp(text string) bool {
	return c.Current().IsOp(text)
}

// IsKeyword reports whether Current() carries the given reserved spelling.
func (c *Cursor) IsKeyword(text string) bool {
	return c.Current().IsKeyword(text)
}

// IsEOF reports whether Current() is the ENDMARKER token.
func (c *Cursor) IsEOF() bool {
	return c.Current().Kind == token.ENDMARKER
}

// Mark is a lightweight saved cursor position (spec: "push_marker").
type Mark struct {
	index int
}

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark{index: c.index}
}

// ResetTo restores a previously saved position ("pop_marker(reset=true)").
func (c *Cursor) ResetTo(m Mark) *Cursor {
	return &Cursor{lex: c.lex, tokens: c.tokens, precedingComment: c.precedingComment, index: m.index}
}

// AdjacentGT reports whether Current() and the next count-1 tokens are all
// adjacent '>' OP tokens (no intervening source text), the condition for
// '>>'/'>>>' shift-operator fusion (spec §4.1, §4.4, §8 property 5).
func (c *Cursor) AdjacentGT(count int) bool {
	prev := c.Peek(0)
	if !prev.IsOp(">") {
		return false
	}
	for i := 1; i < count; i++ {
		next := c.Peek(i)
		if !next.IsOp(">") || !prev.Adjacent(next) {
			return false
		}
		prev = next
	}
	return true
}
