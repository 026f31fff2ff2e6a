package parser

import "github.com/cwbudde/go-javaparser/ast"

// preStatements is the extension hook described in spec §9: the reference
// implementation lets a statement's parse routine prepend synthesised
// statements ahead of the one it returns. For pure Java input this buffer is
// always empty, so it is retained here only as a trivial no-op manager —
// Apply always returns its input unchanged. A future language extension that
// needs to desugar a construct into several statements would push onto this
// stack instead of threading extra return values through every statement
// parser.
type preStatements struct {
	stack [][]ast.Statement
}

func (s *preStatements) push() {
	s.stack = append(s.stack, nil)
}

func (s *preStatements) pop() []ast.Statement {
	n := len(s.stack)
	top := s.stack[n-1]
	s.stack = s.stack[:n-1]
	return top
}

// Apply prepends any buffered pre-statements onto stmt and clears the
// buffer. Always a no-op for this grammar (see doc comment above).
func (s *preStatements) Apply(stmt ast.Statement) []ast.Statement {
	pre := s.pop()
	if len(pre) == 0 {
		return []ast.Statement{stmt}
	}
	return append(pre, stmt)
}
