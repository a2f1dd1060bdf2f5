package padding

import "github.com/padlint/padlint/internal/parser"

// scope is one lexical nesting level. It owns no statements; it only
// remembers the last statement visited directly inside it.
type scope struct {
	upper *scope
	prev  *parser.Node
}

// ScopeStack tracks nested scopes during traversal. The zero value is
// ready to use; Enter must be called before Previous or SetPrevious.
type ScopeStack struct {
	top *scope
}

// Enter pushes a fresh scope with no previous statement.
func (s *ScopeStack) Enter() {
	s.top = &scope{upper: s.top}
}

// Exit pops the innermost scope, discarding its state.
func (s *ScopeStack) Exit() {
	if s.top != nil {
		s.top = s.top.upper
	}
}

// Previous returns the last statement recorded in the innermost scope,
// or nil when the scope is empty or no scope is open.
func (s *ScopeStack) Previous() *parser.Node {
	if s.top == nil {
		return nil
	}
	return s.top.prev
}

// SetPrevious records n as the innermost scope's last statement.
func (s *ScopeStack) SetPrevious(n *parser.Node) {
	if s.top != nil {
		s.top.prev = n
	}
}
