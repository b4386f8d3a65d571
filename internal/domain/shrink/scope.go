package shrink

// scope is one lexical nesting level: its rename table and the next
// candidate index for generated names.
type scope struct {
	names     map[string]string
	next      int
	protected bool
}

// scopeStack owns the active scopes. Index 0 is the file scope and lives for
// the whole traversal; the top of the stack is the current scope.
type scopeStack struct {
	scopes   []*scope
	gen      *nameGenerator
	maxDepth int
	entries  int
}

func newScopeStack(gen *nameGenerator) *scopeStack {
	return &scopeStack{
		scopes: []*scope{{names: map[string]string{}}},
		gen:    gen,
	}
}

// push opens a new scope and returns the function that closes it. The new
// scope continues numbering where its parent stands, so names visible at the
// same time never coincide while sibling scopes reuse the same names.
func (s *scopeStack) push(protected bool) (release func()) {
	child := &scope{
		names:     map[string]string{},
		next:      s.top().next,
		protected: protected,
	}
	s.scopes = append(s.scopes, child)

	if depth := s.depth(); depth > s.maxDepth {
		s.maxDepth = depth
	}

	height := len(s.scopes)

	return func() {
		if len(s.scopes) != height {
			panic("shrink: unbalanced scope release")
		}

		s.scopes = s.scopes[:height-1]
	}
}

// depth is the number of scopes above the file scope.
func (s *scopeStack) depth() int {
	return len(s.scopes) - 1
}

func (s *scopeStack) top() *scope {
	return s.scopes[len(s.scopes)-1]
}

func (s *scopeStack) global() *scope {
	return s.scopes[0]
}

// declare registers name in sc, reusing an existing entry.
func (s *scopeStack) declare(sc *scope, name string) string {
	if short, ok := sc.names[name]; ok {
		return short
	}

	short := s.gen.next(&sc.next)
	sc.names[name] = short
	s.entries++

	return short
}

// keep registers name in sc under its own spelling.
func (s *scopeStack) keep(sc *scope, name string) {
	if _, ok := sc.names[name]; !ok {
		sc.names[name] = name
	}
}

// resolve looks name up from the innermost scope outwards.
func (s *scopeStack) resolve(name string) (string, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if short, ok := s.scopes[i].names[name]; ok {
			return short, true
		}
	}

	return "", false
}
