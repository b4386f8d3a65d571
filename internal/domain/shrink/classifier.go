package shrink

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/cmin/internal/model"
)

// ErrTooDeep is returned when the tree nests deeper than the configured limit.
var ErrTooDeep = errors.New("syntax tree nesting exceeds depth limit")

// RenameOptions tunes the identifier classifier.
type RenameOptions struct {
	// MaxDepth bounds the traversal depth; zero means m.DefaultMaxDepth.
	MaxDepth int
	// Reserved names are never generated.
	Reserved []string
}

// RenameResult is the classifier's output.
type RenameResult struct {
	Edits          []m.Edit
	Renamed        int // occurrences rewritten
	NamesGenerated int // rename table entries across all scopes
	MaxScopeDepth  int
}

// walkContext is threaded through the traversal by value.
type walkContext struct {
	inFunction bool
	frozen     bool // inside a function marked cmin:keep
	depth      int
}

func (w walkContext) deeper() walkContext {
	w.depth++
	return w
}

type classifier struct {
	src      []byte
	stack    *scopeStack
	pinned   wordSet
	keep     keepIndex
	maxDepth int
	edits    []m.Edit
	renamed  int
}

// Rename classifies every identifier under root and returns one replacement
// edit per renamed occurrence.
func Rename(root *m.Node, src []byte, opts RenameOptions) (RenameResult, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = m.DefaultMaxDepth
	}

	keep := buildKeepIndex(root, src)
	if keep.file {
		return RenameResult{}, nil
	}

	words, pinned := collectWords(root, src)
	pinned.add(keysOf(keep.names)...)
	avoid := append(words, opts.Reserved...)

	c := &classifier{
		src:      src,
		stack:    newScopeStack(newNameGenerator(avoid...)),
		pinned:   pinned,
		keep:     keep,
		maxDepth: maxDepth,
	}

	if err := c.visit(root, walkContext{}); err != nil {
		return RenameResult{}, err
	}

	return RenameResult{
		Edits:          c.edits,
		Renamed:        c.renamed,
		NamesGenerated: c.stack.entries,
		MaxScopeDepth:  c.stack.maxDepth,
	}, nil
}

func (c *classifier) visit(n *m.Node, ctx walkContext) error {
	if ctx.depth > c.maxDepth {
		return fmt.Errorf("%w (%d) at byte %d", ErrTooDeep, c.maxDepth, n.Start)
	}

	switch n.Kind {
	case m.KindIdentifier:
		c.identifier(n, ctx)
		return nil
	case m.KindCompound, m.KindFunction:
		inner := ctx.deeper()
		inner.inFunction = true
		inner.frozen = ctx.frozen || c.keep.frozen(n)

		return c.scoped(n, false, inner)
	case m.KindFieldList, m.KindEnumeratorList:
		return c.scoped(n, true, ctx.deeper())
	case m.KindMacroDefinition:
		// Macro text is opaque to the tree; nothing inside is renamed.
		return nil
	case m.KindOther, m.KindFile, m.KindName, m.KindComment, m.KindFunctionDeclarator,
		m.KindDeclaration, m.KindParameterDeclaration, m.KindFieldDeclaration,
		m.KindInitDeclarator, m.KindDeclarator, m.KindFieldAccess, m.KindStorageClass,
		m.KindMacroParams, m.KindMacroValue:
		return c.children(n, ctx.deeper())
	default:
		return fmt.Errorf("unhandled node kind %s", n.Kind)
	}
}

// scoped visits n's children inside a freshly pushed scope.
func (c *classifier) scoped(n *m.Node, protected bool, ctx walkContext) error {
	release := c.stack.push(protected)
	defer release()

	return c.children(n, ctx)
}

func (c *classifier) children(n *m.Node, ctx walkContext) error {
	for _, child := range n.Children {
		if err := c.visit(child, ctx); err != nil {
			return err
		}
	}

	return nil
}

func (c *classifier) identifier(n *m.Node, ctx walkContext) {
	name := n.Text(c.src)

	if IsReserved(name) || isMemberName(n) || insideProtectedBody(n) {
		return
	}

	if !isDeclarationSite(n) {
		if short, ok := c.stack.resolve(name); ok {
			c.replace(n, short)
		}

		return
	}

	if c.pinned.has(name) {
		return
	}

	decl := owningDeclaration(n)

	switch {
	case decl != nil && hasStorageClass(decl, c.src, "extern"):
		// The name links to a definition elsewhere.
		return
	case decl != nil && isPrototypeParameter(decl):
		return
	case decl != nil && decl.Parent != nil && decl.Parent.Kind == m.KindFile && hasStorageClass(decl, c.src, "static"):
		c.replace(n, c.stack.declare(c.stack.global(), name))
	case ctx.frozen && c.stack.depth() > 0 && !c.stack.top().protected:
		// Still shadows outer renamed names.
		c.stack.keep(c.stack.top(), name)
	case ctx.inFunction && c.stack.depth() > 0 && !c.stack.top().protected:
		c.replace(n, c.stack.declare(c.stack.top(), name))
	}
}

func (c *classifier) replace(n *m.Node, short string) {
	if short == n.Text(c.src) {
		return
	}

	c.renamed++
	c.edits = append(c.edits, m.Replace(n.Start, n.End, short))
}

// isMemberName reports whether n is the member side of `.member` or `->member`.
func isMemberName(n *m.Node) bool {
	p := n.Parent
	return p != nil && p.Kind == m.KindFieldAccess && p.Field("field") == n
}

func insideProtectedBody(n *m.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Kind.IsProtectedBody() {
			return true
		}
	}

	return false
}

// isDeclarationSite reports whether n is the name introduced by a
// declarator. Function names (direct children of a function declarator) are
// excluded: renaming a prototype would detach it from its definition.
func isDeclarationSite(n *m.Node) bool {
	p := n.Parent
	if p == nil {
		return false
	}

	switch p.Kind {
	case m.KindDeclaration, m.KindFieldDeclaration:
		return true
	case m.KindParameterDeclaration, m.KindInitDeclarator:
		return p.Field("declarator") == n
	case m.KindDeclarator:
		if p.Field("declarator") != n {
			return false
		}

		return owningDeclaration(n) != nil
	default:
		return false
	}
}

// owningDeclaration climbs from an identifier through its declarator chain
// and returns the declaration, parameter declaration or field declaration
// that owns it, or nil when the chain reaches an unrelated node first.
func owningDeclaration(n *m.Node) *m.Node {
	child := n

	for p := n.Parent; p != nil; child, p = p, p.Parent {
		switch p.Kind {
		case m.KindDeclaration, m.KindParameterDeclaration, m.KindFieldDeclaration:
			return p
		case m.KindInitDeclarator, m.KindDeclarator, m.KindFunctionDeclarator:
			if p.Field("declarator") != child {
				return nil
			}
		default:
			return nil
		}
	}

	return nil
}

// isPrototypeParameter reports whether decl is a parameter of a function
// declarator that does not head a function definition, such as a local
// prototype or a function pointer. Its name is not in scope anywhere.
func isPrototypeParameter(decl *m.Node) bool {
	if decl.Kind != m.KindParameterDeclaration {
		return false
	}

	list := decl.Parent
	if list == nil || list.Parent == nil || list.Parent.Kind != m.KindFunctionDeclarator {
		return false
	}

	for p := list.Parent.Parent; p != nil; p = p.Parent {
		switch p.Kind {
		case m.KindFunction:
			return false
		case m.KindDeclarator:
		default:
			return true
		}
	}

	return true
}

func hasStorageClass(decl *m.Node, src []byte, class string) bool {
	for _, child := range decl.Children {
		if child.Kind == m.KindStorageClass && child.Text(src) == class {
			return true
		}
	}

	return false
}
