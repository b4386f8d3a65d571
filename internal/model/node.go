package model

// Kind is the closed set of syntax node kinds the minifier reacts to.
// Everything else the parser produces is folded into KindOther.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	KindOther                Kind = iota // other
	KindFile                             // translation_unit
	KindIdentifier                       // identifier
	KindName                             // name
	KindComment                          // comment
	KindCompound                         // compound_statement
	KindFunction                         // function_definition
	KindFunctionDeclarator               // function_declarator
	KindFieldList                        // field_declaration_list
	KindEnumeratorList                   // enumerator_list
	KindDeclaration                      // declaration
	KindParameterDeclaration             // parameter_declaration
	KindFieldDeclaration                 // field_declaration
	KindInitDeclarator                   // init_declarator
	KindDeclarator                       // declarator
	KindFieldAccess                      // field_expression
	KindStorageClass                     // storage_class_specifier
	KindMacroDefinition                  // preproc_def
	KindMacroParams                      // preproc_params
	KindMacroValue                       // preproc_arg
)

// OpensScope reports whether entering a node of this kind pushes an
// unprotected scope.
func (k Kind) OpensScope() bool {
	return k == KindCompound || k == KindFunction
}

// IsProtectedBody reports whether the node is a struct/union/enum body.
func (k Kind) IsProtectedBody() bool {
	return k == KindFieldList || k == KindEnumeratorList
}

// IsDeclarationOwner reports whether the kind is a declaration statement
// that can own declarators.
func (k Kind) IsDeclarationOwner() bool {
	return k == KindDeclaration || k == KindParameterDeclaration || k == KindFieldDeclaration
}

// Node is a read-only concrete syntax tree node over a source buffer.
type Node struct {
	Kind     Kind
	Type     string // raw grammar tag, kept for diagnostics
	Start    int
	End      int
	Parent   *Node
	Children []*Node
	fields   map[string]*Node
}

// NewNode creates a detached node covering [start, end).
func NewNode(kind Kind, typ string, start, end int) *Node {
	return &Node{Kind: kind, Type: typ, Start: start, End: end}
}

// Append links child under n and returns n for chaining.
func (n *Node) Append(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)

	return n
}

// AppendField links child under n and registers it under a field name.
func (n *Node) AppendField(name string, child *Node) *Node {
	n.Append(child)

	if n.fields == nil {
		n.fields = make(map[string]*Node, 1)
	}

	n.fields[name] = child

	return n
}

// Field returns the child registered under name, or nil.
func (n *Node) Field(name string) *Node {
	return n.fields[name]
}

// Text returns the bytes of src covered by n.
func (n *Node) Text(src []byte) string {
	if n.Start < 0 || n.End > len(src) || n.Start > n.End {
		return ""
	}

	return string(src[n.Start:n.End])
}

// Walk visits n and its descendants in document order until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}

	for _, child := range n.Children {
		child.Walk(fn)
	}
}
