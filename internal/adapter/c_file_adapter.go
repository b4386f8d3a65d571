package adapter

import (
	"context"
	"errors"
	"fmt"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"

	m "github.com/mouse-blink/cmin/internal/model"
)

// errNilRoot is returned when tree-sitter hands back a tree without a root.
var errNilRoot = errors.New("tree-sitter returned nil root node")

// CFileAdapter encapsulates C parsing so the domain layer only ever sees the
// owned model.Node tree and never the tree-sitter bindings.
type CFileAdapter interface {
	// Parse builds a concrete syntax tree for src.
	Parse(ctx context.Context, src []byte) (*m.Node, error)
}

// LocalCFileAdapter provides a CFileAdapter backed by the tree-sitter C grammar.
type LocalCFileAdapter struct{}

// NewLocalCFileAdapter constructs a LocalCFileAdapter.
func NewLocalCFileAdapter() *LocalCFileAdapter {
	return &LocalCFileAdapter{}
}

// Parse runs tree-sitter over src and converts the result. Trees containing
// ERROR nodes are returned as-is; recovery is tree-sitter's business.
func (a *LocalCFileAdapter) Parse(ctx context.Context, src []byte) (*m.Node, error) {
	// Create tree-sitter parser (new instance per call for thread safety)
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(c.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, errNilRoot
	}

	return convertTree(root)
}

type pending struct {
	ts     *sitter.Node
	parent *m.Node
	field  string
}

// convertTree copies the tree-sitter tree into model nodes. It uses an
// explicit work stack so that deeply nested input cannot exhaust the
// goroutine stack.
func convertTree(root *sitter.Node) (*m.Node, error) {
	var out *m.Node

	stack := []pending{{ts: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node, err := convertNode(top.ts)
		if err != nil {
			return nil, err
		}

		switch {
		case top.parent == nil:
			out = node
		case top.field != "":
			top.parent.AppendField(top.field, node)
		default:
			top.parent.Append(node)
		}

		count := int(top.ts.ChildCount())
		fieldName, fieldChild := namedFieldOf(top.ts, node.Kind)

		// Push in reverse so children are linked in document order.
		for i := count - 1; i >= 0; i-- {
			child := top.ts.Child(i)
			if child == nil {
				continue
			}

			field := ""
			if fieldChild != nil && sameSpan(child, fieldChild) {
				field = fieldName
			}

			stack = append(stack, pending{ts: child, parent: node, field: field})
		}
	}

	return out, nil
}

func convertNode(ts *sitter.Node) (*m.Node, error) {
	start, err := safecast.Conv[int](ts.StartByte())
	if err != nil {
		return nil, fmt.Errorf("start offset of %s: %w", ts.Type(), err)
	}

	end, err := safecast.Conv[int](ts.EndByte())
	if err != nil {
		return nil, fmt.Errorf("end offset of %s: %w", ts.Type(), err)
	}

	typ := ts.Type()

	return m.NewNode(KindOf(typ), typ, start, end), nil
}

// namedFieldOf returns the field name tracked for kind and the matching child.
func namedFieldOf(ts *sitter.Node, kind m.Kind) (string, *sitter.Node) {
	name, ok := namedFields[kind]
	if !ok {
		return "", nil
	}

	return name, ts.ChildByFieldName(name)
}

func sameSpan(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// kindByType maps tree-sitter-c node types onto the kinds the domain uses.
var kindByType = map[string]m.Kind{
	"translation_unit":         m.KindFile,
	"identifier":               m.KindIdentifier,
	"field_identifier":         m.KindName,
	"type_identifier":          m.KindName,
	"statement_identifier":     m.KindName,
	"comment":                  m.KindComment,
	"compound_statement":       m.KindCompound,
	"function_definition":      m.KindFunction,
	"function_declarator":      m.KindFunctionDeclarator,
	"field_declaration_list":   m.KindFieldList,
	"enumerator_list":          m.KindEnumeratorList,
	"declaration":              m.KindDeclaration,
	"parameter_declaration":    m.KindParameterDeclaration,
	"field_declaration":        m.KindFieldDeclaration,
	"init_declarator":          m.KindInitDeclarator,
	"pointer_declarator":       m.KindDeclarator,
	"array_declarator":         m.KindDeclarator,
	"parenthesized_declarator": m.KindDeclarator,
	"attributed_declarator":    m.KindDeclarator,
	"field_expression":         m.KindFieldAccess,
	"storage_class_specifier":  m.KindStorageClass,
	"preproc_def":              m.KindMacroDefinition,
	"preproc_function_def":     m.KindMacroDefinition,
	"preproc_params":           m.KindMacroParams,
	"preproc_arg":              m.KindMacroValue,
}

// namedFields lists, per kind, the grammar field the domain looks up by name.
var namedFields = map[m.Kind]string{
	m.KindFieldAccess:          "field",
	m.KindInitDeclarator:       "declarator",
	m.KindDeclarator:           "declarator",
	m.KindFunctionDeclarator:   "declarator",
	m.KindParameterDeclaration: "declarator",
}

// KindOf classifies a raw tree-sitter node type.
func KindOf(typ string) m.Kind {
	if kind, ok := kindByType[typ]; ok {
		return kind
	}

	return m.KindOther
}
