package component

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Component represents a decorated top-level class
type Component struct {
	Name     string // Class name
	Selector string // selector property of the first decorator argument
}

// Inspector extracts decorated component classes from TypeScript source
type Inspector struct {
	prefix string
}

// NewInspector creates an inspector matching classes whose name starts with prefix
func NewInspector(prefix string) *Inspector {
	return &Inspector{prefix: prefix}
}

// InspectSource parses TypeScript source and returns matching top-level classes in source order
func (i *Inspector) InspectSource(ctx context.Context, src []byte) ([]*Component, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(typescript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	var components []*Component
	for j := 0; j < int(rootNode.NamedChildCount()); j++ {
		child := rootNode.NamedChild(j)
		var decorators []*sitter.Node
		classNode := child
		if child.Type() == "export_statement" {
			decorators = append(decorators, childrenOfType(child, "decorator")...)
			classNode = child.ChildByFieldName("declaration")
		}
		if classNode == nil || classNode.Type() != "class_declaration" {
			continue
		}
		decorators = append(decorators, childrenOfType(classNode, "decorator")...)

		nameNode := classNode.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		name := nameNode.Content(src)
		if !strings.HasPrefix(name, i.prefix) {
			continue
		}
		component := &Component{Name: name}
		if len(decorators) > 0 {
			component.Selector = decoratorProperty(decorators[0], "selector", src)
		}
		components = append(components, component)
	}
	return components, nil
}

func childrenOfType(node *sitter.Node, nodeType string) []*sitter.Node {
	var result []*sitter.Node
	for j := 0; j < int(node.NamedChildCount()); j++ {
		if child := node.NamedChild(j); child.Type() == nodeType {
			result = append(result, child)
		}
	}
	return result
}

// decoratorProperty reads a string property of the object passed as the decorator's first argument
func decoratorProperty(decorator *sitter.Node, property string, src []byte) string {
	calls := childrenOfType(decorator, "call_expression")
	if len(calls) == 0 {
		return ""
	}
	arguments := calls[0].ChildByFieldName("arguments")
	if arguments == nil || arguments.NamedChildCount() == 0 {
		return ""
	}
	object := arguments.NamedChild(0)
	if object.Type() != "object" {
		return ""
	}
	for _, pair := range childrenOfType(object, "pair") {
		key := pair.ChildByFieldName("key")
		value := pair.ChildByFieldName("value")
		if key == nil || value == nil {
			continue
		}
		if strings.Trim(key.Content(src), `'"`) != property {
			continue
		}
		return strings.Trim(value.Content(src), "'\"`")
	}
	return ""
}
