package emitter

import (
	"strings"

	"github.com/viant/ngtooling/aggregate"
)

// Header marks every generated file
const Header = "/*\n" +
	" * This file is generated by ngtooling. Don't edit by hand.\n" +
	" */\n\n"

// Emitter converts an aggregation into generated TypeScript source
type Emitter struct {
	Indent string
}

// New creates an emitter with the given indentation, two spaces when empty
func New(indent string) *Emitter {
	if indent == "" {
		indent = "  "
	}
	return &Emitter{Indent: indent}
}

// Emit renders import statements followed by one export array per kind.
// The output depends only on the aggregation, so equal input yields equal bytes.
func (e *Emitter) Emit(aggregation *aggregate.Aggregation) []byte {
	builder := &strings.Builder{}
	builder.WriteString(Header)

	for _, group := range aggregation.Imports {
		names := make([]string, 0, len(group.Symbols))
		for _, symbol := range group.Symbols {
			if symbol.Alias != "" {
				names = append(names, symbol.Name+" as "+symbol.Alias)
				continue
			}
			names = append(names, symbol.Name)
		}
		e.Import(builder, names, group.Path)
	}

	for _, group := range aggregation.Exports {
		prefix := ""
		if group.Kind.Spread() {
			prefix = "..."
		}
		elements := make([]string, 0, len(group.Symbols))
		for _, symbol := range group.Symbols {
			elements = append(elements, prefix+symbol.Ref())
		}
		builder.WriteString("\n")
		e.Array(builder, group.Kind.String(), "any[]", elements)
	}
	return []byte(builder.String())
}

// Import writes `import { a, b } from './path';`
func (e *Emitter) Import(builder *strings.Builder, names []string, path string) {
	builder.WriteString("import { ")
	builder.WriteString(strings.Join(names, ", "))
	builder.WriteString(" } from './")
	builder.WriteString(path)
	builder.WriteString("';\n")
}

// Array writes an exported array literal, one element per line
func (e *Emitter) Array(builder *strings.Builder, name, typeName string, elements []string) {
	builder.WriteString("export const ")
	builder.WriteString(name)
	if typeName != "" {
		builder.WriteString(": ")
		builder.WriteString(typeName)
	}
	builder.WriteString(" = [\n")
	for _, element := range elements {
		builder.WriteString(e.Indent)
		builder.WriteString(element)
		builder.WriteString(",\n")
	}
	builder.WriteString("];\n")
}
