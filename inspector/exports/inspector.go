package exports

// Inspector recovers identifiers of top-level exported variable declarations
// (`export const|let|var NAME`, optionally `export declare ...`).
type Inspector struct{}

// NewInspector creates an exports inspector
func NewInspector() *Inspector {
	return &Inspector{}
}

type state int

const (
	stateStatement state = iota
	stateExport
	stateVariable
)

// InspectSource returns exported variable names in source order. Only the
// first declarator of a statement is read; destructuring patterns are ignored.
func (i *Inspector) InspectSource(src []byte) ([]string, error) {
	s := &scanner{src: src}
	var names []string
	depth := 0
	current := stateStatement
	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenEOF:
			if depth != 0 {
				return nil, s.errorf(tok.offset, "unexpected end of input: %d unclosed bracket(s)", depth)
			}
			return names, nil
		case tokenPunct:
			switch tok.text {
			case "{", "(", "[":
				depth++
			case "}", ")", "]":
				depth--
				if depth < 0 {
					return nil, s.errorf(tok.offset, "unexpected %q", tok.text)
				}
			}
			current = stateStatement
			continue
		case tokenString, tokenTemplate, tokenRegex, tokenNumber:
			current = stateStatement
			continue
		}

		if depth != 0 {
			continue
		}
		switch current {
		case stateExport:
			switch tok.text {
			case "declare":
				continue
			case "const", "let", "var":
				current = stateVariable
				continue
			}
		case stateVariable:
			current = stateStatement
			if tok.text != "enum" {
				names = append(names, tok.text)
				continue
			}
		}
		if tok.text == "export" {
			current = stateExport
		} else {
			current = stateStatement
		}
	}
}
