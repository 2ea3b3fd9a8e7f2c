package exports

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenPunct
	tokenString
	tokenTemplate
	tokenRegex
	tokenNumber
)

type token struct {
	kind   tokenKind
	text   string
	offset int
}

// ParseError reports source text the scanner could not tokenize
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// scanner is a minimal TypeScript tokenizer: identifiers, punctuation,
// string, template and regular expression literals; comments and whitespace
// are skipped. A '/' starts a regular expression only where an expression
// may begin, otherwise it is a division operator.
type scanner struct {
	src  []byte
	pos  int
	prev token
}

// regexKeywords may be directly followed by an expression
var regexKeywords = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true,
	"new": true, "delete": true, "void": true, "throw": true, "case": true,
	"do": true, "else": true, "yield": true, "await": true,
}

func (s *scanner) errorf(offset int, format string, args ...interface{}) error {
	return &ParseError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

func (s *scanner) next() (token, error) {
	tok, err := s.scan()
	if err == nil {
		s.prev = tok
	}
	return tok, err
}

func (s *scanner) scan() (token, error) {
	if err := s.skipSpaceAndComments(); err != nil {
		return token{}, err
	}
	if s.pos >= len(s.src) {
		return token{kind: tokenEOF, offset: s.pos}, nil
	}
	start := s.pos
	r, size := utf8.DecodeRune(s.src[s.pos:])
	switch {
	case isIdentStart(r):
		s.pos += size
		for s.pos < len(s.src) {
			r, size = utf8.DecodeRune(s.src[s.pos:])
			if !isIdentPart(r) {
				break
			}
			s.pos += size
		}
		return token{kind: tokenIdent, text: string(s.src[start:s.pos]), offset: start}, nil
	case r >= '0' && r <= '9':
		for s.pos < len(s.src) {
			r, size = utf8.DecodeRune(s.src[s.pos:])
			if !isIdentPart(r) {
				break
			}
			s.pos += size
		}
		return token{kind: tokenNumber, text: string(s.src[start:s.pos]), offset: start}, nil
	case r == '\'' || r == '"':
		if err := s.skipString(byte(r)); err != nil {
			return token{}, err
		}
		return token{kind: tokenString, text: string(s.src[start:s.pos]), offset: start}, nil
	case r == '`':
		if err := s.skipTemplate(); err != nil {
			return token{}, err
		}
		return token{kind: tokenTemplate, text: string(s.src[start:s.pos]), offset: start}, nil
	case r == '/' && s.regexAllowed():
		if err := s.skipRegex(); err != nil {
			return token{}, err
		}
		return token{kind: tokenRegex, text: string(s.src[start:s.pos]), offset: start}, nil
	}
	s.pos += size
	return token{kind: tokenPunct, text: string(r), offset: start}, nil
}

func (s *scanner) skipSpaceAndComments() error {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
			s.pos++
		case c == '/' && s.peek(1) == '/':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		case c == '/' && s.peek(1) == '*':
			start := s.pos
			s.pos += 2
			for {
				if s.pos+1 >= len(s.src) {
					return s.errorf(start, "unterminated block comment")
				}
				if s.src[s.pos] == '*' && s.src[s.pos+1] == '/' {
					s.pos += 2
					break
				}
				s.pos++
			}
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRune(s.src[s.pos:])
			if !unicode.IsSpace(r) && r != '\uFEFF' {
				return nil
			}
			s.pos += size
		default:
			return nil
		}
	}
	return nil
}

func (s *scanner) peek(ahead int) byte {
	if s.pos+ahead < len(s.src) {
		return s.src[s.pos+ahead]
	}
	return 0
}

func (s *scanner) skipString(quote byte) error {
	start := s.pos
	s.pos++
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case '\n':
			return s.errorf(start, "unterminated string literal")
		case quote:
			s.pos++
			return nil
		}
		s.pos++
	}
	return s.errorf(start, "unterminated string literal")
}

// regexAllowed reports whether the previous token ends an expression; when it
// does not, a '/' starts a regular expression literal
func (s *scanner) regexAllowed() bool {
	switch s.prev.kind {
	case tokenEOF:
		return true
	case tokenIdent:
		return regexKeywords[s.prev.text]
	case tokenPunct:
		return s.prev.text != ")" && s.prev.text != "]" && s.prev.text != "}"
	}
	return false
}

// skipRegex consumes a regular expression literal and its flags
func (s *scanner) skipRegex() error {
	start := s.pos
	s.pos++
	inClass := false
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case '\n':
			return s.errorf(start, "unterminated regular expression literal")
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				s.pos++
				for s.pos < len(s.src) {
					r, size := utf8.DecodeRune(s.src[s.pos:])
					if !isIdentPart(r) {
						break
					}
					s.pos += size
				}
				return nil
			}
		}
		s.pos++
	}
	return s.errorf(start, "unterminated regular expression literal")
}

// skipTemplate consumes a template literal including nested ${...} expressions
func (s *scanner) skipTemplate() error {
	start := s.pos
	s.pos++
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case '`':
			s.pos++
			return nil
		case '$':
			if s.peek(1) == '{' {
				s.pos += 2
				if err := s.skipExpression(); err != nil {
					return err
				}
				continue
			}
		}
		s.pos++
	}
	return s.errorf(start, "unterminated template literal")
}

// skipExpression consumes tokens up to and including the '}' closing a template substitution
func (s *scanner) skipExpression() error {
	depth := 0
	for {
		tok, err := s.next()
		if err != nil {
			return err
		}
		switch {
		case tok.kind == tokenEOF:
			return s.errorf(tok.offset, "unterminated template substitution")
		case tok.kind != tokenPunct:
		case tok.text == "{":
			depth++
		case tok.text == "}":
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || r == '\u200C' || r == '\u200D'
}
