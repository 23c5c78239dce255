// Package bibtex reads BibTeX sources into entry.Entry records. Field values
// are kept as written (LaTeX included) so the customize package can
// normalise them.
package bibtex

import (
	"fmt"
	"strings"

	"publist/src/internal/entry"
)

// SyntaxError reports malformed input at a 1-based line.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bibtex: line %d: %s", e.Line, e.Msg)
}

// Option configures Parse.
type Option func(*parser)

// WithRawField stores the source text of each record under field.
func WithRawField(field string) Option {
	return func(p *parser) { p.rawField = field }
}

var monthMacros = map[string]string{
	"jan": "January", "feb": "February", "mar": "March", "apr": "April",
	"may": "May", "jun": "June", "jul": "July", "aug": "August",
	"sep": "September", "oct": "October", "nov": "November", "dec": "December",
}

type parser struct {
	s        string
	i        int
	rawField string
	macros   map[string]string
}

// Parse reads every record of src in order. Field names are lower-cased;
// the record type goes under ENTRYTYPE (lower-cased) and the key under ID.
// @comment and @preamble blocks are skipped and @string blocks define
// macros usable as bare field values.
func Parse(src string, opts ...Option) ([]entry.Entry, error) {
	p := &parser{s: src, macros: map[string]string{}}
	for k, v := range monthMacros {
		p.macros[k] = v
	}
	for _, o := range opts {
		o(p)
	}
	var out []entry.Entry
	for {
		p.skipWS()
		if p.i >= len(p.s) {
			return out, nil
		}
		if p.s[p.i] != '@' {
			// text between records is a comment
			p.i++
			continue
		}
		start := p.i
		p.i++
		p.skipWS()
		typ := strings.ToLower(p.readIdent())
		p.skipWS()
		if typ == "" || p.i >= len(p.s) || (p.s[p.i] != '{' && p.s[p.i] != '(') {
			// a stray '@' in free text, e.g. an e-mail address
			continue
		}
		switch typ {
		case "comment", "preamble":
			if err := p.skipBlock(); err != nil {
				return nil, err
			}
			continue
		case "string":
			if err := p.readMacro(); err != nil {
				return nil, err
			}
			continue
		}
		p.i++
		e, err := p.readRecord(typ)
		if err != nil {
			return nil, err
		}
		if p.rawField != "" {
			e[p.rawField] = strings.TrimSpace(p.s[start:p.i])
		}
		out = append(out, e)
	}
}

func (p *parser) readRecord(typ string) (entry.Entry, error) {
	p.skipWS()
	start := p.i
	for p.i < len(p.s) && p.s[p.i] != ',' && p.s[p.i] != '}' && p.s[p.i] != ')' {
		p.i++
	}
	if p.i >= len(p.s) {
		return nil, p.errorf("missing comma after key")
	}
	e := entry.Entry{entry.FieldType: typ, entry.FieldID: strings.TrimSpace(p.s[start:p.i])}
	if p.s[p.i] != ',' {
		// record without fields: @misc{key}
		p.i++
		return e, nil
	}
	p.i++
	for {
		p.skipWS()
		if p.i >= len(p.s) {
			return nil, p.errorf("unexpected end of input in record %s", e.Key())
		}
		if p.s[p.i] == '}' || p.s[p.i] == ')' {
			p.i++
			return e, nil
		}
		name, val, err := p.readField()
		if err != nil {
			return nil, err
		}
		e[name] = val
		p.skipWS()
		if p.i < len(p.s) && p.s[p.i] == ',' {
			p.i++
		}
	}
}

func (p *parser) readField() (string, string, error) {
	start := p.i
	for p.i < len(p.s) && isNameByte(p.s[p.i]) {
		p.i++
	}
	name := strings.ToLower(p.s[start:p.i])
	if name == "" {
		return "", "", p.errorf("expected field name")
	}
	p.skipWS()
	if p.i >= len(p.s) || p.s[p.i] != '=' {
		return "", "", p.errorf("expected '=' after field name %s", name)
	}
	p.i++
	val, err := p.readValue()
	if err != nil {
		return "", "", err
	}
	return name, val, nil
}

// readValue reads one or more value pieces joined by '#'.
func (p *parser) readValue() (string, error) {
	var b strings.Builder
	for {
		p.skipWS()
		piece, err := p.readPiece()
		if err != nil {
			return "", err
		}
		b.WriteString(piece)
		p.skipWS()
		if p.i < len(p.s) && p.s[p.i] == '#' {
			p.i++
			continue
		}
		return strings.TrimSpace(b.String()), nil
	}
}

func (p *parser) readPiece() (string, error) {
	if p.i >= len(p.s) {
		return "", p.errorf("unexpected end of input in value")
	}
	switch p.s[p.i] {
	case '{':
		p.i++
		start := p.i
		depth := 0
		for p.i < len(p.s) {
			switch p.s[p.i] {
			case '\\':
				p.i += 2
				continue
			case '{':
				depth++
			case '}':
				if depth == 0 {
					v := p.s[start:p.i]
					p.i++
					return v, nil
				}
				depth--
			}
			p.i++
		}
		return "", p.errorf("unterminated braced value")
	case '"':
		p.i++
		start := p.i
		depth := 0
		for p.i < len(p.s) {
			switch p.s[p.i] {
			case '\\':
				p.i += 2
				continue
			case '{':
				depth++
			case '}':
				depth--
			case '"':
				if depth == 0 {
					v := p.s[start:p.i]
					p.i++
					return v, nil
				}
			}
			p.i++
		}
		return "", p.errorf("unterminated quoted value")
	}
	start := p.i
	for p.i < len(p.s) && isNameByte(p.s[p.i]) {
		p.i++
	}
	word := p.s[start:p.i]
	if word == "" {
		return "", p.errorf("unexpected %q in value", p.s[p.i])
	}
	if isDigits(word) {
		return word, nil
	}
	if v, ok := p.macros[strings.ToLower(word)]; ok {
		return v, nil
	}
	// unknown macros are kept verbatim
	return word, nil
}

func (p *parser) readMacro() error {
	closer := byte('}')
	if p.s[p.i] == '(' {
		closer = ')'
	}
	p.i++
	p.skipWS()
	name, val, err := p.readField()
	if err != nil {
		return err
	}
	p.macros[name] = val
	p.skipWS()
	if p.i >= len(p.s) || p.s[p.i] != closer {
		return p.errorf("expected %q to close @string", closer)
	}
	p.i++
	return nil
}

// skipBlock skips a block opened at p.i, counting only its own delimiter so
// "@comment{see (draft}" ends at the brace.
func (p *parser) skipBlock() error {
	open, closer := byte('{'), byte('}')
	if p.s[p.i] == '(' {
		open, closer = '(', ')'
	}
	depth := 0
	for p.i < len(p.s) {
		switch p.s[p.i] {
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				p.i++
				return nil
			}
		}
		p.i++
	}
	return p.errorf("unterminated block")
}

func (p *parser) skipWS() {
	for p.i < len(p.s) {
		switch p.s[p.i] {
		case ' ', '\t', '\r', '\n':
			p.i++
		case '%':
			for p.i < len(p.s) && p.s[p.i] != '\n' {
				p.i++
			}
		default:
			return
		}
	}
}

func (p *parser) readIdent() string {
	start := p.i
	for p.i < len(p.s) && (('a' <= p.s[p.i] && p.s[p.i] <= 'z') || ('A' <= p.s[p.i] && p.s[p.i] <= 'Z')) {
		p.i++
	}
	return p.s[start:p.i]
}

func (p *parser) errorf(format string, args ...any) error {
	end := p.i
	if end > len(p.s) {
		end = len(p.s)
	}
	return &SyntaxError{Line: strings.Count(p.s[:end], "\n") + 1, Msg: fmt.Sprintf(format, args...)}
}

func isNameByte(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') ||
		c == '_' || c == '-' || c == ':' || c == '.' || c == '+' || c == '/'
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
