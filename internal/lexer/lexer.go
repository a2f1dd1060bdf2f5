// Package lexer tokenizes a JavaScript/TypeScript subset, preserving
// comments as positioned tokens so later passes can reason about blank
// lines and trailing comments.
package lexer

import "strings"

// Kind classifies a scanned token.
type Kind int

const (
	// KindEOF terminates every token stream.
	KindEOF Kind = iota
	// KindIdent is an identifier ($ and _ allowed).
	KindIdent
	// KindKeyword is a reserved word (if, switch, function, ...).
	KindKeyword
	// KindNumber is a numeric literal.
	KindNumber
	// KindString is a single- or double-quoted string literal.
	KindString
	// KindTemplate is a backtick template literal, including any
	// interpolations, as one token.
	KindTemplate
	// KindRegex is a regular expression literal.
	KindRegex
	// KindPunct is an operator or punctuation token.
	KindPunct
	// KindLineComment is a // comment (without the trailing newline).
	KindLineComment
	// KindBlockComment is a /* ... */ comment, possibly spanning lines.
	KindBlockComment
)

//go:generate stringer -type=Kind

// IsComment reports whether the kind is a comment kind.
func (k Kind) IsComment() bool {
	return k == KindLineComment || k == KindBlockComment
}

// Token is a single scanned token with its source span.
type Token struct {
	Kind    Kind
	Text    string
	Start   int // Byte offset, inclusive.
	End     int // Byte offset, exclusive.
	Line    int // 1-indexed line the token starts on.
	Col     int // 0-indexed column of the first byte.
	EndLine int // Line the token ends on (differs for multi-line tokens).
}

// keywords are reserved words that never act as call identifiers.
var keywords = map[string]bool{
	"await": true, "break": true, "case": true, "catch": true,
	"class": true, "const": true, "continue": true, "debugger": true,
	"default": true, "delete": true, "do": true, "else": true,
	"export": true, "extends": true, "finally": true, "for": true,
	"function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "let": true, "new": true, "of": true,
	"return": true, "static": true, "super": true, "switch": true,
	"this": true, "throw": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true,
	"yield": true,
}

// puncts lists multi-character operators, longest first so shorter
// prefixes never shadow them.
var puncts = []string{
	">>>=", "...", "===", "!==", "**=", "<<=", ">>=", ">>>",
	"&&=", "||=", "??=", "=>", "==", "!=", "<=", ">=", "&&",
	"||", "??", "?.", "++", "--", "+=", "-=", "*=", "/=", "%=",
	"&=", "|=", "^=", "<<", ">>", "**",
}

// Lex scans src into a token stream. The stream always ends with a
// KindEOF token and never fails: unrecognized bytes become single-byte
// punct tokens, unterminated literals end at the line or file boundary.
func Lex(src string) []Token {
	s := &scanner{src: src, line: 1}
	return s.scan()
}

// scanner tracks position state while producing tokens.
type scanner struct {
	src       string
	pos       int
	line      int
	lineStart int // Byte offset of the current line's first byte.
	toks      []Token
}

func (s *scanner) scan() []Token {
	for s.pos < len(s.src) {
		c := s.src[s.pos]

		switch {
		case c == '\n':
			s.newline()

		case c == ' ' || c == '\t' || c == '\r':
			s.pos++

		case c == '/' && s.peek(1) == '/':
			s.lineComment()

		case c == '/' && s.peek(1) == '*':
			s.blockComment()

		case c == '/' && s.regexAllowed():
			s.regex()

		case c == '\'' || c == '"':
			s.stringLit(c)

		case c == '`':
			s.template()

		case isDigit(c) || (c == '.' && isDigit(s.peek(1))):
			s.number()

		case isIdentStart(c):
			s.ident()

		default:
			s.punct()
		}
	}

	s.emit(KindEOF, s.pos, s.line)
	return s.toks
}

func (s *scanner) peek(ahead int) byte {
	if s.pos+ahead >= len(s.src) {
		return 0
	}
	return s.src[s.pos+ahead]
}

func (s *scanner) newline() {
	s.pos++
	s.line++
	s.lineStart = s.pos
}

// emit appends a token spanning [start, s.pos) that began on startLine.
func (s *scanner) emit(kind Kind, start, startLine int) {
	col := start - s.lineStart
	if startLine != s.line {
		// Recompute the column against the starting line for
		// multi-line tokens.
		col = start - lineStartBefore(s.src, start)
	}
	s.toks = append(s.toks, Token{
		Kind:    kind,
		Text:    s.src[start:s.pos],
		Start:   start,
		End:     s.pos,
		Line:    startLine,
		Col:     col,
		EndLine: s.line,
	})
}

// lineStartBefore returns the byte offset of the line containing pos.
func lineStartBefore(src string, pos int) int {
	i := strings.LastIndexByte(src[:pos], '\n')
	return i + 1
}

func (s *scanner) lineComment() {
	start, startLine := s.pos, s.line
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
	s.emit(KindLineComment, start, startLine)
}

func (s *scanner) blockComment() {
	start, startLine := s.pos, s.line
	s.pos += 2
	for s.pos < len(s.src) {
		if s.src[s.pos] == '*' && s.peek(1) == '/' {
			s.pos += 2
			break
		}
		if s.src[s.pos] == '\n' {
			s.line++
			s.lineStart = s.pos + 1
		}
		s.pos++
	}
	s.emit(KindBlockComment, start, startLine)
}

func (s *scanner) stringLit(quote byte) {
	start, startLine := s.pos, s.line
	s.pos++
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '\\' && s.pos+1 < len(s.src) {
			s.pos += 2
			continue
		}
		if c == quote {
			s.pos++
			break
		}
		if c == '\n' {
			// Unterminated string; end it at the line break.
			break
		}
		s.pos++
	}
	s.emit(KindString, start, startLine)
}

// template scans a backtick literal, tracking ${...} interpolations by
// brace depth so embedded braces and quotes do not end it early.
func (s *scanner) template() {
	start, startLine := s.pos, s.line
	s.pos++
	depth := 0
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '\\' && s.pos+1 < len(s.src):
			s.pos += 2
			continue
		case c == '\n':
			s.newline()
			continue
		case depth == 0 && c == '`':
			s.pos++
			s.emit(KindTemplate, start, startLine)
			return
		case c == '$' && s.peek(1) == '{':
			depth++
			s.pos += 2
			continue
		case depth > 0 && c == '{':
			depth++
		case depth > 0 && c == '}':
			depth--
		}
		s.pos++
	}
	s.emit(KindTemplate, start, startLine)
}

func (s *scanner) number() {
	start, startLine := s.pos, s.line
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isDigit(c) || isIdentStart(c) || c == '.' {
			s.pos++
			continue
		}
		// Exponent sign: 1e+10.
		if (c == '+' || c == '-') && s.pos > start {
			prev := s.src[s.pos-1]
			if prev == 'e' || prev == 'E' {
				s.pos++
				continue
			}
		}
		break
	}
	s.emit(KindNumber, start, startLine)
}

func (s *scanner) ident() {
	start, startLine := s.pos, s.line
	for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
		s.pos++
	}
	kind := KindIdent
	if keywords[s.src[start:s.pos]] {
		kind = KindKeyword
	}
	s.emit(kind, start, startLine)
}

func (s *scanner) punct() {
	start, startLine := s.pos, s.line
	rest := s.src[s.pos:]
	for _, op := range puncts {
		if strings.HasPrefix(rest, op) {
			s.pos += len(op)
			s.emit(KindPunct, start, startLine)
			return
		}
	}
	s.pos++
	s.emit(KindPunct, start, startLine)
}

// regexAllowed reports whether a / at the current position can start a
// regex literal, judged by the previous significant token: after a
// value (identifier, literal, closing bracket) a / is division.
func (s *scanner) regexAllowed() bool {
	for i := len(s.toks) - 1; i >= 0; i-- {
		t := s.toks[i]
		if t.Kind.IsComment() {
			continue
		}
		switch t.Kind {
		case KindIdent, KindNumber, KindString, KindTemplate, KindRegex:
			return false
		case KindKeyword:
			// return /re/ and typeof /re/ are regexes; this /
			// division never follows a bare keyword anyway.
			return true
		case KindPunct:
			return t.Text != ")" && t.Text != "]"
		}
		return true
	}
	return true
}

func (s *scanner) regex() {
	start, startLine := s.pos, s.line
	s.pos++
	inClass := false
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '\\' && s.pos+1 < len(s.src) {
			s.pos += 2
			continue
		}
		if c == '\n' {
			// Unterminated; treat what we have as the literal.
			break
		}
		if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '/' && !inClass {
			s.pos++
			// Flags.
			for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
				s.pos++
			}
			break
		}
		s.pos++
	}
	s.emit(KindRegex, start, startLine)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		c >= 0x80 // Treat non-ASCII bytes as identifier characters.
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
