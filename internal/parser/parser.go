package parser

import "github.com/padlint/padlint/internal/lexer"

// declKeywords start a declaration statement.
var declKeywords = map[string]bool{
	"var": true, "let": true, "const": true,
	"function": true, "class": true,
}

// controlKeywords start a non-declaration, non-switch statement that
// may carry depth-0 brace blocks (if/for/try bodies) or clause
// continuations.
var controlKeywords = map[string]bool{
	"if": true, "else": true, "for": true, "while": true, "do": true,
	"try": true, "catch": true, "finally": true, "return": true,
	"throw": true, "break": true, "continue": true, "with": true,
	"import": true, "export": true, "debugger": true,
}

// clauseFor reports whether keyword kw chains a control statement that
// started with start (else after if, catch/finally after try, while
// after do).
func clauseFor(start, kw string) bool {
	switch kw {
	case "else":
		return start == "if"
	case "catch", "finally":
		return start == "try"
	case "while":
		return start == "do"
	}
	return false
}

// Parse builds the statement tree for src. It never fails: malformed
// input degrades to loosely classified statements, bounded by the
// token stream.
func Parse(path, src string) *File {
	f := &File{
		Path:   path,
		Src:    src,
		Tokens: lexer.Lex(src),
	}
	p := &parser{f: f}
	f.Root = p.parseProgram()
	return f
}

type parser struct {
	f   *File
	pos int
}

func (p *parser) tok() lexer.Token {
	return p.f.Tokens[p.pos]
}

func (p *parser) atEOF() bool {
	return p.f.Tokens[p.pos].Kind == lexer.KindEOF
}

// skipTrivia advances past comment tokens.
func (p *parser) skipTrivia() {
	for p.f.Tokens[p.pos].Kind.IsComment() {
		p.pos++
	}
}

// peekSig returns the next significant token after the current one
// without advancing.
func (p *parser) peekSig() lexer.Token {
	for i := p.pos + 1; i < len(p.f.Tokens); i++ {
		if !p.f.Tokens[i].Kind.IsComment() {
			return p.f.Tokens[i]
		}
	}
	return p.f.Tokens[len(p.f.Tokens)-1]
}

func (p *parser) parseProgram() *Node {
	root := &Node{Kind: KindProgram, First: 0, Last: len(p.f.Tokens) - 1}
	for {
		p.skipTrivia()
		if p.atEOF() {
			break
		}
		root.Body = append(root.Body, p.parseStatement(root))
	}
	return root
}

func (p *parser) parseStatement(parent *Node) *Node {
	t := p.tok()

	switch {
	case t.Kind == lexer.KindPunct && t.Text == "{":
		return p.parseBlock(parent)

	case t.Kind == lexer.KindKeyword && t.Text == "switch":
		return p.parseSwitch(parent)

	case t.Kind == lexer.KindIdent && isColon(p.peekSig()):
		return p.parseLabeled(parent)

	case t.Kind == lexer.KindKeyword && declKeywords[t.Text]:
		n := &Node{Kind: KindDecl, Parent: parent, First: p.pos}
		p.scanStatement(n, false)
		return n

	case t.Kind == lexer.KindKeyword && controlKeywords[t.Text]:
		n := &Node{Kind: KindOther, Parent: parent, First: p.pos}
		p.scanStatement(n, true)
		return n

	default:
		kind := KindExpr
		if t.Kind == lexer.KindKeyword {
			kind = KindOther
		}
		n := &Node{Kind: kind, Parent: parent, First: p.pos}
		p.scanStatement(n, false)
		return n
	}
}

func (p *parser) parseBlock(parent *Node) *Node {
	n := &Node{Kind: KindBlock, Parent: parent, First: p.pos, Last: p.pos}
	p.pos++ // {
	for {
		p.skipTrivia()
		if p.atEOF() {
			break
		}
		t := p.tok()
		if t.Kind == lexer.KindPunct && t.Text == "}" {
			n.Last = p.pos
			p.pos++
			return n
		}
		s := p.parseStatement(n)
		n.Body = append(n.Body, s)
		n.Last = s.Last
	}
	return n
}

func (p *parser) parseLabeled(parent *Node) *Node {
	n := &Node{Kind: KindLabeled, Parent: parent, First: p.pos, Last: p.pos}
	p.pos++ // label
	p.skipTrivia()
	n.Last = p.pos
	p.pos++ // colon
	p.skipTrivia()
	if p.atEOF() {
		return n
	}
	n.Inner = p.parseStatement(n)
	n.Last = n.Inner.Last
	return n
}

func (p *parser) parseSwitch(parent *Node) *Node {
	n := &Node{Kind: KindSwitch, Parent: parent, First: p.pos, Last: p.pos}
	p.pos++ // switch
	p.skipTrivia()

	// Discriminant.
	if !p.atEOF() && p.tok().Kind == lexer.KindPunct && p.tok().Text == "(" {
		p.skipBalanced("(", ")")
		n.Last = p.pos - 1
	}

	p.skipTrivia()
	if p.atEOF() || p.tok().Kind != lexer.KindPunct || p.tok().Text != "{" {
		return n
	}
	p.pos++ // {

	for {
		p.skipTrivia()
		if p.atEOF() {
			break
		}
		t := p.tok()
		switch {
		case t.Kind == lexer.KindPunct && t.Text == "}":
			n.Last = p.pos
			p.pos++
			return n
		case t.Kind == lexer.KindKeyword && (t.Text == "case" || t.Text == "default"):
			c := p.parseCase(n)
			n.Body = append(n.Body, c)
			n.Last = c.Last
		default:
			// Statement outside any case clause; keep it in the
			// switch body so traversal stays total.
			s := p.parseStatement(n)
			n.Body = append(n.Body, s)
			n.Last = s.Last
		}
	}
	return n
}

// parseCase parses one case/default clause. The node's span covers
// only the clause label ("case x:"); body statements become children
// so the clause can anchor padding checks against its own first
// statement.
func (p *parser) parseCase(parent *Node) *Node {
	n := &Node{Kind: KindCase, Parent: parent, First: p.pos, Last: p.pos}
	p.pos++ // case or default

	// Test expression up to the clause colon.
	depth := 0
	for {
		p.skipTrivia()
		if p.atEOF() {
			return n
		}
		t := p.tok()
		if t.Kind != lexer.KindPunct {
			n.Last = p.pos
			p.pos++
			continue
		}
		switch t.Text {
		case "(", "[", "{":
			depth++
		case ")", "]":
			if depth > 0 {
				depth--
			}
		case "}":
			if depth == 0 {
				// Missing colon; the enclosing switch owns this.
				return n
			}
			depth--
		case ":":
			if depth == 0 {
				n.Last = p.pos
				p.pos++
				goto body
			}
		}
		n.Last = p.pos
		p.pos++
	}

body:
	for {
		p.skipTrivia()
		if p.atEOF() {
			return n
		}
		t := p.tok()
		if t.Kind == lexer.KindKeyword && (t.Text == "case" || t.Text == "default") {
			return n
		}
		if t.Kind == lexer.KindPunct && t.Text == "}" {
			return n
		}
		s := p.parseStatement(n)
		n.Body = append(n.Body, s)
	}
}

// scanStatement consumes one simple statement starting at n.First.
// It tracks bracket depth, turns function and arrow bodies into nested
// block children, and terminates on a depth-0 semicolon, the enclosing
// block's closer, or an inferred statement boundary at a line break.
func (p *parser) scanStatement(n *Node, control bool) {
	start := p.pos
	startText := p.tok().Text
	depth := 0
	pendingFunc := false
	pendingClass := false
	stopAfterBody := startText == "function" || startText == "class"
	last := -1

loop:
	for {
		p.skipTrivia()
		if p.atEOF() {
			break
		}
		t := p.tok()

		// Inferred boundary: a line break after a complete
		// expression ends the statement unless the next token
		// continues it.
		if depth == 0 && last >= 0 && !pendingFunc && !pendingClass {
			prev := p.f.Tokens[last]
			if t.Line > prev.EndLine && canEndStatement(prev) && !continuesExpression(t) {
				break
			}
		}

		if t.Kind == lexer.KindKeyword {
			switch t.Text {
			case "function":
				pendingFunc = true
			case "class":
				pendingClass = true
			}
			last = p.pos
			p.pos++
			continue
		}

		if t.Kind != lexer.KindPunct {
			last = p.pos
			p.pos++
			continue
		}

		switch t.Text {
		case "(", "[":
			depth++
		case ")", "]":
			if depth == 0 {
				// Closer owned by an enclosing construct.
				break loop
			}
			depth--
		case "{":
			if pendingFunc || p.lastText(last) == "=>" || (control && depth == 0) {
				pendingFunc = false
				blk := p.parseBlock(n)
				n.Body = append(n.Body, blk)
				last = blk.Last
				if depth == 0 {
					if stopAfterBody {
						break loop
					}
					if control && !p.clauseContinues(startText) {
						break loop
					}
				}
				continue
			}
			pendingClass = false
			depth++
		case "}":
			if depth == 0 {
				break loop
			}
			depth--
		case ";":
			last = p.pos
			p.pos++
			if depth == 0 {
				if control && p.clauseContinues(startText) {
					continue
				}
				break loop
			}
			continue
		}

		last = p.pos
		p.pos++
	}

	if last < start {
		// Nothing consumed (stray closer at statement position);
		// take one token so parsing always advances.
		last = p.pos
		p.pos++
	}
	n.Last = last
}

// lastText returns the text of the token at idx, or "" before the
// first consumed token.
func (p *parser) lastText(idx int) string {
	if idx < 0 {
		return ""
	}
	return p.f.Tokens[idx].Text
}

// clauseContinues reports whether the next significant token chains
// the control statement that started with startText.
func (p *parser) clauseContinues(startText string) bool {
	p.skipTrivia()
	if p.atEOF() {
		return false
	}
	t := p.tok()
	return t.Kind == lexer.KindKeyword && clauseFor(startText, t.Text)
}

// skipBalanced consumes from an opening token through its matching
// closer, ignoring nesting of the same pair.
func (p *parser) skipBalanced(open, close string) {
	depth := 0
	for {
		p.skipTrivia()
		if p.atEOF() {
			return
		}
		t := p.tok()
		if t.Kind == lexer.KindPunct {
			switch t.Text {
			case open:
				depth++
			case close:
				depth--
				if depth == 0 {
					p.pos++
					return
				}
			}
		}
		p.pos++
	}
}

func isColon(t lexer.Token) bool {
	return t.Kind == lexer.KindPunct && t.Text == ":"
}

// endTokens are keywords that may lawfully end a statement.
var endTokens = map[string]bool{
	"this": true, "super": true, "return": true, "break": true,
	"continue": true, "debugger": true,
}

// canEndStatement reports whether tok can be the final token of a
// statement for boundary inference.
func canEndStatement(tok lexer.Token) bool {
	switch tok.Kind {
	case lexer.KindIdent, lexer.KindNumber, lexer.KindString,
		lexer.KindTemplate, lexer.KindRegex:
		return true
	case lexer.KindKeyword:
		return endTokens[tok.Text]
	case lexer.KindPunct:
		return tok.Text == ")" || tok.Text == "]" || tok.Text == "}"
	}
	return false
}

// continuesExpression reports whether tok extends the expression on
// the previous line rather than starting a new statement.
func continuesExpression(tok lexer.Token) bool {
	switch tok.Kind {
	case lexer.KindTemplate:
		// Tagged template split across lines.
		return true
	case lexer.KindKeyword:
		return tok.Text == "in" || tok.Text == "instanceof"
	case lexer.KindPunct:
		switch tok.Text {
		case "{", "!", "~":
			return false
		}
		return true
	}
	return false
}
