package lexer

import "testing"

// kindsAndTexts extracts (kind, text) pairs, dropping the EOF token.
func kindsAndTexts(toks []Token) ([]Kind, []string) {
	var kinds []Kind
	var texts []string
	for _, t := range toks {
		if t.Kind == KindEOF {
			break
		}
		kinds = append(kinds, t.Kind)
		texts = append(texts, t.Text)
	}
	return kinds, texts
}

func TestLexKinds(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kinds []Kind
		texts []string
	}{
		{
			name:  "call statement",
			src:   `describe('x');`,
			kinds: []Kind{KindIdent, KindPunct, KindString, KindPunct, KindPunct},
			texts: []string{"describe", "(", "'x'", ")", ";"},
		},
		{
			name:  "keywords vs identifiers",
			src:   `switch it`,
			kinds: []Kind{KindKeyword, KindIdent},
			texts: []string{"switch", "it"},
		},
		{
			name:  "arrow and multichar punct",
			src:   `() => a === b`,
			kinds: []Kind{KindPunct, KindPunct, KindPunct, KindIdent, KindPunct, KindIdent},
			texts: []string{"(", ")", "=>", "a", "===", "b"},
		},
		{
			name:  "line comment",
			src:   "foo(); // note",
			kinds: []Kind{KindIdent, KindPunct, KindPunct, KindPunct, KindLineComment},
			texts: []string{"foo", "(", ")", ";", "// note"},
		},
		{
			name:  "numbers",
			src:   "1 2.5 0x1f 1e-10",
			kinds: []Kind{KindNumber, KindNumber, KindNumber, KindNumber},
			texts: []string{"1", "2.5", "0x1f", "1e-10"},
		},
		{
			name:  "template literal with interpolation",
			src:   "`a ${b + {c: 1}.c} d`",
			kinds: []Kind{KindTemplate},
			texts: []string{"`a ${b + {c: 1}.c} d`"},
		},
		{
			name:  "regex after punct",
			src:   `x = /ab[/]c/g;`,
			kinds: []Kind{KindIdent, KindPunct, KindRegex, KindPunct},
			texts: []string{"x", "=", "/ab[/]c/g", ";"},
		},
		{
			name:  "division not regex",
			src:   `a / b`,
			kinds: []Kind{KindIdent, KindPunct, KindIdent},
			texts: []string{"a", "/", "b"},
		},
		{
			name:  "string escapes",
			src:   `'a\'b' "c\"d"`,
			kinds: []Kind{KindString, KindString},
			texts: []string{`'a\'b'`, `"c\"d"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Lex(tt.src)
			kinds, texts := kindsAndTexts(toks)

			if len(kinds) != len(tt.kinds) {
				t.Fatalf("token count: got %d (%v), want %d", len(kinds), texts, len(tt.kinds))
			}
			for i := range kinds {
				if kinds[i] != tt.kinds[i] {
					t.Errorf("token %d kind: got %v, want %v", i, kinds[i], tt.kinds[i])
				}
				if texts[i] != tt.texts[i] {
					t.Errorf("token %d text: got %q, want %q", i, texts[i], tt.texts[i])
				}
			}
		})
	}
}

func TestLexPositions(t *testing.T) {
	src := "foo();\n  bar();\n"
	toks := Lex(src)

	// foo ( ) ; bar ( ) ; EOF
	if len(toks) != 9 {
		t.Fatalf("token count: got %d, want 9", len(toks))
	}

	foo := toks[0]
	if foo.Line != 1 || foo.Col != 0 || foo.Start != 0 || foo.End != 3 {
		t.Errorf("foo position: got line=%d col=%d span=[%d,%d)", foo.Line, foo.Col, foo.Start, foo.End)
	}

	bar := toks[4]
	if bar.Line != 2 || bar.Col != 2 {
		t.Errorf("bar position: got line=%d col=%d, want line=2 col=2", bar.Line, bar.Col)
	}
}

func TestLexMultiLineTokens(t *testing.T) {
	src := "/* a\nb */ x `t\nu`"
	toks := Lex(src)

	comment := toks[0]
	if comment.Kind != KindBlockComment {
		t.Fatalf("kind: got %v, want block comment", comment.Kind)
	}
	if comment.Line != 1 || comment.EndLine != 2 {
		t.Errorf("comment lines: got %d..%d, want 1..2", comment.Line, comment.EndLine)
	}

	tmpl := toks[2]
	if tmpl.Kind != KindTemplate {
		t.Fatalf("kind: got %v, want template", tmpl.Kind)
	}
	if tmpl.Line != 2 || tmpl.EndLine != 3 {
		t.Errorf("template lines: got %d..%d, want 2..3", tmpl.Line, tmpl.EndLine)
	}
}

func TestLexAlwaysTerminates(t *testing.T) {
	// Unterminated constructs must still produce a bounded stream.
	inputs := []string{
		"'unterminated",
		"`unterminated ${a",
		"/* unterminated",
		"/unterminated",
		"\"mixed\nlines\"",
	}

	for _, src := range inputs {
		toks := Lex(src)
		if len(toks) == 0 || toks[len(toks)-1].Kind != KindEOF {
			t.Errorf("Lex(%q): stream not EOF-terminated", src)
		}
	}
}

func TestLexOffsetsCoverSource(t *testing.T) {
	src := "describe('x', () => {\n  it('y'); // t\n});\n"
	toks := Lex(src)

	last := 0
	for _, tok := range toks {
		if tok.Start < last {
			t.Errorf("token %q starts at %d before previous end %d", tok.Text, tok.Start, last)
		}
		if tok.Text != src[tok.Start:tok.End] {
			t.Errorf("token text %q does not match span %q", tok.Text, src[tok.Start:tok.End])
		}
		last = tok.End
	}
}
