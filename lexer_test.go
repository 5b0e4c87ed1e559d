package lpreader

import "testing"

func collectRaw(t *testing.T, lp string) []rawToken {
	t.Helper()
	lx := newLexer(NewStringSource(lp))
	var out []rawToken
	for {
		tok, err := lx.next()
		if err != nil {
			t.Fatalf("lexer error: %v", err)
		}
		out = append(out, tok)
		if tok.Kind == rawFileEnd {
			break
		}
	}
	return out
}

func TestLexerPunctuation(t *testing.T) {
	toks := collectRaw(t, "[ ] < > = : + - * / ^")
	want := []rawKind{rawBracketOpen, rawBracketClose, rawLess, rawGreater, rawEqual,
		rawColon, rawPlus, rawMinus, rawAsterisk, rawSlash, rawCaret, rawFileEnd}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got kind %d, want %d", i, toks[i].Kind, k)
		}
	}
}

func TestLexerComment(t *testing.T) {
	toks := collectRaw(t, "x \\ this is a comment\ny")
	if len(toks) != 3 { // STRING(x), STRING(y), FILEEND
		t.Fatalf("got %d tokens: %+v", len(toks), toks)
	}
	if toks[0].Kind != rawString || toks[0].Text != "x" {
		t.Errorf("first token = %+v", toks[0])
	}
	if toks[1].Kind != rawString || toks[1].Text != "y" {
		t.Errorf("second token = %+v", toks[1])
	}
}

func TestLexerNumber(t *testing.T) {
	toks := collectRaw(t, "3 3.5 3.5e2 3.5E-2 .5")
	var nums []float64
	for _, tok := range toks {
		if tok.Kind == rawNumber {
			nums = append(nums, tok.Num)
		}
	}
	want := []float64{3, 3.5, 350, 0.035, 0.5}
	if len(nums) != len(want) {
		t.Fatalf("got %d numbers, want %d: %v", len(nums), len(want), nums)
	}
	for i := range want {
		if nums[i] != want[i] {
			t.Errorf("number %d: got %v, want %v", i, nums[i], want[i])
		}
	}
}

func TestLexerIdentifierStopsAtDelimiter(t *testing.T) {
	toks := collectRaw(t, "x1+y2")
	if len(toks) != 4 { // STRING(x1), PLUS, STRING(y2), FILEEND
		t.Fatalf("got %d tokens: %+v", len(toks), toks)
	}
	if toks[0].Text != "x1" || toks[2].Text != "y2" {
		t.Errorf("unexpected idents: %+v", toks)
	}
}

func TestLexerCRStripped(t *testing.T) {
	toks := collectRaw(t, "x\r")
	if len(toks) != 2 || toks[0].Text != "x" {
		t.Fatalf("got %+v", toks)
	}
}

func TestLexerUnrecognizedByte(t *testing.T) {
	lx := newLexer(NewStringSource("x @ y"))
	for {
		tok, err := lx.next()
		if err != nil {
			if _, ok := AsParseError(err); !ok {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			return
		}
		if tok.Kind == rawFileEnd {
			t.Fatal("expected lex error before file end")
		}
	}
}

func TestLexerFileEndIsStable(t *testing.T) {
	lx := newLexer(NewStringSource("x"))
	for i := 0; i < 5; i++ {
		tok, err := lx.next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind == rawFileEnd {
			// Calling next() again should keep returning FILEEND.
			tok2, err2 := lx.next()
			if err2 != nil || tok2.Kind != rawFileEnd {
				t.Fatalf("expected stable FILEEND, got %+v, %v", tok2, err2)
			}
			return
		}
	}
	t.Fatal("never reached FILEEND")
}
