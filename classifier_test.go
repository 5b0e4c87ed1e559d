package lpreader

import "testing"

func classifyString(t *testing.T, lp string) []procToken {
	t.Helper()
	lx := newLexer(NewStringSource(lp))
	toks, err := classify(lx)
	if err != nil {
		t.Fatalf("classify error: %v", err)
	}
	return toks
}

func TestClassifySectionHeaders(t *testing.T) {
	toks := classifyString(t, "min\nst\nbounds\ngeneral\nbinary\nsemi-continuous\nsos\nend")
	want := []sectionKind{sectionObjective, sectionConstraints, sectionBounds, sectionGeneral,
		sectionBinary, sectionSemi, sectionSOS, sectionEnd}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Kind != procSectionHeader || toks[i].Section != w {
			t.Errorf("token %d = %+v, want section %v", i, toks[i], w)
		}
	}
	if toks[0].Sense != senseMinimize {
		t.Errorf("objective sense = %v, want minimize", toks[0].Sense)
	}
}

func TestClassifyTwoWordHeader(t *testing.T) {
	toks := classifyString(t, "subject to")
	if len(toks) != 1 || toks[0].Section != sectionConstraints {
		t.Fatalf("got %+v", toks)
	}
}

func TestClassifyMaxSense(t *testing.T) {
	toks := classifyString(t, "max")
	if toks[0].Sense != senseMaximize {
		t.Fatalf("got sense %v, want maximize", toks[0].Sense)
	}
}

func TestClassifyConstraintLabel(t *testing.T) {
	toks := classifyString(t, "c1: x")
	if len(toks) != 2 {
		t.Fatalf("got %+v", toks)
	}
	if toks[0].Kind != procConstraintLabel || toks[0].Name != "c1" {
		t.Errorf("label token = %+v", toks[0])
	}
	if toks[1].Kind != procVariableID || toks[1].Name != "x" {
		t.Errorf("var token = %+v", toks[1])
	}
}

func TestClassifySOSTypeMarker(t *testing.T) {
	toks := classifyString(t, "S1::")
	if len(toks) != 1 || toks[0].Kind != procSOSType || toks[0].SOSDigit != 1 {
		t.Fatalf("got %+v", toks)
	}
	toks = classifyString(t, "S2::")
	if len(toks) != 1 || toks[0].SOSDigit != 2 {
		t.Fatalf("got %+v", toks)
	}
}

func TestClassifyBadSOSDigit(t *testing.T) {
	_, err := classify(newLexer(NewStringSource("S3::")))
	if err == nil {
		t.Fatal("expected classify error for SOS type 3")
	}
	pe, ok := AsParseError(err)
	if !ok || pe.Kind != ErrClassify {
		t.Fatalf("expected ErrClassify ParseError, got %v", err)
	}
}

func TestClassifyFreeAndInfinity(t *testing.T) {
	toks := classifyString(t, "free inf infinity")
	if len(toks) != 3 {
		t.Fatalf("got %+v", toks)
	}
	if toks[0].Kind != procFree {
		t.Errorf("token 0 = %+v", toks[0])
	}
	if toks[1].Kind != procConstant || toks[1].Value != Inf() {
		t.Errorf("token 1 = %+v", toks[1])
	}
	if toks[2].Kind != procConstant || toks[2].Value != Inf() {
		t.Errorf("token 2 = %+v", toks[2])
	}
}

func TestClassifySignedConstants(t *testing.T) {
	toks := classifyString(t, "x - y + 3")
	// VAR(x) CONST(-1) VAR(y) CONST(3)
	if len(toks) != 4 {
		t.Fatalf("got %+v", toks)
	}
	if toks[0].Kind != procVariableID || toks[0].Name != "x" {
		t.Errorf("token 0 = %+v", toks[0])
	}
	if toks[1].Kind != procConstant || toks[1].Value != -1 {
		t.Errorf("token 1 = %+v", toks[1])
	}
	if toks[2].Kind != procVariableID || toks[2].Name != "y" {
		t.Errorf("token 2 = %+v", toks[2])
	}
	if toks[3].Kind != procConstant || toks[3].Value != 3 {
		t.Errorf("token 3 = %+v", toks[3])
	}
}

func TestClassifyComparisons(t *testing.T) {
	toks := classifyString(t, "<= >= < > =")
	want := []compOp{compLessEq, compGreaterEq, compLess, compGreater, compEqual}
	if len(toks) != len(want) {
		t.Fatalf("got %+v", toks)
	}
	for i, w := range want {
		if toks[i].Kind != procComparison || toks[i].Comp != w {
			t.Errorf("token %d = %+v, want %v", i, toks[i], w)
		}
	}
}

func TestClassifyUnmatchedProducesError(t *testing.T) {
	// A COLON with nothing in front of it (not preceded by a STRING) has
	// no classifier pattern.
	_, err := classify(newLexer(NewStringSource(": :")))
	if err == nil {
		t.Fatal("expected classify error")
	}
}
