package lpreader

import "strings"

// classifier rewrites a flat raw-token sequence into the processed
// tokens the grammar understands, per spec.md §4.2. It is a pure
// function over a slice and a cursor: classify() drains the lexer up
// front into a raw-token slice, then advances an index producing
// processed tokens without mutating what it has already read, per the
// "Look-ahead without mutation" design note of spec.md §9.

var sectionKeywords = map[string]sectionKind{
	"minimize": sectionObjective, "minimum": sectionObjective, "min": sectionObjective,
	"maximize": sectionObjective, "maximum": sectionObjective, "max": sectionObjective,
	"subject to": sectionConstraints, "such that": sectionConstraints, "st": sectionConstraints, "s.t.": sectionConstraints,
	"bounds": sectionBounds, "bound": sectionBounds,
	"general": sectionGeneral, "generals": sectionGeneral, "gen": sectionGeneral,
	"binary": sectionBinary, "binaries": sectionBinary, "bin": sectionBinary,
	"semi-continuous": sectionSemi, "semi": sectionSemi,
	"sos": sectionSOS,
	"end": sectionEnd,
}

var objectiveSense = map[string]objSense{
	"minimize": senseMinimize, "minimum": senseMinimize, "min": senseMinimize,
	"maximize": senseMaximize, "maximum": senseMaximize, "max": senseMaximize,
}

func lookupSection(word string) (sectionKind, bool) {
	k, ok := sectionKeywords[strings.ToLower(word)]
	return k, ok
}

func lookupSense(word string) (objSense, bool) {
	s, ok := objectiveSense[strings.ToLower(word)]
	return s, ok
}

func isKeyword(word string, keywords ...string) bool {
	w := strings.ToLower(word)
	for _, k := range keywords {
		if w == k {
			return true
		}
	}
	return false
}

// classify drains src (a lexer) and returns the full processed-token
// sequence, per spec.md §4.2.
func classify(src *lexer) ([]procToken, error) {
	var raw []rawToken
	for {
		tok, err := src.next()
		if err != nil {
			return nil, err
		}
		raw = append(raw, tok)
		if tok.Kind == rawFileEnd {
			break
		}
	}

	var out []procToken
	i := 0
	for i < len(raw) {
		tok := raw[i]

		if tok.Kind == rawFileEnd {
			break
		}

		// Three-token form: STRING MINUS STRING (e.g. "semi-continuous").
		if len(raw)-i >= 3 && raw[i].Kind == rawString && raw[i+1].Kind == rawMinus && raw[i+2].Kind == rawString {
			combined := raw[i].Text + "-" + raw[i+2].Text
			if sec, ok := lookupSection(combined); ok {
				out = append(out, procToken{Kind: procSectionHeader, Section: sec, Line: tok.Line, Col: tok.Col})
				i += 3
				continue
			}
		}

		// Two-token form: STRING STRING (e.g. "subject to").
		if len(raw)-i >= 2 && raw[i].Kind == rawString && raw[i+1].Kind == rawString {
			combined := raw[i].Text + " " + raw[i+1].Text
			if sec, ok := lookupSection(combined); ok {
				out = append(out, procToken{Kind: procSectionHeader, Section: sec, Line: tok.Line, Col: tok.Col})
				i += 2
				continue
			}
		}

		// One-token form.
		if tok.Kind == rawString {
			if sec, ok := lookupSection(tok.Text); ok {
				pt := procToken{Kind: procSectionHeader, Section: sec, Line: tok.Line, Col: tok.Col}
				if sec == sectionObjective {
					sense, ok := lookupSense(tok.Text)
					if !ok {
						return nil, classifyErrorf(tok.Line, tok.Col, tok.Text, "unrecognized objective sense")
					}
					pt.Sense = sense
				}
				out = append(out, pt)
				i++
				continue
			}
		}

		// SOS type marker: STRING COLON COLON.
		if len(raw)-i >= 3 && raw[i].Kind == rawString && raw[i+1].Kind == rawColon && raw[i+2].Kind == rawColon {
			text := raw[i].Text
			if len(text) < 2 {
				return nil, classifyErrorf(tok.Line, tok.Col, text, "malformed SOS type marker")
			}
			digit := int(text[1] - '0')
			if digit != 1 && digit != 2 {
				return nil, classifyErrorf(tok.Line, tok.Col, text, "SOS type digit must be 1 or 2, got %q", text)
			}
			out = append(out, procToken{Kind: procSOSType, SOSDigit: digit, Line: tok.Line, Col: tok.Col})
			i += 3
			continue
		}

		// Constraint label: STRING COLON.
		if len(raw)-i >= 2 && raw[i].Kind == rawString && raw[i+1].Kind == rawColon {
			out = append(out, procToken{Kind: procConstraintLabel, Name: raw[i].Text, Line: tok.Line, Col: tok.Col})
			i += 2
			continue
		}

		// "free"
		if tok.Kind == rawString && isKeyword(tok.Text, "free") {
			out = append(out, procToken{Kind: procFree, Line: tok.Line, Col: tok.Col})
			i++
			continue
		}

		// "infinity" / "inf"
		if tok.Kind == rawString && isKeyword(tok.Text, "infinity", "inf") {
			out = append(out, procToken{Kind: procConstant, Value: Inf(), Line: tok.Line, Col: tok.Col})
			i++
			continue
		}

		// Bare string: variable identifier.
		if tok.Kind == rawString {
			out = append(out, procToken{Kind: procVariableID, Name: tok.Text, Line: tok.Line, Col: tok.Col})
			i++
			continue
		}

		// PLUS NUMBER / MINUS NUMBER
		if len(raw)-i >= 2 && raw[i].Kind == rawPlus && raw[i+1].Kind == rawNumber {
			out = append(out, procToken{Kind: procConstant, Value: raw[i+1].Num, Line: tok.Line, Col: tok.Col})
			i += 2
			continue
		}
		if len(raw)-i >= 2 && raw[i].Kind == rawMinus && raw[i+1].Kind == rawNumber {
			out = append(out, procToken{Kind: procConstant, Value: -raw[i+1].Num, Line: tok.Line, Col: tok.Col})
			i += 2
			continue
		}

		// PLUS BRACKET_OPEN -> discard the sign, keep the bracket.
		if len(raw)-i >= 2 && raw[i].Kind == rawPlus && raw[i+1].Kind == rawBracketOpen {
			out = append(out, procToken{Kind: procBracketOpen, Line: tok.Line, Col: tok.Col})
			i += 2
			continue
		}

		// Bare PLUS / MINUS -> implicit coefficient.
		if tok.Kind == rawPlus {
			out = append(out, procToken{Kind: procConstant, Value: 1, Line: tok.Line, Col: tok.Col})
			i++
			continue
		}
		if tok.Kind == rawMinus {
			out = append(out, procToken{Kind: procConstant, Value: -1, Line: tok.Line, Col: tok.Col})
			i++
			continue
		}

		// Bare NUMBER.
		if tok.Kind == rawNumber {
			out = append(out, procToken{Kind: procConstant, Value: tok.Num, Line: tok.Line, Col: tok.Col})
			i++
			continue
		}

		// Brackets, slash, asterisk, caret.
		if tok.Kind == rawBracketOpen {
			out = append(out, procToken{Kind: procBracketOpen, Line: tok.Line, Col: tok.Col})
			i++
			continue
		}
		if tok.Kind == rawBracketClose {
			out = append(out, procToken{Kind: procBracketClose, Line: tok.Line, Col: tok.Col})
			i++
			continue
		}
		if tok.Kind == rawSlash {
			out = append(out, procToken{Kind: procSlash, Line: tok.Line, Col: tok.Col})
			i++
			continue
		}
		if tok.Kind == rawAsterisk {
			out = append(out, procToken{Kind: procAsterisk, Line: tok.Line, Col: tok.Col})
			i++
			continue
		}
		if tok.Kind == rawCaret {
			out = append(out, procToken{Kind: procCaret, Line: tok.Line, Col: tok.Col})
			i++
			continue
		}

		// <= / <, >= / >, =
		if len(raw)-i >= 2 && raw[i].Kind == rawLess && raw[i+1].Kind == rawEqual {
			out = append(out, procToken{Kind: procComparison, Comp: compLessEq, Line: tok.Line, Col: tok.Col})
			i += 2
			continue
		}
		if len(raw)-i >= 2 && raw[i].Kind == rawGreater && raw[i+1].Kind == rawEqual {
			out = append(out, procToken{Kind: procComparison, Comp: compGreaterEq, Line: tok.Line, Col: tok.Col})
			i += 2
			continue
		}
		if tok.Kind == rawLess {
			out = append(out, procToken{Kind: procComparison, Comp: compLess, Line: tok.Line, Col: tok.Col})
			i++
			continue
		}
		if tok.Kind == rawGreater {
			out = append(out, procToken{Kind: procComparison, Comp: compGreater, Line: tok.Line, Col: tok.Col})
			i++
			continue
		}
		if tok.Kind == rawEqual {
			out = append(out, procToken{Kind: procComparison, Comp: compEqual, Line: tok.Line, Col: tok.Col})
			i++
			continue
		}

		return nil, classifyErrorf(tok.Line, tok.Col, tok.Text, "no classifier pattern matched raw token")
	}

	return out, nil
}
