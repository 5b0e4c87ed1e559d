package lpreader

// processSections runs each section processor in the order spec.md
// §4.4 mandates: none, objective, constraints, bounds, general, binary,
// semi, sos, end. The general/semi order matters for the type-promotion
// interaction documented in spec.md §4.4 and §9 (see DESIGN.md open
// question 1).
func processSections(b *builder, buckets map[sectionKind][]procToken) error {
	if err := processNoneSection(buckets[sectionNone]); err != nil {
		return err
	}
	if err := processObjectiveSection(b, buckets[sectionObjective]); err != nil {
		return err
	}
	if err := processConstraintsSection(b, buckets[sectionConstraints]); err != nil {
		return err
	}
	if err := processBoundsSection(b, buckets[sectionBounds]); err != nil {
		return err
	}
	if err := processGeneralSection(b, buckets[sectionGeneral]); err != nil {
		return err
	}
	if err := processBinarySection(b, buckets[sectionBinary]); err != nil {
		return err
	}
	if err := processSemiSection(b, buckets[sectionSemi]); err != nil {
		return err
	}
	if err := processSOSSection(b, buckets[sectionSOS]); err != nil {
		return err
	}
	if err := processEndSection(buckets[sectionEnd]); err != nil {
		return err
	}
	return nil
}

func processNoneSection(toks []procToken) error {
	if len(toks) != 0 {
		t := toks[0]
		return structuralErrorf(t.Line, t.Col, "", "unexpected tokens outside any section")
	}
	return nil
}

// processObjectiveSection parses the objective bucket as a single
// expression, spec.md §4.4 "Objective".
func processObjectiveSection(b *builder, toks []procToken) error {
	expr, i, err := parseExpression(b, toks, 0, true)
	if err != nil {
		return err
	}
	if i != len(toks) {
		t := toks[i]
		return structuralErrorf(t.Line, t.Col, "", "unconsumed tokens in objective section")
	}
	b.model.Objective = expr
	return nil
}

// processConstraintsSection repeatedly parses an expression followed by
// a mandatory comparison and constant RHS, spec.md §4.4 "Constraints".
func processConstraintsSection(b *builder, toks []procToken) error {
	i := 0
	for i < len(toks) {
		expr, next, err := parseExpression(b, toks, i, false)
		if err != nil {
			return err
		}
		i = next

		if len(toks)-i < 2 {
			return structuralErrorf(lastLine(toks), lastCol(toks), "", "constraint missing comparison and right-hand side")
		}
		if toks[i].Kind != procComparison {
			return semanticErrorf(toks[i].Line, toks[i].Col, "", "expected comparison operator in constraint")
		}
		if toks[i+1].Kind != procConstant {
			return semanticErrorf(toks[i+1].Line, toks[i+1].Col, "", "constraint right-hand side must be a constant")
		}

		con := Constraint{Expr: expr, Lower: -Inf(), Upper: Inf()}
		value := toks[i+1].Value
		switch toks[i].Comp {
		case compEqual:
			con.Lower, con.Upper = value, value
		case compLessEq:
			con.Upper = value
		case compGreaterEq:
			con.Lower = value
		case compLess, compGreater:
			return semanticErrorf(toks[i].Line, toks[i].Col, "", "strict < and > are not allowed in constraints")
		default:
			return semanticErrorf(toks[i].Line, toks[i].Col, "", "unrecognized comparison operator")
		}

		b.model.Constraints = append(b.model.Constraints, con)
		i += 2
	}
	return nil
}

// processBoundsSection implements the four bound forms of spec.md §4.4
// "Bounds", tried in order.
func processBoundsSection(b *builder, toks []procToken) error {
	i := 0
	for i < len(toks) {
		// VAR free
		if len(toks)-i >= 2 && toks[i].Kind == procVariableID && toks[i+1].Kind == procFree {
			v := b.getVarByName(toks[i].Name)
			b.model.Variables[v].Lower = -Inf()
			b.model.Variables[v].Upper = Inf()
			i += 2
			continue
		}

		// CONST COMP(<=) VAR COMP(<=) CONST
		if len(toks)-i >= 5 &&
			toks[i].Kind == procConstant &&
			toks[i+1].Kind == procComparison &&
			toks[i+2].Kind == procVariableID &&
			toks[i+3].Kind == procComparison &&
			toks[i+4].Kind == procConstant {
			if toks[i+1].Comp != compLessEq || toks[i+3].Comp != compLessEq {
				return semanticErrorf(toks[i+1].Line, toks[i+1].Col, "", "double-sided bound requires <= on both sides")
			}
			lb := toks[i].Value
			ub := toks[i+4].Value
			v := b.getVarByName(toks[i+2].Name)
			b.model.Variables[v].Lower = lb
			b.model.Variables[v].Upper = ub
			i += 5
			continue
		}

		// CONST COMP VAR
		if len(toks)-i >= 3 &&
			toks[i].Kind == procConstant &&
			toks[i+1].Kind == procComparison &&
			toks[i+2].Kind == procVariableID {
			value := toks[i].Value
			v := b.getVarByName(toks[i+2].Name)
			dir := toks[i+1].Comp
			if dir == compLess || dir == compGreater {
				return semanticErrorf(toks[i+1].Line, toks[i+1].Col, "", "strict < and > are not allowed in bounds")
			}
			switch dir {
			case compLessEq:
				b.model.Variables[v].Lower = value
			case compGreaterEq:
				b.model.Variables[v].Upper = value
			case compEqual:
				b.model.Variables[v].Lower = value
				b.model.Variables[v].Upper = value
			}
			i += 3
			continue
		}

		// VAR COMP CONST
		if len(toks)-i >= 3 &&
			toks[i].Kind == procVariableID &&
			toks[i+1].Kind == procComparison &&
			toks[i+2].Kind == procConstant {
			value := toks[i+2].Value
			v := b.getVarByName(toks[i].Name)
			dir := toks[i+1].Comp
			if dir == compLess || dir == compGreater {
				return semanticErrorf(toks[i+1].Line, toks[i+1].Col, "", "strict < and > are not allowed in bounds")
			}
			switch dir {
			case compLessEq:
				b.model.Variables[v].Upper = value
			case compGreaterEq:
				b.model.Variables[v].Lower = value
			case compEqual:
				b.model.Variables[v].Lower = value
				b.model.Variables[v].Upper = value
			}
			i += 3
			continue
		}

		return structuralErrorf(toks[i].Line, toks[i].Col, "", "unrecognized bound entry")
	}
	return nil
}

// processBinarySection sets each referenced variable's type to Binary
// and clamps its bounds to [0, 1], spec.md §4.4 "Binary".
func processBinarySection(b *builder, toks []procToken) error {
	for _, tok := range toks {
		if tok.Kind != procVariableID {
			return structuralErrorf(tok.Line, tok.Col, "", "expected variable identifier in binary section")
		}
		v := b.getVarByName(tok.Name)
		b.model.Variables[v].Type = Binary
		b.model.Variables[v].Lower = 0
		b.model.Variables[v].Upper = 1
	}
	return nil
}

// processGeneralSection marks referenced variables as general-integer,
// promoting to semi-integer if already semi-continuous, spec.md §4.4
// "General / Semi-continuous".
func processGeneralSection(b *builder, toks []procToken) error {
	for _, tok := range toks {
		if tok.Kind != procVariableID {
			return structuralErrorf(tok.Line, tok.Col, "", "expected variable identifier in general section")
		}
		v := b.getVarByName(tok.Name)
		if b.model.Variables[v].Type == SemiContinuous {
			b.model.Variables[v].Type = SemiInteger
		} else {
			b.model.Variables[v].Type = GeneralInteger
		}
	}
	return nil
}

// processSemiSection marks referenced variables as semi-continuous,
// promoting to semi-integer if already general-integer.
func processSemiSection(b *builder, toks []procToken) error {
	for _, tok := range toks {
		if tok.Kind != procVariableID {
			return structuralErrorf(tok.Line, tok.Col, "", "expected variable identifier in semi-continuous section")
		}
		v := b.getVarByName(tok.Name)
		if b.model.Variables[v].Type == GeneralInteger {
			b.model.Variables[v].Type = SemiInteger
		} else {
			b.model.Variables[v].Type = SemiContinuous
		}
	}
	return nil
}

// processSOSSection parses each SOS group: a mandatory label, a
// mandatory SOS-type marker, then zero or more (label, constant)
// entries reinterpreted as (variable, weight), spec.md §4.4 "SOS".
func processSOSSection(b *builder, toks []procToken) error {
	i := 0
	for i < len(toks) {
		if toks[i].Kind != procConstraintLabel {
			return structuralErrorf(toks[i].Line, toks[i].Col, "", "SOS group must start with a name")
		}
		sos := SOS{Name: toks[i].Name}
		i++

		if i >= len(toks) || toks[i].Kind != procSOSType {
			return structuralErrorf(lastLine(toks), lastCol(toks), "", "SOS group missing type marker")
		}
		sos.Type = toks[i].SOSDigit
		i++

		for i < len(toks) {
			if len(toks)-i >= 2 && toks[i].Kind == procConstraintLabel && toks[i+1].Kind == procConstant {
				v := b.getVarByName(toks[i].Name)
				sos.Entries = append(sos.Entries, SOSEntry{Var: v, Weight: toks[i+1].Value})
				i += 2
				continue
			}
			break
		}

		b.model.SOSGroups = append(b.model.SOSGroups, sos)
	}
	return nil
}

func processEndSection(toks []procToken) error {
	if len(toks) != 0 {
		t := toks[0]
		return structuralErrorf(t.Line, t.Col, "", "end section must be empty")
	}
	return nil
}

func lastLine(toks []procToken) int {
	if len(toks) == 0 {
		return 0
	}
	return toks[len(toks)-1].Line
}

func lastCol(toks []procToken) int {
	if len(toks) == 0 {
		return 0
	}
	return toks[len(toks)-1].Col
}
