package lpreader

// parseExpression implements the shared expression grammar of
// spec.md §4.4 ("Expression parser (shared by objective and
// constraints)"), used by both the objective section processor and the
// per-constraint loop in the constraints section processor.
//
// It optionally consumes a leading CONSTRAINT_LABEL, then repeatedly
// matches the longest pattern it can in priority order: const-var,
// const alone, var alone, or a bracketed quadratic block. It returns
// the advanced index; callers are responsible for checking that the
// remainder of the token slice was fully consumed where the grammar
// requires it.
func parseExpression(b *builder, toks []procToken, i int, isObj bool) (Expression, int, error) {
	var expr Expression

	if i < len(toks) && toks[i].Kind == procConstraintLabel {
		expr.Name = toks[i].Name
		i++
	}

	for i < len(toks) {
		// const var -> linear term
		if len(toks)-i >= 2 && toks[i].Kind == procConstant && toks[i+1].Kind == procVariableID {
			v := b.getVarByName(toks[i+1].Name)
			expr.LinTerms = append(expr.LinTerms, LinTerm{Coef: toks[i].Value, Var: v})
			i += 2
			continue
		}

		// A bare sign or constant directly in front of a quadratic block
		// (e.g. "- [ ... ]") has no defined meaning: "+ [" is already
		// folded into a plain BRACKET_OPEN by the classifier, so this can
		// only be a stray leading "-" or two terms with a missing
		// operator between them. Reject rather than silently treating
		// the constant as an offset and the block as unsigned.
		if toks[i].Kind == procConstant && i+1 < len(toks) && toks[i+1].Kind == procBracketOpen {
			return expr, i, structuralErrorf(toks[i].Line, toks[i].Col, "", "a quadratic block cannot be preceded by a bare sign or constant")
		}

		// const alone -> overwrites offset
		if toks[i].Kind == procConstant {
			expr.Offset = toks[i].Value
			i++
			continue
		}

		// var alone -> linear term with implicit coefficient 1
		if toks[i].Kind == procVariableID {
			v := b.getVarByName(toks[i].Name)
			expr.LinTerms = append(expr.LinTerms, LinTerm{Coef: 1, Var: v})
			i++
			continue
		}

		// quadratic block
		if toks[i].Kind == procBracketOpen {
			openTok := toks[i]
			i++
			for i < len(toks) && toks[i].Kind != procBracketClose {
				// const var ^ const(=2)
				if len(toks)-i >= 4 &&
					toks[i].Kind == procConstant &&
					toks[i+1].Kind == procVariableID &&
					toks[i+2].Kind == procCaret &&
					toks[i+3].Kind == procConstant {
					if err := requireSquareExponent(toks[i+3]); err != nil {
						return expr, i, err
					}
					v := b.getVarByName(toks[i+1].Name)
					expr.QuadTerms = append(expr.QuadTerms, QuadTerm{Coef: toks[i].Value, Var1: v, Var2: v})
					i += 4
					continue
				}

				// var ^ const(=2)
				if len(toks)-i >= 3 &&
					toks[i].Kind == procVariableID &&
					toks[i+1].Kind == procCaret &&
					toks[i+2].Kind == procConstant {
					if err := requireSquareExponent(toks[i+2]); err != nil {
						return expr, i, err
					}
					v := b.getVarByName(toks[i].Name)
					expr.QuadTerms = append(expr.QuadTerms, QuadTerm{Coef: 1, Var1: v, Var2: v})
					i += 3
					continue
				}

				// const var * var
				if len(toks)-i >= 4 &&
					toks[i].Kind == procConstant &&
					toks[i+1].Kind == procVariableID &&
					toks[i+2].Kind == procAsterisk &&
					toks[i+3].Kind == procVariableID {
					v1 := b.getVarByName(toks[i+1].Name)
					v2 := b.getVarByName(toks[i+3].Name)
					expr.QuadTerms = append(expr.QuadTerms, QuadTerm{Coef: toks[i].Value, Var1: v1, Var2: v2})
					i += 4
					continue
				}

				// var * var
				if len(toks)-i >= 3 &&
					toks[i].Kind == procVariableID &&
					toks[i+1].Kind == procAsterisk &&
					toks[i+2].Kind == procVariableID {
					v1 := b.getVarByName(toks[i].Name)
					v2 := b.getVarByName(toks[i+2].Name)
					expr.QuadTerms = append(expr.QuadTerms, QuadTerm{Coef: 1, Var1: v1, Var2: v2})
					i += 3
					continue
				}

				break
			}

			if i >= len(toks) || toks[i].Kind != procBracketClose {
				return expr, i, structuralErrorf(openTok.Line, openTok.Col, "[", "unterminated quadratic block")
			}

			if isObj {
				// Objective quadratic blocks must be followed by "/ 2".
				if len(toks)-i < 3 || toks[i+1].Kind != procSlash || toks[i+2].Kind != procConstant {
					return expr, i, structuralErrorf(toks[i].Line, toks[i].Col, "]", "objective quadratic block must be followed by / 2")
				}
				if toks[i+2].Value != 2 {
					return expr, i, structuralErrorf(toks[i+2].Line, toks[i+2].Col, "", "objective quadratic block divisor must be 2, got %v", toks[i+2].Value)
				}
				i += 3
			} else {
				// Constraint quadratic blocks permit no /2 trailer.
				i++
			}
			continue
		}

		break
	}

	return expr, i, nil
}

func requireSquareExponent(tok procToken) error {
	if tok.Value != 2 {
		return semanticErrorf(tok.Line, tok.Col, "", "quadratic term exponent must be 2, got %v", tok.Value)
	}
	return nil
}
