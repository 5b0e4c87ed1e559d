package lpreader

import (
	"fmt"
	"io"
)

// Statistics summarizes the shape of a parsed Model, adapted from the
// teacher's Statistics/GetStatistics (lporun/lporun.go) to this
// package's Model instead of lpo's row/col/elem matrix.
type Statistics struct {
	NumVariables   int
	NumConstraints int
	NumSOS         int
	NumIntegers    int
	NumBinaries    int
	NumSemiCont    int
	NumLinTerms    int
	NumQuadTerms   int
}

// GetStatistics computes summary counts over m.
func GetStatistics(m *Model) Statistics {
	var s Statistics
	s.NumVariables = len(m.Variables)
	s.NumConstraints = len(m.Constraints)
	s.NumSOS = len(m.SOSGroups)

	for _, v := range m.Variables {
		switch v.Type {
		case GeneralInteger:
			s.NumIntegers++
		case Binary:
			s.NumBinaries++
		case SemiContinuous, SemiInteger:
			s.NumSemiCont++
		}
	}

	s.NumLinTerms += len(m.Objective.LinTerms)
	s.NumQuadTerms += len(m.Objective.QuadTerms)
	for _, c := range m.Constraints {
		s.NumLinTerms += len(c.Expr.LinTerms)
		s.NumQuadTerms += len(c.Expr.QuadTerms)
	}

	return s
}

// PrintStatistics prints s in the fixed-width style of the teacher's
// wpPrintLpoSoln tables.
func PrintStatistics(w io.Writer, s Statistics) error {
	_, err := fmt.Fprintf(w,
		"%6s %6s %6s %6s %6s %6s %6s %6s\n"+
			"%6d %6d %6d %6d %6d %6d %6d %6d\n",
		"VARS", "CONS", "SOS", "INTS", "BINS", "SEMIS", "LINT", "QUADT",
		s.NumVariables, s.NumConstraints, s.NumSOS, s.NumIntegers,
		s.NumBinaries, s.NumSemiCont, s.NumLinTerms, s.NumQuadTerms)
	return err
}

// PrintModel renders the objective, constraints, bounds, and SOS groups
// of m in a fixed-width tabular form.
func PrintModel(w io.Writer, m *Model) error {
	if _, err := fmt.Fprintf(w, "OBJECTIVE (%s):\n", m.Sense); err != nil {
		return err
	}
	if err := printExpression(w, m, m.Objective); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nCONSTRAINTS:\n"); err != nil {
		return err
	}
	for _, c := range m.Constraints {
		name := c.Expr.Name
		if name == "" {
			name = "-"
		}
		if _, err := fmt.Fprintf(w, "%6s  lower=%15g upper=%15g  ", name, c.Lower, c.Upper); err != nil {
			return err
		}
		if err := printExpression(w, m, c.Expr); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nVARIABLES:\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%6s  %-15s %15s %15s %-15s\n", "INDEX", "NAME", "LOWER", "UPPER", "TYPE"); err != nil {
		return err
	}
	for _, v := range m.Variables {
		if _, err := fmt.Fprintf(w, "%6d  %-15s %15g %15g %-15s\n", v.Index, v.Name, v.Lower, v.Upper, v.Type); err != nil {
			return err
		}
	}

	if len(m.SOSGroups) > 0 {
		if _, err := fmt.Fprintf(w, "\nSOS GROUPS:\n"); err != nil {
			return err
		}
		for _, sos := range m.SOSGroups {
			if _, err := fmt.Fprintf(w, "%6s  type=S%d  entries:", sos.Name, sos.Type); err != nil {
				return err
			}
			for _, e := range sos.Entries {
				if _, err := fmt.Fprintf(w, " %s:%g", m.Variables[e.Var].Name, e.Weight); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}

	return nil
}

func printExpression(w io.Writer, m *Model, e Expression) error {
	for _, t := range e.LinTerms {
		if _, err := fmt.Fprintf(w, "%+g %s ", t.Coef, m.Variables[t.Var].Name); err != nil {
			return err
		}
	}
	for _, t := range e.QuadTerms {
		if _, err := fmt.Fprintf(w, "%+g %s*%s ", t.Coef, m.Variables[t.Var1].Name, m.Variables[t.Var2].Name); err != nil {
			return err
		}
	}
	if e.Offset != 0 {
		if _, err := fmt.Fprintf(w, "%+g ", e.Offset); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
