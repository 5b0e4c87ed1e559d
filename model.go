package lpreader

import "math"

var infinity = math.Inf(1)

// Inf returns the value used for unbounded sides: +math.Inf(1); the
// negative side is -Inf(). Named here so callers never have to reach
// past this package for the sentinel, matching spec.md's "either may
// be ±∞" invariant. It is a function rather than a package var so
// nothing can reassign the sentinel out from under an in-flight parse.
func Inf() float64 { return infinity }

// VarType is a variable's domain, spec.md §3.
type VarType int

const (
	Continuous VarType = iota
	GeneralInteger
	Binary
	SemiContinuous
	SemiInteger
)

func (t VarType) String() string {
	switch t {
	case Continuous:
		return "continuous"
	case GeneralInteger:
		return "general-integer"
	case Binary:
		return "binary"
	case SemiContinuous:
		return "semi-continuous"
	case SemiInteger:
		return "semi-integer"
	default:
		return "unknown"
	}
}

// Variable is an interned problem variable, addressed by its stable
// Index within Model.Variables (the "arena addressed by index" design
// note of spec.md §9, modeled on the teacher's Rows/Cols/Elems slices).
type Variable struct {
	Index int
	Name  string
	Lower float64
	Upper float64
	Type  VarType
}

// LinTerm is a (coefficient, variable) pair, spec.md §3.
type LinTerm struct {
	Coef float64
	Var  int // index into Model.Variables
}

// QuadTerm is a (coefficient, var1, var2) triple; var1 == var2 encodes a
// squared term.
type QuadTerm struct {
	Coef float64
	Var1 int
	Var2 int
}

// Expression is an optionally-named sum of linear and quadratic terms
// plus a scalar offset, spec.md §3. Order of LinTerms/QuadTerms is
// preserved as read; repeated terms over the same variable are kept
// as-is, summation being the consumer's responsibility.
type Expression struct {
	Name     string
	LinTerms []LinTerm
	QuadTerms []QuadTerm
	Offset   float64
}

// Constraint bounds an Expression above and/or below. Equality is
// encoded by Lower == Upper.
type Constraint struct {
	Expr  Expression
	Lower float64
	Upper float64
}

// SOSEntry is a single (variable, weight) member of a SOS group.
type SOSEntry struct {
	Var    int
	Weight float64
}

// SOS is a special-ordered-set group, spec.md §3.
type SOS struct {
	Name    string
	Type    int // 1 or 2
	Entries []SOSEntry
}

// Model is the finished, immutable-from-the-parser's-perspective output
// of Read/Parse, spec.md §3.
type Model struct {
	Sense       objSense
	Objective   Expression
	Constraints []Constraint
	SOSGroups   []SOS
	Variables   []Variable

	varIndex map[string]int // private: name -> index, owned by the builder
}

// IsMaximize reports whether the objective sense is maximize.
func (m *Model) IsMaximize() bool { return m.Sense == senseMaximize }

// IsMinimize reports whether the objective sense is minimize.
func (m *Model) IsMinimize() bool { return m.Sense == senseMinimize }

// Variable returns the variable at the given stable index.
func (m *Model) Variable(i int) Variable { return m.Variables[i] }

// VariableByName looks up a variable's index by name. ok is false if no
// variable by that name was ever referenced during parsing.
func (m *Model) VariableByName(name string) (int, bool) {
	i, ok := m.varIndex[name]
	return i, ok
}

// builder is the single writer that owns variable interning while a
// Model is under construction. Section processors call it serially;
// spec.md §5 guarantees no concurrent access, so no locking is needed.
type builder struct {
	model *Model
}

func newBuilder() *builder {
	return &builder{
		model: &Model{
			Sense:    senseMinimize,
			varIndex: make(map[string]int),
		},
	}
}

// getVarByName interns name: the first mention creates the Variable with
// default bounds [0, +Inf] and type Continuous; subsequent mentions
// return the same index.
func (b *builder) getVarByName(name string) int {
	if idx, ok := b.model.varIndex[name]; ok {
		return idx
	}
	idx := len(b.model.Variables)
	b.model.Variables = append(b.model.Variables, Variable{
		Index: idx,
		Name:  name,
		Lower: 0,
		Upper: Inf(),
		Type:  Continuous,
	})
	b.model.varIndex[name] = idx
	return idx
}
