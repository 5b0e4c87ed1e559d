package lpreader

import "testing"

func TestBuilderInternsVariablesByName(t *testing.T) {
	b := newBuilder()
	x1 := b.getVarByName("x")
	x2 := b.getVarByName("x")
	y := b.getVarByName("y")

	if x1 != x2 {
		t.Errorf("getVarByName(x) returned different indices: %d, %d", x1, x2)
	}
	if x1 == y {
		t.Errorf("distinct names got the same index")
	}
	if len(b.model.Variables) != 2 {
		t.Fatalf("got %d variables, want 2", len(b.model.Variables))
	}
}

func TestBuilderDefaultVariableBounds(t *testing.T) {
	b := newBuilder()
	i := b.getVarByName("x")
	v := b.model.Variables[i]
	if v.Lower != 0 || v.Upper != Inf() || v.Type != Continuous {
		t.Errorf("default variable = %+v", v)
	}
}

func TestModelVariableByName(t *testing.T) {
	b := newBuilder()
	b.getVarByName("x")
	m := b.model
	idx, ok := m.VariableByName("x")
	if !ok || idx != 0 {
		t.Fatalf("VariableByName(x) = %d, %v", idx, ok)
	}
	if _, ok := m.VariableByName("nope"); ok {
		t.Fatal("expected VariableByName to report false for an unseen name")
	}
}

func TestModelSenseAccessors(t *testing.T) {
	m := &Model{Sense: senseMaximize}
	if !m.IsMaximize() || m.IsMinimize() {
		t.Errorf("IsMaximize/IsMinimize wrong for maximize sense")
	}
	m.Sense = senseMinimize
	if m.IsMaximize() || !m.IsMinimize() {
		t.Errorf("IsMaximize/IsMinimize wrong for minimize sense")
	}
}
