package core

import (
	"testing"
	"time"
)

func TestLayerCommitCopiesNext(t *testing.T) {
	l := NewLayer[int](3)
	l.Next()[1] = 7
	if got := l.Current()[1]; got != 0 {
		t.Fatalf("current changed before commit: %d", got)
	}
	l.Commit()
	if got := l.Current()[1]; got != 7 {
		t.Fatalf("expected committed value 7, got %d", got)
	}
	if got := l.Next()[1]; got != 7 {
		t.Fatalf("next should keep its value after commit, got %d", got)
	}

	l.Current()[0] = 4
	if got := l.Next()[0]; got != 0 {
		t.Fatalf("generations must not alias, next[0]=%d", got)
	}
}

func TestLayerFill(t *testing.T) {
	l := NewLayer[string](2)
	l.Fill("x")
	for i := 0; i < l.Len(); i++ {
		if l.Current()[i] != "x" || l.Next()[i] != "x" {
			t.Fatalf("cell %d not filled", i)
		}
	}
}

func TestIndexCoordsWrap(t *testing.T) {
	xy := Index(5, 3, 2)
	if xy != 13 {
		t.Fatalf("expected 13, got %d", xy)
	}
	if x, y := Coords(5, xy); x != 3 || y != 2 {
		t.Fatalf("expected (3,2), got (%d,%d)", x, y)
	}
	cases := map[[2]int]int{{-1, 5}: 4, {5, 5}: 0, {12, 5}: 2, {-6, 5}: 4}
	for in, want := range cases {
		if got := Wrap(in[0], in[1]); got != want {
			t.Fatalf("Wrap(%d,%d)=%d, want %d", in[0], in[1], got, want)
		}
	}
}

func TestRNGSeedReplays(t *testing.T) {
	a := NewRNG(11)
	first := []int{a.IntN(100), a.IntN(100), a.IntN(100)}
	a.Seed(11)
	for i, want := range first {
		if got := a.IntN(100); got != want {
			t.Fatalf("draw %d: got %d, want %d", i, got, want)
		}
	}
	if got := a.IntN(0); got != 0 {
		t.Fatalf("IntN(0) should be 0, got %d", got)
	}
	for i := 0; i < 100; i++ {
		if f := a.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
	}
}

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }
func (c constSource) IntN(int) int     { return 0 }

func TestChance(t *testing.T) {
	if !Chance(constSource(0.2), 0.5) {
		t.Fatal("0.2 < 0.5 should pass")
	}
	if Chance(constSource(0.5), 0.5) {
		t.Fatal("0.5 < 0.5 should fail")
	}
}

func TestFixedStepAdvance(t *testing.T) {
	fs := NewFixedStep(10)
	if fs.Period() != 100*time.Millisecond {
		t.Fatalf("unexpected period %v", fs.Period())
	}
	start := time.Unix(0, 0)
	if !fs.advance(start) {
		t.Fatal("first call should step immediately")
	}
	if fs.advance(start.Add(50 * time.Millisecond)) {
		t.Fatal("half a period should not step")
	}
	if !fs.advance(start.Add(100 * time.Millisecond)) {
		t.Fatal("a full period should step")
	}
	if fs.Epoch() != 2 {
		t.Fatalf("expected 2 epochs, got %d", fs.Epoch())
	}

	fs.SetHz(0)
	if fs.Period() != time.Second/40 {
		t.Fatalf("non-positive rate should fall back to 40Hz, got %v", fs.Period())
	}
}

func TestEvery(t *testing.T) {
	hits := 0
	for epoch := 1; epoch <= 12; epoch++ {
		if Every(epoch, 4) {
			hits++
		}
	}
	if hits != 3 {
		t.Fatalf("expected 3 slow epochs in 12, got %d", hits)
	}
	if !Every(7, 1) || !Every(7, 0) {
		t.Fatal("k <= 1 runs every epoch")
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{IntParam("n", "N", 3)}},
		{Name: "b", Params: []Parameter{FloatParam("f", "F", 0.25), Int64Param("seed", "Seed", -4)}},
	}}
	if p, ok := s.Lookup("f"); !ok || p.Value != "0.25" || p.Type != ParamTypeFloat {
		t.Fatalf("unexpected lookup result %+v %v", p, ok)
	}
	if p, ok := s.Lookup("seed"); !ok || p.Value != "-4" {
		t.Fatalf("unexpected seed %+v", p)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("missing key should not be found")
	}
}

func TestRegister(t *testing.T) {
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty names are ignored")
	}
	if _, ok := Sims()["nil-factory"]; ok {
		t.Fatal("nil factories are ignored")
	}
}
