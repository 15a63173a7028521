package chart

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBandThreeCategories(t *testing.T) {
	b := NewBand([]string{"a", "b", "a", "c"}, 0, 1020, 0.1)
	if got := b.Domain(); len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("domain = %v", got)
	}
	if !near(b.Step(), 1020/3.1) {
		t.Fatalf("step = %v", b.Step())
	}
	if !near(b.Bandwidth(), 1020/3.1*0.9) {
		t.Fatalf("bandwidth = %v", b.Bandwidth())
	}
	start := (1020 - 1020/3.1*2.9) / 2
	for i, d := range []string{"a", "b", "c"} {
		x, ok := b.Map(d)
		if !ok || !near(x, start+float64(i)*b.Step()) {
			t.Fatalf("Map(%s) = %v %v", d, x, ok)
		}
	}
	if _, ok := b.Map("zzz"); ok {
		t.Fatalf("unknown category mapped")
	}
}

func TestBandEmptyAndReversed(t *testing.T) {
	b := NewBand(nil, 0, 1020, 0.1)
	if !near(b.Step(), 1020) || !near(b.Bandwidth(), 918) {
		t.Fatalf("empty band step=%v bandwidth=%v", b.Step(), b.Bandwidth())
	}
	if len(b.Domain()) != 0 {
		t.Fatalf("empty domain expected")
	}

	r := NewBand([]string{"a", "b"}, 100, 0, 0)
	xa, _ := r.Map("a")
	xb, _ := r.Map("b")
	if !near(xa, 50) || !near(xb, 0) {
		t.Fatalf("reversed band a=%v b=%v", xa, xb)
	}
}

func TestLinearMap(t *testing.T) {
	l := NewLinear(0, 8, 440, 0)
	if !near(l.Map(0), 440) || !near(l.Map(8), 0) || !near(l.Map(5), 165) {
		t.Fatalf("map off: %v %v %v", l.Map(0), l.Map(8), l.Map(5))
	}
	d := NewLinear(0, 0, 440, 0)
	if d.Map(0) != 440 || d.Map(3) != 440 {
		t.Fatalf("degenerate domain should map to the baseline")
	}
}

func TestNice(t *testing.T) {
	cases := []struct {
		d0, d1 float64
		want   [2]float64
	}{
		{0, 8, [2]float64{0, 8}},
		{0, 97, [2]float64{0, 100}},
		{0, 0.37, [2]float64{0, 0.4}},
		{0, 0, [2]float64{0, 0}},
		{1.3, 48.7, [2]float64{0, 50}},
		{50, 0, [2]float64{50, 0}},
	}
	for _, c := range cases {
		got := NewLinear(c.d0, c.d1, 440, 0).Nice(10).Domain()
		if !near(got[0], c.want[0]) || !near(got[1], c.want[1]) {
			t.Fatalf("nice(%v,%v) = %v, want %v", c.d0, c.d1, got, c.want)
		}
		if math.Signbit(got[0]) && got[0] == 0 {
			t.Fatalf("nice(%v,%v) produced -0", c.d0, c.d1)
		}
	}
}

func TestTicks(t *testing.T) {
	got := NewLinear(0, 8, 440, 0).Ticks(10)
	if len(got) != 9 || got[0] != 0 || got[8] != 8 {
		t.Fatalf("ticks(0,8) = %v", got)
	}
	got = NewLinear(0, 100, 440, 0).Ticks(10)
	if len(got) != 11 || got[1] != 10 {
		t.Fatalf("ticks(0,100) = %v", got)
	}
	got = NewLinear(0, 0.4, 440, 0).Ticks(10)
	if len(got) != 9 || got[1] != 0.05 || got[8] != 0.4 {
		t.Fatalf("ticks(0,0.4) = %v", got)
	}
	if got := NewLinear(0, 0, 440, 0).Ticks(10); len(got) != 1 || got[0] != 0 {
		t.Fatalf("ticks(0,0) = %v", got)
	}
	if got := NewLinear(0, 8, 440, 0).Ticks(0); got != nil {
		t.Fatalf("count 0 should yield no ticks, got %v", got)
	}
	rev := NewLinear(8, 0, 0, 440).Ticks(10)
	if len(rev) != 9 || rev[0] != 8 || rev[8] != 0 {
		t.Fatalf("reversed ticks = %v", rev)
	}
}

func TestPrecision(t *testing.T) {
	cases := map[float64]int{1: 0, 10: 0, 0.5: 1, 0.1: 1, 0.05: 2, 0.2: 1, 0: 0, 0.001: 3}
	for step, want := range cases {
		if got := precision(step); got != want {
			t.Fatalf("precision(%v) = %d, want %d", step, got, want)
		}
	}
	if got := NewLinear(0, 0.4, 0, 1).TickStep(10); !near(got, 0.05) {
		t.Fatalf("tick step = %v", got)
	}
}
