package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test2.cue", "test.cue"}, testSchema)

	if scale := First[float64](loader, "delay_scale"); scale != 2 {
		t.Fatalf("got %v", scale)
	}
	if strict := First[bool](loader, "strict_lexing"); !strict {
		t.Fatal()
	}
	if n := First[int](loader, "not_defined"); n != 0 {
		t.Fatalf("got %v", n)
	}
}
