package scatter

import (
	"reflect"
	"testing"
)

func TestFieldReproducible(t *testing.T) {
	a := Field(50, 42)
	b := Field(50, 42)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same (count, seed) must replay bit-identically")
	}
}

func TestFieldSeedsDiffer(t *testing.T) {
	a := Field(50, 42)
	b := Field(50, 43)
	if reflect.DeepEqual(a, b) {
		t.Fatal("different seeds should scatter differently")
	}
}

func TestFieldRanges(t *testing.T) {
	for _, e := range Field(200, 7) {
		if e.Dist < 0.1 || e.Dist > 1 {
			t.Fatalf("dist %f outside [0.1,1]", e.Dist)
		}
		if e.Size < 0.5 || e.Size > 3 {
			t.Fatalf("size %f outside [0.5,3]", e.Size)
		}
		if e.Brightness < 0.3 || e.Brightness > 1 {
			t.Fatalf("brightness %f outside [0.3,1]", e.Brightness)
		}
	}
}

func TestFieldZeroCount(t *testing.T) {
	if got := Field(0, 42); got != nil {
		t.Fatalf("zero count should yield no elements, got %d", len(got))
	}
}

func TestTwinkleBounded(t *testing.T) {
	e := Field(1, 3)[0]
	for f := 0; f < 500; f++ {
		if b := Twinkle(e, f); b < 0 || b > 1 {
			t.Fatalf("frame %d: twinkle %f outside [0,1]", f, b)
		}
	}
	if Twinkle(e, 12) != Twinkle(e, 12) {
		t.Fatal("twinkle must be pure in the frame index")
	}
}
