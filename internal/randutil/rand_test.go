package randutil

import "testing"

func TestNewDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 10; i++ {
		if va, vb := a.Uint64N(1000), b.Uint64N(1000); va != vb {
			t.Fatalf("draw %d: %d != %d for the same seed", i, va, vb)
		}
	}
}

func TestNewDistinctSeeds(t *testing.T) {
	a := New(1)
	b := New(2)
	for i := 0; i < 10; i++ {
		if a.Uint64N(1<<62) != b.Uint64N(1<<62) {
			return
		}
	}
	t.Error("seeds 1 and 2 produced identical draws")
}

func TestCryptoBounds(t *testing.T) {
	src := Crypto()
	for i := 0; i < 1000; i++ {
		if got := src.Uint64N(6); got > 5 {
			t.Fatalf("Uint64N(6) = %d, want value in [0, 5]", got)
		}
	}
	if got := src.Uint64N(1); got != 0 {
		t.Errorf("Uint64N(1) = %d, want 0", got)
	}
}

func TestCryptoVaries(t *testing.T) {
	src := Crypto()
	first := src.Uint64N(1 << 62)
	for i := 0; i < 100; i++ {
		if src.Uint64N(1<<62) != first {
			return
		}
	}
	t.Error("100 crypto draws never varied")
}

func TestCryptoZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Uint64N(0) should panic")
		}
	}()
	Crypto().Uint64N(0)
}
