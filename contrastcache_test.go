package vtfb

import "testing"

func TestContrastCacheMiss(t *testing.T) {
	var cc ContrastCache
	if _, ok := cc.Lookup(RgbaFromBE(0x112233ff)); ok {
		t.Error("expected miss on an empty cache")
	}
}

func TestContrastCacheStoreThenLookup(t *testing.T) {
	var cc ContrastCache
	color := RgbaFromBE(0x112233ff)
	contrast := RgbaFromBE(0xffffffff)

	cc.Store(color, contrast)

	got, ok := cc.Lookup(color)
	if !ok {
		t.Fatal("expected hit after Store")
	}
	if got != contrast {
		t.Errorf("Lookup() = %#x, want %#x", got.ToBE(), contrast.ToBE())
	}
}

func TestContrastCacheCollisionEvicts(t *testing.T) {
	var cc ContrastCache

	a := RgbaFromBE(0x010101ff)
	cc.Store(a, RgbaFromBE(0xffffffff))

	// Find a second color that maps to the same slot as a, then verify
	// storing it evicts a's entry rather than probing elsewhere.
	idxA := contrastCacheIndex(a)
	var b StraightRgba
	found := false
	for i := 0; i < 0x1000000; i++ {
		cand := RgbaFromBE(uint32(i)<<8 | 0xff)
		if cand == a {
			continue
		}
		if contrastCacheIndex(cand) == idxA {
			b = cand
			found = true
			break
		}
	}
	if !found {
		t.Skip("no colliding color found in search range")
	}

	cc.Store(b, RgbaFromBE(0x000000ff))

	if _, ok := cc.Lookup(a); ok {
		t.Error("expected a's entry to be evicted by the colliding store of b")
	}
	got, ok := cc.Lookup(b)
	if !ok || got != RgbaFromBE(0x000000ff) {
		t.Errorf("Lookup(b) = %#x, %v, want 0x000000ff, true", got.ToBE(), ok)
	}
}
