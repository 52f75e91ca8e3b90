package vtfb

// cacheTableLog2Size and cacheTableSize fix the contrast cache at 256
// direct-mapped slots; see https://fgiesen.wordpress.com/2019/02/11/cache-tables/.
const (
	cacheTableLog2Size = 8
	cacheTableSize     = 1 << cacheTableLog2Size
	// hashMultiplier is Knuth's MMIX multiplier, the same constant used by
	// the PCG family of RNGs for 64-bit state.
	hashMultiplier = 6364136223846793005
	// cacheTableShift keeps the top bits of the multiplication, since those
	// mix best.
	cacheTableShift = 64 - cacheTableLog2Size
)

type contrastSlot struct {
	color, contrast StraightRgba
	used            bool
}

// ContrastCache memoizes Framebuffer.Contrasted. It is a direct-mapped,
// single-slot-per-bucket cache: a collision simply evicts the old entry.
// It carries no locking; Framebuffer is not meant to be used concurrently.
type ContrastCache struct {
	slots [cacheTableSize]contrastSlot
}

func contrastCacheIndex(color StraightRgba) int {
	h := uint64(color.ToNE()) * uint64(hashMultiplier)
	return int(h >> cacheTableShift)
}

// Lookup returns the cached contrast color for color, or false if nothing
// is cached for its slot (either never computed, or evicted by a collision).
func (cc *ContrastCache) Lookup(color StraightRgba) (StraightRgba, bool) {
	slot := cc.slots[contrastCacheIndex(color)]
	if slot.used && slot.color == color {
		return slot.contrast, true
	}
	return ZeroRgba, false
}

// Store records contrast as the cached contrast color for color.
func (cc *ContrastCache) Store(color, contrast StraightRgba) {
	cc.slots[contrastCacheIndex(color)] = contrastSlot{color: color, contrast: contrast, used: true}
}
