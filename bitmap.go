package vtfb

// Bitmap is a rectangular, row-major array of sRGB colors: one of the two
// color planes (background or foreground) carried per Buffer.
type Bitmap struct {
	data []StraightRgba
	size Size
}

// NewBitmap allocates a width*height bitmap of zero-valued (default) color.
func NewBitmap(size Size) Bitmap {
	return Bitmap{
		data: make([]StraightRgba, int(size.Width)*int(size.Height)),
		size: size,
	}
}

// Size returns the bitmap's dimensions.
func (bm *Bitmap) Size() Size { return bm.size }

// Fill sets every cell of the bitmap to color.
func (bm *Bitmap) Fill(color StraightRgba) {
	for i := range bm.data {
		bm.data[i] = color
	}
}

// Blend alpha-blends color onto every cell in the clipped rect, using
// Oklab source-over compositing (see StraightRgba.OklabBlend). An alpha of
// 0 is a no-op; an alpha of 255 overwrites outright.
func (bm *Bitmap) Blend(target Rect, color StraightRgba) {
	if color.Alpha() == 0 {
		return
	}

	target = target.Intersect(bm.size.AsRect())
	if target.IsEmpty() {
		return
	}

	stride := int(bm.size.Width)
	top, bottom := int(target.Top), int(target.Bottom)
	left, right := int(target.Left), int(target.Right)

	for y := top; y < bottom; y++ {
		beg := y*stride + left
		end := y*stride + right
		row := bm.data[beg:end]

		if color.Alpha() == 255 {
			for i := range row {
				row[i] = color
			}
			continue
		}

		// Coalesce contiguous equal-valued cells into a single blend
		// computation, so a run of identically-colored cells only pays
		// the Oklab conversion cost once.
		off := 0
		for off < len(row) {
			c := row[off]
			chunkBeg := off
			off++
			for off < len(row) && row[off] == c {
				off++
			}
			blended := c.OklabBlend(color)
			for i := chunkBeg; i < off; i++ {
				row[i] = blended
			}
		}
	}
}

// Row returns a view over row y's cells. Callers must not retain it past
// the next mutation of the bitmap.
func (bm *Bitmap) Row(y int) []StraightRgba {
	stride := int(bm.size.Width)
	return bm.data[y*stride : y*stride+stride]
}

// Rows returns a view over every row, one slice per row.
func (bm *Bitmap) Rows() [][]StraightRgba {
	stride := int(bm.size.Width)
	height := int(bm.size.Height)
	rows := make([][]StraightRgba, height)
	for y := 0; y < height; y++ {
		rows[y] = bm.data[y*stride : y*stride+stride]
	}
	return rows
}
