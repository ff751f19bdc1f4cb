package analysis

// Mask is a single-channel binary image. Pixels are 0 (off) or 255 (on),
// stored in a flat buffer indexed by y*Width+x, matching the dimensions of the
// image it was derived from.
type Mask struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewMask creates an all-off mask of the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

// On reports whether the pixel at (x, y) is set.
func (m *Mask) On(x, y int) bool {
	return m.Pix[y*m.Width+x] != 0
}

// Set turns the pixel at (x, y) on or off.
func (m *Mask) Set(x, y int, on bool) {
	if on {
		m.Pix[y*m.Width+x] = 255
	} else {
		m.Pix[y*m.Width+x] = 0
	}
}

// Count returns the number of on pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// And returns a new mask with pixels on where both masks are on.
// Both masks must have identical dimensions.
func (m *Mask) And(other *Mask) *Mask {
	out := NewMask(m.Width, m.Height)
	for i, v := range m.Pix {
		if v != 0 && other.Pix[i] != 0 {
			out.Pix[i] = 255
		}
	}
	return out
}

// Or returns a new mask with pixels on where either mask is on.
// Both masks must have identical dimensions.
func (m *Mask) Or(other *Mask) *Mask {
	out := NewMask(m.Width, m.Height)
	for i, v := range m.Pix {
		if v != 0 || other.Pix[i] != 0 {
			out.Pix[i] = 255
		}
	}
	return out
}

// Not returns a new mask with every pixel inverted.
func (m *Mask) Not() *Mask {
	out := NewMask(m.Width, m.Height)
	for i, v := range m.Pix {
		if v == 0 {
			out.Pix[i] = 255
		}
	}
	return out
}
