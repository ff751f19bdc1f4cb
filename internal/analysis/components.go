package analysis

import "image"

// Component is one maximal 4-connected region of on pixels in a mask.
type Component struct {
	// Area is the number of pixels in the region.
	Area int

	// Bounds is the bounding rectangle enclosing the region.
	Bounds image.Rectangle
}

// LabelComponents partitions the on pixels of a mask into maximal 4-connected
// regions.
//
// Two on pixels belong to the same region only if they are horizontal or
// vertical neighbors; diagonal adjacency does not connect them. The ambient
// off region is not part of the result. An empty mask yields an empty slice.
//
// Regions are discovered in row-major scan order, so the output order is
// deterministic for a given mask.
func LabelComponents(m *Mask) []Component {
	visited := make([]bool, len(m.Pix))
	components := make([]Component, 0)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Pix[y*m.Width+x] == 0 || visited[y*m.Width+x] {
				continue
			}
			components = append(components, fillComponent(m, visited, x, y))
		}
	}

	return components
}

// fillComponent performs iterative flood-fill from a starting pixel.
//
// Uses a stack-based approach (not recursive) to avoid stack overflow on
// large regions. Marks visited pixels, counts the area, and grows the
// bounding rectangle as it goes. Only the four orthogonal neighbors are
// pushed, which is what makes the labeling 4-connected.
func fillComponent(m *Mask, visited []bool, startX, startY int) Component {
	stack := []image.Point{{X: startX, Y: startY}}
	comp := Component{Bounds: image.Rect(startX, startY, startX+1, startY+1)}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= m.Width || p.Y < 0 || p.Y >= m.Height {
			continue
		}
		i := p.Y*m.Width + p.X
		if visited[i] || m.Pix[i] == 0 {
			continue
		}

		visited[i] = true
		comp.Area++
		comp.Bounds = comp.Bounds.Union(image.Rect(p.X, p.Y, p.X+1, p.Y+1))

		stack = append(stack,
			image.Point{X: p.X - 1, Y: p.Y},
			image.Point{X: p.X + 1, Y: p.Y},
			image.Point{X: p.X, Y: p.Y - 1},
			image.Point{X: p.X, Y: p.Y + 1},
		)
	}

	return comp
}
