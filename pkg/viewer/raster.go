package viewer

import (
	"image"
	"image/color"
	"math"
)

type rasterPoint struct {
	x, y float64
}

// fillTriangle fills a triangle on an image using a scanline sweep
func fillTriangle(img *image.RGBA, p1, p2, p3 rasterPoint, col color.RGBA) {
	// Sort vertices by Y coordinate, top to bottom
	if p1.y > p2.y {
		p1, p2 = p2, p1
	}
	if p2.y > p3.y {
		p2, p3 = p3, p2
	}
	if p1.y > p2.y {
		p1, p2 = p2, p1
	}

	bounds := img.Bounds()
	yTop := int(math.Max(0, p1.y))
	yBottom := int(math.Min(float64(bounds.Max.Y-1), p3.y))

	for y := yTop; y <= yBottom; y++ {
		lo, hi, ok := scanlineSpan(float64(y), p1, p2, p3)
		if !ok {
			continue
		}

		xStart := math.Max(0, lo)
		xEnd := math.Min(float64(bounds.Max.X-1), hi)

		for x := int(xStart); x <= int(xEnd); x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// scanlineSpan intersects a horizontal scanline with the triangle edges
// and returns the covered x range. The vertices must already be sorted
// by Y. A scanline through a vertex hits two edges at the same x; taking
// the extremes over all hits keeps the span intact.
func scanlineSpan(fy float64, p1, p2, p3 rasterPoint) (lo, hi float64, ok bool) {
	hits := 0
	for _, e := range [3][2]rasterPoint{{p1, p2}, {p2, p3}, {p1, p3}} {
		a, b := e[0], e[1]
		if a.y == b.y || fy < a.y || fy > b.y {
			continue
		}
		t := (fy - a.y) / (b.y - a.y)
		x := a.x + t*(b.x-a.x)
		if hits == 0 || x < lo {
			lo = x
		}
		if hits == 0 || x > hi {
			hi = x
		}
		hits++
	}
	return lo, hi, hits >= 2
}

// drawLine draws a one pixel wide line using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		setPixel(img, x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawThickLine draws a line of the given width by stamping a disc at
// every step of the Bresenham walk
func drawThickLine(img *image.RGBA, x1, y1, x2, y2, width int, col color.RGBA) {
	if width <= 1 {
		drawLine(img, x1, y1, x2, y2, col)
		return
	}
	r := width / 2

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		fillCircle(img, x1, y1, r, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillCircle fills a disc centered at (cx, cy)
func fillCircle(img *image.RGBA, cx, cy, r int, col color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				setPixel(img, cx+dx, cy+dy, col)
			}
		}
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	b := img.Bounds()
	if x >= 0 && x < b.Max.X && y >= 0 && y < b.Max.Y {
		img.SetRGBA(x, y, col)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
