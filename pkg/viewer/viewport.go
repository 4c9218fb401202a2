package viewer

import (
	"math"

	"github.com/facetworks/facet/pkg/geometry"
)

const defaultPadding = 24.0

// Viewport maps model space onto widget pixels: uniform scale, centered,
// with padding on all sides. Model y grows downward just like screen y,
// so the mapping never flips an axis.
type Viewport struct {
	bounds  geometry.Bounds
	scale   float64
	offsetX float64
	offsetY float64
	padding float64
}

// NewViewport creates a viewport for the given model bounds
func NewViewport(bounds geometry.Bounds) *Viewport {
	return &Viewport{
		bounds:  bounds,
		scale:   1,
		padding: defaultPadding,
	}
}

// Fit recomputes the mapping for a widget of the given pixel size
func (vp *Viewport) Fit(width, height float64) {
	usableW := width - 2*vp.padding
	usableH := height - 2*vp.padding

	size := vp.bounds.Size()
	sx, sy := size.X, size.Y
	// Degenerate meshes (a single vertex, or none) still need a finite
	// mapping.
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}

	scale := math.Min(usableW/sx, usableH/sy)
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}

	center := vp.bounds.Center()
	vp.scale = scale
	vp.offsetX = width/2 - center.X*scale
	vp.offsetY = height/2 - center.Y*scale
}

// Project converts a model-space point to pixel coordinates
func (vp *Viewport) Project(p geometry.Vec2) (float64, float64) {
	return p.X*vp.scale + vp.offsetX, p.Y*vp.scale + vp.offsetY
}

// Unproject converts pixel coordinates back to model space
func (vp *Viewport) Unproject(x, y float64) geometry.Vec2 {
	return geometry.NewVec2((x-vp.offsetX)/vp.scale, (y-vp.offsetY)/vp.scale)
}

// Scale returns pixels per model unit
func (vp *Viewport) Scale() float64 {
	return vp.scale
}
