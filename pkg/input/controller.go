package input

import (
	"github.com/facetworks/facet/pkg/geometry"
	"github.com/facetworks/facet/pkg/puzzle"
	"github.com/facetworks/facet/pkg/tri"
)

// Controller turns discrete pointer events into puzzle mutations. It
// receives model-space coordinates (the presentation layer unprojects
// screen positions first) and resolves them to vertices with the mesh's
// nearest-vertex scan.
//
// Gestures:
//   - press on a vertex, release on another: connect the pair
//   - click a vertex, then click another: connect the pair
//   - click the same vertex twice: drop its non-permanent edges
//   - press or release away from any vertex: clear the selection
type Controller struct {
	mesh  *tri.Mesh
	state *puzzle.State

	threshold float64

	anchor     int
	hasAnchor  bool
	pressed    int
	hasPressed bool
	cursor     geometry.Vec2
	hasCursor  bool
}

// NewController creates a controller with the given hit threshold in
// model units
func NewController(mesh *tri.Mesh, state *puzzle.State, threshold float64) *Controller {
	return &Controller{
		mesh:      mesh,
		state:     state,
		threshold: threshold,
	}
}

// SetThreshold updates the hit threshold. The presentation layer calls
// this when the zoom changes, keeping the clickable radius constant in
// screen pixels.
func (c *Controller) SetThreshold(threshold float64) {
	c.threshold = threshold
}

// Press starts a gesture. It never mutates puzzle state; the returned
// bool is always false and exists for symmetry with Release.
func (c *Controller) Press(p geometry.Vec2) bool {
	c.cursor = p
	v, ok := c.mesh.NearestVertex(p, c.threshold)
	if !ok {
		c.hasPressed = false
		c.hasAnchor = false
		c.hasCursor = false
		return false
	}
	c.pressed = v
	c.hasPressed = true
	c.hasCursor = true
	return false
}

// Move updates the preview cursor
func (c *Controller) Move(p geometry.Vec2) bool {
	c.cursor = p
	c.hasCursor = c.hasPressed || c.hasAnchor
	return false
}

// Release completes a gesture. It returns true when puzzle state changed.
func (c *Controller) Release(p geometry.Vec2) bool {
	pressed, wasPressed := c.pressed, c.hasPressed
	c.hasPressed = false

	v, ok := c.mesh.NearestVertex(p, c.threshold)
	if !ok {
		c.hasAnchor = false
		c.hasCursor = false
		return false
	}
	if !wasPressed {
		return false
	}

	if v != pressed {
		// Drag from one vertex to another.
		c.connect(pressed, v)
		return true
	}

	// A click on v.
	if c.hasAnchor && c.anchor == v {
		c.state.DisconnectVertex(v)
		c.clearAnchor()
		return true
	}
	if c.hasAnchor {
		c.connect(c.anchor, v)
		return true
	}
	c.anchor = v
	c.hasAnchor = true
	return false
}

// Leave aborts the gesture when the pointer leaves the board
func (c *Controller) Leave() {
	c.hasPressed = false
	c.hasAnchor = false
	c.hasCursor = false
}

// ActiveVertex returns the vertex a gesture is currently drawing from
func (c *Controller) ActiveVertex() (int, bool) {
	if c.hasPressed {
		return c.pressed, true
	}
	if c.hasAnchor {
		return c.anchor, true
	}
	return 0, false
}

// Cursor returns the last pointer position while a gesture is active
func (c *Controller) Cursor() (geometry.Vec2, bool) {
	return c.cursor, c.hasCursor
}

func (c *Controller) connect(a, b int) {
	e := tri.NewEdge(a, b)
	if c.mesh.IsValidEdge(e) {
		c.state.Connect(e)
	}
	c.clearAnchor()
}

func (c *Controller) clearAnchor() {
	c.hasAnchor = false
	c.hasCursor = false
}
