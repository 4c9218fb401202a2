package viewer

import (
	"image"
	"image/color"
	"image/draw"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/facetworks/facet/pkg/geometry"
	"github.com/facetworks/facet/pkg/input"
	"github.com/facetworks/facet/pkg/puzzle"
	"github.com/facetworks/facet/pkg/scene"
	"github.com/facetworks/facet/pkg/tri"
)

// Palette holds the board chrome colors. Triangle fills come from the
// puzzle file itself.
type Palette struct {
	Background color.RGBA
	MeshEdge   color.RGBA
	DrawnEdge  color.RGBA
	Pending    color.RGBA
	Vertex     color.RGBA
	Active     color.RGBA
	Fallback   color.RGBA
}

// DefaultPalette returns the colors used when the config does not
// override them
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{30, 30, 40, 255},
		MeshEdge:   color.RGBA{70, 70, 86, 255},
		DrawnEdge:  color.RGBA{235, 235, 245, 255},
		Pending:    color.RGBA{150, 150, 190, 255},
		Vertex:     color.RGBA{200, 200, 210, 255},
		Active:     color.RGBA{255, 200, 80, 255},
		Fallback:   color.RGBA{128, 128, 128, 255},
	}
}

// Board is the interactive puzzle surface. It projects the mesh through
// a viewport into a software raster and feeds pointer events to the
// gesture controller.
type Board struct {
	widget.BaseWidget

	mesh       *tri.Mesh
	state      *puzzle.State
	static     *scene.Static
	controller *input.Controller
	viewport   *Viewport
	palette    Palette
	hitRadius  float64 // pixels
	raster     *canvas.Raster

	width  float64
	height float64

	onChange func()
}

// NewBoard creates a board for the given puzzle session. hitRadius is
// the clickable radius around a vertex, in pixels.
func NewBoard(mesh *tri.Mesh, state *puzzle.State, palette Palette, hitRadius float64) *Board {
	b := &Board{
		palette:   palette,
		hitRadius: hitRadius,
	}
	b.raster = canvas.NewRaster(b.draw)
	b.ExtendBaseWidget(b)
	b.SetPuzzle(mesh, state)
	return b
}

// SetOnChange sets the callback invoked after a gesture changed the
// puzzle state
func (b *Board) SetOnChange(callback func()) {
	b.onChange = callback
}

// SetPuzzle swaps the board to a new mesh and session, keeping the
// widget in place. Used on restart and when the watched file changes.
func (b *Board) SetPuzzle(mesh *tri.Mesh, state *puzzle.State) {
	b.mesh = mesh
	b.state = state
	b.static = scene.BuildStatic(mesh)
	b.viewport = NewViewport(mesh.Bounds())
	b.controller = input.NewController(mesh, state, 0)
	if b.width > 0 {
		b.fit(b.width, b.height)
	}
	b.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	return &boardRenderer{board: b}
}

// MouseDown starts a potential drag gesture
func (b *Board) MouseDown(ev *desktop.MouseEvent) {
	b.controller.Press(b.toModel(ev.Position))
	b.Refresh()
}

// MouseUp completes a drag, or advances a click-click gesture
func (b *Board) MouseUp(ev *desktop.MouseEvent) {
	changed := b.controller.Release(b.toModel(ev.Position))
	b.Refresh()
	if changed && b.onChange != nil {
		b.onChange()
	}
}

// MouseIn implements desktop.Hoverable
func (b *Board) MouseIn(ev *desktop.MouseEvent) {}

// MouseMoved updates the pending edge preview
func (b *Board) MouseMoved(ev *desktop.MouseEvent) {
	b.controller.Move(b.toModel(ev.Position))
	if _, active := b.controller.ActiveVertex(); active {
		b.Refresh()
	}
}

// MouseOut aborts any gesture in progress
func (b *Board) MouseOut() {
	b.controller.Leave()
	b.Refresh()
}

func (b *Board) toModel(pos fyne.Position) geometry.Vec2 {
	return b.viewport.Unproject(float64(pos.X), float64(pos.Y))
}

func (b *Board) fit(width, height float64) {
	b.width = width
	b.height = height
	b.viewport.Fit(width, height)
	if s := b.viewport.Scale(); s > 0 {
		b.controller.SetThreshold(b.hitRadius / s)
	}
}

// draw renders the board into pixels. The raster may be larger than the
// widget on high DPI screens; px converts widget units to pixels.
func (b *Board) draw(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: b.palette.Background}, image.Point{}, draw.Src)

	px := 1.0
	if b.width > 0 {
		px = float64(w) / b.width
	} else {
		// Not laid out yet, map the raster directly.
		b.fit(float64(w), float64(h))
	}

	frame := b.buildFrame()

	b.drawUnlocked(img, px)
	b.drawMeshEdges(img, px)
	b.drawSegments(img, frame.EdgeSegments, px, int(3*px), b.palette.DrawnEdge)
	b.drawSegments(img, frame.PendingSegment, px, int(2*px), b.palette.Pending)
	b.drawVertices(img, frame.HighlightVertices, px)

	return img
}

func (b *Board) buildFrame() *scene.Frame {
	opts := make([]scene.FrameOption, 0, 2)
	if v, active := b.controller.ActiveVertex(); active {
		opts = append(opts, scene.WithHighlight(v))
		if cursor, ok := b.controller.Cursor(); ok {
			opts = append(opts, scene.WithPending(v, cursor))
		}
	}
	return scene.BuildFrame(b.mesh, b.state, opts...)
}

// drawUnlocked fills the unlocked triangles with their palette color.
// A color index one past the palette falls back to a neutral fill.
func (b *Board) drawUnlocked(img *image.RGBA, px float64) {
	for _, id := range b.state.UnlockedTriangles() {
		d := b.static.TriangleData[id*9 : id*9+9]
		fillTriangle(img,
			b.project(float64(d[0]), float64(d[1]), px),
			b.project(float64(d[3]), float64(d[4]), px),
			b.project(float64(d[6]), float64(d[7]), px),
			b.fillColor(int(d[2])))
	}
}

func (b *Board) drawMeshEdges(img *image.RGBA, px float64) {
	for _, e := range b.mesh.Edges() {
		p1 := b.project(b.mesh.Vertex(e.A).X, b.mesh.Vertex(e.A).Y, px)
		p2 := b.project(b.mesh.Vertex(e.B).X, b.mesh.Vertex(e.B).Y, px)
		drawLine(img, int(p1.x), int(p1.y), int(p2.x), int(p2.y), b.palette.MeshEdge)
	}
}

// drawSegments draws flattened x0,y0,x1,y1 segments in model space
func (b *Board) drawSegments(img *image.RGBA, segments []float32, px float64, width int, col color.RGBA) {
	if width < 1 {
		width = 1
	}
	for i := 0; i+3 < len(segments); i += 4 {
		p1 := b.project(float64(segments[i]), float64(segments[i+1]), px)
		p2 := b.project(float64(segments[i+2]), float64(segments[i+3]), px)
		drawThickLine(img, int(p1.x), int(p1.y), int(p2.x), int(p2.y), width, col)
	}
}

func (b *Board) drawVertices(img *image.RGBA, highlighted []uint32, px float64) {
	radius := int(4 * px)
	if radius < 2 {
		radius = 2
	}

	for i := 0; i+1 < len(b.static.Positions); i += 2 {
		p := b.project(float64(b.static.Positions[i]), float64(b.static.Positions[i+1]), px)
		fillCircle(img, int(p.x), int(p.y), radius, b.palette.Vertex)
	}

	for _, v := range highlighted {
		p := b.project(float64(b.static.Positions[2*v]), float64(b.static.Positions[2*v+1]), px)
		fillCircle(img, int(p.x), int(p.y), radius+int(2*px), b.palette.Active)
	}
}

func (b *Board) project(x, y, px float64) rasterPoint {
	sx, sy := b.viewport.Project(geometry.NewVec2(x, y))
	return rasterPoint{x: sx * px, y: sy * px}
}

func (b *Board) fillColor(index int) color.RGBA {
	table := b.static.ColorTable
	if index < 0 || index*3+2 >= len(table) {
		return b.palette.Fallback
	}
	return color.RGBA{
		R: uint8(table[index*3] * 255),
		G: uint8(table[index*3+1] * 255),
		B: uint8(table[index*3+2] * 255),
		A: 255,
	}
}

// boardRenderer implements fyne.WidgetRenderer
type boardRenderer struct {
	board *Board
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.board.fit(float64(size.Width), float64(size.Height))
	r.board.raster.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 320)
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board.raster)
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.raster}
}

func (r *boardRenderer) Destroy() {}
