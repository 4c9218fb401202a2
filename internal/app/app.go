package app

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/facetworks/facet/pkg/puzzle"
	"github.com/facetworks/facet/pkg/tri"
	"github.com/facetworks/facet/pkg/viewer"
	"github.com/facetworks/facet/pkg/watcher"
)

// Options configure the GUI application
type Options struct {
	// Path is the puzzle file, .tri or .svg.
	Path string
	// ConfigPath overrides the default config lookup.
	ConfigPath string
}

// App is the interactive puzzle application
type App struct {
	window fyne.Window

	path  string
	mesh  *tri.Mesh
	state *puzzle.State
	board *viewer.Board

	fileLabel     *widget.Label
	progressLabel *widget.Label

	solvedShown bool
}

// Run opens the puzzle window and blocks until it is closed
func Run(opts Options) error {
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	palette, err := cfg.Palette()
	if err != nil {
		return err
	}

	mesh, err := LoadMesh(opts.Path)
	if err != nil {
		return fmt.Errorf("failed to load puzzle: %w", err)
	}

	a := fyneapp.New()
	w := a.NewWindow("Facet")

	application := &App{
		window: w,
		path:   opts.Path,
		mesh:   mesh,
		state:  puzzle.NewState(mesh),
	}

	application.board = viewer.NewBoard(mesh, application.state, palette, cfg.HitRadius)
	application.board.SetOnChange(application.onPuzzleChange)
	application.setupUI()

	if cfg.Watch {
		fw, err := watcher.New(opts.Path, time.Duration(cfg.DebounceMS)*time.Millisecond, func() {
			fyne.Do(application.reload)
		})
		if err != nil {
			slog.Warn("file watching disabled", "error", err)
		} else {
			fw.Start()
			defer fw.Close()
		}
	}

	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.ShowAndRun()
	return nil
}

func (a *App) setupUI() {
	a.fileLabel = widget.NewLabel(filepath.Base(a.path))
	a.fileLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.progressLabel = widget.NewLabel("")

	restartButton := widget.NewButton("Restart", a.restart)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag between two vertices to draw an edge\n" +
			"• Or click one vertex, then another\n" +
			"• Click the same vertex twice to erase around it\n" +
			"• Complete all three sides to fill a triangle\n" +
			"• Filled triangles are there to stay",
	)
	instructions.Wrapping = fyne.TextWrapWord

	panel := container.NewVBox(
		a.fileLabel,
		widget.NewSeparator(),
		a.progressLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		restartButton,
	)

	panelScroll := container.NewVScroll(panel)
	panelScroll.SetMinSize(fyne.NewSize(260, 0))

	content := container.NewBorder(
		nil,         // top
		nil,         // bottom
		nil,         // left
		panelScroll, // right
		a.board,     // center
	)

	a.window.SetContent(content)
	a.updateProgress()
}

// onPuzzleChange runs after every gesture that changed the state
func (a *App) onPuzzleChange() {
	a.updateProgress()

	if a.state.Finished() && !a.solvedShown {
		a.solvedShown = true
		dialog.ShowInformation("Solved",
			fmt.Sprintf("All %d triangles unlocked. Well done!", a.mesh.TriangleCount()),
			a.window)
	}
}

func (a *App) updateProgress() {
	a.progressLabel.SetText(fmt.Sprintf(
		"Edges drawn: %d\nTriangles: %d / %d",
		a.state.ConnectedEdgeCount(),
		a.state.UnlockedCount(),
		a.mesh.TriangleCount(),
	))
}

// restart discards the session and starts over on the same mesh
func (a *App) restart() {
	a.state = puzzle.NewState(a.mesh)
	a.solvedShown = false
	a.board.SetPuzzle(a.mesh, a.state)
	a.updateProgress()
}

// reload re-reads the puzzle file after it changed on disk. A file that
// no longer parses keeps the current puzzle on screen.
func (a *App) reload() {
	mesh, err := LoadMesh(a.path)
	if err != nil {
		slog.Error("reload failed", "file", a.path, "error", err)
		a.fileLabel.SetText(filepath.Base(a.path) + " (reload failed)")
		return
	}

	slog.Info("puzzle reloaded", "file", a.path)
	a.mesh = mesh
	a.state = puzzle.NewState(mesh)
	a.solvedShown = false
	a.fileLabel.SetText(filepath.Base(a.path))
	a.board.SetPuzzle(mesh, a.state)
	a.updateProgress()
}
